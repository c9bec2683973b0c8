package crypto

import (
	"crypto/rand"
	"encoding/json"
	"errors"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	KeyBytes  = chacha20poly1305.KeySize
	SaltBytes = 16
)

// envelope is the on-disk form: the KDF salt and the sealed ciphertext.
type envelope struct {
	Salt []byte `json:"salt"`
	CT   []byte `json:"ct"`
}

// DeriveKEK stretches a passphrase into a key-encryption key with argon2id.
func DeriveKEK(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, 1, 64*1024, 8, KeyBytes)
}

// SealEnvelope encrypts plaintext under the passphrase with a fresh salt.
//
// The nonce is all-zero: every seal derives a fresh key from a fresh random
// salt, so no key/nonce pair ever repeats.
func SealEnvelope(passphrase string, plaintext []byte) ([]byte, error) {
	salt := make([]byte, SaltBytes)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	kek := DeriveKEK(passphrase, salt)
	defer Wipe(kek)

	aead, err := chacha20poly1305.New(kek)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	ct := aead.Seal(nil, nonce, plaintext, salt)
	return json.Marshal(envelope{Salt: salt, CT: ct})
}

// OpenEnvelope reverses SealEnvelope. A wrong passphrase or a modified blob
// yields an error from the AEAD open.
func OpenEnvelope(passphrase string, blob []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return nil, err
	}
	if len(env.Salt) != SaltBytes {
		return nil, errors.New("bad salt size")
	}
	kek := DeriveKEK(passphrase, env.Salt)
	defer Wipe(kek)

	aead, err := chacha20poly1305.New(kek)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	return aead.Open(nil, nonce, env.CT, env.Salt)
}
