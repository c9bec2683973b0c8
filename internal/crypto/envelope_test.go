package crypto_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ishnc/passforge/internal/crypto"
)

func TestEnvelope_RoundTrip(t *testing.T) {
	blob, err := crypto.SealEnvelope("pass", []byte("secret payload"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	got, err := crypto.OpenEnvelope("pass", blob)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !bytes.Equal(got, []byte("secret payload")) {
		t.Fatalf("plaintext mismatch: %q", got)
	}
}

func TestEnvelope_WrongPassphrase(t *testing.T) {
	blob, err := crypto.SealEnvelope("correct", []byte("x"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if _, err := crypto.OpenEnvelope("wrong", blob); err == nil {
		t.Fatal("expected error with wrong passphrase")
	}
}

func TestEnvelope_TamperedSalt(t *testing.T) {
	blob, err := crypto.SealEnvelope("pass", []byte("x"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	var env struct {
		Salt []byte `json:"salt"`
		CT   []byte `json:"ct"`
	}
	if err := json.Unmarshal(blob, &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	env.Salt[0] ^= 1
	tampered, _ := json.Marshal(env)
	if _, err := crypto.OpenEnvelope("pass", tampered); err == nil {
		t.Fatal("expected error for tampered salt")
	}
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3}
	crypto.Wipe(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d not wiped", i)
		}
	}
}
