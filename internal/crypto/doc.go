// Package crypto exposes the primitives behind the vault's at-rest encryption.
//
// Contents
//
//   - Argon2id key derivation from a passphrase and salt (DeriveKEK)
//   - ChaCha20-Poly1305 sealing and opening of vault plaintext
//     (SealEnvelope, OpenEnvelope)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// The envelope binds the salt as associated data, so a blob whose salt was
// tampered with fails to open. Callers should treat decrypted plaintext as
// sensitive and rely on Wipe when practical to reduce lifetime in memory.
package crypto
