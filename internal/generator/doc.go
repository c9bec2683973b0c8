// Package generator produces passwords and passphrases from crypto/rand.
//
// Contents
//
//   - Policy-driven password generation with an optional guarantee of at
//     least one character per selected class (Password, Passwords)
//   - Wordlist passphrases in the diceware style (Passphrase)
//
// # Notes
//
// All random selection uses rejection sampling over crypto/rand, so draws are
// uniform over the alphabet regardless of its size. When a minimum of each
// class is required, the guaranteed characters are placed by a
// Fisher–Yates shuffle so they do not cluster at the front of the output.
package generator
