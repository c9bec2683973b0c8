// Package charset defines the character classes passwords are drawn from.
//
// Contents
//
//   - The four classes: lowercase, uppercase, digits, symbols
//   - The ambiguous set (characters easy to misread: 0/O, 1/l/I, quotes)
//   - Assembly of per-policy class lists and the combined alphabet
//
// # Notes
//
// Class contents are fixed byte strings; filtering never allocates if no
// ambiguous character is present. Callers must not mutate returned slices.
package charset
