// Package vault implements the vault operations on top of a VaultStore.
//
// Save records a strength label alongside each password so list output can
// flag weak entries without decrypting individual passwords later. Labels are
// unique; saving an existing label replaces the entry.
package vault
