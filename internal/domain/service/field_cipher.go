// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// FieldCipher seals sensitive client fields before they reach the document store.
// This abstracts the underlying AEAD construction, keeping the domain pure.
type FieldCipher interface {
	// Seal encrypts plaintext. Empty input stays empty.
	Seal(plaintext string) (string, error)

	// Open reverses Seal. Values that were never sealed are returned unchanged.
	Open(sealed string) (string, error)
}
