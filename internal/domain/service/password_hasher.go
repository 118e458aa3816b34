// Package service declares the ports the use cases depend on for hashing,
// tokens, QR rendering and event publishing.
package service

// PasswordHasher turns account passwords into stored hashes and verifies login attempts.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
