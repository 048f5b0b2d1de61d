package model

// SecretHasher provides one-way hashing and verification of user secrets.
type SecretHasher interface {
	// Hash produces a salted, deliberately expensive hash of the secret.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches the stored hash using a
	// constant-time comparison.
	Verify(plaintext, hash string) (bool, error)
}
