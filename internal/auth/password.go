package auth

import (
	"fmt" // Error wrapping

	"golang.org/x/crypto/bcrypt" // Password hashing
)

// PasswordHasher hashes and verifies passwords with bcrypt. The salt is
// generated per call and embedded in the digest.
type PasswordHasher struct {
	Cost int // bcrypt work factor, 0 means bcrypt.DefaultCost
}

// Hash returns the bcrypt digest of plaintext
func (h PasswordHasher) Hash(plaintext string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Matches reports whether plaintext hashes to digest. The comparison is
// constant time; a malformed digest never matches.
func (h PasswordHasher) Matches(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
