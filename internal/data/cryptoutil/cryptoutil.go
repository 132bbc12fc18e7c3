// Package cryptoutil protects candidate passwords at rest.
package cryptoutil

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(encoded, plaintext string) (bool, error)
}

// BcryptHasher implements PasswordHasher using bcrypt. The cost is embedded
// in the encoded hash, so it can be raised later without data migrations.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a hasher with the default bcrypt cost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash derives a salted bcrypt hash from the password.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", errors.New("password cannot be empty")
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

// Verify reports whether plaintext matches the encoded hash. A malformed
// encoded value is an error, not a mismatch.
func (h *BcryptHasher) Verify(encoded, plaintext string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("verify password: %w", err)
	}
}
