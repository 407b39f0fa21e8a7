// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"atelier/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// minSecretLength is the shortest setup token accepted for hashing.
const minSecretLength = 16

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher() service.PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash generates a salted hash from a plaintext secret using bcrypt.
func (h *bcryptHasher) Hash(secret string) (string, error) {
	if len(secret) < minSecretLength {
		return "", errors.Errorf("secret must be at least %d characters", minSecretLength)
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash")
	}

	return string(bytes), nil
}

// Check compares a plaintext secret with a bcrypt hash.
func (h *bcryptHasher) Check(secret, hash string) bool {
	if secret == "" || hash == "" {
		return false
	}

	// err is nil if the secret and hash match.
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
