// Package password wraps bcrypt hashing for stored user credentials.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidPassword is returned when a password does not match its hash.
// Callers translate it into the same response as an unknown account so
// login never reveals which of the two failed.
var ErrInvalidPassword = errors.New("invalid password")

// Hash derives a salted bcrypt hash from the plain password.
func Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// Verify reports whether the plain password matches the stored hash.
func Verify(password, hash string) error {
	if password == "" || hash == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrInvalidPassword
	}

	if err != nil {
		return fmt.Errorf("failed to verify password: %w", err)
	}

	return nil
}
