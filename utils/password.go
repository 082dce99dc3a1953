package utils

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// VerifyPassword checks a stored credential against a plain-text attempt.
// Seed accounts store plain text, which is compared literally; anything
// that looks like a bcrypt hash (e.g. after a password reset) goes through
// bcrypt instead.
func VerifyPassword(stored, password string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return stored == password
}

// HashPassword bcrypt-hashes a new password for storage.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
