package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is deliberately above the library default; lowering it below
// 12 weakens stored credentials.
const bcryptCost = 14

// HashPassword will generate a password hash
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrNoEmptyString
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(h), err
}

// ComparePasswordAndHash will validate the given cleartext
// password matches the hashed password. Any failure, including a malformed
// or truncated digest, is reported as ErrMismatchedHashAndPassword so
// verification never panics and never leaks why it failed.
func ComparePasswordAndHash(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrMismatchedHashAndPassword
	}
	return nil
}
