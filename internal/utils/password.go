package utils

import (
	"golang.org/x/crypto/bcrypt"
)

const hashRounds = 10

// HashPassword returns the bcrypt hash of a plaintext password. The salt
// is generated per call, so two hashes of the same input differ.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), hashRounds)
	return string(bytes), err
}

// CheckPasswordHash reports whether the plaintext matches the stored hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
