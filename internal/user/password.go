package user

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the work factor the site has always used. Raising it
// invalidates no existing hashes (cost is embedded in each hash) but slows
// every new registration, so change deliberately.
const bcryptCost = 12

// HashPassword hashes a plaintext password with bcrypt. The salt is random
// per call, so hashing the same input twice yields different hashes.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword compares a stored hash against a plaintext candidate.
// Any mismatch, including a malformed hash, returns an error.
func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
