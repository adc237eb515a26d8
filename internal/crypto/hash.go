package crypto

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the fixed work factor for password hashing. Bumping it only
// affects newly created hashes; existing ones keep the cost embedded in them.
const bcryptCost = 10

// HashPassword hashes a password with bcrypt. The salt is generated by the
// primitive and embedded in the returned hash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether a plaintext password matches a bcrypt hash.
// The comparison is constant-time within the primitive.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
