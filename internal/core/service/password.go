package service

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor the portal has always used; changing it
// only affects newly written hashes.
const bcryptCost = 10

// HashPassword derives a salted one-way hash from plaintext.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored hash. An empty
// or malformed hash verifies false rather than erroring, so records without
// a credential can never authenticate.
func CheckPassword(plaintext, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
