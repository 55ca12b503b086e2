package auth

import "golang.org/x/crypto/bcrypt"

// bcrypt only keys on the first 72 bytes of input. Secrets beyond that are
// truncated before hashing so that hashing and verification stay consistent,
// matching the historical behavior of stored hashes.
const maxPasswordBytes = 72

// HashPassword produces a salted bcrypt hash with a fresh random salt.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncate(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash. A malformed hash is
// treated as a mismatch, never an error.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(password)) == nil
}

func truncate(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
