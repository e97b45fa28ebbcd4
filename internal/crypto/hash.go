package crypto

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a password using bcrypt at the default cost.
// Each call generates a fresh salt, so hashing the same password twice
// yields different hashes that both verify.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the given bcrypt hash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
