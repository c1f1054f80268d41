package password

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor used for every stored hash. Verification
// reads the cost back out of the hash itself, so raising this only affects
// new records.
const bcryptCost = 10

// Hash derives a salted bcrypt hash from the plaintext. Each call salts
// independently, so hashing the same password twice yields different strings.
func Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed or
// truncated hash is treated as a mismatch, never an error.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
