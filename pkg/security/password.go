// Package security contains everything related to the security of user data
package security

import "golang.org/x/crypto/bcrypt"

// HashCost is the bcrypt cost factor used for all newly stored
// hashes. Raising it only affects passwords hashed after the change.
const HashCost = 10

func HashPassword(p string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(p), HashCost)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// VerifyPassword reports whether p matches the stored bcrypt hash
func VerifyPassword(p, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(p)) == nil
}
