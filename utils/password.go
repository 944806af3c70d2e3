package utils

import "golang.org/x/crypto/bcrypt"

func HashAndSaltPassword(password string) (string, error) {
	bytePassword := []byte(password)
	hash, err := bcrypt.GenerateFromPassword(bytePassword, bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// PasswordsMatch compares a stored bcrypt hash with a candidate password.
// bcrypt's comparison is constant-time.
func PasswordsMatch(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
