package auth

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// HashPassword hashes a plaintext password with the default bcrypt cost.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// VerifyPassword reports whether password matches hash. A mismatch is
// (false, nil); ErrUnreadableHash means the stored value is not a bcrypt
// hash at all and the password needs a reset.
func VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, ErrUnreadableHash
	}
}

// CheckPasswordStrength enforces the registration policy: minimum length,
// at least one letter and one digit. Runs before hashing.
func CheckPasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return &PolicyError{Reason: "must be at least 8 characters"}
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasLetter {
		return &PolicyError{Reason: "must contain a letter"}
	}
	if !hasDigit {
		return &PolicyError{Reason: "must contain a digit"}
	}
	return nil
}
