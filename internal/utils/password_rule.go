package utils

import (
	"unicode"

	"github.com/go-playground/validator/v10"
)

// ValidUserPassword is the validator.v10 rule behind the `userpassword`
// binding tag: at least 6 ASCII characters containing an upper-case letter, a
// lower-case letter and a digit.
func ValidUserPassword(fl validator.FieldLevel) bool {
	return IsValidPassword(fl.Field().String())
}

// IsValidPassword reports whether the password satisfies the registration policy.
func IsValidPassword(password string) bool {
	if len(password) < 6 {
		return false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		if r > unicode.MaxASCII {
			return false
		}
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}
