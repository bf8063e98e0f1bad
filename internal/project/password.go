package project

import (
	"errors"
	"strings"
	"unicode"
)

const (
	passwordMinLength    = 8
	passwordSpecialChars = "!@#$%^&*()-+"
)

// set of password policy violations
var (
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters long")
	ErrPasswordNoUppercase = errors.New("password must contain at least one uppercase letter")
	ErrPasswordNoLowercase = errors.New("password must contain at least one lowercase letter")
	ErrPasswordNoDigit     = errors.New("password must contain at least one digit")
	ErrPasswordNoSpecial   = errors.New("password must contain at least one special character (" + passwordSpecialChars + ")")
)

// CheckPassword validates a candidate password against the Milvus
// credential requirements. Rules are checked in a fixed order and the first
// violation wins: length, uppercase, lowercase, digit, special character.
func CheckPassword(password string) error {
	if len(password) < passwordMinLength {
		return ErrPasswordTooShort
	}
	if !strings.ContainsFunc(password, unicode.IsUpper) {
		return ErrPasswordNoUppercase
	}
	if !strings.ContainsFunc(password, unicode.IsLower) {
		return ErrPasswordNoLowercase
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		return ErrPasswordNoDigit
	}
	if !strings.ContainsAny(password, passwordSpecialChars) {
		return ErrPasswordNoSpecial
	}
	return nil
}
