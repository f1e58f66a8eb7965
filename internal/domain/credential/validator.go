// Package credential contains the pure validation rules for login
// credentials. It performs no I/O and holds no state; every check is a
// deterministic function of its inputs so it is safe to call any number
// of times before a persistence attempt.
package credential

import (
	"strings"
	"unicode"
	"unicode/utf8"

	domainerrors "backoffice/internal/domain/errors"
)

// Policy describes the password strength requirements enforced at
// registration. The zero value is not useful; use DefaultPolicy or load
// one from configuration.
type Policy struct {
	MinLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigit     bool
}

// DefaultPolicy returns the stock policy: at least 8 characters with at
// least one lowercase letter, one uppercase letter and one digit. There
// is no special-character requirement.
func DefaultPolicy() Policy {
	return Policy{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigit:     true,
	}
}

// Validate checks the email for presence and the password against the
// policy. Presence failures yield ErrEmptyField, strength failures yield
// ErrWeakPassword with the first unmet requirement in the details.
func Validate(email, password string, policy Policy) error {
	if strings.TrimSpace(email) == "" {
		return domainerrors.ErrEmptyField.WrapMessage("email cannot be blank")
	}
	if strings.TrimSpace(password) == "" {
		return domainerrors.ErrEmptyField.WrapMessage("password cannot be blank")
	}

	return ValidatePassword(password, policy)
}

// ValidatePassword checks only the strength rules, assuming presence has
// already been established.
func ValidatePassword(password string, policy Policy) error {
	// Length is measured in characters, not bytes, so multibyte letters
	// count once.
	if utf8.RuneCountInString(password) < policy.MinLength {
		return domainerrors.ErrWeakPassword.WrapMessage("password is too short")
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if policy.RequireLowercase && !hasLower {
		return domainerrors.ErrWeakPassword.WrapMessage("password must contain at least one lowercase letter")
	}
	if policy.RequireUppercase && !hasUpper {
		return domainerrors.ErrWeakPassword.WrapMessage("password must contain at least one uppercase letter")
	}
	if policy.RequireDigit && !hasDigit {
		return domainerrors.ErrWeakPassword.WrapMessage("password must contain at least one digit")
	}

	return nil
}
