package credential

import (
	"testing"

	domainerrors "backoffice/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidate_AcceptsStrongPasswords(t *testing.T) {
	policy := DefaultPolicy()

	validPasswords := []string{
		"Abcdef12",
		"Password1",
		"aB3aB3aB3",
		"NoSpecialChars2024",
	}

	for _, password := range validPasswords {
		err := Validate("alice@x.com", password, policy)
		assert.NoError(t, err, "expected no error for password: %s", password)
	}
}

func TestValidate_RejectsWeakPasswords(t *testing.T) {
	policy := DefaultPolicy()

	testCases := []struct {
		name     string
		password string
	}{
		{"too short", "Ab1"},
		{"seven chars", "Abcdef1"},
		{"no uppercase", "abcdef12"},
		{"no lowercase", "ABCDEF12"},
		{"no digit", "Abcdefgh"},
		{"five multibyte chars spanning eight bytes", "ÀÀÀa1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate("alice@x.com", tc.password, policy)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrWeakPassword))
		})
	}
}

func TestValidate_RejectsBlankFields(t *testing.T) {
	policy := DefaultPolicy()

	err := Validate("", "Abcdef12", policy)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyField))

	err = Validate("   ", "Abcdef12", policy)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyField))

	err = Validate("alice@x.com", "", policy)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyField))

	err = Validate("alice@x.com", "   ", policy)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyField))
}

func TestValidate_IsDeterministic(t *testing.T) {
	policy := DefaultPolicy()

	for range 3 {
		assert.NoError(t, Validate("alice@x.com", "Abcdef12", policy))
	}
}

func TestValidatePassword_LengthCountsCharactersNotBytes(t *testing.T) {
	policy := DefaultPolicy()

	// Eight multibyte characters satisfy the minimum even though the
	// string is longer than eight bytes.
	assert.NoError(t, ValidatePassword("ÀÈÌÒÙàa1", policy))

	// Eight bytes but only five characters must still be too short.
	err := ValidatePassword("ÀÀÀa1", policy)
	assert.True(t, errors.Is(err, domainerrors.ErrWeakPassword))
}

func TestValidatePassword_SpecialCharactersNotRequired(t *testing.T) {
	// The policy has no special-character rule; a password made of
	// letters and digits only must pass.
	err := ValidatePassword("PlainAlnum99", DefaultPolicy())
	assert.NoError(t, err)
}
