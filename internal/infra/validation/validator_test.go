package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallet/config"
	domainerrors "wallet/internal/domain/errors"
	"wallet/internal/errors"
)

func newTestValidator(t *testing.T) *payloadValidator {
	t.Helper()

	pv, err := NewPayloadValidator(&config.Config{
		Validation: &config.ValidationConfig{
			MinUsernameLen: 3,
			MinPasswordLen: 8,
		},
	})
	require.NoError(t, err)

	concrete, ok := pv.(*payloadValidator)
	require.True(t, ok)

	return concrete
}

func TestPayloadValidator_ValidPayloads(t *testing.T) {
	pv := newTestValidator(t)

	assert.NoError(t, pv.ValidateRegistration("alice", "Secret123"))
	assert.NoError(t, pv.ValidateRegistration("bob_2024", "longenoughpassword"))
	assert.NoError(t, pv.ValidateLogin("alice", "Secret123"))
}

func TestPayloadValidator_RejectsBadUsernames(t *testing.T) {
	pv := newTestValidator(t)

	cases := []struct {
		name     string
		username string
		detail   string
	}{
		{name: "empty", username: "", detail: "username is required"},
		{name: "too short", username: "ab", detail: "at least 3 characters"},
		{name: "bad charset", username: "ali ce", detail: "letters, numbers and underscores"},
		{name: "symbols", username: "alice!", detail: "letters, numbers and underscores"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := pv.ValidateRegistration(tc.username, "Secret123")
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			assert.Contains(t, err.Error(), tc.detail)
		})
	}
}

func TestPayloadValidator_RejectsBadPasswords(t *testing.T) {
	pv := newTestValidator(t)

	cases := []struct {
		name     string
		password string
		detail   string
	}{
		{name: "empty", password: "", detail: "password is required"},
		{name: "too short", password: "short", detail: "at least 8 characters"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := pv.ValidateRegistration("alice", tc.password)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			assert.Contains(t, err.Error(), tc.detail)
		})
	}
}

func TestPayloadValidator_LoginUsesSameRules(t *testing.T) {
	pv := newTestValidator(t)

	err := pv.ValidateLogin("", "Secret123")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	err = pv.ValidateLogin("alice", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPayloadValidator_DefaultsWithoutConfig(t *testing.T) {
	pv, err := NewPayloadValidator(nil)
	require.NoError(t, err)

	assert.NoError(t, pv.ValidateRegistration("abc", "12345678"))
	assert.Error(t, pv.ValidateRegistration("ab", "12345678"))
	assert.Error(t, pv.ValidateRegistration("abc", "1234567"))
}
