// Package validation implements the domain's payload validator on top of go-playground/validator.
package validation

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"wallet/config"
	domainerrors "wallet/internal/domain/errors"
	"wallet/internal/domain/service"
)

const (
	defaultMinUsernameLen = 3
	defaultMinPasswordLen = 8
)

// usernameCharset restricts usernames to letters, digits and underscores.
var usernameCharset = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// payloadValidator is a concrete implementation of the PayloadValidator
// interface. Policy (minimum lengths) comes from configuration.
type payloadValidator struct {
	validate       *validator.Validate
	minUsernameLen int
	minPasswordLen int
}

// NewPayloadValidator is the constructor for payloadValidator.
func NewPayloadValidator(cfg *config.Config) (service.PayloadValidator, error) {
	validate := validator.New()
	if err := validate.RegisterValidation("username_charset", func(fl validator.FieldLevel) bool {
		return usernameCharset.MatchString(fl.Field().String())
	}); err != nil {
		return nil, errors.Wrap(err, "failed to register username charset rule")
	}

	minUsernameLen := defaultMinUsernameLen
	minPasswordLen := defaultMinPasswordLen
	if cfg != nil && cfg.Validation != nil {
		if cfg.Validation.MinUsernameLen > 0 {
			minUsernameLen = cfg.Validation.MinUsernameLen
		}
		if cfg.Validation.MinPasswordLen > 0 {
			minPasswordLen = cfg.Validation.MinPasswordLen
		}
	}

	return &payloadValidator{
		validate:       validate,
		minUsernameLen: minUsernameLen,
		minPasswordLen: minPasswordLen,
	}, nil
}

// ValidateRegistration checks a registration payload before any I/O happens.
func (pv *payloadValidator) ValidateRegistration(username, password string) error {
	if err := pv.validateUsername(username); err != nil {
		return err
	}

	return pv.validatePassword(password)
}

// ValidateLogin checks a login payload. The rules match registration so a
// structurally invalid login is rejected without touching the store.
func (pv *payloadValidator) ValidateLogin(username, password string) error {
	if err := pv.validateUsername(username); err != nil {
		return err
	}

	return pv.validatePassword(password)
}

func (pv *payloadValidator) validateUsername(username string) error {
	rules := fmt.Sprintf("required,min=%d,username_charset", pv.minUsernameLen)
	if err := pv.validate.Var(username, rules); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, pv.usernameViolation(err))
	}

	return nil
}

func (pv *payloadValidator) validatePassword(password string) error {
	rules := fmt.Sprintf("required,min=%d", pv.minPasswordLen)
	if err := pv.validate.Var(password, rules); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, pv.passwordViolation(err))
	}

	return nil
}

func (pv *payloadValidator) usernameViolation(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "username is invalid"
	}

	switch fieldErrs[0].Tag() {
	case "required":
		return "username is required"
	case "min":
		return fmt.Sprintf("username must be at least %d characters long", pv.minUsernameLen)
	case "username_charset":
		return "username may only contain letters, numbers and underscores"
	default:
		return "username is invalid"
	}
}

func (pv *payloadValidator) passwordViolation(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "password is invalid"
	}

	switch fieldErrs[0].Tag() {
	case "required":
		return "password is required"
	case "min":
		return fmt.Sprintf("password must be at least %d characters long", pv.minPasswordLen)
	default:
		return "password is invalid"
	}
}
