// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	domainerrors "agriconnect/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

type requestValidator struct {
	validate *validator.Validate
}

// New creates the request validator installed on the echo server.
func New() *requestValidator {
	return &requestValidator{validate: validator.New()}
}

// Validate checks the bound request DTO against its validate tags. Failures
// surface as the shared validation error so the error middleware renders a
// consistent envelope.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
