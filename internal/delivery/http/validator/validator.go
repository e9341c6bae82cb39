// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	domainerrors "storefront/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// echoValidator wraps a playground validator instance for Echo.
type echoValidator struct {
	validate *playground.Validate
}

// New creates the validator installed on the Echo server.
func New() *echoValidator {
	return &echoValidator{validate: playground.New()}
}

// Validate implements echo.Validator. Violations surface as the shared
// validation error so the error handler renders them uniformly.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
