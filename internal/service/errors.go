package service

import (
	"errors"
	"fmt"

	"go-order-tracker/pkg/validator"
)

var (
	ErrValidation         = errors.New("Validation failed")
	ErrProductExists      = errors.New("product already exists")
	ErrProductInUse       = errors.New("Cannot delete product with existing orders")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// validate runs struct validation and reports the first failing field.
func validate(v interface{}) error {
	if errs := validator.ValidateStruct(v); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: Field '%s' failed on tag '%s'", ErrValidation, first.FailedField, first.Tag)
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
