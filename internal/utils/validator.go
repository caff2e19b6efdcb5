package utils

import (
	"github.com/go-playground/validator/v10"
)

// NewValidator returns the request validator shared by the services.
func NewValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}
