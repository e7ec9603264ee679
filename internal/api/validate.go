package api

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a request DTO's validate tags before it goes on the
// wire, so obviously malformed requests fail locally instead of
// round-tripping to the backend.
func Validate(body any) error {
	if err := validate.Struct(body); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}
