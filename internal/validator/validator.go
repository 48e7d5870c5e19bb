package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// New creates a validator instance with the custom rules the DTOs rely on.
// Sharing one constructor keeps validation identical between the application
// and its tests.
func New() *validator.Validate {
	v := validator.New()

	// "notblank" rejects whitespace-only strings. Coupon codes, user ids and
	// message keys must have meaningful content, not just pass "required".
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		str, ok := fl.Field().Interface().(string)
		if !ok {
			return true // Not a string, let other validators handle it
		}
		return strings.TrimSpace(str) != ""
	})

	return v
}
