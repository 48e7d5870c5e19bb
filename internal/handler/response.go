package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Envelope is the outcome shape every endpoint returns. Handlers map it onto
// HTTP status codes: success is 200, expected business failures are 400.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func success(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func failed(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Envelope{
		Status:  "failed",
		Message: message,
	})
}

// formatValidationError converts validator errors into a field-specific
// human-readable message for the first failing field.
func formatValidationError(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			field := fe.Field()
			switch fe.Tag() {
			case "required":
				return "invalid request: " + field + " is required"
			case "notblank":
				return "invalid request: " + field + " cannot be whitespace only"
			case "max":
				return "invalid request: " + field + " exceeds maximum length"
			case "gte", "lte":
				return "invalid request: " + field + " is out of range"
			case "oneof":
				return "invalid request: " + field + " has an unsupported value"
			default:
				return "invalid request: " + field + " is invalid"
			}
		}
	}
	return "invalid request"
}
