package middleware

import "github.com/gofiber/fiber/v2"

// ErrorResponse writes an error body with a single message field. Internal
// failures must pass a generic message, never database error detail.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"message": message,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed!",
		"errors":  errors,
	})
}
