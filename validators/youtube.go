package validators

import (
	"strings"

	"elearn/middleware"

	"github.com/gofiber/fiber/v2"
)

// ValidateYouTubeRequest is the body for the YouTube URL validation endpoint
type ValidateYouTubeRequest struct {
	URL string `json:"url"`
}

func ValidateYouTube() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ValidateYouTubeRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if strings.TrimSpace(reqData.URL) == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "YouTube URL is required!")
		}

		c.Locals("validatedYouTube", reqData)
		return c.Next()
	}
}
