package validators

import (
	"strings"

	"elearn/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateLessonRequest is the whitelisted body for lesson creation. The video
// id and thumbnail are derived server-side from YoutubeURL.
type CreateLessonRequest struct {
	ModuleID    uint    `json:"moduleId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	YoutubeURL  *string `json:"youtubeUrl"`
	PdfURL      *string `json:"pdfUrl"`
	PdfFileName *string `json:"pdfFileName"`
	Order       *int    `json:"order"`
	Duration    string  `json:"duration"`
	IsPublished *bool   `json:"isPublished"`
}

// UpdateLessonRequest carries a partial patch; nil fields stay untouched.
// Setting youtubeUrl to an empty string clears the video reference.
type UpdateLessonRequest struct {
	ModuleID    *uint   `json:"moduleId"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	YoutubeURL  *string `json:"youtubeUrl"`
	PdfURL      *string `json:"pdfUrl"`
	PdfFileName *string `json:"pdfFileName"`
	Order       *int    `json:"order"`
	Duration    *string `json:"duration"`
	IsPublished *bool   `json:"isPublished"`
}

func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateLessonRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		// Validate ModuleID
		if reqData.ModuleID == 0 {
			errors["moduleId"] = "Module ID is required!"
		}

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		// Validate Description
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		// Validate Duration
		if strings.TrimSpace(reqData.Duration) == "" {
			errors["duration"] = "Duration is required!"
		}

		// Validate Order
		if reqData.Order == nil {
			errors["order"] = "Order is required!"
		} else if *reqData.Order < 0 {
			errors["order"] = "Order must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateLessonRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if reqData.ModuleID != nil && *reqData.ModuleID == 0 {
			errors["moduleId"] = "Module ID must not be zero!"
		}
		if reqData.Title != nil && strings.TrimSpace(*reqData.Title) == "" {
			errors["title"] = "Title must not be empty!"
		}
		if reqData.Description != nil && strings.TrimSpace(*reqData.Description) == "" {
			errors["description"] = "Description must not be empty!"
		}
		if reqData.Duration != nil && strings.TrimSpace(*reqData.Duration) == "" {
			errors["duration"] = "Duration must not be empty!"
		}
		if reqData.Order != nil && *reqData.Order < 0 {
			errors["order"] = "Order must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}
