package validators

import (
	"strings"

	"elearn/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateModuleRequest is the whitelisted body for module creation
type CreateModuleRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Lessons     int    `json:"lessons"`
	Duration    string `json:"duration"`
	Order       *int   `json:"order"`
	IsPublished *bool  `json:"isPublished"`
}

// UpdateModuleRequest carries a partial patch; nil fields stay untouched
type UpdateModuleRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Lessons     *int    `json:"lessons"`
	Duration    *string `json:"duration"`
	Order       *int    `json:"order"`
	IsPublished *bool   `json:"isPublished"`
}

func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateModuleRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

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

		if reqData.Lessons < 0 {
			errors["lessons"] = "Lessons must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateModuleRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

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
		if reqData.Lessons != nil && *reqData.Lessons < 0 {
			errors["lessons"] = "Lessons must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModuleUpdate", reqData)
		return c.Next()
	}
}
