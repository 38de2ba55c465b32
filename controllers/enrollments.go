package controllers

import (
	"time"

	"elearn/middleware"
	"elearn/models"
	"elearn/validators"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

// List returns every enrollment for the dashboard view
func (h *EnrollmentController) List(c *fiber.Ctx) error {
	enrollments := []models.Enrollment{}
	if err := h.DB.Find(&enrollments).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch enrollments!")
	}

	return c.JSON(enrollments)
}

// UpdateProgress patches the progress percentage of an enrollment.
// CompletedAt is set in the same write when progress reaches 100 and cleared
// for any other value.
func (h *EnrollmentController) UpdateProgress(c *fiber.Ctx) error {
	enrollmentID, err := c.ParamsInt("id")
	if err != nil || enrollmentID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid enrollment id!")
	}

	reqData, ok := c.Locals("validatedProgress").(*validators.UpdateProgressRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	var enrollment models.Enrollment
	if err := h.DB.Where("id = ?", enrollmentID).First(&enrollment).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Enrollment not found!")
	}

	enrollment.Progress = *reqData.Progress
	if enrollment.Progress == 100 {
		now := time.Now()
		enrollment.CompletedAt = &now
	} else {
		enrollment.CompletedAt = nil
	}

	if err := h.DB.Save(&enrollment).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update progress!")
	}

	return c.JSON(enrollment)
}
