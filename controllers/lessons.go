package controllers

import (
	"elearn/middleware"
	"elearn/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LessonController struct {
	DB *gorm.DB
}

func NewLessonController(db *gorm.DB) *LessonController {
	return &LessonController{DB: db}
}

// ListByModule returns published lessons of a module in display order
func (h *LessonController) ListByModule(c *fiber.Ctx) error {
	moduleID, err := c.ParamsInt("moduleId")
	if err != nil || moduleID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid module id!")
	}

	lessons := []models.Lesson{}
	if err := h.DB.Where("module_id = ? AND is_published = ?", moduleID, true).
		Order("order_index asc").Find(&lessons).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch lessons!")
	}

	return c.JSON(lessons)
}
