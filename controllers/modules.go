package controllers

import (
	"elearn/middleware"
	"elearn/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ModuleController struct {
	DB *gorm.DB
}

func NewModuleController(db *gorm.DB) *ModuleController {
	return &ModuleController{DB: db}
}

// List returns published modules only, ordered for the student dashboard.
// No modules is an empty list, not an error.
func (h *ModuleController) List(c *fiber.Ctx) error {
	modules := []models.Module{}
	if err := h.DB.Where("is_published = ?", true).Order("order_index asc").Find(&modules).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch modules!")
	}

	return c.JSON(modules)
}
