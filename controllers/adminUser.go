package controllers

import (
	"elearn/middleware"
	"elearn/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AdminUserController struct {
	DB *gorm.DB
}

func NewAdminUserController(db *gorm.DB) *AdminUserController {
	return &AdminUserController{DB: db}
}

// List returns all registered users. The password column never serializes.
func (h *AdminUserController) List(c *fiber.Ctx) error {
	if ok, err := adminGuard(c, h.DB); !ok {
		return err
	}

	users := []models.User{}
	if err := h.DB.Order("created_at asc").Find(&users).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch users!")
	}

	return c.JSON(users)
}
