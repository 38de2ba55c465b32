package controllers

import (
	"elearn/middleware"
	"elearn/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// adminGuard verifies the JWT-authenticated caller exists and holds the ADMIN
// role. When it returns false the response has already been written.
func adminGuard(c *fiber.Ctx, db *gorm.DB) (bool, error) {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return false, middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized!")
	}

	var user models.User
	if err := db.Where("id = ?", userId).First(&user).Error; err != nil {
		return false, middleware.ErrorResponse(c, fiber.StatusUnauthorized, "User not found!")
	}

	if user.Role != models.RoleAdmin {
		return false, middleware.ErrorResponse(c, fiber.StatusForbidden, "Access denied! Admin only.")
	}

	return true, nil
}
