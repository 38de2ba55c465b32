package controllers

import (
	"elearn/middleware"
	"elearn/models"
	"elearn/validators"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// Create registers a user on first sign-up. The password column stays empty;
// authentication is handled by the external identity provider.
func (h *UserController) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*validators.CreateUserRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	// Check if user already exists
	var existing models.User
	if err := h.DB.Where("username = ? OR email = ?", reqData.Username, reqData.Email).First(&existing).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "User already exists!")
	}

	user := models.User{
		Username: reqData.Username,
		Email:    reqData.Email,
		Name:     reqData.Name,
		Password: "",
		Role:     models.RoleUser,
	}

	if err := h.DB.Create(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create user!")
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// Get returns a single user profile
func (h *UserController) Get(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user id!")
	}

	var user models.User
	if err := h.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found!")
	}

	return c.JSON(user)
}

// Enrollments returns all enrollments belonging to a user
func (h *UserController) Enrollments(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user id!")
	}

	enrollments := []models.Enrollment{}
	if err := h.DB.Where("user_id = ?", userID).Find(&enrollments).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch enrollments!")
	}

	return c.JSON(enrollments)
}
