package controllers

import (
	"elearn/middleware"
	"elearn/models"
	"elearn/validators"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AdminModuleController struct {
	DB *gorm.DB
}

func NewAdminModuleController(db *gorm.DB) *AdminModuleController {
	return &AdminModuleController{DB: db}
}

// List returns all modules regardless of published state
func (h *AdminModuleController) List(c *fiber.Ctx) error {
	if ok, err := adminGuard(c, h.DB); !ok {
		return err
	}

	modules := []models.Module{}
	if err := h.DB.Order("order_index asc").Find(&modules).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch modules!")
	}

	return c.JSON(modules)
}

// Create inserts a new module
func (h *AdminModuleController) Create(c *fiber.Ctx) error {
	if ok, err := adminGuard(c, h.DB); !ok {
		return err
	}

	reqData, ok := c.Locals("validatedModule").(*validators.CreateModuleRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	module := models.Module{
		Title:       reqData.Title,
		Description: reqData.Description,
		LessonCount: reqData.Lessons,
		Duration:    reqData.Duration,
		OrderIndex:  *reqData.Order,
	}
	if reqData.IsPublished != nil {
		module.IsPublished = *reqData.IsPublished
	}

	if err := h.DB.Create(&module).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create module!")
	}

	return c.Status(fiber.StatusCreated).JSON(module)
}

// Update applies a partial patch to a module and refreshes its updatedAt
func (h *AdminModuleController) Update(c *fiber.Ctx) error {
	if ok, err := adminGuard(c, h.DB); !ok {
		return err
	}

	moduleID, err := c.ParamsInt("id")
	if err != nil || moduleID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid module id!")
	}

	reqData, ok := c.Locals("validatedModuleUpdate").(*validators.UpdateModuleRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	var module models.Module
	if err := h.DB.Where("id = ?", moduleID).First(&module).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Module not found!")
	}

	if reqData.Title != nil {
		module.Title = *reqData.Title
	}
	if reqData.Description != nil {
		module.Description = *reqData.Description
	}
	if reqData.Lessons != nil {
		module.LessonCount = *reqData.Lessons
	}
	if reqData.Duration != nil {
		module.Duration = *reqData.Duration
	}
	if reqData.Order != nil {
		module.OrderIndex = *reqData.Order
	}
	if reqData.IsPublished != nil {
		module.IsPublished = *reqData.IsPublished
	}

	if err := h.DB.Save(&module).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update module!")
	}

	return c.JSON(module)
}

// Delete removes a module and its lessons in one transaction
func (h *AdminModuleController) Delete(c *fiber.Ctx) error {
	if ok, err := adminGuard(c, h.DB); !ok {
		return err
	}

	moduleID, err := c.ParamsInt("id")
	if err != nil || moduleID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid module id!")
	}

	var module models.Module
	if err := h.DB.Where("id = ?", moduleID).First(&module).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Module not found!")
	}

	tx := h.DB.Begin()

	// Lessons go first so a failure never strands them without a parent
	if err := tx.Where("module_id = ?", moduleID).Delete(&models.Lesson{}).Error; err != nil {
		tx.Rollback()
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete module lessons!")
	}

	if err := tx.Delete(&module).Error; err != nil {
		tx.Rollback()
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete module!")
	}

	tx.Commit()

	return c.JSON(fiber.Map{"message": "Module deleted successfully"})
}
