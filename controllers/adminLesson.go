package controllers

import (
	"elearn/middleware"
	"elearn/models"
	"elearn/utils"
	"elearn/validators"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AdminLessonController struct {
	DB *gorm.DB
}

func NewAdminLessonController(db *gorm.DB) *AdminLessonController {
	return &AdminLessonController{DB: db}
}

// List returns all lessons regardless of published state
func (h *AdminLessonController) List(c *fiber.Ctx) error {
	if ok, err := adminGuard(c, h.DB); !ok {
		return err
	}

	lessons := []models.Lesson{}
	if err := h.DB.Order("module_id asc, order_index asc").Find(&lessons).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch lessons!")
	}

	return c.JSON(lessons)
}

// Create inserts a new lesson under an existing module. Video id and
// thumbnail are derived from the submitted YouTube URL.
func (h *AdminLessonController) Create(c *fiber.Ctx) error {
	if ok, err := adminGuard(c, h.DB); !ok {
		return err
	}

	reqData, ok := c.Locals("validatedLesson").(*validators.CreateLessonRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	// Check if the parent module exists
	var module models.Module
	if err := h.DB.Where("id = ?", reqData.ModuleID).First(&module).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Module not found!")
	}

	lesson := models.Lesson{
		ModuleID:    reqData.ModuleID,
		Title:       reqData.Title,
		Description: reqData.Description,
		PdfURL:      reqData.PdfURL,
		PdfFileName: reqData.PdfFileName,
		OrderIndex:  *reqData.Order,
		Duration:    reqData.Duration,
	}
	if reqData.IsPublished != nil {
		lesson.IsPublished = *reqData.IsPublished
	}

	if reqData.YoutubeURL != nil && *reqData.YoutubeURL != "" {
		info, err := utils.GetYouTubeVideoInfo(*reqData.YoutubeURL)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		lesson.YoutubeURL = reqData.YoutubeURL
		lesson.YoutubeVideoID = &info.VideoID
		lesson.VideoThumbnail = &info.ThumbnailURL
	}

	if err := h.DB.Create(&lesson).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create lesson!")
	}

	return c.Status(fiber.StatusCreated).JSON(lesson)
}

// Update applies a partial patch to a lesson and refreshes its updatedAt.
// Patching youtubeUrl to "" clears the derived video fields.
func (h *AdminLessonController) Update(c *fiber.Ctx) error {
	if ok, err := adminGuard(c, h.DB); !ok {
		return err
	}

	lessonID, err := c.ParamsInt("id")
	if err != nil || lessonID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid lesson id!")
	}

	reqData, ok := c.Locals("validatedLessonUpdate").(*validators.UpdateLessonRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	var lesson models.Lesson
	if err := h.DB.Where("id = ?", lessonID).First(&lesson).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Lesson not found!")
	}

	if reqData.ModuleID != nil {
		var module models.Module
		if err := h.DB.Where("id = ?", *reqData.ModuleID).First(&module).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Module not found!")
		}
		lesson.ModuleID = *reqData.ModuleID
	}
	if reqData.Title != nil {
		lesson.Title = *reqData.Title
	}
	if reqData.Description != nil {
		lesson.Description = *reqData.Description
	}
	if reqData.PdfURL != nil {
		if *reqData.PdfURL == "" {
			lesson.PdfURL = nil
			lesson.PdfFileName = nil
		} else {
			lesson.PdfURL = reqData.PdfURL
		}
	}
	if reqData.PdfFileName != nil {
		if *reqData.PdfFileName == "" {
			lesson.PdfFileName = nil
		} else {
			lesson.PdfFileName = reqData.PdfFileName
		}
	}
	if reqData.Order != nil {
		lesson.OrderIndex = *reqData.Order
	}
	if reqData.Duration != nil {
		lesson.Duration = *reqData.Duration
	}
	if reqData.IsPublished != nil {
		lesson.IsPublished = *reqData.IsPublished
	}

	if reqData.YoutubeURL != nil {
		if *reqData.YoutubeURL == "" {
			lesson.YoutubeURL = nil
			lesson.YoutubeVideoID = nil
			lesson.VideoThumbnail = nil
		} else {
			info, err := utils.GetYouTubeVideoInfo(*reqData.YoutubeURL)
			if err != nil {
				return middleware.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
			}
			lesson.YoutubeURL = reqData.YoutubeURL
			lesson.YoutubeVideoID = &info.VideoID
			lesson.VideoThumbnail = &info.ThumbnailURL
		}
	}

	if err := h.DB.Save(&lesson).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update lesson!")
	}

	return c.JSON(lesson)
}

// Delete removes a lesson by id
func (h *AdminLessonController) Delete(c *fiber.Ctx) error {
	if ok, err := adminGuard(c, h.DB); !ok {
		return err
	}

	lessonID, err := c.ParamsInt("id")
	if err != nil || lessonID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid lesson id!")
	}

	var lesson models.Lesson
	if err := h.DB.Where("id = ?", lessonID).First(&lesson).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Lesson not found!")
	}

	if err := h.DB.Delete(&lesson).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete lesson!")
	}

	return c.JSON(fiber.Map{"message": "Lesson deleted successfully"})
}
