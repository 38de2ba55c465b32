package controllers

import (
	"errors"

	"elearn/middleware"
	"elearn/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UploadController struct {
	DB        *gorm.DB
	UploadDir string
	MaxSize   int64
}

func NewUploadController(db *gorm.DB, uploadDir string, maxSize int64) *UploadController {
	return &UploadController{DB: db, UploadDir: uploadDir, MaxSize: maxSize}
}

// UploadPDF stores a multipart PDF (field "pdf") and returns its public URL.
// Oversized or non-PDF uploads are rejected before anything hits disk.
func (h *UploadController) UploadPDF(c *fiber.Ctx) error {
	if ok, err := adminGuard(c, h.DB); !ok {
		return err
	}

	file, err := c.FormFile("pdf")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "No PDF file uploaded!")
	}

	filename, err := utils.SaveUploadedPDF(file, h.UploadDir, h.MaxSize)
	if err != nil {
		if errors.Is(err, utils.ErrFileTooLarge) || errors.Is(err, utils.ErrNotPDF) || errors.Is(err, utils.ErrNoFileUploaded) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to upload PDF!")
	}

	return c.JSON(fiber.Map{
		"message":     "PDF uploaded successfully",
		"pdfUrl":      utils.GetFileURL(filename),
		"pdfFileName": file.Filename,
		"fileSize":    file.Size,
	})
}
