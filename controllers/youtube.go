package controllers

import (
	"elearn/middleware"
	"elearn/utils"
	"elearn/validators"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type YouTubeController struct {
	DB *gorm.DB
}

func NewYouTubeController(db *gorm.DB) *YouTubeController {
	return &YouTubeController{DB: db}
}

// Validate normalizes a YouTube URL to its video id, thumbnail and embed URL
func (h *YouTubeController) Validate(c *fiber.Ctx) error {
	if ok, err := adminGuard(c, h.DB); !ok {
		return err
	}

	reqData, ok := c.Locals("validatedYouTube").(*validators.ValidateYouTubeRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	info, err := utils.GetYouTubeVideoInfo(reqData.URL)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"message":      "Valid YouTube URL",
		"videoId":      info.VideoID,
		"thumbnailUrl": info.ThumbnailURL,
		"embedUrl":     info.EmbedURL,
		"originalUrl":  reqData.URL,
	})
}
