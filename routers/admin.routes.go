package routers

import (
	"elearn/config"
	"elearn/controllers"
	"elearn/middleware"
	"elearn/validators"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupAdminRoutes sets up the content-management routes. Every route sits
// behind the JWT middleware and each controller re-checks the ADMIN role
// against the user record.
func SetupAdminRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	adminModules := controllers.NewAdminModuleController(db)
	adminLessons := controllers.NewAdminLessonController(db)
	adminUsers := controllers.NewAdminUserController(db)
	upload := controllers.NewUploadController(db, cfg.UploadDir, cfg.MaxUpload)
	youtube := controllers.NewYouTubeController(db)

	adminGroup := app.Group("/api/admin", middleware.JWTMiddleware)

	// Module CRUD
	adminGroup.Get("/modules", adminModules.List)
	adminGroup.Post("/modules", validators.CreateModule(), adminModules.Create)
	adminGroup.Patch("/modules/:id", validators.UpdateModule(), adminModules.Update)
	adminGroup.Delete("/modules/:id", adminModules.Delete)

	// Lesson CRUD
	adminGroup.Get("/lessons", adminLessons.List)
	adminGroup.Post("/lessons", validators.CreateLesson(), adminLessons.Create)
	adminGroup.Patch("/lessons/:id", validators.UpdateLesson(), adminLessons.Update)
	adminGroup.Delete("/lessons/:id", adminLessons.Delete)

	adminGroup.Get("/users", adminUsers.List)

	adminGroup.Post("/upload-pdf", upload.UploadPDF)
	adminGroup.Post("/validate-youtube", validators.ValidateYouTube(), youtube.Validate)
}
