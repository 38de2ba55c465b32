package routers

import (
	"elearn/controllers"
	"elearn/validators"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupPublicRoutes sets up the health check, student-facing content routes
// and the sign-up/enrollment endpoints
func SetupPublicRoutes(app *fiber.App, db *gorm.DB) {
	health := controllers.NewHealthController(db)
	modules := controllers.NewModuleController(db)
	lessons := controllers.NewLessonController(db)
	users := controllers.NewUserController(db)
	enrollments := controllers.NewEnrollmentController(db)

	api := app.Group("/api")

	api.Get("/health", health.Check)
	api.Get("/modules", modules.List)
	api.Get("/lessons/:moduleId", lessons.ListByModule)

	api.Post("/users", validators.CreateUser(), users.Create)
	api.Get("/user/:id", users.Get)
	api.Get("/user/:id/enrollments", users.Enrollments)

	api.Get("/enrollments", enrollments.List)
	api.Patch("/enrollments/:id", validators.UpdateProgress(), enrollments.UpdateProgress)
}
