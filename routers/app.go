package routers

import (
	"elearn/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

// NewApp assembles the Fiber application: CORS, request logging, static
// uploads and the full route surface. main and the tests share this builder.
func NewApp(db *gorm.DB, cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.MaxUpload) + 1024*1024, // headroom for multipart framing
	})

	// The UI and API may be served from different origins. Preflight
	// requests are answered here with 200 and permissive headers for every
	// path; the cors middleware below decorates the remaining responses.
	app.Use(func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodOptions {
			c.Set("Access-Control-Allow-Origin", "*")
			c.Set("Access-Control-Allow-Methods", "GET,POST,PATCH,DELETE,OPTIONS")
			c.Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
			return c.SendStatus(fiber.StatusOK)
		}
		return c.Next()
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded PDFs
	app.Static("/uploads", cfg.UploadDir)

	SetupPublicRoutes(app, db)
	SetupAdminRoutes(app, db, cfg)

	return app
}
