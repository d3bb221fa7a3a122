package routes

import (
	"educelo/backend/config"
	"educelo/backend/controllers"
	"educelo/backend/middleware"
	"educelo/backend/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authMiddleware := middleware.AuthMiddleware(cfg)

	messages := repositories.NewMessageRepository(db)
	profiles := repositories.NewUserRepository(db)

	// Progress routes
	progressController := controllers.NewProgressController(messages, profiles, cfg)
	app.Get("/api/progress/stats", authMiddleware, progressController.GetStats)
	app.Get("/api/progress/activity", authMiddleware, progressController.GetActivity)

	// Goal routes
	app.Get("/api/user/goal", authMiddleware, progressController.GetGoal)
	app.Put("/api/user/goal", authMiddleware, progressController.UpdateGoal)
}
