package routes

import (
	"github.com/civitas-io/denuncias-backend/internal/config"
	"github.com/civitas-io/denuncias-backend/internal/handlers"
	"github.com/civitas-io/denuncias-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	complaintHandler *handlers.ComplaintHandler,
	imageHandler *handlers.ImageHandler,
) {
	api := app.Group("/api")

	api.Get("/health", healthHandler.Check)

	// Auth — public
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Complaints. Detail by id is deliberately left public: that is the
	// behavior clients depend on today, pending a product decision.
	api.Post("/complaints", middleware.JWTProtected(cfg), complaintHandler.Create)
	api.Get("/complaints", middleware.JWTProtected(cfg), complaintHandler.List)
	api.Get("/complaints/:id", complaintHandler.GetDetail)

	// Stored image bytes — public, addressed by server-generated filename
	app.Get("/uploads/:filename", imageHandler.Serve)
}
