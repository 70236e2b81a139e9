package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tacmarket/marketplace-api/controllers"
	"github.com/tacmarket/marketplace-api/middleware"
)

// SetupAuthRoutes configures all auth related routes
func SetupAuthRoutes(app *fiber.App, ctl *controllers.AuthController) {
	auth := app.Group("/auth")
	auth.Post("/register", ctl.Register)
	auth.Post("/login", ctl.Login)
	auth.Post("/refresh", ctl.RefreshToken)
	auth.Get("/me", middleware.Protected(), ctl.Me)
}
