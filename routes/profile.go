package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tacmarket/marketplace-api/controllers"
)

// SetupProfileRoutes configures the local profile routes
func SetupProfileRoutes(app *fiber.App, ctl *controllers.ProfileController) {
	profiles := app.Group("/profiles")
	profiles.Get("/", ctl.GetProfiles)
	profiles.Post("/", ctl.CreateProfile)
	profiles.Get("/:id", ctl.GetProfile)
	profiles.Post("/:id/bio", ctl.GenerateProfileBio)
}
