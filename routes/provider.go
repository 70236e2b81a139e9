package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tacmarket/marketplace-api/controllers"
)

// SetupProviderRoutes configures the public provider routes
func SetupProviderRoutes(app *fiber.App, ctl *controllers.ProviderController) {
	providers := app.Group("/providers")
	providers.Get("/", ctl.GetProviders)
	providers.Post("/", ctl.CreateProvider)
	providers.Get("/:id", ctl.GetProvider)
	providers.Get("/:id/slots", ctl.GetProviderSlots)
	providers.Post("/:id/images", ctl.UploadProviderImage)
}
