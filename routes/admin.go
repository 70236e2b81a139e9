package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tacmarket/marketplace-api/controllers/admin"
	"github.com/tacmarket/marketplace-api/middleware"
)

// SetupAdminRoutes configures the moderation routes
func SetupAdminRoutes(app *fiber.App, ctl *admin.Controller) {
	group := app.Group("/admin", middleware.Protected(), middleware.RequireAdmin())

	group.Get("/overview", ctl.Overview)

	group.Get("/providers", ctl.ListProviders)
	group.Patch("/providers/:id/approve", ctl.ApproveProvider)
	group.Patch("/providers/:id/unpublish", ctl.UnpublishProvider)
	group.Delete("/providers/:id", ctl.DeleteProvider)

	group.Get("/profiles", ctl.ListProfiles)
	group.Patch("/profiles/:id/approve", ctl.ApproveProfile)
	group.Delete("/profiles/:id", ctl.DeleteProfile)

	group.Get("/appointments", ctl.ListAppointments)
	group.Patch("/appointments/:id/confirm", ctl.ConfirmAppointment)
	group.Patch("/appointments/:id/cancel", ctl.CancelAppointment)

	group.Get("/users", ctl.ListUsers)
	group.Patch("/users/:id/status", ctl.UpdateUserStatus)

	group.Post("/sync", ctl.Sync)
}
