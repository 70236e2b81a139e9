package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tacmarket/marketplace-api/controllers"
)

// SetupBookingRoutes configures the appointment booking routes
func SetupBookingRoutes(app *fiber.App, ctl *controllers.BookingController) {
	appointments := app.Group("/appointments")
	appointments.Post("/", ctl.BookAppointment)
	appointments.Get("/dates", ctl.GetBookingDates)
}
