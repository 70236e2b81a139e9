package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tacmarket/marketplace-api/booking"
	"github.com/tacmarket/marketplace-api/utils"
)

type BookingController struct {
	Booking *booking.Service
}

// BookAppointment runs the booking workflow. Validation problems come back
// as a single user-visible message; anything else is the generic booking
// failure.
func (ctl *BookingController) BookAppointment(c *fiber.Ctx) error {
	req := new(booking.Request)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	appointment, err := ctl.Booking.Book(*req, nil)
	if err != nil {
		var validation booking.ValidationError
		if errors.As(err, &validation) {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: validation.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// GetBookingDates lists the dates selectable for a custom time request.
func (ctl *BookingController) GetBookingDates(c *fiber.Ctx) error {
	return c.JSON(ctl.Booking.FutureDates())
}
