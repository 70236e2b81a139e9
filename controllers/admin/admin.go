package admin

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tacmarket/marketplace-api/models"
	"github.com/tacmarket/marketplace-api/sheets"
	"github.com/tacmarket/marketplace-api/store"
	"github.com/tacmarket/marketplace-api/utils"
)

type Controller struct {
	Store  *store.Store
	Outbox *sheets.Outbox
}

// Overview returns the dashboard counters.
func (ctl *Controller) Overview(c *fiber.Ctx) error {
	providers := ctl.Store.Providers()
	profiles := ctl.Store.Profiles()
	appointments := ctl.Store.Appointments()

	pendingApproval, businessProfiles := 0, 0
	for _, p := range providers {
		if p.Status == models.ProviderPending || p.Status == models.ProviderReady {
			pendingApproval++
		}
		if p.IsBusinessOwner {
			businessProfiles++
		}
	}
	for _, p := range profiles {
		if p.Status == models.ProfilePendingBio || p.Status == models.ProfileReady {
			pendingApproval++
		}
	}
	pendingAppointments := 0
	for _, a := range appointments {
		if a.Status == models.StatusPending {
			pendingAppointments++
		}
	}

	return c.JSON(fiber.Map{
		"totalProviders":      len(providers),
		"localProfiles":       len(profiles),
		"pendingApproval":     pendingApproval,
		"businessProfiles":    businessProfiles,
		"totalAppointments":   len(appointments),
		"pendingAppointments": pendingAppointments,
		"totalUsers":          len(ctl.Store.Users()),
	})
}

// --- Providers ---

// ListProviders returns all providers regardless of status, with optional
// search and status filters.
func (ctl *Controller) ListProviders(c *fiber.Ctx) error {
	search := strings.ToLower(c.Query("search"))
	status := strings.ToLower(c.Query("status"))

	providers := []models.ServiceProvider{}
	for _, p := range ctl.Store.Providers() {
		if status != "" && status != "all" && strings.ToLower(string(p.Status)) != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.FullName), search) &&
			!strings.Contains(strings.ToLower(p.Service), search) {
			continue
		}
		providers = append(providers, p)
	}
	return c.JSON(providers)
}

// ApproveProvider publishes a provider in status Ready.
func (ctl *Controller) ApproveProvider(c *fiber.Ctx) error {
	updated, err := ctl.Store.UpdateProvider(c.Params("id"), func(p *models.ServiceProvider) error {
		return p.Approve()
	})
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Failed to approve provider",
			Error:   err.Error(),
		})
	}
	ctl.Outbox.Enqueue(sheets.Event{Kind: sheets.EventProvider, Provider: updated})
	return c.JSON(updated)
}

// UnpublishProvider pulls a published provider back to Pending.
func (ctl *Controller) UnpublishProvider(c *fiber.Ctx) error {
	updated, err := ctl.Store.UpdateProvider(c.Params("id"), func(p *models.ServiceProvider) error {
		return p.Unpublish()
	})
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Failed to unpublish provider",
			Error:   err.Error(),
		})
	}
	ctl.Outbox.Enqueue(sheets.Event{Kind: sheets.EventProvider, Provider: updated})
	return c.JSON(updated)
}

// DeleteProvider removes a provider permanently. Its appointments are kept.
func (ctl *Controller) DeleteProvider(c *fiber.Ctx) error {
	if err := ctl.Store.DeleteProvider(c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Provider not found",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// --- Local profiles ---

func (ctl *Controller) ListProfiles(c *fiber.Ctx) error {
	search := strings.ToLower(c.Query("search"))
	status := strings.ToLower(c.Query("status"))

	profiles := []models.LocalProfile{}
	for _, p := range ctl.Store.Profiles() {
		if status != "" && status != "all" && !strings.Contains(strings.ToLower(string(p.Status)), status) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.FullName), search) &&
			!strings.Contains(strings.ToLower(p.Skill), search) {
			continue
		}
		profiles = append(profiles, p)
	}
	return c.JSON(profiles)
}

func (ctl *Controller) ApproveProfile(c *fiber.Ctx) error {
	updated, err := ctl.Store.UpdateProfile(c.Params("id"), func(p *models.LocalProfile) error {
		return p.Approve()
	})
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Failed to approve profile",
			Error:   err.Error(),
		})
	}
	ctl.Outbox.Enqueue(sheets.Event{Kind: sheets.EventProfile, Profile: updated})
	return c.JSON(updated)
}

func (ctl *Controller) DeleteProfile(c *fiber.Ctx) error {
	if err := ctl.Store.DeleteProfile(c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Profile not found",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// --- Appointments ---

func (ctl *Controller) ListAppointments(c *fiber.Ctx) error {
	search := strings.ToLower(c.Query("search"))
	status := strings.ToLower(c.Query("status"))

	appointments := []models.Appointment{}
	for _, a := range ctl.Store.Appointments() {
		if status != "" && status != "all" && strings.ToLower(string(a.Status)) != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(a.ClientName), search) &&
			!strings.Contains(strings.ToLower(a.Service), search) {
			continue
		}
		appointments = append(appointments, a)
	}
	return c.JSON(appointments)
}

// ConfirmAppointment approves a pending booking request.
func (ctl *Controller) ConfirmAppointment(c *fiber.Ctx) error {
	return ctl.transitionAppointment(c, models.StatusConfirmed)
}

// CancelAppointment rejects a pending booking request.
func (ctl *Controller) CancelAppointment(c *fiber.Ctx) error {
	return ctl.transitionAppointment(c, models.StatusCancelled)
}

func (ctl *Controller) transitionAppointment(c *fiber.Ctx, newStatus models.AppointmentStatus) error {
	updated, err := ctl.Store.UpdateAppointment(c.Params("id"), func(a *models.Appointment) error {
		return a.UpdateStatus(newStatus)
	})
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Failed to update appointment",
			Error:   err.Error(),
		})
	}

	providerName := ""
	if provider, found := ctl.Store.GetProvider(updated.ProviderID); found {
		providerName = provider.FullName
	}
	utils.SendAppointmentStatusEmail(updated, providerName)
	ctl.Outbox.Enqueue(sheets.Event{
		Kind:         sheets.EventAppointment,
		Appointment:  updated,
		ProviderName: providerName,
	})
	return c.JSON(updated)
}

// --- Users ---

func (ctl *Controller) ListUsers(c *fiber.Ctx) error {
	users := ctl.Store.Users()
	for i := range users {
		users[i].Password = ""
	}
	return c.JSON(users)
}

// UpdateUserStatus toggles the suspension flag. Admin accounts are refused
// by the store.
func (ctl *Controller) UpdateUserStatus(c *fiber.Ctx) error {
	type StatusRequest struct {
		IsActive bool `json:"isActive"`
	}
	req := new(StatusRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	updated, err := ctl.Store.SetUserActive(c.Params("id"), req.IsActive)
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Failed to update user status",
			Error:   err.Error(),
		})
	}
	updated.Password = ""
	return c.JSON(updated)
}

// Sync mirrors every provider, profile and a fresh analytics snapshot to the
// spreadsheet, best-effort.
func (ctl *Controller) Sync(c *fiber.Ctx) error {
	providers := ctl.Store.Providers()
	profiles := ctl.Store.Profiles()
	appointments := ctl.Store.Appointments()

	for _, p := range providers {
		ctl.Outbox.Enqueue(sheets.Event{Kind: sheets.EventProvider, Provider: p})
	}
	for _, p := range profiles {
		ctl.Outbox.Enqueue(sheets.Event{Kind: sheets.EventProfile, Profile: p})
	}
	ctl.Outbox.Enqueue(sheets.Event{
		Kind:      sheets.EventAnalytics,
		Analytics: sheets.BuildAnalytics(ctl.Store.Now(), providers, profiles, appointments),
	})

	return c.JSON(utils.MessageResponse{Message: "Sync queued"})
}
