package controllers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tacmarket/marketplace-api/geo"
	"github.com/tacmarket/marketplace-api/models"
	"github.com/tacmarket/marketplace-api/sheets"
	"github.com/tacmarket/marketplace-api/store"
	"github.com/tacmarket/marketplace-api/utils"
)

type ProviderController struct {
	Store    *store.Store
	Geocoder *geo.Geocoder
	Gen      *utils.ProfileGenerator
	Outbox   *sheets.Outbox
}

// ProviderForm is the registration input a new provider submits.
type ProviderForm struct {
	FullName        string                  `json:"fullName"`
	Service         string                  `json:"service"`
	YearsExperience int                     `json:"yearsExperience"`
	Location        string                  `json:"location"`
	ContactDetails  models.ContactDetails   `json:"contactDetails"`
	IsBusinessOwner bool                    `json:"isBusinessOwner"`
	BusinessInfo    *models.BusinessInfo    `json:"businessInfo,omitempty"`
	Availability    []models.TimeSlot       `json:"availability,omitempty"`
	ProfileImages   []string                `json:"profileImages,omitempty"`
	CustomerReviews []models.CustomerReview `json:"customerReviews,omitempty"`
}

// GetProviders lists published providers, filtered by free-text search,
// service category and optionally a lat/lng radius.
func (ctl *ProviderController) GetProviders(c *fiber.Ctx) error {
	search := strings.ToLower(c.Query("search"))
	service := c.Query("service")

	published := []models.ServiceProvider{}
	for _, p := range ctl.Store.Providers() {
		if p.Status != models.ProviderPublished {
			continue
		}
		if service != "" && p.Service != service {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.FullName), search) &&
			!strings.Contains(strings.ToLower(p.Service), search) &&
			!strings.Contains(strings.ToLower(p.Location), search) {
			continue
		}
		published = append(published, p)
	}

	if latStr, lngStr := c.Query("lat"), c.Query("lng"); latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid lat/lng",
			})
		}
		radius := geo.DefaultRadiusKm
		if radiusStr := c.Query("radius"); radiusStr != "" {
			if r, err := strconv.ParseFloat(radiusStr, 64); err == nil {
				radius = r
			}
		}
		published = geo.FilterNearby(published, models.Coordinates{Lat: lat, Lng: lng}, radius)
	}

	return c.JSON(published)
}

// GetProvider returns one provider by ID.
func (ctl *ProviderController) GetProvider(c *fiber.Ctx) error {
	provider, found := ctl.Store.GetProvider(c.Params("id"))
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Provider not found",
		})
	}
	return c.JSON(provider)
}

// GetProviderSlots returns the bookable subset of a provider's availability.
func (ctl *ProviderController) GetProviderSlots(c *fiber.Ctx) error {
	provider, found := ctl.Store.GetProvider(c.Params("id"))
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Provider not found",
		})
	}
	return c.JSON(provider.AvailableSlots())
}

// CreateProvider generates a profile from the submitted form: geocoded
// coordinates (best-effort), bio and suggested price, and default
// availability when none is supplied. New providers start in Ready, awaiting
// moderation.
func (ctl *ProviderController) CreateProvider(c *fiber.Ctx) error {
	form := new(ProviderForm)
	if err := c.BodyParser(form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if form.FullName == "" || form.Service == "" || form.Location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Full name, service and location are required",
		})
	}

	var businessInfo *models.BusinessInfo
	if form.IsBusinessOwner {
		businessInfo = form.BusinessInfo
	}

	availability := form.Availability
	if len(availability) == 0 {
		availability = ctl.Gen.DefaultAvailability(ctl.Store.Now())
	}

	provider := models.ServiceProvider{
		FullName:        form.FullName,
		Service:         form.Service,
		YearsExperience: form.YearsExperience,
		Location:        form.Location,
		Coordinates:     ctl.Geocoder.Geocode(c.Context(), form.Location),
		ContactDetails:  form.ContactDetails,
		GeneratedBio:    ctl.Gen.Bio(form.FullName, form.Service, form.YearsExperience, form.Location, businessInfo),
		SuggestedPrice:  ctl.Gen.SuggestedPrice(form.Service, form.YearsExperience),
		Status:          models.ProviderReady,
		IsBusinessOwner: form.IsBusinessOwner,
		BusinessInfo:    businessInfo,
		Availability:    availability,
		ProfileImages:   form.ProfileImages,
		CustomerReviews: form.CustomerReviews,
	}

	created, err := ctl.Store.AddProvider(provider)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create provider",
			Error:   err.Error(),
		})
	}

	ctl.Outbox.Enqueue(sheets.Event{Kind: sheets.EventProvider, Provider: created})
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UploadProviderImage stores an image with Cloudinary and appends its URL to
// the provider's gallery.
func (ctl *ProviderController) UploadProviderImage(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, found := ctl.Store.GetProvider(id); !found {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Provider not found",
		})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "No image file provided",
			Error:   err.Error(),
		})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to read image file",
			Error:   err.Error(),
		})
	}
	defer file.Close()

	url, err := utils.UploadProfileImage(c.Context(), file, fmt.Sprintf("provider-%s-%d", id, fileHeader.Size))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload image",
			Error:   err.Error(),
		})
	}

	updated, err := ctl.Store.UpdateProvider(id, func(p *models.ServiceProvider) error {
		p.ProfileImages = append(p.ProfileImages, url)
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save image URL",
			Error:   err.Error(),
		})
	}

	ctl.Outbox.Enqueue(sheets.Event{Kind: sheets.EventProvider, Provider: updated})
	return c.JSON(updated)
}
