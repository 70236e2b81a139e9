package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tacmarket/marketplace-api/models"
	"github.com/tacmarket/marketplace-api/sheets"
	"github.com/tacmarket/marketplace-api/store"
	"github.com/tacmarket/marketplace-api/utils"
)

type ProfileController struct {
	Store  *store.Store
	Gen    *utils.ProfileGenerator
	Outbox *sheets.Outbox
}

// GetProfiles lists published local profiles.
func (ctl *ProfileController) GetProfiles(c *fiber.Ctx) error {
	published := []models.LocalProfile{}
	for _, p := range ctl.Store.Profiles() {
		if p.Status == models.ProfilePublished {
			published = append(published, p)
		}
	}
	return c.JSON(published)
}

// GetProfile returns one local profile by ID.
func (ctl *ProfileController) GetProfile(c *fiber.Ctx) error {
	profile, found := ctl.Store.GetProfile(c.Params("id"))
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Profile not found",
		})
	}
	return c.JSON(profile)
}

// CreateProfile registers a local profile. It starts in "Pending Bio" until
// the bio is generated.
func (ctl *ProfileController) CreateProfile(c *fiber.Ctx) error {
	profile := new(models.LocalProfile)
	if err := c.BodyParser(profile); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if profile.FullName == "" || profile.Skill == "" || profile.Location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Full name, skill and location are required",
		})
	}

	profile.ID = ""
	profile.Status = models.ProfilePendingBio
	profile.BioAI = ""
	profile.SuggestedPriceZAR = 0

	created, err := ctl.Store.AddProfile(*profile)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create profile",
			Error:   err.Error(),
		})
	}

	ctl.Outbox.Enqueue(sheets.Event{Kind: sheets.EventProfile, Profile: created})
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GenerateProfileBio fills in the AI-style bio and suggested price and moves
// the profile from "Pending Bio" to Ready.
func (ctl *ProfileController) GenerateProfileBio(c *fiber.Ctx) error {
	updated, err := ctl.Store.UpdateProfile(c.Params("id"), func(p *models.LocalProfile) error {
		p.BioAI = ctl.Gen.Bio(p.FullName, p.Skill, p.YearsExperience, p.Location, nil)
		p.SuggestedPriceZAR = ctl.Gen.SuggestedPrice(p.Skill, p.YearsExperience)
		if p.Status == models.ProfilePendingBio {
			p.Status = models.ProfileReady
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Profile not found",
			Error:   err.Error(),
		})
	}

	ctl.Outbox.Enqueue(sheets.Event{Kind: sheets.EventProfile, Profile: updated})
	return c.JSON(updated)
}
