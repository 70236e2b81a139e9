package models

import (
	"fmt"
	"time"
)

type ProviderStatus string

const (
	ProviderPending   ProviderStatus = "Pending"
	ProviderReady     ProviderStatus = "Ready"
	ProviderPublished ProviderStatus = "Published"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type ContactDetails struct {
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	WhatsApp string `json:"whatsapp,omitempty"`
	Website  string `json:"website,omitempty"`
}

// DayHours is one weekday entry of a business's operating hours.
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// OperatingHours is keyed by lowercase weekday name ("monday" .. "sunday").
type OperatingHours map[string]DayHours

type BusinessInfo struct {
	BusinessName   string         `json:"businessName"`
	BusinessType   string         `json:"businessType"`
	Description    string         `json:"description"`
	Services       []string       `json:"services,omitempty"`
	OperatingHours OperatingHours `json:"operatingHours,omitempty"`
}

// TimeSlot is a discrete offered time window. Times are "HH:MM" wall clock
// with no timezone; the date is an ISO calendar date. Slots are independent
// rows, overlapping slots are not rejected.
type TimeSlot struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

type CustomerReview struct {
	Reviewer string  `json:"reviewer"`
	Rating   float64 `json:"rating"`
	Comment  string  `json:"comment"`
}

type ServiceProvider struct {
	ID              string           `json:"id"`
	FullName        string           `json:"fullName"`
	Service         string           `json:"service"`
	YearsExperience int              `json:"yearsExperience"`
	Location        string           `json:"location"`
	Coordinates     *Coordinates     `json:"coordinates,omitempty"`
	ContactDetails  ContactDetails   `json:"contactDetails"`
	GeneratedBio    string           `json:"generatedBio"`
	SuggestedPrice  int              `json:"suggestedPrice"`
	Status          ProviderStatus   `json:"status"`
	CreatedAt       time.Time        `json:"createdAt"`
	IsBusinessOwner bool             `json:"isBusinessOwner"`
	BusinessInfo    *BusinessInfo    `json:"businessInfo,omitempty"`
	Availability    []TimeSlot       `json:"availability"`
	ProfileImages   []string         `json:"profileImages,omitempty"`
	CustomerReviews []CustomerReview `json:"customerReviews,omitempty"`
}

// AvailableSlots returns the bookable subset of the provider's availability:
// exactly the slots marked available. Past dates and duplicates are not
// filtered out.
func (p *ServiceProvider) AvailableSlots() []TimeSlot {
	slots := []TimeSlot{}
	for _, slot := range p.Availability {
		if slot.Available {
			slots = append(slots, slot)
		}
	}
	return slots
}

// Approve publishes a provider that moderation has marked Ready.
func (p *ServiceProvider) Approve() error {
	if p.Status != ProviderReady {
		return fmt.Errorf("cannot publish provider in status %s", p.Status)
	}
	p.Status = ProviderPublished
	return nil
}

// Unpublish pulls a published provider back to Pending.
func (p *ServiceProvider) Unpublish() error {
	if p.Status != ProviderPublished {
		return fmt.Errorf("cannot unpublish provider in status %s", p.Status)
	}
	p.Status = ProviderPending
	return nil
}
