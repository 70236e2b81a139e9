package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacmarket/marketplace-api/models"
)

func TestSuggestedPrice(t *testing.T) {
	g := NewProfileGenerator(1)

	tests := []struct {
		name    string
		service string
		years   int
		want    int
	}{
		{name: "plumbing base", service: "Plumbing", years: 0, want: 300},
		{name: "plumbing five years", service: "Plumbing", years: 5, want: 450},
		{name: "plumbing ten years doubles", service: "Plumbing", years: 10, want: 600},
		{name: "cleaning base", service: "Cleaning", years: 0, want: 120},
		{name: "web development seasoned", service: "Web Development", years: 8, want: 900},
		{name: "hair styling", service: "Hair Styling", years: 8, want: 270},
		{name: "unknown service falls back", service: "Beekeeping", years: 0, want: 200},
		{name: "unknown service with experience", service: "Beekeeping", years: 3, want: 260},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.SuggestedPrice(tt.service, tt.years))
		})
	}
}

func TestBio_Individual(t *testing.T) {
	g := NewProfileGenerator(42)

	bio := g.Bio("Thabo Mokoena", "Plumbing", 8, "Soweto, Johannesburg", nil)
	assert.Contains(t, bio, "Thabo Mokoena")
	assert.Contains(t, bio, "plumbing")
	assert.Contains(t, bio, "8 years")
	assert.Contains(t, bio, "Soweto, Johannesburg")
}

func TestBio_Deterministic(t *testing.T) {
	first := NewProfileGenerator(7).Bio("Ahmed Patel", "Electrical Work", 12, "Fordsburg", nil)
	second := NewProfileGenerator(7).Bio("Ahmed Patel", "Electrical Work", 12, "Fordsburg", nil)
	assert.Equal(t, first, second)
}

func TestBio_Business(t *testing.T) {
	g := NewProfileGenerator(1)

	business := &models.BusinessInfo{
		BusinessName: "Nomsa's Hair Studio",
		BusinessType: "Salon",
		Description:  "A welcoming neighborhood salon.",
	}
	bio := g.Bio("Nomsa Khumalo", "Hair Styling", 6, "Alexandra, Johannesburg", business)

	assert.True(t, strings.HasPrefix(bio, "Nomsa's Hair Studio is a salon specializing in hair styling"))
	assert.Contains(t, bio, "6 years of experience in Alexandra, Johannesburg")
	assert.Contains(t, bio, "A welcoming neighborhood salon.")
	assert.NotContains(t, bio, "Nomsa Khumalo")
}

func TestDefaultAvailability(t *testing.T) {
	g := NewProfileGenerator(3)
	now := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	slots := g.DefaultAvailability(now)
	require.Len(t, slots, 28)

	assert.Equal(t, "2026-08-29", slots[0].Date)
	assert.Equal(t, "2026-09-11", slots[27].Date)

	for i, slot := range slots {
		if i%2 == 0 {
			assert.Equal(t, "09:00", slot.StartTime)
			assert.Equal(t, "12:00", slot.EndTime)
		} else {
			assert.Equal(t, "14:00", slot.StartTime)
			assert.Equal(t, "17:00", slot.EndTime)
		}
	}

	again := NewProfileGenerator(3).DefaultAvailability(now)
	assert.Equal(t, slots, again)
}
