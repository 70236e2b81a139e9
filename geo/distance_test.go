package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tacmarket/marketplace-api/models"
)

var (
	johannesburg = models.Coordinates{Lat: -26.2041, Lng: 28.0473}
	pretoria     = models.Coordinates{Lat: -25.7479, Lng: 28.2293}
	sandton      = models.Coordinates{Lat: -26.1076, Lng: 28.0567}
)

func TestDistance(t *testing.T) {
	assert.Zero(t, Distance(johannesburg, johannesburg))

	// Johannesburg to Pretoria is roughly 54 km as the crow flies.
	d := Distance(johannesburg, pretoria)
	assert.InDelta(t, 54, d, 3)

	// Symmetric.
	assert.InDelta(t, d, Distance(pretoria, johannesburg), 0.001)
}

func TestFilterNearby(t *testing.T) {
	providers := []models.ServiceProvider{
		{ID: "near", Coordinates: &sandton},
		{ID: "far", Coordinates: &pretoria},
		{ID: "unknown"},
	}

	nearby := FilterNearby(providers, johannesburg, DefaultRadiusKm)

	ids := make([]string, 0, len(nearby))
	for _, p := range nearby {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"near", "unknown"}, ids)
}

func TestFilterNearby_WideRadius(t *testing.T) {
	providers := []models.ServiceProvider{
		{ID: "near", Coordinates: &sandton},
		{ID: "far", Coordinates: &pretoria},
	}

	nearby := FilterNearby(providers, johannesburg, 100)
	assert.Len(t, nearby, 2)
}
