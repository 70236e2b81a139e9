package geo

import (
	"context"
	"log"

	"googlemaps.github.io/maps"

	"github.com/tacmarket/marketplace-api/models"
)

// Geocoder resolves free-text locations to coordinates through the Google
// Maps Geocoding API. Without an API key it runs in local-only mode and
// every lookup returns nil coordinates.
type Geocoder struct {
	client *maps.Client
}

func NewGeocoder(apiKey string) *Geocoder {
	if apiKey == "" {
		log.Println("Google Maps API key not set, geocoding disabled")
		return &Geocoder{}
	}

	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.Printf("Failed to create Google Maps client: %v", err)
		return &Geocoder{}
	}
	return &Geocoder{client: client}
}

func (g *Geocoder) Configured() bool {
	return g != nil && g.client != nil
}

// Geocode returns the coordinates for an address, or nil when geocoding is
// disabled or the lookup fails. A failed lookup is logged, never fatal.
func (g *Geocoder) Geocode(ctx context.Context, address string) *models.Coordinates {
	if !g.Configured() {
		return nil
	}

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		log.Printf("Geocoding failed for %q: %v", address, err)
		return nil
	}
	if len(results) == 0 {
		log.Printf("Geocoding returned no results for %q", address)
		return nil
	}

	loc := results[0].Geometry.Location
	return &models.Coordinates{Lat: loc.Lat, Lng: loc.Lng}
}
