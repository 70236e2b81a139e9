package geo

import (
	"math"

	"github.com/tacmarket/marketplace-api/models"
)

const earthRadiusKm = 6371

// DefaultRadiusKm is the search radius used when the caller does not supply one.
const DefaultRadiusKm = 15.0

// Distance returns the great-circle distance between two points in km.
func Distance(origin, destination models.Coordinates) float64 {
	dLat := (destination.Lat - origin.Lat) * math.Pi / 180
	dLng := (destination.Lng - origin.Lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(origin.Lat*math.Pi/180)*math.Cos(destination.Lat*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// FilterNearby keeps providers within radiusKm of the origin. Providers
// without coordinates are always included.
func FilterNearby(providers []models.ServiceProvider, origin models.Coordinates, radiusKm float64) []models.ServiceProvider {
	nearby := []models.ServiceProvider{}
	for _, p := range providers {
		if p.Coordinates == nil {
			nearby = append(nearby, p)
			continue
		}
		if Distance(origin, *p.Coordinates) <= radiusKm {
			nearby = append(nearby, p)
		}
	}
	return nearby
}
