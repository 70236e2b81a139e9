package utils

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/tacmarket/marketplace-api/models"
)

// basePrices in ZAR per service category. Unknown categories fall back to
// defaultBasePrice.
var basePrices = map[string]int{
	"Plumbing":         300,
	"Electrical Work":  350,
	"Carpentry":        280,
	"Painting":         200,
	"Gardening":        150,
	"Cleaning":         120,
	"Tutoring":         180,
	"Catering":         250,
	"Photography":      400,
	"Web Development":  500,
	"Graphic Design":   300,
	"Music Lessons":    200,
	"Fitness Training": 250,
	"Hair Styling":     150,
	"Mechanic":         320,
	"Tailoring":        180,
}

const defaultBasePrice = 200

var bioTemplates = []string{
	"%[1]s is a skilled %[2]s with %[3]d years of experience serving clients in %[4]s. Known for delivering high-quality work and exceptional customer service.",
	"With %[3]d years of hands-on experience, %[1]s specializes in %[2]s and has built a reputation for reliability and expertise in %[4]s.",
	"%[1]s brings %[3]d years of professional %[2]s experience to every project. Based in %[4]s, they are committed to exceeding client expectations.",
	"An experienced %[2]s professional with %[3]d years in the field, %[1]s serves the %[4]s community with dedication and skill.",
}

// ProfileGenerator produces suggested prices, biography text and default
// availability. The randomness source is injected so tests can seed it.
type ProfileGenerator struct {
	rand *rand.Rand
}

func NewProfileGenerator(seed int64) *ProfileGenerator {
	return &ProfileGenerator{rand: rand.New(rand.NewSource(seed))}
}

// SuggestedPrice is base price scaled by 10% per year of experience,
// rounded to the nearest integer.
func (g *ProfileGenerator) SuggestedPrice(service string, yearsExperience int) int {
	basePrice, ok := basePrices[service]
	if !ok {
		basePrice = defaultBasePrice
	}
	multiplier := 1 + 0.1*float64(yearsExperience)
	return int(math.Round(float64(basePrice) * multiplier))
}

// Bio returns a single templated sentence for business owners, otherwise one
// of four generic templates chosen uniformly at random.
func (g *ProfileGenerator) Bio(fullName, service string, yearsExperience int, location string, business *models.BusinessInfo) string {
	if business != nil {
		return fmt.Sprintf("%s is a %s specializing in %s with %d years of experience in %s. %s",
			business.BusinessName,
			strings.ToLower(business.BusinessType),
			strings.ToLower(service),
			yearsExperience,
			location,
			business.Description)
	}

	template := bioTemplates[g.rand.Intn(len(bioTemplates))]
	return fmt.Sprintf(template, fullName, strings.ToLower(service), yearsExperience, location)
}

// DefaultAvailability emits a morning (09:00-12:00) and afternoon
// (14:00-17:00) slot for each of the next 14 days, each independently
// available with probability 0.7.
func (g *ProfileGenerator) DefaultAvailability(now time.Time) []models.TimeSlot {
	slots := make([]models.TimeSlot, 0, 28)
	for i := 1; i <= 14; i++ {
		date := now.AddDate(0, 0, i).Format("2006-01-02")
		slots = append(slots, models.TimeSlot{
			Date:      date,
			StartTime: "09:00",
			EndTime:   "12:00",
			Available: g.rand.Float64() > 0.3,
		})
		slots = append(slots, models.TimeSlot{
			Date:      date,
			StartTime: "14:00",
			EndTime:   "17:00",
			Available: g.rand.Float64() > 0.3,
		})
	}
	return slots
}
