package sheets

import (
	"time"

	"github.com/tacmarket/marketplace-api/models"
)

// AnalyticsRow is one dated snapshot of marketplace totals, appended to the
// Analytics sheet.
type AnalyticsRow struct {
	Date                  string
	TotalProfiles         int
	LocalProfiles         int
	ServiceProviders      int
	PendingProfiles       int
	ReadyProfiles         int
	PublishedProfiles     int
	TotalAppointments     int
	PendingAppointments   int
	ConfirmedAppointments int
	CompletedAppointments int
	TopService            string
	TopLocation           string
	AveragePrice          int
}

// BuildAnalytics aggregates the current collections into one row. Pending
// counts fold the local-profile "Pending Bio" state in with provider
// "Pending".
func BuildAnalytics(now time.Time, providers []models.ServiceProvider, profiles []models.LocalProfile, appointments []models.Appointment) AnalyticsRow {
	row := AnalyticsRow{
		Date:              now.Format("2006-01-02"),
		TotalProfiles:     len(providers) + len(profiles),
		LocalProfiles:     len(profiles),
		ServiceProviders:  len(providers),
		TotalAppointments: len(appointments),
	}

	serviceCounts := map[string]int{}
	locationCounts := map[string]int{}
	priceTotal, priceCount := 0, 0

	for _, p := range providers {
		switch p.Status {
		case models.ProviderPending:
			row.PendingProfiles++
		case models.ProviderReady:
			row.ReadyProfiles++
		case models.ProviderPublished:
			row.PublishedProfiles++
		}
		serviceCounts[p.Service]++
		locationCounts[p.Location]++
		priceTotal += p.SuggestedPrice
		priceCount++
	}

	for _, p := range profiles {
		switch p.Status {
		case models.ProfilePendingBio:
			row.PendingProfiles++
		case models.ProfileReady:
			row.ReadyProfiles++
		case models.ProfilePublished:
			row.PublishedProfiles++
		}
		locationCounts[p.Location]++
		priceTotal += p.SuggestedPriceZAR
		priceCount++
	}

	for _, a := range appointments {
		switch a.Status {
		case models.StatusPending:
			row.PendingAppointments++
		case models.StatusConfirmed:
			row.ConfirmedAppointments++
		case models.StatusCompleted:
			row.CompletedAppointments++
		}
	}

	row.TopService = topKey(serviceCounts)
	row.TopLocation = topKey(locationCounts)
	if priceCount > 0 {
		row.AveragePrice = priceTotal / priceCount
	}
	return row
}

func topKey(counts map[string]int) string {
	top, best := "", 0
	for key, n := range counts {
		if n > best || (n == best && top != "" && key < top) {
			top, best = key, n
		}
	}
	return top
}
