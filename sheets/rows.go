package sheets

import (
	"fmt"
	"time"

	"github.com/tacmarket/marketplace-api/models"
)

// Sheet names and column headers are fixed; the mirror's upsert contract
// depends on ID living in column A.
const (
	ProvidersSheet    = "Service Providers"
	ProfilesSheet     = "Local Profiles"
	AppointmentsSheet = "Appointments"
	AnalyticsSheet    = "Analytics"
)

var providerHeaders = []string{
	"ID", "Full Name", "Service", "Years Experience", "Location",
	"Phone", "Email", "WhatsApp", "Website", "Generated Bio",
	"Suggested Price", "Status", "Is Business Owner", "Business Name",
	"Business Type", "Business Description", "Created At", "Coordinates (Lat)",
	"Coordinates (Lng)", "Profile Images Count", "Customer Reviews Count",
}

var profileHeaders = []string{
	"ID", "Full Name", "Skill", "Years Experience", "Location",
	"Contact", "Availability", "Status", "Bio (AI)", "Suggested Price (ZAR)",
	"Created At", "Profile Image", "Portfolio Images Count", "Customer Reviews Count",
}

var appointmentHeaders = []string{
	"ID", "Provider ID", "Provider Name", "Client Name", "Client Phone",
	"Client Email", "Service", "Date", "Start Time", "End Time",
	"Status", "Notes", "Created At", "Updated At",
}

var analyticsHeaders = []string{
	"Date", "Total Profiles", "Local Profiles", "Service Providers",
	"Pending Profiles", "Ready Profiles", "Published Profiles",
	"Total Appointments", "Pending Appointments", "Confirmed Appointments",
	"Completed Appointments", "Top Service", "Top Location", "Average Price",
}

// columnLetter maps a 1-based column number to its A1-notation letter.
// All sheets here fit within single-letter columns.
func columnLetter(n int) string {
	return string(rune('A' + n - 1))
}

func providerRow(p models.ServiceProvider) []interface{} {
	whatsapp := p.ContactDetails.WhatsApp
	website := p.ContactDetails.Website
	isBusiness := "No"
	if p.IsBusinessOwner {
		isBusiness = "Yes"
	}
	businessName, businessType, businessDescription := "", "", ""
	if p.BusinessInfo != nil {
		businessName = p.BusinessInfo.BusinessName
		businessType = p.BusinessInfo.BusinessType
		businessDescription = p.BusinessInfo.Description
	}
	lat, lng := "", ""
	if p.Coordinates != nil {
		lat = fmt.Sprintf("%v", p.Coordinates.Lat)
		lng = fmt.Sprintf("%v", p.Coordinates.Lng)
	}

	return []interface{}{
		p.ID,
		p.FullName,
		p.Service,
		fmt.Sprintf("%d", p.YearsExperience),
		p.Location,
		p.ContactDetails.Phone,
		p.ContactDetails.Email,
		whatsapp,
		website,
		p.GeneratedBio,
		fmt.Sprintf("%d", p.SuggestedPrice),
		string(p.Status),
		isBusiness,
		businessName,
		businessType,
		businessDescription,
		p.CreatedAt.Format(time.RFC3339),
		lat,
		lng,
		fmt.Sprintf("%d", len(p.ProfileImages)),
		fmt.Sprintf("%d", len(p.CustomerReviews)),
	}
}

func profileRow(p models.LocalProfile) []interface{} {
	hasImage := "No"
	if p.ProfileImage != "" {
		hasImage = "Yes"
	}

	return []interface{}{
		p.ID,
		p.FullName,
		p.Skill,
		fmt.Sprintf("%d", p.YearsExperience),
		p.Location,
		p.Contact,
		p.Availability,
		string(p.Status),
		p.BioAI,
		fmt.Sprintf("%d", p.SuggestedPriceZAR),
		p.CreatedAt.Format(time.RFC3339),
		hasImage,
		fmt.Sprintf("%d", len(p.PortfolioImages)),
		fmt.Sprintf("%d", len(p.CustomerReviews)),
	}
}

func appointmentRow(a models.Appointment, providerName string) []interface{} {
	return []interface{}{
		a.ID,
		a.ProviderID,
		providerName,
		a.ClientName,
		a.ClientPhone,
		a.ClientEmail,
		a.Service,
		a.Date,
		a.StartTime,
		a.EndTime,
		string(a.Status),
		a.Notes,
		a.CreatedAt.Format(time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
	}
}

func analyticsRowValues(r AnalyticsRow) []interface{} {
	return []interface{}{
		r.Date,
		fmt.Sprintf("%d", r.TotalProfiles),
		fmt.Sprintf("%d", r.LocalProfiles),
		fmt.Sprintf("%d", r.ServiceProviders),
		fmt.Sprintf("%d", r.PendingProfiles),
		fmt.Sprintf("%d", r.ReadyProfiles),
		fmt.Sprintf("%d", r.PublishedProfiles),
		fmt.Sprintf("%d", r.TotalAppointments),
		fmt.Sprintf("%d", r.PendingAppointments),
		fmt.Sprintf("%d", r.ConfirmedAppointments),
		fmt.Sprintf("%d", r.CompletedAppointments),
		r.TopService,
		r.TopLocation,
		fmt.Sprintf("%d", r.AveragePrice),
	}
}
