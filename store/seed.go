package store

import (
	"time"

	"github.com/tacmarket/marketplace-api/models"
)

// seedProviders returns the sample dataset used on first run, so the
// marketplace is browsable before anyone registers.
func seedProviders() []models.ServiceProvider {
	return []models.ServiceProvider{
		{
			ID:              "mock-001",
			FullName:        "Thabo Mthembu",
			Service:         "Plumbing",
			YearsExperience: 8,
			Location:        "Khayelitsha, Cape Town",
			Coordinates:     &models.Coordinates{Lat: -34.0351, Lng: 18.6920},
			ContactDetails: models.ContactDetails{
				Phone:    "+27 73 456 7890",
				Email:    "thabo.plumbing@gmail.com",
				WhatsApp: "+27 73 456 7890",
			},
			GeneratedBio:    "Thabo is a skilled plumber with 8 years of experience serving clients in Khayelitsha and surrounding areas. Known for delivering high-quality work and exceptional customer service, specializing in residential and commercial plumbing solutions.",
			SuggestedPrice:  350,
			Status:          models.ProviderPublished,
			CreatedAt:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			IsBusinessOwner: false,
			Availability: []models.TimeSlot{
				{Date: "2024-12-20", StartTime: "08:00", EndTime: "12:00", Available: true},
				{Date: "2024-12-20", StartTime: "13:00", EndTime: "17:00", Available: true},
				{Date: "2024-12-21", StartTime: "08:00", EndTime: "12:00", Available: true},
				{Date: "2024-12-21", StartTime: "13:00", EndTime: "17:00", Available: false},
				{Date: "2024-12-22", StartTime: "08:00", EndTime: "12:00", Available: true},
			},
		},
		{
			ID:              "mock-002",
			FullName:        "Nomsa Dlamini",
			Service:         "Hair Styling",
			YearsExperience: 12,
			Location:        "Gugulethu, Cape Town",
			Coordinates:     &models.Coordinates{Lat: -34.0167, Lng: 18.5833},
			ContactDetails: models.ContactDetails{
				Phone:    "+27 82 123 4567",
				Email:    "nomsa.hair@outlook.com",
				WhatsApp: "+27 82 123 4567",
			},
			GeneratedBio:    "Nomsa brings 12 years of professional hair styling experience to every client. Based in Gugulethu, she specializes in natural hair care, braids, weaves, and modern styling techniques. Known for her creativity and attention to detail.",
			SuggestedPrice:  180,
			Status:          models.ProviderPublished,
			CreatedAt:       time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
			IsBusinessOwner: true,
			BusinessInfo: &models.BusinessInfo{
				BusinessName: "Nomsa's Hair Studio",
				BusinessType: "Small Business",
				Description:  "A modern hair salon specializing in natural hair care and contemporary styling for the community.",
				Services:     []string{"Hair Styling", "Braids", "Weaves", "Hair Treatment"},
				OperatingHours: models.OperatingHours{
					"monday":    {Open: "09:00", Close: "17:00"},
					"tuesday":   {Open: "09:00", Close: "17:00"},
					"wednesday": {Open: "09:00", Close: "17:00"},
					"thursday":  {Open: "09:00", Close: "17:00"},
					"friday":    {Open: "09:00", Close: "18:00"},
					"saturday":  {Open: "08:00", Close: "16:00"},
					"sunday":    {Open: "10:00", Close: "14:00", Closed: true},
				},
			},
			Availability: []models.TimeSlot{
				{Date: "2024-12-20", StartTime: "09:00", EndTime: "12:00", Available: true},
				{Date: "2024-12-20", StartTime: "14:00", EndTime: "17:00", Available: true},
				{Date: "2024-12-21", StartTime: "09:00", EndTime: "12:00", Available: false},
				{Date: "2024-12-21", StartTime: "14:00", EndTime: "17:00", Available: true},
			},
		},
		{
			ID:              "mock-003",
			FullName:        "Ahmed Hassan",
			Service:         "Electrical Work",
			YearsExperience: 15,
			Location:        "Mitchell's Plain, Cape Town",
			Coordinates:     &models.Coordinates{Lat: -34.0333, Lng: 18.6167},
			ContactDetails: models.ContactDetails{
				Phone:    "+27 71 987 6543",
				Email:    "ahmed.electrical@gmail.com",
				WhatsApp: "+27 71 987 6543",
				Website:  "https://ahmedelectrical.co.za",
			},
			GeneratedBio:    "Ahmed is a certified electrician with 15 years of experience in residential and commercial electrical work. Based in Mitchell's Plain, he provides reliable electrical services including installations, repairs, and safety inspections.",
			SuggestedPrice:  400,
			Status:          models.ProviderPublished,
			CreatedAt:       time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			IsBusinessOwner: true,
			BusinessInfo: &models.BusinessInfo{
				BusinessName: "Hassan Electrical Services",
				BusinessType: "Small Business",
				Description:  "Professional electrical services for homes and businesses with certified, experienced technicians.",
				Services:     []string{"Electrical Installations", "Repairs", "Safety Inspections", "Emergency Services"},
			},
			Availability: []models.TimeSlot{
				{Date: "2024-12-20", StartTime: "07:00", EndTime: "11:00", Available: true},
				{Date: "2024-12-20", StartTime: "12:00", EndTime: "16:00", Available: true},
				{Date: "2024-12-21", StartTime: "07:00", EndTime: "11:00", Available: true},
			},
		},
		{
			ID:              "mock-004",
			FullName:        "Sipho Ndaba",
			Service:         "Tutoring",
			YearsExperience: 6,
			Location:        "Langa, Cape Town",
			Coordinates:     &models.Coordinates{Lat: -33.9500, Lng: 18.5167},
			ContactDetails: models.ContactDetails{
				Phone:    "+27 84 567 8901",
				Email:    "sipho.tutor@gmail.com",
				WhatsApp: "+27 84 567 8901",
			},
			GeneratedBio:    "Sipho is a dedicated mathematics and science tutor with 6 years of experience helping students excel in their studies. Based in Langa, he specializes in high school mathematics, physical science, and exam preparation.",
			SuggestedPrice:  200,
			Status:          models.ProviderPublished,
			CreatedAt:       time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			IsBusinessOwner: false,
			Availability: []models.TimeSlot{
				{Date: "2024-12-20", StartTime: "15:00", EndTime: "18:00", Available: true},
				{Date: "2024-12-21", StartTime: "15:00", EndTime: "18:00", Available: true},
				{Date: "2024-12-22", StartTime: "09:00", EndTime: "12:00", Available: true},
			},
		},
	}
}
