package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacmarket/marketplace-api/models"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(NewMemoryPort())
	s.SetClock(fixedClock())
	require.NoError(t, s.Load())
	return s
}

func TestLoad_SeedsProvidersWhenEmpty(t *testing.T) {
	s := newTestStore(t)

	providers := s.Providers()
	require.NotEmpty(t, providers)
	for _, p := range providers {
		assert.Equal(t, models.ProviderPublished, p.Status)
		assert.NotEmpty(t, p.FullName)
		assert.NotEmpty(t, p.Service)
	}

	_, found := s.GetProvider("mock-001")
	assert.True(t, found)
}

func TestLoad_DoesNotReseedSavedData(t *testing.T) {
	port := NewMemoryPort()

	first := New(port)
	first.SetClock(fixedClock())
	require.NoError(t, first.Load())
	seeded := len(first.Providers())
	require.NoError(t, first.DeleteProvider("mock-001"))

	second := New(port)
	require.NoError(t, second.Load())
	assert.Len(t, second.Providers(), seeded-1)
	_, found := second.GetProvider("mock-001")
	assert.False(t, found)
}

func TestAddProvider_AssignsIdentity(t *testing.T) {
	s := newTestStore(t)

	created, err := s.AddProvider(models.ServiceProvider{
		FullName: "Lindiwe Dlamini",
		Service:  "Catering",
		Location: "Durban",
		Status:   models.ProviderReady,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, fixedClock()(), created.CreatedAt)

	got, found := s.GetProvider(created.ID)
	require.True(t, found)
	assert.Equal(t, "Lindiwe Dlamini", got.FullName)
}

func TestProviders_RoundTripThroughPort(t *testing.T) {
	port := NewMemoryPort()
	s := New(port)
	s.SetClock(fixedClock())
	require.NoError(t, s.Load())

	created, err := s.AddProvider(models.ServiceProvider{
		FullName:        "Zanele Khumalo",
		Service:         "Photography",
		YearsExperience: 6,
		Location:        "Soweto, Johannesburg",
		Coordinates:     &models.Coordinates{Lat: -26.2678, Lng: 27.8585},
		ContactDetails:  models.ContactDetails{Phone: "+27 82 000 0000", Email: "zanele@example.com"},
		SuggestedPrice:  640,
		Status:          models.ProviderReady,
		Availability: []models.TimeSlot{
			{Date: "2026-09-01", StartTime: "09:00", EndTime: "12:00", Available: true},
		},
	})
	require.NoError(t, err)

	reloaded := New(port)
	require.NoError(t, reloaded.Load())

	got, found := reloaded.GetProvider(created.ID)
	require.True(t, found)
	assert.Equal(t, created, got)
}

func TestUpdateProvider_ErrorLeavesCollectionUntouched(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateProvider("mock-001", func(p *models.ServiceProvider) error {
		p.FullName = "changed"
		return errors.New("refused")
	})
	assert.Error(t, err)

	got, found := s.GetProvider("mock-001")
	require.True(t, found)
	assert.NotEqual(t, "changed", got.FullName)
}

func TestDeleteProvider_KeepsAppointments(t *testing.T) {
	s := newTestStore(t)

	appt, err := s.AddAppointment(models.Appointment{
		ProviderID: "mock-001",
		ClientName: "Sarah",
		Status:     models.StatusPending,
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteProvider("mock-001"))

	got, found := s.GetAppointment(appt.ID)
	require.True(t, found)
	assert.Equal(t, "mock-001", got.ProviderID)
}

func TestAddAppointment_SetsTimestamps(t *testing.T) {
	s := newTestStore(t)

	created, err := s.AddAppointment(models.Appointment{
		ProviderID: "mock-002",
		ClientName: "John",
		Status:     models.StatusPending,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, fixedClock()(), created.CreatedAt)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestUpdateAppointment_RefreshesUpdatedAt(t *testing.T) {
	s := newTestStore(t)

	created, err := s.AddAppointment(models.Appointment{Status: models.StatusPending})
	require.NoError(t, err)

	later := time.Date(2026, 8, 29, 9, 30, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return later })

	updated, err := s.UpdateAppointment(created.ID, func(a *models.Appointment) error {
		return a.UpdateStatus(models.StatusConfirmed)
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)
	assert.Equal(t, later, updated.UpdatedAt)
}

func TestAddUser_RejectsDuplicateEmail(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddUser(models.User{Name: "A", Email: "a@example.com", Role: models.RoleClient})
	require.NoError(t, err)

	_, err = s.AddUser(models.User{Name: "B", Email: "a@example.com", Role: models.RoleClient})
	assert.EqualError(t, err, "user with this email already exists")
}

func TestSetUserActive(t *testing.T) {
	s := newTestStore(t)

	client, err := s.AddUser(models.User{Email: "client@example.com", Role: models.RoleClient, IsActive: true})
	require.NoError(t, err)
	admin, err := s.AddUser(models.User{Email: "admin@example.com", Role: models.RoleAdmin, IsActive: true})
	require.NoError(t, err)

	suspended, err := s.SetUserActive(client.ID, false)
	require.NoError(t, err)
	assert.False(t, suspended.IsActive)

	_, err = s.SetUserActive(admin.ID, false)
	assert.EqualError(t, err, "cannot change status of an admin account")

	got, found := s.GetUser(admin.ID)
	require.True(t, found)
	assert.True(t, got.IsActive)
}

func TestFilePort_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	port, err := NewFilePort(dir)
	require.NoError(t, err)

	s := New(port)
	s.SetClock(fixedClock())
	require.NoError(t, s.Load())

	profile, err := s.AddProfile(models.LocalProfile{
		FullName: "Mpho Sithole",
		Skill:    "Tailoring",
		Location: "Alexandra",
		Status:   models.ProfilePendingBio,
	})
	require.NoError(t, err)

	reloaded := New(port)
	require.NoError(t, reloaded.Load())

	got, found := reloaded.GetProfile(profile.ID)
	require.True(t, found)
	assert.Equal(t, profile, got)
}
