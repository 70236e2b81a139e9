package store

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tacmarket/marketplace-api/models"
)

// Store owns the in-memory entity collections and persists each one as a
// whole-collection snapshot through the injected Port after every mutation.
// Lookups are linear scans; there is no cross-entity referential integrity
// and no cascade on delete.
type Store struct {
	mu   sync.Mutex
	port Port
	now  func() time.Time

	providers    []models.ServiceProvider
	profiles     []models.LocalProfile
	appointments []models.Appointment
	users        []models.User
}

func New(port Port) *Store {
	return &Store{port: port, now: time.Now}
}

// SetClock overrides the timestamp source. Used in tests.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Now returns the store's current time, honoring SetClock.
func (s *Store) Now() time.Time {
	return s.now()
}

// Load hydrates all collections from the port. An empty provider collection
// is seeded with the bundled sample dataset, matching the original first-run
// behavior.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadCollection(KeyProviders, &s.providers); err != nil {
		return err
	}
	if err := s.loadCollection(KeyProfiles, &s.profiles); err != nil {
		return err
	}
	if err := s.loadCollection(KeyAppointments, &s.appointments); err != nil {
		return err
	}
	if err := s.loadCollection(KeyUsers, &s.users); err != nil {
		return err
	}

	if len(s.providers) == 0 {
		log.Println("No saved providers found, seeding sample data")
		s.providers = seedProviders()
		if err := s.persist(KeyProviders, s.providers); err != nil {
			return err
		}
	}

	log.Printf("Store loaded: %d providers, %d profiles, %d appointments, %d users",
		len(s.providers), len(s.profiles), len(s.appointments), len(s.users))
	return nil
}

func (s *Store) loadCollection(key string, dst interface{}) error {
	data, err := s.port.Load(key)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", key, err)
	}
	if data == nil {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return nil
}

func (s *Store) persist(key string, collection interface{}) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	if err := s.port.Save(key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// --- Providers ---

func (s *Store) Providers() []models.ServiceProvider {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ServiceProvider, len(s.providers))
	copy(out, s.providers)
	return out
}

func (s *Store) GetProvider(id string) (models.ServiceProvider, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.providers {
		if p.ID == id {
			return p, true
		}
	}
	return models.ServiceProvider{}, false
}

// AddProvider assigns the identity and creation timestamp, appends the
// provider and persists the collection.
func (s *Store) AddProvider(p models.ServiceProvider) (models.ServiceProvider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}

	s.providers = append(s.providers, p)
	if err := s.persist(KeyProviders, s.providers); err != nil {
		s.providers = s.providers[:len(s.providers)-1]
		return models.ServiceProvider{}, err
	}
	return p, nil
}

// UpdateProvider applies fn to the matching provider and persists the
// collection. fn returning an error leaves the collection untouched.
func (s *Store) UpdateProvider(id string, fn func(*models.ServiceProvider) error) (models.ServiceProvider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.providers {
		if s.providers[i].ID != id {
			continue
		}
		updated := s.providers[i]
		if err := fn(&updated); err != nil {
			return models.ServiceProvider{}, err
		}
		s.providers[i] = updated
		if err := s.persist(KeyProviders, s.providers); err != nil {
			return models.ServiceProvider{}, err
		}
		return updated, nil
	}
	return models.ServiceProvider{}, fmt.Errorf("provider %s not found", id)
}

// DeleteProvider removes the provider. Appointments referencing it are kept.
func (s *Store) DeleteProvider(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.providers {
		if s.providers[i].ID == id {
			s.providers = append(s.providers[:i], s.providers[i+1:]...)
			return s.persist(KeyProviders, s.providers)
		}
	}
	return fmt.Errorf("provider %s not found", id)
}

// --- Local profiles ---

func (s *Store) Profiles() []models.LocalProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.LocalProfile, len(s.profiles))
	copy(out, s.profiles)
	return out
}

func (s *Store) GetProfile(id string) (models.LocalProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.profiles {
		if p.ID == id {
			return p, true
		}
	}
	return models.LocalProfile{}, false
}

func (s *Store) AddProfile(p models.LocalProfile) (models.LocalProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}

	s.profiles = append(s.profiles, p)
	if err := s.persist(KeyProfiles, s.profiles); err != nil {
		s.profiles = s.profiles[:len(s.profiles)-1]
		return models.LocalProfile{}, err
	}
	return p, nil
}

func (s *Store) UpdateProfile(id string, fn func(*models.LocalProfile) error) (models.LocalProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.profiles {
		if s.profiles[i].ID != id {
			continue
		}
		updated := s.profiles[i]
		if err := fn(&updated); err != nil {
			return models.LocalProfile{}, err
		}
		s.profiles[i] = updated
		if err := s.persist(KeyProfiles, s.profiles); err != nil {
			return models.LocalProfile{}, err
		}
		return updated, nil
	}
	return models.LocalProfile{}, fmt.Errorf("profile %s not found", id)
}

func (s *Store) DeleteProfile(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.profiles {
		if s.profiles[i].ID == id {
			s.profiles = append(s.profiles[:i], s.profiles[i+1:]...)
			return s.persist(KeyProfiles, s.profiles)
		}
	}
	return fmt.Errorf("profile %s not found", id)
}

// --- Appointments ---

func (s *Store) Appointments() []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

func (s *Store) GetAppointment(id string) (models.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.appointments {
		if a.ID == id {
			return a, true
		}
	}
	return models.Appointment{}, false
}

func (s *Store) AddAppointment(a models.Appointment) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.now()
	}
	a.UpdatedAt = a.CreatedAt

	s.appointments = append(s.appointments, a)
	if err := s.persist(KeyAppointments, s.appointments); err != nil {
		s.appointments = s.appointments[:len(s.appointments)-1]
		return models.Appointment{}, err
	}
	return a, nil
}

func (s *Store) UpdateAppointment(id string, fn func(*models.Appointment) error) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		if s.appointments[i].ID != id {
			continue
		}
		updated := s.appointments[i]
		if err := fn(&updated); err != nil {
			return models.Appointment{}, err
		}
		updated.UpdatedAt = s.now()
		s.appointments[i] = updated
		if err := s.persist(KeyAppointments, s.appointments); err != nil {
			return models.Appointment{}, err
		}
		return updated, nil
	}
	return models.Appointment{}, fmt.Errorf("appointment %s not found", id)
}

// --- Users ---

func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) GetUser(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *Store) GetUserByEmail(email string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *Store) AddUser(u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return models.User{}, fmt.Errorf("user with this email already exists")
		}
	}

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = s.now()
	}

	s.users = append(s.users, u)
	if err := s.persist(KeyUsers, s.users); err != nil {
		s.users = s.users[:len(s.users)-1]
		return models.User{}, err
	}
	return u, nil
}

// SetUserActive flips the suspension flag. Admin accounts are never
// togglable through this workflow.
func (s *Store) SetUserActive(id string, active bool) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		if s.users[i].Role == models.RoleAdmin {
			return models.User{}, fmt.Errorf("cannot change status of an admin account")
		}
		s.users[i].IsActive = active
		if err := s.persist(KeyUsers, s.users); err != nil {
			return models.User{}, err
		}
		return s.users[i], nil
	}
	return models.User{}, fmt.Errorf("user %s not found", id)
}
