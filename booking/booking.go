package booking

import (
	"errors"
	"time"

	"github.com/tacmarket/marketplace-api/models"
	"github.com/tacmarket/marketplace-api/sheets"
	"github.com/tacmarket/marketplace-api/store"
)

// customTimeNote is appended to the notes of custom-time requests so
// providers can tell them apart from slot bookings.
const customTimeNote = " (Custom time requested)"

// futureDateWindow is how many days ahead a custom time may be requested.
const futureDateWindow = 30

// defaultCloseDelay is how long after a successful booking the dismiss
// callback fires. Presentation policy, not a processing guarantee.
const defaultCloseDelay = 3 * time.Second

// ValidationError is a user-correctable input problem; its text is shown
// verbatim to the client.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

const (
	ErrMissingClientInfo = ValidationError("Please fill in all required fields")
	ErrMissingCustomTime = ValidationError("Please select a date and time for your appointment")
	ErrNoSlotSelected    = ValidationError("Please select a time slot or choose custom date/time")
	ErrDateOutOfRange    = ValidationError("Please select a date within the next 30 days")
)

// ErrBookingFailed is the generic downstream failure surfaced to the client.
var ErrBookingFailed = errors.New("Failed to book appointment. Please try again.")

// Request carries the client-supplied booking input. Either Slot (slot mode)
// or the Custom* fields (custom-time mode) apply, switched by UseCustomTime.
type Request struct {
	ProviderID      string           `json:"providerId"`
	ClientName      string           `json:"clientName"`
	ClientPhone     string           `json:"clientPhone"`
	ClientEmail     string           `json:"clientEmail"`
	Service         string           `json:"service"`
	Notes           string           `json:"notes"`
	UseCustomTime   bool             `json:"useCustomTime"`
	Slot            *models.TimeSlot `json:"slot,omitempty"`
	CustomDate      string           `json:"customDate,omitempty"`
	CustomStartTime string           `json:"customStartTime,omitempty"`
	CustomEndTime   string           `json:"customEndTime,omitempty"`
}

// Service runs the booking workflow against the shared store.
type Service struct {
	store      *store.Store
	outbox     *sheets.Outbox
	now        func() time.Time
	closeDelay time.Duration
}

func NewService(st *store.Store, outbox *sheets.Outbox) *Service {
	return &Service{
		store:      st,
		outbox:     outbox,
		now:        time.Now,
		closeDelay: defaultCloseDelay,
	}
}

// SetClock overrides the date source. Used in tests.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// SetCloseDelay overrides the dismiss delay. Used in tests.
func (s *Service) SetCloseDelay(d time.Duration) {
	s.closeDelay = d
}

// FutureDates returns the ISO dates a custom time may be requested for:
// the next 30 calendar days, starting tomorrow.
func (s *Service) FutureDates() []string {
	dates := make([]string, 0, futureDateWindow)
	today := s.now()
	for i := 1; i <= futureDateWindow; i++ {
		dates = append(dates, today.AddDate(0, 0, i).Format("2006-01-02"))
	}
	return dates
}

// Book validates the request and creates a Pending appointment. The first
// failing rule wins and nothing is committed. onClose, when non-nil, fires
// after the close delay once booking succeeded.
func (s *Service) Book(req Request, onClose func()) (models.Appointment, error) {
	if req.ClientName == "" || req.ClientPhone == "" || req.ClientEmail == "" {
		return models.Appointment{}, ErrMissingClientInfo
	}

	var date, startTime, endTime string
	notes := req.Notes

	if req.UseCustomTime {
		if req.CustomDate == "" || req.CustomStartTime == "" || req.CustomEndTime == "" {
			return models.Appointment{}, ErrMissingCustomTime
		}
		if !s.withinWindow(req.CustomDate) {
			return models.Appointment{}, ErrDateOutOfRange
		}
		date = req.CustomDate
		startTime = req.CustomStartTime
		endTime = req.CustomEndTime
		notes += customTimeNote
	} else {
		if req.Slot == nil {
			return models.Appointment{}, ErrNoSlotSelected
		}
		date = req.Slot.Date
		startTime = req.Slot.StartTime
		endTime = req.Slot.EndTime
	}

	service := req.Service
	provider, found := s.store.GetProvider(req.ProviderID)
	if found && service == "" {
		service = provider.Service
	}

	appointment := models.Appointment{
		ProviderID:  req.ProviderID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		Service:     service,
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
		Status:      models.StatusPending,
		Notes:       notes,
	}

	created, err := s.store.AddAppointment(appointment)
	if err != nil {
		return models.Appointment{}, ErrBookingFailed
	}

	s.outbox.Enqueue(sheets.Event{
		Kind:         sheets.EventAppointment,
		Appointment:  created,
		ProviderName: provider.FullName,
	})

	if onClose != nil {
		time.AfterFunc(s.closeDelay, onClose)
	}
	return created, nil
}

func (s *Service) withinWindow(date string) bool {
	for _, d := range s.FutureDates() {
		if d == date {
			return true
		}
	}
	return false
}
