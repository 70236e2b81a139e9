package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacmarket/marketplace-api/models"
	"github.com/tacmarket/marketplace-api/store"
)

// appointmentSaveFails persists everything except the appointment
// collection, so bookings fail downstream of validation.
type appointmentSaveFails struct {
	inner *store.MemoryPort
}

func (p appointmentSaveFails) Load(key string) ([]byte, error) {
	return p.inner.Load(key)
}

func (p appointmentSaveFails) Save(key string, data []byte) error {
	if key == store.KeyAppointments {
		return errors.New("disk full")
	}
	return p.inner.Save(key, data)
}

func testClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	}
}

func newTestService(t *testing.T, port store.Port) (*Service, *store.Store) {
	t.Helper()
	st := store.New(port)
	st.SetClock(testClock())
	require.NoError(t, st.Load())

	svc := NewService(st, nil)
	svc.SetClock(testClock())
	return svc, st
}

func validSlotRequest() Request {
	return Request{
		ProviderID:  "mock-001",
		ClientName:  "Sarah Johnson",
		ClientPhone: "+27 82 111 2222",
		ClientEmail: "sarah@example.com",
		Slot: &models.TimeSlot{
			Date:      "2026-09-03",
			StartTime: "09:00",
			EndTime:   "12:00",
			Available: true,
		},
	}
}

func TestBook_SlotMode(t *testing.T) {
	svc, st := newTestService(t, store.NewMemoryPort())

	created, err := svc.Book(validSlotRequest(), nil)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "mock-001", created.ProviderID)
	assert.Equal(t, "2026-09-03", created.Date)
	assert.Equal(t, "09:00", created.StartTime)
	assert.Equal(t, "12:00", created.EndTime)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Empty(t, created.Notes)

	stored, found := st.GetAppointment(created.ID)
	require.True(t, found)
	assert.Equal(t, created, stored)
}

func TestBook_FillsServiceFromProvider(t *testing.T) {
	svc, st := newTestService(t, store.NewMemoryPort())

	provider, found := st.GetProvider("mock-001")
	require.True(t, found)

	created, err := svc.Book(validSlotRequest(), nil)
	require.NoError(t, err)
	assert.Equal(t, provider.Service, created.Service)
}

func TestBook_ExplicitServiceWins(t *testing.T) {
	svc, _ := newTestService(t, store.NewMemoryPort())

	req := validSlotRequest()
	req.Service = "Drain Unblocking"

	created, err := svc.Book(req, nil)
	require.NoError(t, err)
	assert.Equal(t, "Drain Unblocking", created.Service)
}

func TestBook_UnknownProviderStillBooks(t *testing.T) {
	svc, _ := newTestService(t, store.NewMemoryPort())

	req := validSlotRequest()
	req.ProviderID = "no-such-provider"
	req.Service = "Plumbing"

	created, err := svc.Book(req, nil)
	require.NoError(t, err)
	assert.Equal(t, "no-such-provider", created.ProviderID)
}

func TestBook_CustomTimeMode(t *testing.T) {
	svc, _ := newTestService(t, store.NewMemoryPort())

	req := Request{
		ProviderID:      "mock-002",
		ClientName:      "David Nkosi",
		ClientPhone:     "+27 83 555 0000",
		ClientEmail:     "david@example.com",
		Notes:           "Please bring braiding hair",
		UseCustomTime:   true,
		CustomDate:      "2026-09-10",
		CustomStartTime: "10:00",
		CustomEndTime:   "11:30",
	}

	created, err := svc.Book(req, nil)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-10", created.Date)
	assert.Equal(t, "10:00", created.StartTime)
	assert.Equal(t, "11:30", created.EndTime)
	assert.Equal(t, "Please bring braiding hair (Custom time requested)", created.Notes)
	assert.Equal(t, models.StatusPending, created.Status)
}

func TestBook_CustomTimeNoteOnEmptyNotes(t *testing.T) {
	svc, _ := newTestService(t, store.NewMemoryPort())

	req := validSlotRequest()
	req.Slot = nil
	req.UseCustomTime = true
	req.CustomDate = "2026-09-05"
	req.CustomStartTime = "08:00"
	req.CustomEndTime = "09:00"

	created, err := svc.Book(req, nil)
	require.NoError(t, err)
	assert.Equal(t, " (Custom time requested)", created.Notes)
}

func TestBook_ValidationOrder(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
		want   error
	}{
		{
			name:   "missing name",
			mutate: func(r *Request) { r.ClientName = "" },
			want:   ErrMissingClientInfo,
		},
		{
			name:   "missing phone",
			mutate: func(r *Request) { r.ClientPhone = "" },
			want:   ErrMissingClientInfo,
		},
		{
			name:   "missing email",
			mutate: func(r *Request) { r.ClientEmail = "" },
			want:   ErrMissingClientInfo,
		},
		{
			name: "client info checked before custom time",
			mutate: func(r *Request) {
				r.ClientName = ""
				r.UseCustomTime = true
				r.Slot = nil
			},
			want: ErrMissingClientInfo,
		},
		{
			name: "custom mode without date",
			mutate: func(r *Request) {
				r.UseCustomTime = true
				r.Slot = nil
				r.CustomStartTime = "10:00"
				r.CustomEndTime = "11:00"
			},
			want: ErrMissingCustomTime,
		},
		{
			name: "custom mode without times",
			mutate: func(r *Request) {
				r.UseCustomTime = true
				r.Slot = nil
				r.CustomDate = "2026-09-05"
			},
			want: ErrMissingCustomTime,
		},
		{
			name: "custom date past the window",
			mutate: func(r *Request) {
				r.UseCustomTime = true
				r.Slot = nil
				r.CustomDate = "2026-10-15"
				r.CustomStartTime = "10:00"
				r.CustomEndTime = "11:00"
			},
			want: ErrDateOutOfRange,
		},
		{
			name: "custom date today",
			mutate: func(r *Request) {
				r.UseCustomTime = true
				r.Slot = nil
				r.CustomDate = "2026-08-28"
				r.CustomStartTime = "10:00"
				r.CustomEndTime = "11:00"
			},
			want: ErrDateOutOfRange,
		},
		{
			name:   "slot mode without slot",
			mutate: func(r *Request) { r.Slot = nil },
			want:   ErrNoSlotSelected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, st := newTestService(t, store.NewMemoryPort())

			req := validSlotRequest()
			tt.mutate(&req)

			_, err := svc.Book(req, nil)
			assert.Equal(t, tt.want, err)
			assert.Empty(t, st.Appointments())
		})
	}
}

func TestBook_WindowBoundary(t *testing.T) {
	svc, _ := newTestService(t, store.NewMemoryPort())

	req := validSlotRequest()
	req.Slot = nil
	req.UseCustomTime = true
	req.CustomStartTime = "10:00"
	req.CustomEndTime = "11:00"

	// Day 30 from the fixed clock is the last acceptable date.
	req.CustomDate = "2026-09-27"
	_, err := svc.Book(req, nil)
	assert.NoError(t, err)

	req.CustomDate = "2026-09-28"
	_, err = svc.Book(req, nil)
	assert.Equal(t, ErrDateOutOfRange, err)
}

func TestBook_StoreFailure(t *testing.T) {
	svc, _ := newTestService(t, appointmentSaveFails{inner: store.NewMemoryPort()})

	_, err := svc.Book(validSlotRequest(), nil)
	assert.Equal(t, ErrBookingFailed, err)
}

func TestBook_CloseCallback(t *testing.T) {
	svc, _ := newTestService(t, store.NewMemoryPort())
	svc.SetCloseDelay(time.Millisecond)

	closed := make(chan struct{})
	_, err := svc.Book(validSlotRequest(), func() { close(closed) })
	require.NoError(t, err)

	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("close callback never fired")
	}
}

func TestBook_ValidationFailureSkipsCallback(t *testing.T) {
	svc, _ := newTestService(t, store.NewMemoryPort())
	svc.SetCloseDelay(time.Millisecond)

	fired := make(chan struct{})
	req := validSlotRequest()
	req.ClientName = ""

	_, err := svc.Book(req, func() { close(fired) })
	require.Error(t, err)

	select {
	case <-fired:
		t.Fatal("close callback fired for a rejected booking")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestFutureDates(t *testing.T) {
	svc, _ := newTestService(t, store.NewMemoryPort())

	dates := svc.FutureDates()
	require.Len(t, dates, 30)
	assert.Equal(t, "2026-08-29", dates[0])
	assert.Equal(t, "2026-09-27", dates[29])
}
