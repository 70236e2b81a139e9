package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointment_UpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		wantErr bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed},
		{name: "pending to cancelled", from: StatusPending, to: StatusCancelled},
		{name: "pending to completed rejected", from: StatusPending, to: StatusCompleted, wantErr: true},
		{name: "confirmed to completed", from: StatusConfirmed, to: StatusCompleted},
		{name: "confirmed to cancelled rejected", from: StatusConfirmed, to: StatusCancelled, wantErr: true},
		{name: "confirmed to pending rejected", from: StatusConfirmed, to: StatusPending, wantErr: true},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusPending, wantErr: true},
		{name: "completed is terminal", from: StatusCompleted, to: StatusConfirmed, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Appointment{Status: tt.from}
			err := a.UpdateStatus(tt.to)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.from, a.Status)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.to, a.Status)
			}
		})
	}
}
