package models

import (
	"fmt"
	"time"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "Pending"
	StatusConfirmed AppointmentStatus = "Confirmed"
	StatusCancelled AppointmentStatus = "Cancelled"
	StatusCompleted AppointmentStatus = "Completed"
)

// Appointment is a booking request against a provider. ProviderID is a plain
// string reference and is not validated against the provider collection.
type Appointment struct {
	ID          string            `json:"id"`
	ProviderID  string            `json:"providerId"`
	ClientName  string            `json:"clientName"`
	ClientPhone string            `json:"clientPhone"`
	ClientEmail string            `json:"clientEmail"`
	Service     string            `json:"service"`
	Date        string            `json:"date"`
	StartTime   string            `json:"startTime"`
	EndTime     string            `json:"endTime"`
	Status      AppointmentStatus `json:"status"`
	Notes       string            `json:"notes"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// UpdateStatus enforces the appointment lifecycle: a pending request is
// confirmed or cancelled, a confirmed one can only complete. Cancelled and
// completed appointments are terminal.
func (a *Appointment) UpdateStatus(newStatus AppointmentStatus) error {
	switch a.Status {
	case StatusPending:
		if newStatus != StatusConfirmed && newStatus != StatusCancelled {
			return fmt.Errorf("invalid transition from %s to %s", a.Status, newStatus)
		}
	case StatusConfirmed:
		if newStatus != StatusCompleted {
			return fmt.Errorf("invalid transition from %s to %s", a.Status, newStatus)
		}
	default:
		return fmt.Errorf("no transitions allowed from %s", a.Status)
	}

	a.Status = newStatus
	return nil
}
