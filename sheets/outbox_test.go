package sheets

import (
	"testing"

	"github.com/tacmarket/marketplace-api/models"
)

func TestOutbox_UnconfiguredMirrorDrainsEvents(t *testing.T) {
	outbox := NewOutbox(&Mirror{}, 4)
	outbox.Start()

	outbox.Enqueue(Event{Kind: EventProvider, Provider: models.ServiceProvider{ID: "p-1"}})
	outbox.Enqueue(Event{Kind: EventProfile, Profile: models.LocalProfile{ID: "lp-1"}})
	outbox.Enqueue(Event{Kind: EventAppointment, Appointment: models.Appointment{ID: "a-1"}, ProviderName: "Thabo"})
	outbox.Enqueue(Event{Kind: EventAnalytics, Analytics: AnalyticsRow{Date: "2026-08-28"}})

	// Close blocks until the worker drained everything.
	outbox.Close()
}

func TestOutbox_EnqueueOnNilOutbox(t *testing.T) {
	var outbox *Outbox
	outbox.Enqueue(Event{Kind: EventProvider})
}

func TestOutbox_FullQueueDropsInsteadOfBlocking(t *testing.T) {
	// Never started, so nothing drains the channel.
	outbox := NewOutbox(&Mirror{}, 1)

	outbox.Enqueue(Event{Kind: EventAnalytics})
	outbox.Enqueue(Event{Kind: EventAnalytics})
}
