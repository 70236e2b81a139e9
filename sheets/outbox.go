package sheets

import (
	"context"
	"log"

	"github.com/tacmarket/marketplace-api/models"
)

type EventKind int

const (
	EventProvider EventKind = iota
	EventProfile
	EventAppointment
	EventAnalytics
)

// Event is a tagged union; Kind selects which payload field is set.
type Event struct {
	Kind         EventKind
	Provider     models.ServiceProvider
	Profile      models.LocalProfile
	Appointment  models.Appointment
	ProviderName string
	Analytics    AnalyticsRow
}

// Outbox decouples sheet mirroring from store mutations. Delivery is
// at-most-once and best-effort: a full queue drops the event, a failed sync
// is logged and swallowed. The primary mutation is never blocked or rolled
// back.
type Outbox struct {
	mirror *Mirror
	events chan Event
	done   chan struct{}
}

func NewOutbox(mirror *Mirror, size int) *Outbox {
	return &Outbox{
		mirror: mirror,
		events: make(chan Event, size),
		done:   make(chan struct{}),
	}
}

// Start launches the single worker goroutine.
func (o *Outbox) Start() {
	go o.run()
}

func (o *Outbox) run() {
	defer close(o.done)
	for ev := range o.events {
		var err error
		switch ev.Kind {
		case EventProvider:
			err = o.mirror.SyncProvider(context.Background(), ev.Provider)
		case EventProfile:
			err = o.mirror.SyncProfile(context.Background(), ev.Profile)
		case EventAppointment:
			err = o.mirror.SyncAppointment(context.Background(), ev.Appointment, ev.ProviderName)
		case EventAnalytics:
			err = o.mirror.AppendAnalytics(context.Background(), ev.Analytics)
		}
		if err != nil {
			log.Printf("Sheet sync failed (event kind %d): %v", ev.Kind, err)
		}
	}
}

// Enqueue never blocks; when the queue is full the event is dropped.
func (o *Outbox) Enqueue(ev Event) {
	if o == nil {
		return
	}
	select {
	case o.events <- ev:
	default:
		log.Printf("Sync queue full, dropping event (kind %d)", ev.Kind)
	}
}

// Close drains the queue and stops the worker.
func (o *Outbox) Close() {
	close(o.events)
	<-o.done
}
