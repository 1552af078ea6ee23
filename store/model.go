package store

import (
	"context"
	"errors"
	"time"

	"github.com/SachinthaLakshan/evite-new-edition/invitation"
)

// Event is the persisted event record. Invitation is nil until a
// configuration has been saved for the event.
type Event struct {
	ID         string             `json:"id"`
	Title      string             `json:"title"`
	Date       string             `json:"date"`
	Location   string             `json:"location"`
	Invitation *invitation.Config `json:"invitation_config,omitempty"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// Attendee is a guest invited to an event.
type Attendee struct {
	ID      string `json:"id"`
	EventID string `json:"event_id"`
	Name    string `json:"name"`
}

var ErrNotFound = errors.New("not found")

// Store persists events, attendees and invitation configurations.
type Store interface {
	GetEvent(ctx context.Context, id string) (Event, error)
	// PutEvent creates or replaces an event. The stored invitation is kept
	// when e.Invitation is nil.
	PutEvent(ctx context.Context, e Event) (Event, error)
	// SaveInvitation replaces the invitation of an existing event.
	SaveInvitation(ctx context.Context, eventID string, cfg invitation.Config) error
	GetAttendee(ctx context.Context, id string) (Attendee, error)
	PutAttendee(ctx context.Context, a Attendee) (Attendee, error)
	Close() error
}

// Snapshot is the on-disk document of the file store.
type Snapshot struct {
	Events    []Event    `json:"events"`
	Attendees []Attendee `json:"attendees"`
}

func cloneEvent(e Event) Event {
	if e.Invitation != nil {
		cfg := e.Invitation.Clone()
		e.Invitation = &cfg
	}
	return e
}
