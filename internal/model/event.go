package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventType names an identity lifecycle transition.
type EventType string

const (
	EventUserCreated EventType = "UserCreated"
	EventUserUpdated EventType = "UserUpdated"
)

// IdentityEvent is an immutable fact describing a state transition of a user
// record. Exactly one event is produced per successful mutating operation.
type IdentityEvent struct {
	Type          EventType `json:"eventType"`
	UserID        uuid.UUID `json:"userId"`
	Email         string    `json:"email"`
	UpdatedFields []string  `json:"updatedFields,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// EventEmitter hands identity events to an outbound transport. Emit never
// blocks the triggering operation and never reports failure to it.
type EventEmitter interface {
	Emit(event IdentityEvent)
}

// EventSink is the outbound transport boundary. A real broker client can be
// substituted without touching the authentication service.
type EventSink interface {
	Publish(ctx context.Context, event IdentityEvent) error
}
