package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users. Create must be atomic
// with respect to the email uniqueness constraint: of two concurrent inserts
// with the same email exactly one succeeds and the other observes
// ErrDuplicateIdentity from the storage layer itself.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Exists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user User) (User, error)
	UpdateDisplayName(ctx context.Context, id uuid.UUID, displayName string) (User, error)
}

// User represents a stored identity record. Email is case-normalized and
// immutable after creation; SecretHash never leaves the service boundary.
type User struct {
	ID          uuid.UUID
	Email       string
	SecretHash  string
	DisplayName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Profile is the read-only projection of a user returned to callers.
type Profile struct {
	ID          uuid.UUID `json:"userId"`
	Email       string    `json:"email"`
	DisplayName string    `json:"name"`
}

// ProfileOf builds the outward projection of a user.
func ProfileOf(u User) Profile {
	return Profile{ID: u.ID, Email: u.Email, DisplayName: u.DisplayName}
}
