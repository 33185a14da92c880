package ports

import (
	"context"

	"github.com/gipersonic/miet/pkg/domain"
)

// SessionStore defines the interface for persisting per-user sessions.
type SessionStore interface {
	// Save persists the session for a given user ID.
	Save(ctx context.Context, userID string, session *domain.Session) error

	// Load retrieves the session for a given user ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, userID string) (*domain.Session, error)

	// Delete removes the session for a given user ID.
	Delete(ctx context.Context, userID string) error
}

// RelayStore holds the ephemeral operator → user reply associations.
// At most one pending target per operator; setting a new one silently
// replaces any prior target (last-write-wins).
type RelayStore interface {
	// SetTarget records that the operator's next message should reach
	// the given user.
	SetTarget(ctx context.Context, operatorID, userID string) error

	// TakeTarget consumes the pending target (one-shot per link).
	// Returns domain.ErrNoRelayTarget if nothing is pending.
	TakeTarget(ctx context.Context, operatorID string) (string, error)
}
