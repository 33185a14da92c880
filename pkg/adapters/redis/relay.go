package redis

import (
	"context"
	"fmt"

	backend "github.com/redis/go-redis/v9"

	"github.com/gipersonic/miet/pkg/domain"
)

// RelayStore implements ports.RelayStore using Redis. The one-shot
// semantics map directly onto GETDEL.
type RelayStore struct {
	client *backend.Client
	prefix string
}

// NewRelayStore creates a relay store from an existing client.
func NewRelayStore(client *backend.Client) *RelayStore {
	return &RelayStore{
		client: client,
		prefix: "miet:relay:",
	}
}

func (r *RelayStore) key(operatorID string) string {
	return r.prefix + operatorID
}

// SetTarget records the user an operator's next message should go to.
// An existing target is silently replaced.
func (r *RelayStore) SetTarget(ctx context.Context, operatorID, userID string) error {
	if err := r.client.Set(ctx, r.key(operatorID), userID, 0).Err(); err != nil {
		return fmt.Errorf("failed to set relay target: %w", err)
	}
	return nil
}

// TakeTarget consumes and returns the pending target.
func (r *RelayStore) TakeTarget(ctx context.Context, operatorID string) (string, error) {
	val, err := r.client.GetDel(ctx, r.key(operatorID)).Result()
	if err != nil {
		if err == backend.Nil {
			return "", domain.ErrNoRelayTarget
		}
		return "", fmt.Errorf("failed to take relay target: %w", err)
	}
	return val, nil
}
