package memory

import (
	"context"
	"sync"

	"github.com/gipersonic/miet/pkg/domain"
)

// RelayStore is an in-memory ports.RelayStore. Setting a target silently
// replaces any prior pending target for that operator.
type RelayStore struct {
	mu      sync.Mutex
	targets map[string]string
}

// NewRelayStore creates an empty relay table.
func NewRelayStore() *RelayStore {
	return &RelayStore{
		targets: make(map[string]string),
	}
}

// SetTarget records the operator's pending reply target.
func (s *RelayStore) SetTarget(ctx context.Context, operatorID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.targets[operatorID] = userID
	return nil
}

// TakeTarget consumes the pending target.
func (s *RelayStore) TakeTarget(ctx context.Context, operatorID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	target, ok := s.targets[operatorID]
	if !ok {
		return "", domain.ErrNoRelayTarget
	}
	delete(s.targets, operatorID)
	return target, nil
}
