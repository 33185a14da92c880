package redis

import (
	"context"
	"fmt"
	"strings"

	backend "github.com/redis/go-redis/v9"
)

// ProgressSink implements ports.ProgressSink using a Redis set per user.
type ProgressSink struct {
	client *backend.Client
	prefix string
}

// NewProgressSink creates a progress sink from an existing client.
func NewProgressSink(client *backend.Client) *ProgressSink {
	return &ProgressSink{
		client: client,
		prefix: "miet:visited:",
	}
}

// MarkVisited adds the subject path to the user's visited set.
func (p *ProgressSink) MarkVisited(ctx context.Context, userID string, path []string) error {
	key := p.prefix + userID
	if err := p.client.SAdd(ctx, key, strings.Join(path, "/")).Err(); err != nil {
		return fmt.Errorf("failed to record visit: %w", err)
	}
	return nil
}

// Visited returns the subjects the user has seen.
func (p *ProgressSink) Visited(ctx context.Context, userID string) ([]string, error) {
	return p.client.SMembers(ctx, p.prefix+userID).Result()
}
