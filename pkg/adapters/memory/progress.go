package memory

import (
	"context"
	"strings"
	"sync"
)

// ProgressSink records visited subjects in memory. Useful for the local
// chat command and tests; production deployments use the redis sink.
type ProgressSink struct {
	mu      sync.Mutex
	visited map[string][]string
}

// NewProgressSink creates an empty sink.
func NewProgressSink() *ProgressSink {
	return &ProgressSink{
		visited: make(map[string][]string),
	}
}

// MarkVisited appends the subject path to the user's visited list.
func (p *ProgressSink) MarkVisited(ctx context.Context, userID string, path []string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visited[userID] = append(p.visited[userID], strings.Join(path, "/"))
	return nil
}

// Visited returns the subjects the user has seen, in visit order.
func (p *ProgressSink) Visited(userID string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.visited[userID]...)
}
