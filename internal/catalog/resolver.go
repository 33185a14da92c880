package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gipersonic/miet/internal/logging"
	"github.com/gipersonic/miet/pkg/domain"
	"github.com/gipersonic/miet/pkg/ports"
)

// Resolver walks label paths through the catalog, dereferencing
// indirections on the way. It holds no state between calls: the source is
// re-read per resolution so catalog edits are visible immediately, and
// loaded resources are cached only for the duration of one call.
type Resolver struct {
	source    ports.CatalogSource
	resources ports.ResourceLoader
	logger    *slog.Logger
}

// Option configures the Resolver.
type Option func(*Resolver)

// WithResources injects the loader for external sub-resources. Without
// one, every indirection degrades to its raw token as leaf text.
func WithResources(loader ports.ResourceLoader) Option {
	return func(r *Resolver) {
		r.resources = loader
	}
}

// WithLogger configures a logger for resolution events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver creates a resolver over the given catalog source.
func NewResolver(source ports.CatalogSource, opts ...Option) *Resolver {
	r := &Resolver{
		source: source,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve walks the path from the catalog root and returns the node it
// ends on. Every prefix must traverse an interior node containing the next
// label, otherwise domain.ErrNotFound is returned. Indirections that fail
// to load degrade to their raw token as leaf content; that is a successful
// resolution, never an error.
func (r *Resolver) Resolve(ctx context.Context, path []string) (*domain.Node, error) {
	node, err := r.source.Root(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog root: %w", err)
	}

	// Resources loaded once per call; no cross-call cache.
	cache := make(map[string]*domain.Node)

	for _, label := range path {
		if node.Kind == domain.KindIndirection {
			loaded, err := r.deref(ctx, cache, node.Resource)
			if err != nil {
				// The remaining path cannot be traversed; degrade to
				// the raw token as leaf content.
				r.logger.Warn("resource load failed mid-path", "resource", node.Resource, "err", err)
				return domain.Leaf(node.Resource), nil
			}
			node = loaded
		}

		if node.Kind != domain.KindInterior {
			return nil, fmt.Errorf("%w: cannot traverse %q", domain.ErrNotFound, label)
		}
		child, ok := node.Child(label)
		if !ok {
			return nil, fmt.Errorf("%w: no child %q", domain.ErrNotFound, label)
		}
		node = child.Node
	}

	if node.Kind == domain.KindIndirection {
		loaded, err := r.deref(ctx, cache, node.Resource)
		if err != nil {
			r.logger.Warn("resource load failed", "resource", node.Resource, "err", err)
			return domain.Leaf(node.Resource), nil
		}
		node = loaded
	}

	return node, nil
}

func (r *Resolver) deref(ctx context.Context, cache map[string]*domain.Node, resource string) (*domain.Node, error) {
	if node, ok := cache[resource]; ok {
		return node, nil
	}
	if r.resources == nil {
		return nil, fmt.Errorf("no resource loader configured")
	}
	node, err := r.resources.LoadResource(ctx, resource)
	if err != nil {
		return nil, err
	}
	cache[resource] = node
	return node, nil
}
