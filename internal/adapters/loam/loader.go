package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aretw0/loam"

	"github.com/gipersonic/miet/pkg/domain"
)

// ResourceMetadata is the frontmatter of a catalog resource document.
// A document with children describes an interior sub-tree; without them
// its markdown body is the leaf content.
type ResourceMetadata struct {
	Title    string     `json:"title" mapstructure:"title"`
	Children []ChildRef `json:"children" mapstructure:"children"`
}

// ChildRef is one ordered entry of a sub-tree. Resource points at
// another document; Text carries inline leaf content instead.
type ChildRef struct {
	Label    string `json:"label" mapstructure:"label"`
	Resource string `json:"resource" mapstructure:"resource"`
	Text     string `json:"text" mapstructure:"text"`
}

// Loader implements ports.ResourceLoader over a Loam document
// repository.
type Loader struct {
	repo *loam.TypedRepository[ResourceMetadata]
}

// New creates a loader from an existing typed repository.
func New(repo *loam.TypedRepository[ResourceMetadata]) *Loader {
	return &Loader{repo: repo}
}

// Open initializes a read-only Loam repository at path and returns a
// loader over it. Strict mode keeps frontmatter decoding consistent
// across document formats.
func Open(path string) (*Loader, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}

	return New(loam.NewTypedRepository[ResourceMetadata](repo)), nil
}

// LoadResource fetches the document and converts it into a catalog
// node.
func (l *Loader) LoadResource(ctx context.Context, id string) (*domain.Node, error) {
	doc, err := l.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loam get failed for %s: %w", id, err)
	}

	if len(doc.Data.Children) == 0 {
		return domain.Leaf(strings.TrimSpace(doc.Content)), nil
	}

	children := make([]domain.Child, 0, len(doc.Data.Children))
	for i, ref := range doc.Data.Children {
		if ref.Label == "" {
			return nil, fmt.Errorf("resource %s: child %d has no label", id, i+1)
		}
		var node *domain.Node
		if ref.Resource != "" {
			node = domain.Indirection(ref.Resource)
		} else {
			node = domain.Leaf(ref.Text)
		}
		children = append(children, domain.Child{Label: ref.Label, Node: node})
	}
	return domain.Interior(children...), nil
}
