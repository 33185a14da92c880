package ports

import (
	"context"

	"github.com/gipersonic/miet/pkg/domain"
)

// CatalogSource provides the subject tree. Root is called on every
// resolution so that catalog edits are visible on the next call.
type CatalogSource interface {
	Root(ctx context.Context) (*domain.Node, error)
}

// ResourceLoader dereferences catalog indirections: externally stored
// sub-trees or leaf text addressed by an opaque resource ID. The storage
// scheme (filesystem, document store, database row) belongs to the adapter.
type ResourceLoader interface {
	LoadResource(ctx context.Context, id string) (*domain.Node, error)
}

// QuizSource maps a subject-path-derived key (see domain.QuizKey) to an
// ordered question list. Returns domain.ErrQuizUnavailable when the
// subject has no quiz.
type QuizSource interface {
	Questions(ctx context.Context, key string) ([]domain.Question, error)
}
