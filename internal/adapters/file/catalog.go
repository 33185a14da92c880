package file

import (
	"context"
	"fmt"
	"os"

	"github.com/gipersonic/miet/pkg/domain"
)

// CatalogSource implements ports.CatalogSource over a YAML file. The
// file is re-read on every Root call, so edits show up on the next
// resolution without a restart.
type CatalogSource struct {
	path string
}

// NewCatalogSource creates a source reading the catalog from path.
func NewCatalogSource(path string) *CatalogSource {
	return &CatalogSource{path: path}
}

// Root loads and parses the catalog file.
func (c *CatalogSource) Root(ctx context.Context) (*domain.Node, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseTree(data)
}
