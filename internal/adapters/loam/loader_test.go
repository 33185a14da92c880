package loam

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gipersonic/miet/pkg/domain"
)

func setupRepo(t *testing.T) core.Repository {
	t.Helper()

	absPath, err := filepath.Abs(t.TempDir())
	require.NoError(t, err)

	repo, err := loam.Init(absPath)
	require.NoError(t, err, "failed to init loam repo")
	return repo
}

func TestLoader_LeafDocument(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	doc := core.Document{
		ID: "mechanics_v1.md",
		Content: `---
title: Mechanics
---
Newton's laws of motion.`,
	}
	require.NoError(t, repo.Save(ctx, doc))

	loader := New(loam.NewTypedRepository[ResourceMetadata](repo))
	node, err := loader.LoadResource(ctx, "mechanics_v1")
	require.NoError(t, err)

	assert.Equal(t, domain.KindLeaf, node.Kind)
	assert.Equal(t, "Newton's laws of motion.", node.Text)
}

func TestLoader_SubTreeDocument(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	doc := core.Document{
		ID: "physics_v1.md",
		Content: `---
title: Physics
children:
  - label: Mechanics
    resource: mechanics_v1
  - label: Optics
    text: Light travels in straight lines.
---
`,
	}
	require.NoError(t, repo.Save(ctx, doc))

	loader := New(loam.NewTypedRepository[ResourceMetadata](repo))
	node, err := loader.LoadResource(ctx, "physics_v1")
	require.NoError(t, err)

	require.Equal(t, domain.KindInterior, node.Kind)
	assert.Equal(t, []string{"Mechanics", "Optics"}, node.Labels())

	mechanics, ok := node.Child("Mechanics")
	require.True(t, ok)
	assert.Equal(t, domain.KindIndirection, mechanics.Node.Kind)
	assert.Equal(t, "mechanics_v1", mechanics.Node.Resource)

	optics, ok := node.Child("Optics")
	require.True(t, ok)
	assert.Equal(t, domain.KindLeaf, optics.Node.Kind)
	assert.Equal(t, "Light travels in straight lines.", optics.Node.Text)
}

func TestLoader_MissingDocument(t *testing.T) {
	repo := setupRepo(t)

	loader := New(loam.NewTypedRepository[ResourceMetadata](repo))
	_, err := loader.LoadResource(context.Background(), "absent_v1")
	assert.Error(t, err)
}

func TestLoader_ChildWithoutLabel(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	doc := core.Document{
		ID: "broken_v1.md",
		Content: `---
children:
  - resource: mechanics_v1
---
`,
	}
	require.NoError(t, repo.Save(ctx, doc))

	loader := New(loam.NewTypedRepository[ResourceMetadata](repo))
	_, err := loader.LoadResource(ctx, "broken_v1")
	assert.ErrorContains(t, err, "no label")
}
