package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gipersonic/miet/internal/adapters/file"
	"github.com/gipersonic/miet/pkg/domain"
)

const sampleCatalog = `
Math:
  Algebra: algebra_v1
  Geometry: geometry_v1
Physics: physics_v1
Chemistry:
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseTree_PreservesDocumentOrder(t *testing.T) {
	root, err := file.ParseTree([]byte(sampleCatalog))
	require.NoError(t, err)

	assert.Equal(t, domain.KindInterior, root.Kind)
	assert.Equal(t, []string{"Math", "Physics", "Chemistry"}, root.Labels())

	math, ok := root.Child("Math")
	require.True(t, ok)
	assert.Equal(t, []string{"Algebra", "Geometry"}, math.Node.Labels())
}

func TestParseTree_ScalarsBecomeIndirections(t *testing.T) {
	root, err := file.ParseTree([]byte(sampleCatalog))
	require.NoError(t, err)

	physics, ok := root.Child("Physics")
	require.True(t, ok)
	assert.Equal(t, domain.KindIndirection, physics.Node.Kind)
	assert.Equal(t, "physics_v1", physics.Node.Resource)
}

func TestParseTree_NullValueIsEmptyLeaf(t *testing.T) {
	root, err := file.ParseTree([]byte(sampleCatalog))
	require.NoError(t, err)

	chemistry, ok := root.Child("Chemistry")
	require.True(t, ok)
	assert.Equal(t, domain.KindLeaf, chemistry.Node.Kind)
	assert.Equal(t, domain.NoContentText, chemistry.Node.LeafText())
}

func TestParseTree_EmptyDocument(t *testing.T) {
	root, err := file.ParseTree(nil)
	require.NoError(t, err)
	assert.True(t, root.IsLeafBoundary())
}

func TestParseTree_RejectsSequences(t *testing.T) {
	_, err := file.ParseTree([]byte("- one\n- two\n"))
	assert.Error(t, err)
}

func TestCatalogSource_ReloadsOnEachRead(t *testing.T) {
	path := writeTemp(t, "catalog.yaml", "Math: algebra_v1\n")
	source := file.NewCatalogSource(path)
	ctx := context.Background()

	root, err := source.Root(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Math"}, root.Labels())

	require.NoError(t, os.WriteFile(path, []byte("Math: algebra_v1\nBiology: cells_v1\n"), 0o644))
	root, err = source.Root(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Math", "Biology"}, root.Labels())
}

func TestCatalogSource_MissingFile(t *testing.T) {
	source := file.NewCatalogSource(filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := source.Root(context.Background())
	assert.Error(t, err)
}

const sampleQuizzes = `
"Math/Algebra#quiz":
  - prompt: "2+2?"
    options: ["3", "4"]
    answer: "4"
  - prompt: "x+x?"
    answer: "2x"
`

func TestQuizSource_DecodesQuestions(t *testing.T) {
	path := writeTemp(t, "quiz.yaml", sampleQuizzes)
	source := file.NewQuizSource(path)

	questions, err := source.Questions(context.Background(), "Math/Algebra#quiz")
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "2+2?", questions[0].Prompt)
	assert.Equal(t, []string{"3", "4"}, questions[0].Options)
	assert.Equal(t, "4", questions[0].Answer)
	assert.Empty(t, questions[1].Options)
}

func TestQuizSource_UnknownKey(t *testing.T) {
	path := writeTemp(t, "quiz.yaml", sampleQuizzes)
	source := file.NewQuizSource(path)

	_, err := source.Questions(context.Background(), "History#quiz")
	assert.ErrorIs(t, err, domain.ErrQuizUnavailable)
}
