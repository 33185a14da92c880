package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gipersonic/miet/pkg/domain"
)

// RunSessionStoreContract runs a suite of tests to verify that a
// SessionStore implementation adheres to the interface contract.
func RunSessionStoreContract(t *testing.T, store SessionStore) {
	ctx := context.Background()
	userID := "contract-user-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		session := domain.NewSession(userID)
		session.Path = []string{"Math", "Algebra"}
		session.BeginQuiz([]domain.Question{{Prompt: "2+2?", Answer: "4"}})
		session.Quiz.Score = 1
		session.Quiz.Index = 1

		err := store.Save(ctx, userID, session)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, userID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, session.Path, loaded.Path)
		assert.Equal(t, domain.OverlayQuiz, loaded.Overlay)
		require.NotNil(t, loaded.Quiz)
		assert.Equal(t, 1, loaded.Quiz.Score)
		assert.Equal(t, 1, loaded.Quiz.Index)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+userID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Isolation", func(t *testing.T) {
		// Mutating a loaded session must not leak into the store.
		session := domain.NewSession(userID)
		session.Path = []string{"Physics"}
		require.NoError(t, store.Save(ctx, userID, session))

		loaded, err := store.Load(ctx, userID)
		require.NoError(t, err)
		loaded.Path = append(loaded.Path, "Optics")

		again, err := store.Load(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, []string{"Physics"}, again.Path)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, userID, domain.NewSession(userID)))
		require.NoError(t, store.Delete(ctx, userID))

		_, err := store.Load(ctx, userID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})
}

// RunRelayStoreContract verifies the one-shot relay link semantics.
func RunRelayStoreContract(t *testing.T, store RelayStore) {
	ctx := context.Background()
	operator := "contract-op-" + time.Now().Format("20060102150405")

	t.Run("Take Without Set", func(t *testing.T) {
		_, err := store.TakeTarget(ctx, operator)
		assert.ErrorIs(t, err, domain.ErrNoRelayTarget)
	})

	t.Run("Set and Take", func(t *testing.T) {
		require.NoError(t, store.SetTarget(ctx, operator, "user-1"))

		target, err := store.TakeTarget(ctx, operator)
		require.NoError(t, err)
		assert.Equal(t, "user-1", target)

		// One-shot: the link is consumed.
		_, err = store.TakeTarget(ctx, operator)
		assert.ErrorIs(t, err, domain.ErrNoRelayTarget)
	})

	t.Run("Last Write Wins", func(t *testing.T) {
		require.NoError(t, store.SetTarget(ctx, operator, "user-1"))
		require.NoError(t, store.SetTarget(ctx, operator, "user-2"))

		target, err := store.TakeTarget(ctx, operator)
		require.NoError(t, err)
		assert.Equal(t, "user-2", target)
	})
}
