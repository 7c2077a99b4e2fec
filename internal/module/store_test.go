package module_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mahitha-23/ClassPilot/internal/lesson"
	"github.com/Mahitha-23/ClassPilot/internal/module"
)

func newModule(name string) *module.Module {
	return &module.Module{
		ID:         uuid.New(),
		ModuleName: name,
		Lesson:     lesson.Lesson{Title: "Lesson for " + name},
		Difficulty: lesson.DifficultyBeginner,
		Time:       "30 minutes",
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyListAll", func(t *testing.T) {
		store := module.NewMemoryStore()
		modules, err := store.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, modules)
	})

	t.Run("AppendPreservesInsertionOrder", func(t *testing.T) {
		store := module.NewMemoryStore()
		first := newModule("Biology Basics")
		second := newModule("Cell Division")
		third := newModule("Biology Basics") // duplicates append, never dedup

		require.NoError(t, store.Append(ctx, first))
		require.NoError(t, store.Append(ctx, second))
		require.NoError(t, store.Append(ctx, third))

		modules, err := store.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, modules, 3)
		assert.Equal(t, first.ID, modules[0].ID)
		assert.Equal(t, second.ID, modules[1].ID)
		assert.Equal(t, third.ID, modules[2].ID)
	})

	t.Run("ListAllReturnsACopy", func(t *testing.T) {
		store := module.NewMemoryStore()
		require.NoError(t, store.Append(ctx, newModule("Chemistry")))

		modules, err := store.ListAll(ctx)
		require.NoError(t, err)
		modules[0] = nil

		again, err := store.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, again, 1)
		assert.Equal(t, "Chemistry", again[0].ModuleName)
	})
}
