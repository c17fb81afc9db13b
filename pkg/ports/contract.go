package ports

import (
	"context"
	"testing"

	"github.com/labspc/swup-gru-ai/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunPageStoreContract runs a suite of tests to verify that a PageStore
// implementation adheres to the defined interface contract.
func RunPageStoreContract(t *testing.T, store PageStore) {
	ctx := context.Background()

	page := func(url, title string) *domain.Page {
		return &domain.Page{
			URL:   url,
			Title: title,
			Blocks: []domain.Block{
				{Selector: "#swup", HTML: "<h1>" + title + "</h1>"},
			},
		}
	}

	t.Run("Set and Get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "/contract-a", page("/contract-a", "A")))

		got, err := store.Get(ctx, "/contract-a")
		require.NoError(t, err)
		assert.Equal(t, "/contract-a", got.URL)
		assert.Equal(t, "A", got.Title)
		require.Len(t, got.Blocks, 1)
		assert.Equal(t, "#swup", got.Blocks[0].Selector)
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := store.Get(ctx, "/contract-missing")
		assert.ErrorIs(t, err, domain.ErrPageNotFound)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "/contract-b", page("/contract-b", "old")))
		require.NoError(t, store.Set(ctx, "/contract-b", page("/contract-b", "new")))

		got, err := store.Get(ctx, "/contract-b")
		require.NoError(t, err)
		assert.Equal(t, "new", got.Title)
	})

	t.Run("Normalized Keys", func(t *testing.T) {
		// Trailing slash and fragment differences address the same entry.
		require.NoError(t, store.Set(ctx, "/contract-c/", page("/contract-c", "C")))

		got, err := store.Get(ctx, "/contract-c")
		require.NoError(t, err)
		assert.Equal(t, "C", got.Title)

		got, err = store.Get(ctx, "/contract-c#frag")
		require.NoError(t, err)
		assert.Equal(t, "C", got.Title)
	})

	t.Run("Read Isolation", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "/contract-d", page("/contract-d", "D")))

		first, err := store.Get(ctx, "/contract-d")
		require.NoError(t, err)
		first.Title = "mutated"
		first.Blocks[0].HTML = "mutated"

		second, err := store.Get(ctx, "/contract-d")
		require.NoError(t, err)
		assert.Equal(t, "D", second.Title, "callers must not mutate stored entries")
		assert.Equal(t, "<h1>D</h1>", second.Blocks[0].HTML)
	})

	t.Run("Empty Is Idempotent", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "/contract-e", page("/contract-e", "E")))

		require.NoError(t, store.Empty(ctx))
		_, err := store.Get(ctx, "/contract-e")
		assert.ErrorIs(t, err, domain.ErrPageNotFound)

		// Emptying an already-empty store is a no-op.
		require.NoError(t, store.Empty(ctx))
	})
}
