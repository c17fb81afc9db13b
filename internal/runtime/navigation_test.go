package runtime_test

import (
	"context"
	"errors"
	"testing"

	"github.com/labspc/swup-gru-ai/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigate_CacheHitSkipsFetch(t *testing.T) {
	fetches := 0
	fetch := func(ctx context.Context, url string) (*domain.Page, error) {
		fetches++
		return testPage(url, "fetched"), nil
	}
	f := newFixture(t, fetch)
	ctx := context.Background()

	require.NoError(t, f.engine.Navigate(ctx, f.visit("/page-a")))
	require.Equal(t, 1, fetches)

	// Come back: the page is served from the store.
	require.NoError(t, f.engine.Navigate(ctx, f.visit("/")))
	require.NoError(t, f.engine.Navigate(ctx, f.visit("/page-a")))
	assert.Equal(t, 2, fetches, "second visit to /page-a must hit the cache")
}

func TestNavigate_FetchErrorPropagates(t *testing.T) {
	transport := errors.New("connection refused")
	fetch := func(ctx context.Context, url string) (*domain.Page, error) {
		return nil, transport
	}
	f := newFixture(t, fetch)
	ctx := context.Background()

	var observed error
	f.hooks.On(domain.HookFetchError, func(ctx context.Context, v *domain.Visit, ev any) error {
		observed = ev.(*domain.FetchErrorEvent).Err
		return nil
	})

	err := f.engine.Navigate(ctx, f.visit("/page-a"))
	require.ErrorIs(t, err, transport)
	assert.ErrorIs(t, observed, transport, "fetch:error observers see the cause")

	assert.Equal(t, "initial", f.doc.HTML("#swup"), "no content replacement on fetch failure")
	_, err = f.store.Get(ctx, "/page-a")
	assert.ErrorIs(t, err, domain.ErrPageNotFound, "no cache write on fetch failure")
}

func TestNavigate_VisitStartFailureAborts(t *testing.T) {
	fetches := 0
	fetch := func(ctx context.Context, url string) (*domain.Page, error) {
		fetches++
		return testPage(url, "fetched"), nil
	}
	f := newFixture(t, fetch)
	ctx := context.Background()

	boom := errors.New("blocked")
	f.hooks.On(domain.HookVisitStart, func(ctx context.Context, v *domain.Visit, ev any) error {
		return boom
	})

	err := f.engine.Navigate(ctx, f.visit("/page-a"))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, fetches, "a vetoed visit never reaches the fetch")
}

func TestPreload_PopulatesStore(t *testing.T) {
	fetches := 0
	fetch := func(ctx context.Context, url string) (*domain.Page, error) {
		fetches++
		return testPage(url, "preloaded"), nil
	}
	f := newFixture(t, fetch)
	ctx := context.Background()

	page, err := f.engine.Preload(ctx, "/next")
	require.NoError(t, err)
	assert.Equal(t, "preloaded", page.Title)

	// Preloading again is served from the store.
	_, err = f.engine.Preload(ctx, "/next")
	require.NoError(t, err)
	assert.Equal(t, 1, fetches)

	// The following navigation hits the cache.
	require.NoError(t, f.engine.Navigate(ctx, f.visit("/next")))
	assert.Equal(t, 1, fetches)
}

func TestClearCache(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.engine.Preload(ctx, "/a")
	require.NoError(t, err)
	require.Equal(t, 1, f.store.Len())

	fired := false
	f.hooks.On(domain.HookCacheClear, func(ctx context.Context, v *domain.Visit, ev any) error {
		fired = true
		return nil
	})

	require.NoError(t, f.engine.ClearCache(ctx))
	assert.True(t, fired)
	assert.Equal(t, 0, f.store.Len())
}

func TestNavigate_DefaultContainersApplied(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	v := domain.NewVisit("/", "/page-a", domain.TriggerClick)
	// No containers set: the engine's defaults apply.
	require.NoError(t, f.engine.Navigate(ctx, v))
	assert.Equal(t, []string{"#swup"}, v.Containers)
}

func TestNavigate_PushesHistoryEntry(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	require.NoError(t, f.engine.Navigate(ctx, f.visit("/page-a")))

	assert.Equal(t, 2, f.history.Len(), "one entry pushed on top of the origin")
	assert.Equal(t, "/page-a", f.history.CurrentURL())
	assert.Empty(t, f.history.Replacements())
}

func TestNavigate_PopstateDoesNotPush(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	v := domain.NewVisit(f.history.CurrentURL(), "/page-a", domain.TriggerPopstate)
	v.Containers = []string{"#swup"}
	require.NoError(t, f.engine.Navigate(ctx, v))

	assert.Equal(t, 1, f.history.Len(), "history traversals reuse the existing entry")
}
