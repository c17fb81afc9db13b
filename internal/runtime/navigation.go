package runtime

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/labspc/swup-gru-ai/pkg/domain"
)

const (
	outcomeOK         = "ok"
	outcomeError      = "error"
	outcomeSuperseded = "superseded"
)

// Navigate runs one full navigation attempt: publish the visit as the live
// navigation, fire visit:start, apply the outgoing markers, resolve the
// page (cache or fetch) and render it.
//
// A fetch or hook failure propagates to the caller; a navigation
// superseded mid-flight resolves silently with no visible effect.
func (e *Engine) Navigate(ctx context.Context, visit *domain.Visit) error {
	if len(visit.Containers) == 0 {
		visit.Containers = e.containers
	}
	e.beginVisit(visit.To.URL)

	err := e.navigate(ctx, visit)
	outcome := outcomeOK
	switch {
	case err != nil:
		outcome = outcomeError
	case !e.isCurrent(visit.To.URL):
		outcome = outcomeSuperseded
	}
	e.metrics.ObserveNavigation(string(visit.Trigger), time.Since(visit.StartedAt), outcome)
	return err
}

func (e *Engine) navigate(ctx context.Context, visit *domain.Visit) error {
	if err := e.trigger(ctx, domain.HookVisitStart, visit, &domain.VisitStartEvent{URL: visit.To.URL}, nil); err != nil {
		return err
	}

	// History traversals already moved the location; everything else gets
	// a fresh entry. Redirect correction rewrites it in place later.
	if visit.Trigger != domain.TriggerPopstate {
		if err := e.history.PushState(visit.To.URL); err != nil {
			return fmt.Errorf("failed to push history: %w", err)
		}
	}

	if visit.Animation.Animate {
		e.doc.AddClass(e.classes.Changing)
		e.doc.AddClass(e.classes.Leaving)
	}

	page, err := e.loadPage(ctx, visit)
	if err != nil {
		if herr := e.trigger(ctx, domain.HookFetchError, visit, &domain.FetchErrorEvent{URL: visit.To.URL, Err: err}, nil); herr != nil {
			e.logger.Warn("fetch:error handler failed", "url", visit.To.URL, "error", herr)
		}
		return err
	}
	if page == nil {
		// Superseded while fetching: no render, no cache write.
		e.metrics.CountSupersession()
		return nil
	}

	return e.RenderPage(ctx, visit, page)
}

// loadPage resolves the page for a visit from the store or the fetcher.
// It returns (nil, nil) when the navigation was superseded during the
// fetch, in which case nothing may be written or rendered.
func (e *Engine) loadPage(ctx context.Context, visit *domain.Visit) (*domain.Page, error) {
	if e.cacheEnabled {
		page, err := e.store.Get(ctx, visit.To.URL)
		if err == nil {
			e.metrics.CountCacheLookup(true)
			return page, nil
		}
		if !errors.Is(err, domain.ErrPageNotFound) {
			return nil, fmt.Errorf("page store: %w", err)
		}
		e.metrics.CountCacheLookup(false)
	}

	if err := e.trigger(ctx, domain.HookFetchPage, visit, &domain.FetchPageEvent{URL: visit.To.URL}, nil); err != nil {
		return nil, err
	}

	page, err := e.fetcher.FetchPage(ctx, visit.To.URL)
	if err != nil {
		return nil, err
	}

	// Across the fetch suspension point a newer navigation may have
	// started; a superseded visit must not even touch the cache.
	if !e.isCurrent(visit.To.URL) {
		return nil, nil
	}

	if e.cacheEnabled {
		if err := e.store.Set(ctx, visit.To.URL, page); err != nil {
			return nil, fmt.Errorf("page store: %w", err)
		}
	}
	return page, nil
}

// Preload fetches a page into the store without touching the document or
// the current-navigation slot. It writes the store even when caching is
// disabled; render housekeeping reconciles that case.
func (e *Engine) Preload(ctx context.Context, url string) (*domain.Page, error) {
	if page, err := e.store.Get(ctx, url); err == nil {
		return page, nil
	} else if !errors.Is(err, domain.ErrPageNotFound) {
		return nil, fmt.Errorf("page store: %w", err)
	}

	page, err := e.fetcher.FetchPage(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := e.store.Set(ctx, url, page); err != nil {
		return nil, fmt.Errorf("page store: %w", err)
	}
	return page, nil
}

// ClearCache empties the page store, announcing it on the cache:clear hook.
func (e *Engine) ClearCache(ctx context.Context) error {
	return e.trigger(ctx, domain.HookCacheClear, nil, &domain.CacheClearEvent{},
		func(ctx context.Context, visit *domain.Visit, event any) error {
			return e.store.Empty(ctx)
		})
}
