package runtime

import (
	"context"
	"fmt"

	"github.com/labspc/swup-gru-ai/pkg/domain"
	"github.com/labspc/swup-gru-ai/pkg/hooks"
	"github.com/labspc/swup-gru-ai/pkg/urlutil"
)

// trigger runs a hook pipeline, recording the trigger for metrics.
func (e *Engine) trigger(ctx context.Context, hook domain.HookName, visit *domain.Visit, event any, def hooks.Handler) error {
	e.metrics.CountHookTrigger(string(hook))
	return e.hooks.Trigger(ctx, hook, visit, event, def)
}

// RenderPage commits a fetched page to the visible document.
//
// The sequence is fixed: leaving-marker removal, supersession check,
// redirect correction, url:updated, rendering marker, content:replace
// (hook with the DOM-swap default), page:view, cache housekeeping,
// transition entry. A hook failure aborts the remaining steps; steps
// already applied are left in place.
func (e *Engine) RenderPage(ctx context.Context, visit *domain.Visit, page *domain.Page) error {
	// The previous navigation's outgoing marker must not bleed into the
	// new page.
	e.doc.RemoveClass(e.classes.Leaving)

	// Only the most recently started navigation may ever reach content
	// replacement. A superseded render terminates silently.
	if !e.isCurrent(visit.To.URL) {
		e.logger.Debug("render superseded", "url", visit.To.URL, "current", e.CurrentVisitURL())
		e.metrics.CountSupersession()
		return nil
	}

	// Server-side redirect: rewrite the history entry to the resolved URL
	// so back/forward never targets the pre-redirect address, then carry
	// the correction into the slot and the visit.
	if page.URL != "" && !urlutil.SameResolvedURL(page.URL, visit.To.URL) {
		e.logger.Debug("redirect detected", "requested", visit.To.URL, "resolved", page.URL)
		if err := e.history.ReplaceState(page.URL); err != nil {
			return fmt.Errorf("failed to correct history: %w", err)
		}
		e.setCurrentURL(page.URL)
		visit.To.URL = page.URL
	}

	// Announce the (possibly corrected) URL. Fires on every render.
	if err := e.trigger(ctx, domain.HookURLUpdated, visit, &domain.URLUpdatedEvent{URL: visit.To.URL}, nil); err != nil {
		return err
	}

	// Animated visits get the rendering marker; instant renders never do,
	// so stylesheets can gate animation purely on its presence.
	if visit.Animation.Animate {
		e.doc.AddClass(e.classes.Rendering)
	}

	event := &domain.ContentReplaceEvent{
		Page:       page,
		Containers: visit.Containers,
	}
	if err := e.trigger(ctx, domain.HookContentReplace, visit, event, e.defaultReplaceContent); err != nil {
		return err
	}

	if err := e.trigger(ctx, domain.HookPageView, visit, &domain.PageViewEvent{URL: visit.To.URL, Title: page.Title}, nil); err != nil {
		return err
	}

	// Disabled-cache semantics hold even when a preload populated the
	// store in the meantime.
	if !e.cacheEnabled {
		if err := e.store.Empty(ctx); err != nil {
			return fmt.Errorf("cache housekeeping: %w", err)
		}
	}

	return e.enterTransition(ctx, visit)
}

// defaultReplaceContent is the built-in behavior of the content:replace
// hook: swap the designated containers and install the new title.
func (e *Engine) defaultReplaceContent(ctx context.Context, visit *domain.Visit, event any) error {
	ev, ok := event.(*domain.ContentReplaceEvent)
	if !ok {
		return fmt.Errorf("content:replace: unexpected event payload %T", event)
	}
	if err := e.doc.ReplaceContent(ev.Page, ev.Containers); err != nil {
		return err
	}
	e.doc.SetTitle(ev.Page.Title)
	return nil
}

// enterTransition is the terminal render step. Its default settles the
// transient marker classes.
func (e *Engine) enterTransition(ctx context.Context, visit *domain.Visit) error {
	return e.trigger(ctx, domain.HookTransitionEnter, visit, &domain.TransitionEnterEvent{URL: visit.To.URL},
		func(ctx context.Context, visit *domain.Visit, event any) error {
			e.doc.RemoveClass(e.classes.Rendering)
			e.doc.RemoveClass(e.classes.Changing)
			return nil
		})
}
