package domain

// HookName identifies a lifecycle extension point where zero or more
// handlers may run.
type HookName string

const (
	// HookVisitStart fires when a navigation begins, before any fetch.
	HookVisitStart HookName = "visit:start"

	// HookFetchPage fires immediately before the destination document is
	// fetched (cache misses only).
	HookFetchPage HookName = "fetch:page"

	// HookFetchError fires when the fetch collaborator fails. The failure
	// still propagates to the navigation caller.
	HookFetchError HookName = "fetch:error"

	// HookURLUpdated announces the (possibly redirect-corrected) URL.
	// Fires on every render, redirect or not.
	HookURLUpdated HookName = "url:updated"

	// HookContentReplace performs the DOM swap. Its default handler swaps
	// the designated containers; registering a replacing handler is the
	// documented mechanism for altering which containers are swapped or
	// substituting different page data.
	HookContentReplace HookName = "content:replace"

	// HookPageView announces the final URL and title after the swap.
	// No default handler; intended for analytics-style observers.
	HookPageView HookName = "page:view"

	// HookTransitionEnter is the terminal render step. Its default handler
	// settles the transient marker classes.
	HookTransitionEnter HookName = "transition:enter"

	// HookCacheClear fires when the page store is emptied explicitly.
	HookCacheClear HookName = "cache:clear"
)

// VisitStartEvent is the payload of HookVisitStart.
type VisitStartEvent struct {
	URL string
}

// FetchPageEvent is the payload of HookFetchPage.
type FetchPageEvent struct {
	URL string
}

// FetchErrorEvent is the payload of HookFetchError.
type FetchErrorEvent struct {
	URL string
	Err error
}

// URLUpdatedEvent is the payload of HookURLUpdated.
type URLUpdatedEvent struct {
	URL string
}

// ContentReplaceEvent is the payload of HookContentReplace. Handlers may
// rewrite Page and Containers before the default swap runs; a handler
// replacing the default is fully responsible for performing the swap.
type ContentReplaceEvent struct {
	Page       *Page
	Containers []string
}

// PageViewEvent is the payload of HookPageView.
type PageViewEvent struct {
	URL   string
	Title string
}

// TransitionEnterEvent is the payload of HookTransitionEnter.
type TransitionEnterEvent struct {
	URL string
}

// CacheClearEvent is the payload of HookCacheClear.
type CacheClearEvent struct{}
