package ports

// History mirrors the browser session-history surface the engine needs.
// The history stack is treated as an opaque append/replace log addressed
// by URL; the engine never reads past entries.
type History interface {
	// CurrentURL reads the currently displayed location.
	CurrentURL() string

	// PushState appends a new history entry without navigating.
	PushState(url string) error

	// ReplaceState rewrites the current history entry in place without
	// navigating. Used for redirect correction so back/forward targets the
	// resolved URL instead of the pre-redirect one.
	ReplaceState(url string) error
}
