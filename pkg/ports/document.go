package ports

import "github.com/labspc/swup-gru-ai/pkg/domain"

// Document is the visible-document surface: container swaps, title updates
// and the transient marker classes stylesheets gate animations on.
type Document interface {
	// ReplaceContent swaps the designated containers with the page's
	// blocks. The swap is all-or-nothing: if any container is missing it
	// returns domain.ErrContainerMissing (wrapped) and leaves every
	// container untouched.
	ReplaceContent(page *domain.Page, containers []string) error

	// SetTitle updates the document title.
	SetTitle(title string)

	// AddClass adds a marker class to the root element. Idempotent.
	AddClass(name string)

	// RemoveClass removes a marker class from the root element. No-op if
	// absent.
	RemoveClass(name string)
}
