package ports

import (
	"context"

	"github.com/labspc/swup-gru-ai/pkg/domain"
)

// PageStore persists rendered pages between navigations, keyed by
// normalized URL.
//
// Policy decisions (whether to cache at all, when to empty) belong to the
// caller; implementations enforce no eviction or TTL of their own. Writes
// are atomic from the perspective of readers: a Get never observes a
// partially written entry.
type PageStore interface {
	// Set upserts the page under the normalized URL key.
	Set(ctx context.Context, url string, page *domain.Page) error

	// Get returns the page stored for the URL.
	// Returns domain.ErrPageNotFound if no entry exists.
	Get(ctx context.Context, url string) (*domain.Page, error)

	// Empty removes all entries. Idempotent; safe to call when already
	// empty.
	Empty(ctx context.Context) error
}
