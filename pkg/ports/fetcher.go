package ports

import (
	"context"

	"github.com/labspc/swup-gru-ai/pkg/domain"
)

// Fetcher retrieves and parses the destination document for a navigation.
// The returned page carries the URL the document was actually served from,
// so the sequencer can detect server-side redirects.
type Fetcher interface {
	// FetchPage fetches the document at url and parses it into page data.
	// A transport or parse failure is returned as-is; the engine lets it
	// propagate and performs no content replacement.
	FetchPage(ctx context.Context, url string) (*domain.Page, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string) (*domain.Page, error)

// FetchPage implements Fetcher.
func (f FetcherFunc) FetchPage(ctx context.Context, url string) (*domain.Page, error) {
	return f(ctx, url)
}
