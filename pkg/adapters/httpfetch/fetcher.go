// Package httpfetch implements the fetch collaborator over plain HTTP.
// It downloads the destination document and parses the title and the
// configured containers into page data.
package httpfetch

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/labspc/swup-gru-ai/internal/logging"
	"github.com/labspc/swup-gru-ai/pkg/domain"
	"github.com/labspc/swup-gru-ai/pkg/urlutil"
)

// Fetcher implements ports.Fetcher against an HTTP origin.
type Fetcher struct {
	client     *http.Client
	base       *url.URL
	containers []string
	logger     *slog.Logger
}

// Option configures the Fetcher.
type Option func(*Fetcher)

// WithClient injects a custom HTTP client.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		if client != nil {
			f.client = client
		}
	}
}

// WithLogger sets the logger for fetch diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// New creates a Fetcher rooted at the given origin (e.g. "https://example.com").
// Containers are the selectors extracted from every fetched document.
func New(origin string, containers []string, opts ...Option) (*Fetcher, error) {
	base, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("invalid origin %q: %w", origin, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("origin %q must be absolute", origin)
	}

	f := &Fetcher{
		client:     &http.Client{Timeout: 30 * time.Second},
		base:       base,
		containers: containers,
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// FetchPage downloads and parses the document at the given URL.
// The returned page's URL is the final, redirect-resolved location in
// host-relative form.
func (f *Fetcher) FetchPage(ctx context.Context, rawURL string) (*domain.Page, error) {
	rel, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	target := f.base.ResolveReference(rel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "text/html")
	req.Header.Set("X-Requested-With", "swup")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", rawURL, resp.StatusCode)
	}

	// The client follows redirects; resp.Request holds the final URL.
	final := resp.Request.URL.RequestURI()

	title, blocks, err := parseDocument(resp.Body, f.containers)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", final, err)
	}

	if !urlutil.SameResolvedURL(final, rawURL) {
		f.logger.Debug("fetch resolved to a different url", "requested", rawURL, "final", final)
	}

	return &domain.Page{
		URL:    final,
		Title:  title,
		Blocks: blocks,
	}, nil
}
