// Package runtime contains the sequencing core of the engine: the
// per-navigation pipeline and the render state machine.
package runtime

import (
	"log/slog"
	"sync"

	"github.com/labspc/swup-gru-ai/internal/config"
	"github.com/labspc/swup-gru-ai/internal/logging"
	"github.com/labspc/swup-gru-ai/pkg/hooks"
	"github.com/labspc/swup-gru-ai/pkg/observability"
	"github.com/labspc/swup-gru-ai/pkg/ports"
	"github.com/labspc/swup-gru-ai/pkg/urlutil"
)

// Engine sequences navigations and owns the process-wide current-navigation
// slot. All shared mutable state (the slot, the page store) is guarded, so
// navigations may run on interleaved goroutines.
type Engine struct {
	hooks   *hooks.Registry
	fetcher ports.Fetcher
	history ports.History
	doc     ports.Document
	store   ports.PageStore

	logger  *slog.Logger
	metrics observability.Recorder

	cacheEnabled bool
	containers   []string
	classes      config.Classes

	// The current-navigation slot: written once per navigation start,
	// read (never owned) by in-flight renders to decide whether they are
	// still relevant.
	mu         sync.Mutex
	currentURL string
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(rec observability.Recorder) EngineOption {
	return func(e *Engine) {
		if rec != nil {
			e.metrics = rec
		}
	}
}

// WithCache enables or disables page caching.
func WithCache(enabled bool) EngineOption {
	return func(e *Engine) {
		e.cacheEnabled = enabled
	}
}

// WithContainers sets the default container selectors for visits.
func WithContainers(containers []string) EngineOption {
	return func(e *Engine) {
		if len(containers) > 0 {
			e.containers = containers
		}
	}
}

// WithClasses overrides the marker class names.
func WithClasses(classes config.Classes) EngineOption {
	return func(e *Engine) {
		e.classes = classes
	}
}

// NewEngine creates the sequencing core with its collaborators.
func NewEngine(fetcher ports.Fetcher, history ports.History, doc ports.Document, store ports.PageStore, registry *hooks.Registry, opts ...EngineOption) *Engine {
	defaults := config.Default()
	e := &Engine{
		hooks:        registry,
		fetcher:      fetcher,
		history:      history,
		doc:          doc,
		store:        store,
		logger:       logging.NewNop(),
		metrics:      observability.NopRecorder{},
		cacheEnabled: defaults.Cache,
		containers:   defaults.Containers,
		classes:      defaults.Classes,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Hooks exposes the hook registry.
func (e *Engine) Hooks() *hooks.Registry {
	return e.hooks
}

// CacheEnabled reports whether page caching is on.
func (e *Engine) CacheEnabled() bool {
	return e.cacheEnabled
}

// Containers returns the default container selectors.
func (e *Engine) Containers() []string {
	return e.containers
}

// beginVisit publishes url as the live navigation. Single writer per
// navigation start; every in-flight render observes the overwrite.
func (e *Engine) beginVisit(url string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.currentURL = url
}

// setCurrentURL corrects the slot in place (redirect correction).
func (e *Engine) setCurrentURL(url string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.currentURL = url
}

// CurrentVisitURL reads the live navigation URL.
func (e *Engine) CurrentVisitURL() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentURL
}

// isCurrent reports whether a render for url is still the live navigation.
// A false answer means a newer navigation superseded it.
func (e *Engine) isCurrent(url string) bool {
	return urlutil.SameResolvedURL(e.CurrentVisitURL(), url)
}
