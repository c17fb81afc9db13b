package swup

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/labspc/swup-gru-ai/internal/config"
	"github.com/labspc/swup-gru-ai/internal/runtime"
	"github.com/labspc/swup-gru-ai/pkg/adapters/memory"
	"github.com/labspc/swup-gru-ai/pkg/domain"
	"github.com/labspc/swup-gru-ai/pkg/hooks"
	"github.com/labspc/swup-gru-ai/pkg/observability"
	"github.com/labspc/swup-gru-ai/pkg/ports"
)

// Version of the engine.
const Version = "0.1.0"

// Engine is the high-level entry point for the library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Engine
	hooks   *hooks.Registry
	history ports.History
	logger  *slog.Logger

	fetcher  ports.Fetcher
	document ports.Document
	store    ports.PageStore
	recorder observability.Recorder
	cfg      config.Config
	cfgErr   error
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithFetcher injects the fetch collaborator. Required.
func WithFetcher(f ports.Fetcher) Option {
	return func(e *Engine) {
		e.fetcher = f
	}
}

// WithHistory injects the history collaborator. Required.
func WithHistory(h ports.History) Option {
	return func(e *Engine) {
		e.history = h
	}
}

// WithDocument injects the document collaborator. Required.
func WithDocument(d ports.Document) Option {
	return func(e *Engine) {
		e.document = d
	}
}

// WithPageStore injects a custom page store (default: in-memory).
func WithPageStore(s ports.PageStore) Option {
	return func(e *Engine) {
		e.store = s
	}
}

// WithCache enables or disables page caching.
func WithCache(enabled bool) Option {
	return func(e *Engine) {
		e.cfg.Cache = enabled
	}
}

// WithContainers sets the container selectors swapped on navigation.
func WithContainers(containers ...string) Option {
	return func(e *Engine) {
		if len(containers) > 0 {
			e.cfg.Containers = containers
		}
	}
}

// WithAnimation sets the default animation flag for new visits.
func WithAnimation(animate bool) Option {
	return func(e *Engine) {
		e.cfg.Animate = animate
	}
}

// WithConfigFile loads engine configuration from a YAML file. Options
// applied after this one override the file's values.
func WithConfigFile(path string) Option {
	return func(e *Engine) {
		cfg, err := config.Load(path)
		if err != nil {
			e.cfgErr = err
			return
		}
		e.cfg = *cfg
	}
}

// WithOptionsMap applies configuration from a generic map, as supplied by
// an embedding host.
func WithOptionsMap(m map[string]any) Option {
	return func(e *Engine) {
		cfg, err := config.FromMap(m)
		if err != nil {
			e.cfgErr = err
			return
		}
		e.cfg = *cfg
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(rec observability.Recorder) Option {
	return func(e *Engine) {
		if rec != nil {
			e.recorder = rec
		}
	}
}

// New initializes the engine. The fetcher, history and document
// collaborators are required; the page store defaults to an in-memory one.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		recorder: observability.NopRecorder{},
		cfg:      config.Default(),
	}

	for _, opt := range opts {
		opt(e)
	}
	if e.cfgErr != nil {
		return nil, e.cfgErr
	}

	if e.fetcher == nil {
		return nil, fmt.Errorf("%w: fetcher", domain.ErrMissingCollaborator)
	}
	if e.history == nil {
		return nil, fmt.Errorf("%w: history", domain.ErrMissingCollaborator)
	}
	if e.document == nil {
		return nil, fmt.Errorf("%w: document", domain.ErrMissingCollaborator)
	}
	if e.store == nil {
		e.store = memory.NewStore()
	}

	e.hooks = hooks.NewRegistry(hooks.WithLogger(e.logger))
	e.runtime = runtime.NewEngine(
		e.fetcher,
		e.history,
		e.document,
		e.store,
		e.hooks,
		runtime.WithLogger(e.logger),
		runtime.WithRecorder(e.recorder),
		runtime.WithCache(e.cfg.Cache),
		runtime.WithContainers(e.cfg.Containers),
		runtime.WithClasses(e.cfg.Classes),
	)

	return e, nil
}

// VisitOption customizes a single navigation.
type VisitOption func(*domain.Visit)

// WithTrigger tags the visit with what started it.
func WithTrigger(trigger domain.Trigger) VisitOption {
	return func(v *domain.Visit) {
		v.Trigger = trigger
	}
}

// WithAnimate overrides the visit's animation flag.
func WithAnimate(animate bool) VisitOption {
	return func(v *domain.Visit) {
		v.Animation.Animate = animate
	}
}

// WithVisitContainers overrides the containers swapped for this visit.
func WithVisitContainers(containers ...string) VisitOption {
	return func(v *domain.Visit) {
		v.Containers = containers
	}
}

// Navigate runs a full navigation to the given URL.
func (e *Engine) Navigate(ctx context.Context, to string, opts ...VisitOption) error {
	visit := domain.NewVisit(e.history.CurrentURL(), to, domain.TriggerAPI)
	visit.Animation.Animate = e.cfg.Animate
	for _, opt := range opts {
		opt(visit)
	}
	return e.runtime.Navigate(ctx, visit)
}

// Popstate handles a history traversal to the given URL. Popstate visits
// are not animated unless overridden.
func (e *Engine) Popstate(ctx context.Context, to string, opts ...VisitOption) error {
	visit := domain.NewVisit(e.history.CurrentURL(), to, domain.TriggerPopstate)
	visit.Animation.Animate = false
	for _, opt := range opts {
		opt(visit)
	}
	return e.runtime.Navigate(ctx, visit)
}

// Preload fetches a page into the cache without touching the document.
func (e *Engine) Preload(ctx context.Context, url string) error {
	_, err := e.runtime.Preload(ctx, url)
	return err
}

// ClearCache empties the page store.
func (e *Engine) ClearCache(ctx context.Context) error {
	return e.runtime.ClearCache(ctx)
}

// Hooks returns the hook registry for handler registration.
func (e *Engine) Hooks() *hooks.Registry {
	return e.hooks
}

// CurrentURL reads the currently displayed location.
func (e *Engine) CurrentURL() string {
	return e.history.CurrentURL()
}

// CurrentVisitURL reads the URL of the navigation currently considered
// live. Mostly useful for diagnostics.
func (e *Engine) CurrentVisitURL() string {
	return e.runtime.CurrentVisitURL()
}
