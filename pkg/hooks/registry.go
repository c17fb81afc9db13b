package hooks

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"sync"

	"github.com/labspc/swup-gru-ai/internal/logging"
	"github.com/labspc/swup-gru-ai/pkg/domain"
)

// Handler is invoked with the visit the trigger belongs to and the
// trigger's event payload. Handlers run strictly sequentially; returning an
// error aborts the remainder of the pipeline for that trigger.
type Handler func(ctx context.Context, visit *domain.Visit, event any) error

// Options configures a single handler registration.
type Options struct {
	// Priority orders handlers per hook, ascending. Registration order is
	// the tie-break for equal priorities. Default 0.
	Priority int

	// Once deregisters the handler automatically after its first invocation.
	Once bool

	// Replace marks this handler as supplanting the trigger-supplied
	// default handler. At most one replacement is effective per trigger:
	// the earliest-registered one wins, later ones are skipped with a
	// warning.
	Replace bool
}

// Option mutates registration Options.
type Option func(*Options)

// WithPriority sets the handler's priority.
func WithPriority(p int) Option {
	return func(o *Options) { o.Priority = p }
}

// Once marks the handler for automatic deregistration after one invocation.
func Once() Option {
	return func(o *Options) { o.Once = true }
}

// Replace marks the handler as replacing the hook's default behavior.
func Replace() Option {
	return func(o *Options) { o.Replace = true }
}

type registration struct {
	seq      uint64
	handler  Handler
	priority int
	once     bool
	replace  bool
}

// Registry stores handler registrations keyed by hook name and runs the
// trigger pipeline. Safe for concurrent use; the pipeline itself executes
// handlers one at a time.
type Registry struct {
	mu     sync.Mutex
	seq    uint64
	hooks  map[domain.HookName][]*registration
	logger *slog.Logger
}

// RegistryOption configures the Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for pipeline diagnostics.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates an empty hook registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		hooks:  make(map[domain.HookName][]*registration),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// On registers a handler for a hook and returns its deregistration func.
// The returned func is idempotent.
func (r *Registry) On(hook domain.HookName, handler Handler, opts ...Option) func() {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	reg := &registration{
		seq:      r.seq,
		handler:  handler,
		priority: o.Priority,
		once:     o.Once,
		replace:  o.Replace,
	}
	r.hooks[hook] = append(r.hooks[hook], reg)

	seq := reg.seq
	return func() { r.removeBySeq(hook, seq) }
}

// Off removes a specific handler from a hook. No-op if the handler was
// never registered. Handlers are matched by function identity, so the same
// func value passed to On must be passed to Off.
func (r *Registry) Off(hook domain.HookName, handler Handler) {
	ptr := reflect.ValueOf(handler).Pointer()

	r.mu.Lock()
	defer r.mu.Unlock()

	regs := r.hooks[hook]
	for i, reg := range regs {
		if reflect.ValueOf(reg.handler).Pointer() == ptr {
			r.hooks[hook] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// HandlerCount returns the number of handlers registered for a hook.
func (r *Registry) HandlerCount(hook domain.HookName) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.hooks[hook])
}

// Trigger runs every registered handler for a hook in order, then the
// supplied default handler unless a registered handler replaces it.
//
// Handlers execute strictly sequentially. The first handler error aborts
// the remainder (including the default) and is returned. Context
// cancellation is honored between handlers: once the pipeline observes a
// canceled context, no further handler fires.
func (r *Registry) Trigger(ctx context.Context, hook domain.HookName, visit *domain.Visit, event any, def Handler) error {
	regs := r.snapshot(hook)

	// Resolve the effective replacement up front: earliest-registered wins.
	var replacer *registration
	for _, reg := range regs {
		if !reg.replace {
			continue
		}
		if replacer == nil || reg.seq < replacer.seq {
			replacer = reg
		}
	}

	for _, reg := range regs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if reg.replace && reg != replacer {
			r.logger.Warn("skipping extra default-replacing handler", "hook", string(hook), "seq", reg.seq)
			continue
		}
		invoked := reg
		err := reg.handler(ctx, visit, event)
		if invoked.once {
			r.removeBySeq(hook, invoked.seq)
		}
		if err != nil {
			return fmt.Errorf("hook %s: %w", hook, err)
		}
	}

	if def != nil && replacer == nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := def(ctx, visit, event); err != nil {
			return fmt.Errorf("hook %s: default handler: %w", hook, err)
		}
	}
	return nil
}

// snapshot returns the hook's registrations sorted by priority then
// registration order. The copy keeps the pipeline stable while handlers
// register or deregister concurrently.
func (r *Registry) snapshot(hook domain.HookName) []*registration {
	r.mu.Lock()
	defer r.mu.Unlock()

	regs := make([]*registration, len(r.hooks[hook]))
	copy(regs, r.hooks[hook])
	sort.SliceStable(regs, func(i, j int) bool {
		if regs[i].priority != regs[j].priority {
			return regs[i].priority < regs[j].priority
		}
		return regs[i].seq < regs[j].seq
	})
	return regs
}

func (r *Registry) removeBySeq(hook domain.HookName, seq uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	regs := r.hooks[hook]
	for i, reg := range regs {
		if reg.seq == seq {
			r.hooks[hook] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}
