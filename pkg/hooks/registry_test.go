package hooks_test

import (
	"context"
	"errors"
	"testing"

	"github.com/labspc/swup-gru-ai/pkg/domain"
	"github.com/labspc/swup-gru-ai/pkg/hooks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHook = domain.HookName("test:hook")

func newVisit() *domain.Visit {
	return domain.NewVisit("/from", "/to", domain.TriggerAPI)
}

func TestRegistry_PriorityOrdering(t *testing.T) {
	r := hooks.NewRegistry()
	var order []string

	record := func(name string) hooks.Handler {
		return func(ctx context.Context, v *domain.Visit, event any) error {
			order = append(order, name)
			return nil
		}
	}

	// Priorities [10, 5, 10]: expect [5, 10(first), 10(second)].
	r.On(testHook, record("a"), hooks.WithPriority(10))
	r.On(testHook, record("b"), hooks.WithPriority(5))
	r.On(testHook, record("c"), hooks.WithPriority(10))

	err := r.Trigger(context.Background(), testHook, newVisit(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, order)
}

func TestRegistry_Once(t *testing.T) {
	r := hooks.NewRegistry()
	count := 0

	r.On(testHook, func(ctx context.Context, v *domain.Visit, event any) error {
		count++
		return nil
	}, hooks.Once())

	ctx := context.Background()
	require.NoError(t, r.Trigger(ctx, testHook, newVisit(), nil, nil))
	require.NoError(t, r.Trigger(ctx, testHook, newVisit(), nil, nil))

	assert.Equal(t, 1, count, "once handler must run exactly once")
	assert.Equal(t, 0, r.HandlerCount(testHook))
}

func TestRegistry_OffAndDeregistration(t *testing.T) {
	r := hooks.NewRegistry()
	count := 0

	handler := func(ctx context.Context, v *domain.Visit, event any) error {
		count++
		return nil
	}

	off := r.On(testHook, handler)
	require.NoError(t, r.Trigger(context.Background(), testHook, newVisit(), nil, nil))
	assert.Equal(t, 1, count)

	off()
	off() // idempotent
	require.NoError(t, r.Trigger(context.Background(), testHook, newVisit(), nil, nil))
	assert.Equal(t, 1, count)

	// Off on a never-registered handler is a no-op.
	r.Off(testHook, handler)

	r.On(testHook, handler)
	r.Off(testHook, handler)
	require.NoError(t, r.Trigger(context.Background(), testHook, newVisit(), nil, nil))
	assert.Equal(t, 1, count)
}

func TestRegistry_DefaultHandler(t *testing.T) {
	r := hooks.NewRegistry()
	var order []string

	r.On(testHook, func(ctx context.Context, v *domain.Visit, event any) error {
		order = append(order, "observer")
		return nil
	})

	def := func(ctx context.Context, v *domain.Visit, event any) error {
		order = append(order, "default")
		return nil
	}

	require.NoError(t, r.Trigger(context.Background(), testHook, newVisit(), nil, def))
	assert.Equal(t, []string{"observer", "default"}, order, "default runs after observers")
}

func TestRegistry_ReplaceSkipsDefault(t *testing.T) {
	r := hooks.NewRegistry()
	var order []string

	r.On(testHook, func(ctx context.Context, v *domain.Visit, event any) error {
		order = append(order, "replacement")
		return nil
	}, hooks.Replace())

	defaultRan := false
	def := func(ctx context.Context, v *domain.Visit, event any) error {
		defaultRan = true
		return nil
	}

	require.NoError(t, r.Trigger(context.Background(), testHook, newVisit(), nil, def))
	assert.False(t, defaultRan, "replaced default must never execute")
	assert.Equal(t, []string{"replacement"}, order)
}

func TestRegistry_ObserverPlusReplacement(t *testing.T) {
	r := hooks.NewRegistry()
	var order []string

	r.On(testHook, func(ctx context.Context, v *domain.Visit, event any) error {
		order = append(order, "observer")
		return nil
	})
	r.On(testHook, func(ctx context.Context, v *domain.Visit, event any) error {
		order = append(order, "replacement")
		return nil
	}, hooks.Replace())

	def := func(ctx context.Context, v *domain.Visit, event any) error {
		order = append(order, "default")
		return nil
	}

	require.NoError(t, r.Trigger(context.Background(), testHook, newVisit(), nil, def))
	assert.Equal(t, []string{"observer", "replacement"}, order)
}

// Multiple handlers claiming to replace the default: the first-registered
// one wins, later ones are skipped entirely.
func TestRegistry_FirstReplacerWins(t *testing.T) {
	r := hooks.NewRegistry()
	var order []string

	r.On(testHook, func(ctx context.Context, v *domain.Visit, event any) error {
		order = append(order, "first")
		return nil
	}, hooks.Replace())
	r.On(testHook, func(ctx context.Context, v *domain.Visit, event any) error {
		order = append(order, "second")
		return nil
	}, hooks.Replace())

	def := func(ctx context.Context, v *domain.Visit, event any) error {
		order = append(order, "default")
		return nil
	}

	require.NoError(t, r.Trigger(context.Background(), testHook, newVisit(), nil, def))
	assert.Equal(t, []string{"first"}, order)
}

func TestRegistry_HandlerErrorAbortsPipeline(t *testing.T) {
	r := hooks.NewRegistry()
	boom := errors.New("boom")
	ran := []string{}

	r.On(testHook, func(ctx context.Context, v *domain.Visit, event any) error {
		ran = append(ran, "first")
		return boom
	})
	r.On(testHook, func(ctx context.Context, v *domain.Visit, event any) error {
		ran = append(ran, "second")
		return nil
	})

	defaultRan := false
	def := func(ctx context.Context, v *domain.Visit, event any) error {
		defaultRan = true
		return nil
	}

	err := r.Trigger(context.Background(), testHook, newVisit(), nil, def)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"first"}, ran, "handlers after a failure must not run")
	assert.False(t, defaultRan)
}

func TestRegistry_ContextCancellation(t *testing.T) {
	r := hooks.NewRegistry()
	ran := []string{}

	ctx, cancel := context.WithCancel(context.Background())

	r.On(testHook, func(ctx context.Context, v *domain.Visit, event any) error {
		ran = append(ran, "first")
		cancel() // abort the pipeline mid-flight
		return nil
	})
	r.On(testHook, func(ctx context.Context, v *domain.Visit, event any) error {
		ran = append(ran, "second")
		return nil
	})

	err := r.Trigger(ctx, testHook, newVisit(), nil, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"first"}, ran)
}

func TestRegistry_EventMutationFlowsDownstream(t *testing.T) {
	r := hooks.NewRegistry()

	r.On(testHook, func(ctx context.Context, v *domain.Visit, event any) error {
		ev := event.(*domain.ContentReplaceEvent)
		ev.Containers = []string{"#other"}
		return nil
	})

	var seen []string
	def := func(ctx context.Context, v *domain.Visit, event any) error {
		seen = event.(*domain.ContentReplaceEvent).Containers
		return nil
	}

	ev := &domain.ContentReplaceEvent{Containers: []string{"#swup"}}
	require.NoError(t, r.Trigger(context.Background(), testHook, newVisit(), ev, def))
	assert.Equal(t, []string{"#other"}, seen, "default must see handler mutations")
}
