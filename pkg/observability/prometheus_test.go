package observability_test

import (
	"testing"
	"time"

	"github.com/labspc/swup-gru-ai/pkg/observability"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	rec := observability.NewPrometheusRecorder(reg)

	rec.ObserveNavigation("click", 120*time.Millisecond, "ok")
	rec.CountHookTrigger("content:replace")
	rec.CountHookTrigger("content:replace")
	rec.CountCacheLookup(true)
	rec.CountCacheLookup(false)
	rec.CountSupersession()

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["swup_navigation_duration_seconds"])
	assert.True(t, names["swup_hook_triggers_total"])
	assert.True(t, names["swup_cache_lookups_total"])
	assert.True(t, names["swup_supersessions_total"])
}

func TestPrometheusRecorder_Counters(t *testing.T) {
	reg := prom.NewRegistry()
	rec := observability.NewPrometheusRecorder(reg)

	rec.CountSupersession()
	rec.CountSupersession()

	count, err := testutil.GatherAndCount(reg, "swup_supersessions_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "one series expected")
}
