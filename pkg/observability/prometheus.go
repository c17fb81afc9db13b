package observability

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	navigationDuration *prom.HistogramVec
	hookTriggers       *prom.CounterVec
	cacheLookups       *prom.CounterVec
	supersessions      prom.Counter
}

// NewPrometheusRecorder constructs and registers the engine metrics on the
// given registry (a fresh one when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}

	pr := &PrometheusRecorder{
		navigationDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "swup",
			Name:      "navigation_duration_seconds",
			Help:      "Duration of navigation attempts by trigger and outcome",
			Buckets:   prom.DefBuckets,
		}, []string{"trigger", "outcome"}),
		hookTriggers: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "swup",
			Name:      "hook_triggers_total",
			Help:      "Hook pipeline triggers by hook name",
		}, []string{"hook"}),
		cacheLookups: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "swup",
			Name:      "cache_lookups_total",
			Help:      "Page store lookups by result",
		}, []string{"result"}),
		supersessions: prom.NewCounter(prom.CounterOpts{
			Namespace: "swup",
			Name:      "supersessions_total",
			Help:      "Renders aborted because a newer navigation started",
		}),
	}

	reg.MustRegister(pr.navigationDuration, pr.hookTriggers, pr.cacheLookups, pr.supersessions)
	return pr
}

func (p *PrometheusRecorder) ObserveNavigation(trigger string, d time.Duration, outcome string) {
	p.navigationDuration.WithLabelValues(trigger, outcome).Observe(d.Seconds())
}

func (p *PrometheusRecorder) CountHookTrigger(hook string) {
	p.hookTriggers.WithLabelValues(hook).Inc()
}

func (p *PrometheusRecorder) CountCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	p.cacheLookups.WithLabelValues(result).Inc()
}

func (p *PrometheusRecorder) CountSupersession() {
	p.supersessions.Inc()
}
