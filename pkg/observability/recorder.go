// Package observability defines the measurement surface of the engine and
// a Prometheus-backed implementation.
package observability

import "time"

// Recorder receives engine measurements. Implementations must be safe for
// concurrent use.
type Recorder interface {
	// ObserveNavigation records one finished navigation attempt.
	// Outcome is "ok", "error" or "superseded".
	ObserveNavigation(trigger string, d time.Duration, outcome string)

	// CountHookTrigger records one trigger of a hook pipeline.
	CountHookTrigger(hook string)

	// CountCacheLookup records a page store lookup.
	CountCacheLookup(hit bool)

	// CountSupersession records a render aborted by a newer navigation.
	CountSupersession()
}

// NopRecorder discards all measurements. It is the engine default.
type NopRecorder struct{}

func (NopRecorder) ObserveNavigation(string, time.Duration, string) {}
func (NopRecorder) CountHookTrigger(string)                        {}
func (NopRecorder) CountCacheLookup(bool)                          {}
func (NopRecorder) CountSupersession()                             {}
