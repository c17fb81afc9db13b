package domain

import "time"

// Trigger identifies what started a navigation.
type Trigger string

const (
	TriggerClick    Trigger = "click"
	TriggerPopstate Trigger = "popstate"
	TriggerAPI      Trigger = "api"
)

// Destination is the target of a visit. The sequencer rewrites URL in place
// when the fetched document resolved somewhere else (server-side redirect).
type Destination struct {
	URL string
}

// Animation carries the transition-animation flag for one visit. Visits
// started without animation never receive the rendering marker class.
type Animation struct {
	Animate bool
}

// Visit is the transient state of a single navigation attempt, passed by
// reference through the hook pipeline. It lives from navigation start until
// the render resolves or is superseded. Hook handlers treat it as read-only;
// the overridable payloads (page, containers) live in the content:replace
// event args, not here.
type Visit struct {
	// From is the URL displayed when the navigation started.
	From string

	// To is the navigation target, redirect-corrected by the sequencer.
	To Destination

	// Trigger records what started the navigation.
	Trigger Trigger

	// Animation gates the transient visual markers.
	Animation Animation

	// Containers lists the selectors whose content is swapped.
	Containers []string

	// StartedAt is when the navigation began, used for measurements.
	StartedAt time.Time
}

// NewVisit creates the context for one navigation attempt.
func NewVisit(from, to string, trigger Trigger) *Visit {
	return &Visit{
		From:      from,
		To:        Destination{URL: to},
		Trigger:   trigger,
		Animation: Animation{Animate: true},
		StartedAt: time.Now(),
	}
}
