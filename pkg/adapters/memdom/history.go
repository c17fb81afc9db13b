// Package memdom provides in-memory History and Document collaborators.
// They back the engine's tests and the CLI demo, and double as reference
// implementations of the collaborator contracts.
package memdom

import (
	"sync"
)

// History implements ports.History as an in-memory entry stack.
// Safe for concurrent use.
type History struct {
	mu       sync.Mutex
	stack    []string
	replaced []string
}

// NewHistory creates a history positioned at the given URL.
func NewHistory(current string) *History {
	return &History{stack: []string{current}}
}

// CurrentURL returns the top of the stack.
func (h *History) CurrentURL() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.stack) == 0 {
		return ""
	}
	return h.stack[len(h.stack)-1]
}

// PushState appends a new entry.
func (h *History) PushState(url string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stack = append(h.stack, url)
	return nil
}

// ReplaceState rewrites the current entry in place.
func (h *History) ReplaceState(url string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.stack) == 0 {
		h.stack = []string{url}
	} else {
		h.stack[len(h.stack)-1] = url
	}
	h.replaced = append(h.replaced, url)
	return nil
}

// Len returns the number of history entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.stack)
}

// Replacements returns every URL passed to ReplaceState, in order.
func (h *History) Replacements() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.replaced))
	copy(out, h.replaced)
	return out
}
