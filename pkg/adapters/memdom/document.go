package memdom

import (
	"fmt"
	"sort"
	"sync"

	"github.com/labspc/swup-gru-ai/pkg/domain"
)

// Document implements ports.Document over an in-memory container map.
// Safe for concurrent use.
type Document struct {
	mu         sync.Mutex
	title      string
	containers map[string]string
	classes    map[string]struct{}
}

// NewDocument creates a document with the given containers (selector ->
// initial markup).
func NewDocument(containers map[string]string) *Document {
	d := &Document{
		containers: make(map[string]string),
		classes:    make(map[string]struct{}),
	}
	for sel, markup := range containers {
		d.containers[sel] = markup
	}
	return d
}

// ReplaceContent swaps the designated containers with the page's blocks.
// The swap is validated up front: if any designated container is missing
// from the document or the page, nothing is swapped.
func (d *Document) ReplaceContent(page *domain.Page, containers []string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	// Validate first so a failure leaves every container untouched.
	blocks := make(map[string]string, len(containers))
	for _, selector := range containers {
		if _, ok := d.containers[selector]; !ok {
			return fmt.Errorf("%w: %s", domain.ErrContainerMissing, selector)
		}
		block, ok := page.Block(selector)
		if !ok {
			return fmt.Errorf("%w: page has no block for %s", domain.ErrContainerMissing, selector)
		}
		blocks[selector] = block.HTML
	}

	for selector, markup := range blocks {
		d.containers[selector] = markup
	}
	return nil
}

// SetTitle updates the document title.
func (d *Document) SetTitle(title string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.title = title
}

// Title returns the current document title.
func (d *Document) Title() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.title
}

// AddClass adds a root marker class.
func (d *Document) AddClass(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.classes[name] = struct{}{}
}

// RemoveClass removes a root marker class.
func (d *Document) RemoveClass(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.classes, name)
}

// HasClass reports whether a marker class is present.
func (d *Document) HasClass(name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.classes[name]
	return ok
}

// Classes returns the sorted marker classes currently applied.
func (d *Document) Classes() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, 0, len(d.classes))
	for c := range d.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// HTML returns the current markup of a container.
func (d *Document) HTML(selector string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.containers[selector]
}
