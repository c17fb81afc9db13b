package domain

// Block is one markup fragment destined for a named container.
type Block struct {
	// Selector identifies the target container (e.g. "#swup").
	Selector string `json:"selector"`

	// HTML is the inner markup to install into the container.
	HTML string `json:"html"`
}

// Page holds the parsed result of fetching a destination document.
// A Page is immutable once produced: it is owned exclusively by the
// navigation consuming it until it is rendered or discarded. Stores must
// copy on write and read so callers can never mutate shared entries.
type Page struct {
	// URL is the resolved URL the document was actually served from.
	// It differs from the requested URL when the server redirected.
	URL string `json:"url"`

	// Title is the document title after parsing.
	Title string `json:"title"`

	// Blocks are the container fragments, in the order the containers
	// were requested.
	Blocks []Block `json:"blocks"`
}

// Block returns the fragment for a selector, if present.
func (p *Page) Block(selector string) (Block, bool) {
	for _, b := range p.Blocks {
		if b.Selector == selector {
			return b, true
		}
	}
	return Block{}, false
}

// Clone returns a deep copy of the page.
func (p *Page) Clone() *Page {
	if p == nil {
		return nil
	}
	next := *p
	next.Blocks = make([]Block, len(p.Blocks))
	copy(next.Blocks, p.Blocks)
	return &next
}
