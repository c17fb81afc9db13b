package httpfetch

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/labspc/swup-gru-ai/pkg/domain"
	"golang.org/x/net/html"
)

// parseDocument extracts the title and the requested containers from an
// HTML document. Containers are addressed by ID selector ("#main"); the
// extraction fails if any requested container is absent, so a render never
// swaps some containers and not others.
func parseDocument(r io.Reader, containers []string) (string, []domain.Block, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var title string
	byID := make(map[string]*html.Node)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if n.Data == "title" && title == "" && n.FirstChild != nil {
				title = strings.TrimSpace(n.FirstChild.Data)
			}
			if id := attr(n, "id"); id != "" {
				byID[id] = n
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	blocks := make([]domain.Block, 0, len(containers))
	for _, selector := range containers {
		id := strings.TrimPrefix(selector, "#")
		node, ok := byID[id]
		if !ok {
			return "", nil, fmt.Errorf("%w: %s", domain.ErrContainerMissing, selector)
		}
		markup, err := innerHTML(node)
		if err != nil {
			return "", nil, fmt.Errorf("failed to render container %s: %w", selector, err)
		}
		blocks = append(blocks, domain.Block{Selector: selector, HTML: markup})
	}

	return title, blocks, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func innerHTML(n *html.Node) (string, error) {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
