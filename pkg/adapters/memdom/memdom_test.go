package memdom_test

import (
	"testing"

	"github.com/labspc/swup-gru-ai/pkg/adapters/memdom"
	"github.com/labspc/swup-gru-ai/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_ReplaceState(t *testing.T) {
	h := memdom.NewHistory("/a")

	require.NoError(t, h.PushState("/b"))
	assert.Equal(t, "/b", h.CurrentURL())
	assert.Equal(t, 2, h.Len())

	// Replace rewrites in place, it never appends.
	require.NoError(t, h.ReplaceState("/c"))
	assert.Equal(t, "/c", h.CurrentURL())
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, []string{"/c"}, h.Replacements())
}

func TestDocument_ReplaceContent(t *testing.T) {
	doc := memdom.NewDocument(map[string]string{"#swup": "old", "#sidebar": "old-nav"})
	page := &domain.Page{
		URL:   "/a",
		Title: "A",
		Blocks: []domain.Block{
			{Selector: "#swup", HTML: "new"},
			{Selector: "#sidebar", HTML: "new-nav"},
		},
	}

	require.NoError(t, doc.ReplaceContent(page, []string{"#swup", "#sidebar"}))
	assert.Equal(t, "new", doc.HTML("#swup"))
	assert.Equal(t, "new-nav", doc.HTML("#sidebar"))
}

// A missing container fails the whole swap: no container may be replaced
// while another is left stale.
func TestDocument_ReplaceContentAllOrNothing(t *testing.T) {
	doc := memdom.NewDocument(map[string]string{"#swup": "old"})
	page := &domain.Page{
		URL:    "/a",
		Blocks: []domain.Block{{Selector: "#swup", HTML: "new"}},
	}

	err := doc.ReplaceContent(page, []string{"#swup", "#missing"})
	require.ErrorIs(t, err, domain.ErrContainerMissing)
	assert.Equal(t, "old", doc.HTML("#swup"), "partial swap must not happen")
}

func TestDocument_Classes(t *testing.T) {
	doc := memdom.NewDocument(nil)

	doc.AddClass("is-changing")
	doc.AddClass("is-leaving")
	doc.AddClass("is-changing") // idempotent
	assert.Equal(t, []string{"is-changing", "is-leaving"}, doc.Classes())

	doc.RemoveClass("is-leaving")
	doc.RemoveClass("is-leaving") // no-op when absent
	assert.False(t, doc.HasClass("is-leaving"))
	assert.True(t, doc.HasClass("is-changing"))
}
