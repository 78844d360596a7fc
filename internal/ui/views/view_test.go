package views

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

func plain(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

func TestRenderClosedField(t *testing.T) {
	out := plain(NewRenderer().Render(ViewState{
		Width:       80,
		Placeholder: "Search items",
		ModelText:   "",
		Mode:        "field",
		CancelLabel: "Cancel",
	}))

	assert.Contains(t, out, "ion-autocomplete")
	assert.Contains(t, out, "Search items")
	assert.Contains(t, out, "Mode: field")
	assert.NotContains(t, out, "[Cancel]")
	assert.NotContains(t, out, ReadyMarker)
}

func TestRenderOverlay(t *testing.T) {
	out := plain(NewRenderer().Render(ViewState{
		Width:          80,
		Title:          "demo",
		DisplayText:    "view: test1",
		ModelText:      "test1",
		Mode:           "search",
		OverlayVisible: true,
		SearchInput:    "test",
		CancelLabel:    "Dismiss",
		Query:          "test",
		Candidates:     []string{"view: test1", "view: test2"},
		Cursor:         1,
		Ready:          true,
	}))

	assert.Contains(t, out, "demo")
	assert.Contains(t, out, "[Dismiss]")
	assert.Contains(t, out, "  view: test1")
	assert.Contains(t, out, "> view: test2")
	assert.Contains(t, out, "Model: test1")
	assert.Contains(t, out, ReadyMarker)
	assert.NotContains(t, out, "Selected (")
}

func TestRenderOverlayStates(t *testing.T) {
	r := NewRenderer()

	searching := plain(r.Render(ViewState{Width: 80, OverlayVisible: true, Query: "a", Searching: true}))
	assert.Contains(t, searching, "Searching...")

	empty := plain(r.Render(ViewState{Width: 80, OverlayVisible: true, Query: "zzz"}))
	assert.Contains(t, empty, "No matches")

	multi := plain(r.Render(ViewState{
		Width:          80,
		OverlayVisible: true,
		MultipleSelect: true,
		SelectedItems:  []string{"view: test1", "view: test2"},
	}))
	assert.Contains(t, multi, "Selected (2):")
	assert.True(t, strings.Index(multi, "* view: test1") < strings.Index(multi, "* view: test2"))
}

func TestRenderStatus(t *testing.T) {
	out := plain(NewRenderer().Render(ViewState{Width: 80, StatusMessage: "Lookup failed: boom", StatusIsError: true}))
	assert.Contains(t, out, "Lookup failed: boom")
}

func TestRenderScrolledCandidates(t *testing.T) {
	var candidates []string
	for i := 0; i < 12; i++ {
		candidates = append(candidates, fmt.Sprintf("item %02d", i))
	}

	out := plain(NewRenderer().Render(ViewState{
		Width:           80,
		OverlayVisible:  true,
		Candidates:      candidates,
		Cursor:          9,
		CandidateOffset: 2,
	}))

	assert.Contains(t, out, "↑ 2 more")
	assert.Contains(t, out, "↓ 2 more")
	assert.Contains(t, out, "> item 09")
	assert.NotContains(t, out, "item 01")
	assert.NotContains(t, out, "item 10")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefghij", 5))
	assert.Equal(t, "abc", truncate("abc", 0))
}
