package views

import (
	"fmt"
	"strings"
)

// MaxVisibleItems bounds the candidate list height
const MaxVisibleItems = 8

// OverlayRenderer renders the search overlay: search input, cancel label,
// candidate list and, in multi-select mode, the selected items
type OverlayRenderer struct {
	styles *Styles
}

// NewOverlayRenderer creates a new overlay renderer
func NewOverlayRenderer(styles *Styles) *OverlayRenderer {
	return &OverlayRenderer{styles: styles}
}

// Render produces the overlay box
func (o *OverlayRenderer) Render(state ViewState) string {
	var lines []string
	width := state.Width - 12

	cancel := o.styles.Cancel.Render("[" + state.CancelLabel + "]")
	lines = append(lines, fmt.Sprintf("Search: %s  %s", state.SearchInput, cancel))

	switch {
	case state.Searching:
		lines = append(lines, o.styles.StatusLoading.Render("Searching..."))
	case state.Query != "" && len(state.Candidates) == 0:
		lines = append(lines, o.styles.Dim.Render("No matches"))
	}

	start := min(max(state.CandidateOffset, 0), len(state.Candidates))
	end := min(start+MaxVisibleItems, len(state.Candidates))
	if start > 0 {
		lines = append(lines, o.styles.Dim.Render(fmt.Sprintf("  ↑ %d more", start)))
	}
	for i := start; i < end; i++ {
		label := truncate(state.Candidates[i], width)
		focused := i == state.Cursor && !state.SelectedFocused
		if focused {
			lines = append(lines, o.styles.Highlight.Render("> "+label))
		} else {
			lines = append(lines, o.styles.Item.Render("  "+label))
		}
	}
	if end < len(state.Candidates) {
		lines = append(lines, o.styles.Dim.Render(fmt.Sprintf("  ↓ %d more", len(state.Candidates)-end)))
	}

	if state.MultipleSelect {
		lines = append(lines, "", fmt.Sprintf("Selected (%d):", len(state.SelectedItems)))
		for i, item := range state.SelectedItems {
			label := truncate(item, width)
			if state.SelectedFocused && i == state.SelectedCursor {
				lines = append(lines, o.styles.SelectedFocus.Render("* "+label))
			} else {
				lines = append(lines, o.styles.Selected.Render("* "+label))
			}
		}
	}

	return o.styles.Overlay.Render(strings.Join(lines, "\n"))
}
