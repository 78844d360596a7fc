package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ReadyMarker is printed in e2e mode once the first frame is rendered
const ReadyMarker = "__READY__"

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	Title  string

	DisplayText string
	Placeholder string
	ModelText   string
	Mode        string

	OverlayVisible  bool
	SearchInput     string // rendered text input
	CancelLabel     string
	Candidates      []string
	Cursor          int
	CandidateOffset int // first visible candidate
	Searching       bool
	Query           string

	MultipleSelect  bool
	SelectedItems   []string
	SelectedCursor  int
	SelectedFocused bool

	StatusMessage string
	StatusIsError bool
	HelpText      string
	Ready         bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles  *Styles
	overlay *OverlayRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:  styles,
		overlay: NewOverlayRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	title := state.Title
	if title == "" {
		title = "ion-autocomplete"
	}
	content.WriteString(r.styles.Title.Render(title))
	content.WriteString("\n")

	content.WriteString(r.renderField(state))
	content.WriteString("\n")
	content.WriteString("Model: " + state.ModelText)
	content.WriteString("\n")

	if state.OverlayVisible {
		content.WriteString(r.overlay.Render(state))
		content.WriteString("\n")
	}

	content.WriteString(r.styles.Dim.Render("Mode: " + state.Mode))

	if state.StatusMessage != "" {
		content.WriteString("\n")
		if state.StatusIsError {
			content.WriteString(r.styles.StatusError.Render(state.StatusMessage))
		} else {
			content.WriteString(r.styles.Status.Render(state.StatusMessage))
		}
	}

	if state.HelpText != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpText))
	}

	if state.Ready {
		content.WriteString("\n")
		content.WriteString(ReadyMarker)
	}

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderField(state ViewState) string {
	text := state.DisplayText
	if text == "" {
		text = r.styles.Placeholder.Render(state.Placeholder)
	}
	text = truncate(text, state.Width-16)

	style := r.styles.Field
	if state.OverlayVisible {
		style = r.styles.FieldActive
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, r.styles.Label.Render("Field:"), " ", style.Render(text))
}

// truncate shortens s to width visible columns, ANSI sequences preserved
func truncate(s string, width int) string {
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
