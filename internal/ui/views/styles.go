package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Label         lipgloss.Style
	Field         lipgloss.Style
	FieldActive   lipgloss.Style
	Placeholder   lipgloss.Style
	Overlay       lipgloss.Style
	Cancel        lipgloss.Style
	Item          lipgloss.Style
	Highlight     lipgloss.Style
	Selected      lipgloss.Style
	SelectedFocus lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(8),
		Field: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		FieldActive: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Placeholder: lipgloss.NewStyle().Faint(true),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1),
		Cancel:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Item:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Background(lipgloss.Color("238")).Bold(true),
		Selected:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		SelectedFocus: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Background(lipgloss.Color("238")).Bold(true),
		Dim:           lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).MarginTop(1), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),              // yellow
		Help:          lipgloss.NewStyle().Faint(true).MarginTop(1),
		Main:          lipgloss.NewStyle().Padding(1, 2),
	}
}
