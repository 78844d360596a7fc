package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"ionautocomplete/internal/ui/input/types"
)

// keyMap describes the bindings of the active mode for the help bar. The
// input modes do the actual matching; these exist for display.
type keyMap struct {
	mode  types.Mode
	multi bool

	Open      key.Binding
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Cancel    key.Binding
	Focus     key.Binding
	Remove    key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func newKeyMap(mode types.Mode, multi bool) keyMap {
	return keyMap{
		mode:  mode,
		multi: multi,
		Open: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "open search"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/ctrl+p", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/ctrl+n", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch list"),
		),
		Remove: key.NewBinding(
			key.WithKeys("enter", "backspace", "delete", "x"),
			key.WithHelp("enter/x", "remove"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns the bindings of the active mode
func (k keyMap) ShortHelp() []key.Binding {
	switch k.mode {
	case types.ModeSearch:
		bindings := []key.Binding{k.Up, k.Down, k.Select, k.Cancel}
		if k.multi {
			bindings = append(bindings, k.Focus)
		}
		return bindings
	case types.ModeSelected:
		return []key.Binding{k.Up, k.Down, k.Remove, k.Focus, k.Cancel}
	default:
		return []key.Binding{k.Open, k.Help, k.Quit}
	}
}

// FullHelp returns every binding grouped by mode
func (k keyMap) FullHelp() [][]key.Binding {
	groups := [][]key.Binding{
		{k.Open, k.Help, k.Quit, k.ForceQuit},
		{k.Up, k.Down, k.Select, k.Cancel},
	}
	if k.multi {
		groups = append(groups, []key.Binding{k.Focus, k.Remove})
	}
	return groups
}
