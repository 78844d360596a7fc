package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeField    Mode = iota // overlay closed, read-only field focused
	ModeSearch               // overlay open, search input focused
	ModeSelected             // overlay open, multi-select list focused
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeSelected:
		return "selected"
	default:
		return "field"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	Inert() bool
	MultipleSelect() bool
	CandidateCount() int
	SelectedCount() int
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
