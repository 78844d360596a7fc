package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// Overlay actions
type OpenOverlayAction struct{}

func (a OpenOverlayAction) Type() string { return "open_overlay" }

type CancelAction struct{}

func (a CancelAction) Type() string { return "cancel" }

// Selection actions
type SelectAction struct{}

func (a SelectAction) Type() string { return "select" }

type DeselectAction struct{}

func (a DeselectAction) Type() string { return "deselect" }

// Command actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
