package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"ionautocomplete/internal/ui/input/types"
)

// FieldMode handles keys while only the read-only field is shown
type FieldMode struct{}

func NewFieldMode() *FieldMode {
	return &FieldMode{}
}

func (m *FieldMode) Name() string {
	return "field"
}

func (m *FieldMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *FieldMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *FieldMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEnter, tea.KeySpace:
		// Without a bound model there is no overlay to open
		if ctx.Inert() {
			return nil, true
		}
		return []types.Action{
			types.OpenOverlayAction{},
			types.ChangeModeAction{Mode: types.ModeSearch},
		}, true
	}

	switch msg.String() {
	case "q":
		return []types.Action{types.QuitAction{}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
