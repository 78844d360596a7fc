package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"ionautocomplete/internal/ui/input/types"
)

// SelectedMode moves through the multi-select list to remove entries
type SelectedMode struct{}

func NewSelectedMode() *SelectedMode {
	return &SelectedMode{}
}

func (m *SelectedMode) Name() string {
	return "selected"
}

func (m *SelectedMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *SelectedMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *SelectedMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "up", "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "down", "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "enter", "backspace", "delete", "x":
		actions := []types.Action{types.DeselectAction{}}
		if ctx.SelectedCount() <= 1 {
			actions = append(actions, types.ChangeModeAction{Mode: types.ModeSearch})
		}
		return actions, true
	case "tab":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
	case "esc":
		return []types.Action{
			types.CancelAction{},
			types.ChangeModeAction{Mode: types.ModeField},
		}, true
	}
	return nil, true
}
