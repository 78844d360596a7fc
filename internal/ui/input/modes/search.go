package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ionautocomplete/internal/ui/input/types"
)

// SearchMode edits the query and picks from the candidate list
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "up", "ctrl+p":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "down", "ctrl+n":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "enter":
		if ctx.CandidateCount() == 0 {
			return nil, true
		}
		if ctx.MultipleSelect() {
			return []types.Action{types.SelectAction{}}, true
		}
		// single select closes the overlay after committing
		return []types.Action{
			types.SelectAction{},
			types.ChangeModeAction{Mode: types.ModeField},
		}, true
	case "tab":
		if ctx.MultipleSelect() && ctx.SelectedCount() > 0 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeSelected}}, true
		}
		return nil, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
