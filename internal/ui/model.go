package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"ionautocomplete/internal/autocomplete"
	"ionautocomplete/internal/ui/input"
	inputtypes "ionautocomplete/internal/ui/input/types"
	"ionautocomplete/internal/ui/logic"
	"ionautocomplete/internal/ui/views"
)

const defaultWidth = 80

// Options tunes the terminal host
type Options struct {
	Title    string
	ShowHelp bool
	E2E      bool // print the ready marker and keep help inline
}

// Model hosts one autocomplete field in a bubbletea program
type Model struct {
	ctl  *autocomplete.Controller
	opts Options
	ctx  context.Context
	log  *zap.Logger

	width        int
	height       int
	help         help.Model
	showFullHelp bool
	inPagerMode  bool

	candidates *logic.Navigator
	selected   *logic.Navigator
	searching  bool
	status     string
	statusErr  bool

	inputHandler *input.Handler
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model around ctl. Lookups awaited by the model
// are abandoned when ctx is cancelled.
func NewModel(ctx context.Context, ctl *autocomplete.Controller, opts Options, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	return &Model{
		ctl:          ctl,
		opts:         opts,
		ctx:          ctx,
		log:          log,
		help:         help.New(),
		candidates:   logic.NewNavigator(views.MaxVisibleItems),
		selected:     logic.NewNavigator(views.MaxVisibleItems),
		inputHandler: input.New(ctl.Config().Placeholder),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Selection returns the bound model value
func (m *Model) Selection() any {
	return m.ctl.Selection()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, modelContext{m})

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		m.syncMode()
		return m, tea.Batch(cmds...)

	case lookupDoneMsg:
		return m, m.handleLookupDone(msg)

	case helpPagerMsg:
		if msg.err != nil {
			m.log.Warn("help pager failed", zap.Error(msg.err))
			m.showFullHelp = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	default:
		return m, m.inputHandler.Update(msg)
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.log.Debug("processAction", zap.String("action", action.Type()))
	switch a := action.(type) {
	case inputtypes.OpenOverlayAction:
		m.ctl.Open()
		m.candidates.Reset()
		m.selected.Reset()
		m.selected.SetCount(len(m.ctl.SelectedItems()))

	case inputtypes.CancelAction:
		m.ctl.Cancel()
		m.searching = false
		m.candidates.Reset()

	case inputtypes.UpdateTextAction:
		if a.Text == m.ctl.Query() {
			return nil
		}
		m.candidates.Reset()
		pending := m.ctl.SetQuery(a.Text)
		if pending == nil {
			m.searching = false
			m.candidates.SetCount(len(m.ctl.Items()))
			return nil
		}
		m.searching = true
		return m.awaitLookup(pending)

	case inputtypes.NavigateAction:
		if m.inputHandler.CurrentMode() == inputtypes.ModeSelected {
			m.selected.Move(a.Direction)
		} else {
			m.candidates.Move(a.Direction)
		}

	case inputtypes.SelectAction:
		items := m.ctl.Items()
		i := m.candidates.SelectedIndex()
		if i < 0 || i >= len(items) {
			return nil
		}
		m.ctl.SelectItem(items[i])
		m.selected.SetCount(len(m.ctl.SelectedItems()))
		m.clearStatus()

	case inputtypes.DeselectAction:
		m.ctl.DeselectAt(m.selected.SelectedIndex())
		m.selected.SetCount(len(m.ctl.SelectedItems()))

	case inputtypes.ToggleHelpAction:
		if m.program != nil && !m.opts.E2E {
			return m.fetchHelpPager(m.helpRenderer.RenderHelpContent(m.ctl.Config().MultipleSelect))
		}
		m.showFullHelp = !m.showFullHelp

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

// awaitLookup returns a command that blocks on the pending lookup
func (m *Model) awaitLookup(p *autocomplete.Pending) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return lookupDoneMsg{outcome: p.Wait(ctx)}
	}
}

func (m *Model) handleLookupDone(msg lookupDoneMsg) tea.Cmd {
	if msg.outcome.ID == m.ctl.Generation() {
		m.searching = false
	}
	if !m.ctl.OnLookupResult(msg.outcome) {
		return nil
	}
	if msg.outcome.Err != nil {
		m.status = "Lookup failed: " + msg.outcome.Err.Error()
		m.statusErr = true
		return nil
	}
	m.clearStatus()
	m.candidates.SetCount(len(m.ctl.Items()))
	return nil
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// syncMode returns the input handler to field mode when the controller
// closed the overlay on its own
func (m *Model) syncMode() {
	if !m.ctl.IsOpen() && m.inputHandler.CurrentMode() != inputtypes.ModeField {
		m.inputHandler.ChangeMode(inputtypes.ModeField, modelContext{m})
	}
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusErr = false
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	cfg := m.ctl.Config()
	mode := m.inputHandler.CurrentMode()
	width := m.width
	if width == 0 {
		width = defaultWidth
	}

	state := views.ViewState{
		Width:           width,
		Height:          m.height,
		Title:           m.opts.Title,
		DisplayText:     m.ctl.DisplayText(),
		Placeholder:     cfg.Placeholder,
		ModelText:       formatModel(m.ctl.Selection()),
		Mode:            mode.String(),
		OverlayVisible:  m.ctl.IsOpen(),
		SearchInput:     m.inputHandler.SearchInput().View(),
		CancelLabel:     cfg.CancelLabel,
		Cursor:          m.candidates.SelectedIndex(),
		CandidateOffset: m.candidates.ViewportOffset(),
		Searching:       m.searching,
		Query:           m.ctl.Query(),
		MultipleSelect:  cfg.MultipleSelect,
		SelectedCursor:  m.selected.SelectedIndex(),
		SelectedFocused: mode == inputtypes.ModeSelected,
		StatusMessage:   m.status,
		StatusIsError:   m.statusErr,
		Ready:           m.opts.E2E,
	}
	for _, item := range m.ctl.Items() {
		state.Candidates = append(state.Candidates, m.ctl.ItemLabel(item))
	}
	for _, item := range m.ctl.SelectedItems() {
		state.SelectedItems = append(state.SelectedItems, m.ctl.ItemLabel(item))
	}
	if m.ctl.Inert() && state.StatusMessage == "" {
		state.StatusMessage = "No model bound"
	}
	if m.opts.ShowHelp {
		m.help.ShowAll = m.showFullHelp
		state.HelpText = m.help.View(newKeyMap(mode, cfg.MultipleSelect))
	}

	return m.renderer.Render(state)
}

// formatModel renders the bound model for the model line. Multi-select
// values are comma-joined.
func formatModel(v any) string {
	values, ok := v.([]any)
	if !ok {
		return autocomplete.Format(v)
	}
	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, autocomplete.Format(value))
	}
	return strings.Join(parts, ",")
}

// modelContext exposes the model state the input modes need
type modelContext struct {
	m *Model
}

func (c modelContext) Inert() bool          { return c.m.ctl.Inert() }
func (c modelContext) MultipleSelect() bool { return c.m.ctl.Config().MultipleSelect }
func (c modelContext) CandidateCount() int  { return len(c.m.ctl.Items()) }
func (c modelContext) SelectedCount() int   { return len(c.m.ctl.SelectedItems()) }
