package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/maksimkurb/phonebook/src/internal/log"
	"github.com/maksimkurb/phonebook/src/internal/phonebook"
)

type focus int

const (
	focusSearch focus = iota
	focusName
	focusNumber
	focusList
	focusCount
)

// eventMsg carries a phonebook event through the bubbletea loop.
type eventMsg struct {
	phonebook.Event
}

// EventMsg wraps ev so it can be sent to a running program with
// tea.Program.Send.
func EventMsg(ev phonebook.Event) tea.Msg {
	return eventMsg{Event: ev}
}

var _ tea.Model = Model{}

// Model is the bubbletea model of the phonebook screen.
type Model struct {
	ctx        context.Context
	controller *phonebook.Controller
	executor   *phonebook.Executor
	schedule   func(phonebook.ScheduleClear)

	state phonebook.State

	search textinput.Model
	name   textinput.Model
	number textinput.Model
	focus  focus
	cursor int

	keys keyMap
	help help.Model

	width int
}

// NewModel creates the screen. Remote commands run with ctx.
func NewModel(ctx context.Context, controller *phonebook.Controller, executor *phonebook.Executor) Model {
	m := Model{
		ctx:        ctx,
		controller: controller,
		executor:   executor,
		search:     newInput("regex", 64),
		name:       newInput("Arto Hellas", 64),
		number:     newInput("040-123456", 32),
		focus:      focusName,
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
	m.name.Focus()
	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 32
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// WithScheduler makes the model hand message lifetimes to schedule instead of
// arming a tea.Tick per message.
func (m Model) WithScheduler(schedule func(phonebook.ScheduleClear)) Model {
	m.schedule = schedule
	return m
}

// State returns the current phonebook state.
func (m Model) State() phonebook.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return eventMsg{Event: phonebook.Init{}}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m.dispatch(msg.Event)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.state.Pending != nil {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			return m.dispatch(phonebook.Confirmed{})
		case key.Matches(msg, m.keys.Cancel):
			return m.dispatch(phonebook.Cancelled{})
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		return m.setFocus((m.focus + 1) % focusCount), nil
	case key.Matches(msg, m.keys.Prev):
		return m.setFocus((m.focus + focusCount - 1) % focusCount), nil
	}

	switch m.focus {
	case focusList:
		return m.handleListKey(msg)
	case focusSearch:
		if key.Matches(msg, m.keys.Submit) {
			return m.setFocus(focusList), nil
		}
	case focusName, focusNumber:
		if key.Matches(msg, m.keys.Submit) {
			return m.dispatch(phonebook.Submitted{})
		}
	}

	return m.updateInput(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.state.Visible()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(visible) {
			return m.dispatch(phonebook.DeleteRequested{ID: visible[m.cursor].ID})
		}
	}
	return m, nil
}

// updateInput passes msg to the focused text field and reports a changed
// value as an event.
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case focusSearch:
		m.search, cmd = m.search.Update(msg)
		if v := m.search.Value(); v != m.state.Search {
			return m.dispatchWith(cmd, phonebook.SearchChanged{Value: v})
		}
	case focusName:
		m.name, cmd = m.name.Update(msg)
		if v := m.name.Value(); v != m.state.Name {
			return m.dispatchWith(cmd, phonebook.NameChanged{Value: v})
		}
	case focusNumber:
		m.number, cmd = m.number.Update(msg)
		if v := m.number.Value(); v != m.state.Number {
			return m.dispatchWith(cmd, phonebook.NumberChanged{Value: v})
		}
	}

	return m, cmd
}

func (m Model) dispatchWith(cmd tea.Cmd, ev phonebook.Event) (tea.Model, tea.Cmd) {
	next, evCmd := m.dispatch(ev)
	return next, tea.Batch(cmd, evCmd)
}

// dispatch runs ev through the controller and turns the resulting commands
// into tea commands.
func (m Model) dispatch(ev phonebook.Event) (Model, tea.Cmd) {
	var commands []phonebook.Command
	m.state, commands = m.controller.Update(m.state, ev)
	m.syncInputs()

	if n := len(m.state.Visible()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}

	cmds := make([]tea.Cmd, 0, len(commands))
	for _, c := range commands {
		cmds = append(cmds, m.command(c))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) command(c phonebook.Command) tea.Cmd {
	if sc, ok := c.(phonebook.ScheduleClear); ok {
		if m.schedule != nil {
			m.schedule(sc)
			return nil
		}
		return tea.Tick(sc.After, func(_ time.Time) tea.Msg {
			return eventMsg{Event: phonebook.MessageExpired{Slot: sc.Slot, ID: sc.ID}}
		})
	}

	ctx, executor := m.ctx, m.executor
	return func() tea.Msg {
		ev := executor.Execute(ctx, c)
		if ev == nil {
			log.Warnf("Command %T produced no event", c)
			return nil
		}
		return eventMsg{Event: ev}
	}
}

// syncInputs copies form values cleared by the controller back into the
// text fields.
func (m *Model) syncInputs() {
	if m.name.Value() != m.state.Name {
		m.name.SetValue(m.state.Name)
	}
	if m.number.Value() != m.state.Number {
		m.number.SetValue(m.state.Number)
	}
	if m.search.Value() != m.state.Search {
		m.search.SetValue(m.state.Search)
	}
}

func (m Model) setFocus(f focus) Model {
	m.focus = f
	m.search.Blur()
	m.name.Blur()
	m.number.Blur()

	switch f {
	case focusSearch:
		m.search.Focus()
	case focusName:
		m.name.Focus()
	case focusNumber:
		m.number.Focus()
	}
	return m
}
