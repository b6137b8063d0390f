package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"resttime/internal/core/menu"
	"resttime/internal/core/model"
	"resttime/internal/core/render"
	"resttime/internal/core/timekeeper"
)

// Controller is the part of the TimeKeeper the terminal face drives.
type Controller interface {
	HandleCommand(command timekeeper.Command) error
	OpenSettings() model.IntervalConfig
	CloseSettings(config model.IntervalConfig) error
	Snapshot() timekeeper.Snapshot
}

// Model is the Bubble Tea model for the terminal face.
type Model struct {
	keeper Controller
	events <-chan timekeeper.Event
	style  render.ClockStyle
	now    func() time.Time

	frame    render.Frame
	keys     keyMap
	help     help.Model
	settings *menu.Menu
	cursor   int
	err      error
}

// NewModel builds the face for keeper. events may be nil when the caller
// does not stream TimeKeeper updates.
func NewModel(keeper Controller, events <-chan timekeeper.Event, style render.ClockStyle) Model {
	m := Model{
		keeper: keeper,
		events: events,
		style:  style,
		now:    time.Now,
		keys:   newKeyMap(),
		help:   help.New(),
	}
	m.frame = render.Render(keeper.Snapshot(), m.now(), style)
	return m
}

// Init starts listening for TimeKeeper events.
func (m Model) Init() tea.Cmd {
	if m.events == nil {
		return nil
	}
	return waitForEvent(m.events)
}

// Update handles key presses and TimeKeeper events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case eventMsg:
		m.frame = render.Render(msg.Snapshot, msg.At, m.style)
		return m, waitForEvent(m.events)
	case eventsClosedMsg:
		return m, tea.Quit
	case openSettingsMsg:
		if m.settings == nil {
			m.openSettings()
		}
		return m, nil
	case tea.KeyMsg:
		if m.settings != nil {
			return m.updateSettings(msg)
		}
		return m.updateFace(msg)
	}
	return m, nil
}

func (m Model) updateFace(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		return m.command(timekeeper.CommandTogglePause)
	case key.Matches(msg, m.keys.Work):
		return m.command(timekeeper.CommandStartWork)
	case key.Matches(msg, m.keys.Rest):
		return m.command(timekeeper.CommandStartRest)
	case key.Matches(msg, m.keys.Settings):
		m.openSettings()
		return m, nil
	}
	return m, nil
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < menu.ItemCount-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Activate):
		m.settings.Activate(m.cursor)
	case key.Matches(msg, m.keys.Close):
		config := m.settings.Config()
		m.settings = nil
		m.err = m.keeper.CloseSettings(config)
		m.refresh()
	}
	return m, nil
}

func (m Model) command(command timekeeper.Command) (tea.Model, tea.Cmd) {
	m.err = m.keeper.HandleCommand(command)
	m.refresh()
	return m, nil
}

func (m *Model) openSettings() {
	m.settings = menu.New(m.keeper.OpenSettings())
	m.cursor = 0
}

func (m *Model) refresh() {
	m.frame = render.Render(m.keeper.Snapshot(), m.now(), m.style)
}
