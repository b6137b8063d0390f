package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resttime/internal/core/model"
	"resttime/internal/core/render"
	"resttime/internal/core/timekeeper"
)

var fixedNow = time.Date(2026, 5, 4, 14, 7, 0, 0, time.UTC)

func newTestModel(t *testing.T) (Model, *timekeeper.TimeKeeper) {
	t.Helper()
	keeper := timekeeper.New(model.DefaultIntervalConfig(), timekeeper.Config{Clock: clockwork.NewFakeClockAt(fixedNow)})
	m := NewModel(keeper, nil, render.Clock24h)
	m.now = func() time.Time { return fixedNow }
	m.refresh()
	return m, keeper
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func TestModel_InitialFace(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, "Ready", m.frame.Indicator)
	assert.Equal(t, "25:00", m.frame.Countdown)
	assert.Equal(t, "14:07", m.frame.Clock)
	assert.Nil(t, m.Init())

	view := m.View()
	assert.Contains(t, view, "25:00")
	assert.Contains(t, view, "Ready")
}

func TestModel_FaceKeys(t *testing.T) {
	m, keeper := newTestModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, keeper.Snapshot().Paused)
	assert.Empty(t, m.frame.Indicator)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, model.PhaseRest, keeper.Snapshot().Phase)
	assert.Equal(t, "2:00", m.frame.Countdown)

	m, _ = press(t, m, runeKey('w'))
	assert.Equal(t, model.PhaseWork, keeper.Snapshot().Phase)

	// Pausing a freshly started interval leaves it at full length, which
	// reads as Ready rather than Paused.
	m, _ = press(t, m, runeKey('p'))
	assert.True(t, keeper.Snapshot().Paused)
	assert.Equal(t, timekeeper.StatusReady, keeper.Snapshot().Status())
	assert.Equal(t, "Ready", m.frame.Indicator)
	assert.Equal(t, "25:00", m.frame.Countdown)
}

func TestModel_PausedMidInterval(t *testing.T) {
	m, _ := newTestModel(t)
	snapshot := timekeeper.Snapshot{
		TimerState: timekeeper.TimerState{Remaining: 1490, Phase: model.PhaseWork, Paused: true},
		Config:     model.DefaultIntervalConfig(),
	}

	m, _ = press(t, m, eventMsg(timekeeper.Event{Type: timekeeper.EventStateChange, Snapshot: snapshot, At: fixedNow}))
	assert.Equal(t, "Paused", m.frame.Indicator)
	assert.Equal(t, "24:50", m.frame.Countdown)
}

func TestModel_SettingsMenu(t *testing.T) {
	m, keeper := newTestModel(t)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})

	m, _ = press(t, m, runeKey('s'))
	require.NotNil(t, m.settings)
	view := m.View()
	assert.Contains(t, view, "Settings")
	assert.Contains(t, view, "Work Interval")
	assert.Contains(t, view, "25:00")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1800, m.settings.Config().WorkSeconds)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.settings.Config().WarningVibration)
	assert.Equal(t, 2, m.cursor)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.Nil(t, m.settings)
	require.NoError(t, m.err)

	snapshot := keeper.Snapshot()
	assert.Equal(t, 1800, snapshot.Remaining)
	assert.True(t, snapshot.Paused)
	assert.True(t, snapshot.Config.WarningVibration)
	assert.Equal(t, "Ready", m.frame.Indicator)
	assert.Equal(t, "30:00", m.frame.Countdown)
}

func TestModel_SettingsCursorStaysInRange(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(t, m, runeKey('s'))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)

	for i := 0; i < 10; i++ {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 3, m.cursor)
}

func TestModel_OpenSettingsMessage(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, openSettingsMsg{})
	require.NotNil(t, m.settings)
	assert.Equal(t, model.DefaultIntervalConfig(), m.settings.Config())
}

func TestModel_EventRendersFrame(t *testing.T) {
	m, _ := newTestModel(t)
	events := make(chan timekeeper.Event, 1)
	m.events = events

	snapshot := timekeeper.Snapshot{
		TimerState: timekeeper.TimerState{Remaining: 75, Phase: model.PhaseRest},
		Config:     model.DefaultIntervalConfig(),
	}
	at := time.Date(2026, 5, 4, 18, 30, 0, 0, time.UTC)
	m, cmd := press(t, m, eventMsg(timekeeper.Event{Type: timekeeper.EventTick, Snapshot: snapshot, At: at}))

	assert.Equal(t, "1:15", m.frame.Countdown)
	assert.Equal(t, "18:30", m.frame.Clock)
	assert.Equal(t, model.PhaseRest, m.frame.Phase)
	require.NotNil(t, cmd)

	close(events)
	assert.Equal(t, eventsClosedMsg{}, cmd())
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := press(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	_, cmd = press(t, m, eventsClosedMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
