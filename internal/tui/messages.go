package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"resttime/internal/core/timekeeper"
)

// Message types for Bubble Tea update loop.

// eventMsg carries a TimeKeeper event.
type eventMsg timekeeper.Event

// eventsClosedMsg signals that the TimeKeeper stopped.
type eventsClosedMsg struct{}

// openSettingsMsg asks the face to open the settings menu.
type openSettingsMsg struct{}

func waitForEvent(events <-chan timekeeper.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(event)
	}
}
