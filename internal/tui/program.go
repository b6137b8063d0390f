package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"resttime/internal/core/render"
	"resttime/internal/core/timekeeper"
)

const eventBufferSize = 8

// Run starts the TimeKeeper and blocks on the terminal face until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, keeper *timekeeper.TimeKeeper, style render.ClockStyle) error {
	events := keeper.Subscribe(eventBufferSize)
	model := NewModel(keeper, events, style)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	keeper.SetSettingsHandler(func() {
		p.Send(openSettingsMsg{})
	})

	// Silence external logs during TUI to avoid corrupting the view.
	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	defer logrus.SetOutput(prevOut)

	keeper.Start()
	defer keeper.Stop()

	_, err := p.Run()
	return err
}
