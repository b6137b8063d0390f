package face

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"

	"resttime/internal/core/model"
	"resttime/internal/core/timekeeper"
)

func TestCommandForKey(t *testing.T) {
	tests := map[fyne.KeyName]timekeeper.Command{
		fyne.KeyUp:     timekeeper.CommandStartRest,
		fyne.KeyDown:   timekeeper.CommandStartWork,
		fyne.KeySpace:  timekeeper.CommandTogglePause,
		fyne.KeyReturn: timekeeper.CommandTogglePause,
		fyne.KeyS:      timekeeper.CommandOpenSettings,
	}
	for name, want := range tests {
		got, ok := commandForKey(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	_, ok := commandForKey(fyne.KeyX)
	assert.False(t, ok)
}

func TestNotificationText(t *testing.T) {
	config := model.DefaultIntervalConfig()
	state := func(phase model.Phase, remaining int) timekeeper.Snapshot {
		return timekeeper.Snapshot{
			TimerState: timekeeper.TimerState{Remaining: remaining, Phase: phase},
			Config:     config,
		}
	}

	tests := []struct {
		name     string
		pattern  timekeeper.Vibration
		snapshot timekeeper.Snapshot
		want     string
	}{
		{name: "work reaches zero", pattern: timekeeper.VibeShort, snapshot: state(model.PhaseWork, 0), want: "Work interval finished"},
		{name: "rest begins", pattern: timekeeper.VibeDouble, snapshot: state(model.PhaseRest, 120), want: "Time to rest"},
		{name: "rest reaches zero", pattern: timekeeper.VibeShort, snapshot: state(model.PhaseRest, 0), want: "Rest interval finished"},
		{name: "work begins", pattern: timekeeper.VibeShort, snapshot: state(model.PhaseWork, 1500), want: "Back to work"},
		{name: "work warning", pattern: timekeeper.VibeDouble, snapshot: state(model.PhaseWork, 9), want: "Work ends in 9 seconds"},
		{name: "overrun minute", pattern: timekeeper.VibeShort, snapshot: state(model.PhaseWork, -60), want: "Work overrun by 1:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, notificationText(tt.pattern, tt.snapshot))
		})
	}
}
