package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resttime/internal/core/model"
	"resttime/internal/core/timekeeper"
)

func TestFormatCountdown(t *testing.T) {
	tests := map[int]string{
		0:    "0:00",
		5:    "0:05",
		65:   "1:05",
		1500: "25:00",
		3599: "59:59",
		3600: "60:00",
		-5:   "0:05",
		-61:  "1:01",
	}
	for seconds, want := range tests {
		assert.Equal(t, want, FormatCountdown(seconds), "seconds=%d", seconds)
	}
}

func TestFormatCountdown_IgnoresSign(t *testing.T) {
	for seconds := 0; seconds <= 4000; seconds += 7 {
		require.Equal(t, FormatCountdown(seconds), FormatCountdown(-seconds))
	}
}

func TestFormatClock(t *testing.T) {
	afternoon := time.Date(2026, 3, 1, 15, 4, 0, 0, time.UTC)
	assert.Equal(t, "15:04", FormatClock(afternoon, Clock24h))
	assert.Equal(t, "03:04", FormatClock(afternoon, Clock12h))

	morning := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "09:30", FormatClock(morning, Clock24h))
	assert.Equal(t, "09:30", FormatClock(morning, Clock12h))
}

func TestParseClockStyle(t *testing.T) {
	style, err := ParseClockStyle("12h")
	require.NoError(t, err)
	assert.Equal(t, Clock12h, style)

	_, err = ParseClockStyle("36h")
	require.Error(t, err)
}

func TestRender(t *testing.T) {
	machine := timekeeper.NewMachine(model.DefaultIntervalConfig())
	now := time.Date(2026, 3, 1, 8, 15, 0, 0, time.UTC)

	frame := Render(machine.Snapshot(), now, Clock24h)
	assert.Equal(t, "08:15", frame.Clock)
	assert.Equal(t, "25:00", frame.Countdown)
	assert.Equal(t, "Ready", frame.Indicator)
	assert.True(t, frame.Paused)
	assert.Equal(t, PaletteFor(model.PhaseWork), frame.Palette)

	machine.ForceStart(model.PhaseRest)
	frame = Render(machine.Snapshot(), now, Clock24h)
	assert.Equal(t, "2:00", frame.Countdown)
	assert.Empty(t, frame.Indicator)
	assert.False(t, frame.Paused)
	assert.Equal(t, PaletteFor(model.PhaseRest), frame.Palette)
}

func TestPaletteFor(t *testing.T) {
	work := PaletteFor(model.PhaseWork)
	rest := PaletteFor(model.PhaseRest)
	assert.Equal(t, work.Foreground, rest.Background)
	assert.Equal(t, work.Background, rest.Foreground)
	assert.Equal(t, black, work.Background)
}
