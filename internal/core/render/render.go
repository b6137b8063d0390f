// Package render turns timer snapshots into display text and colors.
package render

import (
	"fmt"
	"image/color"
	"time"

	"resttime/internal/core/model"
	"resttime/internal/core/timekeeper"
)

// ClockStyle selects 12- or 24-hour wall clock rendering.
type ClockStyle string

const (
	Clock24h ClockStyle = "24h"
	Clock12h ClockStyle = "12h"
)

// Palette is a foreground/background color pair.
type Palette struct {
	Foreground color.Color
	Background color.Color
}

var (
	black = color.NRGBA{A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// PaletteFor returns white on black for work and black on white for rest.
func PaletteFor(phase model.Phase) Palette {
	if phase == model.PhaseRest {
		return Palette{Foreground: black, Background: white}
	}
	return Palette{Foreground: white, Background: black}
}

// Frame is everything the face needs to draw one update.
type Frame struct {
	Clock     string
	Countdown string
	Indicator string
	Phase     model.Phase
	Paused    bool
	Palette   Palette
}

// Render builds a frame for the snapshot at the given wall-clock time.
func Render(snapshot timekeeper.Snapshot, now time.Time, style ClockStyle) Frame {
	return Frame{
		Clock:     FormatClock(now, style),
		Countdown: FormatCountdown(snapshot.Remaining),
		Indicator: snapshot.Indicator(),
		Phase:     snapshot.Phase,
		Paused:    snapshot.Paused,
		Palette:   PaletteFor(snapshot.Phase),
	}
}

// FormatCountdown renders seconds as m:ss. Negative values are rendered by
// magnitude so an overrun reads as elapsed time.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = -seconds
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatClock renders the wall clock as HH:MM.
func FormatClock(now time.Time, style ClockStyle) string {
	if style == Clock12h {
		return now.Format("03:04")
	}
	return now.Format("15:04")
}

// ParseClockStyle maps "12h" or "24h" to a ClockStyle.
func ParseClockStyle(value string) (ClockStyle, error) {
	switch ClockStyle(value) {
	case Clock12h, Clock24h:
		return ClockStyle(value), nil
	}
	return "", fmt.Errorf("unknown clock style %q", value)
}
