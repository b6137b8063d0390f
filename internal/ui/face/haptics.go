package face

import (
	"fmt"

	"fyne.io/fyne/v2"

	"resttime/internal/core/model"
	"resttime/internal/core/render"
	"resttime/internal/core/timekeeper"
)

// NotifyHaptics stands in for a vibration motor on the desktop by posting a
// system notification for each pattern. The message is chosen from the
// timer state the pattern was fired in.
type NotifyHaptics struct {
	app      fyne.App
	title    string
	snapshot func() timekeeper.Snapshot
}

// NewNotifyHaptics posts notifications through app. snapshot reports the
// timer state at the moment a pattern fires.
func NewNotifyHaptics(app fyne.App, title string, snapshot func() timekeeper.Snapshot) *NotifyHaptics {
	return &NotifyHaptics{app: app, title: title, snapshot: snapshot}
}

// Vibrate posts a notification describing why the pattern fired.
func (haptics *NotifyHaptics) Vibrate(pattern timekeeper.Vibration) {
	message := notificationText(pattern, haptics.snapshot())
	haptics.app.SendNotification(fyne.NewNotification(haptics.title, message))
}

func notificationText(pattern timekeeper.Vibration, snapshot timekeeper.Snapshot) string {
	remaining := snapshot.Remaining
	switch {
	case remaining < 0:
		return fmt.Sprintf("%s overrun by %s", phaseName(snapshot.Phase), render.FormatCountdown(remaining))
	case remaining == 0:
		return fmt.Sprintf("%s interval finished", phaseName(snapshot.Phase))
	case pattern == timekeeper.VibeDouble && snapshot.Phase == model.PhaseWork:
		return fmt.Sprintf("Work ends in %d seconds", remaining)
	case snapshot.Phase == model.PhaseRest:
		return "Time to rest"
	default:
		return "Back to work"
	}
}

func phaseName(phase model.Phase) string {
	if phase == model.PhaseRest {
		return "Rest"
	}
	return "Work"
}
