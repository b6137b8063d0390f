package face

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"resttime/internal/core/model"
	"resttime/internal/core/render"
	"resttime/internal/core/timekeeper"
)

const (
	faceWidth  = float32(240)
	faceHeight = float32(260)
)

// Window is the main watch face.
type Window struct {
	window         fyne.Window
	background     *canvas.Rectangle
	clockLabel     *canvas.Text
	countdownLabel *canvas.Text
	indicatorLabel *canvas.Text
	pauseButton    *widget.Button
	onCommand      func(timekeeper.Command)
}

// New creates the watch face window. onCommand receives every button press
// and keyboard shortcut.
func New(app fyne.App, title string, onCommand func(timekeeper.Command)) *Window {
	window := app.NewWindow(title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	palette := render.PaletteFor(model.PhaseWork)
	background := canvas.NewRectangle(palette.Background)

	indicatorLabel := canvas.NewText("Ready", palette.Foreground)
	indicatorLabel.Alignment = fyne.TextAlignLeading
	indicatorLabel.TextSize = 14

	countdownLabel := canvas.NewText("0:00", palette.Foreground)
	countdownLabel.Alignment = fyne.TextAlignLeading
	countdownLabel.TextStyle = fyne.TextStyle{Monospace: true}
	countdownLabel.TextSize = 34

	clockLabel := canvas.NewText("00:00", palette.Foreground)
	clockLabel.Alignment = fyne.TextAlignLeading
	clockLabel.TextStyle = fyne.TextStyle{Bold: true}
	clockLabel.TextSize = 42

	face := &Window{
		window:         window,
		background:     background,
		clockLabel:     clockLabel,
		countdownLabel: countdownLabel,
		indicatorLabel: indicatorLabel,
		onCommand:      onCommand,
	}

	restButton := widget.NewButtonWithIcon("Rest", theme.MoveUpIcon(), face.command(timekeeper.CommandStartRest))
	face.pauseButton = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), face.command(timekeeper.CommandTogglePause))
	workButton := widget.NewButtonWithIcon("Work", theme.MoveDownIcon(), face.command(timekeeper.CommandStartWork))
	settingsButton := widget.NewButtonWithIcon("", theme.SettingsIcon(), face.command(timekeeper.CommandOpenSettings))

	labels := container.NewVBox(
		container.NewPadded(indicatorLabel),
		container.NewPadded(countdownLabel),
		container.NewPadded(clockLabel),
	)
	buttons := container.NewHBox(restButton, face.pauseButton, workButton, layout.NewSpacer(), settingsButton)
	content := container.NewBorder(nil, buttons, nil, nil, labels)

	window.SetContent(container.NewStack(background, content))
	window.Resize(fyne.NewSize(faceWidth, faceHeight))
	window.Canvas().SetOnTypedKey(face.handleKey)

	return face
}

// Window returns the underlying Fyne window.
func (face *Window) Window() fyne.Window {
	return face.window
}

// Show displays the face.
func (face *Window) Show() {
	face.window.Show()
	face.window.RequestFocus()
}

// Render draws a frame. It is safe to call from any goroutine.
func (face *Window) Render(frame render.Frame) {
	fyne.Do(func() {
		face.renderUnsafe(frame)
	})
}

func (face *Window) renderUnsafe(frame render.Frame) {
	face.background.FillColor = frame.Palette.Background
	face.background.Refresh()

	face.setText(face.clockLabel, frame.Clock, frame.Palette.Foreground)
	face.setText(face.countdownLabel, frame.Countdown, frame.Palette.Foreground)
	face.setText(face.indicatorLabel, frame.Indicator, frame.Palette.Foreground)

	if frame.Paused {
		face.pauseButton.SetIcon(theme.MediaPlayIcon())
	} else {
		face.pauseButton.SetIcon(theme.MediaPauseIcon())
	}
}

func (face *Window) setText(label *canvas.Text, text string, foreground color.Color) {
	label.Text = text
	label.Color = foreground
	label.Refresh()
}

func (face *Window) command(command timekeeper.Command) func() {
	return func() {
		if face.onCommand != nil {
			face.onCommand(command)
		}
	}
}

func (face *Window) handleKey(event *fyne.KeyEvent) {
	if command, ok := commandForKey(event.Name); ok {
		face.command(command)()
	}
}

func commandForKey(name fyne.KeyName) (timekeeper.Command, bool) {
	switch name {
	case fyne.KeyUp:
		return timekeeper.CommandStartRest, true
	case fyne.KeyDown:
		return timekeeper.CommandStartWork, true
	case fyne.KeySpace, fyne.KeyReturn, fyne.KeyEnter:
		return timekeeper.CommandTogglePause, true
	case fyne.KeyS:
		return timekeeper.CommandOpenSettings, true
	}
	return "", false
}
