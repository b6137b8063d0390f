package preferences

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"resttime/internal/core/menu"
	"resttime/internal/core/model"
)

// Window handles the settings menu UI.
type Window struct {
	window  fyne.Window
	menu    *menu.Menu
	onClose func(model.IntervalConfig)
	values  []*widget.Button
	visible bool
}

// New creates a settings window. onClose receives the edited configuration
// whenever the window is dismissed.
func New(app fyne.App, onClose func(model.IntervalConfig)) *Window {
	window := app.NewWindow("Settings")

	prefs := &Window{
		window:  window,
		menu:    menu.New(model.DefaultIntervalConfig()),
		onClose: onClose,
	}

	form := container.NewVBox(
		widget.NewLabelWithStyle("Settings", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)
	for index, item := range prefs.menu.Items() {
		index := index
		value := widget.NewButton(item.Subtitle, func() {
			prefs.activate(index)
		})
		prefs.values = append(prefs.values, value)
		form.Add(container.NewBorder(nil, nil, widget.NewLabel(item.Title), nil, value))
	}

	doneButton := widget.NewButton("Done", prefs.Close)
	buttons := container.NewHBox(layout.NewSpacer(), doneButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.SetCloseIntercept(prefs.Close)
	window.Resize(fyne.NewSize(280, 260))

	return prefs
}

// Show opens the window editing config. An already open window keeps its
// pending edits.
func (prefs *Window) Show(config model.IntervalConfig) {
	if prefs.visible {
		prefs.window.RequestFocus()
		return
	}
	prefs.menu.Reset(config)
	prefs.refresh()
	prefs.visible = true
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Close hides the window and reports the edited configuration.
func (prefs *Window) Close() {
	if !prefs.visible {
		return
	}
	prefs.visible = false
	prefs.window.Hide()
	if prefs.onClose != nil {
		prefs.onClose(prefs.menu.Config())
	}
}

// Config returns the configuration currently shown.
func (prefs *Window) Config() model.IntervalConfig {
	return prefs.menu.Config()
}

func (prefs *Window) activate(index int) {
	prefs.menu.Activate(index)
	prefs.refresh()
}

func (prefs *Window) refresh() {
	for index, item := range prefs.menu.Items() {
		prefs.values[index].SetText(item.Subtitle)
	}
}
