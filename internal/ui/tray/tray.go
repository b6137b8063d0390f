package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"resttime/internal/core/model"
	"resttime/internal/core/render"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnTogglePause func()
	OnStartWork   func()
	OnStartRest   func()
	OnSettings    func()
	OnQuit        func()
}

// trayMenuSetter is the part of desktop.App the manager drives.
type trayMenuSetter interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Manager handles system tray state.
type Manager struct {
	app        trayMenuSetter
	title      string
	menu       *fyne.Menu
	statusItem *fyne.MenuItem
	pauseItem  *fyne.MenuItem
	callbacks  Callbacks
	relabel    func(menu *fyne.Menu)

	shown  bool
	phase  model.Phase
	paused bool
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, title string, callbacks Callbacks) *Manager {
	return newManager(app, title, callbacks)
}

func newManager(app trayMenuSetter, title string, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		title:     title,
		callbacks: callbacks,
		relabel:   (*fyne.Menu).Refresh,
	}

	manager.statusItem = fyne.NewMenuItem("Ready", nil)
	manager.statusItem.Disabled = true
	manager.pauseItem = fyne.NewMenuItem("Start", call(callbacks.OnTogglePause))

	manager.refreshMenu()
	return manager
}

// Update reflects a rendered frame in the menu. It is safe to call from any
// goroutine.
func (manager *Manager) Update(frame render.Frame) {
	fyne.Do(func() {
		manager.updateUnsafe(frame)
	})
}

func (manager *Manager) updateUnsafe(frame render.Frame) {
	status := fmt.Sprintf("%s %s", frame.Phase, frame.Countdown)
	if frame.Indicator != "" {
		status = fmt.Sprintf("%s (%s)", status, frame.Indicator)
	}
	manager.statusItem.Label = status

	// Only a phase or pause change alters the menu's shape; a countdown tick
	// just relabels the status line.
	if manager.shown && frame.Phase == manager.phase && frame.Paused == manager.paused {
		if manager.menu != nil {
			manager.relabel(manager.menu)
		}
		return
	}
	manager.shown = true
	manager.phase = frame.Phase
	manager.paused = frame.Paused
	if frame.Paused {
		manager.pauseItem.Label = "Resume"
	} else {
		manager.pauseItem.Label = "Pause"
	}
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	quit := fyne.NewMenuItem("Quit", call(manager.callbacks.OnQuit))
	quit.IsQuit = true
	manager.menu = fyne.NewMenu(manager.title,
		manager.statusItem,
		fyne.NewMenuItem("Show", call(manager.callbacks.OnShow)),
		fyne.NewMenuItemSeparator(),
		manager.pauseItem,
		fyne.NewMenuItem("Start work", call(manager.callbacks.OnStartWork)),
		fyne.NewMenuItem("Start rest", call(manager.callbacks.OnStartRest)),
		fyne.NewMenuItem("Settings", call(manager.callbacks.OnSettings)),
		fyne.NewMenuItemSeparator(),
		quit,
	)
	manager.app.SetSystemTrayMenu(manager.menu)
}

func call(handler func()) func() {
	return func() {
		if handler != nil {
			handler()
		}
	}
}
