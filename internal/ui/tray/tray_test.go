package tray

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resttime/internal/core/model"
	"resttime/internal/core/render"
)

type recordingTray struct {
	menus []*fyne.Menu
}

func (tray *recordingTray) SetSystemTrayMenu(menu *fyne.Menu) {
	tray.menus = append(tray.menus, menu)
}

func TestManager_RebuildsOnlyOnPhaseOrPauseChange(t *testing.T) {
	tray := &recordingTray{}
	manager := newManager(tray, "Rest Time", Callbacks{})
	relabels := 0
	manager.relabel = func(*fyne.Menu) { relabels++ }
	require.Len(t, tray.menus, 1)

	running := render.Frame{Phase: model.PhaseWork, Countdown: "24:59"}
	manager.updateUnsafe(running)
	require.Len(t, tray.menus, 2)
	assert.Equal(t, "Pause", manager.pauseItem.Label)

	running.Countdown = "24:58"
	manager.updateUnsafe(running)
	running.Countdown = "24:57"
	manager.updateUnsafe(running)
	assert.Len(t, tray.menus, 2, "countdown ticks must not rebuild the menu")
	assert.Equal(t, 2, relabels)
	assert.Equal(t, "work 24:57", manager.statusItem.Label)

	paused := running
	paused.Paused = true
	paused.Indicator = "Paused"
	manager.updateUnsafe(paused)
	assert.Len(t, tray.menus, 3)
	assert.Equal(t, "Resume", manager.pauseItem.Label)
	assert.Equal(t, "work 24:57 (Paused)", manager.statusItem.Label)

	manager.updateUnsafe(render.Frame{Phase: model.PhaseRest, Countdown: "2:00"})
	assert.Len(t, tray.menus, 4)
	assert.Equal(t, 2, relabels)
}

func TestManager_NilAppIgnoresUpdates(t *testing.T) {
	manager := New(nil, "Rest Time", Callbacks{})
	manager.updateUnsafe(render.Frame{Phase: model.PhaseWork, Countdown: "25:00"})
	manager.updateUnsafe(render.Frame{Phase: model.PhaseWork, Countdown: "24:59"})
	assert.Nil(t, manager.menu)
}
