package main

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/sirupsen/logrus"

	"resttime/internal/core/model"
	"resttime/internal/core/render"
	"resttime/internal/core/timekeeper"
	"resttime/internal/ui/face"
	"resttime/internal/ui/preferences"
	"resttime/internal/ui/tray"
)

const eventBufferSize = 16

func runDesktop(ctx context.Context, keeper *timekeeper.TimeKeeper, style render.ClockStyle) error {
	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(theme.HistoryIcon())

	handle := func(command timekeeper.Command) {
		if err := keeper.HandleCommand(command); err != nil {
			logrus.WithError(err).Warn("handle command")
		}
	}

	faceWindow := face.New(fyneApp, appTitle, handle)
	faceWindow.Window().SetMaster()

	prefsWindow := preferences.New(fyneApp, func(config model.IntervalConfig) {
		if err := keeper.CloseSettings(config); err != nil {
			logrus.WithError(err).Error("save settings")
		}
	})
	keeper.SetSettingsHandler(func() {
		fyne.Do(func() {
			prefsWindow.Show(keeper.OpenSettings())
		})
	})
	keeper.SetHaptics(face.NewNotifyHaptics(fyneApp, appTitle, keeper.Snapshot))

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, appTitle, tray.Callbacks{
			OnShow:        faceWindow.Show,
			OnTogglePause: func() { handle(timekeeper.CommandTogglePause) },
			OnStartWork:   func() { handle(timekeeper.CommandStartWork) },
			OnStartRest:   func() { handle(timekeeper.CommandStartRest) },
			OnSettings:    func() { handle(timekeeper.CommandOpenSettings) },
			OnQuit:        fyneApp.Quit,
		})
	} else {
		logrus.Debug("system tray unsupported on this platform")
	}

	events := keeper.Subscribe(eventBufferSize)
	go func() {
		for event := range events {
			frame := render.Render(event.Snapshot, event.At, style)
			faceWindow.Render(frame)
			if trayManager != nil {
				trayManager.Update(frame)
			}
		}
	}()

	go func() {
		<-ctx.Done()
		fyne.Do(fyneApp.Quit)
	}()

	keeper.Start()
	defer keeper.Stop()

	faceWindow.Show()
	fyneApp.Run()
	return nil
}
