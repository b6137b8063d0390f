// Package menu models the four-item settings menu independently of any
// toolkit.
package menu

import (
	"resttime/internal/core/model"
	"resttime/internal/core/render"
)

const (
	ItemWorkInterval = iota
	ItemRestInterval
	ItemWarningVibration
	ItemOverrun

	ItemCount
)

// Item is one menu row.
type Item struct {
	Title    string
	Subtitle string
}

// Menu holds the configuration being edited.
type Menu struct {
	config model.IntervalConfig
}

// New starts editing the given configuration.
func New(config model.IntervalConfig) *Menu {
	return &Menu{config: config}
}

// Config returns the edited configuration.
func (menu *Menu) Config() model.IntervalConfig {
	return menu.config
}

// Reset replaces the configuration being edited.
func (menu *Menu) Reset(config model.IntervalConfig) {
	menu.config = config
}

// Items returns the rows in display order.
func (menu *Menu) Items() []Item {
	return []Item{
		{Title: "Work Interval", Subtitle: render.FormatCountdown(menu.config.WorkSeconds)},
		{Title: "Rest Interval", Subtitle: render.FormatCountdown(menu.config.RestSeconds)},
		{Title: "Warning Vibe", Subtitle: onOff(menu.config.WarningVibration)},
		{Title: "Overrun", Subtitle: onOff(menu.config.Overrun)},
	}
}

// Activate steps or toggles the value behind the item at index. Out of
// range indices are ignored.
func (menu *Menu) Activate(index int) {
	switch index {
	case ItemWorkInterval:
		menu.config.WorkSeconds = model.NextWorkSeconds(menu.config.WorkSeconds)
	case ItemRestInterval:
		menu.config.RestSeconds = model.NextRestSeconds(menu.config.RestSeconds)
	case ItemWarningVibration:
		menu.config.WarningVibration = !menu.config.WarningVibration
	case ItemOverrun:
		menu.config.Overrun = !menu.config.Overrun
	}
}

func onOff(value bool) string {
	if value {
		return "On"
	}
	return "Off"
}
