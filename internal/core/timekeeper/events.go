package timekeeper

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventTick        EventType = "tick"
	EventClock       EventType = "clock"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type       EventType
	Snapshot   Snapshot
	Vibrations []Vibration
	At         time.Time
}

// Command is a discrete user input understood by the TimeKeeper.
type Command string

const (
	CommandTogglePause  Command = "toggle"
	CommandStartWork    Command = "work"
	CommandStartRest    Command = "rest"
	CommandOpenSettings Command = "settings"
)

// ErrUnknownCommand is returned by ParseCommand for unrecognized input.
var ErrUnknownCommand = errors.New("unknown command")

// ParseCommand maps a command name to a Command.
func ParseCommand(value string) (Command, error) {
	switch Command(strings.ToLower(strings.TrimSpace(value))) {
	case CommandTogglePause, "pause":
		return CommandTogglePause, nil
	case CommandStartWork:
		return CommandStartWork, nil
	case CommandStartRest:
		return CommandStartRest, nil
	case CommandOpenSettings:
		return CommandOpenSettings, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCommand, value)
}
