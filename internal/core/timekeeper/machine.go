package timekeeper

import "resttime/internal/core/model"

// Vibration is a haptic pattern requested by the state machine.
type Vibration string

const (
	VibeShort  Vibration = "short"
	VibeDouble Vibration = "double"
)

// Status is the observable sub-state of the countdown.
type Status string

const (
	StatusReady     Status = "ready"
	StatusPausedMid Status = "paused"
	StatusRunning   Status = "running"
	StatusOverrun   Status = "overrun"
)

// TimerState is the mutable countdown state.
type TimerState struct {
	Remaining int
	Phase     model.Phase
	Paused    bool
}

// Snapshot is an immutable view of the machine.
type Snapshot struct {
	TimerState
	Config model.IntervalConfig
}

// Status classifies the snapshot.
func (snapshot Snapshot) Status() Status {
	if snapshot.Paused {
		if snapshot.Remaining == snapshot.Config.Seconds(snapshot.Phase) {
			return StatusReady
		}
		return StatusPausedMid
	}
	if snapshot.Remaining < 0 && snapshot.Config.Overrun {
		return StatusOverrun
	}
	return StatusRunning
}

// Indicator returns the status line shown above the countdown.
func (snapshot Snapshot) Indicator() string {
	switch snapshot.Status() {
	case StatusReady:
		return "Ready"
	case StatusPausedMid:
		return "Paused"
	case StatusOverrun:
		return "Overrun"
	default:
		return ""
	}
}

// Outcome describes the side effects of a single transition.
type Outcome struct {
	Vibrations   []Vibration
	PhaseChanged bool
	Reset        bool
}

func (outcome *Outcome) vibrate(pattern Vibration) {
	outcome.Vibrations = append(outcome.Vibrations, pattern)
}

// Machine is the work/rest interval state machine. It performs no I/O and
// is not safe for concurrent use; TimeKeeper serializes access to it.
type Machine struct {
	state    TimerState
	config   model.IntervalConfig
	starting model.IntervalConfig
}

// NewMachine returns a machine in the Ready state of a work interval.
func NewMachine(config model.IntervalConfig) *Machine {
	config = config.Normalize()
	return &Machine{
		state: TimerState{
			Remaining: config.WorkSeconds,
			Phase:     model.PhaseWork,
			Paused:    true,
		},
		config:   config,
		starting: config,
	}
}

// Snapshot returns the current state and configuration.
func (machine *Machine) Snapshot() Snapshot {
	return Snapshot{TimerState: machine.state, Config: machine.config}
}

// Tick advances the countdown by one second.
func (machine *Machine) Tick() Outcome {
	var outcome Outcome
	if machine.state.Paused {
		return outcome
	}

	// A countdown left negative by switching overrun off flips on the next tick.
	if machine.state.Remaining <= 0 && !machine.config.Overrun {
		return machine.enter(machine.state.Phase.Next())
	}

	machine.state.Remaining--
	remaining := machine.state.Remaining
	if remaining <= 0 && remaining%60 == 0 {
		outcome.vibrate(VibeShort)
	}
	if machine.config.WarningVibration &&
		machine.state.Phase == model.PhaseWork &&
		remaining == model.WarningThresholdSeconds {
		outcome.vibrate(VibeDouble)
	}
	return outcome
}

// TogglePause flips between paused and running.
func (machine *Machine) TogglePause() Outcome {
	machine.state.Paused = !machine.state.Paused
	return Outcome{}
}

// ForceStart begins the given phase from its full duration and runs it.
func (machine *Machine) ForceStart(phase model.Phase) Outcome {
	return machine.enter(phase)
}

// OpenSettings records the configuration the settings menu started from.
func (machine *Machine) OpenSettings() model.IntervalConfig {
	machine.starting = machine.config
	return machine.config
}

// ApplyConfig installs a configuration edited in the settings menu. When
// either duration differs from the one recorded by OpenSettings the timer
// resets to a paused, full-length work interval.
func (machine *Machine) ApplyConfig(config model.IntervalConfig) Outcome {
	config = config.Normalize()
	changed := !config.DurationsEqual(machine.starting)
	machine.config = config
	machine.starting = config
	if !changed {
		return Outcome{}
	}
	return machine.reset()
}

func (machine *Machine) reset() Outcome {
	machine.state = TimerState{
		Remaining: machine.config.WorkSeconds,
		Phase:     model.PhaseWork,
		Paused:    true,
	}
	return Outcome{Reset: true, PhaseChanged: true}
}

// Reload installs a configuration that changed outside the settings menu.
// Durations are compared against the running configuration, and the
// baseline of an open settings menu is left untouched.
func (machine *Machine) Reload(config model.IntervalConfig) Outcome {
	config = config.Normalize()
	changed := !config.DurationsEqual(machine.config)
	machine.config = config
	if !changed {
		return Outcome{}
	}
	return machine.reset()
}

func (machine *Machine) enter(phase model.Phase) Outcome {
	machine.state.Phase = phase
	machine.state.Remaining = machine.config.Seconds(phase)
	machine.state.Paused = false

	outcome := Outcome{PhaseChanged: true}
	if phase == model.PhaseRest {
		outcome.vibrate(VibeDouble)
	} else {
		outcome.vibrate(VibeShort)
	}
	return outcome
}
