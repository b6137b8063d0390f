package model

import "time"

// Phase is one of the two timer modes.
type Phase string

const (
	PhaseWork Phase = "work"
	PhaseRest Phase = "rest"
)

// String returns the phase name.
func (phase Phase) String() string {
	return string(phase)
}

// Next returns the phase that follows this one.
func (phase Phase) Next() Phase {
	if phase == PhaseRest {
		return PhaseWork
	}
	return PhaseRest
}

const (
	DefaultWorkSeconds      = 1500
	DefaultRestSeconds      = 120
	DefaultWarningVibration = false
	DefaultOverrun          = false

	MaxWorkSeconds  = 3600
	WorkStepSeconds = 300
	MaxRestSeconds  = 600
	RestStepSeconds = 60

	// WarningThresholdSeconds is how many seconds before the end of a work
	// interval the warning vibration fires.
	WarningThresholdSeconds = 9
)

// IntervalConfig contains the user-editable interval settings.
type IntervalConfig struct {
	WorkSeconds      int
	RestSeconds      int
	WarningVibration bool
	Overrun          bool
}

// DefaultIntervalConfig returns the first-run configuration.
func DefaultIntervalConfig() IntervalConfig {
	return IntervalConfig{
		WorkSeconds:      DefaultWorkSeconds,
		RestSeconds:      DefaultRestSeconds,
		WarningVibration: DefaultWarningVibration,
		Overrun:          DefaultOverrun,
	}
}

// Normalize replaces non-positive durations with their defaults.
func (config IntervalConfig) Normalize() IntervalConfig {
	if config.WorkSeconds <= 0 {
		config.WorkSeconds = DefaultWorkSeconds
	}
	if config.RestSeconds <= 0 {
		config.RestSeconds = DefaultRestSeconds
	}
	return config
}

// Seconds returns the configured length of the given phase in seconds.
func (config IntervalConfig) Seconds(phase Phase) int {
	if phase == PhaseRest {
		return config.RestSeconds
	}
	return config.WorkSeconds
}

// Duration returns the configured length of the given phase.
func (config IntervalConfig) Duration(phase Phase) time.Duration {
	return time.Duration(config.Seconds(phase)) * time.Second
}

// DurationsEqual reports whether both interval lengths match.
func (config IntervalConfig) DurationsEqual(other IntervalConfig) bool {
	return config.WorkSeconds == other.WorkSeconds && config.RestSeconds == other.RestSeconds
}

// NextWorkSeconds advances a work interval by one step, wrapping to the
// first step once the maximum has been reached.
func NextWorkSeconds(seconds int) int {
	return cycle(seconds, WorkStepSeconds, MaxWorkSeconds)
}

// NextRestSeconds advances a rest interval by one step, wrapping to the
// first step once the maximum has been reached.
func NextRestSeconds(seconds int) int {
	return cycle(seconds, RestStepSeconds, MaxRestSeconds)
}

func cycle(value, step, maximum int) int {
	if value >= maximum {
		return step
	}
	return value + step
}
