package timekeeper

import (
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"resttime/internal/core/model"
)

// Haptics plays vibration patterns.
type Haptics interface {
	Vibrate(pattern Vibration)
}

// ConfigStore persists the interval configuration.
type ConfigStore interface {
	Save(config model.IntervalConfig) error
}

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
	Clock        clockwork.Clock
}

// TimeKeeper drives a Machine from a ticker and serializes user commands
// against it.
type TimeKeeper struct {
	mu             sync.Mutex
	machine        *Machine
	options        Config
	haptics        Haptics
	store          ConfigStore
	onOpenSettings func()
	events         []chan Event
	stopCh         chan struct{}
	running        bool
	lastMinute     time.Time
}

// New creates a TimeKeeper with the provided configuration.
func New(config model.IntervalConfig, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = clockwork.NewRealClock()
	}

	return &TimeKeeper{
		machine: NewMachine(config),
		options: options,
	}
}

// SetHaptics injects the vibration port.
func (keeper *TimeKeeper) SetHaptics(haptics Haptics) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.haptics = haptics
}

// SetStore injects the store written when the settings menu closes.
func (keeper *TimeKeeper) SetStore(store ConfigStore) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.store = store
}

// SetSettingsHandler registers the callback that shows the settings menu
// when CommandOpenSettings is handled.
func (keeper *TimeKeeper) SetSettingsHandler(handler func()) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.onOpenSettings = handler
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	keeper.events = append(keeper.events, ch)
	keeper.mu.Unlock()
	return ch
}

// Snapshot returns the current machine state.
func (keeper *TimeKeeper) Snapshot() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.machine.Snapshot()
}

// Start launches the ticking loop.
func (keeper *TimeKeeper) Start() {
	keeper.mu.Lock()
	if keeper.running {
		keeper.mu.Unlock()
		return
	}
	keeper.running = true
	keeper.stopCh = make(chan struct{})
	stopCh := keeper.stopCh
	keeper.lastMinute = keeper.options.Clock.Now().Truncate(time.Minute)
	snapshot := keeper.machine.Snapshot()
	keeper.mu.Unlock()

	keeper.emit(Event{
		Type:     EventStateChange,
		Snapshot: snapshot,
		At:       keeper.options.Clock.Now(),
	})

	ticker := keeper.options.Clock.NewTicker(keeper.options.TickInterval)
	go keeper.run(ticker, stopCh)
}

// Stop terminates the ticking loop and closes observers.
func (keeper *TimeKeeper) Stop() {
	keeper.mu.Lock()
	if !keeper.running {
		keeper.mu.Unlock()
		return
	}
	close(keeper.stopCh)
	keeper.running = false
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// TogglePause pauses a running countdown or resumes a paused one.
func (keeper *TimeKeeper) TogglePause() {
	keeper.apply(func(machine *Machine) Outcome {
		return machine.TogglePause()
	})
}

// ForceStart starts the given phase from its full duration.
func (keeper *TimeKeeper) ForceStart(phase model.Phase) {
	keeper.apply(func(machine *Machine) Outcome {
		return machine.ForceStart(phase)
	})
}

// OpenSettings marks the start of a settings session and returns the
// configuration to edit.
func (keeper *TimeKeeper) OpenSettings() model.IntervalConfig {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.machine.OpenSettings()
}

// CloseSettings applies the edited configuration and persists it.
func (keeper *TimeKeeper) CloseSettings(config model.IntervalConfig) error {
	keeper.mu.Lock()
	store := keeper.store
	keeper.mu.Unlock()

	var outcome Outcome
	keeper.apply(func(machine *Machine) Outcome {
		outcome = machine.ApplyConfig(config)
		return outcome
	})
	logrus.WithFields(logrus.Fields{
		"work_interval": config.WorkSeconds,
		"rest_interval": config.RestSeconds,
		"reset":         outcome.Reset,
	}).Debug("settings closed")

	if store == nil {
		return nil
	}
	if err := store.Save(config.Normalize()); err != nil {
		return fmt.Errorf("persist settings: %w", err)
	}
	return nil
}

// Reload applies a configuration that changed outside the settings menu,
// such as an edit to the settings file. Nothing is persisted.
func (keeper *TimeKeeper) Reload(config model.IntervalConfig) {
	keeper.apply(func(machine *Machine) Outcome {
		return machine.Reload(config)
	})
}

// HandleCommand dispatches a discrete user command.
func (keeper *TimeKeeper) HandleCommand(command Command) error {
	switch command {
	case CommandTogglePause:
		keeper.TogglePause()
	case CommandStartWork:
		keeper.ForceStart(model.PhaseWork)
	case CommandStartRest:
		keeper.ForceStart(model.PhaseRest)
	case CommandOpenSettings:
		keeper.mu.Lock()
		handler := keeper.onOpenSettings
		keeper.mu.Unlock()
		if handler != nil {
			handler()
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, string(command))
	}
	return nil
}

func (keeper *TimeKeeper) run(ticker clockwork.Ticker, stopCh <-chan struct{}) {
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-ticker.Chan():
			keeper.tick(tickTime)
		}
	}
}

func (keeper *TimeKeeper) tick(tickTime time.Time) {
	keeper.mu.Lock()
	if !keeper.running {
		keeper.mu.Unlock()
		return
	}

	minute := tickTime.Truncate(time.Minute)
	if !minute.Equal(keeper.lastMinute) {
		keeper.lastMinute = minute
		keeper.emitLocked(Event{
			Type:     EventClock,
			Snapshot: keeper.machine.Snapshot(),
			At:       tickTime,
		})
	}

	if keeper.machine.Snapshot().Paused {
		keeper.mu.Unlock()
		return
	}

	outcome := keeper.machine.Tick()
	snapshot := keeper.machine.Snapshot()
	eventType := EventTick
	if outcome.PhaseChanged {
		eventType = EventStateChange
	}
	keeper.emitLocked(Event{
		Type:       eventType,
		Snapshot:   snapshot,
		Vibrations: outcome.Vibrations,
		At:         tickTime,
	})
	haptics := keeper.haptics
	keeper.mu.Unlock()

	if outcome.PhaseChanged {
		logrus.WithField("phase", snapshot.Phase).Debug("interval finished")
	}
	vibrate(haptics, outcome.Vibrations)
}

func (keeper *TimeKeeper) apply(transition func(machine *Machine) Outcome) {
	keeper.mu.Lock()
	outcome := transition(keeper.machine)
	keeper.emitLocked(Event{
		Type:       EventStateChange,
		Snapshot:   keeper.machine.Snapshot(),
		Vibrations: outcome.Vibrations,
		At:         keeper.options.Clock.Now(),
	})
	haptics := keeper.haptics
	keeper.mu.Unlock()

	vibrate(haptics, outcome.Vibrations)
}

func vibrate(haptics Haptics, patterns []Vibration) {
	if haptics == nil {
		return
	}
	for _, pattern := range patterns {
		haptics.Vibrate(pattern)
	}
}

func (keeper *TimeKeeper) emit(event Event) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.emitLocked(event)
}

func (keeper *TimeKeeper) emitLocked(event Event) {
	events := append([]chan Event(nil), keeper.events...)
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
