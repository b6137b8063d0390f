package platform

import (
	"io"
	"sync"
	"time"

	"resttime/internal/core/timekeeper"
)

const doublePulseGap = 200 * time.Millisecond

// BellHaptics renders vibration patterns as terminal bells.
type BellHaptics struct {
	mu  sync.Mutex
	out io.Writer
	gap time.Duration
}

// NewBellHaptics writes bells to out.
func NewBellHaptics(out io.Writer) *BellHaptics {
	return &BellHaptics{out: out, gap: doublePulseGap}
}

// Vibrate rings once for a short pulse and twice for a double pulse.
func (haptics *BellHaptics) Vibrate(pattern timekeeper.Vibration) {
	haptics.mu.Lock()
	defer haptics.mu.Unlock()

	_, _ = haptics.out.Write([]byte{'\a'})
	if pattern != timekeeper.VibeDouble {
		return
	}
	if haptics.gap > 0 {
		time.Sleep(haptics.gap)
	}
	_, _ = haptics.out.Write([]byte{'\a'})
}
