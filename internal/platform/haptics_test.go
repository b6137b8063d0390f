package platform

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"resttime/internal/core/timekeeper"
)

func TestBellHaptics(t *testing.T) {
	var out bytes.Buffer
	haptics := NewBellHaptics(&out)
	haptics.gap = 0

	haptics.Vibrate(timekeeper.VibeShort)
	assert.Equal(t, "\a", out.String())

	out.Reset()
	haptics.Vibrate(timekeeper.VibeDouble)
	assert.Equal(t, "\a\a", out.String())
}
