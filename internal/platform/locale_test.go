package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resttime/internal/core/render"
)

func TestClockStyleForLocale(t *testing.T) {
	tests := []struct {
		tag  string
		want render.ClockStyle
	}{
		{tag: "en-US", want: render.Clock12h},
		{tag: "en_US.UTF-8", want: render.Clock12h},
		{tag: "en_au", want: render.Clock12h},
		{tag: "en-GB", want: render.Clock24h},
		{tag: "de_DE.UTF-8", want: render.Clock24h},
		{tag: "zh-Hant-TW", want: render.Clock24h},
		{tag: "fr", want: render.Clock24h},
		{tag: "C", want: render.Clock24h},
		{tag: "", want: render.Clock24h},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, ClockStyleForLocale(tt.tag))
		})
	}
}
