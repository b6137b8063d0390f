package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"resttime/internal/core/render"
)

const faceWidth = 24

var (
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	subtleStyle   = lipgloss.NewStyle().Faint(true)
)

// View renders the face or, while open, the settings menu.
func (m Model) View() string {
	var b strings.Builder
	if m.settings != nil {
		b.WriteString(m.viewSettings())
		b.WriteString("\n")
		b.WriteString(m.help.View(settingsHelp{keys: m.keys}))
	} else {
		b.WriteString(m.viewFace())
		b.WriteString("\n")
		b.WriteString(m.help.View(faceHelp{keys: m.keys}))
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewFace() string {
	style := faceStyle(m.frame.Palette)
	body := strings.Join([]string{
		m.frame.Indicator,
		lipgloss.NewStyle().Bold(true).Render(m.frame.Countdown),
		m.frame.Clock,
	}, "\n")
	return style.Render(body)
}

func (m Model) viewSettings() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Settings"))
	b.WriteString("\n")
	for index, item := range m.settings.Items() {
		line := fmt.Sprintf("%-14s %s", item.Title, subtleStyle.Render(item.Subtitle))
		if index == m.cursor {
			line = selectedStyle.Render(fmt.Sprintf("%-14s %s", item.Title, item.Subtitle))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func faceStyle(palette render.Palette) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(faceWidth).
		Padding(1, 2).
		Foreground(hexColor(palette.Foreground)).
		Background(hexColor(palette.Background))
}

func hexColor(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
