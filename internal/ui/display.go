package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tempwatch/internal/state"
)

// renderDisplay paints the temperature panel: the current value as block
// digits on the user's background color, with the reading's own timestamp
// and any notice underneath. height is the panel's share of the window.
func (m Model) renderDisplay(height int) string {
	style := m.snapshot.Style
	bg := resolveColor(style.BgColor)
	fg := contrastText(style.BgColor)
	text := lipgloss.NewStyle().Foreground(fg).Background(bg)

	value := m.snapshot.DisplayValue()
	scale := fitScale(value, glyphScale(style.FontSize), maxInt(m.width-4, 1), maxInt(height-4, glyphRows))

	lines := []string{text.Render(renderBigText(value, scale))}
	if stamp := readingStamp(m.snapshot); stamp != "" {
		lines = append(lines, "", text.Faint(true).Render(stamp))
	}
	if m.snapshot.Notice != "" {
		notice := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.Warning)).
			Background(bg).
			Bold(true)
		lines = append(lines, "", notice.Render(m.snapshot.Notice))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.Place(
		m.width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceBackground(bg),
	)
}

// readingStamp is the date and time carried on the reading's own log line,
// or "" when there is no reading to annotate.
func readingStamp(snap state.Snapshot) string {
	if !snap.HasReading {
		return ""
	}
	return strings.TrimSpace(snap.Reading.Date + " " + snap.Reading.Time)
}
