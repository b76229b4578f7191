package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderFooter renders the key hint bar from the keymap's short help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(lipgloss.Color(m.theme.Surface))
	colon := bg.Sep(":")
	sep := bg.Sep("  ")

	bindings := m.keys.ShortHelp()
	segments := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		segments = append(segments,
			bg.Render(h.Key, styles.AccentText)+colon+bg.Render(h.Desc, styles.MutedText))
	}

	return styles.Footer.Width(m.width).Render(strings.Join(segments, sep))
}
