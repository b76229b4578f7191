package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status bar: app name, selected file, refresh
// cadence, last check time, and a badge when refreshes keep failing.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(lipgloss.Color(m.theme.Surface))
	compact := m.width < LayoutCompactWidth

	var parts []string

	// Logo
	parts = append(parts, bg.Render("tempwatch", styles.Logo))

	// Selected file
	if m.snapshot.Path == "" {
		parts = append(parts, bg.Render("no file selected", styles.WarningText))
	} else {
		limit := 48
		if compact {
			limit = 24
		}
		parts = append(parts,
			bg.Render("file", styles.FaintText)+bg.Space()+
				bg.Render(truncateMiddle(m.snapshot.Path, limit), styles.MutedText))
	}

	if !compact {
		// Refresh cadence
		parts = append(parts,
			bg.Render("every", styles.FaintText)+bg.Space()+
				bg.Render(humanizeDuration(m.interval), styles.MutedText))

		// Last parse attempt
		if checked := formatChecked(m.snapshot.LastChecked, time.Now()); checked != "" {
			parts = append(parts,
				bg.Render("checked", styles.FaintText)+bg.Space()+
					bg.Render(checked, styles.MutedText))
		}
	}

	// Repeated-failure badge
	if m.snapshot.Failing() {
		parts = append(parts, bg.Render("DEGRADED", styles.DangerText.Bold(true)))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// formatChecked formats the last parse attempt's wall time with a relative
// hint, e.g. "12:00:03 (2m ago)".
func formatChecked(at, now time.Time) string {
	if at.IsZero() {
		return ""
	}
	stamp := at.Format("15:04:05")
	since := now.Sub(at)
	if since < 2*time.Second {
		return stamp + " (now)"
	}
	return stamp + " (" + humanizeDuration(since) + " ago)"
}
