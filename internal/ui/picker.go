package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// pickerModal lets the user browse for a temperature log. Only .txt and
// .log files are selectable; directories stay navigable.
type pickerModal struct {
	picker filepicker.Model
	onPick func(path string)
	errMsg string
}

// newPickerModal builds the modal rooted at dir and returns it with the
// command that reads the first directory listing.
func newPickerModal(dir string, theme Theme, windowHeight int, onPick func(string)) (*pickerModal, tea.Cmd) {
	styles := theme.Styles()

	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.AllowedTypes = []string{".txt", ".log"}
	fp.AutoHeight = false
	fp.Height = pickerRows(windowHeight)
	// Esc must close the modal, not walk up a directory.
	fp.KeyMap.Back = key.NewBinding(
		key.WithKeys("h", "backspace", "left"),
		key.WithHelp("h", "back"),
	)
	fp.Styles.Cursor = styles.AccentText
	fp.Styles.Selected = styles.AccentText.Bold(true)
	fp.Styles.Directory = styles.AccentText
	fp.Styles.File = styles.Text
	fp.Styles.DisabledFile = styles.FaintText
	fp.Styles.DisabledSelected = styles.FaintText

	p := &pickerModal{picker: fp, onPick: onPick}
	return p, fp.Init()
}

// Update implements Modal.
func (p *pickerModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Escape) {
			return p, nil, true
		}
	case tea.WindowSizeMsg:
		p.picker.Height = pickerRows(msg.Height)
	}

	var cmd tea.Cmd
	p.picker, cmd = p.picker.Update(msg)

	if didSelect, path := p.picker.DidSelectFile(msg); didSelect {
		if p.onPick != nil {
			p.onPick(path)
		}
		return p, cmd, true
	}
	if didSelect, path := p.picker.DidSelectDisabledFile(msg); didSelect {
		p.errMsg = fmt.Sprintf("%s is not a .txt or .log file", filepath.Base(path))
	}

	return p, cmd, false
}

// View implements Modal.
func (p *pickerModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Select log file"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", PickerModalWidth-6)))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(truncateMiddle(p.picker.CurrentDirectory, PickerModalWidth-6)))
	b.WriteString("\n\n")
	b.WriteString(p.picker.View())
	b.WriteString("\n")
	if p.errMsg != "" {
		b.WriteString(styles.DangerText.Render(p.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(styles.FaintText.Render("Enter: Select  •  h/l: Parent/enter dir  •  Esc: Cancel"))

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		styles.Modal.Width(PickerModalWidth).Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

// pickerRows bounds the directory listing so the modal and its chrome fit
// the window.
func pickerRows(windowHeight int) int {
	rows := windowHeight - 12
	if rows < 3 {
		rows = 3
	}
	if rows > PickerListRows {
		rows = PickerListRows
	}
	return rows
}
