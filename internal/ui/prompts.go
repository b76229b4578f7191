package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tempwatch/internal/state"
)

// promptModal asks for one line of input over the display. Enter applies,
// Esc cancels, and a rejected value keeps the prompt open with the error
// shown inline.
type promptModal struct {
	title  string
	hint   string
	input  textinput.Model
	apply  func(raw string) error
	errMsg string
}

func newPromptModal(title, hint, current string, apply func(string) error) *promptModal {
	ti := textinput.New()
	ti.CharLimit = 40
	ti.Width = 24
	ti.SetValue(current)
	ti.Focus()

	return &promptModal{title: title, hint: hint, input: ti, apply: apply}
}

// fontSizePrompt builds the font size prompt bound to the store, prefilled
// with the current size.
func fontSizePrompt(store *state.Store, current int) *promptModal {
	return newPromptModal(
		"Font size",
		"Digit height in rows, 1 or more.",
		strconv.Itoa(current),
		func(raw string) error {
			size, err := parseFontSize(raw)
			if err != nil {
				return err
			}
			return store.SetFontSize(size)
		},
	)
}

// bgColorPrompt builds the background color prompt bound to the store,
// prefilled with the current color.
func bgColorPrompt(store *state.Store, current string) *promptModal {
	return newPromptModal(
		"Background color",
		"A name like beige, or a hex value like #3366ff.",
		current,
		store.SetBgColor,
	)
}

// parseFontSize interprets the font size prompt's text. The store enforces
// the minimum; this only rejects text that is not a whole number.
func parseFontSize(raw string) (int, error) {
	size, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("font size must be a whole number")
	}
	return size, nil
}

// Update implements Modal.
func (p *promptModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.Escape):
			return p, nil, true

		case key.Matches(keyMsg, keys.Confirm):
			if err := p.apply(p.input.Value()); err != nil {
				p.errMsg = err.Error()
				return p, nil, false
			}
			return p, nil, true
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		// Editing resumes after a rejected value.
		p.errMsg = ""
	}
	return p, cmd, false
}

// View implements Modal.
func (p *promptModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(p.title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", ModalWidth-6)))
	b.WriteString("\n\n")
	b.WriteString(p.input.View())
	b.WriteString("\n\n")
	if p.errMsg != "" {
		b.WriteString(styles.DangerText.Render(p.errMsg))
		b.WriteString("\n\n")
	}
	if p.hint != "" {
		b.WriteString(styles.MutedText.Render(p.hint))
		b.WriteString("\n")
	}
	b.WriteString(styles.FaintText.Render("Enter: Apply  •  Esc: Cancel"))

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		styles.Modal.Width(ModalWidth).Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
