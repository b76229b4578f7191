package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tempwatch/internal/state"
)

func testStore() *state.Store {
	return state.New("", state.Style{FontSize: 10, BgColor: "white"})
}

func enterKey() tea.KeyMsg  { return tea.KeyMsg{Type: tea.KeyEnter} }
func escapeKey() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEscape} }

func TestParseFontSize(t *testing.T) {
	if got, err := parseFontSize(" 14 "); err != nil || got != 14 {
		t.Fatalf("parseFontSize(14) = %d, %v", got, err)
	}
	for _, bad := range []string{"", "abc", "1.5", "10pt"} {
		if _, err := parseFontSize(bad); err == nil {
			t.Fatalf("parseFontSize(%q) returned nil error", bad)
		}
	}
}

func TestPromptModal_EscCancelsWithoutApplying(t *testing.T) {
	applied := false
	p := newPromptModal("Font size", "", "10", func(string) error {
		applied = true
		return nil
	})

	_, _, done := p.Update(escapeKey(), DefaultKeyMap())
	if !done {
		t.Fatalf("esc did not close the prompt")
	}
	if applied {
		t.Fatalf("esc applied the value")
	}
}

func TestPromptModal_EnterAppliesValue(t *testing.T) {
	var got string
	p := newPromptModal("Background color", "", "white", func(raw string) error {
		got = raw
		return nil
	})
	p.input.SetValue("light blue")

	_, _, done := p.Update(enterKey(), DefaultKeyMap())
	if !done {
		t.Fatalf("enter did not close the prompt after a valid value")
	}
	if got != "light blue" {
		t.Fatalf("applied value = %q, want light blue", got)
	}
}

func TestPromptModal_RejectedValueStaysOpen(t *testing.T) {
	p := newPromptModal("Font size", "", "10", func(string) error {
		return errors.New("font size must be at least 1")
	})

	modal, _, done := p.Update(enterKey(), DefaultKeyMap())
	if done {
		t.Fatalf("prompt closed despite the rejected value")
	}
	pm := modal.(*promptModal)
	if pm.errMsg != "font size must be at least 1" {
		t.Fatalf("errMsg = %q, want the rejection", pm.errMsg)
	}

	// Editing clears the inline error and lands in the input.
	modal, _, _ = pm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("5")}, DefaultKeyMap())
	pm = modal.(*promptModal)
	if pm.errMsg != "" {
		t.Fatalf("errMsg = %q after typing, want cleared", pm.errMsg)
	}
	if got := pm.input.Value(); got != "105" {
		t.Fatalf("input = %q after typing, want 105", got)
	}
}

func TestFontSizePrompt_RejectsNonPositiveSizes(t *testing.T) {
	store := testStore()

	for _, raw := range []string{"0", "-3", "abc", ""} {
		p := fontSizePrompt(store, 10)
		p.input.SetValue(raw)

		modal, _, done := p.Update(enterKey(), DefaultKeyMap())
		if done {
			t.Fatalf("prompt closed for input %q", raw)
		}
		if modal.(*promptModal).errMsg == "" {
			t.Fatalf("no inline error for input %q", raw)
		}
		if got := store.Snapshot().Style.FontSize; got != 10 {
			t.Fatalf("stored font size changed to %d for input %q", got, raw)
		}
	}
}

func TestFontSizePrompt_AppliesValidSize(t *testing.T) {
	store := testStore()

	p := fontSizePrompt(store, 10)
	p.input.SetValue("15")
	if _, _, done := p.Update(enterKey(), DefaultKeyMap()); !done {
		t.Fatalf("prompt did not close after a valid size")
	}
	if got := store.Snapshot().Style.FontSize; got != 15 {
		t.Fatalf("stored font size = %d, want 15", got)
	}
}

func TestBgColorPrompt_RejectsBlankKeepsColor(t *testing.T) {
	store := testStore()

	p := bgColorPrompt(store, "white")
	p.input.SetValue("   ")
	modal, _, done := p.Update(enterKey(), DefaultKeyMap())
	if done {
		t.Fatalf("prompt closed for a blank color")
	}
	if modal.(*promptModal).errMsg == "" {
		t.Fatalf("no inline error for a blank color")
	}
	if got := store.Snapshot().Style.BgColor; got != "white" {
		t.Fatalf("stored color = %q, want white", got)
	}
}

func TestBgColorPrompt_AcceptsAnyNonBlankString(t *testing.T) {
	store := testStore()

	p := bgColorPrompt(store, "white")
	p.input.SetValue("notacolor")
	if _, _, done := p.Update(enterKey(), DefaultKeyMap()); !done {
		t.Fatalf("prompt did not close for a non-blank color")
	}
	if got := store.Snapshot().Style.BgColor; got != "notacolor" {
		t.Fatalf("stored color = %q, want notacolor", got)
	}
}
