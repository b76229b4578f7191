package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tempwatch/internal/refresh"
	"tempwatch/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Scheduler *refresh.Scheduler
	Interval  time.Duration // refresh cadence, shown in the header
	PollTick  time.Duration // snapshot poll cadence; zero uses DefaultUIInterval
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx      context.Context
	store    *state.Store
	sched    *refresh.Scheduler
	interval time.Duration
	pollTick time.Duration

	// UI state
	theme  Theme
	keys   keyMap
	width  int
	height int
	ready  bool

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Modal overlay: the file picker or one of the prompts. Nil while the
	// display is showing.
	modal Modal

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = DefaultUIInterval
	}

	interval := opts.Interval
	if interval <= 0 {
		interval = refresh.DefaultInterval
	}

	return Model{
		ctx:      ctx,
		store:    opts.Store,
		sched:    opts.Scheduler,
		interval: interval,
		pollTick: pollTick,
		theme:    DefaultTheme(),
		keys:     DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		if m.modal != nil {
			return m.updateModal(msg)
		}
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = time.Now()
		return m, nil
	}

	// Everything else belongs to the active modal; the file picker receives
	// its directory listings this way.
	if m.modal != nil {
		return m.updateModal(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	// Show the file picker or prompt if active
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even over a modal.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Handle help overlay
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	// An open modal owns the keyboard.
	if m.modal != nil {
		return m.updateModal(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.OpenFile):
		modal, cmd := newPickerModal(m.pickerDir(), m.theme, m.height, m.selectFile)
		m.modal = modal
		return m, cmd

	case key.Matches(msg, m.keys.Refresh):
		if m.sched != nil {
			m.sched.Kick()
		}
		if m.store != nil {
			return m, fetchSnapshotCmd(m.store)
		}
		return m, nil

	case key.Matches(msg, m.keys.FontSize):
		m.modal = fontSizePrompt(m.store, m.snapshot.Style.FontSize)
		return m, nil

	case key.Matches(msg, m.keys.BgColor):
		m.modal = bgColorPrompt(m.store, m.snapshot.Style.BgColor)
		return m, nil
	}

	return m, nil
}

// updateModal routes a message to the active modal and clears it once the
// modal reports done.
func (m Model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	modal, cmd, done := m.modal.Update(msg, m.keys)
	m.modal = modal
	if done {
		m.modal = nil
		// Pull a fresh snapshot so a new path or style shows this frame
		// instead of waiting out the poll tick.
		if m.store != nil {
			cmd = tea.Batch(cmd, fetchSnapshotCmd(m.store))
		}
	}
	return m, cmd
}

// selectFile is the picker callback: it points the store at the chosen log
// and asks the scheduler for an immediate out-of-band refresh.
func (m Model) selectFile(path string) {
	if m.store != nil {
		m.store.SetPath(path)
	}
	if m.sched != nil {
		m.sched.Kick()
	}
}

// pickerDir is where the file picker starts browsing: beside the current
// log if one is selected, otherwise the home directory.
func (m Model) pickerDir() string {
	if m.snapshot.Path != "" {
		return filepath.Dir(m.snapshot.Path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Fetch latest snapshot
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}

	// Schedule next tick
	cmds = append(cmds, tickCmd(m.pollTick))

	return m, tea.Batch(cmds...)
}

// renderMain renders the full UI: header, display panel, footer.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderDisplay(m.height - 2))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	if _, err := p.Run(); err != nil {
		// Cancellation from outside (SIGINT/SIGTERM) is a clean shutdown.
		if m.ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	}
	return nil
}
