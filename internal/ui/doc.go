// Package ui provides the terminal user interface for tempwatch.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program that renders the state held in
// state.Store. It is a pure presentation layer: it never opens the
// temperature log itself. Parsing belongs to templog, scheduling to
// refresh; the UI reads snapshots and forwards user actions.
//
// # Package Structure
//
// The package is organized into focused modules:
//
//   - app.go: the root Model, message routing, and the main Run function
//   - display.go: the temperature panel (block digits on the user's color)
//   - header.go / footer.go: the status bar and the key hint bar
//   - picker.go: file selection modal built on bubbles/filepicker
//   - prompts.go: font size and background color modals on bubbles/textinput
//   - help.go: keyboard shortcut overlay derived from the keymap
//   - keys.go: all key bindings in one keyMap
//   - bigtext.go: the block glyph font and its scaling rules
//   - colors.go: user color strings resolved to lipgloss colors
//   - theme.go / style_helpers.go: chrome palette and background-safe styling
//
// # Screen Layout
//
//	┌──────────────────────────────────────────────┐
//	│ tempwatch  file ~/temps/kit…hen.txt  every 3m │  header
//	│                                               │
//	│                ███  ███   █  ███              │
//	│                  █ █ █ █  █  █ █              │  display panel
//	│                ███ █ █ ██ █  █ █              │  (user bg color,
//	│                █   █ █  █ █  █ █              │  font size scaled)
//	│                ███  ███  ███ ███              │
//	│                                               │
//	│           2024-10-20 12:00:00                 │
//	│                                               │
//	│ o:Open log file  r:Refresh now  f:Font size … │  footer
//	└──────────────────────────────────────────────┘
//
// # Event Flow
//
// Two recurring message streams drive the Model:
//
//  1. tickMsg, re-issued every DefaultUIInterval, fetches a fresh store
//     snapshot so scheduler results appear without user input.
//  2. snapshotMsg carries the fetched snapshot into the Model.
//
// User actions mutate the store directly (SetPath, SetFontSize,
// SetBgColor) or kick the scheduler (manual refresh, file selection);
// the next snapshot reflects them. Closing a modal also fetches a
// snapshot immediately so the change shows on the same frame.
//
// # Modals
//
// One Modal may be active at a time and owns the keyboard while open.
// Esc cancels, ctrl+c still quits the program. The prompts keep rejected
// values on screen with an inline error rather than closing.
//
// # Display Scaling
//
// The font size setting maps to a block glyph scale (size 10 is two
// terminal cells per glyph cell). When the value would not fit the
// window, the scale shrinks frame by frame until it does, never below 1.
//
// # External Dependencies
//
//   - state.Store: snapshots in, path and style mutations out
//   - refresh.Scheduler: Kick() for out-of-band refreshes
//
// # Key Bindings
//
//   - o: Open the file picker
//   - r: Refresh now
//   - f: Font size prompt
//   - b: Background color prompt
//   - h or ?: Toggle help
//   - esc: Cancel an open modal
//   - q, e or Ctrl+C: Exit
package ui
