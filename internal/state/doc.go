// Package state provides thread-safe shared state for tempwatch.
//
// # Overview
//
// The Store is the single coordination point between the refresh loop,
// which produces readings, and the UI, which renders snapshots of them.
// It also holds the two pieces of state the user edits directly: the
// selected log file and the display style.
//
// # Architecture
//
//	Producer (refresh loop):        Consumer (UI):
//	┌──────────────────┐           ┌──────────────────┐
//	│ templog.Latest() │           │                  │
//	│       ↓          │           │ store.Snapshot() │
//	│ store.Record()   │──────────→│       ↓          │
//	│       ↓          │  (mutex)  │   render frame   │
//	│   wait, repeat   │           │                  │
//	└──────────────────┘           └──────────────────┘
//
// The UI also writes, on user action only: SetPath when a file is picked,
// SetFontSize and SetBgColor from the style prompts.
//
// # Record Semantics
//
// Record replaces the reading wholesale. On a failed tick the previous
// reading is dropped, not kept: the display falls back to "--" instead of
// showing a value the file may no longer hold. The failure itself stays
// visible through LastError, Notice, and the ConsecutiveFailures counter.
//
// A tick that had nothing to read (no file selected yet) records only its
// notice and touches nothing else.
//
// # Style Semantics
//
// SetFontSize rejects sizes below 1 and SetBgColor rejects blank strings;
// in both cases the stored value is left unchanged and the caller gets an
// error to show inline. Style never influences parsing or scheduling.
//
// # Concurrency Model
//
// A sync.RWMutex guards a single Snapshot value. Writers are the refresh
// goroutine (Record) and the UI goroutine (SetPath, style setters); readers
// take value copies via Snapshot, with the last error re-wrapped so no
// caller shares the stored instance. The lock is held only while copying,
// never during file I/O or rendering.
package state
