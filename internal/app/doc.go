// Package app provides the orchestration layer for tempwatch.
//
// # Overview
//
// This package wires together configuration, the refresh scheduler, state
// management, and the UI to create the complete tempwatch TUI experience.
// It serves as the composition root where all dependencies are initialized
// and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load configuration from ~/.config/tempwatch/config.toml
//  2. Apply command-line overrides (log file, interval, debug log)
//  3. Open the optional diagnostic log
//  4. Create the shared state.Store seeded with the startup path and style
//  5. Launch the refresh scheduler goroutine for continuous updates
//  6. Start the TUI and block until user exits or context cancels
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()    Read config, merge flag overrides
//	       ├─────> logging.Open()   Diagnostic log (or Nop)
//	       ├─────> state.New()      Shared state container
//	       ├─────> refresh.New()    Scheduler, first tick at Start
//	       └─────> ui.Run()         Start TUI (blocks)
//
//	Refresh Loop:
//	┌─────────────────────────────────────────┐
//	│ refresh.Scheduler goroutine             │
//	│  ├─> templog.Latest(path)               │
//	│  └─> store.Record()  (atomic)           │
//	│      └─> UI reads store.Snapshot()      │
//	└─────────────────────────────────────────┘
//
// # Error Handling
//
// The app package distinguishes between fatal and recoverable errors:
//
// Fatal errors (returned from Run):
//   - Configuration file present but invalid
//   - Diagnostic log destination that cannot be opened
//
// Recoverable errors (recorded in the store, refreshing continues):
//   - Missing, unreadable, empty, or malformed temperature logs
//   - Non-numeric temperature fields
//
// A bad log file never stops the program; the next tick simply tries again,
// and picking a different file retries immediately.
//
// # Configuration
//
// The Options struct carries the command-line surface:
//
//   - ConfigPath: path to config.toml (default: ~/.config/tempwatch/config.toml)
//   - LogFile: temperature log to watch (positional argument)
//   - Interval: refresh cadence (default: 3 minutes)
//   - DebugLog: diagnostic log destination (default: disabled)
//
// Anything left at its zero value defers to the config file, and the config
// file's own gaps defer to built-in defaults.
//
// # Design Rationale
//
// This package intentionally keeps orchestration logic minimal and focused.
// Business logic lives in domain packages (templog, refresh, state, ui).
// The app package simply connects these pieces with sensible defaults for
// the single-file, read-only monitoring use case.
package app
