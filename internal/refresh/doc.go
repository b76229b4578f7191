// Package refresh runs the periodic re-read of the selected temperature log.
//
// # Overview
//
// The Scheduler is the only component that calls the parser. It wakes on a
// fixed cadence (default three minutes), asks the store for the currently
// selected path, hands it to a TickFunc, and records the Outcome back into
// the store. The UI never parses; it only renders snapshots.
//
// # Tick Semantics
//
// A tick is one invocation of the TickFunc. The production TickFunc,
// ParseTick, is a pure function: path in, Outcome out. Three shapes of
// Outcome exist:
//
//   - a Reading (successful parse)
//   - an Err plus a user-facing Notice (the file was missing, unreadable,
//     empty, malformed, or held a non-numeric value)
//   - a Notice alone ("no file selected": the tick had nothing to read)
//
// The loop treats all three identically as far as scheduling goes: the
// timer is re-armed after every timer-driven tick. A run of failures never
// stalls the loop, and a tick with no file selected still leaves the next
// one scheduled.
//
// # Fire-and-Reschedule
//
// The cadence is fire-and-reschedule, not fixed-rate: the timer is re-armed
// after a tick completes, so the interval measures the gap between ticks
// rather than aligning ticks to a wall-clock grid. With file reads taking
// microseconds the difference is cosmetic, but it keeps a slow read from
// ever stacking ticks on top of each other.
//
// # Kicks
//
// Kick requests an immediate out-of-band tick: selecting a new file and the
// manual refresh key both use it. Kicks run on the same loop goroutine as
// timer ticks, never concurrently with them, and do not disturb the regular
// timer. The kick channel holds one pending request; kicks arriving while
// one is pending coalesce into it.
//
// # Shutdown
//
// Start launches the loop goroutine; cancelling the context passed to Start
// is the only way to stop it. There is no pause or interval mutation at
// runtime.
package refresh
