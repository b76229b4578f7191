package refresh

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"tempwatch/internal/state"
	"tempwatch/internal/templog"
)

// DefaultInterval is how often the log is re-read when no interval is
// configured.
const DefaultInterval = 3 * time.Minute

const noFileNotice = "no file selected"

// Outcome is what a single tick produced: a fresh reading, or an error with
// a user-facing notice, or just a notice when there was nothing to read.
type Outcome struct {
	Reading *templog.Reading
	Notice  string
	Err     error
}

// TickFunc computes the outcome of one refresh of the given path. It must
// be a pure function of the path and the file behind it; the Scheduler owns
// all timing and retry behavior.
type TickFunc func(path string) Outcome

// ParseTick is the production TickFunc. It reads the newest entry of the
// file at path and maps parse failures to their user-facing notices.
func ParseTick(path string) Outcome {
	if path == "" {
		return Outcome{Notice: noFileNotice}
	}
	reading, err := templog.Latest(path)
	if err != nil {
		notice := "failed to read temperature data"
		var failure *templog.Failure
		if errors.As(err, &failure) {
			notice = failure.Notice()
		}
		return Outcome{Notice: notice, Err: err}
	}
	return Outcome{Reading: &reading}
}

// Scheduler re-reads the selected log on a fixed cadence and records each
// outcome in the store. The timer is re-armed after every timer-driven
// tick, whatever the tick produced; only context cancellation stops the
// loop.
type Scheduler struct {
	store    *state.Store
	tick     TickFunc
	interval time.Duration
	kicks    chan struct{}
	log      zerolog.Logger
}

// New returns a Scheduler that runs tick against store's current path every
// interval. A non-positive interval falls back to DefaultInterval; a nil
// tick falls back to ParseTick.
func New(store *state.Store, interval time.Duration, tick TickFunc, log zerolog.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if tick == nil {
		tick = ParseTick
	}
	return &Scheduler{
		store:    store,
		tick:     tick,
		interval: interval,
		kicks:    make(chan struct{}, 1),
		log:      log,
	}
}

// Start launches the refresh loop goroutine and returns immediately. The
// first tick runs right away.
func (s *Scheduler) Start(ctx context.Context) {
	go s.run(ctx)
}

// Kick requests an immediate refresh outside the regular cadence, such as
// right after a new file is selected. It never blocks; kicks arriving while
// one is already pending coalesce. The regular timer is not disturbed.
func (s *Scheduler) Kick() {
	select {
	case s.kicks <- struct{}{}:
	default:
	}
}

func (s *Scheduler) run(ctx context.Context) {
	s.runTick()
	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			s.runTick()
			timer.Reset(s.interval)
		case <-s.kicks:
			s.runTick()
		}
	}
}

// runTick performs one refresh. All ticks, timer-driven and kicked, run on
// the loop goroutine, so no tick ever overlaps another.
func (s *Scheduler) runTick() {
	path := s.store.Path()
	outcome := s.tick(path)
	s.store.Record(outcome.Reading, outcome.Notice, outcome.Err)

	switch {
	case outcome.Err != nil:
		s.log.Warn().Str("path", path).Err(outcome.Err).Msg("refresh failed")
	case outcome.Reading != nil:
		s.log.Debug().Str("path", path).Float64("value", outcome.Reading.Value).Msg("refresh ok")
	default:
		s.log.Debug().Msg("refresh skipped")
	}
}
