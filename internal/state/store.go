package state

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"tempwatch/internal/templog"
)

// Style holds the user-adjustable presentation settings for the temperature
// display. It never affects parsing or scheduling.
type Style struct {
	FontSize int
	BgColor  string
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Path                string
	Reading             templog.Reading
	HasReading          bool
	Notice              string
	LastError           error
	LastChecked         time.Time
	ConsecutiveFailures int
	Ticks               int
	Style               Style
}

// DisplayValue renders the reading for the main panel: the value with two
// decimals, or "--" when no reading is held.
func (s Snapshot) DisplayValue() string {
	if !s.HasReading {
		return "--"
	}
	return fmt.Sprintf("%.2f", s.Reading.Value)
}

// Failing reports whether refreshes have failed repeatedly.
func (s Snapshot) Failing() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent access between the refresh loop and the UI.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// New returns a Store holding the startup path and style.
func New(path string, style Style) *Store {
	return &Store{snapshot: Snapshot{Path: path, Style: style}}
}

// SetPath selects a new log file. The current reading and error state are
// dropped so the display never pairs the new file with a stale value.
func (s *Store) SetPath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Path = path
	s.snapshot.Reading = templog.Reading{}
	s.snapshot.HasReading = false
	s.snapshot.Notice = ""
	s.snapshot.LastError = nil
	s.snapshot.LastChecked = time.Time{}
	s.snapshot.ConsecutiveFailures = 0
	s.snapshot.Ticks = 0
}

// Path returns the currently selected log file, or "" when none is set.
func (s *Store) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Path
}

// Record stores the result of a refresh tick. A non-nil err drops the
// current reading: after a failure the display falls back to "--" rather
// than keep showing a value the file may no longer hold. A nil reading with
// a nil err records only the notice (a tick that had nothing to read).
// Every call counts one tick against the current path.
func (s *Store) Record(reading *templog.Reading, notice string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Ticks++
	s.snapshot.Notice = notice
	if err != nil {
		s.snapshot.Reading = templog.Reading{}
		s.snapshot.HasReading = false
		s.snapshot.LastError = err
		s.snapshot.LastChecked = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}
	if reading == nil {
		return
	}
	s.snapshot.Reading = *reading
	s.snapshot.HasReading = true
	s.snapshot.LastError = nil
	s.snapshot.LastChecked = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// SetFontSize applies a new display font size. Sizes below 1 are rejected
// and the stored size is left unchanged.
func (s *Store) SetFontSize(size int) error {
	if size < 1 {
		return fmt.Errorf("font size must be at least 1")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Style.FontSize = size
	return nil
}

// SetBgColor applies a new display background color. Any non-blank string
// is accepted; names and hex values are resolved at render time.
func (s *Store) SetBgColor(color string) error {
	if strings.TrimSpace(color) == "" {
		return fmt.Errorf("background color cannot be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Style.BgColor = color
	return nil
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
