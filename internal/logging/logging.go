// Package logging sets up the optional diagnostic log.
// While the TUI owns the terminal nothing may print to stdout or stderr, so
// diagnostics go to a file as JSON lines, or nowhere at all.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Open returns a logger appending JSON lines to the file at path, creating
// parent directories as needed. An empty path disables logging: the
// returned logger discards everything. The returned closer releases the
// file and is safe to call in every case.
func Open(path string) (zerolog.Logger, func(), error) {
	if path == "" {
		return zerolog.Nop(), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("open log file: %w", err)
	}

	logger := zerolog.New(file).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
	return logger, func() { _ = file.Close() }, nil
}
