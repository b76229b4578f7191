package templog

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Kind classifies why the latest reading could not be produced.
type Kind int

const (
	NotFound Kind = iota
	IOError
	EmptyFile
	MalformedLine
	InvalidNumber
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not-found"
	case IOError:
		return "io-error"
	case EmptyFile:
		return "empty-file"
	case MalformedLine:
		return "malformed-line"
	case InvalidNumber:
		return "invalid-number"
	}
	return "unknown"
}

// Failure is the error type returned by Latest. Field carries the offending
// text for InvalidNumber; Err carries the underlying error when one exists.
type Failure struct {
	Kind  Kind
	Path  string
	Field string
	Err   error
}

func (f *Failure) Error() string {
	switch f.Kind {
	case NotFound:
		return fmt.Sprintf("%s: file not found", f.Path)
	case IOError:
		return fmt.Sprintf("read %s: %v", f.Path, f.Err)
	case EmptyFile:
		return fmt.Sprintf("%s: file has no lines", f.Path)
	case MalformedLine:
		return fmt.Sprintf("%s: malformed last line", f.Path)
	case InvalidNumber:
		return fmt.Sprintf("%s: invalid temperature value %q", f.Path, f.Field)
	}
	return fmt.Sprintf("%s: unknown failure", f.Path)
}

func (f *Failure) Unwrap() error { return f.Err }

// Notice is the short user-facing form shown in the status line.
func (f *Failure) Notice() string {
	switch f.Kind {
	case NotFound:
		return "file not found"
	case IOError:
		return "file error: " + f.Err.Error()
	case EmptyFile:
		return "no lines in file"
	case MalformedLine:
		return "malformed line in file"
	case InvalidNumber:
		return fmt.Sprintf("invalid temperature value: %s", f.Field)
	}
	return "failed to read temperature data"
}

// Reading is the newest entry in a temperature log. Date and Time are the
// first two fields of the line, kept verbatim.
type Reading struct {
	Date  string
	Time  string
	Value float64
}

// Latest returns the reading recorded on the final line of the file at path.
// A line holds three ';'-separated fields with the temperature last:
//
//	2024-10-20;12:00:00;23.47
//
// Any failure is reported as a *Failure.
func Latest(path string) (Reading, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Reading{}, &Failure{Kind: NotFound, Path: path, Err: err}
		}
		return Reading{}, &Failure{Kind: IOError, Path: path, Err: err}
	}
	defer file.Close()

	// Only the final line matters, so keep one line while scanning forward
	// instead of holding the whole file.
	var last string
	seen := false
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		last = scanner.Text()
		seen = true
	}
	if err := scanner.Err(); err != nil {
		return Reading{}, &Failure{Kind: IOError, Path: path, Err: err}
	}
	if !seen {
		return Reading{}, &Failure{Kind: EmptyFile, Path: path}
	}

	// A blank final line trims to "" and splits into one field, so it
	// reports as malformed like any other short line.
	parts := strings.Split(strings.TrimSpace(last), ";")
	if len(parts) != 3 {
		return Reading{}, &Failure{Kind: MalformedLine, Path: path}
	}
	value, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return Reading{}, &Failure{Kind: InvalidNumber, Path: path, Field: parts[2], Err: err}
	}
	return Reading{Date: parts[0], Time: parts[1], Value: value}, nil
}
