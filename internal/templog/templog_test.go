package templog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "temps.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLatest_ReturnsFinalLine(t *testing.T) {
	path := writeLog(t, "2024-10-20;11:57:00;10.0\n2024-10-20;12:00:00;20.5\n")

	got, err := Latest(path)
	if err != nil {
		t.Fatalf("Latest returned error: %v", err)
	}
	if got.Value != 20.5 {
		t.Fatalf("Value = %v, want 20.5", got.Value)
	}
	if got.Date != "2024-10-20" || got.Time != "12:00:00" {
		t.Fatalf("Date/Time = %q/%q, want 2024-10-20/12:00:00", got.Date, got.Time)
	}
}

func TestLatest_SingleLineWithoutTrailingNewline(t *testing.T) {
	path := writeLog(t, "a;b;12.34")

	got, err := Latest(path)
	if err != nil {
		t.Fatalf("Latest returned error: %v", err)
	}
	if got.Value != 12.34 {
		t.Fatalf("Value = %v, want 12.34", got.Value)
	}
	if got.Date != "a" || got.Time != "b" {
		t.Fatalf("Date/Time = %q/%q, want a/b", got.Date, got.Time)
	}
}

func TestLatest_StripsSurroundingWhitespace(t *testing.T) {
	path := writeLog(t, "a;b;1.0\n  2024-10-20;12:00:00;23.47  \n")

	got, err := Latest(path)
	if err != nil {
		t.Fatalf("Latest returned error: %v", err)
	}
	if got.Value != 23.47 {
		t.Fatalf("Value = %v, want 23.47", got.Value)
	}
	if got.Date != "2024-10-20" {
		t.Fatalf("Date = %q, want 2024-10-20", got.Date)
	}
}

func TestLatest_Failures(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantKind  Kind
		wantField string
	}{
		{name: "empty file", content: "", wantKind: EmptyFile},
		{name: "two fields", content: "a;b\n", wantKind: MalformedLine},
		{name: "four fields", content: "a;b;1.0;extra\n", wantKind: MalformedLine},
		{name: "blank last line", content: "a;b;12.0\n   \n", wantKind: MalformedLine},
		{name: "non-numeric value", content: "a;b;xyz\n", wantKind: InvalidNumber, wantField: "xyz"},
		{name: "value is empty field", content: "a;b;\n", wantKind: InvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeLog(t, tt.content)

			_, err := Latest(path)
			if err == nil {
				t.Fatalf("Latest returned nil error, want %v failure", tt.wantKind)
			}
			var failure *Failure
			if !errors.As(err, &failure) {
				t.Fatalf("Latest error = %T, want *Failure", err)
			}
			if failure.Kind != tt.wantKind {
				t.Fatalf("Kind = %v, want %v", failure.Kind, tt.wantKind)
			}
			if failure.Field != tt.wantField {
				t.Fatalf("Field = %q, want %q", failure.Field, tt.wantField)
			}
			if failure.Path != path {
				t.Fatalf("Path = %q, want %q", failure.Path, path)
			}
		})
	}
}

func TestLatest_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.txt")

	_, err := Latest(path)
	var failure *Failure
	if !errors.As(err, &failure) {
		t.Fatalf("Latest error = %T, want *Failure", err)
	}
	if failure.Kind != NotFound {
		t.Fatalf("Kind = %v, want %v", failure.Kind, NotFound)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("errors.Is(err, os.ErrNotExist) = false, want true")
	}
}

func TestLatest_IdempotentOnUnchangedFile(t *testing.T) {
	path := writeLog(t, "a;b;10.0\nc;d;-3.25\n")

	first, err := Latest(path)
	if err != nil {
		t.Fatalf("first Latest returned error: %v", err)
	}
	second, err := Latest(path)
	if err != nil {
		t.Fatalf("second Latest returned error: %v", err)
	}
	if first != second {
		t.Fatalf("repeated reads differ: %#v vs %#v", first, second)
	}
	if first.Value != -3.25 {
		t.Fatalf("Value = %v, want -3.25", first.Value)
	}
}

func TestFailure_Notice(t *testing.T) {
	tests := []struct {
		name    string
		failure *Failure
		want    string
	}{
		{name: "not found", failure: &Failure{Kind: NotFound}, want: "file not found"},
		{name: "empty", failure: &Failure{Kind: EmptyFile}, want: "no lines in file"},
		{name: "malformed", failure: &Failure{Kind: MalformedLine}, want: "malformed line in file"},
		{
			name:    "invalid number carries text",
			failure: &Failure{Kind: InvalidNumber, Field: "xyz"},
			want:    "invalid temperature value: xyz",
		},
		{
			name:    "io error carries cause",
			failure: &Failure{Kind: IOError, Err: errors.New("permission denied")},
			want:    "file error: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.failure.Notice(); got != tt.want {
				t.Fatalf("Notice() = %q, want %q", got, tt.want)
			}
		})
	}
}
