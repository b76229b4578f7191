package ui

import (
	"testing"

	"tempwatch/internal/state"
	"tempwatch/internal/templog"
)

func TestReadingStamp(t *testing.T) {
	if got := readingStamp(state.Snapshot{}); got != "" {
		t.Fatalf("readingStamp without reading = %q, want empty", got)
	}

	snap := state.Snapshot{
		Reading:    templog.Reading{Date: "2024-10-20", Time: "12:00:00", Value: 23.47},
		HasReading: true,
	}
	if got := readingStamp(snap); got != "2024-10-20 12:00:00" {
		t.Fatalf("readingStamp = %q, want 2024-10-20 12:00:00", got)
	}

	// Readings keep fields 1-2 verbatim; blank ones leave no stamp.
	snap.Reading = templog.Reading{Value: 1}
	if got := readingStamp(snap); got != "" {
		t.Fatalf("readingStamp with blank fields = %q, want empty", got)
	}

	snap.Reading = templog.Reading{Date: "2024-10-20", Value: 1}
	if got := readingStamp(snap); got != "2024-10-20" {
		t.Fatalf("readingStamp with date only = %q, want 2024-10-20", got)
	}
}
