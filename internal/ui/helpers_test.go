package ui

import (
	"testing"
	"time"
)

func TestHumanizeDuration(t *testing.T) {
	cases := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"negative", -5 * time.Second, "now"},
		{"subsecond", 200 * time.Millisecond, "now"},
		{"seconds", 12 * time.Second, "12s"},
		{"minutes", 61 * time.Second, "1m"},
		{"default_interval", 3 * time.Minute, "3m"},
		{"hours", 2*time.Hour + 10*time.Minute, "2h"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := humanizeDuration(tc.in)
			if got != tc.want {
				t.Fatalf("humanizeDuration(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := truncateMiddle("  ", 10); got != "" {
		t.Fatalf("truncateMiddle blank = %q, want empty", got)
	}
	if got := truncateMiddle("abcd", 2); got != "ab" {
		t.Fatalf("truncateMiddle limit<=3 = %q, want ab", got)
	}
	if got := truncateMiddle("short.txt", 20); got != "short.txt" {
		t.Fatalf("truncateMiddle under limit = %q, want unchanged", got)
	}
	got := truncateMiddle("/home/user/temps/kitchen.txt", 16)
	if got == "/home/user/temps/kitchen.txt" {
		t.Fatalf("expected truncation")
	}
	if n := len([]rune(got)); n > 16 {
		t.Fatalf("got %q (%d runes), want <=16", got, n)
	}
}

func TestMaxInt(t *testing.T) {
	if got := maxInt(3, 7); got != 7 {
		t.Fatalf("maxInt(3, 7) = %d, want 7", got)
	}
	if got := maxInt(-1, -4); got != -1 {
		t.Fatalf("maxInt(-1, -4) = %d, want -1", got)
	}
}

func TestFormatChecked(t *testing.T) {
	now := time.Date(2024, 10, 20, 12, 2, 3, 0, time.UTC)

	if got := formatChecked(time.Time{}, now); got != "" {
		t.Fatalf("formatChecked zero time = %q, want empty", got)
	}
	if got := formatChecked(now.Add(-time.Second), now); got != "12:02:02 (now)" {
		t.Fatalf("formatChecked just now = %q, want 12:02:02 (now)", got)
	}
	if got := formatChecked(now.Add(-2*time.Minute), now); got != "12:00:03 (2m ago)" {
		t.Fatalf("formatChecked = %q, want 12:00:03 (2m ago)", got)
	}
}
