package ui

import (
	"strings"
	"testing"
)

func TestGlyphScale(t *testing.T) {
	cases := []struct {
		size, want int
	}{
		{1, 1},
		{4, 1},
		{9, 1},
		{10, 2}, // default font size
		{14, 2},
		{15, 3},
		{25, 5},
	}
	for _, tc := range cases {
		if got := glyphScale(tc.size); got != tc.want {
			t.Fatalf("glyphScale(%d) = %d, want %d", tc.size, got, tc.want)
		}
	}
}

func TestRenderBigText_Dimensions(t *testing.T) {
	for _, scale := range []int{1, 2, 3} {
		out := renderBigText("20.50", scale)
		lines := strings.Split(out, "\n")
		if len(lines) != glyphRows*scale {
			t.Fatalf("scale %d: %d lines, want %d", scale, len(lines), glyphRows*scale)
		}
		want := bigTextWidth("20.50", scale)
		for i, line := range lines {
			if got := len([]rune(line)); got != want {
				t.Fatalf("scale %d line %d: width %d, want %d", scale, i, got, want)
			}
		}
	}
}

func TestBigTextWidth(t *testing.T) {
	// Digits are 3 cells wide, the dot 1, with a 1-cell gap per join.
	if got := bigTextWidth("1.5", 1); got != 9 {
		t.Fatalf(`bigTextWidth("1.5", 1) = %d, want 9`, got)
	}
	if got := bigTextWidth("1.5", 2); got != 18 {
		t.Fatalf(`bigTextWidth("1.5", 2) = %d, want 18`, got)
	}
	if got := bigTextWidth("--", 1); got != 7 {
		t.Fatalf(`bigTextWidth("--", 1) = %d, want 7`, got)
	}
}

func TestRenderBigText_UnknownRuneRendersBlank(t *testing.T) {
	out := renderBigText("x", 1)
	for i, line := range strings.Split(out, "\n") {
		if line != "   " {
			t.Fatalf("line %d = %q, want three blanks", i, line)
		}
	}
}

func TestFitScale(t *testing.T) {
	// "20.50" is 17 cells wide and 5 rows tall at scale 1.
	if got := fitScale("20.50", 4, 40, 30); got != 2 {
		t.Fatalf("fitScale wide panel = %d, want 2", got)
	}
	if got := fitScale("20.50", 4, 200, 100); got != 4 {
		t.Fatalf("fitScale roomy panel = %d, want 4 (unchanged)", got)
	}
	// Never below 1, even when 1 still overflows.
	if got := fitScale("20.50", 3, 10, 4); got != 1 {
		t.Fatalf("fitScale tiny panel = %d, want 1", got)
	}
	if got := fitScale("20.50", 0, 100, 100); got != 1 {
		t.Fatalf("fitScale zero scale = %d, want 1", got)
	}
}
