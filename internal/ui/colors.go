package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// namedColors maps the color names users are likely to type to hex values.
// Names are matched case-insensitively with spaces ignored, so "Light Blue"
// and "lightblue" are the same color.
var namedColors = map[string]string{
	"white":      "#ffffff",
	"black":      "#000000",
	"red":        "#ff0000",
	"green":      "#008000",
	"lime":       "#00ff00",
	"blue":       "#0000ff",
	"yellow":     "#ffff00",
	"cyan":       "#00ffff",
	"aqua":       "#00ffff",
	"magenta":    "#ff00ff",
	"fuchsia":    "#ff00ff",
	"orange":     "#ffa500",
	"purple":     "#800080",
	"pink":       "#ffc0cb",
	"brown":      "#a52a2a",
	"gray":       "#808080",
	"grey":       "#808080",
	"silver":     "#c0c0c0",
	"navy":       "#000080",
	"teal":       "#008080",
	"olive":      "#808000",
	"maroon":     "#800000",
	"gold":       "#ffd700",
	"beige":      "#f5f5dc",
	"ivory":      "#fffff0",
	"snow":       "#fffafa",
	"azure":      "#f0ffff",
	"honeydew":   "#f0fff0",
	"lavender":   "#e6e6fa",
	"salmon":     "#fa8072",
	"coral":      "#ff7f50",
	"turquoise":  "#40e0d0",
	"violet":     "#ee82ee",
	"indigo":     "#4b0082",
	"khaki":      "#f0e68c",
	"plum":       "#dda0dd",
	"crimson":    "#dc143c",
	"tan":        "#d2b48c",
	"orchid":     "#da70d6",
	"skyblue":    "#87ceeb",
	"steelblue":  "#4682b4",
	"lightblue":  "#add8e6",
	"lightgreen": "#90ee90",
	"lightgray":  "#d3d3d3",
	"lightgrey":  "#d3d3d3",
	"darkblue":   "#00008b",
	"darkgreen":  "#006400",
	"darkgray":   "#a9a9a9",
	"darkgrey":   "#a9a9a9",
	"darkred":    "#8b0000",
	"slategray":  "#708090",
	"slategrey":  "#708090",
}

// resolveColor turns a user-supplied color string into a lipgloss color.
// Known names resolve to hex; anything else (hex codes, ANSI palette
// numbers, or strings the terminal may not understand) passes through
// untouched, so an unrecognized color degrades to the terminal default
// instead of failing the render.
func resolveColor(raw string) lipgloss.Color {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw), " ", ""))
	if hex, ok := namedColors[key]; ok {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(strings.TrimSpace(raw))
}

// contrastText picks a readable foreground for the given background: black
// on light backgrounds, white on dark ones. Backgrounds whose brightness
// cannot be determined get white.
func contrastText(raw string) lipgloss.Color {
	r, g, b, ok := parseHex(string(resolveColor(raw)))
	if !ok {
		return lipgloss.Color("#ffffff")
	}
	// Perceived brightness, ITU-R BT.601 weights.
	brightness := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	if brightness > 150 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}

func parseHex(s string) (r, g, b uint8, ok bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return 0, 0, 0, false
	}
	rv, err1 := strconv.ParseUint(s[0:2], 16, 8)
	gv, err2 := strconv.ParseUint(s[2:4], 16, 8)
	bv, err3 := strconv.ParseUint(s[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return uint8(rv), uint8(gv), uint8(bv), true
}
