package ui

import "strings"

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// padRight pads s with spaces to width, truncating when too long.
func padRight(s string, width int) string {
	cut := truncate(s, width)
	if n := width - len([]rune(cut)); n > 0 {
		return cut + strings.Repeat(" ", n)
	}
	return cut
}
