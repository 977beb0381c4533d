package tui

import "strings"

// fitText cuts v to n cells, marking the cut with "...".
func fitText(v string, n int) string {
	r := []rune(v)
	if n <= 0 || len(r) <= n {
		return v
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

// padRight fills v with spaces up to width cells.
func padRight(v string, width int) string {
	n := len([]rune(v))
	if n >= width {
		return v
	}
	return v + strings.Repeat(" ", width-n)
}
