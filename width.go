package reprint

import "github.com/mattn/go-runewidth"

// truncate shortens s to width terminal columns, ending in "..." when there
// is room for it. A width of zero or less means no limit.
func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= len(elided) {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, elided)
}
