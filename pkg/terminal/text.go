package terminal

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

// Ellipsis is appended to truncated strings.
const Ellipsis = "..."

// TruncateWithEllipsis truncates s to maxWidth display cells, adding "..." if truncated.
func TruncateWithEllipsis(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	if DisplayWidth(s) <= maxWidth {
		return s
	}

	if maxWidth <= len(Ellipsis) {
		return strings.Repeat(".", maxWidth)
	}

	return text.Trim(s, maxWidth-len(Ellipsis)) + Ellipsis
}

// DisplayWidth returns the number of terminal cells s occupies, ignoring ANSI escapes.
func DisplayWidth(s string) int {
	return text.RuneWidthWithoutEscSequences(s)
}

// PadRight pads s with spaces on the right to reach width.
// If s is already wider than width, returns s unchanged.
func PadRight(s string, width int) string {
	gap := width - DisplayWidth(s)
	if gap <= 0 {
		return s
	}

	return s + strings.Repeat(" ", gap)
}

// PadLeft pads s with spaces on the left to reach width.
func PadLeft(s string, width int) string {
	gap := width - DisplayWidth(s)
	if gap <= 0 {
		return s
	}

	return strings.Repeat(" ", gap) + s
}

// Center centers s within width.
func Center(s string, width int) string {
	gap := width - DisplayWidth(s)
	if gap <= 0 {
		return s
	}

	left := gap / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
