package terminal

import (
	"fmt"
	"strings"
)

// Progress bar characters.
const (
	ProgressFilled = "█"
	ProgressEmpty  = "░"
)

// DrawProgressBar draws a bar of the given width filled to value.
// Value is clamped to [0, 1].
// Example: DrawProgressBar(0.7, 10) returns "███████░░░".
func DrawProgressBar(value float64, width int) string {
	if width <= 0 {
		return ""
	}

	value = min(max(value, 0), 1)

	filled := int(value * float64(width))

	return strings.Repeat(ProgressFilled, filled) + strings.Repeat(ProgressEmpty, width-filled)
}

// DrawBar draws only the filled part of a bar, for histogram rows.
func DrawBar(value float64, width int) string {
	if width <= 0 {
		return ""
	}

	value = min(max(value, 0), 1)

	return strings.Repeat(ProgressFilled, int(value*float64(width)))
}

// PercentMultiplier converts 0-1 to 0-100.
const PercentMultiplier = 100

// DrawPercentBar draws a labeled percentage bar.
// Example: "git             ████████████████░░░░  68%  (106)".
func DrawPercentBar(label string, percent float64, count, labelWidth, barWidth int) string {
	paddedLabel := PadRight(TruncateWithEllipsis(label, labelWidth), labelWidth)
	bar := DrawProgressBar(percent, barWidth)
	pctValue := int(percent * PercentMultiplier)

	return fmt.Sprintf("%s %s %3d%%  (%d)", paddedLabel, bar, pctValue, count)
}
