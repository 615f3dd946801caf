package terminal

import "github.com/fatih/color"

// Color represents a terminal color.
type Color int

// Color constants
const (
	ColorNone Color = iota
	ColorGreen
	ColorYellow
	ColorRed
	ColorBlue
	ColorGray
	ColorCyan
	ColorMagenta
	ColorWhite
)

var colorAttributes = map[Color][]color.Attribute{
	ColorGreen:   {color.FgGreen},
	ColorYellow:  {color.FgYellow},
	ColorRed:     {color.FgRed},
	ColorBlue:    {color.FgBlue},
	ColorGray:    {color.FgHiBlack},
	ColorCyan:    {color.FgCyan},
	ColorMagenta: {color.FgMagenta},
	ColorWhite:   {color.FgWhite},
}

// Colorize applies color to text. If NoColor is true, returns text unchanged.
func (c Config) Colorize(text string, col Color) string {
	return c.paint(text, col)
}

// Bold renders text in bold with the given color.
func (c Config) Bold(text string, col Color) string {
	return c.paint(text, col, color.Bold)
}

func (c Config) paint(text string, col Color, extra ...color.Attribute) string {
	if c.NoColor || text == "" {
		return text
	}

	attrs := append(append([]color.Attribute{}, colorAttributes[col]...), extra...)
	if len(attrs) == 0 {
		return text
	}

	painter := color.New(attrs...)
	// Decided by Config, not by the library's process-wide NoColor switch.
	painter.EnableColor()

	return painter.Sprint(text)
}

// Heat thresholds for ColorForRatio.
const (
	HeatHigh   = 0.66
	HeatMedium = 0.33
)

// ColorForRatio picks a color for a 0-1 activity ratio: red is hottest.
func ColorForRatio(ratio float64) Color {
	if ratio >= HeatHigh {
		return ColorRed
	}

	if ratio >= HeatMedium {
		return ColorYellow
	}

	return ColorGreen
}
