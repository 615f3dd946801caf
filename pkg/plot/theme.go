package plot

// Theme selects the chart color scheme.
type Theme string

const (
	// ThemeLight is the light color theme.
	ThemeLight Theme = "light"
	// ThemeDark is the dark color theme.
	ThemeDark Theme = "dark"
)

// ThemeConfig holds the colors used by chart options.
type ThemeConfig struct {
	Background     string
	ChartGrid      string
	ChartAxis      string
	ChartText      string
	ChartTextMuted string

	// Series colors, hottest first.
	Hot  string
	Warm string
	Cool string

	EChartsTheme string
}

// GetThemeConfig returns the configuration for a given theme. Unknown themes fall back to light.
func GetThemeConfig(theme Theme) ThemeConfig {
	if theme == ThemeDark {
		return darkTheme
	}

	return lightTheme
}

var lightTheme = ThemeConfig{
	Background:     "#fafaf9", // stone-50.
	ChartGrid:      "#e7e5e4", // stone-200.
	ChartAxis:      "#a8a29e", // stone-400.
	ChartText:      "#44403c", // stone-700.
	ChartTextMuted: "#78716c", // stone-500.

	Hot:  "#dc2626", // red-600.
	Warm: "#ca8a04", // yellow-600.
	Cool: "#16a34a", // green-600.
}

var darkTheme = ThemeConfig{
	Background:     "#0c0a09", // stone-950.
	ChartGrid:      "#44403c", // stone-700.
	ChartAxis:      "#78716c", // stone-500.
	ChartText:      "#e7e5e4", // stone-200.
	ChartTextMuted: "#a8a29e", // stone-400.

	Hot:  "#ef4444", // red-500.
	Warm: "#eab308", // yellow-500.
	Cool: "#22c55e", // green-500.

	EChartsTheme: "dark",
}
