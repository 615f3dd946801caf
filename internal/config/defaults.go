package config

// Default configuration values.
const (
	DefaultReportTop        = 10
	DefaultReportTopComplex = 5
	DefaultReportTopAliases = 10
	DefaultReportYear       = 0
	DefaultReportFormat     = FormatText
	DefaultReportTheme      = "dark"

	DefaultOutputNoColor     = false
	DefaultOutputInteractive = false

	DefaultLogLevel = "info"
	DefaultLogJSON  = false

	DefaultTelemetryInsecure    = false
	DefaultTelemetrySampleRatio = 1.0
)
