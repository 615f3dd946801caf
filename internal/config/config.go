package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/Sumatoshi-tech/termwrapped/pkg/aggregate"
	"github.com/Sumatoshi-tech/termwrapped/pkg/history"
	"github.com/Sumatoshi-tech/termwrapped/pkg/observability"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatPlot = "plot"
)

// Formats lists every accepted report format.
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatPlot}

var themes = []string{"light", "dark"}

// Config is the top-level configuration for termwrapped.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	// Shell overrides $SHELL detection (zsh or bash).
	Shell     string          `mapstructure:"shell"`
	History   HistoryConfig   `mapstructure:"history"`
	Aliases   AliasesConfig   `mapstructure:"aliases"`
	Report    ReportConfig    `mapstructure:"report"`
	Output    OutputConfig    `mapstructure:"output"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// HistoryConfig locates and decodes the history log.
type HistoryConfig struct {
	File     string `mapstructure:"file"`
	Format   string `mapstructure:"format"`
	Timezone string `mapstructure:"timezone"`
}

// AliasesConfig locates the shell config holding alias definitions.
type AliasesConfig struct {
	File string `mapstructure:"file"`
}

// ReportConfig sizes and shapes the report.
type ReportConfig struct {
	Top        int    `mapstructure:"top"`
	TopComplex int    `mapstructure:"top_complex"`
	TopAliases int    `mapstructure:"top_aliases"`
	Year       int    `mapstructure:"year"`
	Format     string `mapstructure:"format"`
	Theme      string `mapstructure:"theme"`
}

// OutputConfig controls terminal presentation.
type OutputConfig struct {
	NoColor     bool `mapstructure:"no_color"`
	Interactive bool `mapstructure:"interactive"`
}

// LoggingConfig controls the diagnostic logger.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// TelemetryConfig controls tracing and metrics export.
type TelemetryConfig struct {
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	OTLPInsecure bool    `mapstructure:"otlp_insecure"`
	OTLPHeaders  string  `mapstructure:"otlp_headers"`
	SampleRatio  float64 `mapstructure:"sample_ratio"`
	Environment  string  `mapstructure:"environment"`
	MetricsFile  string  `mapstructure:"metrics_file"`
}

// Sentinel errors for configuration validation.
var (
	ErrInvalidTop           = errors.New("report.top must be non-negative")
	ErrInvalidTopComplex    = errors.New("report.top_complex must be non-negative")
	ErrInvalidTopAliases    = errors.New("report.top_aliases must be non-negative")
	ErrInvalidYear          = errors.New("report.year must be non-negative")
	ErrInvalidFormat        = errors.New("report.format must be one of text, json, yaml, plot")
	ErrInvalidTheme         = errors.New("report.theme must be light or dark")
	ErrInvalidHistoryFormat = errors.New("history.format must be zsh or bash")
	ErrInvalidTimezone      = errors.New("history.timezone is not a known time zone")
	ErrInvalidLogLevel      = errors.New("logging.level must be debug, info, warn or error")
	ErrInvalidSampleRatio   = errors.New("telemetry.sample_ratio must be between 0 and 1")
)

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	reportErr := c.validateReport()
	if reportErr != nil {
		return reportErr
	}

	if c.History.Format != "" {
		_, err := history.ParseFormat(c.History.Format)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidHistoryFormat, c.History.Format)
		}
	}

	_, err := c.Location()
	if err != nil {
		return err
	}

	_, err = observability.ParseLogLevel(c.Logging.Level)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}

	if c.Telemetry.SampleRatio < 0 || c.Telemetry.SampleRatio > 1 {
		return ErrInvalidSampleRatio
	}

	return nil
}

func (c *Config) validateReport() error {
	switch {
	case c.Report.Top < 0:
		return ErrInvalidTop
	case c.Report.TopComplex < 0:
		return ErrInvalidTopComplex
	case c.Report.TopAliases < 0:
		return ErrInvalidTopAliases
	case c.Report.Year < 0:
		return ErrInvalidYear
	}

	if c.Report.Format != "" && !slices.Contains(Formats, c.Report.Format) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Report.Format)
	}

	if c.Report.Theme != "" && !slices.Contains(themes, c.Report.Theme) {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, c.Report.Theme)
	}

	return nil
}

// Location returns the zone timestamps are shown in. Empty means the local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.History.Timezone == "" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(c.History.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, c.History.Timezone)
	}

	return loc, nil
}

// ReportOptions converts the report section into aggregate options.
func (c *Config) ReportOptions() aggregate.Options {
	return aggregate.Options{
		TopCommands: c.Report.Top,
		TopComplex:  c.Report.TopComplex,
		TopAliases:  c.Report.TopAliases,
		Year:        c.Report.Year,
	}
}

// Observability converts the logging and telemetry sections into an observability config.
// Call Validate first; an invalid level falls back to info.
func (c *Config) Observability() observability.Config {
	obsCfg := observability.DefaultConfig()

	obsCfg.LogLevel, _ = observability.ParseLogLevel(c.Logging.Level)
	obsCfg.LogJSON = c.Logging.JSON
	obsCfg.OTLPEndpoint = c.Telemetry.OTLPEndpoint
	obsCfg.OTLPInsecure = c.Telemetry.OTLPInsecure
	obsCfg.OTLPHeaders = observability.ParseOTLPHeaders(c.Telemetry.OTLPHeaders)
	obsCfg.SampleRatio = c.Telemetry.SampleRatio
	obsCfg.Environment = c.Telemetry.Environment
	obsCfg.MetricsFile = c.Telemetry.MetricsFile

	return obsCfg
}
