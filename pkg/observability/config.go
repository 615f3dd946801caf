// Package observability wires structured logging, tracing and metrics for a report run.
package observability

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// AppMode tags telemetry with the way the binary was invoked.
type AppMode string

// Application modes.
const (
	// ModeCLI is a one-shot report run.
	ModeCLI AppMode = "cli"
	// ModeRerender re-renders a saved report without reading history.
	ModeRerender AppMode = "rerender"
)

const (
	defaultServiceName        = "termwrapped"
	defaultShutdownTimeoutSec = 5
)

// ErrInvalidLogLevel is returned by ParseLogLevel for unknown names.
var ErrInvalidLogLevel = errors.New("invalid log level")

// Config configures Init.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Mode           AppMode

	// OTLPEndpoint enables OTLP gRPC export of traces and metrics. Empty means no-op providers.
	OTLPEndpoint string
	OTLPInsecure bool
	OTLPHeaders  map[string]string
	SampleRatio  float64

	LogLevel  slog.Level
	LogJSON   bool
	LogWriter io.Writer

	// MetricsFile, when set, receives the run metrics in Prometheus text format on shutdown.
	MetricsFile string

	ShutdownTimeoutSec int
}

// DefaultConfig returns a Config that logs info and exports nothing.
func DefaultConfig() Config {
	return Config{
		ServiceName:        defaultServiceName,
		Mode:               ModeCLI,
		LogLevel:           slog.LevelInfo,
		ShutdownTimeoutSec: defaultShutdownTimeoutSec,
	}
}

// ParseLogLevel converts debug, info, warn or error into a slog level.
func ParseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, name)
	}
}
