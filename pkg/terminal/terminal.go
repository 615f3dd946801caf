// Package terminal provides terminal rendering utilities for the wrapped report.
package terminal

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// Default width constants
const (
	DefaultWidth = 80
	MinWidth     = 60
	MaxWidth     = 120
)

// Config holds terminal rendering configuration. It is built once at startup
// and handed to every renderer; nothing in this package keeps global state.
type Config struct {
	Width   int
	NoColor bool
}

// NewConfig creates a Config from the environment and the attached stdout.
func NewConfig() Config {
	fd := int(os.Stdout.Fd())

	return Config{
		Width:   DetectWidth(fd),
		NoColor: os.Getenv("NO_COLOR") != "" || !term.IsTerminal(fd),
	}
}

// IsInteractive reports whether both stdin and stdout are terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// DetectWidth returns the width of the terminal on fd, falling back to the
// COLUMNS environment variable and then DefaultWidth. The result is clamped
// to [MinWidth, MaxWidth].
func DetectWidth(fd int) int {
	if width, _, err := term.GetSize(fd); err == nil && width > 0 {
		return ClampWidth(width)
	}

	columnsEnv := os.Getenv("COLUMNS")
	if columnsEnv == "" {
		return DefaultWidth
	}

	width, err := strconv.Atoi(columnsEnv)
	if err != nil {
		return DefaultWidth
	}

	return ClampWidth(width)
}

// ClampWidth limits width to [MinWidth, MaxWidth].
func ClampWidth(width int) int {
	return min(max(width, MinWidth), MaxWidth)
}
