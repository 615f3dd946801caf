package terminal //nolint:testpackage // testing internal implementation.

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, MinWidth, ClampWidth(10))
	assert.Equal(t, 100, ClampWidth(100))
	assert.Equal(t, MaxWidth, ClampWidth(500))
}

func TestDetectWidth_FromEnv(t *testing.T) {
	t.Setenv("COLUMNS", "100")

	// -1 is never a terminal, so the environment is consulted.
	assert.Equal(t, 100, DetectWidth(-1))
}

func TestDetectWidth_InvalidEnv(t *testing.T) {
	t.Setenv("COLUMNS", "wide")

	assert.Equal(t, DefaultWidth, DetectWidth(-1))
}

func TestDetectWidth_Unset(t *testing.T) {
	t.Setenv("COLUMNS", "")

	assert.Equal(t, DefaultWidth, DetectWidth(-1))
}

func TestColorize(t *testing.T) {
	t.Parallel()

	plain := Config{NoColor: true}
	assert.Equal(t, "hello", plain.Colorize("hello", ColorRed))
	assert.Equal(t, "hello", plain.Bold("hello", ColorRed))

	colored := Config{}
	got := colored.Colorize("hello", ColorRed)
	assert.Contains(t, got, "\x1b[31m")
	assert.Contains(t, got, "hello")
	assert.Equal(t, 5, DisplayWidth(got))

	assert.Equal(t, "hello", colored.Colorize("hello", ColorNone))
	assert.Contains(t, colored.Bold("hello", ColorNone), "\x1b[1m")
}

func TestColorForRatio(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ColorGreen, ColorForRatio(0))
	assert.Equal(t, ColorYellow, ColorForRatio(0.5))
	assert.Equal(t, ColorRed, ColorForRatio(1))
}

func TestDrawProgressBar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value float64
		width int
		want  string
	}{
		{name: "half", value: 0.5, width: 4, want: "██░░"},
		{name: "clamped_low", value: -1, width: 3, want: "░░░"},
		{name: "clamped_high", value: 2, width: 3, want: "███"},
		{name: "zero_width", value: 0.5, width: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, DrawProgressBar(tt.value, tt.width))
		})
	}
}

func TestDrawBar(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "███", DrawBar(0.75, 4))
	assert.Empty(t, DrawBar(0, 10))
}

func TestDrawPercentBar(t *testing.T) {
	t.Parallel()

	got := DrawPercentBar("git", 0.5, 12, 6, 4)
	assert.Equal(t, "git    ██░░  50%  (12)", got)
}

func TestTruncateWithEllipsis(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", TruncateWithEllipsis("short", 10))
	assert.Equal(t, "a very...", TruncateWithEllipsis("a very long command", 9))
	assert.Equal(t, "..", TruncateWithEllipsis("abcdef", 2))
	assert.Empty(t, TruncateWithEllipsis("abc", 0))
}

func TestPadding(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "   ab", PadLeft("ab", 5))
	assert.Equal(t, " ab  ", Center("ab", 5))
	assert.Equal(t, "abcdef", PadRight("abcdef", 3))
}

func TestDrawHeader(t *testing.T) {
	t.Parallel()

	got := DrawHeader("TITLE", "right", 30)
	lines := strings.Split(got, "\n")

	assert.Len(t, lines, 3)

	for _, line := range lines {
		assert.Equal(t, 30, DisplayWidth(line))
	}

	assert.True(t, strings.HasPrefix(lines[1], BoxHeavyVertical+" TITLE"))
	assert.True(t, strings.HasSuffix(lines[1], "right "+BoxHeavyVertical))
}

func TestDrawSeparator(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "───", DrawSeparator(3))
	assert.Empty(t, DrawSeparator(0))
}
