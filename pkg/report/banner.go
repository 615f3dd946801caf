package report

import (
	"strconv"
	"strings"

	"github.com/Sumatoshi-tech/termwrapped/pkg/terminal"
)

var bannerArt = []string{
	"▀█▀ █▀▀ █▀█ █▀▄▀█ █ █▄ █ ▄▀█ █  ",
	" █  ██▄ █▀▄ █ ▀ █ █ █ ▀█ █▀█ █▄▄",
}

const (
	bannerTopLeft     = "╔"
	bannerTopRight    = "╗"
	bannerBottomLeft  = "╚"
	bannerBottomRight = "╝"
	bannerHorizontal  = "═"
	bannerVertical    = "║"
	bannerInnerWidth  = 46
)

// Banner draws the report title box. year 0 omits the year.
func (r *Renderer) Banner(year int) string {
	title := "W R A P P E D"
	if year > 0 {
		title += "   " + spaced(strconv.Itoa(year))
	}

	lines := make([]string, 0, len(bannerArt)+3)
	lines = append(lines, "")
	lines = append(lines, bannerArt...)
	lines = append(lines, "", title)

	var sb strings.Builder

	sb.WriteString(bannerTopLeft + strings.Repeat(bannerHorizontal, bannerInnerWidth) + bannerTopRight + "\n")

	for _, line := range lines {
		sb.WriteString(bannerVertical + terminal.Center(line, bannerInnerWidth) + bannerVertical + "\n")
	}

	sb.WriteString(bannerBottomLeft + strings.Repeat(bannerHorizontal, bannerInnerWidth) + bannerBottomRight)

	return r.cfg.Colorize(sb.String(), terminal.ColorGreen)
}

func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}
