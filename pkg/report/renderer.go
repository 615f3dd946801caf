// Package report renders a wrapped report as colorful terminal text.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Sumatoshi-tech/termwrapped/pkg/aggregate"
	"github.com/Sumatoshi-tech/termwrapped/pkg/terminal"
)

// Section titles.
const (
	TitleRhythm     = "🎵 Your Terminal Rhythm"
	TitleTopHits    = "🌟 Your Top Hits"
	TitleSymphonies = "🎸 Your Command Symphonies"
	TitlePrimeTime  = "⏰ Your Terminal Prime Time"
	TitleAliases    = "🎭 Your Alias Game"
	TitleSummary    = "🎁 THAT'S A WRAP"
)

// Layout constants.
const (
	IndentWidth     = 2
	labelWidth      = 16
	percentTail     = 16 // " 100%  (12345)" plus slack.
	minBarWidth     = 10
	hourLabelWidth  = 8
	countWidth      = 7
	commandMinWidth = 20
	tableChrome     = 24
	listLimit       = 5
	blankLabel      = "(blank)"
)

// Section is one page of the report.
type Section struct {
	Title string
	Body  string
}

// Renderer turns an aggregate.Report into text.
type Renderer struct {
	cfg terminal.Config
	now func() time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock sets the clock used for relative times.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

// NewRenderer creates a Renderer for the given terminal configuration.
func NewRenderer(cfg terminal.Config, opts ...Option) *Renderer {
	if cfg.Width <= 0 {
		cfg.Width = terminal.DefaultWidth
	}

	r := &Renderer{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Pages returns one formatted page per section. The banner opens the first page.
func (r *Renderer) Pages(rep *aggregate.Report) []string {
	sections := r.Sections(rep)
	pages := make([]string, 0, len(sections))

	for i, section := range sections {
		pages = append(pages, r.FormatSection(section, i+1, len(sections)))
	}

	if len(pages) > 0 {
		pages[0] = r.Banner(ReportYear(rep)) + "\n\n" + pages[0]
	}

	return pages
}

// ReportYear returns the year shown in the banner.
func ReportYear(rep *aggregate.Report) int {
	if rep.Year > 0 {
		return rep.Year
	}

	if rep.Totals.LastCommand.IsZero() {
		return 0
	}

	return rep.Totals.LastCommand.Year()
}

// FormatSection draws a section header followed by its body.
func (r *Renderer) FormatSection(section Section, index, total int) string {
	title := r.cfg.Bold(section.Title, terminal.ColorYellow)

	right := ""
	if total > 0 {
		right = r.cfg.Colorize(fmt.Sprintf("%d/%d", index, total), terminal.ColorGray)
	}

	header := r.cfg.Colorize(terminal.DrawHeader(title, right, r.cfg.Width), terminal.ColorCyan)

	return header + "\n\n" + section.Body
}

// Sections returns the report pages in display order.
func (r *Renderer) Sections(rep *aggregate.Report) []Section {
	return []Section{
		{Title: TitleRhythm, Body: r.rhythm(rep)},
		{Title: TitleTopHits, Body: r.topHits(rep)},
		{Title: TitleSymphonies, Body: r.symphonies(rep)},
		{Title: TitlePrimeTime, Body: r.primeTime(rep)},
		{Title: TitleAliases, Body: r.aliases(rep)},
	}
}

func (r *Renderer) indent(lines ...string) string {
	pad := strings.Repeat(" ", IndentWidth)

	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) stat(label string, value string) string {
	return r.cfg.Colorize(terminal.PadRight(label+":", labelWidth+4), terminal.ColorMagenta) +
		r.cfg.Bold(value, terminal.ColorWhite)
}

func (r *Renderer) comment(text string) string {
	return r.cfg.Colorize(text, terminal.ColorCyan)
}

func (r *Renderer) muted(text string) string {
	return r.cfg.Colorize(text, terminal.ColorGray)
}

func (r *Renderer) barWidth() int {
	return max(r.cfg.Width-labelWidth-percentTail-IndentWidth*2, minBarWidth)
}

func (r *Renderer) commandWidth() int {
	return max(r.cfg.Width-tableChrome, commandMinWidth)
}

func (r *Renderer) rhythm(rep *aggregate.Report) string {
	totals := rep.Totals

	lines := []string{
		r.stat("Total commands", humanize.Comma(int64(totals.Commands))),
		r.stat("Unique commands", humanize.Comma(int64(totals.Unique))),
		r.stat("Distinct programs", humanize.Comma(int64(totals.UniqueBase))),
		r.stat("Active days", humanize.Comma(int64(totals.ActiveDays))),
	}

	if !totals.FirstCommand.IsZero() {
		since := humanize.RelTime(totals.FirstCommand, r.now(), "ago", "from now")
		lines = append(lines, r.stat("First command", totals.FirstCommand.Format(time.DateOnly)+" ("+since+")"))
	}

	lines = append(lines, "", r.comment(CommandCountComment(totals.Commands)))

	if rep.Parse.Skipped > 0 {
		lines = append(lines, r.muted(fmt.Sprintf("(%s history lines were not timestamped commands and were skipped)",
			humanize.Comma(int64(rep.Parse.Skipped)))))
	}

	return r.indent(lines...)
}

func (r *Renderer) topHits(rep *aggregate.Report) string {
	if len(rep.TopBase) == 0 {
		return r.indent(r.muted("No commands yet. Your top hits are waiting to be written."))
	}

	lines := make([]string, 0, len(rep.TopBase)+2)
	maxCount := rep.TopBase.Max()

	for i, row := range rep.TopBase {
		label := row.Key
		if label == "" {
			label = blankLabel
		}

		share := aggregate.Ratio(row.Count, rep.Totals.Commands)
		line := terminal.DrawPercentBar(fmt.Sprintf("%2d. %s", i+1, label), share, row.Count, labelWidth, r.barWidth())
		lines = append(lines, r.cfg.Colorize(line, terminal.ColorForRatio(aggregate.Ratio(row.Count, maxCount))))
	}

	lines = append(lines, "", r.comment(TopCommandComment(rep.TopBase[0].Key)))

	return r.indent(lines...)
}

func (r *Renderer) symphonies(rep *aggregate.Report) string {
	if len(rep.MostComplex) == 0 {
		return r.indent(r.muted("No symphonies composed yet."))
	}

	tbl := r.newTable()
	tbl.AppendHeader(table.Row{"#", "Score", "Special", "Command"})

	for i, result := range rep.MostComplex {
		tbl.AppendRow(table.Row{
			i + 1,
			result.Score,
			terminal.TruncateWithEllipsis(result.SpecialString(), labelWidth),
			r.cfg.Colorize(terminal.TruncateWithEllipsis(result.Command, r.commandWidth()), terminal.ColorCyan),
		})
	}

	lines := []string{
		tbl.Render(),
		"",
		r.stat("Average complexity", strconv.FormatFloat(rep.AverageComplexity, 'f', 1, 64)),
		"",
		r.comment(ComplexityComment(rep.MostComplex[0].Score)),
	}

	return r.indent(lines...)
}

func (r *Renderer) primeTime(rep *aggregate.Report) string {
	lines := make([]string, 0, aggregate.HoursPerDay+8)
	maxCount := rep.Hourly.Max()
	width := r.barWidth()
	countWidth := len(strconv.Itoa(maxCount))

	for hour, count := range rep.Hourly {
		ratio := aggregate.Ratio(count, maxCount)
		label := terminal.PadRight(fmt.Sprintf("%02d:00", hour), hourLabelWidth)
		bar := r.cfg.Colorize(terminal.DrawBar(ratio, width), terminal.ColorForRatio(ratio))
		lines = append(lines, r.muted(label)+terminal.BoxVertical+" "+bar+" "+
			r.muted(terminal.PadLeft(strconv.Itoa(count), countWidth)))
	}

	lines = append(lines, "")

	if rep.Peak == nil {
		lines = append(lines, r.muted("No activity recorded. The terminal sleeps."))

		return r.indent(lines...)
	}

	lines = append(lines,
		r.stat("Most active hour", fmt.Sprintf("%02d:00 (%s commands)", rep.Peak.Hour, humanize.Comma(int64(rep.Peak.Count)))),
	)

	if rep.Peak.TopCommand != "" {
		lines = append(lines, r.stat("Hour favourite", fmt.Sprintf("%s (%dx)",
			terminal.TruncateWithEllipsis(rep.Peak.TopCommand, r.commandWidth()), rep.Peak.TopCommandCount)))
	}

	if day, ok := busiestWeekday(rep.Weekdays); ok {
		lines = append(lines, r.stat("Busiest weekday", day.String()))
	}

	lines = append(lines, "", r.comment(HourComment(rep.Peak.Hour, rep.Peak.Count)))

	if rep.LateNight > 0 {
		lines = append(lines, r.cfg.Bold("Night Owl Alert! ", terminal.ColorRed)+
			fmt.Sprintf("%s commands between midnight and 5 AM!", humanize.Comma(int64(rep.LateNight))))
	}

	return r.indent(lines...)
}

func busiestWeekday(dist aggregate.WeekdayDistribution) (time.Weekday, bool) {
	best, bestCount := time.Sunday, 0

	for day, count := range dist {
		if count > bestCount {
			best, bestCount = time.Weekday(day), count
		}
	}

	return best, bestCount > 0
}

func (r *Renderer) aliases(rep *aggregate.Report) string {
	aliasReport := rep.Aliases

	if aliasReport.Defined == 0 {
		return r.indent(r.comment(AliasComment(0, 0)))
	}

	used := aliasReport.Defined - len(aliasReport.Neglected)

	lines := []string{
		r.stat("Aliases defined", humanize.Comma(int64(aliasReport.Defined))),
		r.stat("Aliases used", humanize.Comma(int64(used))),
		"",
	}

	if len(aliasReport.Usage) > 0 {
		tbl := r.newTable()
		tbl.AppendHeader(table.Row{"Alias", "Uses"})

		for _, row := range aliasReport.Usage {
			tbl.AppendRow(table.Row{r.cfg.Colorize(row.Key, terminal.ColorGreen), row.Count})
		}

		lines = append(lines, tbl.Render(), "")
	}

	if len(aliasReport.Neglected) > 0 {
		lines = append(lines, r.stat("Neglected", joinLimited(aliasReport.Neglected, listLimit*2)), "")
	}

	if aliasReport.AllAliased() {
		lines = append(lines, r.comment("Every single command started with an alias. Maximum laziness achieved!"), "")
	} else if len(aliasReport.TopRaw) > 0 {
		lines = append(lines, r.muted("Typed the long way:"))
		for _, row := range limitRows(aliasReport.TopRaw, listLimit) {
			lines = append(lines, fmt.Sprintf("  %s %s", terminal.PadRight(labelOrBlank(row.Key), labelWidth), r.muted(strconv.Itoa(row.Count))))
		}

		lines = append(lines, "")
	}

	if len(aliasReport.TopExpanded) > 0 {
		lines = append(lines,
			r.muted(terminal.DrawSeparator(r.cfg.Width-2*IndentWidth)),
			"",
			r.muted("What actually ran:"))
		for _, row := range limitRows(aliasReport.TopExpanded, listLimit) {
			line := fmt.Sprintf("  %s %s", terminal.PadRight(terminal.TruncateWithEllipsis(row.Key, r.commandWidth()), labelWidth), r.muted(strconv.Itoa(row.Count)))
			if row.Alias != "" {
				line += " " + r.cfg.Colorize("(via "+row.Alias+")", terminal.ColorGreen)
			}

			lines = append(lines, line)
		}

		lines = append(lines, "")
	}

	lines = append(lines, r.comment(AliasComment(aliasReport.Defined, used)))

	return r.indent(lines...)
}

// Summary draws the closing page.
func (r *Renderer) Summary(rep *aggregate.Report) string {
	header := r.cfg.Colorize(terminal.DrawHeader(r.cfg.Bold(TitleSummary, terminal.ColorYellow), "", r.cfg.Width), terminal.ColorCyan)

	if rep.Empty() {
		return header + "\n\n" + r.indent(r.muted("Nothing to wrap yet. Go type some commands!"))
	}

	lines := []string{
		r.stat("Commands", humanize.Comma(int64(rep.Totals.Commands))),
	}

	if len(rep.TopBase) > 0 {
		lines = append(lines, r.stat("Favourite", labelOrBlank(rep.TopBase[0].Key)))
	}

	if rep.Peak != nil {
		lines = append(lines, r.stat("Prime time", fmt.Sprintf("%02d:00", rep.Peak.Hour)))
	}

	if len(rep.MostComplex) > 0 {
		lines = append(lines, r.stat("Highest complexity", strconv.Itoa(rep.MostComplex[0].Score)))
	}

	lines = append(lines, r.stat("Night owl commands", humanize.Comma(int64(rep.LateNight))))

	if rep.Aliases.Defined > 0 {
		used := rep.Aliases.Defined - len(rep.Aliases.Neglected)
		lines = append(lines, r.stat("Aliases used", fmt.Sprintf("%d/%d", used, rep.Aliases.Defined)))
	}

	lines = append(lines, "", r.comment("See you next year in the terminal! 👋"))

	return header + "\n\n" + r.indent(lines...)
}

func (r *Renderer) newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleRounded)
	tbl.Style().Options.SeparateRows = false

	return tbl
}

func labelOrBlank(key string) string {
	if key == "" {
		return blankLabel
	}

	return key
}

func limitRows[S ~[]E, E any](rows S, n int) S {
	if len(rows) > n {
		return rows[:n]
	}

	return rows
}

func joinLimited(items []string, n int) string {
	if len(items) <= n {
		return strings.Join(items, ", ")
	}

	return strings.Join(items[:n], ", ") + fmt.Sprintf(" and %d more", len(items)-n)
}
