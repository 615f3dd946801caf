package aggregate

import (
	"github.com/Sumatoshi-tech/termwrapped/pkg/aliases"
	"github.com/Sumatoshi-tech/termwrapped/pkg/complexity"
	"github.com/Sumatoshi-tech/termwrapped/pkg/history"
)

// Default list sizes.
const (
	DefaultTopCommands = 10
	DefaultTopComplex  = 5
	DefaultTopAliases  = 10
)

// Options sizes the ranked lists of a Report.
type Options struct {
	TopCommands int
	TopComplex  int
	TopAliases  int
	// Year restricts the report to one calendar year. 0 means all history.
	Year int
}

// DefaultOptions returns the list sizes used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		TopCommands: DefaultTopCommands,
		TopComplex:  DefaultTopComplex,
		TopAliases:  DefaultTopAliases,
	}
}

// PeakHour describes the busiest hour of the day.
type PeakHour struct {
	Hour            int    `json:"hour" yaml:"hour"`
	Count           int    `json:"count" yaml:"count"`
	TopCommand      string `json:"top_command" yaml:"top_command"`
	TopCommandCount int    `json:"top_command_count" yaml:"top_command_count"`
}

// AliasReport holds every alias-related view.
type AliasReport struct {
	Defined     int             `json:"defined" yaml:"defined"`
	Usage       FrequencyTable  `json:"usage" yaml:"usage"`
	Neglected   []string        `json:"neglected" yaml:"neglected"`
	TopRaw      FrequencyTable  `json:"top_raw" yaml:"top_raw"`
	TopExpanded []ExpandedCount `json:"top_expanded" yaml:"top_expanded"`
}

// AllAliased reports whether aliases are defined and every command started with one.
func (a AliasReport) AllAliased() bool {
	return a.Defined > 0 && len(a.TopRaw) == 0 && len(a.Usage) > 0
}

// Report is the read-only snapshot consumed by every renderer.
type Report struct {
	Year              int                 `json:"year,omitempty" yaml:"year,omitempty"`
	Parse             history.Stats       `json:"parse" yaml:"parse"`
	Totals            Totals              `json:"totals" yaml:"totals"`
	TopBase           FrequencyTable      `json:"top_base" yaml:"top_base"`
	TopFull           FrequencyTable      `json:"top_full" yaml:"top_full"`
	MostComplex       []complexity.Result `json:"most_complex" yaml:"most_complex"`
	AverageComplexity float64             `json:"average_complexity" yaml:"average_complexity"`
	Hourly            HourlyDistribution  `json:"hourly" yaml:"hourly"`
	Weekdays          WeekdayDistribution `json:"weekdays" yaml:"weekdays"`
	Peak              *PeakHour           `json:"peak,omitempty" yaml:"peak,omitempty"`
	LateNight         int                 `json:"late_night" yaml:"late_night"`
	Aliases           AliasReport         `json:"aliases" yaml:"aliases"`
}

// Empty reports whether the snapshot holds no commands.
func (r *Report) Empty() bool {
	return r.Totals.Commands == 0
}

// Build derives every view from entries and the alias table.
func Build(entries []history.Entry, defined aliases.Map, opts Options) *Report {
	if defined == nil {
		defined = aliases.Map{}
	}

	entries = FilterYear(entries, opts.Year)
	hourly := Hourly(entries)
	usage := AliasUsageCounts(defined, entries)

	report := &Report{
		Year:              opts.Year,
		Totals:            ComputeTotals(entries),
		TopBase:           TopBaseCommands(entries, opts.TopCommands),
		TopFull:           TopFullCommands(entries, opts.TopCommands),
		MostComplex:       MostComplexCommands(entries, opts.TopComplex),
		AverageComplexity: AverageComplexity(entries),
		Hourly:            hourly,
		Weekdays:          Weekdays(entries),
		LateNight:         LateNightCount(entries),
		Aliases: AliasReport{
			Defined:     len(defined),
			Usage:       UsageTable(usage, opts.TopAliases),
			Neglected:   NeglectedAliases(defined, usage),
			TopRaw:      TopRawCommandsExcludingAliases(entries, defined, opts.TopCommands),
			TopExpanded: TopExpandedCommands(entries, defined, opts.TopCommands),
		},
	}

	if hour, count, ok := BusiestHour(hourly); ok {
		command, commandCount, _ := HourTopCommand(entries, hour)
		report.Peak = &PeakHour{
			Hour:            hour,
			Count:           count,
			TopCommand:      command,
			TopCommandCount: commandCount,
		}
	}

	return report
}
