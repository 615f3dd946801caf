package aggregate_test

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/termwrapped/pkg/aggregate"
	"github.com/Sumatoshi-tech/termwrapped/pkg/aliases"
	"github.com/Sumatoshi-tech/termwrapped/pkg/history"
)

func at(hour int, command string) history.Entry {
	return history.Entry{
		Command:   command,
		Timestamp: time.Date(2024, time.March, 4, hour, 30, 0, 0, time.UTC),
	}
}

func commands(cmds ...string) []history.Entry {
	entries := make([]history.Entry, 0, len(cmds))
	for i, cmd := range cmds {
		entries = append(entries, at(i%aggregate.HoursPerDay, cmd))
	}

	return entries
}

func TestTopFullCommands_FirstSeenTieBreak(t *testing.T) {
	t.Parallel()

	entries := commands("ls -la", "ls", "cd /tmp", "ls -la")

	assert.Equal(t, aggregate.FrequencyTable{
		{Key: "ls -la", Count: 2},
		{Key: "ls", Count: 1},
	}, aggregate.TopFullCommands(entries, 2))

	assert.Equal(t, aggregate.FrequencyTable{
		{Key: "ls -la", Count: 2},
		{Key: "ls", Count: 1},
		{Key: "cd /tmp", Count: 1},
	}, aggregate.TopFullCommands(entries, 0))
}

func TestTopBaseCommands(t *testing.T) {
	t.Parallel()

	entries := commands("vim a", "git status", "git push", "vim b", "   ", "make", "git log")

	got := aggregate.TopBaseCommands(entries, 3)

	assert.Equal(t, aggregate.FrequencyTable{
		{Key: "git", Count: 3},
		{Key: "vim", Count: 2},
		{Key: "", Count: 1},
	}, got)
}

func TestFrequencyCountsSumToEntries(t *testing.T) {
	t.Parallel()

	entries := commands("a 1", "b", "a 2", "c", "a 1", "", "b x")

	assert.Equal(t, len(entries), aggregate.TopBaseCommands(entries, 0).Total())
	assert.Equal(t, len(entries), aggregate.TopFullCommands(entries, 0).Total())
}

func TestMostComplexCommands(t *testing.T) {
	t.Parallel()

	entries := commands("ls", "a | b", "c && d", "e | f", "echo $(date)")

	got := aggregate.MostComplexCommands(entries, 3)
	require.Len(t, got, 3)

	assert.Equal(t, "echo $(date)", got[0].Command)
	assert.Equal(t, 3, got[0].Score)
	// "c && d" scores 2 and outranks the single-pipe lines.
	assert.Equal(t, "c && d", got[1].Command)
	// "a | b" and "e | f" tie; the earlier one wins.
	assert.Equal(t, "a | b", got[2].Command)
}

func TestHourlyAndBusiestHour(t *testing.T) {
	t.Parallel()

	entries := []history.Entry{at(9, "a"), at(14, "b"), at(9, "c"), at(14, "d"), at(2, "e")}

	dist := aggregate.Hourly(entries)
	assert.Len(t, dist, aggregate.HoursPerDay)
	assert.Equal(t, 2, dist[9])
	assert.Equal(t, 2, dist[14])
	assert.Equal(t, 0, dist[23])
	assert.Equal(t, len(entries), dist.Total())
	assert.Equal(t, 2, dist.Max())

	hour, count, ok := aggregate.BusiestHour(dist)
	assert.True(t, ok)
	assert.Equal(t, 9, hour, "ties resolve to the earliest hour")
	assert.Equal(t, 2, count)
}

func TestBusiestHour_Empty(t *testing.T) {
	t.Parallel()

	hour, count, ok := aggregate.BusiestHour(aggregate.HourlyDistribution{})
	assert.False(t, ok)
	assert.Zero(t, hour)
	assert.Zero(t, count)
}

func TestRatio_GuardsZeroMax(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0, aggregate.Ratio(0, 0), 1e-9)
	assert.InDelta(t, 0, aggregate.Ratio(5, 0), 1e-9)
	assert.InDelta(t, 0.5, aggregate.Ratio(5, 10), 1e-9)
}

func TestLateNightCount(t *testing.T) {
	t.Parallel()

	entries := []history.Entry{at(0, "a"), at(4, "b"), at(5, "c"), at(23, "d"), at(3, "e")}

	assert.Equal(t, 3, aggregate.LateNightCount(entries))
}

func TestHourTopCommand(t *testing.T) {
	t.Parallel()

	entries := []history.Entry{at(10, "make"), at(10, "go test ./..."), at(10, "go test ./..."), at(11, "ls")}

	command, count, ok := aggregate.HourTopCommand(entries, 10)
	assert.True(t, ok)
	assert.Equal(t, "go test ./...", command)
	assert.Equal(t, 2, count)

	_, _, ok = aggregate.HourTopCommand(entries, 3)
	assert.False(t, ok)
}

func TestWeekdays(t *testing.T) {
	t.Parallel()

	// 2024-03-04 is a Monday.
	entries := []history.Entry{at(1, "a"), at(2, "b")}
	dist := aggregate.Weekdays(entries)

	assert.Equal(t, 2, dist[time.Monday])
	assert.Equal(t, 2, dist.Max())
}

func TestFilterYear(t *testing.T) {
	t.Parallel()

	old := history.Entry{Command: "old", Timestamp: time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC)}
	entries := []history.Entry{old, at(1, "new")}

	assert.Len(t, aggregate.FilterYear(entries, 0), 2)

	filtered := aggregate.FilterYear(entries, 2024)
	require.Len(t, filtered, 1)
	assert.Equal(t, "new", filtered[0].Command)
}

func TestComputeTotals(t *testing.T) {
	t.Parallel()

	first := history.Entry{Command: "git status", Timestamp: time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC)}
	last := history.Entry{Command: "git push", Timestamp: time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC)}
	entries := []history.Entry{last, first, at(3, "git status")}

	totals := aggregate.ComputeTotals(entries)

	assert.Equal(t, 3, totals.Commands)
	assert.Equal(t, 2, totals.Unique)
	assert.Equal(t, 1, totals.UniqueBase)
	assert.Equal(t, 3, totals.ActiveDays)
	assert.Equal(t, first.Timestamp, totals.FirstCommand)
	assert.Equal(t, at(3, "").Timestamp, totals.LastCommand)
}

func TestAliasViews(t *testing.T) {
	t.Parallel()

	defined := aliases.Map{"gs": "git status", "ll": "ls -la", "k": "kubectl"}
	entries := commands("gs", "ll /tmp", "gs", "git log", "make")

	usage := aggregate.AliasUsageCounts(defined, entries)
	assert.Equal(t, map[string]int{"gs": 2, "ll": 1}, usage)

	neglected := aggregate.NeglectedAliases(defined, usage)
	assert.Equal(t, []string{"k"}, neglected)

	for _, name := range defined.Names() {
		_, used := usage[name]
		assert.NotEqual(t, used, slices.Contains(neglected, name), "alias %s must be used xor neglected", name)
	}

	assert.Equal(t, aggregate.FrequencyTable{
		{Key: "gs", Count: 2},
		{Key: "ll", Count: 1},
	}, aggregate.UsageTable(usage, 0))

	assert.Equal(t, aggregate.FrequencyTable{
		{Key: "git", Count: 1},
		{Key: "make", Count: 1},
	}, aggregate.TopRawCommandsExcludingAliases(entries, defined, 0))
}

func TestTopRawCommandsExcludingAliases_AllAliased(t *testing.T) {
	t.Parallel()

	defined := aliases.Map{"gs": "git status"}
	got := aggregate.TopRawCommandsExcludingAliases(commands("gs", "gs -s"), defined, 5)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExpandCommand(t *testing.T) {
	t.Parallel()

	defined := aliases.Map{"ll": "ls -la", "g": "git"}

	assert.Equal(t, "ls -la /tmp  --color", aggregate.ExpandCommand("ll /tmp  --color", defined))
	assert.Equal(t, "git", aggregate.ExpandCommand("g", defined))
	assert.Equal(t, "echo ll", aggregate.ExpandCommand("echo ll", defined))
	assert.Empty(t, aggregate.ExpandCommand("", defined))
}

func TestTopExpandedCommands(t *testing.T) {
	t.Parallel()

	defined := aliases.Map{"gs": "git status", "ll": "ls -la"}
	entries := commands("gs", "git status", "ll src", "make")

	got := aggregate.TopExpandedCommands(entries, defined, 0)

	assert.Equal(t, []aggregate.ExpandedCount{
		{Key: "git status", Count: 2, Alias: "gs"},
		{Key: "ls -la src", Count: 1, Alias: "ll"},
		{Key: "make", Count: 1},
	}, got)
}

func TestAttributeAlias_LongestExpansionWins(t *testing.T) {
	t.Parallel()

	defined := aliases.Map{"g": "git", "gs": "git status", "gst": "git status", "e": ""}

	assert.Equal(t, "gs", aggregate.AttributeAlias("git status -sb", defined))
	assert.Equal(t, "g", aggregate.AttributeAlias("git log", defined))
	assert.Empty(t, aggregate.AttributeAlias("make", defined))
}

func TestAttributeAlias_MatchEndsAtWordBoundary(t *testing.T) {
	t.Parallel()

	defined := aliases.Map{"g": "git", "k": "kubectl -n "}

	tests := []struct {
		name    string
		command string
		want    string
	}{
		{name: "exact", command: "git", want: "g"},
		{name: "followed_by_space", command: "git push", want: "g"},
		{name: "longer_word", command: "gitk --all", want: ""},
		{name: "expansion_ends_in_space", command: "kubectl -n prod get pods", want: "k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, aggregate.AttributeAlias(tt.command, defined))
		})
	}
}

func TestBuild_EmptyHistory(t *testing.T) {
	t.Parallel()

	report := aggregate.Build(nil, nil, aggregate.DefaultOptions())

	assert.True(t, report.Empty())
	assert.Empty(t, report.TopBase)
	assert.Empty(t, report.TopFull)
	assert.Empty(t, report.MostComplex)
	assert.Nil(t, report.Peak)
	assert.Zero(t, report.LateNight)
	assert.InDelta(t, 0, report.AverageComplexity, 1e-9)
	assert.Equal(t, aggregate.HourlyDistribution{}, report.Hourly)
	assert.Zero(t, report.Aliases.Defined)
	assert.False(t, report.Aliases.AllAliased())
}

func TestBuild_Populated(t *testing.T) {
	t.Parallel()

	defined := aliases.Map{"gs": "git status", "unused": "true"}
	entries := []history.Entry{at(22, "gs"), at(22, "gs"), at(1, "make build | tee log"), at(9, "ls")}

	report := aggregate.Build(entries, defined, aggregate.Options{TopCommands: 2, TopComplex: 1, TopAliases: 5})

	assert.Equal(t, 4, report.Totals.Commands)
	assert.Len(t, report.TopBase, 2)
	assert.Equal(t, "gs", report.TopBase[0].Key)
	require.Len(t, report.MostComplex, 1)
	assert.Equal(t, "make build | tee log", report.MostComplex[0].Command)
	require.NotNil(t, report.Peak)
	assert.Equal(t, 22, report.Peak.Hour)
	assert.Equal(t, "gs", report.Peak.TopCommand)
	assert.Equal(t, 1, report.LateNight)
	assert.Equal(t, []string{"unused"}, report.Aliases.Neglected)
	assert.Equal(t, 2, report.Aliases.Defined)
	assert.Equal(t, "git status", report.Aliases.TopExpanded[0].Key)
}

func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()

	defined := aliases.Map{"a": "x", "b": "x", "c": "x y"}
	entries := commands("a 1", "b 2", "c", "x y z", "a 1")

	first := aggregate.Build(entries, defined, aggregate.DefaultOptions())

	for range 20 {
		assert.Equal(t, first, aggregate.Build(entries, defined, aggregate.DefaultOptions()))
	}
}
