// Package aggregate derives the statistics views of a terminal wrapped report.
//
// Every function is a pure transformation of an entry snapshot: inputs are never
// mutated and each call returns freshly allocated results.
package aggregate

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"github.com/Sumatoshi-tech/termwrapped/pkg/complexity"
	"github.com/Sumatoshi-tech/termwrapped/pkg/history"
)

// Count is one row of a frequency table.
type Count struct {
	Key   string `json:"key" yaml:"key"`
	Count int    `json:"count" yaml:"count"`
}

// FrequencyTable is sorted by Count descending. Ties keep first-seen order.
type FrequencyTable []Count

// Total returns the sum of all counts.
func (t FrequencyTable) Total() int {
	total := 0
	for _, row := range t {
		total += row.Count
	}

	return total
}

// Max returns the highest count, or 0 for an empty table.
func (t FrequencyTable) Max() int {
	if len(t) == 0 {
		return 0
	}

	return t[0].Count
}

// counter counts keys while remembering the order they first appeared in.
type counter struct {
	index map[string]int
	rows  FrequencyTable
}

func newCounter() *counter {
	return &counter{index: make(map[string]int)}
}

func (c *counter) add(key string) {
	if i, ok := c.index[key]; ok {
		c.rows[i].Count++

		return
	}

	c.index[key] = len(c.rows)
	c.rows = append(c.rows, Count{Key: key, Count: 1})
}

// top sorts by count (stable, so ties stay in first-seen order) and keeps n rows.
func (c *counter) top(n int) FrequencyTable {
	rows := slices.Clone(c.rows)
	slices.SortStableFunc(rows, func(a, b Count) int {
		return cmp.Compare(b.Count, a.Count)
	})

	return limit(rows, n)
}

// limit keeps the first n items. n <= 0 keeps everything.
func limit[S ~[]E, E any](items S, n int) S {
	if n > 0 && len(items) > n {
		return items[:n]
	}

	if items == nil {
		return S{}
	}

	return items
}

// BaseCommand returns the first whitespace-delimited token of command, or "".
func BaseCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}

// splitFirstToken returns the first token and everything after it, untouched.
func splitFirstToken(command string) (first, rest string) {
	trimmed := strings.TrimLeftFunc(command, unicode.IsSpace)

	end := strings.IndexFunc(trimmed, unicode.IsSpace)
	if end < 0 {
		return trimmed, ""
	}

	return trimmed[:end], trimmed[end:]
}

// TopBaseCommands ranks base commands by frequency.
func TopBaseCommands(entries []history.Entry, n int) FrequencyTable {
	c := newCounter()
	for _, entry := range entries {
		c.add(BaseCommand(entry.Command))
	}

	return c.top(n)
}

// TopFullCommands ranks whole command lines by frequency.
func TopFullCommands(entries []history.Entry, n int) FrequencyTable {
	c := newCounter()
	for _, entry := range entries {
		c.add(entry.Command)
	}

	return c.top(n)
}

// MostComplexCommands scores every entry and returns the n highest. Ties keep file order.
func MostComplexCommands(entries []history.Entry, n int) []complexity.Result {
	results := make([]complexity.Result, 0, len(entries))
	for _, entry := range entries {
		results = append(results, complexity.Score(entry.Command))
	}

	slices.SortStableFunc(results, func(a, b complexity.Result) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return limit(results, n)
}

// AverageComplexity returns the mean score over all entries, 0 when empty.
func AverageComplexity(entries []history.Entry) float64 {
	if len(entries) == 0 {
		return 0
	}

	total := 0
	for _, entry := range entries {
		total += complexity.Score(entry.Command).Score
	}

	return float64(total) / float64(len(entries))
}
