package aggregate

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Sumatoshi-tech/termwrapped/pkg/aliases"
	"github.com/Sumatoshi-tech/termwrapped/pkg/history"
)

// ExpandedCount is a frequency row for an alias-expanded command line.
// Alias names the alias whose expansion the line starts with, if any.
type ExpandedCount struct {
	Key   string `json:"key" yaml:"key"`
	Count int    `json:"count" yaml:"count"`
	Alias string `json:"alias,omitempty" yaml:"alias,omitempty"`
}

// TopRawCommandsExcludingAliases ranks base commands, ignoring lines that start with an alias.
// An empty table means every command was aliased.
func TopRawCommandsExcludingAliases(entries []history.Entry, defined aliases.Map, n int) FrequencyTable {
	c := newCounter()

	for _, entry := range entries {
		base := BaseCommand(entry.Command)
		if defined.Has(base) {
			continue
		}

		c.add(base)
	}

	return c.top(n)
}

// ExpandCommand replaces a leading alias with its expansion. The rest of the line is kept as is.
func ExpandCommand(command string, defined aliases.Map) string {
	first, rest := splitFirstToken(command)

	expansion, ok := defined[first]
	if !ok {
		return command
	}

	return expansion + rest
}

// TopExpandedCommands ranks command lines after alias expansion and attributes each
// line to the alias whose expansion it starts with.
func TopExpandedCommands(entries []history.Entry, defined aliases.Map, n int) []ExpandedCount {
	c := newCounter()
	for _, entry := range entries {
		c.add(ExpandCommand(entry.Command, defined))
	}

	top := c.top(n)
	rows := make([]ExpandedCount, 0, len(top))

	for _, row := range top {
		rows = append(rows, ExpandedCount{
			Key:   row.Key,
			Count: row.Count,
			Alias: AttributeAlias(row.Key, defined),
		})
	}

	return rows
}

// AttributeAlias returns the alias whose expansion prefixes command on a word
// boundary. When several match, the longest expansion wins, then the smallest alias name.
func AttributeAlias(command string, defined aliases.Map) string {
	best := ""
	bestLen := 0

	for name, expansion := range defined {
		if !prefixesWord(command, expansion) {
			continue
		}

		if len(expansion) > bestLen || (len(expansion) == bestLen && name < best) {
			best, bestLen = name, len(expansion)
		}
	}

	return best
}

// prefixesWord reports whether prefix starts command and ends at whitespace or at the end.
func prefixesWord(command, prefix string) bool {
	rest, ok := strings.CutPrefix(command, prefix)
	if !ok || prefix == "" {
		return false
	}

	if rest == "" {
		return true
	}

	first, _ := utf8.DecodeRuneInString(rest)
	last, _ := utf8.DecodeLastRuneInString(prefix)

	return unicode.IsSpace(first) || unicode.IsSpace(last)
}

// AliasUsageCounts counts how often each alias was typed as the first token.
// Aliases that were never used are absent.
func AliasUsageCounts(defined aliases.Map, entries []history.Entry) map[string]int {
	usage := make(map[string]int)

	for _, entry := range entries {
		base := BaseCommand(entry.Command)
		if defined.Has(base) {
			usage[base]++
		}
	}

	return usage
}

// NeglectedAliases lists defined aliases missing from usage, sorted by name.
func NeglectedAliases(defined aliases.Map, usage map[string]int) []string {
	neglected := []string{}

	for _, name := range defined.Names() {
		if _, used := usage[name]; !used {
			neglected = append(neglected, name)
		}
	}

	return neglected
}

// UsageTable orders alias usage by count descending, then by name.
func UsageTable(usage map[string]int, n int) FrequencyTable {
	rows := make(FrequencyTable, 0, len(usage))
	for name, count := range usage {
		rows = append(rows, Count{Key: name, Count: count})
	}

	slices.SortFunc(rows, func(a, b Count) int {
		if byCount := cmp.Compare(b.Count, a.Count); byCount != 0 {
			return byCount
		}

		return cmp.Compare(a.Key, b.Key)
	})

	return limit(rows, n)
}
