package aggregate

import (
	"time"

	"github.com/Sumatoshi-tech/termwrapped/pkg/history"
)

// HoursPerDay is the number of buckets in an HourlyDistribution.
const HoursPerDay = 24

// Night owl window: [lateNightStart, lateNightEnd).
const (
	lateNightStart = 0
	lateNightEnd   = 5
)

// HourlyDistribution counts commands per hour of day. Every hour is present.
type HourlyDistribution [HoursPerDay]int

// Max returns the largest bucket, 0 when every bucket is empty.
func (d HourlyDistribution) Max() int {
	highest := 0
	for _, count := range d {
		highest = max(highest, count)
	}

	return highest
}

// Total returns the sum over all hours.
func (d HourlyDistribution) Total() int {
	total := 0
	for _, count := range d {
		total += count
	}

	return total
}

// WeekdayDistribution counts commands per weekday, indexed by time.Weekday.
type WeekdayDistribution [7]int

// Max returns the largest bucket.
func (d WeekdayDistribution) Max() int {
	highest := 0
	for _, count := range d {
		highest = max(highest, count)
	}

	return highest
}

// Ratio returns count/maxCount, or 0 when maxCount is not positive.
func Ratio(count, maxCount int) float64 {
	if maxCount <= 0 {
		return 0
	}

	return float64(count) / float64(maxCount)
}

// Hourly buckets entries by the hour of their timestamp.
func Hourly(entries []history.Entry) HourlyDistribution {
	var dist HourlyDistribution
	for _, entry := range entries {
		dist[entry.Timestamp.Hour()]++
	}

	return dist
}

// Weekdays buckets entries by the weekday of their timestamp.
func Weekdays(entries []history.Entry) WeekdayDistribution {
	var dist WeekdayDistribution
	for _, entry := range entries {
		dist[entry.Timestamp.Weekday()]++
	}

	return dist
}

// BusiestHour returns the hour with the most commands. Ties go to the earliest hour.
// ok is false when the distribution holds no commands at all.
func BusiestHour(dist HourlyDistribution) (hour, count int, ok bool) {
	for h, c := range dist {
		if c > count {
			hour, count = h, c
		}
	}

	return hour, count, count > 0
}

// LateNightCount counts entries between midnight and 5 AM.
func LateNightCount(entries []history.Entry) int {
	total := 0
	for _, entry := range entries {
		if h := entry.Timestamp.Hour(); h >= lateNightStart && h < lateNightEnd {
			total++
		}
	}

	return total
}

// HourTopCommand returns the most frequent full command run during hour.
func HourTopCommand(entries []history.Entry, hour int) (command string, count int, ok bool) {
	c := newCounter()

	for _, entry := range entries {
		if entry.Timestamp.Hour() == hour {
			c.add(entry.Command)
		}
	}

	top := c.top(1)
	if len(top) == 0 {
		return "", 0, false
	}

	return top[0].Key, top[0].Count, true
}

// FilterYear keeps the entries whose timestamp falls in year. year <= 0 keeps all.
func FilterYear(entries []history.Entry, year int) []history.Entry {
	if year <= 0 {
		return entries
	}

	filtered := make([]history.Entry, 0, len(entries))

	for _, entry := range entries {
		if entry.Timestamp.Year() == year {
			filtered = append(filtered, entry)
		}
	}

	return filtered
}

// Totals summarizes the size and span of the history.
type Totals struct {
	Commands     int       `json:"commands" yaml:"commands"`
	Unique       int       `json:"unique" yaml:"unique"`
	UniqueBase   int       `json:"unique_base" yaml:"unique_base"`
	ActiveDays   int       `json:"active_days" yaml:"active_days"`
	FirstCommand time.Time `json:"first_command,omitzero" yaml:"first_command,omitempty"`
	LastCommand  time.Time `json:"last_command,omitzero" yaml:"last_command,omitempty"`
}

// ComputeTotals counts commands, distinct commands and active days.
func ComputeTotals(entries []history.Entry) Totals {
	unique := make(map[string]struct{})
	uniqueBase := make(map[string]struct{})
	days := make(map[string]struct{})

	var totals Totals

	for _, entry := range entries {
		unique[entry.Command] = struct{}{}
		uniqueBase[BaseCommand(entry.Command)] = struct{}{}
		days[entry.Timestamp.Format(time.DateOnly)] = struct{}{}

		if totals.FirstCommand.IsZero() || entry.Timestamp.Before(totals.FirstCommand) {
			totals.FirstCommand = entry.Timestamp
		}

		if entry.Timestamp.After(totals.LastCommand) {
			totals.LastCommand = entry.Timestamp
		}
	}

	totals.Commands = len(entries)
	totals.Unique = len(unique)
	totals.UniqueBase = len(uniqueBase)
	totals.ActiveDays = len(days)

	return totals
}
