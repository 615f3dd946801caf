// Package plot renders a wrapped report as a standalone HTML chart page.
package plot

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Sumatoshi-tech/termwrapped/pkg/aggregate"
	"github.com/Sumatoshi-tech/termwrapped/pkg/terminal"
)

// Chart titles.
const (
	TitleHourly      = "Commands by hour"
	TitleWeekdays    = "Commands by weekday"
	TitleTopCommands = "Top commands"
	TitleAliases     = "Alias usage"
	PageTitle        = "Terminal Wrapped"
)

const (
	heatHigh      = terminal.HeatHigh
	heatMedium    = terminal.HeatMedium
	labelRotation = 30
	seriesName    = "commands"
)

// Options tunes the chart page.
type Options struct {
	Theme Theme
}

// Render writes the HTML chart page for rep to w.
func Render(w io.Writer, rep *aggregate.Report, options Options) error {
	if options.Theme == "" {
		options.Theme = ThemeDark
	}

	chartOpts := NewChartOpts(options.Theme)

	page := components.NewPage()
	page.PageTitle = pageTitle(rep)
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(
		HourlyChart(chartOpts, rep.Hourly),
		WeekdayChart(chartOpts, rep.Weekdays),
		FrequencyChart(chartOpts, TitleTopCommands, rep.TopBase),
	)

	if rep.Aliases.Defined > 0 {
		page.AddCharts(FrequencyChart(chartOpts, TitleAliases, rep.Aliases.Usage))
	}

	err := page.Render(w)
	if err != nil {
		return fmt.Errorf("render chart page: %w", err)
	}

	return nil
}

func pageTitle(rep *aggregate.Report) string {
	if rep.Year > 0 {
		return PageTitle + " " + strconv.Itoa(rep.Year)
	}

	return PageTitle
}

// HourlyChart draws the 24 hourly buckets, colored by relative activity.
func HourlyChart(c *ChartOpts, dist aggregate.HourlyDistribution) *charts.Bar {
	labels := make([]string, 0, aggregate.HoursPerDay)
	counts := make([]int, 0, aggregate.HoursPerDay)

	for hour, count := range dist {
		labels = append(labels, fmt.Sprintf("%02d", hour))
		counts = append(counts, count)
	}

	subtitle := fmt.Sprintf("%d commands", dist.Total())

	return heatBar(c, TitleHourly, subtitle, labels, counts, 0)
}

// WeekdayChart draws activity per weekday, Sunday first.
func WeekdayChart(c *ChartOpts, dist aggregate.WeekdayDistribution) *charts.Bar {
	labels := make([]string, 0, len(dist))
	counts := make([]int, 0, len(dist))

	for day, count := range dist {
		labels = append(labels, time.Weekday(day).String()[:3])
		counts = append(counts, count)
	}

	return heatBar(c, TitleWeekdays, "", labels, counts, 0)
}

// FrequencyChart draws a ranked frequency table.
func FrequencyChart(c *ChartOpts, title string, table aggregate.FrequencyTable) *charts.Bar {
	labels := make([]string, 0, len(table))
	counts := make([]int, 0, len(table))

	for _, row := range table {
		labels = append(labels, row.Key)
		counts = append(counts, row.Count)
	}

	return heatBar(c, title, "", labels, counts, labelRotation)
}

func heatBar(c *ChartOpts, title, subtitle string, labels []string, counts []int, rotate float64) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(c.Init()),
		charts.WithTitleOpts(c.Title(title, subtitle)),
		charts.WithTooltipOpts(c.Tooltip()),
		charts.WithGridOpts(c.Grid()),
		charts.WithXAxisOpts(c.XAxis(rotate)),
		charts.WithYAxisOpts(c.YAxis(seriesName)),
	)

	maxCount := 0
	for _, count := range counts {
		maxCount = max(maxCount, count)
	}

	data := make([]opts.BarData, len(counts))
	for i, count := range counts {
		data[i] = opts.BarData{
			Value:     count,
			ItemStyle: &opts.ItemStyle{Color: c.HeatColor(aggregate.Ratio(count, maxCount))},
		}
	}

	bar.SetXAxis(labels)
	bar.AddSeries(seriesName, data)

	return bar
}
