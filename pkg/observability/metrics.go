package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Sumatoshi-tech/termwrapped/pkg/history"
)

// Metric names.
const (
	MetricRuns          = "termwrapped.runs"
	MetricStageDuration = "termwrapped.stage.duration"
	MetricHistoryLines  = "termwrapped.history.lines"
	MetricAliases       = "termwrapped.aliases.defined"
)

const (
	attrStage   = "stage"
	attrStatus  = "status"
	attrOutcome = "outcome"

	// StatusOK and StatusError label run and stage outcomes.
	StatusOK    = "ok"
	StatusError = "error"

	outcomeParsed  = "parsed"
	outcomeSkipped = "skipped"
)

// Stage buckets cover 1ms to 30s; history files are parsed in memory.
var stageBucketBoundaries = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}

// PipelineMetrics holds the instruments recorded by a report run.
type PipelineMetrics struct {
	runs          metric.Int64Counter
	stageDuration metric.Float64Histogram
	historyLines  metric.Int64Counter
	aliases       metric.Int64Gauge
}

// NewPipelineMetrics creates the run instruments from mt.
func NewPipelineMetrics(mt metric.Meter) (*PipelineMetrics, error) {
	runs, err := mt.Int64Counter(MetricRuns,
		metric.WithDescription("Report runs by outcome"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", MetricRuns, err)
	}

	stageDuration, err := mt.Float64Histogram(MetricStageDuration,
		metric.WithDescription("Duration of each pipeline stage"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(stageBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", MetricStageDuration, err)
	}

	historyLines, err := mt.Int64Counter(MetricHistoryLines,
		metric.WithDescription("History lines read, by outcome"),
		metric.WithUnit("{line}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", MetricHistoryLines, err)
	}

	aliases, err := mt.Int64Gauge(MetricAliases,
		metric.WithDescription("Aliases found in the shell config"),
		metric.WithUnit("{alias}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", MetricAliases, err)
	}

	return &PipelineMetrics{
		runs:          runs,
		stageDuration: stageDuration,
		historyLines:  historyLines,
		aliases:       aliases,
	}, nil
}

// RecordStage records how long stage took and whether it failed.
func (pm *PipelineMetrics) RecordStage(ctx context.Context, stage string, duration time.Duration, err error) {
	pm.stageDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String(attrStage, stage),
		attribute.String(attrStatus, statusOf(err)),
	))
}

// RecordParse records parsed and skipped line counts.
func (pm *PipelineMetrics) RecordParse(ctx context.Context, stats history.Stats) {
	pm.historyLines.Add(ctx, int64(stats.Entries), metric.WithAttributes(attribute.String(attrOutcome, outcomeParsed)))
	pm.historyLines.Add(ctx, int64(stats.Skipped), metric.WithAttributes(attribute.String(attrOutcome, outcomeSkipped)))
}

// RecordAliases records the size of the alias table.
func (pm *PipelineMetrics) RecordAliases(ctx context.Context, defined int) {
	pm.aliases.Record(ctx, int64(defined))
}

// RecordRun counts one finished run.
func (pm *PipelineMetrics) RecordRun(ctx context.Context, err error) {
	pm.runs.Add(ctx, 1, metric.WithAttributes(attribute.String(attrStatus, statusOf(err))))
}

func statusOf(err error) string {
	if err != nil {
		return StatusError
	}

	return StatusOK
}
