package observability_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/Sumatoshi-tech/termwrapped/pkg/history"
	"github.com/Sumatoshi-tech/termwrapped/pkg/observability"
)

func setupTestMeter(t *testing.T) (*observability.PipelineMetrics, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	metrics, err := observability.NewPipelineMetrics(mp.Meter("test"))
	require.NoError(t, err)

	return metrics, reader
}

func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()

	var rm metricdata.ResourceMetrics

	require.NoError(t, reader.Collect(context.Background(), &rm))

	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for idx := range rm.ScopeMetrics {
		for midx := range rm.ScopeMetrics[idx].Metrics {
			if rm.ScopeMetrics[idx].Metrics[midx].Name == name {
				return &rm.ScopeMetrics[idx].Metrics[midx]
			}
		}
	}

	return nil
}

func sumByAttr(t *testing.T, m *metricdata.Metrics, key, value string) int64 {
	t.Helper()

	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok)

	for _, dp := range sum.DataPoints {
		if v, found := dp.Attributes.Value(attribute.Key(key)); found && v.AsString() == value {
			return dp.Value
		}
	}

	return 0
}

func TestPipelineMetrics_RecordParse(t *testing.T) {
	t.Parallel()

	metrics, reader := setupTestMeter(t)
	metrics.RecordParse(context.Background(), history.Stats{Lines: 10, Entries: 7, Skipped: 3})

	m := findMetric(collectMetrics(t, reader), observability.MetricHistoryLines)
	require.NotNil(t, m)

	assert.Equal(t, int64(7), sumByAttr(t, m, "outcome", "parsed"))
	assert.Equal(t, int64(3), sumByAttr(t, m, "outcome", "skipped"))
}

func TestPipelineMetrics_RecordRun(t *testing.T) {
	t.Parallel()

	metrics, reader := setupTestMeter(t)
	ctx := context.Background()

	metrics.RecordRun(ctx, nil)
	metrics.RecordRun(ctx, nil)
	metrics.RecordRun(ctx, errors.New("boom"))

	m := findMetric(collectMetrics(t, reader), observability.MetricRuns)
	require.NotNil(t, m)

	assert.Equal(t, int64(2), sumByAttr(t, m, "status", observability.StatusOK))
	assert.Equal(t, int64(1), sumByAttr(t, m, "status", observability.StatusError))
}

func TestPipelineMetrics_RecordStage(t *testing.T) {
	t.Parallel()

	metrics, reader := setupTestMeter(t)
	metrics.RecordStage(context.Background(), "parse", 20*time.Millisecond, nil)

	m := findMetric(collectMetrics(t, reader), observability.MetricStageDuration)
	require.NotNil(t, m)

	hist, ok := m.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(1), hist.DataPoints[0].Count)
}

func TestPipelineMetrics_RecordAliases(t *testing.T) {
	t.Parallel()

	metrics, reader := setupTestMeter(t)
	metrics.RecordAliases(context.Background(), 4)

	m := findMetric(collectMetrics(t, reader), observability.MetricAliases)
	require.NotNil(t, m)

	gauge, ok := m.Data.(metricdata.Gauge[int64])
	require.True(t, ok)
	require.Len(t, gauge.DataPoints, 1)
	assert.Equal(t, int64(4), gauge.DataPoints[0].Value)
}
