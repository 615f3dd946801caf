// Package pipeline runs one report: load history and aliases, then aggregate.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/termwrapped/pkg/aggregate"
	"github.com/Sumatoshi-tech/termwrapped/pkg/aliases"
	"github.com/Sumatoshi-tech/termwrapped/pkg/history"
	"github.com/Sumatoshi-tech/termwrapped/pkg/observability"
	"github.com/Sumatoshi-tech/termwrapped/pkg/shellenv"
)

const tracerName = "github.com/Sumatoshi-tech/termwrapped/internal/pipeline"

// Stage names used for spans, logs and metrics.
const (
	StageHistory   = "history"
	StageAliases   = "aliases"
	StageAggregate = "aggregate"
)

// Fatal pipeline errors. Nothing is rendered after either.
var (
	ErrHistoryUnavailable = errors.New("shell history unavailable")
	ErrAliasesUnavailable = errors.New("alias config unreadable")
)

// Sources names the inputs of one run.
type Sources struct {
	HistoryFile string
	Format      history.Format
	// AliasFile may be empty or missing; both mean no aliases.
	AliasFile string
	Location  *time.Location
}

// SourcesFor builds Sources from a detected shell.
func SourcesFor(shell shellenv.Shell) Sources {
	return Sources{
		HistoryFile: shell.HistoryFile,
		Format:      shell.Format,
		AliasFile:   shell.ConfigFile,
	}
}

// Deps are the collaborators of a Runner. Every field is optional.
type Deps struct {
	Tracer  trace.Tracer
	Metrics *observability.PipelineMetrics
	Logger  *slog.Logger
}

// Runner executes report runs.
type Runner struct {
	tracer  trace.Tracer
	metrics *observability.PipelineMetrics
	logger  *slog.Logger
}

// New creates a Runner.
func New(deps Deps) *Runner {
	runner := &Runner{
		tracer:  deps.Tracer,
		metrics: deps.Metrics,
		logger:  deps.Logger,
	}

	if runner.tracer == nil {
		runner.tracer = otel.Tracer(tracerName)
	}

	if runner.logger == nil {
		runner.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return runner
}

// Run loads src and builds the report. On error no report is returned.
func (r *Runner) Run(ctx context.Context, src Sources, opts aggregate.Options) (*aggregate.Report, error) {
	ctx, span := r.tracer.Start(ctx, "termwrapped.run",
		trace.WithAttributes(
			attribute.String("history.format", string(src.Format)),
			attribute.Int("report.year", opts.Year),
		))
	defer span.End()

	rep, err := r.run(ctx, src, opts)

	if r.metrics != nil {
		r.metrics.RecordRun(ctx, err)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	return rep, nil
}

func (r *Runner) run(ctx context.Context, src Sources, opts aggregate.Options) (*aggregate.Report, error) {
	var (
		entries []history.Entry
		stats   history.Stats
	)

	err := r.stage(ctx, StageHistory, func(ctx context.Context) error {
		var loadErr error

		entries, stats, loadErr = r.loadHistory(src)
		if loadErr != nil {
			return loadErr
		}

		if r.metrics != nil {
			r.metrics.RecordParse(ctx, stats)
		}

		r.logger.DebugContext(ctx, "history parsed",
			slog.String("file", src.HistoryFile),
			slog.Int("entries", stats.Entries),
			slog.Int("skipped", stats.Skipped))

		return nil
	})
	if err != nil {
		return nil, err
	}

	var defined aliases.Map

	err = r.stage(ctx, StageAliases, func(ctx context.Context) error {
		var loadErr error

		defined, loadErr = loadAliases(src.AliasFile)
		if loadErr != nil {
			return loadErr
		}

		if r.metrics != nil {
			r.metrics.RecordAliases(ctx, len(defined))
		}

		r.logger.DebugContext(ctx, "aliases loaded",
			slog.String("file", src.AliasFile),
			slog.Int("count", len(defined)))

		return nil
	})
	if err != nil {
		return nil, err
	}

	var rep *aggregate.Report

	err = r.stage(ctx, StageAggregate, func(context.Context) error {
		rep = aggregate.Build(entries, defined, opts)
		rep.Parse = stats

		return nil
	})
	if err != nil {
		return nil, err
	}

	if rep.Empty() {
		r.logger.InfoContext(ctx, "no timestamped commands found", slog.String("file", src.HistoryFile))
	}

	return rep, nil
}

// stage runs fn inside a child span and records its duration.
func (r *Runner) stage(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, span := r.tracer.Start(ctx, "termwrapped.stage."+name)
	defer span.End()

	start := time.Now()
	err := fn(ctx)

	if r.metrics != nil {
		r.metrics.RecordStage(ctx, name, time.Since(start), err)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return err
}

func (r *Runner) loadHistory(src Sources) ([]history.Entry, history.Stats, error) {
	if src.HistoryFile == "" {
		return nil, history.Stats{}, fmt.Errorf("%w: no history file configured", ErrHistoryUnavailable)
	}

	format := src.Format
	if format == "" {
		format = history.FormatZsh
	}

	parser := history.NewParser(history.WithFormat(format), history.WithLocation(src.Location))

	entries, stats, err := parser.ParseFile(src.HistoryFile)
	if err != nil {
		return nil, stats, fmt.Errorf("%w: %w", ErrHistoryUnavailable, err)
	}

	return entries, stats, nil
}

func loadAliases(path string) (aliases.Map, error) {
	if path == "" {
		return aliases.Map{}, nil
	}

	defined, err := aliases.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAliasesUnavailable, err)
	}

	return defined, nil
}
