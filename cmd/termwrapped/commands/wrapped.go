// Package commands holds the cobra commands of the termwrapped CLI.
package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/termwrapped/internal/config"
	"github.com/Sumatoshi-tech/termwrapped/internal/pipeline"
	"github.com/Sumatoshi-tech/termwrapped/pkg/aggregate"
	"github.com/Sumatoshi-tech/termwrapped/pkg/history"
	"github.com/Sumatoshi-tech/termwrapped/pkg/observability"
	"github.com/Sumatoshi-tech/termwrapped/pkg/pager"
	"github.com/Sumatoshi-tech/termwrapped/pkg/plot"
	"github.com/Sumatoshi-tech/termwrapped/pkg/report"
	"github.com/Sumatoshi-tech/termwrapped/pkg/shellenv"
	"github.com/Sumatoshi-tech/termwrapped/pkg/terminal"
	"github.com/Sumatoshi-tech/termwrapped/pkg/version"
)

const outputFilePerm = 0o644

// ErrNoHome is returned when no history path was given and $HOME is unknown.
var ErrNoHome = errors.New("cannot locate home directory")

// lineInput is a pager input that owns a terminal.
type lineInput interface {
	pager.LineReader
	Close() error
}

// WrappedCommand holds flags and dependencies of the root command.
type WrappedCommand struct {
	configPath  string
	historyPath string
	aliasesPath string
	shell       string
	format      string
	outputPath  string
	inputPath   string
	metricsFile string
	logLevel    string
	top         int
	year        int
	noColor     bool
	interactive bool
	logJSON     bool

	getenv      func(string) string
	homeDir     func() (string, error)
	terminalCfg func() terminal.Config
	isTerminal  func() bool
	newInput    func() (lineInput, error)
}

// NewWrappedCommand creates the root command that renders the report.
func NewWrappedCommand() *cobra.Command {
	return newWrappedCommandWithDeps(&WrappedCommand{
		getenv:      os.Getenv,
		homeDir:     os.UserHomeDir,
		terminalCfg: terminal.NewConfig,
		isTerminal:  terminal.IsInteractive,
		newInput: func() (lineInput, error) {
			return pager.NewReadlineInput()
		},
	})
}

func newWrappedCommandWithDeps(wc *WrappedCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "termwrapped",
		Short: "Your year in the terminal, wrapped",
		Long: `termwrapped reads your shell history and aliases and shows which commands
you ran most, how complex they were, when you were busiest and how well
your aliases pulled their weight.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          wc.run,
	}

	flags := cmd.Flags()
	flags.StringVar(&wc.configPath, "config", "", "Config file (default: .termwrapped.yaml in CWD or $HOME)")
	flags.StringVar(&wc.historyPath, "history", "", "History file (default: derived from the shell)")
	flags.StringVar(&wc.aliasesPath, "aliases", "", "Shell config holding aliases (default: derived from the shell)")
	flags.StringVar(&wc.shell, "shell", "", "Shell whose files to read: zsh or bash (default: $SHELL)")
	flags.StringVar(&wc.format, "format", config.DefaultReportFormat, "Output format: "+strings.Join(config.Formats, ", "))
	flags.StringVarP(&wc.outputPath, "output", "o", "", "Write the report to a file instead of stdout")
	flags.StringVar(&wc.inputPath, "input", "", "Re-render a report saved with --format json")
	flags.StringVar(&wc.metricsFile, "metrics-file", "", "Write run metrics in Prometheus text format")
	flags.StringVar(&wc.logLevel, "log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	flags.IntVar(&wc.top, "top", config.DefaultReportTop, "Rows in the ranked lists (0 = no limit)")
	flags.IntVar(&wc.year, "year", 0, "Only count commands from this calendar year (0 = all)")
	flags.BoolVar(&wc.noColor, "no-color", false, "Disable colored output")
	flags.BoolVarP(&wc.interactive, "interactive", "i", false, "Page through the report one section at a time")
	flags.BoolVar(&wc.logJSON, "log-json", false, "Emit logs as JSON")

	return cmd
}

func (wc *WrappedCommand) run(cmd *cobra.Command, _ []string) (err error) {
	cfg, err := config.LoadConfig(wc.configPath)
	if err != nil {
		return err
	}

	wc.applyFlags(cmd, cfg)

	err = cfg.Validate()
	if err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	obsCfg := cfg.Observability()
	obsCfg.LogWriter = cmd.ErrOrStderr()
	obsCfg.ServiceVersion = version.Version

	if wc.inputPath != "" {
		obsCfg.Mode = observability.ModeRerender
	}

	providers, err := observability.Init(obsCfg)
	if err != nil {
		return fmt.Errorf("init observability: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	defer func() {
		err = errors.Join(err, providers.Shutdown(context.WithoutCancel(ctx)))
	}()

	rep, err := wc.loadReport(ctx, cfg, providers)
	if err != nil {
		return err
	}

	return wc.write(cmd, cfg, rep)
}

// applyFlags lets explicitly set flags override file and env values.
func (wc *WrappedCommand) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	overrideString := func(name string, target *string, value string) {
		if flags.Changed(name) {
			*target = value
		}
	}

	overrideString("history", &cfg.History.File, wc.historyPath)
	overrideString("aliases", &cfg.Aliases.File, wc.aliasesPath)
	overrideString("shell", &cfg.Shell, wc.shell)
	overrideString("format", &cfg.Report.Format, wc.format)
	overrideString("metrics-file", &cfg.Telemetry.MetricsFile, wc.metricsFile)
	overrideString("log-level", &cfg.Logging.Level, wc.logLevel)

	if flags.Changed("top") {
		cfg.Report.Top = wc.top
	}

	if flags.Changed("year") {
		cfg.Report.Year = wc.year
	}

	if flags.Changed("no-color") {
		cfg.Output.NoColor = wc.noColor
	}

	if flags.Changed("interactive") {
		cfg.Output.Interactive = wc.interactive
	}

	if flags.Changed("log-json") {
		cfg.Logging.JSON = wc.logJSON
	}
}

func (wc *WrappedCommand) loadReport(
	ctx context.Context, cfg *config.Config, providers observability.Providers,
) (*aggregate.Report, error) {
	if wc.inputPath != "" {
		providers.Logger.DebugContext(ctx, "re-rendering saved report", "input", wc.inputPath)

		return report.LoadJSONFile(wc.inputPath)
	}

	src, err := wc.resolveSources(cfg)
	if err != nil {
		return nil, err
	}

	metrics, err := observability.NewPipelineMetrics(providers.Meter)
	if err != nil {
		return nil, fmt.Errorf("create metrics: %w", err)
	}

	runner := pipeline.New(pipeline.Deps{
		Tracer:  providers.Tracer,
		Metrics: metrics,
		Logger:  providers.Logger,
	})

	return runner.Run(ctx, src, cfg.ReportOptions())
}

// resolveSources starts from the detected shell's layout and applies explicit settings on top.
// An unknown shell is tolerated when the history file was given.
func (wc *WrappedCommand) resolveSources(cfg *config.Config) (pipeline.Sources, error) {
	loc, err := cfg.Location()
	if err != nil {
		return pipeline.Sources{}, err
	}

	var format history.Format

	if cfg.History.Format != "" {
		format, err = history.ParseFormat(cfg.History.Format)
		if err != nil {
			return pipeline.Sources{}, err
		}
	}

	var src pipeline.Sources

	shell, err := wc.detectShell(cfg.Shell)
	if err == nil {
		src = pipeline.SourcesFor(shell)
	} else if cfg.History.File == "" {
		return pipeline.Sources{}, err
	}

	src.Location = loc

	if cfg.History.File != "" {
		src.HistoryFile = cfg.History.File
	}

	if cfg.Aliases.File != "" {
		src.AliasFile = cfg.Aliases.File
	}

	if format != "" {
		src.Format = format
	}

	return src, nil
}

func (wc *WrappedCommand) detectShell(name string) (shellenv.Shell, error) {
	home, err := wc.homeDir()
	if err != nil {
		return shellenv.Shell{}, fmt.Errorf("%w: %w", ErrNoHome, err)
	}

	if name != "" {
		return shellenv.Lookup(name, home)
	}

	return shellenv.Detect(wc.getenv("SHELL"), home)
}

// write renders to stdout, or to --output only once rendering has succeeded.
func (wc *WrappedCommand) write(cmd *cobra.Command, cfg *config.Config, rep *aggregate.Report) error {
	if wc.outputPath == "" {
		return wc.render(cmd.OutOrStdout(), cfg, rep, true)
	}

	return writeOutput(wc.outputPath, func(w io.Writer) error {
		return wc.render(w, cfg, rep, false)
	})
}

// writeOutput buffers render and replaces path only when render succeeds.
func writeOutput(path string, render func(io.Writer) error) error {
	var buf bytes.Buffer

	err := render(&buf)
	if err != nil {
		return err
	}

	err = os.WriteFile(path, buf.Bytes(), outputFilePerm)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

func (wc *WrappedCommand) render(out io.Writer, cfg *config.Config, rep *aggregate.Report, toStdout bool) error {
	switch cfg.Report.Format {
	case config.FormatJSON:
		return report.EncodeJSON(out, rep)
	case config.FormatYAML:
		return report.EncodeYAML(out, rep)
	case config.FormatPlot:
		return plot.Render(out, rep, plot.Options{Theme: plot.Theme(cfg.Report.Theme)})
	default:
		return wc.writeText(out, cfg, rep, toStdout)
	}
}

func (wc *WrappedCommand) writeText(out io.Writer, cfg *config.Config, rep *aggregate.Report, toStdout bool) error {
	termCfg := wc.terminalCfg()
	if cfg.Output.NoColor || !toStdout {
		termCfg.NoColor = true
	}

	renderer := report.NewRenderer(termCfg)
	pages := renderer.Pages(rep)

	if !cfg.Output.Interactive || !toStdout || !wc.isTerminal() {
		return pager.PrintAll(pages, renderer.Summary(rep), out)
	}

	input, err := wc.newInput()
	if err != nil {
		return err
	}
	defer input.Close()

	return pager.Run(pages, renderer.Summary(rep), input, out, pager.Options{Clear: true})
}
