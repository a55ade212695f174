package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/orizon-lang/j2o/internal/cli"
	"github.com/orizon-lang/j2o/internal/config"
	"github.com/orizon-lang/j2o/internal/driver"
	"github.com/orizon-lang/j2o/internal/translate"
)

// app is the state shared by all commands of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath  string
	sourceLevel string
	passes      []string
	validate    bool
	keepGoing   bool
	jobs        int
	outputDir   string
	logLevel    string
	logFormat   string
	metricsFile string

	cfg      *config.Config
	logger   *slog.Logger
	styles   *cli.Styles
	registry *prometheus.Registry
	metrics  *translate.Metrics
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:           "j2o",
		Short:         "Translate Java sources into the j2o tree",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", config.DefaultFile, "configuration file")
	f.StringVar(&a.sourceLevel, "source-level", "", "Java source level, e.g. 1.8 or 17")
	f.StringSliceVar(&a.passes, "passes", nil, "passes to run, in order")
	f.BoolVar(&a.validate, "validate", true, "check tree invariants after every pass")
	f.BoolVar(&a.keepGoing, "keep-going", true, "continue with other files after a failure")
	f.IntVarP(&a.jobs, "jobs", "j", 0, "files translated concurrently")
	f.StringVarP(&a.outputDir, "output-dir", "o", "", "directory for rendered trees")
	f.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")
	f.StringVar(&a.logFormat, "log-format", "", "text or json")
	f.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")

	root.AddCommand(
		a.translateCmd(),
		a.checkCmd(),
		a.dumpCmd(),
		a.watchCmd(),
		a.versionCmd(),
	)
	return root
}

// setup loads the configuration and applies the flags that were set.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	if f.Changed("source-level") {
		cfg.SourceLevel = a.sourceLevel
	}
	if f.Changed("passes") {
		cfg.Passes = a.passes
	}
	if f.Changed("validate") {
		cfg.ValidateTree = a.validate
	}
	if f.Changed("keep-going") {
		cfg.KeepGoing = a.keepGoing
	}
	if f.Changed("jobs") {
		cfg.Jobs = a.jobs
	}
	if f.Changed("output-dir") {
		cfg.OutputDir = a.outputDir
	}
	if f.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if f.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if f.Changed("metrics-file") {
		cfg.MetricsFile = a.metricsFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := cli.NewLogger(a.stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	a.styles = cli.NewStyles(a.stdout)
	a.registry = prometheus.NewRegistry()
	a.metrics = translate.NewMetrics(a.registry)
	return nil
}

// newDriver builds a driver from the loaded configuration. keepOutput
// false disables rendering to the output directory.
func (a *app) newDriver(keepOutput bool) (*driver.Driver, error) {
	opts, err := driver.OptionsFromConfig(a.cfg)
	if err != nil {
		return nil, err
	}
	if !keepOutput {
		opts.OutputDir = ""
	}
	return driver.New(opts, a.logger, a.metrics), nil
}

// run translates args and prints one status line per file.
func (a *app) run(ctx context.Context, args []string, keepOutput bool) error {
	files, err := driver.Collect(args)
	if err != nil {
		return err
	}
	d, err := a.newDriver(keepOutput)
	if err != nil {
		return err
	}
	s, runErr := d.TranslateAll(ctx, files)
	for _, r := range s.Results {
		a.report(r)
	}
	fmt.Fprintf(a.stdout, "%s\n", a.styles.Render(a.styles.Muted,
		fmt.Sprintf("%d files, %d failed (run %s)", len(s.Results), s.Failed, s.RunID)))

	if a.cfg.MetricsFile != "" {
		if err := driver.WriteMetrics(a.cfg.MetricsFile, a.registry); err != nil {
			return err
		}
	}
	if runErr != nil {
		return runErr
	}
	return s.Err()
}
