// Package driver translates sets of Java files, one tree per file.
package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/orizon-lang/j2o/internal/ast"
	"github.com/orizon-lang/j2o/internal/astbridge"
	"github.com/orizon-lang/j2o/internal/config"
	"github.com/orizon-lang/j2o/internal/frontend/javats"
	"github.com/orizon-lang/j2o/internal/translate"
)

// ErrFilesFailed is returned by Summary.Err when at least one file failed.
var ErrFilesFailed = errors.New("translation failed")

// ErrUnknownPass is returned for a configured pass name that is not
// registered.
var ErrUnknownPass = errors.New("unknown pass")

// Options control a translation run.
type Options struct {
	SourceLevel *semver.Version
	Passes      []translate.Pass
	Validate    bool
	KeepGoing   bool
	Jobs        int
	// OutputDir receives one rendered tree per file. Empty disables output.
	OutputDir string
}

// OptionsFromConfig resolves cfg's pass names and source level.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	level, err := cfg.Level()
	if err != nil {
		return Options{}, err
	}
	passes := translate.DefaultPasses()
	if len(cfg.Passes) > 0 {
		passes = passes[:0]
		for _, name := range cfg.Passes {
			p, ok := translate.Lookup(name)
			if !ok {
				return Options{}, fmt.Errorf("%w %q (known: %s)", ErrUnknownPass, name, strings.Join(translate.Names(), ", "))
			}
			passes = append(passes, p)
		}
	}
	return Options{
		SourceLevel: level,
		Passes:      passes,
		Validate:    cfg.ValidateTree,
		KeepGoing:   cfg.KeepGoing,
		Jobs:        cfg.Jobs,
		OutputDir:   cfg.OutputDir,
	}, nil
}

// Result is the outcome of translating one file.
type Result struct {
	Path     string
	Unit     *ast.CompilationUnit
	Output   string
	Err      error
	Duration time.Duration
}

// Summary collects the results of a run in input order.
type Summary struct {
	RunID   string
	Results []*Result
	Failed  int
}

// Err reports whether any file failed.
func (s *Summary) Err() error {
	if s.Failed == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d files", ErrFilesFailed, s.Failed, len(s.Results))
}

// Driver runs the front end, the converter and the pass pipeline over files.
type Driver struct {
	opts     Options
	pipeline *translate.Pipeline
	logger   *slog.Logger
	runID    string
}

// New creates a driver. metrics may be nil.
func New(opts Options, logger *slog.Logger, metrics *translate.Metrics) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Jobs < 1 {
		opts.Jobs = 1
	}
	runID := uuid.NewString()
	logger = logger.With("run_id", runID)

	p := translate.NewPipeline(opts.Passes...)
	p.SetValidate(opts.Validate)
	p.SetLogger(logger)
	p.SetMetrics(metrics)
	return &Driver{opts: opts, pipeline: p, logger: logger, runID: runID}
}

func (d *Driver) RunID() string { return d.runID }

// TranslateFile translates one file. Failures, panics included, are
// reported in the result and never affect other files.
func (d *Driver) TranslateFile(ctx context.Context, path string) (r *Result) {
	r = &Result{Path: path}
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			r.Unit = nil
			r.Err = fmt.Errorf("internal error translating %s: %v", path, p)
		}
		r.Duration = time.Since(start)
		if r.Err != nil {
			d.logger.Error("file failed", "file", path, "duration", r.Duration, "error", r.Err)
		} else {
			d.logger.Info("file translated", "file", path, "duration", r.Duration)
		}
	}()

	if err := ctx.Err(); err != nil {
		r.Err = err
		return r
	}
	src, err := os.ReadFile(path)
	if err != nil {
		r.Err = fmt.Errorf("failed to read %s: %w", path, err)
		return r
	}
	unit, err := javats.Parse(ctx, path, src)
	if err != nil {
		r.Err = err
		return r
	}
	env := ast.NewEnvironment(unit.Universe, d.opts.SourceLevel)
	cu, err := astbridge.ConvertCompilationUnit(env, unit)
	if err != nil {
		r.Err = err
		return r
	}
	if err := d.pipeline.Run(ctx, cu); err != nil {
		r.Err = err
		return r
	}
	r.Unit = cu
	if d.opts.OutputDir != "" {
		out, err := d.write(path, cu)
		if err != nil {
			r.Err = err
			return r
		}
		r.Output = out
	}
	return r
}

// OutputPath maps a source path to its rendered file under the output
// directory. Paths outside the working tree keep only their base name.
func (d *Driver) OutputPath(path string) string {
	rel := filepath.Clean(path)
	if filepath.IsAbs(rel) || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(rel)
	}
	return filepath.Join(d.opts.OutputDir, strings.TrimSuffix(rel, filepath.Ext(rel))+".ir")
}

func (d *Driver) write(path string, cu *ast.CompilationUnit) (string, error) {
	out := d.OutputPath(path)
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(out, []byte(ast.DebugString(cu)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", out, err)
	}
	return out, nil
}

// TranslateAll translates paths with at most Jobs files in flight. With
// KeepGoing unset the first failure cancels the files not yet started;
// the returned error is then that failure. Per-file failures otherwise only
// show up in the summary.
func (d *Driver) TranslateAll(ctx context.Context, paths []string) (*Summary, error) {
	results := make([]*Result, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.opts.Jobs)

	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			r := d.TranslateFile(gctx, path)
			results[i] = r
			if r.Err != nil && !d.opts.KeepGoing {
				return r.Err
			}
			return nil
		})
	}
	err := g.Wait()

	s := &Summary{RunID: d.runID}
	for _, r := range results {
		if r == nil {
			continue
		}
		s.Results = append(s.Results, r)
		if r.Err != nil {
			s.Failed++
		}
	}
	d.logger.Info("run finished", "files", len(s.Results), "failed", s.Failed)
	return s, err
}

// Collect expands directories into the .java files below them. File
// arguments are kept as given. The result is sorted and free of duplicates.
func Collect(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(arg)
			continue
		}
		err = filepath.WalkDir(arg, func(p string, e fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !e.IsDir() && isJava(p) {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}

func isJava(path string) bool {
	return filepath.Ext(path) == ".java"
}

// WriteMetrics writes everything g gathers to path in the text exposition
// format.
func WriteMetrics(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
