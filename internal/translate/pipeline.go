package translate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/orizon-lang/j2o/internal/ast"
)

var tracer = otel.Tracer("j2o/translate")

// PassError reports the pass that failed a unit.
type PassError struct {
	Pass string
	File string
	Err  error
}

func (e *PassError) Error() string {
	return fmt.Sprintf("pass %s failed on %s: %v", e.Pass, e.File, e.Err)
}

func (e *PassError) Unwrap() error { return e.Err }

// Pipeline runs an ordered list of passes over compilation units. A
// Pipeline is safe for concurrent use once configured.
type Pipeline struct {
	passes   []Pass
	validate bool
	logger   *slog.Logger
	metrics  *Metrics
}

// NewPipeline creates a pipeline running passes in order.
func NewPipeline(passes ...Pass) *Pipeline {
	return &Pipeline{
		passes: passes,
		logger: slog.Default(),
	}
}

// AddPass appends a pass.
func (p *Pipeline) AddPass(pass Pass) {
	p.passes = append(p.passes, pass)
}

// SetValidate makes the pipeline check the tree's structural invariants
// after every pass.
func (p *Pipeline) SetValidate(validate bool) {
	p.validate = validate
}

func (p *Pipeline) SetLogger(logger *slog.Logger) {
	if logger != nil {
		p.logger = logger
	}
}

func (p *Pipeline) SetMetrics(m *Metrics) {
	p.metrics = m
}

// PassNames returns the names of the configured passes, in order.
func (p *Pipeline) PassNames() []string {
	names := make([]string, len(p.passes))
	for i, pass := range p.passes {
		names[i] = pass.Name()
	}
	return names
}

// Run applies every pass to unit and stops at the first failure, which is
// returned as a *PassError. The unit is left as the failing pass left it.
func (p *Pipeline) Run(ctx context.Context, unit *ast.CompilationUnit) (err error) {
	file := unit.SourceFilePath()
	ctx, span := tracer.Start(ctx, "translate.Pipeline.Run",
		trace.WithAttributes(
			attribute.String("translate.file", file),
			attribute.Int("translate.passes", len(p.passes)),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		if p.metrics != nil {
			p.metrics.Units.WithLabelValues(result(err)).Inc()
		}
	}()

	for _, pass := range p.passes {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.runPass(ctx, pass, unit); err != nil {
			p.logger.Error("pass failed", "pass", pass.Name(), "file", file, "error", err)
			return &PassError{Pass: pass.Name(), File: file, Err: err}
		}
	}
	p.logger.Debug("unit translated", "file", file, "passes", len(p.passes))
	return nil
}

func (p *Pipeline) runPass(ctx context.Context, pass Pass, unit *ast.CompilationUnit) (err error) {
	_, span := tracer.Start(ctx, pass.Name())
	start := time.Now()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		if p.metrics != nil {
			p.metrics.PassDuration.WithLabelValues(pass.Name()).Observe(time.Since(start).Seconds())
			p.metrics.PassRuns.WithLabelValues(pass.Name(), result(err)).Inc()
		}
	}()

	if err := pass.Run(unit); err != nil {
		return err
	}
	if p.validate {
		if err := ast.Validate(unit); err != nil {
			return fmt.Errorf("invalid tree after pass: %w", err)
		}
	}
	return nil
}
