package translate

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orizon-lang/j2o/internal/ast"
)

type funcPass struct {
	name string
	runs int
	fn   func(*ast.CompilationUnit) error
}

func (p *funcPass) Name() string { return p.name }

func (p *funcPass) Run(unit *ast.CompilationUnit) error {
	p.runs++
	if p.fn == nil {
		return nil
	}
	return p.fn(unit)
}

func TestPipeline_RunsPassesInOrder(t *testing.T) {
	cu := parseUnit(t, unreachable)
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	p := NewPipeline(DefaultPasses()...)
	p.SetMetrics(m)
	p.SetValidate(true)
	assert.Equal(t, []string{ConstantFolderName, UnreachableCodeRemoverName}, p.PassNames())

	require.True(t, cu.Package().IsDefaultPackage())
	require.NoError(t, p.Run(context.Background(), cu))

	dead := method(t, cu, "dead").Body().Statements()
	assert.Equal(t, 2, dead.Len())

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Units.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PassRuns.WithLabelValues(ConstantFolderName, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PassRuns.WithLabelValues(UnreachableCodeRemoverName, "ok")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.PassDuration))
}

func TestPipeline_StopsAtFirstFailure(t *testing.T) {
	cu := parseUnit(t, unreachable)
	boom := errors.New("boom")
	failing := &funcPass{name: "failing", fn: func(*ast.CompilationUnit) error { return boom }}
	after := &funcPass{name: "after"}

	var logs bytes.Buffer
	m := NewMetrics(nil)
	p := NewPipeline(failing, after)
	p.SetMetrics(m)
	p.SetLogger(slog.New(slog.NewTextHandler(&logs, nil)))

	err := p.Run(context.Background(), cu)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	var pe *PassError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "failing", pe.Pass)
	assert.Equal(t, "T.java", pe.File)
	assert.Equal(t, "pass failing failed on T.java: boom", err.Error())

	assert.Equal(t, 1, failing.runs)
	assert.Zero(t, after.runs)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Units.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PassRuns.WithLabelValues("failing", "failed")))
	assert.Contains(t, logs.String(), "pass=failing")
}

func TestPipeline_ValidatesAfterEachPass(t *testing.T) {
	cu := parseUnit(t, unreachable)
	breaking := &funcPass{name: "breaking", fn: func(unit *ast.CompilationUnit) error {
		method(t, unit, "early").Name().Remove()
		return nil
	}}

	p := NewPipeline(breaking)
	require.NoError(t, p.Run(context.Background(), cu))

	cu = parseUnit(t, unreachable)
	p.SetValidate(true)
	err := p.Run(context.Background(), cu)
	var ve *ast.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, ast.KindMethodDeclaration, ve.Kind)
}

func TestPipeline_Canceled(t *testing.T) {
	cu := parseUnit(t, unreachable)
	pass := &funcPass{name: "never"}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewPipeline(pass).Run(ctx, cu)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, pass.runs)
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		pass, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, name, pass.Name())
	}
	_, ok := Lookup("inline-everything")
	assert.False(t, ok)
}
