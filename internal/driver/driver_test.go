package driver

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orizon-lang/j2o/internal/ast"
	"github.com/orizon-lang/j2o/internal/astbridge"
	"github.com/orizon-lang/j2o/internal/config"
	"github.com/orizon-lang/j2o/internal/frontend/javats"
	"github.com/orizon-lang/j2o/internal/translate"
)

const good = `package demo;

public class Good {
    int answer() {
        return 6 * 7;
        answer();
    }
}
`

const broken = `package demo;

public class Broken {
    int answer() { return ; ; ) }
`

const lambda = `class Lambda {
    Runnable r = () -> {};
}
`

type explodingPass struct{}

func (explodingPass) Name() string { return "explode" }

func (explodingPass) Run(*ast.CompilationUnit) error { panic("boom") }

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newDriver(t *testing.T, opts Options) *Driver {
	t.Helper()
	if opts.Passes == nil {
		opts.Passes = translate.DefaultPasses()
	}
	return New(opts, quiet(), nil)
}

func TestTranslateFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	path := writeFile(t, dir, "Good.java", good)

	d := newDriver(t, Options{Validate: true, OutputDir: out})
	r := d.TranslateFile(context.Background(), path)
	require.NoError(t, r.Err)
	require.NotNil(t, r.Unit)
	assert.Equal(t, "Good", r.Unit.MainTypeName())
	assert.Equal(t, filepath.Join(out, "Good.ir"), r.Output)

	rendered, err := os.ReadFile(r.Output)
	require.NoError(t, err)
	assert.Contains(t, string(rendered), "class Good")
	assert.Contains(t, string(rendered), "return 42;")
	assert.NotContains(t, string(rendered), "answer();")
}

func TestTranslateFile_Failures(t *testing.T) {
	dir := t.TempDir()
	d := newDriver(t, Options{SourceLevel: semver.MustParse("1.7.0")})

	r := d.TranslateFile(context.Background(), writeFile(t, dir, "Broken.java", broken))
	assert.ErrorIs(t, r.Err, javats.ErrSyntax)
	assert.Nil(t, r.Unit)

	r = d.TranslateFile(context.Background(), writeFile(t, dir, "Lambda.java", lambda))
	assert.ErrorIs(t, r.Err, astbridge.ErrUnsupported)

	r = d.TranslateFile(context.Background(), filepath.Join(dir, "Missing.java"))
	assert.ErrorIs(t, r.Err, os.ErrNotExist)
}

func TestTranslateFile_PanicIsIsolated(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "Good.java", good)
	d := newDriver(t, Options{Passes: []translate.Pass{explodingPass{}}})
	r := d.TranslateFile(context.Background(), path)
	require.Error(t, r.Err)
	assert.Contains(t, r.Err.Error(), "internal error translating")
	assert.Nil(t, r.Unit)
}

func TestTranslateAll_KeepGoing(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "a/Good.java", good),
		writeFile(t, dir, "b/Broken.java", broken),
		writeFile(t, dir, "c/Good.java", strings.ReplaceAll(good, "6 * 7", "1")),
	}

	reg := prometheus.NewRegistry()
	m := translate.NewMetrics(reg)
	d := New(Options{Passes: translate.DefaultPasses(), KeepGoing: true, Jobs: 2}, quiet(), m)

	s, err := d.TranslateAll(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, s.Results, 3)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, d.RunID(), s.RunID)
	for i, r := range s.Results {
		assert.Equal(t, paths[i], r.Path)
	}
	assert.NoError(t, s.Results[0].Err)
	assert.Error(t, s.Results[1].Err)
	assert.NoError(t, s.Results[2].Err)
	assert.ErrorIs(t, s.Err(), ErrFilesFailed)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Units.WithLabelValues("ok")))

	metricsFile := filepath.Join(dir, "metrics.prom")
	require.NoError(t, WriteMetrics(metricsFile, reg))
	data, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "j2o_translate_units_total")
}

func TestTranslateAll_StopsWithoutKeepGoing(t *testing.T) {
	dir := t.TempDir()
	paths := []string{writeFile(t, dir, "Broken.java", broken)}
	for i := 0; i < 5; i++ {
		paths = append(paths, writeFile(t, dir, filepath.Join("p", string(rune('a'+i)), "Good.java"), good))
	}

	d := newDriver(t, Options{Jobs: 1})
	s, err := d.TranslateAll(context.Background(), paths)
	assert.ErrorIs(t, err, javats.ErrSyntax)
	assert.GreaterOrEqual(t, s.Failed, 1)
	assert.Less(t, len(s.Results)-s.Failed, 5)
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.SourceLevel = "1.8"
	cfg.Passes = []string{translate.UnreachableCodeRemoverName}
	opts, err := OptionsFromConfig(cfg)
	require.NoError(t, err)
	require.Len(t, opts.Passes, 1)
	assert.Equal(t, translate.UnreachableCodeRemoverName, opts.Passes[0].Name())
	assert.Equal(t, uint64(8), opts.SourceLevel.Minor())

	cfg.Passes = []string{"inline"}
	_, err = OptionsFromConfig(cfg)
	assert.ErrorIs(t, err, ErrUnknownPass)

	cfg.Passes = nil
	opts, err = OptionsFromConfig(cfg)
	require.NoError(t, err)
	assert.Len(t, opts.Passes, len(translate.DefaultPasses()))
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	b := writeFile(t, dir, "src/b/B.java", good)
	a := writeFile(t, dir, "src/a/A.java", good)
	writeFile(t, dir, "src/a/notes.txt", "x")
	single := writeFile(t, dir, "Single.java", good)

	files, err := Collect([]string{filepath.Join(dir, "src"), single, a})
	require.NoError(t, err)
	assert.Equal(t, []string{single, a, b}, files)

	_, err = Collect([]string{filepath.Join(dir, "nope")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOutputPath(t *testing.T) {
	d := newDriver(t, Options{OutputDir: "out"})
	assert.Equal(t, filepath.Join("out", "src", "A.ir"), d.OutputPath(filepath.Join("src", "A.java")))
	assert.Equal(t, filepath.Join("out", "A.ir"), d.OutputPath(filepath.Join("..", "src", "A.java")))
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	staging := t.TempDir()

	d := newDriver(t, Options{})
	w, err := d.Watch(dir)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	results := make(chan *Result, 16)
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, func(r *Result) { results <- r }) }()

	// Renaming into place delivers the file with its full content.
	src := writeFile(t, staging, "Good.java", good)
	dst := filepath.Join(dir, "Good.java")
	require.NoError(t, os.Rename(src, dst))

	timeout := time.After(10 * time.Second)
	for {
		select {
		case r := <-results:
			if r.Err != nil || r.Unit == nil || r.Unit.Types().Len() == 0 {
				continue
			}
			assert.Equal(t, dst, r.Path)
			cancel()
			assert.ErrorIs(t, <-done, context.Canceled)
			return
		case <-timeout:
			t.Fatal("no result from watcher")
		}
	}
}
