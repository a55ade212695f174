package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const source = `package demo;

class Hello {
    String greet() {
        return "hello, " + "world";
    }
}
`

type fixture struct {
	dir    string
	config string
	file   string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{
		dir:    dir,
		config: filepath.Join(dir, "j2o.yaml"),
		file:   filepath.Join(dir, "Hello.java"),
	}
	require.NoError(t, os.WriteFile(f.config, []byte("log:\n  level: error\n  format: text\n"), 0o644))
	require.NoError(t, os.WriteFile(f.file, []byte(source), 0o644))
	return f
}

func execute(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDump(t *testing.T) {
	f := newFixture(t)
	out, _, err := execute("dump", "--config", f.config, f.file)
	require.NoError(t, err)
	assert.Contains(t, out, "class Hello")
	assert.Contains(t, out, `return "hello, world";`)

	out, _, err = execute("dump", "--config", f.config, "--outline", f.file)
	require.NoError(t, err)
	assert.Contains(t, out, "CompilationUnit")
}

func TestTranslate(t *testing.T) {
	f := newFixture(t)
	outDir := filepath.Join(f.dir, "out")
	metrics := filepath.Join(f.dir, "metrics.prom")

	out, _, err := execute("translate", "--config", f.config, "-o", outDir, "--metrics-file", metrics, f.dir)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ "+f.file)
	assert.Contains(t, out, "1 files, 0 failed")

	_, err = os.Stat(filepath.Join(outDir, "Hello.ir"))
	assert.NoError(t, err)
	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), `j2o_translate_units_total{result="ok"} 1`)
}

func TestCheck_FailureExitsNonZero(t *testing.T) {
	f := newFixture(t)
	bad := filepath.Join(f.dir, "Bad.java")
	require.NoError(t, os.WriteFile(bad, []byte("class Bad {"), 0o644))

	out, _, err := execute("check", "--config", f.config, f.dir)
	require.Error(t, err)
	assert.Contains(t, out, "✗ "+bad)
	assert.Contains(t, out, "✓ "+f.file)
	assert.Contains(t, out, "2 files, 1 failed")
	assert.Contains(t, out, "   1 | class Bad {")
}

func TestFlagsOverrideConfig(t *testing.T) {
	f := newFixture(t)
	_, _, err := execute("check", "--config", f.config, "--source-level", "1.7", f.file)
	assert.ErrorContains(t, err, "source level")

	_, _, err = execute("check", "--config", f.config, "--passes", "nope", f.file)
	assert.ErrorContains(t, err, "unknown pass")
}

func TestVersion(t *testing.T) {
	out, _, err := execute("version", "--config", "/nonexistent/j2o.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "j2o v")
}
