package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	v, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, uint64(17), v.Major())
	assert.True(t, cfg.KeepGoing)
	assert.Empty(t, cfg.Passes)
}

func TestParse(t *testing.T) {
	cfg := Default()
	err := cfg.Parse([]byte(`
source_level: "1.8"
passes: [fold-constants]
validate: false
jobs: 2
log:
  level: debug
  format: json
metrics_file: metrics.prom
`))
	require.NoError(t, err)
	assert.Equal(t, "1.8", cfg.SourceLevel)
	assert.Equal(t, []string{"fold-constants"}, cfg.Passes)
	assert.False(t, cfg.ValidateTree)
	assert.Equal(t, 2, cfg.Jobs)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "metrics.prom", cfg.MetricsFile)
	assert.Equal(t, "out", cfg.OutputDir, "unset keys keep their defaults")
}

func TestParse_Empty(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Parse(nil))
	assert.Equal(t, Default().SourceLevel, cfg.SourceLevel)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"level too old", `source_level: "1.7"`},
		{"level too new", `source_level: "22"`},
		{"level garbage", `source_level: "java eight"`},
		{"zero jobs", `jobs: 0`},
		{"log level", "log:\n  level: loud\n  format: text"},
		{"log format", "log:\n  level: info\n  format: xml"},
		{"duplicate pass", `passes: [fold-constants, fold-constants]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Default().Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	err := Default().Parse([]byte(`sourcelevel: "8"`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestLevel_Forms(t *testing.T) {
	for _, level := range []string{"1.8", "8", "11", "17.0.2", "21"} {
		cfg := Default()
		cfg.SourceLevel = level
		_, err := cfg.Level()
		assert.NoError(t, err, level)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "j2o.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jobs: 3\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Jobs)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshal_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Passes = []string{"remove-unreachable"}
	data, err := cfg.Marshal()
	require.NoError(t, err)

	back := &Config{}
	require.NoError(t, back.Parse(data))
	assert.Equal(t, cfg, back)
}
