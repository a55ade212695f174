// Package config loads translator options from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// SupportedLevels is the range of Java source levels the front end accepts.
const SupportedLevels = ">=1.8.0, <22.0.0"

// DefaultFile is the configuration file looked up in the working directory.
const DefaultFile = "j2o.yaml"

var ErrInvalid = errors.New("invalid configuration")

var supported = mustConstraint(SupportedLevels)

func mustConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Config holds the options of a translation run.
type Config struct {
	SourceLevel  string   `yaml:"source_level"`
	Passes       []string `yaml:"passes"`
	ValidateTree bool     `yaml:"validate"`
	KeepGoing    bool     `yaml:"keep_going"`
	Jobs         int      `yaml:"jobs"`
	OutputDir    string   `yaml:"output_dir"`
	Log          Log      `yaml:"log"`
	MetricsFile  string   `yaml:"metrics_file,omitempty"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		SourceLevel:  "17",
		ValidateTree: true,
		KeepGoing:    true,
		Jobs:         runtime.GOMAXPROCS(0),
		OutputDir:    "out",
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error when
// path is DefaultFile.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultFile {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := cfg.Parse(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over c and validates the result. Unknown keys are
// rejected.
func (c *Config) Parse(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return c.Validate()
}

// Validate checks option values. Errors wrap ErrInvalid.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Jobs < 1 {
		return fmt.Errorf("%w: jobs must be positive, got %d", ErrInvalid, c.Jobs)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, c.Log.Format)
	}
	seen := make(map[string]bool, len(c.Passes))
	for _, p := range c.Passes {
		if seen[p] {
			return fmt.Errorf("%w: pass %q listed twice", ErrInvalid, p)
		}
		seen[p] = true
	}
	return nil
}

// Level parses the source level and checks it against SupportedLevels.
// Both "1.8" and "8" name Java 8.
func (c *Config) Level() (*semver.Version, error) {
	v, err := semver.NewVersion(c.SourceLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: source level %q: %v", ErrInvalid, c.SourceLevel, err)
	}
	if !supported.Check(v) {
		return nil, fmt.Errorf("%w: source level %s outside %s", ErrInvalid, c.SourceLevel, SupportedLevels)
	}
	return v, nil
}

// Marshal renders c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
