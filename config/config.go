// Package config loads the cavepath run configuration from YAML.
//
// Example file:
//
//	input: inputs/input12.txt
//	policies: [single, double]
//	strategy: backtrack
//	parallel: true
//	list: false
//	log:
//	  level: info
//	  format: text
//
// Every field is optional; Default() supplies the rest.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cavepath/paths"
	"github.com/katalvlaran/cavepath/revisit"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the full run configuration.
type Config struct {
	// Input is the edge list path; empty or "-" means standard input.
	Input string `yaml:"input"`

	// Policies are revisit policy names, reported in this order.
	Policies []string `yaml:"policies"`

	// Strategy is the enumeration algorithm name.
	Strategy string `yaml:"strategy"`

	// Parallel runs the policies concurrently.
	Parallel bool `yaml:"parallel"`

	// List prints every route, not just the counts.
	List bool `yaml:"list"`

	Log Log `yaml:"log"`
}

// Log configures the structured logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Input:    "-",
		Policies: []string{"single", "double"},
		Strategy: paths.Backtrack.String(),
		Parallel: false,
		Log:      Log{Level: "warn", Format: FormatText},
	}
}

// Load reads path and overlays it onto Default(). The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks every named value can be resolved.
func (c Config) Validate() error {
	if len(c.Policies) == 0 {
		return fmt.Errorf("%w: no policies", ErrInvalidConfig)
	}
	if _, err := c.ResolvePolicies(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := paths.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// ResolvePolicies maps the configured names to policies, in order.
func (c Config) ResolvePolicies() ([]revisit.Policy, error) {
	out := make([]revisit.Policy, 0, len(c.Policies))
	for _, name := range c.Policies {
		p, err := revisit.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (l Log) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", l.Level, err)
	}

	return lvl, nil
}
