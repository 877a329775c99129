// Package config loads batch search files for the chibisearch CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Op string

const (
	OpSearch    Op = "search"
	OpRecursive Op = "recursive"
	OpFirst     Op = "first"
	OpLast      Op = "last"
	OpCount     Op = "count"
)

var ops = []Op{OpSearch, OpRecursive, OpFirst, OpLast, OpCount}

// ParseOp accepts an operation name in any letter case.
func ParseOp(s string) (Op, error) {
	name := Op(strings.ToLower(strings.TrimSpace(s)))
	for _, op := range ops {
		if op == name {
			return op, nil
		}
	}
	return "", fmt.Errorf("%w: unknown op %q (want one of %s)", ErrInvalidConfig, s, OpNames())
}

func OpNames() string {
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = string(op)
	}
	return strings.Join(names, ", ")
}

type Query struct {
	Op     Op  `yaml:"op"`
	Target int `yaml:"target"`
}

type Dataset struct {
	Name    string  `yaml:"name"`
	Values  []int   `yaml:"values"`
	Queries []Query `yaml:"queries"`
}

// Config is the contents of a batch file.
type Config struct {
	Log struct {
		Level string `yaml:"level,omitempty"` // debug, info, warn, error
	} `yaml:"log,omitempty"`

	Datasets []Dataset `yaml:"datasets"`
}

const defaultLogLevel = "info"

// Load reads, defaults and validates the batch file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config from %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config yaml: %w", err)
	}

	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
	for i := range cfg.Datasets {
		if cfg.Datasets[i].Name == "" {
			cfg.Datasets[i].Name = fmt.Sprintf("dataset-%d", i+1)
		}
	}
}

// Validate normalizes op names in place and reports the first problem found.
// Dataset order is not checked here; that is left to the search itself.
func (c *Config) Validate() error {
	if len(c.Datasets) == 0 {
		return fmt.Errorf("%w: no datasets", ErrInvalidConfig)
	}
	for i := range c.Datasets {
		d := &c.Datasets[i]
		for j := range d.Queries {
			op, err := ParseOp(string(d.Queries[j].Op))
			if err != nil {
				return fmt.Errorf("dataset %q query %d: %w", d.Name, j+1, err)
			}
			d.Queries[j].Op = op
		}
	}
	return nil
}
