// Package bench measures the numerical round trip error of chained
// transforms on many random points.
package bench

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/oliverbestmann/gm"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config describes a benchmark workload. It can be written in JSON or YAML.
type Config struct {
	// Workers is the number of goroutines. Zero uses one per cpu.
	Workers    int    `json:"workers" yaml:"workers"`
	Iterations int    `json:"iterations" yaml:"iterations"`
	Seed       uint64 `json:"seed" yaml:"seed"`

	// Extent is the half size of the cube random points are sampled from.
	Extent float64 `json:"extent" yaml:"extent"`

	// Rotation selects the rotation representation, "quat" or "basis".
	Rotation string `json:"rotation" yaml:"rotation"`

	// Transforms are chained, the last one is applied first.
	Transforms []TransformConfig `json:"transforms" yaml:"transforms"`
}

type TransformConfig struct {
	// Scale defaults to 1 when omitted. Use a tiny value for a collapsing transform.
	Scale       float64          `json:"scale" yaml:"scale"`
	Axis        gm.Vec3[float64] `json:"axis" yaml:"axis"`
	Angle       gm.Deg[float64]  `json:"angle" yaml:"angle"`
	Translation gm.Vec3[float64] `json:"translation" yaml:"translation"`
}

// DefaultConfig is used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Iterations: 1_000_000,
		Seed:       1,
		Extent:     100,
		Rotation:   "quat",
		Transforms: []TransformConfig{
			{
				Scale:       1.5,
				Axis:        gm.Vec3Of(1.0, 1.0, 1.0),
				Angle:       gm.DegOf(120.0),
				Translation: gm.Vec3Of(6.0, -7.0, 8.0),
			},
			{
				Scale:       0.25,
				Axis:        gm.UnitY[float64](),
				Angle:       gm.DegOf(-30.0),
				Translation: gm.Vec3Of(0.0, 10.0, 0.0),
			},
		},
	}
}

// Validate checks the config and fills in defaults.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: negative worker count %d", ErrInvalidConfig, c.Workers)
	}

	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}

	if c.Iterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidConfig, c.Iterations)
	}

	if c.Extent == 0 {
		c.Extent = 1
	}

	// defaults must not leak into the slice of the caller
	c.Transforms = slices.Clone(c.Transforms)
	for idx := range c.Transforms {
		if c.Transforms[idx].Scale == 0 {
			c.Transforms[idx].Scale = 1
		}
	}

	switch c.Rotation {
	case "":
		c.Rotation = "quat"
	case "quat", "basis":
	default:
		return fmt.Errorf("%w: unknown rotation %q", ErrInvalidConfig, c.Rotation)
	}

	return nil
}

// LoadJSON loads config from JSON reader.
func LoadJSON(r io.Reader) (*Config, error) {
	var c Config
	dec := json.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return &c, nil
}

// LoadYAML loads config from YAML reader.
func LoadYAML(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return &c, nil
}

// LoadFile loads a config file. Files ending in .json are parsed as JSON,
// everything else as YAML.
func LoadFile(path string) (*Config, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	defer func() { _ = fp.Close() }()

	if filepath.Ext(path) == ".json" {
		return LoadJSON(fp)
	}

	return LoadYAML(fp)
}
