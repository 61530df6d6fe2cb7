package bench

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oliverbestmann/gm"
	"github.com/stretchr/testify/require"
)

const yamlConfig = `
workers: 4
iterations: 1000
seed: 42
extent: 10
rotation: basis
transforms:
  - scale: 1.5
    axis: {x: 0, y: 0, z: 1}
    angle: 90
    translation: {x: 6, y: -7, z: 8}
  - scale: 2
`

const jsonConfig = `{
  "workers": 2,
  "iterations": 500,
  "transforms": [
    {"scale": 0.5, "axis": {"x": 1, "y": 0, "z": 0}, "angle": 45, "translation": {"x": 1, "y": 2, "z": 3}}
  ]
}`

func TestLoadYAML(t *testing.T) {
	cfg, err := LoadYAML(strings.NewReader(yamlConfig))
	require.NoError(t, err)

	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, 1000, cfg.Iterations)
	require.Equal(t, uint64(42), cfg.Seed)
	require.Equal(t, "basis", cfg.Rotation)
	require.Len(t, cfg.Transforms, 2)

	require.Equal(t, TransformConfig{
		Scale:       1.5,
		Axis:        gm.UnitZ[float64](),
		Angle:       gm.DegOf(90.0),
		Translation: gm.Vec3Of(6.0, -7.0, 8.0),
	}, cfg.Transforms[0])

	require.Equal(t, 2.0, cfg.Transforms[1].Scale)

	require.NoError(t, cfg.Validate())
}

func TestValidate_DefaultScale(t *testing.T) {
	cfg, err := LoadYAML(strings.NewReader("iterations: 10\ntransforms:\n  - angle: 45\n  - scale: 0.5\n"))
	require.NoError(t, err)
	require.Zero(t, cfg.Transforms[0].Scale)

	require.NoError(t, cfg.Validate())
	require.Equal(t, 1.0, cfg.Transforms[0].Scale)
	require.Equal(t, 0.5, cfg.Transforms[1].Scale)
}

func TestLoadJSON(t *testing.T) {
	cfg, err := LoadJSON(strings.NewReader(jsonConfig))
	require.NoError(t, err)

	require.Equal(t, gm.DegOf(45.0), cfg.Transforms[0].Angle)
	require.Equal(t, gm.Vec3Of(1.0, 2.0, 3.0), cfg.Transforms[0].Translation)

	require.NoError(t, cfg.Validate())
	require.Equal(t, "quat", cfg.Rotation)
	require.Equal(t, 1.0, cfg.Extent)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "bench.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(jsonConfig), 0o644))

	cfg, err := LoadFile(jsonPath)
	require.NoError(t, err)
	require.Equal(t, 500, cfg.Iterations)

	yamlPath := filepath.Join(dir, "bench.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlConfig), 0o644))

	cfg, err = LoadFile(yamlPath)
	require.NoError(t, err)
	require.Equal(t, 1000, cfg.Iterations)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Malformed(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("transforms: [{angle: ninety}]"))
	require.Error(t, err)

	_, err = LoadJSON(strings.NewReader(`{"transforms": [{"angle": "ninety"}]}`))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Config{Iterations: 10}
	require.NoError(t, cfg.Validate())
	require.Positive(t, cfg.Workers)

	cfg = Config{Iterations: 0}
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = Config{Iterations: 10, Workers: -1}
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = Config{Iterations: 10, Rotation: "euler"}
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
