package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"OpenSimplex/internal/imageout"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// MaxSide bounds each image side so a typo cannot allocate gigabytes.
const MaxSide = 16384

// Validation and loading errors. Validate joins every failing check, so
// test for a specific one with errors.Is.
var (
	// ErrConfigFormat means the file extension is not .yaml, .yml or .json.
	ErrConfigFormat = errors.New("config: unsupported config file extension")
	// ErrDims means dims is not 2, 3 or 4.
	ErrDims         = errors.New("config: dims must be 2, 3 or 4")
	// ErrScale means scale is zero, negative or not finite.
	ErrScale        = errors.New("config: scale must be finite and positive")
	// ErrSize means a side is outside [1, MaxSide].
	ErrSize         = errors.New("config: width and height must be in [1, 16384]")
	// ErrOffset means time or w is NaN or infinite.
	ErrOffset       = errors.New("config: time and w must be finite")
	// ErrOutput means no output path was given.
	ErrOutput       = errors.New("config: output path is empty")
)

// SamplerConfig describes one rendered slice of noise.
type SamplerConfig struct {
	Seed   int64   `json:"seed" yaml:"seed"`
	Dims   int     `json:"dims" yaml:"dims"`
	Scale  float64 `json:"scale" yaml:"scale"`
	Width  int     `json:"width" yaml:"width"`
	Height int     `json:"height" yaml:"height"`
	Time   float64 `json:"time" yaml:"time"`
	W      float64 `json:"w" yaml:"w"`
	Format string  `json:"format,omitempty" yaml:"format,omitempty"`
	Output string  `json:"output" yaml:"output"`
}

// Default matches the demo renders: a 500x500 2D slice at scale 0.044.
func Default() SamplerConfig {
	return SamplerConfig{
		Seed:   883279212983182319,
		Dims:   2,
		Scale:  0.044,
		Width:  500,
		Height: 500,
		Output: "noise.png",
	}
}

// Load reads a YAML (.yaml, .yml) or JSON (.json) file on top of Default.
// Keys missing from the file keep their default values; unknown keys are an
// error.
func Load(path string) (SamplerConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("%w: %s", ErrConfigFormat, path)
	}

	return cfg, nil
}

// Validate reports every invalid field at once.
func (c SamplerConfig) Validate() error {
	var err error
	if c.Dims < 2 || c.Dims > 4 {
		err = multierr.Append(err, fmt.Errorf("%w: got %d", ErrDims, c.Dims))
	}
	if math.IsNaN(c.Scale) || math.IsInf(c.Scale, 0) || c.Scale <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: got %g", ErrScale, c.Scale))
	}
	if c.Width < 1 || c.Width > MaxSide || c.Height < 1 || c.Height > MaxSide {
		err = multierr.Append(err, fmt.Errorf("%w: got %dx%d", ErrSize, c.Width, c.Height))
	}
	if !finite(c.Time) || !finite(c.W) {
		err = multierr.Append(err, ErrOffset)
	}
	output := strings.TrimSpace(c.Output)
	if output == "" {
		err = multierr.Append(err, ErrOutput)
	}
	if c.Format != "" || output != "" {
		if _, ferr := c.ImageFormat(); ferr != nil {
			err = multierr.Append(err, ferr)
		}
	}
	return err
}

// ImageFormat returns Format when set and otherwise infers it from Output.
func (c SamplerConfig) ImageFormat() (imageout.Format, error) {
	if c.Format != "" {
		return imageout.ParseFormat(c.Format)
	}
	return imageout.FormatFromPath(c.Output)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
