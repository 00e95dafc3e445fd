package sampler

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"OpenSimplex/internal/config"
	"OpenSimplex/internal/logger"

	"go.uber.org/zap"
)

// ErrSlice is returned for unsupported dims, non-positive sizes or a
// non-positive frame count.
var ErrSlice = errors.New("sampler: invalid slice")

// Evaluator is the noise surface a Field is sampled from.
type Evaluator interface {
	Eval2D(x, y float64) float64
	Eval3D(x, y, z float64) float64
	Eval4D(x, y, z, w float64) float64
}

// Slice is a Width x Height plane through 2, 3 or 4 dimensional noise.
// Pixel (px, py) samples (px*Scale, py*Scale), with Time as the third
// coordinate and W as the fourth when Dims calls for them.
type Slice struct {
	Dims   int
	Width  int
	Height int
	Scale  float64
	Time   float64
	W      float64
}

// FromConfig copies the sampling fields of cfg.
func FromConfig(cfg config.SamplerConfig) Slice {
	return Slice{
		Dims:   cfg.Dims,
		Width:  cfg.Width,
		Height: cfg.Height,
		Scale:  cfg.Scale,
		Time:   cfg.Time,
		W:      cfg.W,
	}
}

func (s Slice) validate() error {
	if s.Dims < 2 || s.Dims > 4 {
		return fmt.Errorf("%w: dims %d", ErrSlice, s.Dims)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrSlice, s.Width, s.Height)
	}
	return nil
}

// Field holds sampled values remapped from [-1, 1] to [0, 1], row-major.
// Min and Max are the raw extremes before remapping.
type Field struct {
	Width  int
	Height int
	Values []float64
	Min    float64
	Max    float64
}

// At returns the remapped value at pixel (x, y).
func (f *Field) At(x, y int) float64 {
	return f.Values[y*f.Width+x]
}

// Sample evaluates n at every pixel of s.
func Sample(n Evaluator, s Slice) (*Field, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	field := &Field{
		Width:  s.Width,
		Height: s.Height,
		Values: make([]float64, s.Width*s.Height),
		Min:    math.Inf(1),
		Max:    math.Inf(-1),
	}

	for py := 0; py < s.Height; py++ {
		for px := 0; px < s.Width; px++ {
			x := float64(px) * s.Scale
			y := float64(py) * s.Scale

			var v float64
			switch s.Dims {
			case 2:
				v = n.Eval2D(x, y)
			case 3:
				v = n.Eval3D(x, y, s.Time)
			default:
				v = n.Eval4D(x, y, s.Time, s.W)
			}

			if v < field.Min {
				field.Min = v
			}
			if v > field.Max {
				field.Max = v
			}
			field.Values[py*s.Width+px] = (v + 1) / 2
		}
	}

	logger.Log.Debug("Sampled field",
		zap.Int("dims", s.Dims),
		zap.Int("width", s.Width),
		zap.Int("height", s.Height),
		zap.Float64("min", field.Min),
		zap.Float64("max", field.Max),
		zap.Duration("elapsed", time.Since(start)))

	return field, nil
}

// SampleFrames samples count slices, advancing Time by step between them.
// 2D slices have no time axis, so every frame is identical.
func SampleFrames(n Evaluator, s Slice, count int, step float64) ([]*Field, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: frame count %d", ErrSlice, count)
	}

	frames := make([]*Field, 0, count)
	for i := 0; i < count; i++ {
		frame := s
		frame.Time = s.Time + float64(i)*step
		f, err := Sample(n, frame)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// Gray renders the field as an 8-bit grayscale image. Values are scaled by
// 255 and truncated; anything outside [0, 1], including NaN, is clamped.
func (f *Field) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.SetGray(x, y, color.Gray{Y: toByte(f.At(x, y))})
		}
	}
	return img
}

func toByte(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v * 255)
}
