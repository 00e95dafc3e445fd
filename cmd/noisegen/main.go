// Command noisegen renders a slice of OpenSimplex noise to an image file.
//
// Usage:
//
//	noisegen [-config noise.yaml] [-seed N] [-dims 2|3|4] [-scale S] [-size WxH]
//	         [-time T] [-w W] [-format png|bmp|tiff] [-out file]
//	         [-frames N] [-step S] [-watch] [-debug]
//
// Flags given on the command line override values from -config. With -watch
// the image is rendered again every time the config file changes, until the
// process is interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"OpenSimplex/internal/config"
	"OpenSimplex/internal/imageout"
	"OpenSimplex/internal/logger"
	"OpenSimplex/internal/sampler"
	"OpenSimplex/opensimplex"

	"go.uber.org/zap"
)

var errWatchNeedsConfig = errors.New("-watch requires -config")

type options struct {
	configPath string
	seed       int64
	dims       int
	scale      float64
	size       string
	time       float64
	w          float64
	format     string
	out        string
	frames     int
	step       float64
	watch      bool
	debug      bool

	// set holds the names of flags given explicitly.
	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := &options{set: make(map[string]bool)}

	fs := flag.NewFlagSet("noisegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "YAML or JSON sampler config")
	fs.Int64Var(&o.seed, "seed", 0, "noise seed")
	fs.IntVar(&o.dims, "dims", 0, "noise dimensions: 2, 3 or 4")
	fs.Float64Var(&o.scale, "scale", 0, "noise units per pixel")
	fs.StringVar(&o.size, "size", "", "image size as WxH")
	fs.Float64Var(&o.time, "time", 0, "third coordinate for 3D and 4D slices")
	fs.Float64Var(&o.w, "w", 0, "fourth coordinate for 4D slices")
	fs.StringVar(&o.format, "format", "", "png, bmp or tiff (default: from -out)")
	fs.StringVar(&o.out, "out", "", "output image path")
	fs.IntVar(&o.frames, "frames", 1, "number of frames, advancing -time by -step")
	fs.Float64Var(&o.step, "step", 0.1, "time advance between frames")
	fs.BoolVar(&o.watch, "watch", false, "render again whenever -config changes")
	fs.BoolVar(&o.debug, "debug", false, "development logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })

	if o.frames < 1 {
		return nil, fmt.Errorf("invalid -frames %d (minimum 1)", o.frames)
	}
	if o.watch && o.configPath == "" {
		return nil, errWatchNeedsConfig
	}
	return o, nil
}

// resolve builds the effective config: defaults, then the config file, then
// explicit flags.
func (o *options) resolve() (config.SamplerConfig, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if o.set["seed"] {
		cfg.Seed = o.seed
	}
	if o.set["dims"] {
		cfg.Dims = o.dims
	}
	if o.set["scale"] {
		cfg.Scale = o.scale
	}
	if o.set["size"] {
		w, h, err := parseSize(o.size)
		if err != nil {
			return cfg, err
		}
		cfg.Width, cfg.Height = w, h
	}
	if o.set["time"] {
		cfg.Time = o.time
	}
	if o.set["w"] {
		cfg.W = o.w
	}
	if o.set["format"] {
		cfg.Format = o.format
	}
	if o.set["out"] {
		cfg.Output = o.out
	}

	return cfg, cfg.Validate()
}

func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q (expected WxH)", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil || w < 1 {
		return 0, 0, fmt.Errorf("invalid width %q (minimum 1)", parts[0])
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil || h < 1 {
		return 0, 0, fmt.Errorf("invalid height %q (minimum 1)", parts[1])
	}
	return w, h, nil
}

// frameName numbers path for multi-frame renders: noise.png becomes
// noise_000.png, noise_001.png and so on.
func frameName(path string, i, count int) string {
	if count == 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%03d%s", strings.TrimSuffix(path, ext), i, ext)
}

// render samples cfg and writes every frame. It returns the written paths.
func render(cfg config.SamplerConfig, frames int, step float64) ([]string, error) {
	start := time.Now()

	format, err := cfg.ImageFormat()
	if err != nil {
		return nil, err
	}

	noise := opensimplex.NewWithSeed(cfg.Seed)
	fields, err := sampler.SampleFrames(noise, sampler.FromConfig(cfg), frames, step)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(fields))
	for i, field := range fields {
		path := frameName(cfg.Output, i, len(fields))
		if err := imageout.WriteFile(path, field.Gray(), format); err != nil {
			return paths, err
		}
		paths = append(paths, path)

		logger.Log.Info("Noise rendered",
			zap.Int64("seed", cfg.Seed),
			zap.Int("dims", cfg.Dims),
			zap.String("size", fmt.Sprintf("%dx%d", field.Width, field.Height)),
			zap.Float64("min", field.Min),
			zap.Float64("max", field.Max),
			zap.String("path", path),
			zap.Duration("elapsed", time.Since(start)))
	}
	return paths, nil
}

func run(ctx context.Context, o *options) error {
	once := func() error {
		cfg, err := o.resolve()
		if err != nil {
			return err
		}
		_, err = render(cfg, o.frames, o.step)
		return err
	}

	if err := once(); err != nil {
		if !o.watch {
			return err
		}
		// A broken config is expected while editing; wait for the next save.
		logger.Log.Error("Render failed", zap.Error(err))
	}
	if !o.watch {
		return nil
	}

	logger.Log.Info("Watching config", zap.String("path", o.configPath))
	return watch(ctx, o.configPath, once)
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger.InitWith(opts.debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, opts)
	stop()

	if err != nil {
		logger.Log.Error("noisegen failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}
