package main

import (
	"context"
	"errors"
	"flag"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"OpenSimplex/internal/config"
	"OpenSimplex/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func useTestLogger(t *testing.T) {
	saved := logger.Log
	logger.Log = zaptest.NewLogger(t)
	t.Cleanup(func() { logger.Log = saved })
}

func TestParseSize(t *testing.T) {
	w, h, err := parseSize("640x480")
	require.NoError(t, err)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)

	w, h, err = parseSize("1X2")
	require.NoError(t, err)
	assert.Equal(t, 1, w)
	assert.Equal(t, 2, h)

	for _, bad := range []string{"", "640", "0x10", "10x-1", "axb", "10x"} {
		_, _, err := parseSize(bad)
		assert.Error(t, err, bad)
	}
}

func TestFrameName(t *testing.T) {
	assert.Equal(t, "noise.png", frameName("noise.png", 0, 1))
	assert.Equal(t, "out/noise_000.png", frameName("out/noise.png", 0, 3))
	assert.Equal(t, "out/noise_012.tiff", frameName("out/noise.tiff", 12, 20))
}

func TestParseFlags(t *testing.T) {
	o, err := parseFlags([]string{"-seed", "0", "-dims", "3", "-frames", "4"}, io.Discard)
	require.NoError(t, err)
	assert.True(t, o.set["seed"], "explicit zero seed still counts as set")
	assert.True(t, o.set["dims"])
	assert.False(t, o.set["scale"])
	assert.Equal(t, 4, o.frames)

	_, err = parseFlags([]string{"-help"}, io.Discard)
	assert.True(t, errors.Is(err, flag.ErrHelp))

	_, err = parseFlags([]string{"-frames", "0"}, io.Discard)
	assert.Error(t, err)

	_, err = parseFlags([]string{"-watch"}, io.Discard)
	assert.ErrorIs(t, err, errWatchNeedsConfig)

	_, err = parseFlags([]string{"extra"}, io.Discard)
	assert.Error(t, err)
}

func TestResolveOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "noise.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("seed: 5\ndims: 3\nscale: 0.1\noutput: a.png\n"), 0644))

	o, err := parseFlags([]string{"-config", cfgPath, "-dims", "4", "-size", "20x10", "-out", "b.bmp"}, io.Discard)
	require.NoError(t, err)

	cfg, err := o.resolve()
	require.NoError(t, err)
	assert.Equal(t, int64(5), cfg.Seed, "from file")
	assert.Equal(t, 0.1, cfg.Scale, "from file")
	assert.Equal(t, 4, cfg.Dims, "flag overrides file")
	assert.Equal(t, 20, cfg.Width)
	assert.Equal(t, 10, cfg.Height)
	assert.Equal(t, "b.bmp", cfg.Output)
}

func TestResolveInvalid(t *testing.T) {
	o, err := parseFlags([]string{"-dims", "7", "-scale", "-1"}, io.Discard)
	require.NoError(t, err)

	_, err = o.resolve()
	assert.ErrorIs(t, err, config.ErrDims)
	assert.ErrorIs(t, err, config.ErrScale)
}

func TestRenderFrames(t *testing.T) {
	useTestLogger(t)

	cfg := config.Default()
	cfg.Dims = 3
	cfg.Width, cfg.Height = 16, 8
	cfg.Output = filepath.Join(t.TempDir(), "noise.png")

	paths, err := render(cfg, 2, 0.5)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	for _, p := range paths {
		f, err := os.Open(p)
		require.NoError(t, err)
		img, err := png.Decode(f)
		f.Close()
		require.NoError(t, err, p)
		assert.Equal(t, 16, img.Bounds().Dx())
		assert.Equal(t, 8, img.Bounds().Dy())
	}
}

func TestRunOnce(t *testing.T) {
	useTestLogger(t)
	out := filepath.Join(t.TempDir(), "noise.tiff")

	o, err := parseFlags([]string{"-size", "8x8", "-out", out}, io.Discard)
	require.NoError(t, err)
	require.NoError(t, run(context.Background(), o))

	_, err = os.Stat(out)
	assert.NoError(t, err)
}

func TestWatch(t *testing.T) {
	useTestLogger(t)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "noise.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"dims": 2}`), 0644))

	var renders atomic.Int32
	changed := make(chan struct{}, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, cfgPath, func() error {
			renders.Add(1)
			changed <- struct{}{}
			return nil
		})
	}()

	// Give the watcher time to register before touching the file.
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{}`), 0644))
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"dims": 3}`), 0644))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("Expected a render after the config changed")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not return after cancel")
	}

	assert.GreaterOrEqual(t, renders.Load(), int32(1))
}

func TestRearmDropsStaleTick(t *testing.T) {
	timer := time.NewTimer(time.Millisecond)
	// Let the tick land in the channel unread.
	time.Sleep(50 * time.Millisecond)

	start := time.Now()
	rearm(timer, 300*time.Millisecond)

	select {
	case <-timer.C:
		elapsed := time.Since(start)
		assert.GreaterOrEqual(t, elapsed, 300*time.Millisecond, "stale tick delivered after rearm")
	case <-time.After(5 * time.Second):
		t.Fatal("Expected the rearmed timer to fire")
	}
}

func TestDisarm(t *testing.T) {
	timer := time.NewTimer(time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	disarm(timer)

	select {
	case <-timer.C:
		t.Fatal("Expected no tick after disarm")
	case <-time.After(100 * time.Millisecond):
	}

	// Disarming an already stopped timer must not block.
	disarm(timer)
}
