package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"OpenSimplex/internal/logger"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// settle absorbs the burst of events a single editor save produces.
const settle = 100 * time.Millisecond

// watch calls onChange after every change to path until ctx is done. The
// parent directory is watched because many editors save by renaming a temp
// file over the original, which drops a watch on the file itself.
func watch(ctx context.Context, path string, onChange func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	timer := time.NewTimer(settle)
	disarm(timer)

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("Watch stopped", zap.String("path", path))
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(ev.Name)
			if err != nil || name != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			logger.Log.Debug("Config changed", zap.String("op", ev.Op.String()))
			rearm(timer, settle)

		case <-timer.C:
			if err := onChange(); err != nil {
				logger.Log.Error("Render failed", zap.String("path", path), zap.Error(err))
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Log.Warn("Watcher error", zap.Error(err))
		}
	}
}

// disarm stops t and discards a fire that is already pending.
func disarm(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}

// rearm restarts t for d. A stale tick buffered before the call is dropped,
// so the next receive on t.C happens no earlier than d from now.
func rearm(t *time.Timer, d time.Duration) {
	disarm(t)
	t.Reset(d)
}
