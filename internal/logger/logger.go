// Package logger holds the shared zap logger used by the noisegen command
// and the sampler.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It is a no-op until Init or InitWith runs,
// so packages can log from tests without setting anything up.
var Log = zap.NewNop()

// Init sets up the production logger.
func Init() {
	InitWith(false)
}

// InitWith sets up a development logger with debug output when debug is set,
// and the production JSON logger otherwise.
func InitWith(debug bool) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	l, err := cfg.Build()
	if err != nil {
		// Fall back to a logger that cannot fail to build.
		l = zap.NewExample()
		l.Warn("Could not build configured logger", zap.Error(err))
	}
	Log = l
}

// Sync flushes buffered entries. Errors from syncing stderr on some terminals
// are ignored.
func Sync() {
	_ = Log.Sync()
}
