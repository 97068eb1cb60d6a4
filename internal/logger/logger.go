package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It is a no-op logger until Init runs so
// packages can log from tests without setup.
var Log = zap.NewNop()

var (
	level    = zap.NewAtomicLevelAt(zap.InfoLevel)
	initOnce sync.Once
)

// Init builds the console logger. Calling it more than once is harmless.
func Init() {
	initOnce.Do(func() {
		config := zap.NewDevelopmentConfig()
		config.Level = level
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		config.DisableStacktrace = true

		built, err := config.Build()
		if err != nil {
			// Keep the no-op logger, there is nowhere to report this.
			return
		}
		Log = built.Named("floatbook")
	})
}

// SetDebug toggles debug level output at runtime.
func SetDebug(debug bool) {
	if debug {
		level.SetLevel(zap.DebugLevel)
		return
	}
	level.SetLevel(zap.InfoLevel)
}

// Sync flushes buffered entries, errors from stderr syncing are ignored.
func Sync() {
	_ = Log.Sync()
}
