package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. Development mode logs human readable
// console lines at debug level; otherwise JSON at info level to stderr.
func New(development bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		// logging must never take the handler down
		return zap.NewNop()
	}
	return l
}

// Sync flushes buffered entries. Errors are dropped: stderr sync fails on some platforms.
func Sync(l *zap.Logger) {
	_ = l.Sync()
}
