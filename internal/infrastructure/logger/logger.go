package logger

import (
	"fmt"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Info  *log.Logger
	Error *log.Logger
	Debug *log.Logger
	Warn  *log.Logger

	base *zap.Logger
)

func init() {
	_ = Init("info")
}

// Init rebuilds the leveled loggers on top of a JSON zap core filtered at level.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Sampling = nil
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build zap logger: %w", err)
	}

	base = l
	Info = stdLogAt(l, zapcore.InfoLevel)
	Error = stdLogAt(l, zapcore.ErrorLevel)
	Debug = stdLogAt(l, zapcore.DebugLevel)
	Warn = stdLogAt(l, zapcore.WarnLevel)
	return nil
}

// L returns the structured logger behind the leveled handles.
func L() *zap.Logger {
	return base
}

func Sync() {
	_ = base.Sync()
}

func stdLogAt(l *zap.Logger, lvl zapcore.Level) *log.Logger {
	std, err := zap.NewStdLogAt(l, lvl)
	if err != nil {
		return zap.NewStdLog(l)
	}
	return std
}
