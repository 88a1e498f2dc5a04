package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"facilpay-api/config"
)

var root *zap.Logger

// Init builds the process-wide logger: a rotating combined file at the
// configured level, a rotating error file at error level and above, and an
// optional colorized console sink in pretty mode. Every record carries the
// service name and environment. Returns an error if the log directory cannot
// be created; callers must treat that as fatal.
func Init(cfg *config.Config) error {
	if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
		return fmt.Errorf("create log directory %s: %w", cfg.LogDir, err)
	}

	level, err := zapcore.ParseLevel(cfg.ResolvedLogLevel())
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.ResolvedLogLevel(), err)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	jsonEncoder := zapcore.NewJSONEncoder(encoderConfig)

	combined := zapcore.NewCore(jsonEncoder, zapcore.AddSync(newRotator(cfg, "combined.log")), level)
	errors := zapcore.NewCore(jsonEncoder, zapcore.AddSync(newRotator(cfg, "error.log")), zapcore.ErrorLevel)

	cores := []zapcore.Core{combined, errors}
	if cfg.ResolvedLogPretty() {
		consoleConfig := encoderConfig
		consoleConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		console := zapcore.NewCore(zapcore.NewConsoleEncoder(consoleConfig), zapcore.Lock(os.Stdout), level)
		cores = append(cores, console)
	}

	root = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).With(
		zap.String("service", cfg.ServiceName),
		zap.String("environment", cfg.Environment),
	)
	return nil
}

func newRotator(cfg *config.Config, name string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogDir, name),
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogRetentionDays,
		MaxAge:     cfg.LogRetentionDays,
	}
}

// L returns the root logger. Falls back to a no-op logger when Init was never
// called, so tests and tooling do not need the file sinks.
func L() *zap.Logger {
	if root == nil {
		return zap.NewNop()
	}
	return root
}

// Named returns a child logger bound to the given module name.
func Named(module string) *zap.Logger {
	return L().With(zap.String("module", module))
}

// Sync flushes buffered records. Called on shutdown.
func Sync() {
	if root != nil {
		_ = root.Sync()
	}
}
