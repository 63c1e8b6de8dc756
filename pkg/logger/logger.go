package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a named sugared logger shared by every package of the service.
type Logger struct {
	*zap.SugaredLogger
}

var (
	rootOnce sync.Once
	root     *zap.Logger
	level    = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// SetLevel changes the level of every logger created by this package.
func SetLevel(lvl string) error {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(lvl)))); err != nil {
		return fmt.Errorf("parse log level %q: %w", lvl, err)
	}
	level.SetLevel(l)
	return nil
}

func rootLogger() *zap.Logger {
	rootOnce.Do(func() {
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.TimeKey = "ts"
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encCfg),
			zapcore.Lock(os.Stderr),
			level,
		)
		root = zap.New(core, zap.AddCaller())
	})
	return root
}

// Named returns a logger with the given name.
func Named(name string) (*Logger, error) {
	if name == "" {
		return nil, fmt.Errorf("logger name is required")
	}
	return &Logger{SugaredLogger: rootLogger().Named(name).Sugar()}, nil
}

// MustNamed is like Named but panics on error.
func MustNamed(name string) *Logger {
	l, err := Named(name)
	if err != nil {
		panic(err)
	}
	return l
}

// Unwrap exposes the underlying sugared logger.
func (l *Logger) Unwrap() *zap.SugaredLogger {
	return l.SugaredLogger
}

// Reflect builds a field that is serialized with reflection.
func (l *Logger) Reflect(key string, value any) zap.Field {
	return zap.Reflect(key, value)
}
