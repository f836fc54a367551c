package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	globalLogger *ZapLogger
	globalMu     sync.RWMutex
	fallbackOnce sync.Once
)

// SetGlobalLogger installs the process-wide logger. Call once at startup,
// before any package-level logging happens.
func SetGlobalLogger(l *ZapLogger) {
	globalMu.Lock()
	globalLogger = l
	globalMu.Unlock()
}

// GetGlobalLogger returns the installed logger, lazily creating a production
// zap logger when nothing was installed. Keeps library code and tests working
// without explicit setup.
func GetGlobalLogger() *ZapLogger {
	globalMu.RLock()
	defer globalMu.RUnlock()

	if globalLogger == nil {
		fallbackOnce.Do(func() {
			l, _ := zap.NewProduction()
			globalLogger = &ZapLogger{Logger: l, sugar: l.Sugar()}
		})
	}
	return globalLogger
}

// Package-level shortcuts through the global logger.

func Debug(msg string, fields ...Field) { GetGlobalLogger().Debug(msg, fields...) }

func Info(msg string, fields ...Field) { GetGlobalLogger().Info(msg, fields...) }

func Warn(msg string, fields ...Field) { GetGlobalLogger().Warn(msg, fields...) }

func Error(msg string, fields ...Field) { GetGlobalLogger().Error(msg, fields...) }

func Fatal(msg string, fields ...Field) { GetGlobalLogger().Fatal(msg, fields...) }

// WithError returns the global logger annotated with err.
func WithError(err error) *zap.Logger { return GetGlobalLogger().WithError(err) }
