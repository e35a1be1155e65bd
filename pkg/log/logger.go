// Package log provides the structured logger used across the SAGE crypto
// core. It wraps ipfs/go-log (zap underneath) behind a small key/value
// interface so packages never depend on a concrete logging backend.
package log

import (
	"context"
	"os"

	ipfslog "github.com/ipfs/go-log/v2"
	"go.uber.org/zap"
)

// Logger is a leveled key/value logger.
type Logger interface {
	// Debug logs a message at debug level.
	// keysAndValues are treated as key-value pairs (e.g., "key1", value1, "key2", value2).
	Debug(msg string, keysAndValues ...interface{})
	// Info logs a message at info level.
	Info(msg string, keysAndValues ...interface{})
	// Warn logs a message at warn level.
	Warn(msg string, keysAndValues ...interface{})
	// Error logs a message at error level.
	Error(msg string, keysAndValues ...interface{})
	// With returns a new logger carrying the given key-value pair on every entry.
	With(key string, value interface{}) Logger
	// Named returns a new logger for the given subsystem name.
	Named(name string) Logger
}

// New returns a Logger for the given subsystem name.
func New(name string) Logger {
	return &ipfsLogger{
		lg: ipfslog.Logger(name).SugaredLogger.Desugar().WithOptions(zap.AddCallerSkip(1)).Sugar(),
	}
}

type ipfsLogger struct {
	lg *zap.SugaredLogger
}

func (l *ipfsLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.lg.Debugw(msg, keysAndValues...)
}

func (l *ipfsLogger) Info(msg string, keysAndValues ...interface{}) {
	l.lg.Infow(msg, keysAndValues...)
}

func (l *ipfsLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.lg.Warnw(msg, keysAndValues...)
}

func (l *ipfsLogger) Error(msg string, keysAndValues ...interface{}) {
	l.lg.Errorw(msg, keysAndValues...)
}

func (l *ipfsLogger) With(key string, value interface{}) Logger {
	return &ipfsLogger{lg: l.lg.With(key, value)}
}

func (l *ipfsLogger) Named(name string) Logger {
	return &ipfsLogger{lg: l.lg.Named(name)}
}

type loggerContextKey struct{}

// WithContext attaches the provided logger to the context.
func WithContext(ctx context.Context, lg Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, lg)
}

// FromContext retrieves the logger stored in the context, or a default
// logger if none is attached.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerContextKey{}).(Logger); ok {
		return l
	}
	return New("sage-crypto")
}

func init() {
	logLevel := os.Getenv("SAGE_CRYPTO_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	zapLevel, err := ipfslog.Parse(logLevel)
	if err != nil {
		zapLevel = ipfslog.LevelInfo
	}

	ipfslog.SetupLogging(ipfslog.Config{
		Level:  zapLevel,
		Stderr: true,
	})
}
