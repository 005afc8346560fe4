// Package log carries a zap logger through context for the demo command. The
// library packages themselves never log; only cmd binaries wire this up.
package log

import (
	"context"

	"go.uber.org/zap"
)

type ctxkey string

const loggerContextKey ctxkey = "logger"

// DefaultGlobals replaces the global zap logger with the development
// configuration used by the demo command. The returned func restores the
// previous globals.
func DefaultGlobals() func() {
	return zap.ReplaceGlobals(zap.Must(zap.NewDevelopment(zap.AddCallerSkip(1))))
}

// FromContext returns the logger stored in ctx, or the global logger.
func FromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return zap.L()
	}
	if logger, ok := ctx.Value(loggerContextKey).(*zap.Logger); ok {
		return logger
	}
	return zap.L()
}

// With returns a context whose logger carries the extra fields.
func With(ctx context.Context, args ...zap.Field) context.Context {
	return context.WithValue(ctx, loggerContextKey, FromContext(ctx).With(args...))
}

func Debug(ctx context.Context, msg string, args ...zap.Field) {
	FromContext(ctx).Debug(msg, args...)
}

func Info(ctx context.Context, msg string, args ...zap.Field) {
	FromContext(ctx).Info(msg, args...)
}

func Warn(ctx context.Context, msg string, args ...zap.Field) {
	FromContext(ctx).Warn(msg, args...)
}

func Error(ctx context.Context, msg string, args ...zap.Field) {
	FromContext(ctx).Error(msg, args...)
}

func Fatal(ctx context.Context, msg string, args ...zap.Field) {
	FromContext(ctx).Fatal(msg, args...)
}
