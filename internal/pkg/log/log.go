package log

import (
	"context"
	"fmt"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}

type logger struct {
	zap *otelzap.Logger
}

var global *otelzap.Logger

// SetupLogger builds the base zap logger with ISO8601 timestamps.
func SetupLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.TimeKey = "timestamp"

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// Init wraps l with otelzap and installs it as the process logger.
func Init(l *zap.Logger) {
	global = otelzap.New(l, otelzap.WithMinLevel(zapcore.InfoLevel))
	otelzap.ReplaceGlobals(global)
}

// Setup returns the otelzap logger used by handlers, initialising it on first use.
func Setup() *otelzap.Logger {
	if global == nil {
		Init(SetupLogger())
	}
	return global
}

func GetLogger() Logger {
	return &logger{zap: Setup()}
}

func (l *logger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.zap.Ctx(ctx).Info(msg, fields(args)...)
}

func (l *logger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.zap.Ctx(ctx).Warn(msg, fields(args)...)
}

func (l *logger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.zap.Ctx(ctx).Error(msg, fields(args)...)
}

func fields(args []interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case zap.Field:
			out = append(out, v)
		case error:
			out = append(out, zap.Error(v))
		default:
			out = append(out, zap.Any(fmt.Sprintf("arg%d", i), v))
		}
	}
	return out
}
