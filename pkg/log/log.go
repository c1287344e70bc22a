package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig holds the logger settings from config.
type ZapConfig struct {
	Level        string // debug | info | warn | error
	Mode         string // development | production
	Encoding     string // console | json
	ColorEnabled bool
}

// Logger is the context-aware logging interface used across the service.
// The context is accepted on every call so request-scoped fields can be
// attached later without changing call sites.
type Logger interface {
	Debug(ctx context.Context, args ...any)
	Debugf(ctx context.Context, template string, args ...any)
	Info(ctx context.Context, args ...any)
	Infof(ctx context.Context, template string, args ...any)
	Warn(ctx context.Context, args ...any)
	Warnf(ctx context.Context, template string, args ...any)
	Error(ctx context.Context, args ...any)
	Errorf(ctx context.Context, template string, args ...any)
	Fatal(ctx context.Context, args ...any)
	Fatalf(ctx context.Context, template string, args ...any)
	DPanic(ctx context.Context, args ...any)
	DPanicf(ctx context.Context, template string, args ...any)
	Panic(ctx context.Context, args ...any)
	Panicf(ctx context.Context, template string, args ...any)
}

type zapLogger struct {
	sl *zap.SugaredLogger
}

// Init builds the zap-backed Logger from config. Invalid settings fall back
// to production JSON at info level rather than failing startup.
func Init(cfg ZapConfig) Logger {
	var zcfg zap.Config
	if cfg.Mode == "development" {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}

	if cfg.Encoding != "" {
		zcfg.Encoding = cfg.Encoding
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	if cfg.ColorEnabled && zcfg.Encoding == "console" {
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := zcfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewNop()
	}

	return &zapLogger{sl: l.Sugar()}
}

func (z *zapLogger) Debug(ctx context.Context, args ...any)  { z.sl.Debug(args...) }
func (z *zapLogger) Info(ctx context.Context, args ...any)   { z.sl.Info(args...) }
func (z *zapLogger) Warn(ctx context.Context, args ...any)   { z.sl.Warn(args...) }
func (z *zapLogger) Error(ctx context.Context, args ...any)  { z.sl.Error(args...) }
func (z *zapLogger) Fatal(ctx context.Context, args ...any)  { z.sl.Fatal(args...) }
func (z *zapLogger) DPanic(ctx context.Context, args ...any) { z.sl.DPanic(args...) }
func (z *zapLogger) Panic(ctx context.Context, args ...any)  { z.sl.Panic(args...) }

func (z *zapLogger) Debugf(ctx context.Context, template string, args ...any) {
	z.sl.Debugf(template, args...)
}

func (z *zapLogger) Infof(ctx context.Context, template string, args ...any) {
	z.sl.Infof(template, args...)
}

func (z *zapLogger) Warnf(ctx context.Context, template string, args ...any) {
	z.sl.Warnf(template, args...)
}

func (z *zapLogger) Errorf(ctx context.Context, template string, args ...any) {
	z.sl.Errorf(template, args...)
}

func (z *zapLogger) Fatalf(ctx context.Context, template string, args ...any) {
	z.sl.Fatalf(template, args...)
}

func (z *zapLogger) DPanicf(ctx context.Context, template string, args ...any) {
	z.sl.DPanicf(template, args...)
}

func (z *zapLogger) Panicf(ctx context.Context, template string, args ...any) {
	z.sl.Panicf(template, args...)
}
