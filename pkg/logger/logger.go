package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logger shared by every layer.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Fatal(msg string, fields ...zap.Field)
	With(fields ...zap.Field) Logger
	Sync() error
}

type Config struct {
	IsDevelopment     bool
	Encoding          string
	Level             string
	DisableCaller     bool
	DisableStacktrace bool
}

type zapLogger struct {
	l *zap.Logger
}

// New builds a zap backed Logger. Unknown levels default to info.
func New(cfg Config) Logger {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	if cfg.IsDevelopment {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if cfg.Encoding == "console" {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), zap.NewAtomicLevelAt(level))

	opts := []zap.Option{}
	if !cfg.DisableCaller {
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(1))
	}
	if !cfg.DisableStacktrace {
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
	}
	if cfg.IsDevelopment {
		opts = append(opts, zap.Development())
	}
	return &zapLogger{l: zap.New(core, opts...)}
}

// NewNop returns a Logger that discards everything. Used by tests.
func NewNop() Logger {
	return &zapLogger{l: zap.NewNop()}
}

// Wrap adapts an existing zap logger.
func Wrap(l *zap.Logger) Logger {
	return &zapLogger{l: l}
}

func (z *zapLogger) Debug(msg string, fields ...zap.Field) { z.l.Debug(msg, fields...) }
func (z *zapLogger) Info(msg string, fields ...zap.Field)  { z.l.Info(msg, fields...) }
func (z *zapLogger) Warn(msg string, fields ...zap.Field)  { z.l.Warn(msg, fields...) }
func (z *zapLogger) Error(msg string, fields ...zap.Field) { z.l.Error(msg, fields...) }
func (z *zapLogger) Fatal(msg string, fields ...zap.Field) { z.l.Fatal(msg, fields...) }
func (z *zapLogger) Sync() error                           { return z.l.Sync() }

func (z *zapLogger) With(fields ...zap.Field) Logger {
	return &zapLogger{l: z.l.With(fields...)}
}
