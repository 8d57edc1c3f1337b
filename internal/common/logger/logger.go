package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger keeps the action-first logging style used across the services:
// every entry names the service, an action tag and optional fields.
type Logger struct {
	z *zap.Logger
}

var base = zap.NewNop()

// Init builds the shared zap backend. Call once at bootstrap; loggers
// created before Init stay silent, which is what the tests rely on.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	cfg.EncoderConfig.MessageKey = "action"
	z, err := cfg.Build(zap.WithCaller(false))
	if err != nil {
		return err
	}
	base = z
	return nil
}

func New(service string) *Logger {
	return &Logger{z: base.With(zap.String("service", service))}
}

// WithRequestID binds a session id to every subsequent entry.
func (l *Logger) WithRequestID(id string) *Logger {
	return &Logger{z: l.z.With(zap.String("request_id", id))}
}

func (l *Logger) Info(action string, fields map[string]any)  { l.z.Info(action, toZap(fields)...) }
func (l *Logger) Debug(action string, fields map[string]any) { l.z.Debug(action, toZap(fields)...) }
func (l *Logger) Warn(action string, fields map[string]any)  { l.z.Warn(action, toZap(fields)...) }

func (l *Logger) Error(action string, err error, fields map[string]any) {
	l.z.Error(action, append(toZap(fields), zap.Error(err))...)
}

func toZap(fields map[string]any) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}
