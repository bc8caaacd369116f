// Package logging builds the structured logger used by the command.
package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Option configures a logger.
type Option func(*options)

type options struct {
	level  zapcore.Level
	sink   zapcore.WriteSyncer
	fields []zap.Field
}

// WithLevel sets the minimum enabled level.
func WithLevel(level zapcore.Level) Option {
	return func(o *options) { o.level = level }
}

// WithSink replaces the default stderr sink.
func WithSink(ws zapcore.WriteSyncer) Option {
	return func(o *options) { o.sink = ws }
}

// WithFields attaches fields to every entry.
func WithFields(fields ...zap.Field) Option {
	return func(o *options) { o.fields = append(o.fields, fields...) }
}

// New returns a JSON logger writing to stderr at info level unless
// configured otherwise. Stdout stays free for table output.
func New(opts ...Option) *zap.Logger {
	o := options{
		level: zapcore.InfoLevel,
		sink:  zapcore.Lock(os.Stderr),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), o.sink, zap.NewAtomicLevelAt(o.level))

	return zap.New(core, zap.AddCaller()).With(o.fields...)
}

// ParseLevel converts a level name such as "debug" or "WARN".
func ParseLevel(s string) (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}
