package logger

import (
	"io"
	"log/slog"
	"os"
)

type options struct {
	output io.Writer
	level  slog.Level
	json   bool
	attrs  []slog.Attr
}

// Option configures the logger returned by New.
type Option func(*options)

// WithOutput sets the log destination. Defaults to os.Stderr so log
// records never interleave with generated output on stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithLevel sets the minimum level to log. Defaults to slog.LevelInfo.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithJSON switches output to the JSON handler. Text is the default.
func WithJSON() Option {
	return func(o *options) {
		o.json = true
	}
}

// WithAttrs attaches attributes to every record the logger emits.
func WithAttrs(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// New creates a slog.Logger. Without options it writes text records to
// os.Stderr at Info level.
func New(opts ...Option) *slog.Logger {
	o := options{
		output: os.Stderr,
		level:  slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(&o)
	}

	ho := &slog.HandlerOptions{Level: o.level}

	var h slog.Handler
	if o.json {
		h = slog.NewJSONHandler(o.output, ho)
	} else {
		h = slog.NewTextHandler(o.output, ho)
	}
	if len(o.attrs) > 0 {
		h = h.WithAttrs(o.attrs)
	}
	return slog.New(h)
}
