package pipeline

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/usergen/pkg/linebuf"
)

const (
	// DefaultWorkers is the worker count used when none is configured.
	DefaultWorkers = 4

	// DefaultBatchSize is how many records the producer packs into one
	// batch before handing it to a worker.
	DefaultBatchSize = 200
)

// Option is a functional option for configuring a pipeline.
type Option func(*options)

type options struct {
	workers       int
	batchSize     int
	bufferLines   int
	caseSensitive bool
	parallel      bool
	logger        *slog.Logger
}

func defaultOptions() options {
	return options{
		workers:     DefaultWorkers,
		batchSize:   DefaultBatchSize,
		bufferLines: linebuf.DefaultMaxLines,
		parallel:    true,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithWorkers sets how many workers expand records in parallel.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithBatchSize sets how many records a worker takes per pull.
func WithBatchSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.batchSize = n
		}
	}
}

// WithBufferLines sets the output writer's flush threshold in lines.
func WithBufferLines(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bufferLines = n
		}
	}
}

// WithCaseSensitive keeps the original casing of generated lines instead of
// lowercasing everything.
func WithCaseSensitive(on bool) Option {
	return func(o *options) {
		o.caseSensitive = on
	}
}

// WithSequential forces the single-threaded path. It emits lines in record
// order and is byte-for-byte reproducible across runs.
func WithSequential() Option {
	return func(o *options) {
		o.parallel = false
	}
}

// WithLogger sets the pipeline logger. The default discards all records.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
