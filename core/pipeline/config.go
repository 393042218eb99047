package pipeline

import (
	"io"

	"github.com/dmitrymomot/usergen/core/format"
	"github.com/dmitrymomot/usergen/core/namesource"
	"github.com/dmitrymomot/usergen/pkg/linebuf"
)

// Config holds pipeline settings for environment-based configuration.
type Config struct {
	Workers       int  `env:"USERGEN_WORKERS" envDefault:"4"`
	BatchSize     int  `env:"USERGEN_BATCH_SIZE" envDefault:"200"`
	BufferLines   int  `env:"USERGEN_BUFFER_LINES" envDefault:"1000"`
	CaseSensitive bool `env:"USERGEN_CASE_SENSITIVE" envDefault:"false"`
	Sequential    bool `env:"USERGEN_SEQUENTIAL" envDefault:"false"`
}

// DefaultConfig returns the settings used when no environment overrides are
// present.
func DefaultConfig() Config {
	return Config{
		Workers:     DefaultWorkers,
		BatchSize:   DefaultBatchSize,
		BufferLines: linebuf.DefaultMaxLines,
	}
}

// NewFromConfig builds a pipeline from an environment-driven Config.
// Explicit options take precedence over config values.
func NewFromConfig(cfg Config, patterns []*format.Pattern, source namesource.Source, dst io.Writer, opts ...Option) (*Pipeline, error) {
	base := []Option{
		WithWorkers(cfg.Workers),
		WithBatchSize(cfg.BatchSize),
		WithBufferLines(cfg.BufferLines),
		WithCaseSensitive(cfg.CaseSensitive),
	}
	if cfg.Sequential {
		base = append(base, WithSequential())
	}
	return New(patterns, source, dst, append(base, opts...)...)
}
