package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dmitrymomot/usergen/core/format"
	"github.com/dmitrymomot/usergen/core/logger"
	"github.com/dmitrymomot/usergen/core/namesource"
	"github.com/dmitrymomot/usergen/pkg/linebuf"
)

// Pipeline expands every compiled pattern over every record of a source and
// writes the generated lines to a destination through a buffered writer.
// Generated lines are not deduplicated: two patterns (or two records)
// producing the same string both reach the output.
//
// A pipeline is built once and run once; counters are readable through
// Stats while a run is in flight.
type Pipeline struct {
	patterns      []*format.Pattern
	source        namesource.Source
	sink          *linebuf.Writer
	log           *slog.Logger
	workers       int
	batchSize     int
	caseSensitive bool
	parallel      bool

	running atomic.Bool
	records atomic.Int64
	lines   atomic.Int64
	skipped atomic.Int64
}

// Stats is a point-in-time snapshot of pipeline counters.
type Stats struct {
	Records int64
	Lines   int64
	Skipped int64
	Running bool
}

// New builds a pipeline over the compiled patterns, the record source, and
// an already-open destination. The pipeline wraps the destination in a
// buffered line writer and flushes it on every exit path; closing the
// source and the destination stays with the caller.
func New(patterns []*format.Pattern, source namesource.Source, dst io.Writer, opts ...Option) (*Pipeline, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}
	if source == nil {
		return nil, ErrSourceNil
	}
	if dst == nil {
		return nil, ErrDestinationNil
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Pipeline{
		patterns:      patterns,
		source:        source,
		sink:          linebuf.NewWriter(dst, linebuf.WithMaxLines(o.bufferLines)),
		log:           o.logger,
		workers:       o.workers,
		batchSize:     o.batchSize,
		caseSensitive: o.caseSensitive,
		parallel:      o.parallel,
	}, nil
}

// Run drains the record source to completion and returns the first error
// encountered. The destination is flushed before Run returns, on success
// and on failure alike.
func (p *Pipeline) Run(ctx context.Context) error {
	if !p.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer p.running.Store(false)

	p.records.Store(0)
	p.lines.Store(0)
	p.skipped.Store(0)

	parallel := p.parallel && p.workers > 1
	log := p.log.With(logger.RunID(uuid.New().String()))
	log.InfoContext(ctx, "pipeline started",
		logger.Patterns(len(p.patterns)),
		logger.Workers(p.workers),
		slog.Bool("parallel", parallel))

	var err error
	if parallel {
		err = p.runParallel(ctx, log)
	} else {
		err = p.runSequential(ctx)
	}

	if ferr := p.sink.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	if err != nil {
		log.ErrorContext(ctx, "pipeline failed", logger.Error(err))
		return err
	}

	log.InfoContext(ctx, "pipeline finished",
		logger.Records(p.records.Load()),
		logger.Lines(p.lines.Load()),
		logger.Skipped(p.skipped.Load()))
	return nil
}

// Stats returns a snapshot of the counters for the current or last run.
func (p *Pipeline) Stats() Stats {
	return Stats{
		Records: p.records.Load(),
		Lines:   p.lines.Load(),
		Skipped: p.skipped.Load(),
		Running: p.running.Load(),
	}
}

// runSequential is the deterministic reference path: records expand inline,
// in source order, on the calling goroutine.
func (p *Pipeline) runSequential(ctx context.Context) error {
	lines := make([]string, 0, len(p.patterns))
	for p.source.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec := p.source.Record()
		lines = lines[:0]
		for _, pat := range p.patterns {
			lines = pat.AppendExpand(lines, rec, p.caseSensitive)
		}
		p.records.Add(1)
		if err := p.writeLines(lines); err != nil {
			return err
		}
	}
	if err := p.source.Err(); err != nil {
		return fmt.Errorf("record source: %w", err)
	}
	return nil
}

// runParallel fans batches of records out to workers and collects generated
// lines back onto a single writer goroutine. The bounded jobs and results
// channels are the backpressure that keeps memory flat: a slow destination
// blocks workers, which blocks the producer.
func (p *Pipeline) runParallel(ctx context.Context, log *slog.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan []format.Name, p.workers*2)
	results := make(chan []string, p.workers*2)

	var (
		firstErr error
		errOnce  sync.Once
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	// Producer: the only goroutine touching the source's pull cursor.
	var producerWG sync.WaitGroup
	producerWG.Add(1)
	go func() {
		defer producerWG.Done()
		defer close(jobs)

		batch := make([]format.Name, 0, p.batchSize)
		for p.source.Next() {
			batch = append(batch, p.source.Record())
			if len(batch) < p.batchSize {
				continue
			}
			select {
			case jobs <- batch:
				batch = make([]format.Name, 0, p.batchSize)
			case <-ctx.Done():
				return
			}
		}
		if err := p.source.Err(); err != nil {
			fail(fmt.Errorf("record source: %w", err))
			return
		}
		if len(batch) > 0 {
			select {
			case jobs <- batch:
			case <-ctx.Done():
			}
		}
	}()

	// Workers: expand all patterns per record, push one contiguous line
	// group per record.
	var workerWG sync.WaitGroup
	workerWG.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer workerWG.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Error("worker panic recovered", slog.Any("panic", r), logger.Stack())
					fail(fmt.Errorf("worker panic: %v", r))
				}
			}()

			for batch := range jobs {
				for _, rec := range batch {
					lines := make([]string, 0, len(p.patterns))
					for _, pat := range p.patterns {
						lines = pat.AppendExpand(lines, rec, p.caseSensitive)
					}
					p.records.Add(1)
					select {
					case results <- lines:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	go func() {
		workerWG.Wait()
		close(results)
	}()

	// Collector: single-writer discipline over the sink. On a write error
	// the remaining results drain so workers can exit.
	var writeFailed bool
	for lines := range results {
		if writeFailed {
			continue
		}
		if err := p.writeLines(lines); err != nil {
			fail(err)
			writeFailed = true
		}
	}
	producerWG.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

// writeLines pushes one record's lines to the sink, dropping lines that
// rendered empty.
func (p *Pipeline) writeLines(lines []string) error {
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			p.skipped.Add(1)
			continue
		}
		if err := p.sink.WriteLine(line); err != nil {
			return err
		}
		p.lines.Add(1)
	}
	return nil
}
