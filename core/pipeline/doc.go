// Package pipeline coordinates username generation: it pulls name records
// from a source, expands every compiled pattern over every record across a
// bounded worker pool, and writes the generated lines to a destination
// through a buffered writer.
//
// # Architecture
//
// A run has three stages connected by bounded channels. One producer
// goroutine owns the source's pull cursor and packs records into batches.
// A fixed pool of workers expands all patterns for each record and emits
// one contiguous line group per record. One collector goroutine owns the
// sink, so the destination only ever sees a single writer. The channel
// capacities are the backpressure: when the destination is slow, workers
// block, and the producer stops pulling.
//
// Output order across records is unspecified on the parallel path; lines
// belonging to one record always stay together. With one worker, or with
// WithSequential, records expand inline in source order and the output is
// byte-for-byte reproducible.
//
// # Usage
//
//	patterns, err := format.CompileAll([]string{"first.last", "first[1]last"})
//	if err != nil {
//		return err
//	}
//
//	src, err := namesource.Open("users.txt")
//	if err != nil {
//		return err
//	}
//	defer src.Close()
//
//	out, err := os.Create("usernames.txt")
//	if err != nil {
//		return err
//	}
//	defer out.Close()
//
//	p, err := pipeline.New(patterns, src, out,
//		pipeline.WithWorkers(8),
//		pipeline.WithLogger(logger),
//	)
//	if err != nil {
//		return err
//	}
//	if err := p.Run(ctx); err != nil {
//		return err
//	}
//
// # Configuration
//
// Config carries the same knobs with env tags for environment-based setup:
//
//	cfg, err := env.ParseAs[pipeline.Config]()
//	if err != nil {
//		return err
//	}
//	p, err := pipeline.NewFromConfig(cfg, patterns, src, out)
//
// # Shutdown
//
// The first error from the source, the destination, or the context cancels
// the run: the producer stops pulling, in-flight workers finish their
// current batch, the collector drains, and the sink is flushed before Run
// returns the error. Closing the source and the destination remains the
// caller's job, so a pipeline never double-closes handles it does not own.
//
// # Observability
//
// Stats exposes atomic counters (records consumed, lines written, blanks
// skipped) that callers may poll from another goroutine while Run is in
// flight, e.g. to drive a progress bar. All log records carry a per-run
// UUID under run_id.
package pipeline
