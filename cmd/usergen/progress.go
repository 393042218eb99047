package main

import (
	"io"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/dmitrymomot/usergen/core/pipeline"
)

const progressRefresh = 120 * time.Millisecond

// watchProgress renders a progress bar fed from the pipeline counters. The
// returned function stops polling, completes the bar, and blocks until the
// final frame is flushed.
func watchProgress(w io.Writer, p *pipeline.Pipeline, total int64) (finish func()) {
	bars := mpb.New(
		mpb.WithOutput(w),
		mpb.WithWidth(60),
		mpb.WithRefreshRate(progressRefresh),
	)
	bar := bars.AddBar(total,
		mpb.PrependDecorators(
			decor.Name("expanding "),
			decor.CountersNoUnit("%d / %d"),
		),
		mpb.AppendDecorators(decor.Percentage()),
	)

	current := func() int64 {
		// Skipped renders count toward the expected total even though
		// they never reach the output.
		stats := p.Stats()
		return stats.Lines + stats.Skipped
	}

	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		ticker := time.NewTicker(progressRefresh)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				bar.SetCurrent(current())
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		<-stopped
		bar.SetCurrent(current())
		// A negative total adopts the current value, so the bar also
		// completes when a run stops early.
		bar.SetTotal(-1, true)
		bars.Wait()
	}
}
