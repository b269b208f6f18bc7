package pipeline

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/BuschnicK/GpxToKml/internal/config"
	"github.com/BuschnicK/GpxToKml/internal/display"
	"github.com/BuschnicK/GpxToKml/internal/logging"
)

// backpressureFactor bounds the number of enqueued-or-running tasks to a
// small multiple of the worker count, so memory use stays proportional to
// the pool size rather than the directory listing.
const backpressureFactor = 2

// Run is the top-level batch entry point. It discovers input files, fans them
// out to a fixed worker pool under admission control, drains all work, and
// returns the aggregate summary. A non-nil error means nothing was scheduled
// (fatal pre-flight failure); per-file failures are only counted.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (Summary, error) {
	files, err := Discover(cfg.InputDir)
	if err != nil {
		return Summary{}, err
	}

	log.Info("Found %s", display.FormatCount(len(files), "file"))
	start := time.Now()

	workers := cfg.Workers
	stats := &runStats{}
	tasks := make(chan Task)
	gate := semaphore.NewWeighted(int64(backpressureFactor * workers))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				runTask(t, stats, log)
				gate.Release(1)
			}
		}()
	}

	// Single producer: block on the gate until the in-flight count drops
	// below backpressureFactor × workers, then dispatch.
	for _, path := range files {
		log.Info("Reading: %s", path)
		if err := gate.Acquire(ctx, 1); err != nil {
			log.Warn("Interrupted, draining in-flight work")
			break
		}
		stats.admit()
		tasks <- Task{Source: path, OutputDir: cfg.OutputDir}
	}

	// Clean drain: stop producing, wait for every dispatched task to reach a
	// terminal state, then report.
	close(tasks)
	wg.Wait()

	summary := stats.summary(len(files), time.Since(start))
	logSummary(log, summary)
	return summary, nil
}

// runTask drives one task to its terminal state and settles the counters.
// Failures are isolated here: they are logged and counted, never propagated.
func runTask(t Task, stats *runStats, log *logging.Logger) {
	out := t.Convert()
	if out.Succeeded() {
		log.Info("Writing: %s", out.Output)
	} else {
		log.Error("%v", out.Err)
	}
	stats.settle(out.Succeeded())
}

func logSummary(log *logging.Logger, s Summary) {
	log.Info("==============================")
	log.Info("Done: %d succeeded, %d failed (%s in %s)",
		s.Succeeded, s.Failed,
		display.FormatCount(s.Total, "file"),
		display.FormatDuration(s.Elapsed))
}
