// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/cheggaaa/pb/v3"

	"github.com/RunningMSN/SPIDER/internal/engine"
	"github.com/RunningMSN/SPIDER/internal/refdb"
)

// Config controls the batch.
type Config struct {
	Threads  int       // number of worker goroutines (>=1)
	Progress io.Writer // progress bar destination; nil disables it
}

// ForEachTable crawls every assembly and calls visit with each table in the
// order of assemblies, as soon as all earlier tables have been visited. It
// stops at the first crawl or visit error and returns it; a cancelled
// context returns ctx.Err().
func ForEachTable(
	ctx context.Context,
	cfg Config,
	assemblies []string,
	refs []refdb.Reference,
	cr Crawler,
	visit func(engine.Table) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var bar *pb.ProgressBar
	if cfg.Progress != nil && len(assemblies) > 0 {
		bar = pb.Full.New(len(assemblies)).SetWriter(cfg.Progress).Start()
		defer bar.Finish()
	}

	type result struct {
		idx   int
		table engine.Table
		err   error
	}
	jobs := make(chan int)
	results := make(chan result, cfg.Threads)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				t, err := cr.CrawlReferences(ctx, assemblies[i], refs)
				if err != nil {
					err = fmt.Errorf("%s: %w", assemblies[i], err)
				}
				select {
				case results <- result{idx: i, table: t, err: err}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	// Feed work
	go func() {
		defer close(jobs)
		for i := range assemblies {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	// Collector: restore input order
	var (
		firstErr error
		pending  = make(map[int]engine.Table)
		next     = 0
	)
	for res := range results {
		if firstErr != nil {
			continue
		}
		if res.err != nil {
			firstErr = res.err
			cancel()
			continue
		}
		if bar != nil {
			bar.Increment()
		}
		pending[res.idx] = res.table
		for {
			t, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if err := visit(t); err != nil {
				firstErr = err
				cancel()
				break
			}
		}
	}

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
