// internal/pipeline/pipeline.go
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/vbauerster/mpb/v8"

	"github.com/kloetzl/TUMmer/internal/esa"
	"github.com/kloetzl/TUMmer/internal/mum"
	"github.com/kloetzl/TUMmer/internal/seq"
	"github.com/kloetzl/TUMmer/internal/writers"
)

// Config controls the query scan.
type Config struct {
	Threads   int // worker goroutines (0 = all CPUs)
	Forward   bool
	Revcomp   bool
	Threshold int // resolved once per reference

	ExtraVerbose bool     // per-pair "comparing i and j" lines
	Bar          *mpb.Bar // optional progress over queries
}

// Run fans the queries out to workers against the shared read-only
// index. Each worker renders the forward and/or reverse block of its
// query into a private buffer; a single collector goroutine writes
// whole blocks, so the stream is a bag of intact per-query blocks with
// anchors ordered within each block.
func Run(ctx context.Context, cfg Config, index *esa.ESA, queries []seq.Sequence, out io.Writer, errw io.Writer) error {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if len(queries) > 0 && threads > len(queries) {
		threads = len(queries)
	}

	type job struct {
		idx int
		s   seq.Sequence
	}
	jobs := make(chan job, threads*2)
	results := make(chan []byte, threads*2)

	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					if cfg.ExtraVerbose {
						fmt.Fprintf(errw, "comparing %d and %d\n", 0, j.idx)
					}

					var buf bytes.Buffer
					if cfg.Forward {
						anchors := mum.Scan(index, j.s.Data, cfg.Threshold)
						_ = writers.WriteBlock(&buf, j.s.Name, false, anchors)
					}
					if cfg.Revcomp {
						anchors := mum.Scan(index, seq.RevComp(j.s.Data), cfg.Threshold)
						_ = writers.WriteBlock(&buf, j.s.Name, true, anchors)
					}
					if cfg.Bar != nil {
						cfg.Bar.Increment()
					}

					select {
					case results <- buf.Bytes():
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: the only writer of out.
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for block := range results {
			if cerr != nil {
				continue
			}
			if _, err := out.Write(block); err != nil {
				cerr = err
			}
		}
	}()

feed:
	for i, s := range queries {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- job{idx: i + 1, s: s}:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return cerr
}
