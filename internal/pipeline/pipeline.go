// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"io"
	"sync"

	"orientseq-core/orient"
	"orientseq/internal/seqio"
)

// Config controls the orientation pipeline.
type Config struct {
	Threads       int // number of worker goroutines (>=1)
	Threshold     int // ambiguity threshold on the A-T run difference
	MaxMismatches int // scanner run tolerance (0 = exact runs only)
}

// Oriented is one processed read: the (possibly rewritten) record, its
// classification, and the tail-run lengths that produced it.
type Oriented struct {
	Rec   seqio.Record
	Class orient.Class
	Runs  orient.RunLengths
}

// ForEachRecord reads all records from src, orients them, and calls visit
// exactly once per record, in input order. Scanning, classification and the
// reverse-complement rewrite run on worker goroutines; a collector goroutine
// restores input order and is the only writer of the stats accumulator.
// It returns the final stats and the first error encountered (including
// context cancellation). On error, records already visited stay emitted.
func ForEachRecord(
	ctx context.Context,
	cfg Config,
	src seqio.Reader,
	visit func(Oriented) error,
) (orient.Stats, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	type job struct {
		idx int
		rec seqio.Record
	}
	type result struct {
		idx int
		out Oriented
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan result, cfg.Threads*2)

	// Workers: pure per-record compute.
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
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
					runs := orient.ScanPolyRuns(j.rec.Seq, cfg.MaxMismatches)
					class := orient.Classify(runs, cfg.Threshold)
					if class == orient.ReverseComplement {
						j.rec.ReverseComplement()
					}
					select {
					case results <- result{idx: j.idx, out: Oriented{Rec: j.rec, Class: class, Runs: runs}}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: re-sequences to input order, owns stats and cerr, calls
	// visit. cerr is written by this goroutine only and read by the caller
	// after cwg.Wait.
	var (
		stats   orient.Stats
		cerr    error
		cwg     sync.WaitGroup
		pending = make(map[int]Oriented, cfg.Threads*4)
		next    = 0
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for r := range results {
			if cerr != nil {
				continue
			}
			pending[r.idx] = r.out
			for {
				o, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				stats.Add(o.Class, len(o.Rec.Seq), o.Runs.Tail(o.Class))
				if err := visit(o); err != nil && cerr == nil {
					cerr = err
				}
			}
		}
	}()

	// Feed records in stream order. Read errors stay in ferr so the
	// collector goroutine is the only writer of cerr.
	var ferr error
	idx := 0
feed:
	for {
		rec, err := src.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			ferr = err
			break
		}
		select {
		case <-ctx.Done():
			break feed
		case jobs <- job{idx: idx, rec: rec}:
			idx++
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return stats, ctx.Err()
	}
	if cerr != nil {
		return stats, cerr
	}
	return stats, ferr
}
