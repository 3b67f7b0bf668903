package solve

import (
	"log"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/sfce/sfce/internal/board"
	"github.com/sfce/sfce/internal/cache"
	"github.com/sfce/sfce/internal/input"
	"github.com/sfce/sfce/internal/pattern"
	"github.com/sfce/sfce/internal/placement"
)

// PercentRequest bundles a `percent` driver's inputs.
type PercentRequest struct {
	Board      board.Board
	Pattern    pattern.Pattern
	Clears     Range
	Continuous Range
	NoHold     bool
	Handling   input.Profile
	Store      *cache.Store
}

// PercentResult reports the success ratio of a `percent` run: how many
// base queues admit at least one satisfying sequence, and which do
// not.
type PercentResult struct {
	Total   int
	Success int
	Failing []pattern.Queue
}

// Ratio is Success/Total as a percentage, 0 when Total is 0.
func (r PercentResult) Ratio() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Success) / float64(r.Total) * 100
}

// Percent reports, per base queue from the pattern (each considered
// successful if any of its hold-variants yields >=1 satisfying
// sequence), the fraction that succeed and the list that don't.
func Percent(req PercentRequest) (PercentResult, error) {
	var bases []pattern.Queue
	pattern.Expand(req.Pattern, func(q pattern.Queue) { bases = append(bases, q) })

	var mu sync.Mutex
	result := PercentResult{Total: len(bases)}
	var done int64

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())

	for _, base := range bases {
		base := base
		g.Go(func() error {
			variants := []pattern.Queue{base}
			if !req.NoHold {
				variants = pattern.HoldQueues(base)
			}

			succeeded := false
			for _, v := range variants {
				if succeeded {
					break
				}
				placement.AllPlacementsOfQueue(req.Board, v, func(seq placement.Sequence) {
					if succeeded {
						return
					}
					if !req.Clears.Contains(seq.TotalClears()) {
						return
					}
					if !seq.ContinuousOK(req.Continuous.Min, req.Continuous.Max, req.Continuous.HasMax) {
						return
					}
					succeeded = true
				})
			}

			mu.Lock()
			if succeeded {
				result.Success++
			} else {
				result.Failing = append(result.Failing, base)
			}
			mu.Unlock()

			n := atomic.AddInt64(&done, 1)
			log.Printf("[solve] percent: %s/%s queues processed", humanize.Comma(n), humanize.Comma(int64(len(bases))))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return PercentResult{}, err
	}
	return result, nil
}
