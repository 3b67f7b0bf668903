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

// MoveRequest bundles a `move` driver's inputs.
type MoveRequest struct {
	Board         board.Board
	Pattern       pattern.Pattern
	Clears        Range
	Continuous    Range
	Minimal       bool
	NoHold        bool
	RequireDoable bool
	Handling      input.Profile
	Store         *cache.Store
}

// Move enumerates every placement sequence (over every queue and,
// unless NoHold is set, every hold-variant of every queue) that
// satisfies the clears/continuous-clears/doable filters, fanning out in
// parallel over the queue × hold-variant branches.
func Move(req MoveRequest) ([]placement.Sequence, error) {
	queues := expandQueues(req.Pattern, req.NoHold)

	var mu sync.Mutex
	var results []placement.Sequence
	seen := make(map[string]bool)
	var done int64

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())

	for _, q := range queues {
		q := q
		g.Go(func() error {
			placement.AllPlacementsOfQueue(req.Board, q, func(seq placement.Sequence) {
				if !req.Clears.Contains(seq.TotalClears()) {
					return
				}
				if !seq.ContinuousOK(req.Continuous.Min, req.Continuous.Max, req.Continuous.HasMax) {
					return
				}
				if req.RequireDoable && !sequenceIsDoable(req.Store, seq, req.Board, req.Handling) {
					return
				}

				mu.Lock()
				defer mu.Unlock()
				if req.Minimal {
					sig := signature(q)
					if seen[sig] {
						return
					}
					seen[sig] = true
				}
				results = append(results, seq)
			})

			n := atomic.AddInt64(&done, 1)
			log.Printf("[solve] move: %s/%s queues processed", humanize.Comma(n), humanize.Comma(int64(len(queues))))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
