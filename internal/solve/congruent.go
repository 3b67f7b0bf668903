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
	"github.com/sfce/sfce/internal/piece"
	"github.com/sfce/sfce/internal/placement"
)

// CongruentRequest bundles a `congruent` driver's inputs. Color names
// the painted template cells that the queue's pieces must exactly
// cover.
type CongruentRequest struct {
	Board         board.Board
	Color         piece.Kind
	Pattern       pattern.Pattern
	Minimal       bool
	NoHold        bool
	RequireDoable bool
	Handling      input.Profile
	Store         *cache.Store
}

// Congruent is Move's counterpart for the template-matching placement
// rule: every emitted sequence's occupied cells are exactly the cells
// painted Color on the board, no more, no less.
func Congruent(req CongruentRequest) ([]placement.Sequence, error) {
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
			placement.AllCongruentPlacements(req.Board, req.Color, q, func(seq placement.Sequence) {
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
			log.Printf("[solve] congruent: %s/%s queues processed", humanize.Comma(n), humanize.Comma(int64(len(queues))))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
