package solve

import (
	"github.com/sfce/sfce/internal/board"
	"github.com/sfce/sfce/internal/cache"
	"github.com/sfce/sfce/internal/input"
	"github.com/sfce/sfce/internal/piece"
	"github.com/sfce/sfce/internal/placement"
)

// reachable wraps the input search with the feasibility cache:
// on a cache miss it runs the search and records the outcome, on a hit it
// returns the cached verdict without resimulating. store may be nil (no
// caching at all) — all drivers tolerate that.
func reachable(store *cache.Store, b board.Board, p piece.Placement, h input.Profile) bool {
	if store == nil {
		return placement.IsDoable(b, p, h)
	}
	if v, ok := store.Feasible.Lookup(b, p); ok {
		return v
	}
	result := input.Search(b, p, h)
	store.Feasible.Store(b, p, result.Reachable)
	if result.Reachable {
		store.Finesse.Store(b, p, result.Keys)
	}
	return result.Reachable
}

// sequenceIsDoable replays placement.Sequence.IsDoable's per-placement
// y-adjustment but routes each
// reachability check through the feasibility cache.
func sequenceIsDoable(store *cache.Store, seq placement.Sequence, initial board.Board, h input.Profile) bool {
	cur := initial
	for _, p := range seq.Placements {
		cleared := cur.ClearedRows()
		below := 0
		for _, r := range cleared {
			if r < p.Y {
				below++
			}
		}
		adjusted := p
		adjusted.Y = p.Y - below
		if !reachable(store, cur.Skim(), adjusted, h) {
			return false
		}
		cur = cur.SkimPlace(p)
	}
	return true
}
