package placement

import (
	"github.com/sfce/sfce/internal/board"
	"github.com/sfce/sfce/internal/input"
	"github.com/sfce/sfce/internal/piece"
)

// Sequence is one candidate placement sequence produced by the
// composer: the ordered placements, the resulting (un-skimmed) board, and
// the per-placement delta in cleared-row count, used by the driver's
// clears/continuous-clears filters.
type Sequence struct {
	Placements  []piece.Placement
	Final       board.Board
	ClearDeltas []int
}

// TotalClears is the final board's cleared-row count: since SkimPlace
// never actually removes rows, a
// row counted as cleared at any step of the sequence stays counted, so
// the final board's count is exactly the cumulative total.
func (s Sequence) TotalClears() int {
	return len(s.Final.ClearedRows())
}

// ContinuousOK reports whether every per-placement clear-delta falls
// within [min,max]. hasMax=false means no
// upper bound.
func (s Sequence) ContinuousOK(min, max int, hasMax bool) bool {
	for _, d := range s.ClearDeltas {
		if d < min || (hasMax && d > max) {
			return false
		}
	}
	return true
}

// IsDoable reports whether every placement in s is reachable via the
// bounded input search, checked against the board as it stood
// just before that placement — skimmed, with the placement's y adjusted
// downward by the count of already-cleared rows below y.
func (s Sequence) IsDoable(initial board.Board, h input.Profile) bool {
	cur := initial
	for _, p := range s.Placements {
		cleared := cur.ClearedRows()
		below := 0
		for _, r := range cleared {
			if r < p.Y {
				below++
			}
		}
		adjusted := p
		adjusted.Y = p.Y - below
		if !IsDoable(cur.Skim(), adjusted, h) {
			return false
		}
		cur = cur.SkimPlace(p)
	}
	return true
}

// AllPlacementsOfQueue enumerates every placement sequence for queue on
// b, invoking emit once per complete sequence. Empty queue yields
// exactly one empty sequence. Enumeration is depth-first over the
// bitplane engine's landing-cell results per piece, recursing on the
// skim-placed board. emit is a callback rather than a collected slice,
// so the full Cartesian product is never held in memory at once.
func AllPlacementsOfQueue(b board.Board, queue []piece.Kind, emit func(Sequence)) {
	walkQueue(b, queue, nil, nil, emit)
}

func walkQueue(b board.Board, queue []piece.Kind, placements []piece.Placement, deltas []int, emit func(Sequence)) {
	if len(queue) == 0 {
		emit(Sequence{
			Placements:  append([]piece.Placement(nil), placements...),
			Final:       b,
			ClearDeltas: append([]int(nil), deltas...),
		})
		return
	}

	k := queue[0]
	before := len(b.ClearedRows())

	for rot := piece.North; rot < 4; rot++ {
		mask := b.PossiblePlacements(k, rot)
		for _, c := range mask.FilledCells() {
			p := piece.Placement{Kind: k, X: c.X, Y: c.Y, Rotation: rot}
			nb := b.SkimPlace(p)
			after := len(nb.ClearedRows())
			walkQueue(nb, queue[1:], append(placements, p), append(deltas, after-before), emit)
		}
	}
}
