package solve

import (
	"fmt"

	"github.com/sfce/sfce/internal/board"
	"github.com/sfce/sfce/internal/cache"
	"github.com/sfce/sfce/internal/input"
	"github.com/sfce/sfce/internal/piece"
)

// FinesseRequest bundles the `finesse` driver's inputs: a board already
// containing exactly one locked tetromino.
type FinesseRequest struct {
	Board    board.Board
	Handling input.Profile
	Store    *cache.Store
}

// FinesseResult reports the identified placement and the key sequence
// that reproduces it.
type FinesseResult struct {
	Placement piece.Placement
	Keys      []input.Key
	Reachable bool
}

// Finesse identifies which placement locked the single colored
// tetromino on req.Board and finds the shortest key sequence that
// reaches it from spawn on the color-stripped board.
func Finesse(req FinesseRequest) (FinesseResult, error) {
	p, base, ok := identifyLockedPlacement(req.Board)
	if !ok {
		return FinesseResult{}, fmt.Errorf("solve: no locked tetromino placement found on board")
	}

	if req.Store != nil {
		if keys, ok := req.Store.Finesse.Lookup(base, p); ok {
			return FinesseResult{Placement: p, Keys: keys, Reachable: true}, nil
		}
	}

	result := input.Search(base, p, req.Handling)
	if req.Store != nil && result.Reachable {
		req.Store.Finesse.Store(base, p, result.Keys)
		req.Store.Feasible.Store(base, p, true)
	}
	return FinesseResult{Placement: p, Keys: result.Keys, Reachable: result.Reachable}, nil
}

// identifyLockedPlacement finds the tetromino kind present on b (exactly
// one of the seven colors should have cells), then tries every rotation
// and every candidate anchor derived from those cells until one
// reproduces b exactly via SkimPlace against the color-stripped board.
func identifyLockedPlacement(b board.Board) (piece.Placement, board.Board, bool) {
	var kind piece.Kind
	var cells []piece.Cell
	found := false
	for _, k := range piece.Tetrominoes {
		cs := b.CellsOfColor(k)
		if len(cs) == 0 {
			continue
		}
		if found {
			return piece.Placement{}, board.Board{}, false
		}
		kind, cells, found = k, cs, true
	}
	if !found || len(cells) != 4 {
		return piece.Placement{}, board.Board{}, false
	}

	base := b.ReplaceColor(kind, piece.Empty)

	for rot := piece.North; rot < 4; rot++ {
		offs := offsetsFor(kind, rot)
		for _, anchor := range cells {
			x := anchor.X - offs[0].DX
			y := anchor.Y - offs[0].DY
			cand, ok := piece.Cells(kind, x, y, rot)
			if !ok || !sameCellSet(cand, cells) {
				continue
			}
			p := piece.Placement{Kind: kind, X: x, Y: y, Rotation: rot}
			if base.SkimPlace(p).Equal(b) {
				return p, base, true
			}
		}
	}
	return piece.Placement{}, board.Board{}, false
}

func offsetsFor(k piece.Kind, r piece.Rotation) [4]piece.Offset {
	return piece.Offsets(k, r)
}

func sameCellSet(cand [4]piece.Cell, want []piece.Cell) bool {
	if len(want) != 4 {
		return false
	}
	for _, c := range cand {
		matched := false
		for _, w := range want {
			if c == w {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
