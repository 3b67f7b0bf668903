package placement

import (
	"github.com/sfce/sfce/internal/board"
	"github.com/sfce/sfce/internal/piece"
)

// AllCongruentPlacements enumerates placement sequences for queue whose
// occupied cells are exactly the cells of color `color` on b — no more,
// no less. The base board used for landing computation has every
// `color` cell replaced by Empty; a candidate placement is kept only if
// all four of its cells fall within the still-unclaimed template set, and
// recursion removes those cells from the set before continuing.
func AllCongruentPlacements(b board.Board, color piece.Kind, queue []piece.Kind, emit func(Sequence)) {
	template := make(map[piece.Cell]bool)
	for _, c := range b.CellsOfColor(color) {
		template[c] = true
	}
	base := b.ReplaceColor(color, piece.Empty)
	walkCongruent(base, template, queue, nil, nil, emit)
}

func walkCongruent(b board.Board, template map[piece.Cell]bool, queue []piece.Kind, placements []piece.Placement, deltas []int, emit func(Sequence)) {
	if len(queue) == 0 {
		if len(template) != 0 {
			return
		}
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
			cells, ok := p.Cells()
			if !ok || !allInTemplate(cells, template) {
				continue
			}
			nextTemplate := cloneTemplate(template)
			for _, cell := range cells {
				delete(nextTemplate, cell)
			}
			nb := b.SkimPlace(p)
			after := len(nb.ClearedRows())
			walkCongruent(nb, nextTemplate, queue[1:], append(placements, p), append(deltas, after-before), emit)
		}
	}
}

func allInTemplate(cells [4]piece.Cell, template map[piece.Cell]bool) bool {
	for _, c := range cells {
		if !template[c] {
			return false
		}
	}
	return true
}

func cloneTemplate(template map[piece.Cell]bool) map[piece.Cell]bool {
	out := make(map[piece.Cell]bool, len(template))
	for k, v := range template {
		out[k] = v
	}
	return out
}
