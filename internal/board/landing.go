package board

import "github.com/sfce/sfce/internal/piece"

// LineClears returns every row index (0 = bottom) that is completely
// filled in b. The result is a pure function of
// the plane's contents.
func (b Bits) LineClears() []int {
	var rows []int
	for y := 0; y < b.H; y++ {
		full := true
		for x := 0; x < b.W; x++ {
			if !b.Get(x, y) {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, y)
		}
	}
	return rows
}

// withoutRows returns a copy of b with the given rows removed and the
// remaining rows compacted downward, at height H-len(rows). rows must be
// sorted ascending.
func (b Bits) withoutRows(rows []int) Bits {
	removed := make(map[int]bool, len(rows))
	for _, r := range rows {
		removed[r] = true
	}
	out := NewBits(b.W, b.H-len(rows))
	dy := 0
	for y := 0; y < b.H; y++ {
		if removed[y] {
			continue
		}
		for x := 0; x < b.W; x++ {
			if b.Get(x, y) {
				out.set(x, dy)
			}
		}
		dy++
	}
	return out
}

// withRestoredRows re-inserts all-zero rows at the indices given by rows
// (sorted ascending) so the result has height H+len(rows); the inverse of
// withoutRows's compaction, used to restore full board height after the
// landing-cell computation.
func (b Bits) withRestoredRows(rows []int, fullHeight int) Bits {
	inserted := make(map[int]bool, len(rows))
	for _, r := range rows {
		inserted[r] = true
	}
	out := NewBits(b.W, fullHeight)
	src := 0
	for y := 0; y < fullHeight; y++ {
		if inserted[y] {
			continue
		}
		for x := 0; x < b.W; x++ {
			if b.Get(x, src) {
				out.set(x, y)
			}
		}
		src++
	}
	return out
}

// PossiblePlacements computes, in one pass, every legal landing position
// for (k, r) on b: the central bitplane-engine routine. Every row
// reported by b.LineClears() is treated as about to be removed.
func (b Bits) PossiblePlacements(k piece.Kind, r piece.Rotation) Bits {
	return possiblePlacements(b, b.LineClears(), k, r)
}

// PossiblePlacements is the colored board's landing mask for (k, r):
// the bit-form computation over the board's H visible rows.
func (b Board) PossiblePlacements(k piece.Kind, r piece.Rotation) Bits {
	bits := b.ToBits()
	return possiblePlacements(bits, bits.LineClears(), k, r)
}

// possiblePlacements computes the landing mask with the given rows
// treated as already removed.
func possiblePlacements(b Bits, clears []int, k piece.Kind, r piece.Rotation) Bits {
	compact := b.withoutRows(clears)

	offs := piece.Offsets(k, r)

	mask := NewBits(compact.W, compact.H)
	first := true
	for _, o := range offs {
		shifted := compact.Shift(o.DX, o.DY)
		if first {
			mask = shifted
			first = false
		} else {
			mask = mask.Or(shifted)
		}
	}
	mask = mask.Not()

	mask = pruneForSupport(mask, compact, offs)

	return mask.withRestoredRows(clears, b.H)
}

// pruneForSupport removes candidate centers that have no support: for
// each surviving candidate (x,y), the piece's 4 cells are computed, and
// the cells immediately below them are checked; the candidate survives
// iff at least one below-cell is outside the field (floor) or filled in
// the pre-shift board.
func pruneForSupport(mask, preShift Bits, offs [4]piece.Offset) Bits {
	out := NewBits(mask.W, mask.H)
	mask.ForEach(func(x, y int) {
		supported := false
		for _, o := range offs {
			cx, cy := x+o.DX, y+o.DY
			by := cy - 1
			if by < 0 {
				supported = true
				break
			}
			if preShift.inBounds(cx, by) && preShift.Get(cx, by) {
				supported = true
				break
			}
		}
		if supported {
			out.set(x, y)
		}
	})
	return out
}

// AllPlacementsOfPiece unions the four rotations of k, returning, for
// each set cell in the result, which rotations are legal there.
func (b Bits) AllPlacementsOfPiece(k piece.Kind) map[piece.Cell][]piece.Rotation {
	result := make(map[piece.Cell][]piece.Rotation)
	for rot := piece.North; rot < 4; rot++ {
		mask := b.PossiblePlacements(k, rot)
		mask.ForEach(func(x, y int) {
			c := piece.Cell{X: x, Y: y}
			result[c] = append(result[c], rot)
		})
	}
	return result
}
