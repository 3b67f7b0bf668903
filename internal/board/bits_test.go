package board

import (
	"testing"

	"github.com/sfce/sfce/internal/piece"
)

func bitsEqual(a, b Bits) bool {
	if a.W != b.W || a.H != b.H {
		return false
	}
	for y := 0; y < a.H; y++ {
		for x := 0; x < a.W; x++ {
			if a.Get(x, y) != b.Get(x, y) {
				return false
			}
		}
	}
	return true
}

func TestNotIsInvolution(t *testing.T) {
	b := NewBits(5, 3)
	b = b.Set(1, 1, true).Set(4, 2, true)
	if !bitsEqual(b.Not().Not(), b) {
		t.Fatalf("!!b != b")
	}
}

func TestAndIsIdempotent(t *testing.T) {
	b := NewBits(5, 3).Set(0, 0, true).Set(3, 1, true)
	if !bitsEqual(b.And(b), b) {
		t.Fatalf("b & b != b")
	}
}

func TestOrWithComplementIsAllOnes(t *testing.T) {
	b := NewBits(5, 3).Set(2, 2, true)
	all := b.Or(b.Not())
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			if !all.Get(x, y) {
				t.Fatalf("(b | !b) missing bit at (%d,%d)", x, y)
			}
		}
	}
	if all.PopCount() != 15 {
		t.Fatalf("PopCount = %d, want 15", all.PopCount())
	}
}

func TestShiftFillsVacatedEdgeWithOnes(t *testing.T) {
	zeros := NewBits(4, 3)
	shifted := zeros.Shift(1, 0)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			want := x == 3
			if shifted.Get(x, y) != want {
				t.Errorf("Shift(1,0) at (%d,%d) = %v, want %v", x, y, shifted.Get(x, y), want)
			}
		}
	}
}

func TestShiftPreservesDimensions(t *testing.T) {
	b := NewBits(7, 5)
	s := b.Shift(-2, 3)
	if s.W != 7 || s.H != 5 {
		t.Fatalf("Shift changed dimensions to %dx%d", s.W, s.H)
	}
}

// Adding a filled cell to the board can only shrink a piece's landing
// mask, never grow it.
func TestPossiblePlacementsMonotonicity(t *testing.T) {
	empty := NewBits(10, 4)
	fuller := empty.Set(5, 0, true)
	for _, k := range piece.Tetrominoes {
		for rot := piece.North; rot < 4; rot++ {
			before := empty.PossiblePlacements(k, rot)
			after := fuller.PossiblePlacements(k, rot)
			after.ForEach(func(x, y int) {
				if !before.Get(x, y) {
					t.Errorf("%v %v: (%d,%d) appeared in the mask after filling a cell", k, rot, x, y)
				}
			})
		}
	}
}

func TestAllPlacementsOfPieceTagsRotations(t *testing.T) {
	b := NewBits(10, 4)
	byCell := b.AllPlacementsOfPiece(piece.O)
	if len(byCell) == 0 {
		t.Fatalf("expected landing cells for O on an empty board")
	}
	for c, rots := range byCell {
		for _, r := range rots {
			if !b.PossiblePlacements(piece.O, r).Get(c.X, c.Y) {
				t.Errorf("cell %v tagged with rotation %v not present in that rotation's mask", c, r)
			}
		}
	}
}

func TestLineClearsDetectsFullRows(t *testing.T) {
	b := NewBits(3, 2)
	for x := 0; x < 3; x++ {
		b = b.Set(x, 1, true)
	}
	rows := b.LineClears()
	if len(rows) != 1 || rows[0] != 1 {
		t.Fatalf("LineClears = %v, want [1]", rows)
	}
}

func TestHashDistinguishesContentsAndShape(t *testing.T) {
	a := NewBits(4, 4).Set(1, 1, true)
	b := NewBits(4, 4).Set(1, 2, true)
	if a.Hash() == b.Hash() {
		t.Errorf("different contents hashed equal")
	}
	tall := NewBits(2, 8)
	wide := NewBits(8, 2)
	if tall.Hash() == wide.Hash() {
		t.Errorf("2x8 and 8x2 empty planes hashed equal")
	}
}
