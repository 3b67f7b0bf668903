package board

import "github.com/sfce/sfce/internal/piece"

// InBoundsEmpty reports whether every cell of p is within the board's
// full W×(H+M) rectangle (playfield plus margin) and currently empty,
// with no requirement about support or the margin rule. This is the
// geometry check the input simulator (C5) uses while a piece is still in
// flight: pieces legitimately spawn and travel through the margin, so
// margin-intersection and floating are not failures here.
func (b Board) InBoundsEmpty(p piece.Placement) bool {
	cells, ok := p.Cells()
	if !ok {
		return false
	}
	for _, c := range cells {
		if c.X < 0 || c.X >= b.W || c.Y < 0 || c.Y >= b.Rows() {
			return false
		}
		if b.Get(c.X, c.Y).IsFilled() {
			return false
		}
	}
	return true
}

// Fits is the placement-validity predicate's core mechanics: P is
// valid-locked on b iff its four cells are in-bounds,
// currently empty, not resting in the margin, and — unless
// allowFloating — at least one cell directly below a piece-cell is either
// out-of-field (floor) or filled (support). It lives on Board rather than
// a higher-level "placement" package so that both the input simulator
// (C5) and the placement predicate/composer (C4/C8) can call it without a
// package import cycle between them.
//
// Margin intersection after locking is a hard failure, not a warning.
func (b Board) Fits(p piece.Placement, allowFloating bool) bool {
	if !b.InBoundsEmpty(p) {
		return false
	}
	cells, _ := p.Cells()
	for _, c := range cells {
		if c.Y >= b.H {
			return false
		}
	}
	if allowFloating {
		return true
	}
	for _, c := range cells {
		by := c.Y - 1
		if by < 0 {
			return true
		}
		if b.Get(c.X, by).IsFilled() {
			return true
		}
	}
	return false
}

// FitsWithSkim is Fits evaluated against b with its currently-complete
// rows temporarily removed: rows that would
// clear are compacted out (and an equal count of empty rows reappear at
// the top, via Skim, so dimensions and margin are preserved), and the
// same (x,y) placement is checked against that post-clear board.
func (b Board) FitsWithSkim(p piece.Placement, allowFloating bool) bool {
	return b.Skim().Fits(p, allowFloating)
}
