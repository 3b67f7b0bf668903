package board

import "github.com/sfce/sfce/internal/piece"

// Board is a rectangular field of colored cells.
// Width W, height H, and margin M (M rows above H where pieces may
// spawn/traverse but must not remain after locking). Row 0 is the
// bottom; row y grows upward. Total row count is H+M. Board is a value
// type: callers that need an independent copy call Clone.
type Board struct {
	W, H, M int
	cells   []piece.Kind // row-major, y*W+x, length W*(H+M)
	Comment string
}

// New returns a blank W×H board with margin M.
func New(w, h, m int) Board {
	cells := make([]piece.Kind, w*(h+m))
	for i := range cells {
		cells[i] = piece.Empty
	}
	return Board{W: w, H: h, M: m, cells: cells}
}

// Rows is the total row count, H+M.
func (b Board) Rows() int {
	return b.H + b.M
}

func (b Board) index(x, y int) int {
	return y*b.W + x
}

func (b Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.Rows()
}

// Get returns the cell at (x,y); out of bounds reads return Empty.
func (b Board) Get(x, y int) piece.Kind {
	if !b.inBounds(x, y) {
		return piece.Empty
	}
	return b.cells[b.index(x, y)]
}

// Clone returns an independent copy of b, for composer branches to
// mutate without aliasing the parent board.
func (b Board) Clone() Board {
	cells := make([]piece.Kind, len(b.cells))
	copy(cells, b.cells)
	return Board{W: b.W, H: b.H, M: b.M, cells: cells, Comment: b.Comment}
}

// set writes k at (x,y), ignoring out-of-bounds writes.
func (b *Board) set(x, y int, k piece.Kind) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[b.index(x, y)] = k
}

// SetCell writes k at (x,y), ignoring out-of-bounds writes. Exported for
// codecs (e.g. internal/fumen) that build a Board cell-by-cell from an
// external representation.
func (b *Board) SetCell(x, y int, k piece.Kind) {
	b.set(x, y, k)
}

// Place stamps P's piece into the cells P occupies, silently ignoring
// any cell that falls out of bounds.
func (b Board) Place(p piece.Placement) Board {
	out := b.Clone()
	cells, ok := p.Cells()
	if !ok {
		return out
	}
	for _, c := range cells {
		out.set(c.X, c.Y, p.Kind)
	}
	return out
}

// ClearedRows returns every row index, within H+M, that is completely
// filled.
func (b Board) ClearedRows() []int {
	return b.clearedRows()
}

// clearedRows returns every row index, within H+M, where every cell
// IsFilled.
func (b Board) clearedRows() []int {
	var rows []int
	for y := 0; y < b.Rows(); y++ {
		full := true
		for x := 0; x < b.W; x++ {
			if !b.Get(x, y).IsFilled() {
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

// Skim removes all completely filled rows and appends an equal count of
// empty rows at the top, preserving margin.
func (b Board) Skim() Board {
	rows := b.clearedRows()
	if len(rows) == 0 {
		return b.Clone()
	}
	removed := make(map[int]bool, len(rows))
	for _, r := range rows {
		removed[r] = true
	}

	out := New(b.W, b.H, b.M)
	dy := 0
	for y := 0; y < b.Rows(); y++ {
		if removed[y] {
			continue
		}
		for x := 0; x < b.W; x++ {
			out.set(x, dy, b.Get(x, y))
		}
		dy++
	}
	out.Comment = b.Comment
	return out
}

// SkimPlace places P while respecting pending line-clear gravity:
// before placing, the rows currently fully filled (R) are computed; for
// each of P's cells whose y falls in R, y is walked away from P.Y
// (upward if at/above P.Y, downward otherwise) until it leaves R, then
// the piece is stamped. Each cell is walked independently in
// offset-table order, with no cross-cell ordering guarantee.
func (b Board) SkimPlace(p piece.Placement) Board {
	rows := b.clearedRows()
	clearSet := make(map[int]bool, len(rows))
	for _, r := range rows {
		clearSet[r] = true
	}

	cells, ok := p.Cells()
	if !ok {
		return b.Clone()
	}

	out := b.Clone()
	for _, c := range cells {
		y := c.Y
		for clearSet[y] {
			if y >= p.Y {
				y++
			} else {
				y--
			}
		}
		out.set(c.X, y, p.Kind)
	}
	return out
}

// WithManyPlacements folds SkimPlace over a sequence of placements.
func (b Board) WithManyPlacements(seq []piece.Placement) Board {
	out := b
	for _, p := range seq {
		out = out.SkimPlace(p)
	}
	return out
}

// ReplaceColor returns a copy of b with every cell of kind `from`
// rewritten to `to`. Used by the congruence search to strip a
// colored template region out of the board it's matched against.
func (b Board) ReplaceColor(from, to piece.Kind) Board {
	out := b.Clone()
	for i, k := range out.cells {
		if k == from {
			out.cells[i] = to
		}
	}
	return out
}

// CellsOfColor returns every cell in b currently holding kind k, in
// row-major order.
func (b Board) CellsOfColor(k piece.Kind) []piece.Cell {
	var cells []piece.Cell
	for y := 0; y < b.Rows(); y++ {
		for x := 0; x < b.W; x++ {
			if b.Get(x, y) == k {
				cells = append(cells, piece.Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// Equal reports whether a and b have the same dimensions and the same
// cell at every position. Board is not comparable with == because of
// its backing slice; this is the explicit substitute, used by the
// finesse-identification driver to check a candidate reconstruction
// against the board it was derived from.
func (b Board) Equal(o Board) bool {
	if b.W != o.W || b.H != o.H || b.M != o.M {
		return false
	}
	if len(b.cells) != len(o.cells) {
		return false
	}
	for i, k := range b.cells {
		if o.cells[i] != k {
			return false
		}
	}
	return true
}

// IntersectsMargin reports whether any filled cell lies in the margin
// (rows ≥ H).
func (b Board) IntersectsMargin() bool {
	for y := b.H; y < b.Rows(); y++ {
		for x := 0; x < b.W; x++ {
			if b.Get(x, y).IsFilled() {
				return true
			}
		}
	}
	return false
}

// Spawn returns the default initial (x,y) for a new piece: centered
// horizontally, with the rotation center on the first margin row so the
// piece starts in-bounds and can descend.
func (b Board) Spawn() (int, int) {
	return b.W/2 - 1, b.H
}

// ToBits builds the bit form using the first H rows (margin excluded).
func (b Board) ToBits() Bits {
	bits := NewBits(b.W, b.H)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if b.Get(x, y).IsFilled() {
				bits.set(x, y)
			}
		}
	}
	return bits
}
