// Package board implements the two representations of a playing field:
// a colored Board carrying piece identity per cell, and a Bits occupancy
// plane used by the landing-cell computation.
package board

import (
	"math/bits"

	"github.com/cespare/xxhash/v2"

	"github.com/sfce/sfce/internal/piece"
)

const wordBits = 64

// Bits is a rectangular occupancy plane: width W, height H, and a
// length-W·H bit vector laid out row-major with y·W+x indexing.
// Row 0 is the bottom row. Bits is a value type; Clone gives an
// independent copy for composer branches to mutate.
type Bits struct {
	W, H  int
	words []uint64
}

// NewBits returns a W×H plane with every cell clear.
func NewBits(w, h int) Bits {
	n := (w*h + wordBits - 1) / wordBits
	if n == 0 {
		n = 1
	}
	return Bits{W: w, H: h, words: make([]uint64, n)}
}

func (b Bits) index(x, y int) (word int, bit uint) {
	i := y*b.W + x
	return i / wordBits, uint(i % wordBits)
}

// inBounds reports whether (x,y) is within the plane's rectangle.
func (b Bits) inBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Get returns the bit at (x,y). Out-of-bounds reads return false.
func (b Bits) Get(x, y int) bool {
	if !b.inBounds(x, y) {
		return false
	}
	w, bit := b.index(x, y)
	return b.words[w]&(1<<bit) != 0
}

// Set sets the bit at (x,y) to v, returning the updated plane. Out of
// bounds is a no-op (mirrors Board.Place's "silently ignore" contract).
func (b Bits) Set(x, y int, v bool) Bits {
	if !b.inBounds(x, y) {
		return b
	}
	out := b.Clone()
	if v {
		out.set(x, y)
	} else {
		w, bit := out.index(x, y)
		out.words[w] &^= 1 << bit
	}
	return out
}

// set flips the bit at (x,y) on, mutating in place. Only for planes this
// package has freshly allocated and not yet shared.
func (b Bits) set(x, y int) {
	w, bit := b.index(x, y)
	b.words[w] |= 1 << bit
}

// Clone returns an independent copy of b.
func (b Bits) Clone() Bits {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return Bits{W: b.W, H: b.H, words: words}
}

// sameShape panics if a and b don't share dimensions; AND/OR/NOT require
// identical (W,H).
func sameShape(a, b Bits) {
	if a.W != b.W || a.H != b.H {
		panic("board: Bits operation on mismatched dimensions")
	}
}

// And returns the bitwise AND of two same-shape planes.
func (b Bits) And(o Bits) Bits {
	sameShape(b, o)
	out := NewBits(b.W, b.H)
	for i := range out.words {
		out.words[i] = b.words[i] & o.words[i]
	}
	return out
}

// Or returns the bitwise OR of two same-shape planes.
func (b Bits) Or(o Bits) Bits {
	sameShape(b, o)
	out := NewBits(b.W, b.H)
	for i := range out.words {
		out.words[i] = b.words[i] | o.words[i]
	}
	return out
}

// Not returns the bitwise complement of b, restricted to the W×H
// rectangle (bits beyond W·H in the final word are left clear so that
// PopCount/ForEach never see phantom set bits).
func (b Bits) Not() Bits {
	out := NewBits(b.W, b.H)
	for i := range out.words {
		out.words[i] = ^b.words[i]
	}
	out.maskTrailing()
	return out
}

// maskTrailing clears any bits beyond the W·H logical length in the
// final word.
func (b *Bits) maskTrailing() {
	total := b.W * b.H
	if total == 0 {
		return
	}
	last := (total - 1) / wordBits
	validBits := uint(total - last*wordBits)
	if validBits < wordBits {
		b.words[last] &= (uint64(1) << validBits) - 1
	}
}

// Shift returns b translated by (dx,dy), with vacated edges filled with
// 1s rather than 0s, which lets the landing computation express "all
// four cells in bounds and empty" as OR-and-negate. Row width W rarely aligns to a
// 64-bit word boundary, so the saturating edge fill is computed per cell
// rather than via a single machine-word shift.
func (b Bits) Shift(dx, dy int) Bits {
	out := NewBits(b.W, b.H)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			sx, sy := x+dx, y+dy
			if !b.inBounds(sx, sy) || b.Get(sx, sy) {
				out.set(x, y)
			}
		}
	}
	return out
}

// PopCount returns the number of set bits within the W×H rectangle.
func (b Bits) PopCount() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// ForEach calls f for every set cell, in row-major order.
func (b Bits) ForEach(f func(x, y int)) {
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if b.Get(x, y) {
				f(x, y)
			}
		}
	}
}

// FilledCells returns every set cell as a Cell slice, in row-major order.
func (b Bits) FilledCells() []piece.Cell {
	cells := make([]piece.Cell, 0, b.PopCount())
	b.ForEach(func(x, y int) { cells = append(cells, piece.Cell{X: x, Y: y}) })
	return cells
}

// Hash returns a stable 64-bit digest of (W, H, words), used as the
// memoization store's board-half of a cache key.
func (b Bits) Hash() uint64 {
	h := xxhash.New()
	var hdr [16]byte
	putUint64(hdr[0:8], uint64(b.W))
	putUint64(hdr[8:16], uint64(b.H))
	_, _ = h.Write(hdr[:])
	buf := make([]byte, 8*len(b.words))
	for i, w := range b.words {
		putUint64(buf[i*8:i*8+8], w)
	}
	_, _ = h.Write(buf)
	return h.Sum64()
}

func putUint64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}
