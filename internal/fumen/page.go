// Package fumen implements an opaque page/grid/comment codec: a
// black-box that turns a sequence of (cell grid, optional comment) pages
// into a single URL-safe string and back. The cell-color mapping is
// fixed: E maps to Empty, G and D to Grey, and each tetromino kind to
// itself.
//
// The codec is a self-contained binary format — a run-length encoding of
// each page's field, base64-url-encoded. It is internally round-trip
// correct but is not a byte-compatible implementation of the public
// fumen v115 format.
package fumen

import "github.com/sfce/sfce/internal/piece"

// CellColor is the codec's own small color alphabet, independent of
// piece.Kind so the wire format is stable even if internal kind
// numbering changes.
type CellColor uint8

const (
	ColorEmpty CellColor = iota
	ColorGrey
	ColorI
	ColorJ
	ColorL
	ColorO
	ColorS
	ColorT
	ColorZ
)

// ColorOf maps a board cell's piece.Kind to the codec's color alphabet.
func ColorOf(k piece.Kind) CellColor {
	switch k {
	case piece.Gray, piece.DeepGray:
		return ColorGrey
	case piece.I:
		return ColorI
	case piece.J:
		return ColorJ
	case piece.L:
		return ColorL
	case piece.O:
		return ColorO
	case piece.S:
		return ColorS
	case piece.T:
		return ColorT
	case piece.Z:
		return ColorZ
	default:
		return ColorEmpty
	}
}

// KindOf maps a codec color back to a board piece.Kind. Grey decodes to
// Gray (DeepGray is never produced by the codec — it is an internal
// board concept the wire format does not distinguish).
func (c CellColor) KindOf() piece.Kind {
	switch c {
	case ColorGrey:
		return piece.Gray
	case ColorI:
		return piece.I
	case ColorJ:
		return piece.J
	case ColorL:
		return piece.L
	case ColorO:
		return piece.O
	case ColorS:
		return piece.S
	case ColorT:
		return piece.T
	case ColorZ:
		return piece.Z
	default:
		return piece.Empty
	}
}

// Page is one frame of a fumen: a W×H field of colors (row-major, row 0
// is the top row, matching the community format's scan order) plus an
// optional comment.
type Page struct {
	W, H    int
	Field   []CellColor // length W*H, row-major top-first
	Comment string
}

func (p Page) at(x, y int) CellColor {
	return p.Field[y*p.W+x]
}
