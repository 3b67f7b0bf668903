package fumen

import "github.com/sfce/sfce/internal/board"

// PageFromBoard renders b's H visible rows as a Page, row 0 at the top.
// The margin is never part of the wire representation, so board-to-fumen
// round-trips hold only modulo margin.
func PageFromBoard(b board.Board) Page {
	p := Page{W: b.W, H: b.H, Field: make([]CellColor, b.W*b.H), Comment: b.Comment}
	for row := 0; row < b.H; row++ {
		y := b.H - 1 - row // board row 0 is bottom; page row 0 is top
		for x := 0; x < b.W; x++ {
			p.Field[row*b.W+x] = ColorOf(b.Get(x, y))
		}
	}
	return p
}

// BoardFromPage rebuilds a margin-0 Board from a decoded Page. Callers
// that need margin rows add them afterward; the wire format carries none.
func BoardFromPage(p Page) board.Board {
	b := board.New(p.W, p.H, 0)
	b.Comment = p.Comment
	for row := 0; row < p.H; row++ {
		y := p.H - 1 - row
		for x := 0; x < p.W; x++ {
			b.SetCell(x, y, p.at(x, row).KindOf())
		}
	}
	return b
}

// Grid is an ordered sequence of pages — a multi-page fumen.
type Grid []Page

// GridFromBoards renders one page per board, in order.
func GridFromBoards(boards []board.Board) Grid {
	g := make(Grid, len(boards))
	for i, b := range boards {
		g[i] = PageFromBoard(b)
	}
	return g
}

// Boards converts every page back to a Board.
func (g Grid) Boards() []board.Board {
	out := make([]board.Board, len(g))
	for i, p := range g {
		out[i] = BoardFromPage(p)
	}
	return out
}
