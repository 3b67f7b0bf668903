package solve

import (
	"github.com/sfce/sfce/internal/board"
	"github.com/sfce/sfce/internal/fumen"
	"github.com/sfce/sfce/internal/piece"
)

// PossibleRequest bundles the `possible` driver's inputs: the board and
// the piece whose landing mask to visualize.
type PossibleRequest struct {
	Board    board.Board
	Kind     piece.Kind
	Rotation piece.Rotation
	AllRots  bool // true when the CLI omitted an explicit rotation
}

// PossiblePage pairs a rotation with the landing mask computed for it.
type PossiblePage struct {
	Rotation piece.Rotation
	Mask     board.Bits
}

// Possible computes possible_placements(kind, rotation) for
// either the one rotation requested or, when AllRots is set, all four
// — "visualize possible_placements(piece, rotation) as four pages".
func Possible(req PossibleRequest) []PossiblePage {
	rots := []piece.Rotation{req.Rotation}
	if req.AllRots {
		rots = []piece.Rotation{piece.North, piece.East, piece.South, piece.West}
	}

	pages := make([]PossiblePage, 0, len(rots))
	for _, r := range rots {
		pages = append(pages, PossiblePage{Rotation: r, Mask: req.Board.PossiblePlacements(req.Kind, r)})
	}
	return pages
}

// Render overlays each page's landing mask onto req.Board (painted with
// the candidate kind's color) for fumen visualization, one page per
// rotation.
func Render(req PossibleRequest, pages []PossiblePage) fumen.Grid {
	grid := make(fumen.Grid, 0, len(pages))
	for _, pg := range pages {
		b := req.Board.Clone()
		pg.Mask.ForEach(func(x, y int) {
			if b.Get(x, y) == piece.Empty {
				b.SetCell(x, y, req.Kind)
			}
		})
		b.Comment = "rotation " + pg.Rotation.String()
		grid = append(grid, fumen.PageFromBoard(b))
	}
	return grid
}
