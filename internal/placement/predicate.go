// Package placement implements the line-clear-aware placement
// predicate, the recursive placement composer, and its congruence
// variant.
package placement

import (
	"github.com/sfce/sfce/internal/board"
	"github.com/sfce/sfce/internal/input"
	"github.com/sfce/sfce/internal/piece"
)

// IsValid reports whether p is valid-locked on b. The geometry and
// support mechanics live on Board itself (board.Fits) so the input
// simulator can share them without an import cycle; this wrapper is
// the package's named entry point.
func IsValid(b board.Board, p piece.Placement, allowFloating bool) bool {
	return b.Fits(p, allowFloating)
}

// IsValidWithSkim is IsValid evaluated with b's currently-complete rows
// temporarily removed first.
func IsValidWithSkim(b board.Board, p piece.Placement, allowFloating bool) bool {
	return b.FitsWithSkim(p, allowFloating)
}

// IsDoable reports whether p is reachable via the bounded input search
// on b under handling h, from the piece's spawn position. Callers adjust
// p.Y downward by the count of already-cleared rows below p.Y before
// calling IsDoable, on a board that has actually been skimmed — see
// Sequence.IsDoable.
func IsDoable(b board.Board, p piece.Placement, h input.Profile) bool {
	return input.Search(b, p, h).Reachable
}
