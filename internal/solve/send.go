package solve

import (
	"github.com/sfce/sfce/internal/board"
	"github.com/sfce/sfce/internal/input"
	"github.com/sfce/sfce/internal/piece"
)

// InputsRequest bundles the `inputs` driver's inputs: a board, an
// explicit target placement, and the handling profile to search under.
type InputsRequest struct {
	Board    board.Board
	Target   piece.Placement
	Handling input.Profile
}

// Inputs runs the bounded key-sequence search against a single
// explicit target placement, bypassing the feasibility cache (the
// `inputs` command reports a concrete sequence, not a cached boolean).
func Inputs(req InputsRequest) input.Result {
	return input.Search(req.Board, req.Target, req.Handling)
}

// SendRequest bundles the `send` driver's inputs: a board, a spawning
// piece, and the key list to replay.
type SendRequest struct {
	Board    board.Board
	Kind     piece.Kind
	Keys     []input.Key
	Handling input.Profile
}

// Send replays Keys from spawn and returns one frame per key applied,
// for step-by-step visualization.
func Send(req SendRequest) []input.Frame {
	start := input.New(req.Board, req.Kind, req.Handling)
	return input.ShowInputs(start, req.Keys)
}
