package input

import (
	"testing"

	"github.com/sfce/sfce/internal/board"
	"github.com/sfce/sfce/internal/piece"
)

func TestSearchFinesseTPiece(t *testing.T) {
	// Search on an empty 10-wide, 1-high board for a T-south-on-the-floor
	// target, the kind of placement the `finesse` driver resolves against
	// a board where a T piece is already resting at column 0.
	b := board.New(10, 1, 4)
	target := piece.Placement{Kind: piece.T, X: 1, Y: 0, Rotation: piece.North}

	h := Default()
	result := Search(b, target, h)
	if !result.Reachable {
		t.Fatalf("expected target reachable, got unreachable")
	}
	final := New(b, piece.T, h).SendKeys(result.Keys).Apply(SonicDrop)
	if final.X != target.X || final.Y != target.Y || final.Rotation != target.Rotation {
		t.Errorf("final state = (%d,%d,%v), want (%d,%d,%v)", final.X, final.Y, final.Rotation, target.X, target.Y, target.Rotation)
	}
}

func TestSearchUnreachableBeyondBound(t *testing.T) {
	b := board.New(4, 4, 4)
	target := piece.Placement{Kind: piece.I, X: 50, Y: 0, Rotation: piece.North}
	h := Default()
	h.MaxInputs = 2
	result := Search(b, target, h)
	if result.Reachable {
		t.Errorf("expected unreachable target, got reachable with %v", result.Keys)
	}
}

func TestSearchIgnoreAlwaysReachable(t *testing.T) {
	b := board.New(4, 4, 4)
	target := piece.Placement{Kind: piece.I, X: 1000, Y: 1000, Rotation: piece.North}
	h := Profile{Ignore: true}
	result := Search(b, target, h)
	if !result.Reachable {
		t.Errorf("Ignore profile should always report reachable")
	}
}

func TestSearchReturnsShortestSequence(t *testing.T) {
	b := board.New(10, 4, 4)
	h := Default()
	spawn := New(b, piece.O, h)
	target := piece.Placement{Kind: piece.O, X: spawn.X, Y: 0, Rotation: piece.North}
	result := Search(b, target, h)
	if !result.Reachable {
		t.Fatalf("expected reachable")
	}
	if len(result.Keys) != 1 || result.Keys[0] != SonicDrop {
		t.Errorf("keys = %v, want a single SonicDrop", result.Keys)
	}
}
