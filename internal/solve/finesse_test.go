package solve

import (
	"testing"

	"github.com/sfce/sfce/internal/board"
	"github.com/sfce/sfce/internal/input"
	"github.com/sfce/sfce/internal/piece"
)

func TestIdentifyLockedPlacementRoundTrips(t *testing.T) {
	base := board.New(10, 4, 4)
	target := piece.Placement{Kind: piece.T, X: 4, Y: 0, Rotation: piece.North}
	locked := base.SkimPlace(target)

	p, recoveredBase, ok := identifyLockedPlacement(locked)
	if !ok {
		t.Fatalf("identifyLockedPlacement failed to find the locked T")
	}
	if p.Kind != piece.T || p.Rotation != piece.North {
		t.Fatalf("got %+v, want kind T rotation North", p)
	}
	if !recoveredBase.Equal(base) {
		t.Fatalf("recovered base board does not match the pre-lock board")
	}
	if !recoveredBase.SkimPlace(p).Equal(locked) {
		t.Fatalf("re-placing the identified placement does not reproduce the locked board")
	}
}

func TestFinesseFindsKeySequence(t *testing.T) {
	base := board.New(10, 4, 4)
	target := piece.Placement{Kind: piece.T, X: 4, Y: 0, Rotation: piece.North}
	locked := base.SkimPlace(target)

	result, err := Finesse(FinesseRequest{Board: locked, Handling: input.Default()})
	if err != nil {
		t.Fatalf("Finesse: %v", err)
	}
	if !result.Reachable {
		t.Fatalf("expected the identified placement to be reachable")
	}
	if len(result.Keys) == 0 {
		t.Fatalf("expected a non-empty key sequence")
	}
}

func TestFinesseRejectsBoardWithNoLockedPiece(t *testing.T) {
	b := board.New(10, 4, 4)
	if _, err := Finesse(FinesseRequest{Board: b, Handling: input.Default()}); err == nil {
		t.Fatalf("expected an error for a board with no colored piece")
	}
}
