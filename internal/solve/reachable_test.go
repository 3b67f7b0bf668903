package solve

import (
	"testing"

	"github.com/sfce/sfce/internal/board"
	"github.com/sfce/sfce/internal/cache"
	"github.com/sfce/sfce/internal/input"
	"github.com/sfce/sfce/internal/piece"
)

func TestReachableNilStoreFallsBackToPureCheck(t *testing.T) {
	b := board.New(10, 4, 4)
	p := piece.Placement{Kind: piece.O, X: 4, Y: 0, Rotation: piece.North}
	if !reachable(nil, b, p, input.Default()) {
		t.Fatalf("expected an O drop on an empty board to be reachable")
	}
}

func TestReachablePopulatesCache(t *testing.T) {
	b := board.New(10, 4, 4)
	p := piece.Placement{Kind: piece.O, X: 4, Y: 0, Rotation: piece.North}
	store := cache.NewStore()

	if _, ok := store.Feasible.Lookup(b, p); ok {
		t.Fatalf("expected a cache miss before the first call")
	}
	if !reachable(store, b, p, input.Default()) {
		t.Fatalf("expected reachability")
	}
	v, ok := store.Feasible.Lookup(b, p)
	if !ok || !v {
		t.Fatalf("expected the feasibility cache to be populated with true")
	}
}

func TestSequenceIsDoableEmptyBoard(t *testing.T) {
	b := board.New(10, 4, 4)
	seq := placementSequenceOf(t, b, piece.Placement{Kind: piece.O, X: 4, Y: 0, Rotation: piece.North})
	if !sequenceIsDoable(nil, seq, b, input.Default()) {
		t.Fatalf("expected a single O drop to be doable")
	}
}
