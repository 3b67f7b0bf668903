package cache

import (
	"testing"

	"github.com/sfce/sfce/internal/board"
	"github.com/sfce/sfce/internal/input"
	"github.com/sfce/sfce/internal/piece"
)

func TestFeasibleStoreAndLookup(t *testing.T) {
	f := NewFeasible()
	b := board.New(4, 4, 0)
	p := piece.Placement{Kind: piece.O, X: 1, Y: 0, Rotation: piece.North}

	if _, ok := f.Lookup(b, p); ok {
		t.Fatal("expected empty cache to miss")
	}

	f.Store(b, p, true)
	got, ok := f.Lookup(b, p)
	if !ok || !got {
		t.Errorf("Lookup = (%v, %v), want (true, true)", got, ok)
	}
}

func TestFeasibleDistinguishesBoards(t *testing.T) {
	f := NewFeasible()
	p := piece.Placement{Kind: piece.O, X: 1, Y: 0, Rotation: piece.North}

	empty := board.New(4, 4, 0)
	f.Store(empty, p, true)

	filled, err := board.Parse("GGGG", 4, 1, 0)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := f.Lookup(filled, p); ok {
		t.Error("a differently-shaped board must not share a cache entry")
	}
}

func TestFinesseStoreAndLookup(t *testing.T) {
	fi := NewFinesse()
	b := board.New(4, 4, 0)
	p := piece.Placement{Kind: piece.O, X: 1, Y: 0, Rotation: piece.North}
	seq := []input.Key{input.MoveLeft, input.HardDrop}

	fi.Store(b, p, seq)
	got, ok := fi.Lookup(b, p)
	if !ok || len(got) != 2 || got[0] != input.MoveLeft || got[1] != input.HardDrop {
		t.Errorf("Lookup = (%v, %v), want (%v, true)", got, ok, seq)
	}
}

func TestKeyEncodeDecodeRoundTrip(t *testing.T) {
	seq := []input.Key{input.DasLeft, input.CW, input.HardDrop}
	got := decodeKeys(encodeKeys(seq))
	if len(got) != len(seq) {
		t.Fatalf("round-trip length mismatch: got %d, want %d", len(got), len(seq))
	}
	for i := range seq {
		if got[i] != seq[i] {
			t.Errorf("element %d: got %v, want %v", i, got[i], seq[i])
		}
	}
}
