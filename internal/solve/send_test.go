package solve

import (
	"testing"

	"github.com/sfce/sfce/internal/board"
	"github.com/sfce/sfce/internal/input"
	"github.com/sfce/sfce/internal/piece"
)

func TestSendReplaysKeysAsFrames(t *testing.T) {
	b := board.New(10, 4, 4)
	keys := []input.Key{input.MoveLeft, input.MoveLeft}
	frames := Send(SendRequest{Board: b, Kind: piece.T, Keys: keys, Handling: input.Default()})
	if len(frames) != len(keys) {
		t.Fatalf("len(frames) = %d, want %d", len(frames), len(keys))
	}
	for i, f := range frames {
		if f.Key != keys[i] {
			t.Errorf("frames[%d].Key = %v, want %v", i, f.Key, keys[i])
		}
	}
}

func TestInputsFindsTargetPlacement(t *testing.T) {
	b := board.New(10, 4, 4)
	target := piece.Placement{Kind: piece.O, X: 4, Y: 0, Rotation: piece.North}
	result := Inputs(InputsRequest{Board: b, Target: target, Handling: input.Default()})
	if !result.Reachable {
		t.Fatalf("expected target to be reachable")
	}
}
