package solve

import (
	"testing"

	"github.com/sfce/sfce/internal/board"
	"github.com/sfce/sfce/internal/piece"
)

func TestCongruentMatchesOnlyTemplateColor(t *testing.T) {
	// Both rows painted Gray except an O-shaped 2x2 hole
	// painted I (a stand-in template color), at (0,0)-(1,1).
	b := board.New(4, 2, 2)
	for x := 0; x < 4; x++ {
		for y := 0; y < 2; y++ {
			b.SetCell(x, y, piece.Gray)
		}
	}
	b.SetCell(0, 0, piece.I)
	b.SetCell(1, 0, piece.I)
	b.SetCell(0, 1, piece.I)
	b.SetCell(1, 1, piece.I)

	results, err := Congruent(CongruentRequest{
		Board:   b,
		Color:   piece.I,
		Pattern: mustParse(t, "O"),
		NoHold:  true,
	})
	if err != nil {
		t.Fatalf("Congruent: %v", err)
	}
	if len(results) == 0 {
		t.Fatalf("expected at least one O placement covering the 2x2 template")
	}
	for _, seq := range results {
		if len(seq.Placements) != 1 || seq.Placements[0].Kind != piece.O {
			t.Fatalf("unexpected sequence: %+v", seq)
		}
	}
}
