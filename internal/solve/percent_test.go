package solve

import (
	"testing"

	"github.com/sfce/sfce/internal/board"
	"github.com/sfce/sfce/internal/input"
	"github.com/sfce/sfce/internal/pattern"
)

func TestPercentAllSucceedOnEmptyBoard(t *testing.T) {
	b := board.New(4, 4, 4)
	p, err := pattern.Parse("[IJ]")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	result, err := Percent(PercentRequest{
		Board:      b,
		Pattern:    p,
		Clears:     Unbounded,
		Continuous: Unbounded,
		NoHold:     true,
		Handling:   input.Default(),
	})
	if err != nil {
		t.Fatalf("Percent: %v", err)
	}
	if result.Total != 2 {
		t.Fatalf("Total = %d, want 2", result.Total)
	}
	if result.Success != 2 {
		t.Fatalf("Success = %d, want 2 (failing %v)", result.Success, result.Failing)
	}
	if result.Ratio() != 100 {
		t.Fatalf("Ratio() = %v, want 100", result.Ratio())
	}
}

func TestPercentRatioZeroWhenNoQueues(t *testing.T) {
	r := PercentResult{Total: 0}
	if r.Ratio() != 0 {
		t.Fatalf("Ratio() = %v, want 0", r.Ratio())
	}
}
