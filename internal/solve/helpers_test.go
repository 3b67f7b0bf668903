package solve

import (
	"testing"

	"github.com/sfce/sfce/internal/board"
	"github.com/sfce/sfce/internal/pattern"
	"github.com/sfce/sfce/internal/piece"
	"github.com/sfce/sfce/internal/placement"
)

func mustParse(t *testing.T, s string) pattern.Pattern {
	t.Helper()
	p, err := pattern.Parse(s)
	if err != nil {
		t.Fatalf("pattern.Parse(%q): %v", s, err)
	}
	return p
}

// placementSequenceOf builds a single-placement Sequence the way the
// composer would, for tests that exercise sequence-level helpers
// without running the full queue search.
func placementSequenceOf(t *testing.T, b board.Board, p piece.Placement) placement.Sequence {
	t.Helper()
	before := len(b.ClearedRows())
	final := b.SkimPlace(p)
	after := len(final.ClearedRows())
	return placement.Sequence{
		Placements:  []piece.Placement{p},
		Final:       final,
		ClearDeltas: []int{after - before},
	}
}
