package pattern

import (
	"sort"
	"testing"

	"github.com/sfce/sfce/internal/piece"
)

func queueStrings(qs []Queue) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		s := ""
		for _, k := range q {
			s += k.String()
		}
		out[i] = s
	}
	sort.Strings(out)
	return out
}

// TestExpandCountAllowsRepetition checks that `[IJ]2` expands to exactly
// {IJ, JI, II, JJ}: a bracketed group counted with a repeat factor allows
// any piece in the group to repeat across draws.
func TestExpandCountAllowsRepetition(t *testing.T) {
	p, err := Parse("[IJ]2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var got []Queue
	Expand(p, func(q Queue) { got = append(got, q) })

	want := []string{"II", "IJ", "JI", "JJ"}
	gotStrs := queueStrings(got)
	if len(gotStrs) != len(want) {
		t.Fatalf("got %v, want %v", gotStrs, want)
	}
	for i := range want {
		if gotStrs[i] != want[i] {
			t.Errorf("got %v, want %v", gotStrs, want)
			break
		}
	}
}

// TestExpandAllHasNoRepetition checks that `[IJ]!` (the grammar's `all`
// form) yields only the 2 no-repeat permutations, unlike Count.
func TestExpandAllHasNoRepetition(t *testing.T) {
	p, err := Parse("[IJ]!")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var got []Queue
	Expand(p, func(q Queue) { got = append(got, q) })

	want := []string{"IJ", "JI"}
	gotStrs := queueStrings(got)
	if len(gotStrs) != len(want) {
		t.Fatalf("got %v, want %v", gotStrs, want)
	}
	for i := range want {
		if gotStrs[i] != want[i] {
			t.Errorf("got %v, want %v", gotStrs, want)
			break
		}
	}
}

func TestExpandWildcardCoversAllSeven(t *testing.T) {
	p, err := Parse("*")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var got []Queue
	Expand(p, func(q Queue) { got = append(got, q) })
	if len(got) != len(piece.Tetrominoes) {
		t.Errorf("got %d wildcard expansions, want %d", len(got), len(piece.Tetrominoes))
	}
}

func TestExpandExceptExcludesNamedKinds(t *testing.T) {
	p, err := Parse("[^IJ]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var got []Queue
	Expand(p, func(q Queue) { got = append(got, q) })
	if len(got) != len(piece.Tetrominoes)-2 {
		t.Fatalf("got %d, want %d", len(got), len(piece.Tetrominoes)-2)
	}
	for _, q := range got {
		if q[0] == piece.I || q[0] == piece.J {
			t.Errorf("Except still produced excluded kind %v", q[0])
		}
	}
}

func TestExpandCompositionIsCrossProduct(t *testing.T) {
	p, err := Parse("I,[JL]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var got []Queue
	Expand(p, func(q Queue) { got = append(got, q) })
	want := []string{"IJ", "IL"}
	gotStrs := queueStrings(got)
	if len(gotStrs) != len(want) {
		t.Fatalf("got %v, want %v", gotStrs, want)
	}
	for i := range want {
		if gotStrs[i] != want[i] {
			t.Errorf("got %v, want %v", gotStrs, want)
			break
		}
	}
}
