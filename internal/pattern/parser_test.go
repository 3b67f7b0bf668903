package pattern

import (
	"testing"

	"github.com/sfce/sfce/internal/piece"
)

func TestParseSingleSequence(t *testing.T) {
	p, err := Parse("IJL")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(p.Parts) != 3 {
		t.Fatalf("expected 3 parts, got %d", len(p.Parts))
	}
	for i, want := range []piece.Kind{piece.I, piece.J, piece.L} {
		s, ok := p.Parts[i].(Single)
		if !ok || s.Kind != want {
			t.Errorf("part %d = %#v, want Single{%v}", i, p.Parts[i], want)
		}
	}
}

func TestParseWildcard(t *testing.T) {
	p, err := Parse("*")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := p.Parts[0].(Wildcard); !ok {
		t.Errorf("expected Wildcard, got %#v", p.Parts[0])
	}
}

func TestParseBagAndCount(t *testing.T) {
	p, err := Parse("[IJ]2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	c, ok := p.Parts[0].(Count)
	if !ok {
		t.Fatalf("expected Count, got %#v", p.Parts[0])
	}
	if c.K != 2 {
		t.Errorf("K = %d, want 2", c.K)
	}
	bag, ok := c.Sub.(Bag)
	if !ok || len(bag.Parts) != 2 {
		t.Fatalf("expected 2-element Bag sub, got %#v", c.Sub)
	}
}

func TestParseExcept(t *testing.T) {
	p, err := Parse("[^IJ]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := p.Parts[0].(Except); !ok {
		t.Errorf("expected Except, got %#v", p.Parts[0])
	}
}

func TestParseAll(t *testing.T) {
	p, err := Parse("[IJL]!")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := p.Parts[0].(All); !ok {
		t.Errorf("expected All, got %#v", p.Parts[0])
	}
}

func TestParseCommaSeparated(t *testing.T) {
	p, err := Parse("I,J,*")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(p.Parts) != 3 {
		t.Fatalf("expected 3 parts, got %d", len(p.Parts))
	}
}

func TestParseInvalidLetter(t *testing.T) {
	if _, err := Parse("Q"); err == nil {
		t.Error("expected error for invalid piece letter")
	}
}

func TestParseUnterminatedBag(t *testing.T) {
	if _, err := Parse("[IJ"); err == nil {
		t.Error("expected error for unterminated bag")
	}
}
