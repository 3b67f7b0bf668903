package main

import (
	"testing"

	"github.com/sfce/sfce/internal/piece"
)

func TestDecodeTetfuFallsBackToRawGrammar(t *testing.T) {
	f := boardFlags{width: 4, height: 4, margin: 0}
	b, err := decodeTetfu("IE3", f)
	if err != nil {
		t.Fatalf("decodeTetfu: %v", err)
	}
	if b.Get(0, 0) != piece.I {
		t.Fatalf("expected cell (0,0) to be I, got %v", b.Get(0, 0))
	}
}

func TestDecodeTetfuRejectsGarbage(t *testing.T) {
	f := boardFlags{width: 4, height: 4, margin: 0}
	if _, err := decodeTetfu("@@not a board@@", f); err == nil {
		t.Fatalf("expected an error for unparseable input")
	}
}
