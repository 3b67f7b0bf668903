package main

import (
	"strings"
	"testing"

	"github.com/sfce/sfce/internal/board"
	"github.com/sfce/sfce/internal/piece"
)

func TestRenderBoardRaw(t *testing.T) {
	b := board.New(4, 4, 0)
	s, err := renderBoard(b, outputFlags{link: "raw"})
	if err != nil {
		t.Fatalf("renderBoard: %v", err)
	}
	if s == "" {
		t.Fatalf("expected non-empty raw rendering")
	}
}

func TestRenderBoardURLProducesFumenCode(t *testing.T) {
	b := board.New(4, 4, 0)
	s, err := renderBoard(b, outputFlags{link: "url"})
	if err != nil {
		t.Fatalf("renderBoard: %v", err)
	}
	if s == "" {
		t.Fatalf("expected a non-empty fumen code")
	}
}

func TestRenderBoardTerminalContainsANSICodes(t *testing.T) {
	b := board.New(2, 1, 0)
	b.SetCell(0, 0, piece.I)
	s, err := renderBoard(b, outputFlags{link: "term", rowSeparator: "|"})
	if err != nil {
		t.Fatalf("renderBoard: %v", err)
	}
	if !strings.Contains(s, "\x1b[") {
		t.Fatalf("expected ANSI escape codes in terminal rendering, got %q", s)
	}
}

func TestRenderBoardRejectsUnknownLinkType(t *testing.T) {
	b := board.New(2, 1, 0)
	if _, err := renderBoard(b, outputFlags{link: "bogus"}); err == nil {
		t.Fatalf("expected an error for an unknown link type")
	}
}
