package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sfce/sfce/internal/piece"
)

// Parse parses one page of the board-string grammar:
//
//	board   := row ('|' row)*       // bottom-most row first inside a page
//	row     := part*
//	part    := piece | group | repeat
//	piece   := one of  I J O L Z S T E G D  (case-insensitive)
//	group   := '[' part+ ']'
//	repeat  := (piece | group) uint
//
// w, h, m give the resulting Board's dimensions; rows are placed bottom-up
// starting at row 0, and any rows/cells the string does not cover are left
// Empty.
func Parse(s string, w, h, m int) (Board, error) {
	b := New(w, h, m)
	rows := strings.Split(s, "|")
	if len(rows) > b.Rows() {
		return Board{}, fmt.Errorf("board: %d rows exceeds board height+margin %d", len(rows), b.Rows())
	}
	for y, rowStr := range rows {
		kinds, err := parseRow(rowStr)
		if err != nil {
			return Board{}, fmt.Errorf("board: row %d: %w", y, err)
		}
		if len(kinds) > w {
			return Board{}, fmt.Errorf("board: row %d has %d cells, exceeds width %d", y, len(kinds), w)
		}
		for x, k := range kinds {
			b.set(x, y, k)
		}
	}
	return b, nil
}

// ParsePages splits s on ';' into pages and parses each with Parse.
func ParsePages(s string, w, h, m int) ([]Board, error) {
	parts := strings.Split(s, ";")
	pages := make([]Board, 0, len(parts))
	for i, p := range parts {
		b, err := Parse(p, w, h, m)
		if err != nil {
			return nil, fmt.Errorf("board: page %d: %w", i, err)
		}
		pages = append(pages, b)
	}
	return pages, nil
}

// parseRow expands one row's parts into a flat Kind slice.
func parseRow(s string) ([]piece.Kind, error) {
	kinds, rest, err := parseParts(s)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, fmt.Errorf("unexpected trailing input %q", rest)
	}
	return kinds, nil
}

// parseParts consumes a sequence of `part`s from the front of s, stopping
// at an unmatched ']' or end of input, and returns the leftover string.
func parseParts(s string) ([]piece.Kind, string, error) {
	var out []piece.Kind
	for s != "" {
		if s[0] == ']' {
			break
		}
		unit, rest, err := parseUnit(s)
		if err != nil {
			return nil, "", err
		}
		s = rest
		count, rest2 := parseRepeatCount(s)
		s = rest2
		for i := 0; i < count; i++ {
			out = append(out, unit...)
		}
	}
	return out, s, nil
}

// parseUnit consumes one `piece` or `group` from the front of s.
func parseUnit(s string) ([]piece.Kind, string, error) {
	if s[0] == '[' {
		inner, rest, err := parseParts(s[1:])
		if err != nil {
			return nil, "", err
		}
		if rest == "" || rest[0] != ']' {
			return nil, "", fmt.Errorf("unterminated group")
		}
		return inner, rest[1:], nil
	}
	k, ok := piece.KindFromChar(s[0])
	if !ok {
		return nil, "", fmt.Errorf("invalid piece character %q", s[0])
	}
	return []piece.Kind{k}, s[1:], nil
}

// parseRepeatCount consumes a leading run of digits, if any, and returns the
// repeat count (1 when absent) plus the remaining string.
func parseRepeatCount(s string) (int, string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 1, s
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil || n == 0 {
		return 1, s
	}
	return n, s[i:]
}

// String renders b using the literal (non run-length-optimized) form of
// the board-string grammar: one character per cell, rows separated by '|',
// bottom row first. Parse(b.String(), b.W, b.H, b.M) reproduces b exactly
// (no deoptimization needed since String never emits repeat/group syntax).
func (b Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.Rows(); y++ {
		if y > 0 {
			sb.WriteByte('|')
		}
		for x := 0; x < b.W; x++ {
			sb.WriteString(b.Get(x, y).String())
		}
	}
	return sb.String()
}
