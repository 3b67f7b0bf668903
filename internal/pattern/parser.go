package pattern

import (
	"fmt"
	"strconv"

	"github.com/sfce/sfce/internal/piece"
)

// Parse parses a pattern string into a Pattern AST.
func Parse(s string) (Pattern, error) {
	var parts []Node
	i := 0
	for i < len(s) {
		if s[i] == ',' {
			i++
			continue
		}
		part, rest, err := parsePart(s[i:])
		if err != nil {
			return Pattern{}, fmt.Errorf("pattern: at %q: %w", s[i:], err)
		}
		parts = append(parts, part)
		i += len(s[i:]) - len(rest)
	}
	return Pattern{Parts: parts}, nil
}

// parsePart consumes one `part` (an `all`, `count`, or bare `repeatable`).
func parsePart(s string) (Node, string, error) {
	r, rest, err := parseRepeatable(s)
	if err != nil {
		return nil, "", err
	}
	if rest != "" && rest[0] == '!' {
		return All{Sub: r}, rest[1:], nil
	}
	n, rest2 := parseUint(rest)
	if n > 0 {
		return Count{Sub: r, K: n}, rest2, nil
	}
	return r, rest, nil
}

// parseRepeatable consumes one `bag_except | bag | wildcard | single`.
func parseRepeatable(s string) (Node, string, error) {
	if s == "" {
		return nil, "", fmt.Errorf("unexpected end of pattern")
	}
	switch s[0] {
	case '*':
		return Wildcard{}, s[1:], nil
	case '[':
		return parseBag(s)
	default:
		k, ok := singleFromChar(s[0])
		if !ok {
			return nil, "", fmt.Errorf("invalid piece letter %q", s[0])
		}
		return Single{Kind: k}, s[1:], nil
	}
}

// parseBag consumes a `[...]` or `[^...]` group.
func parseBag(s string) (Node, string, error) {
	if s == "" || s[0] != '[' {
		return nil, "", fmt.Errorf("expected '['")
	}
	s = s[1:]
	except := false
	if s != "" && s[0] == '^' {
		except = true
		s = s[1:]
	}
	var parts []Node
	for s != "" && s[0] != ']' {
		k, ok := singleFromChar(s[0])
		if !ok {
			return nil, "", fmt.Errorf("invalid piece letter %q in bag", s[0])
		}
		parts = append(parts, Single{Kind: k})
		s = s[1:]
	}
	if s == "" {
		return nil, "", fmt.Errorf("unterminated bag (missing ']')")
	}
	s = s[1:] // consume ']'
	if len(parts) == 0 {
		return nil, "", fmt.Errorf("empty bag")
	}
	if except {
		return Except{Parts: parts}, s, nil
	}
	return Bag{Parts: parts}, s, nil
}

// parseUint consumes a leading run of digits, returning 0 if there is
// none.
func parseUint(s string) (int, string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, s
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, s
	}
	return n, s[i:]
}

// singleFromChar parses one `single` character: one of I J O L Z S T,
// case-insensitive. The pattern grammar's alphabet excludes E/G/D, unlike
// the board-string grammar.
func singleFromChar(c byte) (piece.Kind, bool) {
	k, ok := piece.KindFromChar(c)
	if !ok || !k.IsPlaceable() {
		return piece.Empty, false
	}
	return k, true
}
