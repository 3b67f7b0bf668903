package piece

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// rotChars maps the kick-table file's single-letter rotation names to
// Rotation values.
var rotChars = map[byte]Rotation{'n': North, 'e': East, 's': South, 'w': West}

// kindChars maps the file format's piece letters to Kind values. Only
// the seven tetrominoes are valid in a kick-table file.
var kindChars = map[byte]Kind{
	'I': I, 'J': J, 'L': L, 'O': O, 'S': S, 'T': T, 'Z': Z,
}

// kickFileEntry is one parsed line of a kick-table file: either a
// literal test list, or an alias referring to another entry.
type kickFileEntry struct {
	kind     Kind
	from, to Rotation

	isAlias   bool
	tests     []KickTest // valid when !isAlias
	aliasKind Kind       // valid when isAlias
	aliasFrom Rotation
	aliasTo   Rotation
}

// LoadKickSet parses an external kick-table file: lines of the form
// `P rr = (dx,dy);(dx,dy);…`, blank lines and `#` comments ignored, and a
// right-hand side of `&Q rr` aliasing another entry's test list. Aliases
// are resolved in a second pass; a cyclic or dangling alias is an error.
func LoadKickSet(r io.Reader, name string) (*KickSet, error) {
	var entries []kickFileEntry
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		eq := strings.Index(line, "=")
		if eq < 0 {
			return nil, fmt.Errorf("kick table line %d: missing '='", lineNo)
		}
		lhs := strings.TrimSpace(line[:eq])
		rhs := strings.TrimSpace(line[eq+1:])

		kind, from, to, err := parseLHS(lhs)
		if err != nil {
			return nil, fmt.Errorf("kick table line %d: %w", lineNo, err)
		}

		if strings.HasPrefix(rhs, "&") {
			aliasKind, aliasFrom, aliasTo, err := parseLHS(strings.TrimSpace(rhs[1:]))
			if err != nil {
				return nil, fmt.Errorf("kick table line %d: bad alias: %w", lineNo, err)
			}
			entries = append(entries, kickFileEntry{
				kind: kind, from: from, to: to,
				isAlias: true, aliasKind: aliasKind, aliasFrom: aliasFrom, aliasTo: aliasTo,
			})
			continue
		}

		tests, err := parseTests(rhs)
		if err != nil {
			return nil, fmt.Errorf("kick table line %d: %w", lineNo, err)
		}
		entries = append(entries, kickFileEntry{kind: kind, from: from, to: to, tests: tests})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	literal := make(map[Kind]map[transition][]KickTest)
	for _, e := range entries {
		if e.isAlias {
			continue
		}
		m, ok := literal[e.kind]
		if !ok {
			m = make(map[transition][]KickTest)
			literal[e.kind] = m
		}
		m[transition{e.from, e.to}] = e.tests
	}

	for _, e := range entries {
		if !e.isAlias {
			continue
		}
		tests, err := resolveAlias(entries, literal, e.aliasKind, e.aliasFrom, e.aliasTo, make(map[kickFileKey]bool))
		if err != nil {
			return nil, err
		}
		m, ok := literal[e.kind]
		if !ok {
			m = make(map[transition][]KickTest)
			literal[e.kind] = m
		}
		m[transition{e.from, e.to}] = tests
	}

	return &KickSet{name: name, tests: literal}, nil
}

type kickFileKey struct {
	kind     Kind
	from, to Rotation
}

// resolveAlias follows a chain of aliases to a literal test list,
// detecting cycles via the visited set `seen`.
func resolveAlias(entries []kickFileEntry, literal map[Kind]map[transition][]KickTest, kind Kind, from, to Rotation, seen map[kickFileKey]bool) ([]KickTest, error) {
	key := kickFileKey{kind, from, to}
	if seen[key] {
		return nil, fmt.Errorf("kick table: cyclic alias at %s %s->%s", kind, from, to)
	}
	seen[key] = true

	if m, ok := literal[kind]; ok {
		if tests, ok := m[transition{from, to}]; ok {
			return tests, nil
		}
	}
	for _, e := range entries {
		if e.isAlias && e.kind == kind && e.from == from && e.to == to {
			return resolveAlias(entries, literal, e.aliasKind, e.aliasFrom, e.aliasTo, seen)
		}
	}
	return nil, fmt.Errorf("kick table: dangling alias reference %s %s->%s", kind, from, to)
}

func parseLHS(s string) (Kind, Rotation, Rotation, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, 0, 0, fmt.Errorf("expected 'P rr', got %q", s)
	}
	if len(fields[0]) != 1 {
		return 0, 0, 0, fmt.Errorf("invalid piece letter %q", fields[0])
	}
	kind, ok := kindChars[fields[0][0]]
	if !ok {
		return 0, 0, 0, fmt.Errorf("invalid piece letter %q", fields[0])
	}
	if len(fields[1]) != 2 {
		return 0, 0, 0, fmt.Errorf("invalid rotation pair %q", fields[1])
	}
	from, ok := rotChars[fields[1][0]]
	if !ok {
		return 0, 0, 0, fmt.Errorf("invalid from-rotation %q", fields[1])
	}
	to, ok := rotChars[fields[1][1]]
	if !ok {
		return 0, 0, 0, fmt.Errorf("invalid to-rotation %q", fields[1])
	}
	return kind, from, to, nil
}

func parseTests(s string) ([]KickTest, error) {
	parts := strings.Split(s, ";")
	tests := make([]KickTest, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.HasPrefix(p, "(") || !strings.HasSuffix(p, ")") {
			return nil, fmt.Errorf("invalid test %q", p)
		}
		inner := p[1 : len(p)-1]
		coords := strings.Split(inner, ",")
		if len(coords) != 2 {
			return nil, fmt.Errorf("invalid test %q", p)
		}
		dx, err := strconv.Atoi(strings.TrimSpace(coords[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid dx in %q: %w", p, err)
		}
		dy, err := strconv.Atoi(strings.TrimSpace(coords[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid dy in %q: %w", p, err)
		}
		tests = append(tests, KickTest{DX: dx, DY: dy})
	}
	if len(tests) == 0 {
		return nil, fmt.Errorf("no tests parsed from %q", s)
	}
	return tests, nil
}
