// Package pattern implements the piece-queue pattern language: parsing,
// expansion into concrete queues, and hold-buffer reordering
// enumeration.
package pattern

import "github.com/sfce/sfce/internal/piece"

// Node is a pattern AST node: a tagged variant over
// Single, Wildcard, Bag, Except, Count, and All.
type Node interface {
	node()
}

// Single matches exactly one piece kind.
type Single struct {
	Kind piece.Kind
}

// Wildcard matches any one of the 7 tetrominoes.
type Wildcard struct{}

// Bag matches any one of its sub-parts: its expansion is the union of
// the sub-parts' expansions, each a separate alternative (Bag is the
// grammar's `[...]` grouping without a repeat count).
type Bag struct {
	Parts []Node
}

// Except matches any tetromino not named by one of its Single sub-parts
// (the grammar's `[^...]`).
type Except struct {
	Parts []Node
}

// Count repeats Sub k times in sequence, each position independently
// drawing from Sub's full expansion (the grammar's `part uint`, e.g.
// `[IJ]2` == `[IJ],[IJ]`, which yields {IJ, JI, II, JJ} — repeated values
// across positions are allowed, unlike All).
type Count struct {
	Sub Node
	K   int
}

// All expands every permutation of Sub's full flat expansion (the
// grammar's `part!`).
type All struct {
	Sub Node
}

func (Single) node()   {}
func (Wildcard) node() {}
func (Bag) node()      {}
func (Except) node()   {}
func (Count) node()    {}
func (All) node()      {}

// Pattern is a sequence of parts composing left to right with implicit
// comma separators; expansion is the cross-product over parts.
type Pattern struct {
	Parts []Node
}

// Queue is an ordered sequence of placeable piece kinds.
type Queue []piece.Kind

// Equal reports elementwise equality.
func (q Queue) Equal(o Queue) bool {
	if len(q) != len(o) {
		return false
	}
	for i := range q {
		if q[i] != o[i] {
			return false
		}
	}
	return true
}
