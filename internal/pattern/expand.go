package pattern

import "github.com/sfce/sfce/internal/piece"

// Expand enumerates every concrete Queue a Pattern can produce,
// invoking emit once per queue. Parts compose sequentially (implicit
// comma separators); expansion is the cross-product over parts, computed
// depth-first so the full product is never held in memory at once.
func Expand(p Pattern, emit func(Queue)) {
	expandParts(p.Parts, nil, emit)
}

func expandParts(parts []Node, prefix Queue, emit func(Queue)) {
	if len(parts) == 0 {
		emit(append(Queue(nil), prefix...))
		return
	}
	expandNode(parts[0], func(q Queue) {
		expandParts(parts[1:], append(prefix, q...), emit)
	})
}

// expandNode enumerates every Queue fragment one AST node can produce.
func expandNode(n Node, emit func(Queue)) {
	switch v := n.(type) {
	case Single:
		emit(Queue{v.Kind})
	case Wildcard:
		for _, k := range piece.Tetrominoes {
			emit(Queue{k})
		}
	case Bag:
		for _, part := range v.Parts {
			expandNode(part, emit)
		}
	case Except:
		excluded := make(map[piece.Kind]bool)
		for _, part := range v.Parts {
			if s, ok := part.(Single); ok {
				excluded[s.Kind] = true
			}
		}
		for _, k := range piece.Tetrominoes {
			if !excluded[k] {
				emit(Queue{k})
			}
		}
	case Count:
		// `sub k` is sugar for sub repeated k times in sequence (e.g.
		// `[IJ]2` == `[IJ],[IJ]`): each of the k positions independently
		// draws from sub's full expansion, so repeated values across
		// positions are allowed (e.g. `[IJ]2` expands to {IJ, JI, II, JJ}).
		var choices []Queue
		expandNode(v.Sub, func(q Queue) { choices = append(choices, q) })
		crossProductOfSize(choices, v.K, emit)
	case All:
		// `sub!` permutes sub's full flat expansion, using every element
		// exactly once — unlike Count, no repetition.
		var sub []Queue
		expandNode(v.Sub, func(q Queue) { sub = append(sub, q) })
		flat := flattenAlphabet(sub)
		permutationsOfSize(flat, len(flat), emit)
	default:
		panic("pattern: unknown node type")
	}
}

// flattenAlphabet collapses a node's queue-fragment expansion into the
// flat set of kinds it can choose from. Single/Wildcard/Bag/Except nodes
// always expand to single-piece fragments, so concatenating them is exact
// for every legal `all` sub-expression per the grammar.
func flattenAlphabet(fragments []Queue) []piece.Kind {
	var out []piece.Kind
	for _, f := range fragments {
		out = append(out, f...)
	}
	return out
}

// crossProductOfSize emits every length-k sequence formed by
// independently choosing one of `choices` at each position, concatenated
// — repetition across positions is allowed, unlike permutationsOfSize.
func crossProductOfSize(choices []Queue, k int, emit func(Queue)) {
	var rec func(depth int, acc Queue)
	rec = func(depth int, acc Queue) {
		if depth == k {
			emit(append(Queue(nil), acc...))
			return
		}
		for _, c := range choices {
			rec(depth+1, append(acc, c...))
		}
	}
	rec(0, nil)
}

// permutationsOfSize emits every ordered k-permutation of alphabet,
// without repetition.
func permutationsOfSize(alphabet []piece.Kind, k int, emit func(Queue)) {
	used := make([]bool, len(alphabet))
	var rec func(acc Queue)
	rec = func(acc Queue) {
		if len(acc) == k {
			emit(append(Queue(nil), acc...))
			return
		}
		for i, kind := range alphabet {
			if used[i] {
				continue
			}
			used[i] = true
			rec(append(acc, kind))
			used[i] = false
		}
	}
	rec(nil)
}
