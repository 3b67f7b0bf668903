package input

import (
	"github.com/sfce/sfce/internal/board"
	"github.com/sfce/sfce/internal/piece"
)

// Result is the outcome of a bounded input search.
type Result struct {
	Reachable bool
	Keys      []Key
}

// node is one entry in the BFS frontier: a simulator state plus the key
// sequence that reached it.
type node struct {
	state State
	keys  []Key
}

// Search looks for the shortest key sequence, bounded by h.MaxInputs, that
// reaches target from a piece of target.Kind spawning on b. If
// h.Ignore is set, the search is skipped and reachability is assumed with
// no key sequence reported. When the accepting state still has to fall
// to reach target, the reported sequence ends with an explicit SonicDrop
// for that implicit drop; this final key is not counted against
// h.MaxInputs.
//
// The search is breadth-first over key-sequence prefixes, so the first
// accepting sequence found is shortest by construction. Of the two
// termination policies — reachability (first solution is fine) and
// finesse (exhaustively confirm the shortest) — both return the same
// first hit here, since BFS already guarantees shortest-first; h.Finesse
// does not change the search or its result.
func Search(b board.Board, target piece.Placement, h Profile) Result {
	if h.Ignore {
		return Result{Reachable: true}
	}

	accept := func(s State, seq []Key) Result {
		if s.X != target.X || s.Y != target.Y || s.Rotation != target.Rotation {
			seq = append(seq, SonicDrop)
		}
		return Result{Reachable: true, Keys: seq}
	}

	start := New(b, target.Kind, h)
	if matches(start, target) {
		return accept(start, []Key{})
	}

	keys := h.LegalKeys()
	visited := map[posKey]bool{posKeyOf(start): true}
	frontier := []node{{state: start, keys: nil}}

	for len(frontier) > 0 {
		var next []node
		for _, n := range frontier {
			if len(n.keys) >= h.MaxInputs {
				continue
			}
			for _, k := range keys {
				succ := n.state.Apply(k)
				if succ.samePosition(n.state) {
					continue // pruning: key had no effect
				}
				seq := append(append([]Key{}, n.keys...), k)
				if matches(succ, target) {
					return accept(succ, seq)
				}
				pk := posKeyOf(succ)
				if visited[pk] {
					continue
				}
				visited[pk] = true
				next = append(next, node{state: succ, keys: seq})
			}
		}
		frontier = next
	}

	return Result{Reachable: false}
}

// matches reports whether simulating to s has produced the target
// placement: the search implicitly hard-drops by equality, never
// enqueuing an explicit HardDrop key (Search appends a SonicDrop to the
// reported sequence when that drop moves the piece).
func matches(s State, target piece.Placement) bool {
	dropped := s.Apply(SonicDrop)
	return dropped.Piece == target.Kind && dropped.X == target.X && dropped.Y == target.Y && dropped.Rotation == target.Rotation
}

// posKey is the BFS visited-set key: a simulator position, independent of
// the board/handling (which are invariant across one search).
type posKey struct {
	piece.Kind
	X, Y int
	R    piece.Rotation
}

func posKeyOf(s State) posKey {
	return posKey{Kind: s.Piece, X: s.X, Y: s.Y, R: s.Rotation}
}
