// Package cache implements the memoization store: two maps keyed
// by (board bits, placement) — a feasibility map populated by the input
// search's reachability verdicts, and a finesse map storing the shortest key
// sequence found for that search. Both are in-memory, RWMutex-guarded
// lookup layers in front of badger-backed persistence, falling through to
// a badger View/Update only on a memory miss.
package cache

import (
	"encoding/binary"

	"github.com/sfce/sfce/internal/board"
	"github.com/sfce/sfce/internal/piece"
)

// key is the hashable (Bits, Placement) pair: the board bit-vector's
// digest (which covers width and height) plus the placement's fields.
type key struct {
	boardHash uint64
	kind      piece.Kind
	x, y      int
	rotation  piece.Rotation
}

func keyOf(b board.Board, p piece.Placement) key {
	return key{
		boardHash: b.ToBits().Hash(),
		kind:      p.Kind,
		x:         p.X,
		y:         p.Y,
		rotation:  p.Rotation,
	}
}

// bytes renders the key as a fixed-width binary encoding for badger
// storage — board hash, piece kind, x, y, rotation, in that order.
func (k key) bytes() []byte {
	buf := make([]byte, 8+1+8+8+1)
	binary.LittleEndian.PutUint64(buf[0:8], k.boardHash)
	buf[8] = byte(k.kind)
	binary.LittleEndian.PutUint64(buf[9:17], uint64(int64(k.x)))
	binary.LittleEndian.PutUint64(buf[17:25], uint64(int64(k.y)))
	buf[25] = byte(k.rotation)
	return buf
}
