package input

import (
	"github.com/sfce/sfce/internal/board"
	"github.com/sfce/sfce/internal/piece"
)

// State is the input simulator's state: a piece, its rotation
// center, its rotation, the board it's falling on, and the handling
// profile governing legal transitions.
type State struct {
	Board    board.Board
	Piece    piece.Kind
	X, Y     int
	Rotation piece.Rotation
	Handling Profile
}

// New returns the initial simulator state for k spawning on b under h.
func New(b board.Board, k piece.Kind, h Profile) State {
	x, y := b.Spawn()
	return State{Board: b, Piece: k, X: x, Y: y, Rotation: piece.North, Handling: h}
}

// Placement returns the state's current (piece, x, y, rotation) value.
func (s State) Placement() piece.Placement {
	return piece.Placement{Kind: s.Piece, X: s.X, Y: s.Y, Rotation: s.Rotation}
}

// samePosition compares two states' piece/x/y/rotation, ignoring Board
// and Handling (which never change mid-simulation and, for Board, are
// not comparable with == since it embeds a slice).
func (s State) samePosition(o State) bool {
	return s.Piece == o.Piece && s.X == o.X && s.Y == o.Y && s.Rotation == o.Rotation
}

// Apply runs one key transition, returning the resulting state. If the
// key has no effect (e.g. moving into a wall), Apply returns s unchanged.
func (s State) Apply(k Key) State {
	switch k {
	case MoveLeft:
		return s.translate(-1, 0)
	case MoveRight:
		return s.translate(1, 0)
	case DasLeft:
		return s.das(-1)
	case DasRight:
		return s.das(1)
	case SoftDrop:
		return s.translate(0, -1)
	case SonicDrop, HardDrop:
		return s.sonicDrop()
	case CW:
		return s.rotate(s.Rotation.CW())
	case CCW:
		return s.rotate(s.Rotation.CCW())
	case Flip:
		return s.rotate(s.Rotation.Flip())
	default:
		return s
	}
}

func (s State) translate(dx, dy int) State {
	next := s
	next.X += dx
	next.Y += dy
	if !s.Board.InBoundsEmpty(next.Placement()) {
		return s
	}
	return next
}

// das repeatedly moves in direction dir (±1 on x) until it no longer
// changes state.
func (s State) das(dir int) State {
	cur := s
	for {
		next := cur.translate(dir, 0)
		if next.samePosition(cur) {
			return cur
		}
		cur = next
	}
}

// sonicDrop repeatedly soft-drops until it no longer changes state.
func (s State) sonicDrop() State {
	cur := s
	for {
		next := cur.translate(0, -1)
		if next.samePosition(cur) {
			return cur
		}
		cur = next
	}
}

// rotate applies the kickset for (piece, current, target), trying each
// translation test in order and accepting the first that fits, with a
// skim-adjust on the candidate y: if the candidate lands on a
// row in the board's current line-clear set, y is walked toward the
// direction implied by the sign of the test's Δy until it leaves the set.
func (s State) rotate(target piece.Rotation) State {
	clears := s.Board.ClearedRows()
	clearSet := make(map[int]bool, len(clears))
	for _, r := range clears {
		clearSet[r] = true
	}

	for _, test := range s.Handling.Kicks.Tests(s.Piece, s.Rotation, target) {
		y := s.Y + test.DY
		dir := 1
		if test.DY < 0 {
			dir = -1
		}
		for clearSet[y] {
			y += dir
		}
		candidate := State{
			Board:    s.Board,
			Piece:    s.Piece,
			X:        s.X + test.DX,
			Y:        y,
			Rotation: target,
			Handling: s.Handling,
		}
		if s.Board.InBoundsEmpty(candidate.Placement()) {
			return candidate
		}
	}
	return s
}

// Can reports whether applying k would change s.
func (s State) Can(k Key) bool {
	return !s.Apply(k).samePosition(s)
}

// SendKeys folds Apply over seq, returning the final state.
func (s State) SendKeys(seq []Key) State {
	cur := s
	for _, k := range seq {
		cur = cur.Apply(k)
	}
	return cur
}

// Frame is one annotated step of a `send`-style visualization: the key
// applied and the resulting state.
type Frame struct {
	Key   Key
	State State
}

// ShowInputs runs seq from s, returning one Frame per key applied.
func ShowInputs(s State, seq []Key) []Frame {
	frames := make([]Frame, 0, len(seq))
	cur := s
	for _, k := range seq {
		cur = cur.Apply(k)
		frames = append(frames, Frame{Key: k, State: cur})
	}
	return frames
}
