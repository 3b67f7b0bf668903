package piece

// Offset is a single (Δx, Δy) cell displacement relative to a placement's
// rotation center.
type Offset struct {
	DX, DY int
}

// offsetTable holds the four cell offsets for one (piece, rotation) pair.
type offsetTable [4]Offset

// offsets is the compile-time constant table of placement offsets for all
// 28 (piece × rotation) pairs. It is the single
// source of truth; callers must never duplicate it.
var offsets = map[Kind][4]offsetTable{
	I: {
		North: {{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
		East:  {{0, -2}, {0, -1}, {0, 0}, {0, 1}},
		South: {{-2, 0}, {-1, 0}, {0, 0}, {1, 0}},
		West:  {{0, -1}, {0, 0}, {0, 1}, {0, 2}},
	},
	J: {
		North: {{-1, 0}, {0, 0}, {1, 0}, {-1, 1}},
		East:  {{1, 1}, {0, 1}, {0, 0}, {0, -1}},
		South: {{-1, 0}, {0, 0}, {1, 0}, {1, -1}},
		West:  {{0, 1}, {0, 0}, {-1, -1}, {0, -1}},
	},
	L: {
		North: {{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
		East:  {{0, 1}, {0, 0}, {0, -1}, {1, -1}},
		South: {{-1, 0}, {0, 0}, {1, 0}, {-1, -1}},
		West:  {{-1, 1}, {0, 1}, {0, 0}, {0, -1}},
	},
	O: {
		North: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		East:  {{0, -1}, {1, -1}, {0, 0}, {1, 0}},
		South: {{-1, -1}, {0, -1}, {-1, 0}, {0, 0}},
		West:  {{-1, 0}, {0, 0}, {-1, 1}, {0, 1}},
	},
	S: {
		North: {{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
		East:  {{0, 1}, {0, 0}, {1, 0}, {1, -1}},
		South: {{0, 0}, {1, 0}, {-1, -1}, {0, -1}},
		West:  {{-1, 1}, {-1, 0}, {0, 0}, {0, -1}},
	},
	T: {
		North: {{0, 0}, {-1, 0}, {1, 0}, {0, 1}},
		East:  {{0, -1}, {0, 0}, {1, 0}, {0, 1}},
		South: {{-1, 0}, {0, 0}, {1, 0}, {0, -1}},
		West:  {{0, 1}, {-1, 0}, {0, 0}, {0, -1}},
	},
	Z: {
		North: {{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
		East:  {{1, 1}, {0, 0}, {1, 0}, {0, -1}},
		South: {{-1, 0}, {0, 0}, {0, -1}, {1, -1}},
		West:  {{0, 1}, {-1, 0}, {0, 0}, {-1, -1}},
	},
}

// Offsets returns the 4 cell offsets for (k, r). Panics if k is not a
// placeable tetromino; callers must check IsPlaceable first, failing
// fast on programmer error rather than returning a zero value that would
// silently corrupt geometry.
func Offsets(k Kind, r Rotation) [4]Offset {
	table, ok := offsets[k]
	if !ok {
		panic("piece: Offsets called with non-placeable kind " + k.String())
	}
	return [4]Offset(table[r])
}

// Cell is a single occupied board coordinate.
type Cell struct {
	X, Y int
}

// Cells applies the offset table for (k, r) at rotation center (x, y),
// returning the 4 occupied cells. Returns false if any resulting
// coordinate would be negative (an offset underflow).
func Cells(k Kind, x, y int, r Rotation) ([4]Cell, bool) {
	var out [4]Cell
	for i, off := range Offsets(k, r) {
		cx, cy := x+off.DX, y+off.DY
		if cx < 0 || cy < 0 {
			return out, false
		}
		out[i] = Cell{cx, cy}
	}
	return out, true
}
