package piece

// KickTest is a single translation test attempted after a rotation.
type KickTest struct {
	DX, DY int
}

// transition identifies a (from, to) rotation pair.
type transition struct {
	From, To Rotation
}

// identityKicks is the fallback used whenever a (piece, from, to) entry
// is absent from a kick table: "missing entries resolve to the identity
// test list [(0,0)]".
var identityKicks = []KickTest{{0, 0}}

// KickSet is a kick table: an ordered list of translation tests for every
// (piece, from-rotation, to-rotation) triple. It is total by construction
// — Tests always returns a non-empty slice, defaulting to identityKicks.
type KickSet struct {
	name  string
	tests map[Kind]map[transition][]KickTest
}

// Name returns the kick table's identifying name, as given when the table
// was built (e.g. "srs").
func (k *KickSet) Name() string {
	return k.name
}

// Tests returns the ordered kick tests for (piece, from, to). Never
// panics and never returns an empty slice.
func (k *KickSet) Tests(kind Kind, from, to Rotation) []KickTest {
	if kind == O {
		return identityKicks
	}
	if perKind, ok := k.tests[kind]; ok {
		if tests, ok := perKind[transition{from, to}]; ok {
			return tests
		}
	}
	return identityKicks
}

// SRS is the default Super Rotation System kick table.
var SRS = buildSRS()

func buildSRS() *KickSet {
	jlstz := []struct {
		from, to Rotation
		tests    []KickTest
	}{
		{North, East, []KickTest{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}},
		{East, North, []KickTest{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}}},
		{East, South, []KickTest{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}}},
		{South, East, []KickTest{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}},
		{South, West, []KickTest{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}}},
		{West, South, []KickTest{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}}},
		{West, North, []KickTest{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}}},
		{North, West, []KickTest{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}}},
	}

	iTests := []struct {
		from, to Rotation
		tests    []KickTest
	}{
		{North, East, []KickTest{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}}},
		{East, North, []KickTest{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}}},
		{East, South, []KickTest{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}}},
		{South, East, []KickTest{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}}},
		{South, West, []KickTest{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}}},
		{West, South, []KickTest{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}}},
		{West, North, []KickTest{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}}},
		{North, West, []KickTest{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}}},
	}

	ks := &KickSet{
		name:  "srs",
		tests: make(map[Kind]map[transition][]KickTest),
	}

	for _, k := range []Kind{J, L, S, T, Z} {
		m := make(map[transition][]KickTest, len(jlstz))
		for _, e := range jlstz {
			m[transition{e.from, e.to}] = e.tests
		}
		ks.tests[k] = m
	}

	m := make(map[transition][]KickTest, len(iTests))
	for _, e := range iTests {
		m[transition{e.from, e.to}] = e.tests
	}
	ks.tests[I] = m

	return ks
}
