package piece

import (
	"strings"
	"testing"
)

func TestRotationGroupLaws(t *testing.T) {
	for r := North; r < numRotations; r++ {
		if got := r.CW().CCW(); got != r {
			t.Errorf("cw(ccw(%v)) = %v, want %v", r, got, r)
		}
		if got := r.Flip().Flip(); got != r {
			t.Errorf("flip(flip(%v)) = %v, want %v", r, got, r)
		}
		cur := r
		for i := 0; i < 4; i++ {
			cur = cur.CW()
		}
		if cur != r {
			t.Errorf("cw^4(%v) = %v, want %v", r, cur, r)
		}
	}
}

func TestOffsetsAllFour(t *testing.T) {
	for _, k := range Tetrominoes {
		for r := North; r < numRotations; r++ {
			offs := Offsets(k, r)
			seen := map[Offset]bool{}
			for _, o := range offs {
				if seen[o] {
					t.Errorf("%v %v: duplicate offset %v", k, r, o)
				}
				seen[o] = true
			}
		}
	}
}

func TestOPieceRotationsDistinct(t *testing.T) {
	seen := map[[4]Offset]bool{}
	for r := North; r < numRotations; r++ {
		offs := Offsets(O, r)
		if seen[offs] {
			t.Errorf("O rotation %v duplicates an earlier rotation's offsets", r)
		}
		seen[offs] = true
	}
}

func TestKindFromChar(t *testing.T) {
	cases := map[byte]Kind{'i': I, 'I': I, 'g': Gray, 'D': DeepGray, 'e': Empty}
	for c, want := range cases {
		got, ok := KindFromChar(c)
		if !ok || got != want {
			t.Errorf("KindFromChar(%q) = %v, %v; want %v, true", c, got, ok, want)
		}
	}
	if _, ok := KindFromChar('x'); ok {
		t.Errorf("KindFromChar('x') should fail")
	}
}

func TestKickSetTotal(t *testing.T) {
	for _, k := range Tetrominoes {
		for from := North; from < numRotations; from++ {
			for to := North; to < numRotations; to++ {
				tests := SRS.Tests(k, from, to)
				if len(tests) == 0 {
					t.Errorf("SRS.Tests(%v,%v,%v) returned no tests", k, from, to)
				}
			}
		}
	}
}

func TestKickSetMissingDefaultsToIdentity(t *testing.T) {
	// Flip transitions are not populated explicitly; they must default to
	// the identity test list.
	tests := SRS.Tests(T, North, South)
	if len(tests) != 1 || tests[0] != (KickTest{0, 0}) {
		t.Errorf("flip kicks should default to identity, got %v", tests)
	}
}

func TestOKickIsIdentityOnly(t *testing.T) {
	tests := SRS.Tests(O, North, East)
	if len(tests) != 1 || tests[0] != (KickTest{0, 0}) {
		t.Errorf("O kicks should always be identity, got %v", tests)
	}
}

func TestLoadKickSetAlias(t *testing.T) {
	src := `
# comment
T nn = (0,0)
T ne = &T nn
`
	ks, err := LoadKickSet(strings.NewReader(src), "custom")
	if err != nil {
		t.Fatalf("LoadKickSet: %v", err)
	}
	got := ks.Tests(T, North, East)
	if len(got) != 1 || got[0] != (KickTest{0, 0}) {
		t.Errorf("aliased kicks = %v, want [(0,0)]", got)
	}
}

func TestLoadKickSetCycleError(t *testing.T) {
	src := `
T ne = &T nw
T nw = &T ne
`
	_, err := LoadKickSet(strings.NewReader(src), "custom")
	if err == nil {
		t.Fatalf("expected cycle error, got nil")
	}
}
