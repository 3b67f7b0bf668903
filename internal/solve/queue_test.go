package solve

import (
	"testing"

	"github.com/sfce/sfce/internal/pattern"
	"github.com/sfce/sfce/internal/piece"
)

func TestSignatureIgnoresOrder(t *testing.T) {
	a := signature(pattern.Queue{piece.I, piece.J})
	b := signature(pattern.Queue{piece.J, piece.I})
	if a != b {
		t.Fatalf("signature(IJ) = %q, signature(JI) = %q, want equal", a, b)
	}
}

func TestSignatureDistinguishesMultisets(t *testing.T) {
	a := signature(pattern.Queue{piece.I, piece.I})
	b := signature(pattern.Queue{piece.I, piece.J})
	if a == b {
		t.Fatalf("signature(II) == signature(IJ) = %q, want distinct", a)
	}
}

func TestQueueKeyDistinguishesOrder(t *testing.T) {
	a := queueKey(pattern.Queue{piece.I, piece.J})
	b := queueKey(pattern.Queue{piece.J, piece.I})
	if a == b {
		t.Fatalf("queueKey(IJ) == queueKey(JI), want distinct (order matters)")
	}
}

func TestExpandQueuesNoHoldIsIdentity(t *testing.T) {
	p := mustParse(t, "IJL")
	out := expandQueues(p, true)
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1 with NoHold", len(out))
	}
}

func TestExpandQueuesWithHoldExpandsVariants(t *testing.T) {
	p := mustParse(t, "IJL")
	out := expandQueues(p, false)
	if len(out) <= 1 {
		t.Fatalf("len(out) = %d, want >1 hold-variants", len(out))
	}
}
