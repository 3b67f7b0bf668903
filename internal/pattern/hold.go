package pattern

import "github.com/sfce/sfce/internal/piece"

// holdState is one node of the hold-enumeration state space: the
// remaining queue still to be played, the current hold slot, and the
// sequence emitted so far. Two paths can reach the same (remaining,
// hold) pair with different emitted orders, so the sequence is part of
// the dedup key. A hold slot of -1 means empty.
type holdState struct {
	remaining string // piece kinds rendered as single bytes, for map-key use
	hold      int8   // -1 = empty, else piece.Kind value
	seq       string
}

// HoldQueues enumerates every distinct piece ordering achievable by
// running a single-slot hold buffer over q: at each step, either
// play the front of the remaining queue or swap it with hold (moving the
// front into an empty hold if hold is empty); the leftover hold piece is
// appended once the queue is exhausted. Implemented as a dedup'd BFS over
// (remaining, hold, sequence-so-far) states.
func HoldQueues(q Queue) []Queue {
	type frame struct {
		remaining Queue
		hold      int8
		seq       Queue
	}

	seen := make(map[holdState]bool)
	var results []Queue

	frontier := []frame{{remaining: q, hold: -1, seq: nil}}
	for len(frontier) > 0 {
		var next []frame
		for _, f := range frontier {
			key := holdState{remaining: queueKey(f.remaining), hold: f.hold, seq: queueKey(f.seq)}
			if seen[key] {
				continue
			}
			seen[key] = true

			if len(f.remaining) == 0 {
				seq := f.seq
				if f.hold >= 0 {
					seq = append(append(Queue(nil), seq...), heldKind(f.hold))
				}
				results = append(results, seq)
				continue
			}

			front := f.remaining[0]
			rest := f.remaining[1:]

			// Play the front piece directly.
			next = append(next, frame{
				remaining: rest,
				hold:      f.hold,
				seq:       append(append(Queue(nil), f.seq...), front),
			})

			// Swap with hold: if hold is empty, the front piece fills it
			// and the step advances with nothing played; otherwise the
			// held piece is played now and front takes its place in hold.
			if f.hold < 0 {
				next = append(next, frame{remaining: rest, hold: int8(front), seq: f.seq})
			} else {
				next = append(next, frame{
					remaining: rest,
					hold:      int8(front),
					seq:       append(append(Queue(nil), f.seq...), heldKind(f.hold)),
				})
			}
		}
		frontier = next
	}

	return dedupQueues(results)
}

func heldKind(k int8) piece.Kind { return piece.Kind(k) }

// queueKey renders a queue's kinds as single bytes for map-key use.
func queueKey(q Queue) string {
	buf := make([]byte, len(q))
	for i, k := range q {
		buf[i] = byte(k)
	}
	return string(buf)
}

// dedupQueues drops duplicate finished sequences; HoldQueues' BFS can reach
// the same output queue via distinct hold states along the way.
func dedupQueues(qs []Queue) []Queue {
	seen := make(map[string]bool, len(qs))
	var out []Queue
	for _, q := range qs {
		k := queueKey(q)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, q)
	}
	return out
}

// Translatable reports whether q2 is reachable as a hold-variant of q1:
// a state-space DFS matching q2 position-by-position against the
// (remaining, hold) state derived from q1, choosing at each step to play
// the front, play the held piece, or swap-and-continue.
func Translatable(q1, q2 Queue) bool {
	if len(q1) != len(q2) {
		return false
	}
	return translatableDFS(q1, -1, q2)
}

// translatableDFS tries to consume all of want by repeatedly choosing
// among q1's possible next emissions from state (remaining, hold).
func translatableDFS(remaining Queue, hold int8, want Queue) bool {
	if len(remaining) == 0 {
		// Only the held piece, if any, can still be emitted.
		if len(want) == 0 {
			return hold < 0
		}
		return len(want) == 1 && hold >= 0 && heldKind(hold) == want[0]
	}
	if len(want) == 0 {
		return false
	}

	front := remaining[0]
	rest := remaining[1:]

	// Play front directly.
	if front == want[0] && translatableDFS(rest, hold, want[1:]) {
		return true
	}

	if hold < 0 {
		// Hold front, nothing emitted this step.
		if translatableDFS(rest, int8(front), want) {
			return true
		}
	} else if heldKind(hold) == want[0] {
		// Play held piece, front takes its place in hold.
		if translatableDFS(rest, int8(front), want[1:]) {
			return true
		}
	}

	return false
}
