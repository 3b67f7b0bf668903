package solve

import (
	"github.com/sfce/sfce/internal/pattern"
)

// queueKey renders a pattern.Queue as a comparable string, used to dedup
// hold-variants and "minimal" result signatures without sorting piece
// kinds (order matters for the former, not the latter — see signature).
func queueKey(q pattern.Queue) string {
	buf := make([]byte, len(q))
	for i, k := range q {
		buf[i] = byte(k)
	}
	return string(buf)
}

// signature is the "minimal" filter's multiset-of-pieces key: two
// sequences sharing a signature are considered the same representative
// class, of which the driver keeps only the first.
func signature(q pattern.Queue) string {
	counts := make(map[byte]int, 7)
	for _, k := range q {
		counts[byte(k)]++
	}
	buf := make([]byte, 0, 14)
	for b := byte(0); b < 7; b++ {
		if counts[b] > 0 {
			buf = append(buf, b, byte(counts[b]))
		}
	}
	return string(buf)
}

// expandQueues turns a pattern into the full set of branches a driver
// parallelizes over: one branch per (base queue, hold variant) pair.
// When noHold
// is set the hold-variant axis collapses to just the base queue itself.
func expandQueues(p pattern.Pattern, noHold bool) []pattern.Queue {
	var bases []pattern.Queue
	pattern.Expand(p, func(q pattern.Queue) { bases = append(bases, q) })

	seen := make(map[string]bool)
	var out []pattern.Queue
	for _, base := range bases {
		variants := []pattern.Queue{base}
		if !noHold {
			variants = pattern.HoldQueues(base)
		}
		for _, v := range variants {
			key := queueKey(v)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, v)
		}
	}
	return out
}
