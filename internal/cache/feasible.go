package cache

import (
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/sfce/sfce/internal/board"
	"github.com/sfce/sfce/internal/piece"
)

var feasibleTrue = []byte{1}
var feasibleFalse = []byte{0}

// Feasible is the `feasible : (Bits, Placement) -> bool` map: an
// in-memory RWMutex-guarded cache in front of an optional badger-backed
// persistence layer, wrapping the slower reachability search.
type Feasible struct {
	mu  sync.RWMutex
	mem map[key]bool
	db  *badger.DB
}

// NewFeasible returns an empty in-memory feasibility map with no
// persistence backing; Open attaches the badger-backed variant.
func NewFeasible() *Feasible {
	return &Feasible{mem: make(map[key]bool)}
}

// Lookup returns the cached reachability result for (b, p), if known.
func (f *Feasible) Lookup(b board.Board, p piece.Placement) (bool, bool) {
	k := keyOf(b, p)
	f.mu.RLock()
	v, ok := f.mem[k]
	f.mu.RUnlock()
	if ok {
		return v, true
	}
	if f.db == nil {
		return false, false
	}
	var found bool
	var result bool
	err := f.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(k.bytes())
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			result = len(val) > 0 && val[0] == 1
			return nil
		})
	})
	if err != nil || !found {
		return false, false
	}
	f.mu.Lock()
	f.mem[k] = result
	f.mu.Unlock()
	return result, true
}

// Store records the reachability result for (b, p), in memory and — if a
// badger handle is attached — on disk.
func (f *Feasible) Store(b board.Board, p piece.Placement, reachable bool) {
	k := keyOf(b, p)
	f.mu.Lock()
	f.mem[k] = reachable
	f.mu.Unlock()

	if f.db == nil {
		return
	}
	val := feasibleFalse
	if reachable {
		val = feasibleTrue
	}
	// Cache I/O failures degrade silently: treat the store
	// as best-effort and keep serving from memory regardless.
	_ = f.db.Update(func(txn *badger.Txn) error {
		return txn.Set(k.bytes(), val)
	})
}

// Len returns the number of entries currently held in memory.
func (f *Feasible) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.mem)
}
