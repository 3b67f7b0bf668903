package cache

import (
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/sfce/sfce/internal/board"
	"github.com/sfce/sfce/internal/input"
	"github.com/sfce/sfce/internal/piece"
)

// Finesse is the `finesse : (Placement, Bits) -> KeySeq` map, caching
// the shortest key sequence found by the input search.
type Finesse struct {
	mu  sync.RWMutex
	mem map[key][]input.Key
	db  *badger.DB
}

// NewFinesse returns an empty in-memory finesse map with no persistence
// backing; Open attaches the badger-backed variant.
func NewFinesse() *Finesse {
	return &Finesse{mem: make(map[key][]input.Key)}
}

// Lookup returns the cached shortest key sequence for (b, p), if known.
func (f *Finesse) Lookup(b board.Board, p piece.Placement) ([]input.Key, bool) {
	k := keyOf(b, p)
	f.mu.RLock()
	v, ok := f.mem[k]
	f.mu.RUnlock()
	if ok {
		return v, true
	}
	if f.db == nil {
		return nil, false
	}
	var seq []input.Key
	var found bool
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
			seq = decodeKeys(val)
			return nil
		})
	})
	if err != nil || !found {
		return nil, false
	}
	f.mu.Lock()
	f.mem[k] = seq
	f.mu.Unlock()
	return seq, true
}

// Store records the shortest key sequence for (b, p).
func (f *Finesse) Store(b board.Board, p piece.Placement, seq []input.Key) {
	k := keyOf(b, p)
	f.mu.Lock()
	f.mem[k] = seq
	f.mu.Unlock()

	if f.db == nil {
		return
	}
	_ = f.db.Update(func(txn *badger.Txn) error {
		return txn.Set(k.bytes(), encodeKeys(seq))
	})
}

// Len returns the number of entries currently held in memory.
func (f *Finesse) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.mem)
}

func encodeKeys(seq []input.Key) []byte {
	buf := make([]byte, len(seq))
	for i, k := range seq {
		buf[i] = byte(k)
	}
	return buf
}

func decodeKeys(buf []byte) []input.Key {
	seq := make([]input.Key, len(buf))
	for i, b := range buf {
		seq[i] = input.Key(b)
	}
	return seq
}
