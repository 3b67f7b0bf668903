package cache

import (
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger/v4"
	"github.com/sfce/sfce/internal/input"
)

// cacheDirName is the directory the memoization maps persist under
// between runs. Each map gets its own badger database beneath it: one
// badger.DB per logical store rather than literal single-file
// serialization.
const cacheDirName = ".caches"

// Store bundles the feasibility and finesse memoization maps
// and their badger-backed persistence, one badger.DB wrapped per map.
type Store struct {
	Feasible *Feasible
	Finesse  *Finesse

	feasibleDB *badger.DB
	finesseDB  *badger.DB
}

// NewStore returns an in-memory-only Store with no persistence; useful
// when the cache is disabled via the CLI's cache toggle.
func NewStore() *Store {
	return &Store{Feasible: NewFeasible(), Finesse: NewFinesse()}
}

// Open opens (creating if necessary) the badger-backed stores beneath
// dir/.caches. Failures here are not fatal to the
// caller: Open returns the error, but the caller may fall back to
// NewStore and proceed with an unpersisted, in-memory-only cache.
func Open(dir string) (*Store, error) {
	base := filepath.Join(dir, cacheDirName)
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}

	feasibleOpts := badger.DefaultOptions(filepath.Join(base, "feasible"))
	feasibleOpts.Logger = nil
	feasibleDB, err := badger.Open(feasibleOpts)
	if err != nil {
		return nil, err
	}

	finesseOpts := badger.DefaultOptions(filepath.Join(base, "finesse"))
	finesseOpts.Logger = nil
	finesseDB, err := badger.Open(finesseOpts)
	if err != nil {
		_ = feasibleDB.Close()
		return nil, err
	}

	return &Store{
		Feasible:   &Feasible{mem: make(map[key]bool), db: feasibleDB},
		Finesse:    &Finesse{mem: make(map[key][]input.Key), db: finesseDB},
		feasibleDB: feasibleDB,
		finesseDB:  finesseDB,
	}, nil
}

// Close flushes and closes any attached badger handles. Safe to call on
// a Store returned by NewStore (a no-op in that case).
func (s *Store) Close() error {
	var err error
	if s.feasibleDB != nil {
		if e := s.feasibleDB.Close(); e != nil {
			err = e
		}
	}
	if s.finesseDB != nil {
		if e := s.finesseDB.Close(); e != nil {
			err = e
		}
	}
	return err
}
