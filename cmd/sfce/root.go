// Command sfce is a placement-reasoning toolkit for Tetris-like stacking
// games: pattern expansion, placement-sequence search, hold-variant
// enumeration, finesse (shortest key sequence) search, and a fumen-style
// board codec, wired together as cobra subcommands.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sfce/sfce/internal/cache"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sfce",
		Short: "Placement-reasoning toolkit for Tetris-like stacking games",
	}

	root.AddCommand(
		newMoveCmd(),
		newPercentCmd(),
		newPatternCmd(),
		newFumenCmd(),
		newFinesseCmd(),
		newInputsCmd(),
		newPossibleCmd(),
		newCongruentCmd(),
		newSendCmd(),
	)
	return root
}

// openCacheStore honors the --cache toggle: when enabled it opens the
// on-disk badger-backed store under the current directory, falling back
// to an in-memory-only store on I/O failure (cache I/O problems degrade
// silently); when disabled it returns an in-memory store that is simply
// never persisted.
func openCacheStore(f outputFlags) *cache.Store {
	if !f.cache {
		return cache.NewStore()
	}
	store, err := cache.Open(".")
	if err != nil {
		log.Printf("sfce: cache unavailable, continuing without persistence: %v", err)
		return cache.NewStore()
	}
	return store
}

// withStopwatch runs fn and, when enabled, logs the elapsed wall-clock
// time afterward.
func withStopwatch(f outputFlags, label string, fn func() error) error {
	start := time.Now()
	err := fn()
	if f.stopwatch {
		log.Printf("sfce: %s took %s", label, time.Since(start))
	}
	return err
}
