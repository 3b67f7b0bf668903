package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sfce/sfce/internal/solve"
)

func newFinesseCmd() *cobra.Command {
	var bf boardFlags
	var hf handlingFlags
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "finesse <tetfu>",
		Short: "Identify the placement that locked a colored tetromino and find the shortest reproducing key sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := decodeTetfu(args[0], bf)
			if err != nil {
				return err
			}
			handling, err := hf.resolve(cmd.Flags())
			if err != nil {
				return err
			}

			store := openCacheStore(out)
			defer store.Close()

			var result solve.FinesseResult
			err = withStopwatch(out, "finesse", func() error {
				result, err = solve.Finesse(solve.FinesseRequest{Board: b, Handling: handling, Store: store})
				return err
			})
			if err != nil {
				return fmt.Errorf("sfce: finesse: %w", err)
			}
			if !result.Reachable {
				return fmt.Errorf("sfce: finesse: no finesse found")
			}

			w, err := out.writer()
			if err != nil {
				return err
			}
			defer w.Close()

			fmt.Fprintf(w, "placement: %s\n", formatPlacement(result.Placement))
			fmt.Fprintf(w, "keys: %s\n", formatKeys(result.Keys))
			return nil
		},
	}

	addBoardFlags(cmd, &bf)
	addHandlingFlags(cmd, &hf)
	addOutputFlags(cmd, &out)
	return cmd
}
