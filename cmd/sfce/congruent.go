package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sfce/sfce/internal/pattern"
	"github.com/sfce/sfce/internal/placement"
	"github.com/sfce/sfce/internal/solve"
)

func newCongruentCmd() *cobra.Command {
	var bf boardFlags
	var hf handlingFlags
	var out outputFlags
	var minimal, requireDoable bool

	cmd := &cobra.Command{
		Use:   "congruent <tetfu> <pattern> <color>",
		Short: "Placements confined to a template color's cells",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := decodeTetfu(args[0], bf)
			if err != nil {
				return err
			}
			p, err := pattern.Parse(args[1])
			if err != nil {
				return fmt.Errorf("sfce: parsing pattern: %w", err)
			}
			k, err := parseKind(args[2])
			if err != nil {
				return err
			}
			handling, err := hf.resolve(cmd.Flags())
			if err != nil {
				return err
			}

			store := openCacheStore(out)
			defer store.Close()

			var results []placement.Sequence
			err = withStopwatch(out, "congruent", func() error {
				results, err = solve.Congruent(solve.CongruentRequest{
					Board:         b,
					Color:         k,
					Pattern:       p,
					Minimal:       minimal,
					NoHold:        out.noHold,
					RequireDoable: requireDoable,
					Handling:      handling,
					Store:         store,
				})
				return err
			})
			if err != nil {
				return fmt.Errorf("sfce: congruent: %w", err)
			}

			w, err := out.writer()
			if err != nil {
				return err
			}
			defer w.Close()

			if len(results) == 0 {
				fmt.Fprintln(w, "no satisfying sequence found")
				return nil
			}
			for _, seq := range results {
				line, err := formatSequence(seq, out)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, line)
			}
			fmt.Fprintf(w, "count: %d\n", len(results))
			return nil
		},
	}

	addBoardFlags(cmd, &bf)
	addHandlingFlags(cmd, &hf)
	addOutputFlags(cmd, &out)
	cmd.Flags().BoolVar(&minimal, "minimal", false, "keep only the first sequence per multiset-of-pieces signature")
	cmd.Flags().BoolVar(&requireDoable, "require-doable", false, "reject sequences not reachable by the input search")
	return cmd
}
