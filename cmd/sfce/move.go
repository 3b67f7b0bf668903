package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sfce/sfce/internal/pattern"
	"github.com/sfce/sfce/internal/piece"
	"github.com/sfce/sfce/internal/placement"
	"github.com/sfce/sfce/internal/solve"
)

func formatPlacement(p piece.Placement) string {
	return fmt.Sprintf("(%s,%d,%d,%s)", p.Kind, p.X, p.Y, p.Rotation)
}

func formatSequence(seq placement.Sequence, out outputFlags) (string, error) {
	parts := make([]string, len(seq.Placements))
	for i, p := range seq.Placements {
		parts[i] = formatPlacement(p)
	}
	boardStr, err := renderBoard(seq.Final, out)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v -> %s", parts, boardStr), nil
}

func newMoveCmd() *cobra.Command {
	var bf boardFlags
	var hf handlingFlags
	var out outputFlags
	var clearsRange, continuousRange string
	var minimal, requireDoable bool

	cmd := &cobra.Command{
		Use:   "move <tetfu> <pattern>",
		Short: "Emit every placement sequence satisfying the clears filters",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := decodeTetfu(args[0], bf)
			if err != nil {
				return err
			}
			p, err := pattern.Parse(args[1])
			if err != nil {
				return fmt.Errorf("sfce: parsing pattern: %w", err)
			}
			clears, err := solve.ParseRange(clearsRange)
			if err != nil {
				return err
			}
			continuous := solve.Unbounded
			if continuousRange != "" {
				continuous, err = solve.ParseRange(continuousRange)
				if err != nil {
					return err
				}
			}
			handling, err := hf.resolve(cmd.Flags())
			if err != nil {
				return err
			}

			store := openCacheStore(out)
			defer store.Close()

			var results []placement.Sequence
			err = withStopwatch(out, "move", func() error {
				results, err = solve.Move(solve.MoveRequest{
					Board:         b,
					Pattern:       p,
					Clears:        clears,
					Continuous:    continuous,
					Minimal:       minimal,
					NoHold:        out.noHold,
					RequireDoable: requireDoable,
					Handling:      handling,
					Store:         store,
				})
				return err
			})
			if err != nil {
				return fmt.Errorf("sfce: move: %w", err)
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
	cmd.Flags().StringVar(&clearsRange, "clears", "0..", "total line-clears range")
	cmd.Flags().StringVar(&continuousRange, "continuous", "", "per-placement clear-delta range")
	cmd.Flags().BoolVar(&minimal, "minimal", false, "keep only the first sequence per multiset-of-pieces signature")
	cmd.Flags().BoolVar(&requireDoable, "require-doable", false, "reject sequences not reachable by the input search")
	return cmd
}
