package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sfce/sfce/internal/pattern"
	"github.com/sfce/sfce/internal/solve"
)

func newPercentCmd() *cobra.Command {
	var bf boardFlags
	var hf handlingFlags
	var out outputFlags
	var clearsRange string

	cmd := &cobra.Command{
		Use:   "percent <tetfu> <pattern>",
		Short: "Report the fraction of queues with >=1 satisfying sequence",
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
			handling, err := hf.resolve(cmd.Flags())
			if err != nil {
				return err
			}

			store := openCacheStore(out)
			defer store.Close()

			var result solve.PercentResult
			err = withStopwatch(out, "percent", func() error {
				result, err = solve.Percent(solve.PercentRequest{
					Board:      b,
					Pattern:    p,
					Clears:     clears,
					Continuous: solve.Unbounded,
					NoHold:     out.noHold,
					Handling:   handling,
					Store:      store,
				})
				return err
			})
			if err != nil {
				return fmt.Errorf("sfce: percent: %w", err)
			}

			w, err := out.writer()
			if err != nil {
				return err
			}
			defer w.Close()

			fmt.Fprintf(w, "%d/%d succeeded (%.1f%%)\n", result.Success, result.Total, result.Ratio())
			for _, q := range result.Failing {
				fmt.Fprintf(w, "failing: %s\n", queueString(q))
			}
			return nil
		},
	}

	addBoardFlags(cmd, &bf)
	addHandlingFlags(cmd, &hf)
	addOutputFlags(cmd, &out)
	cmd.Flags().StringVar(&clearsRange, "clears", "0..", "total line-clears range")
	return cmd
}
