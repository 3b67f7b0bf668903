package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sfce/sfce/internal/piece"
	"github.com/sfce/sfce/internal/solve"
)

func newInputsCmd() *cobra.Command {
	var bf boardFlags
	var hf handlingFlags
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "inputs <tetfu> <piece> <x> <y> <rotation>",
		Short: "Shortest key sequence reaching an explicit target placement",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := decodeTetfu(args[0], bf)
			if err != nil {
				return err
			}
			k, err := parseKind(args[1])
			if err != nil {
				return err
			}
			x, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("sfce: invalid x %q: %w", args[2], err)
			}
			y, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("sfce: invalid y %q: %w", args[3], err)
			}
			rot, err := parseRotation(args[4])
			if err != nil {
				return err
			}
			handling, err := hf.resolve(cmd.Flags())
			if err != nil {
				return err
			}

			target := piece.Placement{Kind: k, X: x, Y: y, Rotation: rot}

			var result struct {
				Reachable bool
				Keys      string
			}
			err = withStopwatch(out, "inputs", func() error {
				res := solve.Inputs(solve.InputsRequest{Board: b, Target: target, Handling: handling})
				result.Reachable = res.Reachable
				result.Keys = formatKeys(res.Keys)
				return nil
			})
			if err != nil {
				return err
			}
			if !result.Reachable {
				return fmt.Errorf("sfce: inputs: no finesse found")
			}

			w, err := out.writer()
			if err != nil {
				return err
			}
			defer w.Close()
			fmt.Fprintln(w, result.Keys)
			return nil
		},
	}

	addBoardFlags(cmd, &bf)
	addHandlingFlags(cmd, &hf)
	addOutputFlags(cmd, &out)
	return cmd
}
