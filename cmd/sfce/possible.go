package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sfce/sfce/internal/fumen"
	"github.com/sfce/sfce/internal/solve"
)

func newPossibleCmd() *cobra.Command {
	var bf boardFlags
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "possible <tetfu> <piece> [rotation]",
		Short: "Visualize the landing mask for a piece, one page per rotation if none is given",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := decodeTetfu(args[0], bf)
			if err != nil {
				return err
			}
			k, err := parseKind(args[1])
			if err != nil {
				return err
			}

			req := solve.PossibleRequest{Board: b, Kind: k}
			if len(args) == 3 {
				rot, err := parseRotation(args[2])
				if err != nil {
					return err
				}
				req.Rotation = rot
			} else {
				req.AllRots = true
			}

			var grid fumen.Grid
			err = withStopwatch(out, "possible", func() error {
				grid = solve.Render(req, solve.Possible(req))
				return nil
			})
			if err != nil {
				return err
			}

			w, err := out.writer()
			if err != nil {
				return err
			}
			defer w.Close()

			for i, page := range grid {
				fmt.Fprintf(w, "%s:\n", page.Comment)
				for row := 0; row < page.H; row++ {
					line := make([]byte, page.W)
					for x := 0; x < page.W; x++ {
						line[x] = page.Field[row*page.W+x].KindOf().String()[0]
					}
					fmt.Fprintln(w, string(line))
				}
				if i < len(grid)-1 {
					fmt.Fprint(w, out.pageSeparator)
				}
			}
			return nil
		},
	}

	addBoardFlags(cmd, &bf)
	addOutputFlags(cmd, &out)
	return cmd
}
