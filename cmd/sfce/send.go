package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sfce/sfce/internal/solve"
)

func newSendCmd() *cobra.Command {
	var bf boardFlags
	var hf handlingFlags
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "send <tetfu> <piece> <key...>",
		Short: "Step-by-step visualization of applying a key list to a spawning piece",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := decodeTetfu(args[0], bf)
			if err != nil {
				return err
			}
			k, err := parseKind(args[1])
			if err != nil {
				return err
			}
			keys, err := parseKeyList(args[2:])
			if err != nil {
				return err
			}
			handling, err := hf.resolve(cmd.Flags())
			if err != nil {
				return err
			}

			w, err := out.writer()
			if err != nil {
				return err
			}
			defer w.Close()

			frames := solve.Send(solve.SendRequest{Board: b, Kind: k, Keys: keys, Handling: handling})
			for i, f := range frames {
				boardStr, err := renderBoard(b.Place(f.State.Placement()), out)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%d: %s -> %s\n%s\n", i, f.Key, formatPlacement(f.State.Placement()), boardStr)
			}
			return nil
		},
	}

	addBoardFlags(cmd, &bf)
	addHandlingFlags(cmd, &hf)
	addOutputFlags(cmd, &out)
	return cmd
}
