package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sfce/sfce/internal/board"
	"github.com/sfce/sfce/internal/fumen"
)

func newFumenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fumen",
		Short: "Fumen codec round-trips (encode/decode/glue/optimize)",
	}
	cmd.AddCommand(
		newFumenEncodeCmd(),
		newFumenDecodeCmd(),
		newFumenGlueCmd(),
		newFumenOptimizeCmd(),
	)
	return cmd
}

func newFumenEncodeCmd() *cobra.Command {
	var bf boardFlags
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "encode <board>",
		Short: "Encode a ';'-separated sequence of board-grammar pages as a fumen string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			boards, err := board.ParsePages(args[0], bf.width, bf.height, bf.margin)
			if err != nil {
				return fmt.Errorf("sfce: parsing board: %w", err)
			}
			code, err := fumen.Encode(fumen.GridFromBoards(boards))
			if err != nil {
				return fmt.Errorf("sfce: encoding fumen: %w", err)
			}
			w, err := out.writer()
			if err != nil {
				return err
			}
			defer w.Close()
			fmt.Fprintln(w, code)
			return nil
		},
	}
	addBoardFlags(cmd, &bf)
	addOutputFlags(cmd, &out)
	return cmd
}

func newFumenDecodeCmd() *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "decode <fumen>",
		Short: "Decode a fumen string back into its board-grammar pages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := fumen.Decode(args[0])
			if err != nil {
				return fmt.Errorf("sfce: decoding fumen: %w", err)
			}
			w, err := out.writer()
			if err != nil {
				return err
			}
			defer w.Close()

			boards := grid.Boards()
			for i, b := range boards {
				if out.hideComments {
					b.Comment = ""
				}
				fmt.Fprint(w, b.String())
				if i < len(boards)-1 {
					fmt.Fprint(w, out.pageSeparator)
				}
			}
			fmt.Fprintln(w)
			return nil
		},
	}
	addOutputFlags(cmd, &out)
	return cmd
}

func newFumenGlueCmd() *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "glue <fumen...>",
		Short: "Concatenate the pages of several fumen codes into one",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := fumen.Glue(args)
			if err != nil {
				return fmt.Errorf("sfce: gluing fumen: %w", err)
			}
			w, err := out.writer()
			if err != nil {
				return err
			}
			defer w.Close()
			fmt.Fprintln(w, code)
			return nil
		},
	}
	addOutputFlags(cmd, &out)
	return cmd
}

func newFumenOptimizeCmd() *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "optimize <fumen>",
		Short: "Re-encode a fumen choosing the shortest legal encoding for each page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := fumen.Optimize(args[0])
			if err != nil {
				return fmt.Errorf("sfce: optimizing fumen: %w", err)
			}
			w, err := out.writer()
			if err != nil {
				return err
			}
			defer w.Close()
			fmt.Fprintln(w, code)
			return nil
		},
	}
	addOutputFlags(cmd, &out)
	return cmd
}
