package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sfce/sfce/internal/pattern"
)

func newPatternCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pattern",
		Short: "Pattern expansion and hold-variant enumeration",
	}
	cmd.AddCommand(newPatternExpandCmd(), newPatternHoldCmd())
	return cmd
}

func newPatternExpandCmd() *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "expand <pattern>",
		Short: "Enumerate all queues a pattern expands to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pattern.Parse(args[0])
			if err != nil {
				return fmt.Errorf("sfce: parsing pattern: %w", err)
			}

			w, err := out.writer()
			if err != nil {
				return err
			}
			defer w.Close()

			count := 0
			pattern.Expand(p, func(q pattern.Queue) {
				count++
				fmt.Fprintln(w, queueString(q))
			})
			fmt.Fprintf(w, "count: %d\n", count)
			return nil
		},
	}
	addOutputFlags(cmd, &out)
	return cmd
}

func newPatternHoldCmd() *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "hold <pattern>",
		Short: "Enumerate hold-variants of each queue a pattern expands to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pattern.Parse(args[0])
			if err != nil {
				return fmt.Errorf("sfce: parsing pattern: %w", err)
			}

			w, err := out.writer()
			if err != nil {
				return err
			}
			defer w.Close()

			pattern.Expand(p, func(base pattern.Queue) {
				fmt.Fprintf(w, "%s:\n", queueString(base))
				for _, v := range pattern.HoldQueues(base) {
					fmt.Fprintf(w, "  %s\n", queueString(v))
				}
			})
			return nil
		},
	}
	addOutputFlags(cmd, &out)
	return cmd
}

func queueString(q pattern.Queue) string {
	buf := make([]byte, len(q))
	for i, k := range q {
		buf[i] = k.String()[0]
	}
	return string(buf)
}
