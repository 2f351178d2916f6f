package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newClausesCmd(logger func() *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "clauses FILE...",
		Short: "Print the clauses and invariants of a program",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, prog, err := loadProgram(logger(), args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "clauses:")
			for _, c := range prog.Clauses() {
				fmt.Fprintf(out, "\t%s\n", c)
			}
			fmt.Fprintln(out, "invariants:")
			for _, inv := range prog.Invariants() {
				fmt.Fprintf(out, "\t%s\n", inv)
			}
			return nil
		},
	}
}
