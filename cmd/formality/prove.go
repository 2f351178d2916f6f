package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/eaburns/formality/config"
	"github.com/spf13/cobra"
)

func newProveCmd(logger func() *slog.Logger) *cobra.Command {
	var l limits
	var query string
	cmd := &cobra.Command{
		Use:   "prove -q QUERY FILE...",
		Short: "Prove a query against a program",
		Long: `Prove parses and checks the program files, proves the query,
and prints the outcome followed by each solution.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()
			p, prog, err := loadProgram(log, args)
			if err != nil {
				return err
			}
			pq, err := p.ParseQuery("query", strings.NewReader(query))
			if err != nil {
				return err
			}
			q, errs := prog.Query(pq)
			if len(errs) > 0 {
				return errors.Join(errs...)
			}
			log.Debug("proving", slog.String("query", q.String()))
			s := prog.Solve(q, l.opts(cmd.ErrOrStderr())...)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, config.OutcomeOf(s))
			for _, c := range s {
				fmt.Fprintln(out, c)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "the query to prove")
	cmd.MarkFlagRequired("query")
	l.addFlags(cmd)
	return cmd
}
