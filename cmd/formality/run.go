package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"

	"github.com/eaburns/formality/config"
	"github.com/eaburns/formality/prove"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newRunCmd(logger func() *slog.Logger) *cobra.Command {
	var l limits
	var jobs int
	cmd := &cobra.Command{
		Use:   "run SUITE...",
		Short: "Run suite files",
		Long: `Run proves the goals of each suite file
and reports whether each matches its expected outcome.
Limit flags override the limits of the suite.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobs < 1 {
				return fmt.Errorf("--jobs must be at least 1, got %d", jobs)
			}
			if l.tracing() {
				// Traces of concurrent goals would interleave.
				jobs = 1
			}
			log := logger()
			var failed int
			for _, path := range args {
				n, err := runSuite(cmd.Context(), log, cmd.OutOrStdout(), path, jobs, l.opts(cmd.ErrOrStderr()))
				if err != nil {
					return err
				}
				failed += n
			}
			if failed > 0 {
				return fmt.Errorf("%d goals failed", failed)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of goals to prove concurrently")
	l.addFlags(cmd)
	return cmd
}

// runSuite runs a suite file, prints a line for each goal,
// and returns the number of goals that failed.
func runSuite(ctx context.Context, log *slog.Logger, out io.Writer, path string, jobs int, opts []prove.Opt) (int, error) {
	s, err := config.Load(path)
	if err != nil {
		return 0, err
	}
	c, err := s.Compile()
	if err != nil {
		return 0, err
	}
	log.Debug("suite loaded", slog.String("path", path), slog.Int("goals", len(s.Goals)))

	results := make([]error, len(s.Goals))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := range s.Goals {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.Goals[i].Check(c.Solve(i, opts...))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	col := color(out)
	var failed int
	for i, goal := range s.Goals {
		if err := results[i]; err != nil {
			failed++
			fmt.Fprintf(out, "%s %s\n\t%s\n", col(red, "FAIL"), goal.Name,
				strings.ReplaceAll(err.Error(), "\n", "\n\t"))
			continue
		}
		fmt.Fprintf(out, "%s %s\n", col(green, "PASS"), goal.Name)
	}
	log.Info("suite done",
		slog.String("path", path),
		slog.Int("passed", len(s.Goals)-failed),
		slog.Int("failed", failed))
	return failed, nil
}
