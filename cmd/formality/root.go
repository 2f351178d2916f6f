package main

import (
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/eaburns/formality/decls"
	"github.com/eaburns/formality/parser"
	"github.com/eaburns/formality/prove"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:          "formality",
		Short:        "Prove trait goals",
		Long:         "Formality decides whether trait goals hold for a program of traits, structs, and impls.",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug messages")
	// -trace.depth traces every proof to standard output.
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	logger := func() *slog.Logger {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	}
	cmd.AddCommand(
		newProveCmd(logger),
		newRunCmd(logger),
		newClausesCmd(logger),
		newFmtCmd(logger),
		newParseCmd(),
	)
	return cmd
}

// limits are the prover limit flags shared by commands.
type limits struct {
	maxDepth            int
	maxSize             int
	ambiguousOnOverflow bool
	trace               int
}

func (l *limits) addFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&l.maxDepth, "max-depth", 0, "maximum proof depth (0 = default)")
	cmd.Flags().IntVar(&l.maxSize, "max-size", 0, "maximum goal size (0 = default)")
	cmd.Flags().BoolVar(&l.ambiguousOnOverflow, "ambiguous-on-overflow", false, "treat exceeding a limit as ambiguous instead of failing")
	cmd.Flags().IntVar(&l.trace, "trace", 0, "trace proofs to standard error up to this depth (-1 = infinite)")
}

// tracing returns whether proofs are traced,
// either by --trace or by the -trace.depth Go flag.
func (l *limits) tracing() bool {
	if l.trace != 0 {
		return true
	}
	f := flag.Lookup("trace.depth")
	return f != nil && f.Value.String() != "0"
}

func (l *limits) opts(trace io.Writer) []prove.Opt {
	var opts []prove.Opt
	if l.maxDepth > 0 {
		opts = append(opts, prove.MaxDepth(l.maxDepth))
	}
	if l.maxSize > 0 {
		opts = append(opts, prove.MaxSize(l.maxSize))
	}
	if l.ambiguousOnOverflow {
		opts = append(opts, prove.AmbiguousOnOverflow())
	}
	if l.trace != 0 {
		opts = append(opts, prove.Trace(trace, l.trace))
	}
	return opts
}

func loadProgram(log *slog.Logger, paths []string) (*parser.Parser, *decls.Program, error) {
	p := parser.New()
	for _, path := range paths {
		if err := p.ParseFile(path); err != nil {
			return nil, nil, err
		}
	}
	prog, errs := decls.Check(p)
	if len(errs) > 0 {
		return nil, nil, errors.Join(errs...)
	}
	log.Debug("program loaded",
		slog.Int("files", len(paths)),
		slog.Int("clauses", len(prog.Clauses())),
		slog.Int("invariants", len(prog.Invariants())))
	return p, prog, nil
}

const (
	green = "\x1b[32m"
	red   = "\x1b[31m"
	reset = "\x1b[0m"
)

// color returns a function that wraps text in an ANSI color
// if w is a terminal.
func color(w io.Writer) func(code, s string) string {
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return func(_, s string) string { return s }
	}
	return func(code, s string) string { return code + s + reset }
}
