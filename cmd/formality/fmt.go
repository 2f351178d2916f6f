package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/eaburns/formality/parser"
	"github.com/spf13/cobra"
)

func newFmtCmd(logger func() *slog.Logger) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "fmt FILE...",
		Short: "Format program files",
		Long: `Fmt prints program files in canonical form.
Comments are not preserved,
so -w refuses to rewrite a file that has comments.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()
			for _, path := range args {
				p := parser.New()
				if err := p.ParseFile(path); err != nil {
					return err
				}
				if cs := p.Files[0].Comments; write && len(cs) > 0 {
					return fmt.Errorf("%s: not rewriting %s, its comments would be dropped",
						p.LocFiles().Location(cs[0]), path)
				}
				var b bytes.Buffer
				if err := parser.Format(&b, p.Crates()); err != nil {
					return err
				}
				if !write {
					if _, err := cmd.OutOrStdout().Write(b.Bytes()); err != nil {
						return err
					}
					continue
				}
				if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", path, err)
				}
				log.Debug("formatted", slog.String("path", path))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the files in place")
	return cmd
}

func newParseCmd() *cobra.Command {
	var (
		query string
		locs  bool
	)
	cmd := &cobra.Command{
		Use:   "parse [FILE...]",
		Short: "Print the syntax tree of program files or a query",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && query == "" {
				return fmt.Errorf("a file or --query is required")
			}
			p := parser.New()
			for _, path := range args {
				if err := p.ParseFile(path); err != nil {
					return err
				}
			}
			if query != "" {
				if _, err := p.ParseQuery("query", strings.NewReader(query)); err != nil {
					return err
				}
			}
			var opts []parser.PrintOpt
			if locs {
				opts = append(opts, parser.PrintLocs(p.LocFiles()))
			}
			for _, f := range p.Files {
				if err := f.Print(cmd.OutOrStdout(), opts...); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "a query to parse")
	cmd.Flags().BoolVar(&locs, "locs", false, "print source locations")
	return cmd
}
