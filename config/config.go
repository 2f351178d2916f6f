// Package config reads suite files.
//
// A suite is a program and a list of goals to prove against it,
// each with its expected outcome:
//
//	program: |
//	  crate core {
//	    trait Debug {}
//	    impl Debug for u32 {}
//	  }
//	max_depth: 16
//	goals:
//	  - name: u32 is Debug
//	    query: "{} => {Debug(u32)}"
//	    expect: proven
//	  - name: bool is not Debug
//	    query: "{} => {Debug(bool)}"
//	    expect: unprovable
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/eaburns/formality/decls"
	"github.com/eaburns/formality/parser"
	"github.com/eaburns/formality/prove"
	"gopkg.in/yaml.v3"
)

// Outcome is the expected result of proving a goal.
type Outcome string

const (
	// Proven is a single solution that is known to hold.
	Proven Outcome = "proven"
	// Ambiguous is any other non-empty set of solutions.
	Ambiguous Outcome = "ambiguous"
	// Unprovable is no solutions.
	Unprovable Outcome = "unprovable"
)

// OutcomeOf returns the Outcome of a set of solutions.
func OutcomeOf(s prove.Set) Outcome {
	switch {
	case s.Proven():
		return Proven
	case s.Ambiguous():
		return Ambiguous
	default:
		return Unprovable
	}
}

// Suite is a suite file.
type Suite struct {
	// Program is the program source.
	Program string `yaml:"program,omitempty"`

	// Files are program source files,
	// relative to the directory of the suite file.
	// They are parsed after Program.
	Files []string `yaml:"files,omitempty"`

	// MaxDepth bounds the depth of proofs.
	// Defaults to prove.DefaultMaxDepth.
	MaxDepth int `yaml:"max_depth,omitempty"`

	// MaxSize bounds the size of goals.
	// Defaults to prove.DefaultMaxSize.
	MaxSize int `yaml:"max_size,omitempty"`

	// AmbiguousOnOverflow makes exceeding a bound
	// an ambiguous solution instead of a failure.
	AmbiguousOnOverflow bool `yaml:"ambiguous_on_overflow,omitempty"`

	Goals []Goal `yaml:"goals"`

	// Path is the path of the suite file.
	Path string `yaml:"-"`
}

// Goal is a query and its expected outcome.
type Goal struct {
	Name   string  `yaml:"name"`
	Query  string  `yaml:"query"`
	Expect Outcome `yaml:"expect"`

	// Solutions, if set, are the expected solutions
	// in their canonical printed form, in sorted order.
	Solutions []string `yaml:"solutions,omitempty"`
}

// Load reads and parses a suite file.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses suite file content.
// The path is used for error messages
// and to resolve the program files.
func Parse(data []byte, path string) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	s.Path = path
	if err := s.validate(); err != nil {
		return nil, err
	}
	s.setDefaults()
	return &s, nil
}

func (s *Suite) validate() error {
	if s.Program == "" && len(s.Files) == 0 {
		return fmt.Errorf("%s: no program or files", s.Path)
	}
	if s.MaxDepth < 0 {
		return fmt.Errorf("%s: max_depth must not be negative", s.Path)
	}
	if s.MaxSize < 0 {
		return fmt.Errorf("%s: max_size must not be negative", s.Path)
	}
	if len(s.Goals) == 0 {
		return fmt.Errorf("%s: no goals", s.Path)
	}
	seen := make(map[string]int)
	for i, g := range s.Goals {
		switch {
		case g.Name == "":
			return fmt.Errorf("%s: goals[%d]: name is required", s.Path, i)
		case g.Query == "":
			return fmt.Errorf("%s: goals[%d] (%s): query is required", s.Path, i, g.Name)
		}
		if j, ok := seen[g.Name]; ok {
			return fmt.Errorf("%s: goals[%d]: name %q is also goals[%d]", s.Path, i, g.Name, j)
		}
		seen[g.Name] = i
		switch g.Expect {
		case "", Proven, Ambiguous, Unprovable:
		default:
			return fmt.Errorf("%s: goals[%d] (%s): bad expect %q: want proven, ambiguous, or unprovable",
				s.Path, i, g.Name, g.Expect)
		}
		if g.Expect == Unprovable && len(g.Solutions) > 0 {
			return fmt.Errorf("%s: goals[%d] (%s): unprovable goals have no solutions", s.Path, i, g.Name)
		}
	}
	return nil
}

func (s *Suite) setDefaults() {
	if s.MaxDepth == 0 {
		s.MaxDepth = prove.DefaultMaxDepth
	}
	if s.MaxSize == 0 {
		s.MaxSize = prove.DefaultMaxSize
	}
	for i := range s.Goals {
		if s.Goals[i].Expect == "" {
			s.Goals[i].Expect = Proven
		}
	}
}

// Opts returns the prover options of the suite.
func (s *Suite) Opts() []prove.Opt {
	opts := []prove.Opt{prove.MaxDepth(s.MaxDepth), prove.MaxSize(s.MaxSize)}
	if s.AmbiguousOnOverflow {
		opts = append(opts, prove.AmbiguousOnOverflow())
	}
	return opts
}

// Compiled is a suite with its program checked and its queries lowered.
type Compiled struct {
	Suite   *Suite
	Program *decls.Program
	// Queries are the lowered queries, one per goal.
	Queries []*decls.Query
}

// Compile parses and checks the program and queries of the suite.
func (s *Suite) Compile() (*Compiled, error) {
	p := parser.New()
	if s.Program != "" {
		if err := p.Parse(s.Path+":program", strings.NewReader(s.Program)); err != nil {
			return nil, err
		}
	}
	dir := filepath.Dir(s.Path)
	for _, f := range s.Files {
		if !filepath.IsAbs(f) {
			f = filepath.Join(dir, f)
		}
		if err := p.ParseFile(f); err != nil {
			return nil, err
		}
	}
	prog, errs := decls.Check(p)
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	c := &Compiled{Suite: s, Program: prog}
	for _, g := range s.Goals {
		pq, err := p.ParseQuery(s.Path+":"+g.Name, strings.NewReader(g.Query))
		if err != nil {
			return nil, err
		}
		q, errs := prog.Query(pq)
		if len(errs) > 0 {
			return nil, errors.Join(errs...)
		}
		c.Queries = append(c.Queries, q)
	}
	return c, nil
}

// Solve proves the query of the ith goal.
// It is safe to call concurrently.
func (c *Compiled) Solve(i int, opts ...prove.Opt) prove.Set {
	return c.Program.Solve(c.Queries[i], append(c.Suite.Opts(), opts...)...)
}

// Check returns an error if the solutions do not match the goal's expectations.
func (g *Goal) Check(s prove.Set) error {
	if got := OutcomeOf(s); got != g.Expect {
		return fmt.Errorf("%s: got %s, want %s", g.Name, got, g.Expect)
	}
	if len(g.Solutions) == 0 {
		return nil
	}
	got := make([]string, len(s))
	for i, c := range s {
		got[i] = c.String()
	}
	if strings.Join(got, "\n") != strings.Join(g.Solutions, "\n") {
		return fmt.Errorf("%s: got solutions\n%s\nwant\n%s",
			g.Name, strings.Join(got, "\n"), strings.Join(g.Solutions, "\n"))
	}
	return nil
}
