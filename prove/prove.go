// Package prove implements a solver for trait goals.
//
// Prove searches for the ways a goal can be proved
// from a set of assumptions and the clauses of a program.
// Each way is reported as Constraints:
// bindings of the existential variables of the goal
// under which it holds.
//
// Search is depth-first over every applicable rule,
// and every rule contributes all of its solutions.
// Search is bounded: branches that nest too many atomic goals,
// or that reach too large a goal, are cut off.
package prove

import (
	"fmt"
	"strings"

	"github.com/eaburns/formality/grammar"
)

type prover struct {
	db                  Database
	maxDepth            int
	maxSize             int
	ambiguousOnOverflow bool

	depth int
	// inProgress is the set of goals
	// currently being proved on this branch.
	inProgress map[string]bool

	tr tracer
}

// Prove returns the solutions to goal under assumptions.
// All free variables of the assumptions and goal must be in env;
// Prove panics if they are not.
//
// An empty result means the goal is not provable.
// A single, known-true result means it is provable.
// Otherwise, it holds only under conditions or ambiguously.
func Prove(db Database, env *Env, assumptions grammar.Wcs, goal grammar.Wc, opts ...Opt) Set {
	if !env.Encloses(assumptions, goal) {
		panic(fmt.Sprintf("%s does not enclose %s => %s", env, assumptions, goal))
	}
	p := &prover{
		db:         db,
		maxDepth:   DefaultMaxDepth,
		maxSize:    DefaultMaxSize,
		inProgress: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.tr.init()
	tr := p.trItem("prove %s => %s in %s", assumptions, goal, env)
	defer tr.done()
	s := p.proveWc(env, assumptions, goal)
	for _, c := range s {
		c.assertValid()
	}
	return tr.result(s)
}

// enter marks the start of an atomic proof step.
// If the step exceeds the search bounds or repeats a step in progress,
// enter returns ok=false and the result for the cut-off step.
// Otherwise leave must be called when the step is complete.
func (p *prover) enter(env *Env, key string, size int) (cut Set, ok bool) {
	switch {
	case p.inProgress[key]:
		return nil, false
	case p.depth >= p.maxDepth || size > p.maxSize:
		if p.ambiguousOnOverflow {
			return Set{None(env).Ambiguous()}, false
		}
		return nil, false
	}
	p.depth++
	p.inProgress[key] = true
	return nil, true
}

func (p *prover) leave(key string) {
	p.depth--
	delete(p.inProgress, key)
}

func goalKey(assumptions grammar.Wcs, goal grammar.Term) string {
	var s strings.Builder
	s.WriteString(goal.String())
	s.WriteString(" | ")
	s.WriteString(assumptions.String())
	return s.String()
}

// proveAfter proves goal in the context of c,
// returning the solutions composed with c.
func (p *prover) proveAfter(c *Constraints, assumptions grammar.Wcs, goal grammar.Wc) Set {
	s := p.proveWc(c.env, c.subst.ApplyWcs(assumptions), c.subst.ApplyWc(goal))
	var b setBuilder
	for _, c2 := range s {
		b.add(c.Seq(c2))
	}
	return b.set()
}

// proveAfterAll is proveAfter for each solution in cs.
func (p *prover) proveAfterAll(cs Set, assumptions grammar.Wcs, goal grammar.Wc) Set {
	var b setBuilder
	for _, c := range cs {
		b.add(p.proveAfter(c, assumptions, goal)...)
	}
	return b.set()
}

func popSubst(cs Set, vs []grammar.Var) Set {
	var b setBuilder
	for _, c := range cs {
		b.add(c.popSubst(vs))
	}
	return b.set()
}
