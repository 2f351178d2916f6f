package prove

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/eaburns/formality/grammar"
)

// Constraints is one solution to a goal:
// the goal holds if the existential variables
// are bound according to the substitution.
//
// Constraints are never modified once created.
type Constraints struct {
	env       *Env
	knownTrue bool
	subst     grammar.Subst
}

// A Binding binds an existential variable to a value.
type Binding struct {
	Var   grammar.Var
	Value grammar.Parameter
}

func (b Binding) String() string { return b.Var.String() + " => " + b.Value.String() }

// None returns the trivial solution: no bindings, known true.
func None(env *Env) *Constraints {
	return &Constraints{env: env, knownTrue: true, subst: grammar.Subst{}}
}

// From returns a known-true solution with the given bindings.
// It panics if the bindings are invalid in env.
func From(env *Env, bindings []Binding) *Constraints {
	s := make(grammar.Subst, len(bindings))
	for _, b := range bindings {
		if _, ok := s[b.Var]; ok {
			panic(fmt.Sprintf("duplicate binding for %s", b.Var))
		}
		s[b.Var] = b.Value
	}
	c := &Constraints{env: env, knownTrue: true, subst: s}
	c.assertValid()
	return c
}

// Env returns the environment of the solution.
func (c *Constraints) Env() *Env { return c.env }

// KnownTrue returns whether the goal holds unconditionally
// given the substitution.
func (c *Constraints) KnownTrue() bool { return c.knownTrue }

// Subst returns a copy of the substitution.
func (c *Constraints) Subst() grammar.Subst { return c.subst.Clone() }

// Bindings returns the bindings sorted by the universe of the bound variable.
func (c *Constraints) Bindings() []Binding {
	bs := make([]Binding, 0, len(c.subst))
	for _, v := range c.env.vars {
		if p, ok := c.subst[v]; ok {
			bs = append(bs, Binding{Var: v, Value: p})
		}
	}
	return bs
}

// Ambiguous returns c with known-true set to false.
func (c *Constraints) Ambiguous() *Constraints {
	return &Constraints{env: c.env, knownTrue: false, subst: c.subst}
}

// Seq returns the solution of proving a goal with c
// and then proving a further goal with c2.
// c2 must be a solution proved in c's environment
// after applying c's substitution.
func (c *Constraints) Seq(c2 *Constraints) *Constraints {
	s := make(grammar.Subst, len(c.subst)+len(c2.subst))
	for v, p := range c.subst {
		s[v] = c2.subst.Apply(p)
	}
	for v, p := range c2.subst {
		if _, ok := s[v]; ok {
			panic(fmt.Sprintf("%s bound twice", v))
		}
		s[v] = p
	}
	r := &Constraints{env: c2.env, knownTrue: c.knownTrue && c2.knownTrue, subst: s}
	r.assertValid()
	return r
}

// popSubst removes variables introduced by a sub-proof.
// Bindings of the variables are dropped.
// Each variable is also removed from the environment
// unless it is still mentioned by the value of a remaining binding
// or by one of the keep terms.
func (c *Constraints) popSubst(vs []grammar.Var, keep ...grammar.Term) *Constraints {
	if len(vs) == 0 {
		return c
	}
	s := make(grammar.Subst, len(c.subst))
	for v, p := range c.subst {
		if !containsVar(vs, v) {
			s[v] = p
		}
	}
	var dead []grammar.Var
	for _, v := range vs {
		used := grammar.Occurs(v, keep...)
		for _, p := range s {
			if grammar.Occurs(v, p) {
				used = true
				break
			}
		}
		if !used {
			dead = append(dead, v)
		}
	}
	env := c.env
	if len(dead) > 0 {
		env = c.env.Clone()
		env.remove(dead)
	}
	return &Constraints{env: env, knownTrue: c.knownTrue, subst: s}
}

// assertValid panics if c is not well-formed:
// every bound variable must be an existential in the environment,
// every value must be enclosed by the environment
// and mention only variables of the same or lower universe,
// and no bound variable may occur in any value.
func (c *Constraints) assertValid() {
	for v, p := range c.subst {
		if v.Quant != grammar.Existential {
			panic(fmt.Sprintf("binding of non-existential %s", v))
		}
		uv := c.env.Universe(v)
		if !c.env.Encloses(p) {
			panic(fmt.Sprintf("%s => %s not enclosed by %s", v, p, c.env))
		}
		for _, fv := range grammar.FreeVars(p) {
			if c.env.Universe(fv) > uv {
				panic(fmt.Sprintf("%s => %s escapes universe of %s", v, p, v))
			}
			if _, ok := c.subst[fv]; ok {
				panic(fmt.Sprintf("%s => %s is not idempotent", v, p))
			}
		}
	}
}

// String returns the canonical form of the solution.
// Variables are renamed by their universe,
// so solutions that differ only in the choice of fresh variables
// have the same canonical form.
func (c *Constraints) String() string {
	rename := make(grammar.Subst, len(c.env.vars))
	for i, v := range c.env.vars {
		rename[v] = grammar.Var{Quant: v.Quant, Kind: v.Kind, ID: i + 1}
	}
	var s strings.Builder
	s.WriteString("{env: [")
	for i, v := range c.env.vars {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(rename[v].String())
	}
	s.WriteString("], known_true: ")
	s.WriteString(strconv.FormatBool(c.knownTrue))
	s.WriteString(", subst: {")
	bs := make([]string, 0, len(c.subst))
	for v, p := range c.subst {
		bs = append(bs, rename.Apply(v).String()+" => "+rename.Apply(p).String())
	}
	sort.Strings(bs)
	s.WriteString(strings.Join(bs, ", "))
	s.WriteString("}}")
	return s.String()
}
