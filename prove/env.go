package prove

import (
	"fmt"
	"strings"

	"github.com/eaburns/formality/grammar"
)

// An Env is an ordered list of existential and universal variables.
//
// The universe of a variable is its position in the list.
// Variables are only ever inserted or removed, never reordered,
// so the relative universe of any two variables never changes.
// A variable may only be bound to a term
// whose free variables are in the same or a lower universe.
type Env struct {
	vars []grammar.Var
	next int
}

// NewEnv returns a new, empty Env.
func NewEnv() *Env { return &Env{next: 1} }

// Clone returns a copy of the Env.
func (e *Env) Clone() *Env {
	return &Env{vars: append([]grammar.Var(nil), e.vars...), next: e.next}
}

// Vars returns the variables of the Env in universe order.
func (e *Env) Vars() []grammar.Var {
	return append([]grammar.Var(nil), e.vars...)
}

// Len returns the number of variables.
func (e *Env) Len() int { return len(e.vars) }

// Contains returns whether v is in the Env.
func (e *Env) Contains(v grammar.Var) bool { return e.index(v) >= 0 }

func (e *Env) index(v grammar.Var) int {
	for i, u := range e.vars {
		if u == v {
			return i
		}
	}
	return -1
}

// Universe returns the universe of v.
// It panics if v is not in the Env.
func (e *Env) Universe(v grammar.Var) int {
	i := e.index(v)
	if i < 0 {
		panic(fmt.Sprintf("variable %s not in environment %s", v, e))
	}
	return i
}

// NewExistential adds a new existential variable in the highest universe.
func (e *Env) NewExistential(k grammar.Kind) grammar.Var {
	return e.InsertFreshBefore(grammar.Existential, k, len(e.vars))
}

// NewUniversal adds a new universal variable in the highest universe.
func (e *Env) NewUniversal(k grammar.Kind) grammar.Var {
	return e.InsertFreshBefore(grammar.Universal, k, len(e.vars))
}

// InsertFreshBefore adds a new variable with the given quantifier and kind
// at the given universe.
// The variable currently in that universe, and every variable above it,
// move up one universe, so the new variable
// is strictly below the variable previously at rank.
func (e *Env) InsertFreshBefore(q grammar.Quantifier, k grammar.Kind, rank int) grammar.Var {
	if q != grammar.Existential && q != grammar.Universal {
		panic("impossible bound variable in environment")
	}
	if rank < 0 || rank > len(e.vars) {
		panic(fmt.Sprintf("universe %d out of range", rank))
	}
	v := grammar.Var{Quant: q, Kind: k, ID: e.next}
	e.next++
	e.vars = append(e.vars, grammar.Var{})
	copy(e.vars[rank+1:], e.vars[rank:])
	e.vars[rank] = v
	return v
}

// OrderByUniverse returns the two variables, lowest universe first.
func (e *Env) OrderByUniverse(a, b grammar.Var) (grammar.Var, grammar.Var) {
	if e.Universe(a) <= e.Universe(b) {
		return a, b
	}
	return b, a
}

// Encloses returns whether every free variable of the terms is in the Env.
func (e *Env) Encloses(ts ...grammar.Term) bool {
	for _, v := range grammar.FreeVars(ts...) {
		if v.Quant == grammar.Bound || !e.Contains(v) {
			return false
		}
	}
	return true
}

// ExistentialSubstitution adds a fresh existential variable
// for each of the bound variables vs.
// It returns the substitution from vs to the new variables
// and the new variables.
func (e *Env) ExistentialSubstitution(vs []grammar.Var) (grammar.Subst, []grammar.Var) {
	return e.instantiate(grammar.Existential, vs)
}

// UniversalSubstitution adds a fresh universal variable
// for each of the bound variables vs.
// It returns the substitution from vs to the new variables
// and the new variables.
func (e *Env) UniversalSubstitution(vs []grammar.Var) (grammar.Subst, []grammar.Var) {
	return e.instantiate(grammar.Universal, vs)
}

func (e *Env) instantiate(q grammar.Quantifier, vs []grammar.Var) (grammar.Subst, []grammar.Var) {
	s := make(grammar.Subst, len(vs))
	fresh := make([]grammar.Var, len(vs))
	for i, v := range vs {
		fresh[i] = e.InsertFreshBefore(q, v.Kind, len(e.vars))
		s[v] = fresh[i]
	}
	return s, fresh
}

// remove removes variables from the Env.
// Variables not in the Env are ignored.
func (e *Env) remove(vs []grammar.Var) {
	i := 0
	for _, v := range e.vars {
		if !containsVar(vs, v) {
			e.vars[i] = v
			i++
		}
	}
	e.vars = e.vars[:i]
}

func containsVar(vs []grammar.Var, v grammar.Var) bool {
	for _, u := range vs {
		if u == v {
			return true
		}
	}
	return false
}

func (e *Env) String() string {
	var s strings.Builder
	s.WriteRune('[')
	for i, v := range e.vars {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(v.String())
	}
	s.WriteRune(']')
	return s.String()
}
