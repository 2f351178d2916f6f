package grammar

import (
	"fmt"
	"sort"
)

// Subst maps variables to parameters.
type Subst map[Var]Parameter

// Domain returns the substituted variables sorted by ID.
func (s Subst) Domain() []Var {
	vs := make([]Var, 0, len(s))
	for v := range s {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool {
		if vs[i].ID == vs[j].ID {
			return vs[i].Quant < vs[j].Quant
		}
		return vs[i].ID < vs[j].ID
	})
	return vs
}

// Clone returns a copy of s.
func (s Subst) Clone() Subst {
	c := make(Subst, len(s))
	for v, p := range s {
		c[v] = p
	}
	return c
}

// Apply returns p with its free variables replaced by their values.
// The replacement is not recursive:
// the values are not themselves substituted.
func (s Subst) Apply(p Parameter) Parameter {
	if len(s) == 0 {
		return p
	}
	switch p := p.(type) {
	case Var:
		if q, ok := s[p]; ok {
			return q
		}
		return p
	case *RigidTy:
		return &RigidTy{Name: p.Name, Params: s.ApplyAll(p.Params)}
	case *AliasTy:
		return s.applyAlias(p)
	case Static:
		return p
	default:
		panic(fmt.Sprintf("impossible Parameter type: %T", p))
	}
}

func (s Subst) applyAlias(a *AliasTy) *AliasTy {
	return &AliasTy{Trait: a.Trait, Item: a.Item, Params: s.ApplyAll(a.Params)}
}

// ApplyAll applies s to each parameter.
func (s Subst) ApplyAll(ps []Parameter) []Parameter {
	if ps == nil {
		return nil
	}
	qs := make([]Parameter, len(ps))
	for i, p := range ps {
		qs[i] = s.Apply(p)
	}
	return qs
}

// ApplyWc returns w with its free variables replaced by their values.
// Variables bound by binders within w are not replaced.
func (s Subst) ApplyWc(w Wc) Wc {
	if len(s) == 0 {
		return w
	}
	switch w := w.(type) {
	case *IsImplemented:
		return &IsImplemented{Trait: w.Trait, Args: s.ApplyAll(w.Args)}
	case *NormalizesTo:
		return &NormalizesTo{Alias: s.applyAlias(w.Alias), Ty: s.Apply(w.Ty)}
	case *Equals:
		return &Equals{A: s.Apply(w.A), B: s.Apply(w.B)}
	case Wcs:
		return s.ApplyWcs(w)
	case *ForAll:
		return &ForAll{Vars: w.Vars, Body: s.without(w.Vars).ApplyWc(w.Body)}
	case *Exists:
		return &Exists{Vars: w.Vars, Body: s.without(w.Vars).ApplyWc(w.Body)}
	case *Implies:
		return &Implies{Hyps: s.ApplyWcs(w.Hyps), Body: s.ApplyWc(w.Body)}
	default:
		panic(fmt.Sprintf("impossible Wc type: %T", w))
	}
}

// ApplyWcs applies s to each where-clause.
func (s Subst) ApplyWcs(ws Wcs) Wcs {
	if ws == nil {
		return nil
	}
	vs := make(Wcs, len(ws))
	for i, w := range ws {
		vs[i] = s.ApplyWc(w)
	}
	return vs
}

// ApplyPredicate applies s to a predicate.
func (s Subst) ApplyPredicate(p Predicate) Predicate {
	return s.ApplyWc(p).(Predicate)
}

func (s Subst) without(vs []Var) Subst {
	var shadows bool
	for _, v := range vs {
		if _, ok := s[v]; ok {
			shadows = true
			break
		}
	}
	if !shadows {
		return s
	}
	t := s.Clone()
	for _, v := range vs {
		delete(t, v)
	}
	return t
}

// FreeVars returns the free variables of the terms
// in order of first occurrence, without duplicates.
func FreeVars(ts ...Term) []Var {
	var vs []Var
	seen := make(map[Var]bool)
	for _, t := range ts {
		walkTerm(t, nil, func(v Var) {
			if !seen[v] {
				seen[v] = true
				vs = append(vs, v)
			}
		})
	}
	return vs
}

// Occurs returns whether v is free in any of the terms.
func Occurs(v Var, ts ...Term) bool {
	var found bool
	for _, t := range ts {
		walkTerm(t, nil, func(u Var) {
			if u == v {
				found = true
			}
		})
	}
	return found
}

func walkTerm(t Term, bound map[Var]bool, f func(Var)) {
	switch t := t.(type) {
	case Var:
		if !bound[t] {
			f(t)
		}
	case *RigidTy:
		for _, p := range t.Params {
			walkTerm(p, bound, f)
		}
	case *AliasTy:
		for _, p := range t.Params {
			walkTerm(p, bound, f)
		}
	case Static:
	case *IsImplemented:
		for _, p := range t.Args {
			walkTerm(p, bound, f)
		}
	case *NormalizesTo:
		walkTerm(t.Alias, bound, f)
		walkTerm(t.Ty, bound, f)
	case *Equals:
		walkTerm(t.A, bound, f)
		walkTerm(t.B, bound, f)
	case Wcs:
		for _, w := range t {
			walkTerm(w, bound, f)
		}
	case *ForAll:
		walkTerm(t.Body, bind(bound, t.Vars), f)
	case *Exists:
		walkTerm(t.Body, bind(bound, t.Vars), f)
	case *Implies:
		walkTerm(t.Hyps, bound, f)
		walkTerm(t.Body, bound, f)
	default:
		panic(fmt.Sprintf("impossible Term type: %T", t))
	}
}

func bind(bound map[Var]bool, vs []Var) map[Var]bool {
	b := make(map[Var]bool, len(bound)+len(vs))
	for v := range bound {
		b[v] = true
	}
	for _, v := range vs {
		b[v] = true
	}
	return b
}

// Size returns the number of nodes in a term.
func Size(t Term) int {
	switch t := t.(type) {
	case Var, Static:
		return 1
	case *RigidTy:
		return 1 + sizeAll(t.Params)
	case *AliasTy:
		return 1 + sizeAll(t.Params)
	case *IsImplemented:
		return 1 + sizeAll(t.Args)
	case *NormalizesTo:
		return 1 + Size(t.Alias) + Size(t.Ty)
	case *Equals:
		return 1 + Size(t.A) + Size(t.B)
	case Wcs:
		n := 1
		for _, w := range t {
			n += Size(w)
		}
		return n
	case *ForAll:
		return 1 + Size(t.Body)
	case *Exists:
		return 1 + Size(t.Body)
	case *Implies:
		return 1 + Size(t.Hyps) + Size(t.Body)
	default:
		panic(fmt.Sprintf("impossible Term type: %T", t))
	}
}

func sizeAll(ps []Parameter) int {
	var n int
	for _, p := range ps {
		n += Size(p)
	}
	return n
}

// AllEq returns the conjunction of as[i] = bs[i].
// It panics if the lengths differ.
func AllEq(as, bs []Parameter) Wcs {
	if len(as) != len(bs) {
		panic("impossible AllEq length mismatch")
	}
	ws := make(Wcs, len(as))
	for i := range as {
		ws[i] = &Equals{A: as[i], B: bs[i]}
	}
	return ws
}
