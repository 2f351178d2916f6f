package prove

import (
	"fmt"

	"github.com/eaburns/formality/grammar"
)

// proveAllEq proves as[i] = bs[i] for each i, left to right.
func (p *prover) proveAllEq(env *Env, assumptions grammar.Wcs, as, bs []grammar.Parameter) Set {
	if len(as) != len(bs) {
		return nil
	}
	cs := Set{None(env)}
	for i := range as {
		cs = p.proveAfterAll(cs, assumptions, &grammar.Equals{A: as[i], B: bs[i]})
		if len(cs) == 0 {
			return nil
		}
	}
	return cs
}

// proveEq proves a = b.
//
// Identical parameters are trivially equal.
// Otherwise the parameters may be equal syntactically,
// or after normalizing either side.
// Normalizing a side and leaving it alone are separate alternatives,
// so a projection may be equal to a variable
// both as its normalized value and as the projection itself.
func (p *prover) proveEq(env *Env, assumptions grammar.Wcs, a, b grammar.Parameter) Set {
	if grammar.Eq(a, b) {
		return Set{None(env)}
	}
	key := "eq " + goalKey(assumptions, &grammar.Equals{A: a, B: b})
	if p.inProgress[key] {
		return nil
	}
	p.inProgress[key] = true
	defer delete(p.inProgress, key)

	tr := p.trItem("eq %s = %s", a, b)
	defer tr.done()
	var s setBuilder
	s.add(p.proveSyntacticallyEq(env, assumptions, a, b)...)
	if !grammar.IsExistential(a) {
		for _, n := range p.proveNormalize(env, assumptions, a) {
			s.add(p.proveAfter(n.c, assumptions, &grammar.Equals{A: n.p, B: b})...)
		}
	}
	if !grammar.IsExistential(b) {
		for _, n := range p.proveNormalize(env, assumptions, b) {
			s.add(p.proveAfter(n.c, assumptions, &grammar.Equals{A: a, B: n.p})...)
		}
	}
	return tr.result(s.set())
}

// proveSyntacticallyEq proves a = b by their structure:
// rigid types and projections are equal if their names
// and parameters are equal,
// and existential variables are equal to what they can be bound to.
func (p *prover) proveSyntacticallyEq(env *Env, assumptions grammar.Wcs, a, b grammar.Parameter) Set {
	switch {
	case grammar.KindOf(a) != grammar.KindOf(b):
		return nil
	case grammar.Eq(a, b):
		return Set{None(env)}
	}
	var s setBuilder
	switch a := a.(type) {
	case *grammar.RigidTy:
		if b, ok := b.(*grammar.RigidTy); ok && a.Name == b.Name {
			s.add(p.proveAllEq(env, assumptions, a.Params, b.Params)...)
		}
	case *grammar.AliasTy:
		if b, ok := b.(*grammar.AliasTy); ok && a.Trait == b.Trait && a.Item == b.Item {
			s.add(p.proveAllEq(env, assumptions, a.Params, b.Params)...)
		}
	case grammar.Static:
		if _, ok := b.(grammar.Static); ok {
			s.add(None(env))
		}
	}
	if v, ok := a.(grammar.Var); ok && v.Quant == grammar.Existential {
		s.add(p.proveExistentialVarEq(env, assumptions, v, b)...)
	}
	if v, ok := b.(grammar.Var); ok && v.Quant == grammar.Existential {
		s.add(p.proveExistentialVarEq(env, assumptions, v, a)...)
	}
	return s.set()
}

// proveExistentialVarEq proves that the existential v equals b.
func (p *prover) proveExistentialVarEq(env *Env, assumptions grammar.Wcs, v grammar.Var, b grammar.Parameter) Set {
	u, ok := b.(grammar.Var)
	switch {
	case !ok:
		return p.equateVariable(env, assumptions, v, b)
	case u == v:
		return Set{None(env)}
	case u.Quant == grammar.Existential:
		lower, higher := env.OrderByUniverse(v, u)
		return Set{From(env, []Binding{{Var: higher, Value: lower}})}
	case u.Quant == grammar.Universal && env.Universe(u) < env.Universe(v):
		return Set{From(env, []Binding{{Var: v, Value: u}})}
	default:
		return nil
	}
}

// equateVariable binds the existential x to the non-variable parameter v.
//
// Free variables of v in a higher universe than x
// are replaced by fresh existentials below x.
// Replaced existentials are bound to their replacements.
// Replaced universals cannot be bound,
// so they must instead be proved equal to their replacements.
func (p *prover) equateVariable(env *Env, assumptions grammar.Wcs, x grammar.Var, v grammar.Parameter) Set {
	if _, ok := v.(grammar.Var); ok {
		panic(fmt.Sprintf("impossible equate variable %s with variable %s", x, v))
	}
	if !env.Encloses(x, v) {
		panic(fmt.Sprintf("%s does not enclose %s = %s", env, x, v))
	}
	fvs := grammar.FreeVars(v)
	for _, fv := range fvs {
		if fv == x {
			tr := p.trItem("occurs check %s in %s", x, v)
			tr.done()
			return nil
		}
	}

	env = env.Clone()
	ux := env.Universe(x)
	repair := make(grammar.Subst)
	var bindings []Binding
	var univs, ys []grammar.Parameter
	for _, fv := range fvs {
		if env.Universe(fv) <= env.Universe(x) {
			continue
		}
		y := env.InsertFreshBefore(grammar.Existential, fv.Kind, ux)
		repair[fv] = y
		switch fv.Quant {
		case grammar.Existential:
			bindings = append(bindings, Binding{Var: fv, Value: y})
		case grammar.Universal:
			univs = append(univs, fv)
			ys = append(ys, y)
		}
	}
	bindings = append(bindings, Binding{Var: x, Value: repair.Apply(v)})
	c := From(env, bindings)
	if len(univs) == 0 {
		return Set{c}
	}
	tr := p.trItem("equate %s := %s", x, c)
	defer tr.done()
	return tr.result(p.proveAfter(c, assumptions, grammar.AllEq(univs, ys)))
}
