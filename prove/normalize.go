package prove

import "github.com/eaburns/formality/grammar"

// normalized is a parameter that p normalizes to under c.
type normalized struct {
	c *Constraints
	p grammar.Parameter
}

// proveNormalize returns each parameter that v can be normalized to,
// either by an equality or normalizes-to hypothesis,
// or, for a projection, by the program clauses.
func (p *prover) proveNormalize(env *Env, assumptions grammar.Wcs, v grammar.Parameter) []normalized {
	tr := p.trItem("normalize %s", v)
	defer tr.done()
	var ns []normalized
	for _, h := range p.elaborate(assumptions) {
		ns = append(ns, p.proveNormalizeVia(env, assumptions, h, v)...)
	}
	if alias, ok := v.(*grammar.AliasTy); ok {
		ns = append(ns, p.proveNormalizeAlias(env, assumptions, alias)...)
	}
	for _, n := range ns {
		tr.trace("%s under %s", n.p, n.c)
	}
	return ns
}

func (p *prover) proveNormalizeAlias(env *Env, assumptions grammar.Wcs, alias *grammar.AliasTy) []normalized {
	env = env.Clone()
	x := env.NewExistential(grammar.Ty)
	var ns []normalized
	for _, c := range p.proveWc(env, assumptions, &grammar.NormalizesTo{Alias: alias, Ty: x}) {
		t := c.subst.Apply(x)
		if grammar.Eq(t, x) {
			continue
		}
		ns = append(ns, normalized{c: c.popSubst([]grammar.Var{x}, t), p: t})
	}
	return ns
}

// proveNormalizeVia normalizes v using the hypothesis h.
func (p *prover) proveNormalizeVia(env *Env, assumptions grammar.Wcs, h grammar.Wc, v grammar.Parameter) []normalized {
	var from, to grammar.Parameter
	switch h := h.(type) {
	case *grammar.Equals:
		from, to = h.A, h.B
	case *grammar.NormalizesTo:
		from, to = h.Alias, h.Ty
	case grammar.Wcs:
		var ns []normalized
		for _, w := range h {
			ns = append(ns, p.proveNormalizeVia(env, assumptions, w, v)...)
		}
		return ns
	case *grammar.ForAll:
		env = env.Clone()
		s, vs := env.ExistentialSubstitution(h.Vars)
		var ns []normalized
		for _, n := range p.proveNormalizeVia(env, assumptions, s.ApplyWc(h.Body), v) {
			ns = append(ns, normalized{c: n.c.popSubst(vs, n.p), p: n.p})
		}
		return ns
	case *grammar.Implies:
		var ns []normalized
		for _, n := range p.proveNormalizeVia(env, assumptions, h.Body, v) {
			for _, c := range p.proveAfter(n.c, assumptions, h.Hyps) {
				ns = append(ns, normalized{c: c, p: c.subst.Apply(n.p)})
			}
		}
		return ns
	default:
		return nil
	}
	if grammar.Eq(from, to) {
		return nil
	}
	var ns []normalized
	for _, c := range p.proveSyntacticallyEq(env, assumptions, from, v) {
		ns = append(ns, normalized{c: c, p: c.subst.Apply(to)})
	}
	return ns
}
