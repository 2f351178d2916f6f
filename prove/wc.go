package prove

import (
	"fmt"

	"github.com/eaburns/formality/grammar"
)

func (p *prover) proveWc(env *Env, assumptions grammar.Wcs, goal grammar.Wc) Set {
	switch goal := goal.(type) {
	case grammar.Wcs:
		return p.proveWcs(env, assumptions, goal)

	case *grammar.ForAll:
		env = env.Clone()
		s, vs := env.UniversalSubstitution(goal.Vars)
		return popSubst(p.proveWc(env, assumptions, s.ApplyWc(goal.Body)), vs)

	case *grammar.Exists:
		env = env.Clone()
		s, vs := env.ExistentialSubstitution(goal.Vars)
		return popSubst(p.proveWc(env, assumptions, s.ApplyWc(goal.Body)), vs)

	case *grammar.Implies:
		hyps := make(grammar.Wcs, 0, len(assumptions)+len(goal.Hyps))
		hyps = append(hyps, assumptions...)
		hyps = append(hyps, goal.Hyps...)
		return p.proveWc(env, hyps, goal.Body)

	case *grammar.Equals:
		key := goalKey(assumptions, goal)
		if cut, ok := p.enter(env, key, grammar.Size(goal)); !ok {
			return cut
		}
		defer p.leave(key)
		tr := p.trItem("prove %s", goal)
		defer tr.done()
		var b setBuilder
		for _, h := range p.elaborate(assumptions) {
			b.add(p.proveVia(env, assumptions, h, goal)...)
		}
		b.add(p.proveEq(env, assumptions, goal.A, goal.B)...)
		return tr.result(b.set())

	case grammar.Predicate:
		key := goalKey(assumptions, goal)
		if cut, ok := p.enter(env, key, grammar.Size(goal)); !ok {
			return cut
		}
		defer p.leave(key)
		tr := p.trItem("prove %s", goal)
		defer tr.done()
		var b setBuilder
		hyps := p.elaborate(assumptions)
		for _, inv := range p.db.InvariantsForPredicate(goal.Skeleton()) {
			hyps = append(hyps, inv.Wc())
		}
		for _, h := range hyps {
			b.add(p.proveVia(env, assumptions, h, goal)...)
		}
		for _, cl := range p.db.ProgramClauses(goal.Skeleton()) {
			b.add(p.proveClause(env, assumptions, cl, goal)...)
		}
		return tr.result(b.set())

	default:
		panic(fmt.Sprintf("impossible Wc type: %T", goal))
	}
}

// proveWcs proves each goal in order,
// proving each subsequent goal after the solutions to the previous.
func (p *prover) proveWcs(env *Env, assumptions grammar.Wcs, goals grammar.Wcs) Set {
	cs := Set{None(env)}
	for _, goal := range goals {
		cs = p.proveAfterAll(cs, assumptions, goal)
		if len(cs) == 0 {
			return nil
		}
	}
	return cs
}

// elaborate returns the assumptions
// along with the hypotheses implied by their relations.
func (p *prover) elaborate(assumptions grammar.Wcs) grammar.Wcs {
	hyps := append(grammar.Wcs(nil), assumptions...)
	for _, a := range assumptions {
		if r, ok := a.(grammar.Relation); ok {
			hyps = append(hyps, p.db.ElaborateRelation(r)...)
		}
	}
	return hyps
}

// proveClause proves goal by a program clause:
// the clause variables are instantiated with fresh existentials,
// the head is equated with the goal, and then the body is proved.
func (p *prover) proveClause(env *Env, assumptions grammar.Wcs, cl grammar.Clause, goal grammar.Predicate) Set {
	if cl.Head.Skeleton() != goal.Skeleton() {
		return nil
	}
	tr := p.trItem("clause %s", cl)
	defer tr.done()
	env = env.Clone()
	s, vs := env.ExistentialSubstitution(cl.Vars)
	head := s.ApplyPredicate(cl.Head)
	cs := p.proveAllEq(env, assumptions, head.Params(), goal.Params())
	cs = p.proveAfterAll(cs, assumptions, s.ApplyWcs(cl.Body))
	return tr.result(popSubst(cs, vs))
}

// proveVia proves goal using the hypothesis h.
func (p *prover) proveVia(env *Env, assumptions grammar.Wcs, h grammar.Wc, goal grammar.Wc) Set {
	switch h := h.(type) {
	case grammar.Predicate:
		g, ok := goal.(grammar.Predicate)
		if !ok || h.Skeleton() != g.Skeleton() {
			return nil
		}
		return p.proveAllEq(env, assumptions, h.Params(), g.Params())

	case *grammar.Equals:
		g, ok := goal.(*grammar.Equals)
		if !ok {
			return nil
		}
		// Instances of quantified equalities
		// are found by normalization, not here.
		if grammar.Eq(h.A, g.A) && grammar.Eq(h.B, g.B) {
			return Set{None(env)}
		}
		return nil

	case grammar.Wcs:
		var b setBuilder
		for _, w := range h {
			b.add(p.proveVia(env, assumptions, w, goal)...)
		}
		return b.set()

	case *grammar.ForAll:
		env = env.Clone()
		s, vs := env.ExistentialSubstitution(h.Vars)
		return popSubst(p.proveVia(env, assumptions, s.ApplyWc(h.Body), goal), vs)

	case *grammar.Implies:
		cs := p.proveVia(env, assumptions, h.Body, goal)
		return p.proveAfterAll(cs, assumptions, h.Hyps)

	default:
		return nil
	}
}
