package decls

import (
	"github.com/eaburns/formality/grammar"
	"github.com/eaburns/formality/loc"
	"github.com/eaburns/formality/parser"
)

type typeDef struct {
	name  string
	kinds []grammar.Kind
	// decl is nil for built-in types.
	decl *parser.Struct
	sc   *scope
}

func (d *typeDef) Loc() loc.Loc {
	if d.decl == nil {
		return loc.Loc{}
	}
	return d.decl.Name.L
}

type traitDef struct {
	decl   *parser.Trait
	self   grammar.Var
	vars   []grammar.Var
	sc     *scope
	assocs map[string]*parser.AssocDecl
	// where is the trait where-clauses
	// in terms of self and vars.
	where grammar.Wcs
}

func (d *traitDef) kinds() []grammar.Kind {
	ks := make([]grammar.Kind, len(d.vars))
	for i, v := range d.vars {
		ks[i] = v.Kind
	}
	return ks
}

type scope struct {
	parent *scope
	vars   map[string]grammar.Var
}

func (sc *scope) find(name string) (grammar.Var, bool) {
	for ; sc != nil; sc = sc.parent {
		if v, ok := sc.vars[name]; ok {
			return v, true
		}
	}
	return grammar.Var{}, false
}

type checker struct {
	prog *Program
	errs []*Error
}

// Check checks the crates of all files parsed by p
// and returns the lowered Program.
func Check(p *parser.Parser) (*Program, []error) {
	prog := &Program{
		parser:   p,
		types:    make(map[string]*typeDef),
		traits:   make(map[string]*traitDef),
		byHead:   make(map[grammar.Skeleton][]grammar.Clause),
		byConseq: make(map[grammar.Skeleton][]grammar.Invariant),
	}
	for _, name := range Builtins {
		prog.types[name] = &typeDef{name: name}
	}
	c := &checker{prog: prog}
	crates := p.Crates()
	c.declare(crates)
	for _, item := range items(crates) {
		if t, ok := item.(*parser.Trait); ok {
			c.checkTrait(t)
		}
	}
	for _, item := range items(crates) {
		switch item := item.(type) {
		case *parser.Struct:
			c.checkStruct(item)
		case *parser.Impl:
			c.checkImpl(item)
		}
	}
	if errs := c.done(); len(errs) > 0 {
		return nil, errs
	}
	return prog, nil
}

func items(crates []*parser.Crate) []parser.Item {
	var is []parser.Item
	for _, c := range crates {
		is = append(is, c.Items...)
	}
	return is
}

func (c *checker) err(err *Error) { c.errs = append(c.errs, err) }

func (c *checker) done() []error {
	files := c.prog.parser.LocFiles()
	var errs []error
	for _, err := range c.errs {
		err.done(files)
		errs = append(errs, err)
	}
	return errs
}

// declare adds the names of all types and traits,
// so that items may refer to items declared after them.
func (c *checker) declare(crates []*parser.Crate) {
	seen := make(map[string]*parser.Crate)
	for _, cr := range crates {
		if prev, ok := seen[cr.Name.Name]; ok {
			c.err(redef(cr.Name, "crate "+cr.Name.Name, prev.Name))
			continue
		}
		seen[cr.Name.Name] = cr
	}
	for _, item := range items(crates) {
		switch item := item.(type) {
		case *parser.Struct:
			name := item.Name.Name
			if prev := c.prev(name); prev != nil {
				c.err(redef(item.Name, name, prev))
				continue
			}
			vars, sc := c.binder(item.Binder, nil)
			def := &typeDef{name: name, decl: item, sc: sc}
			for _, v := range vars {
				def.kinds = append(def.kinds, v.Kind)
			}
			c.prog.types[name] = def

		case *parser.Trait:
			name := item.Name.Name
			if prev := c.prev(name); prev != nil {
				c.err(redef(item.Name, name, prev))
				continue
			}
			self := c.prog.newVar("Self", grammar.Ty)
			sc := &scope{vars: map[string]grammar.Var{"Self": self}}
			vars, sc := c.binder(item.Binder, sc)
			def := &traitDef{
				decl:   item,
				self:   self,
				vars:   vars,
				sc:     sc,
				assocs: make(map[string]*parser.AssocDecl),
			}
			for _, a := range item.Assocs {
				if prev, ok := def.assocs[a.Name.Name]; ok {
					c.err(redef(a.Name, a.Name.Name, prev.Name))
					continue
				}
				def.assocs[a.Name.Name] = a
			}
			c.prog.traits[name] = def
		}
	}
}

// prev returns the previous definition of a type or trait name, or nil.
func (c *checker) prev(name string) loc.Locer {
	if t, ok := c.prog.types[name]; ok {
		return t
	}
	if t, ok := c.prog.traits[name]; ok {
		return t.decl.Name
	}
	return nil
}

// binder returns bound variables for a binder
// and a new scope containing them.
func (c *checker) binder(vs []*parser.Var, parent *scope) ([]grammar.Var, *scope) {
	sc := &scope{parent: parent, vars: make(map[string]grammar.Var)}
	var vars []grammar.Var
	seen := make(map[string]*parser.Var)
	for _, v := range vs {
		if prev, ok := seen[v.Name.Name]; ok {
			c.err(redef(v.Name, v.Name.Name, prev.Name))
			continue
		}
		seen[v.Name.Name] = v
		k := grammar.Ty
		if v.Kind == "lt" {
			k = grammar.Lt
		}
		gv := c.prog.newVar(v.Name.Name, k)
		sc.vars[v.Name.Name] = gv
		vars = append(vars, gv)
	}
	return vars, sc
}

// checkTrait lowers the trait where-clauses and associated type bounds
// to invariants.
// An alias equality implies that the alias normalizes to the other side.
func (c *checker) checkTrait(t *parser.Trait) {
	def := c.prog.traits[t.Name.Name]
	if def == nil || def.decl != t {
		return
	}
	vars := append([]grammar.Var{def.self}, def.vars...)
	params := make([]grammar.Parameter, len(vars))
	for i, v := range vars {
		params[i] = v
	}
	premise := &grammar.IsImplemented{Trait: t.Name.Name, Args: params}
	def.where = c.wcs(def.sc, t.Where)
	for _, w := range def.where {
		ws := []grammar.Wc{w}
		if r, ok := w.(grammar.Relation); ok {
			ws = c.prog.ElaborateRelation(r)
		}
		for _, w := range ws {
			if p, ok := w.(grammar.Predicate); ok {
				c.prog.addInvariant(grammar.Invariant{Vars: vars, Premise: premise, Consequence: p})
			}
		}
	}
	for _, a := range t.Assocs {
		if def.assocs[a.Name.Name] != a {
			continue
		}
		alias := &grammar.AliasTy{Trait: t.Name.Name, Item: a.Name.Name, Params: params}
		for _, b := range a.Bounds {
			if p := c.traitRef(def.sc, b, alias); p != nil {
				c.prog.addInvariant(grammar.Invariant{Vars: vars, Premise: premise, Consequence: p})
			}
		}
	}
}

func (c *checker) checkStruct(s *parser.Struct) {
	def := c.prog.types[s.Name.Name]
	if def == nil || def.decl != s {
		return
	}
	c.wcs(def.sc, s.Where)
	seen := make(map[string]*parser.Field)
	for _, f := range s.Fields {
		if prev, ok := seen[f.Name.Name]; ok {
			c.err(redef(f.Name, f.Name.Name, prev.Name))
		}
		seen[f.Name.Name] = f
		c.ty(def.sc, f.Ty)
	}
}

// checkImpl lowers an impl to an IsImplemented clause
// and a NormalizesTo clause for each associated type value.
func (c *checker) checkImpl(im *parser.Impl) {
	vars, sc := c.binder(im.Binder, nil)
	self := c.ty(sc, im.Self)
	head := c.traitRef(sc, im.Trait, self)
	where := c.wcs(sc, im.Where)
	if head == nil {
		return
	}
	def := c.prog.traits[head.Trait]
	sub := grammar.Subst{def.self: self}
	for i, v := range def.vars {
		sub[v] = head.Args[i+1]
	}
	body := append(append(grammar.Wcs{}, where...), sub.ApplyWcs(def.where)...)
	c.prog.addClause(grammar.Clause{Vars: vars, Body: body, Head: head})

	values := make(map[string]*parser.AssocValue)
	for _, v := range im.Values {
		name := v.Name.Name
		if _, ok := def.assocs[name]; !ok {
			c.err(newError(v.Name, "%s is not an associated type of %s", name, head.Trait))
			continue
		}
		if prev, ok := values[name]; ok {
			c.err(redef(v.Name, name, prev.Name))
			continue
		}
		values[name] = v
		alias := &grammar.AliasTy{Trait: head.Trait, Item: name, Params: head.Args}
		c.prog.addClause(grammar.Clause{
			Vars: vars,
			Body: where,
			Head: &grammar.NormalizesTo{Alias: alias, Ty: c.ty(sc, v.Ty)},
		})
	}
	for _, a := range def.decl.Assocs {
		if values[a.Name.Name] == nil {
			c.err(newError(im, "missing associated type %s", a.Name.Name))
		}
	}
}

// traitRef returns the IsImplemented predicate self: tr,
// or nil if tr does not name a trait or has the wrong parameters.
func (c *checker) traitRef(sc *scope, tr *parser.TraitRef, self grammar.Parameter) *grammar.IsImplemented {
	def, ok := c.prog.traits[tr.Name.Name]
	if !ok {
		c.err(notFound(tr.Name.Name, tr.Name))
		return nil
	}
	ps, ok := c.params(sc, tr, tr.Name.Name, def.kinds(), tr.Args)
	if !ok {
		return nil
	}
	return &grammar.IsImplemented{
		Trait: tr.Name.Name,
		Args:  append([]grammar.Parameter{self}, ps...),
	}
}

func (c *checker) params(sc *scope, locer loc.Locer, name string, kinds []grammar.Kind, args []parser.Ty) ([]grammar.Parameter, bool) {
	if len(args) != len(kinds) {
		c.err(newError(locer, "%s: got %d parameters, expected %d", name, len(args), len(kinds)))
		return nil, false
	}
	ok := true
	ps := make([]grammar.Parameter, len(args))
	for i, arg := range args {
		ps[i] = c.ty(sc, arg)
		if k := grammar.KindOf(ps[i]); k != kinds[i] {
			c.err(newError(arg, "%s: parameter %d is %s, expected %s", name, i+1, k, kinds[i]))
			ok = false
		}
	}
	return ps, ok
}

func (c *checker) ty(sc *scope, t parser.Ty) grammar.Parameter {
	switch t := t.(type) {
	case *parser.NamedTy:
		name := t.Name.Name
		if v, ok := sc.find(name); ok {
			switch {
			case len(t.Args) > 0:
				c.err(newError(t, "%s is a variable and cannot have parameters", name))
			case v.Kind != grammar.Ty:
				c.err(newError(t, "%s is a lifetime, expected a type", name))
			}
			return v
		}
		def, ok := c.prog.types[name]
		if !ok {
			c.err(notFound(name, t.Name))
			return &grammar.RigidTy{Name: name}
		}
		ps, _ := c.params(sc, t, name, def.kinds, t.Args)
		return &grammar.RigidTy{Name: name, Params: ps}

	case *parser.AliasTy:
		return c.aliasTy(sc, t)

	case *parser.Lifetime:
		if t.Name == "static" {
			return grammar.Static{}
		}
		v, ok := sc.find(t.Name)
		switch {
		case !ok:
			c.err(notFound("'"+t.Name, t))
			return grammar.Static{}
		case v.Kind != grammar.Lt:
			c.err(newError(t, "%s is a type, expected a lifetime", t.Name))
		}
		return v

	default:
		panic("impossible type")
	}
}

func (c *checker) aliasTy(sc *scope, t *parser.AliasTy) *grammar.AliasTy {
	alias := &grammar.AliasTy{Trait: t.Trait.Name.Name, Item: t.Item.Name}
	self := c.ty(sc, t.Self)
	p := c.traitRef(sc, t.Trait, self)
	if p == nil {
		alias.Params = []grammar.Parameter{self}
		return alias
	}
	alias.Params = p.Args
	if _, ok := c.prog.traits[p.Trait].assocs[t.Item.Name]; !ok {
		c.err(newError(t.Item, "%s is not an associated type of %s", t.Item.Name, p.Trait))
	}
	return alias
}

func (c *checker) wcs(sc *scope, ws []parser.Wc) grammar.Wcs {
	gs := make(grammar.Wcs, 0, len(ws))
	for _, w := range ws {
		gs = append(gs, c.wc(sc, w))
	}
	return gs
}

func (c *checker) wc(sc *scope, w parser.Wc) grammar.Wc {
	switch w := w.(type) {
	case *parser.Bound:
		self := c.ty(sc, w.Self)
		if p := c.traitRef(sc, w.Trait, self); p != nil {
			return p
		}
		return grammar.Wcs{}

	case *parser.Normalizes:
		// Proved as an equality, so the alias may also stay unnormalized.
		return &grammar.Equals{A: c.aliasTy(sc, w.Alias), B: c.ty(sc, w.Ty)}

	case *parser.Eq:
		return &grammar.Equals{A: c.ty(sc, w.A), B: c.ty(sc, w.B)}

	case *parser.ForAll:
		vars, sc := c.binder(w.Binder, sc)
		return &grammar.ForAll{Vars: vars, Body: c.wc(sc, w.Body)}

	case *parser.Exists:
		vars, sc := c.binder(w.Binder, sc)
		return &grammar.Exists{Vars: vars, Body: c.wc(sc, w.Body)}

	case *parser.Implies:
		return &grammar.Implies{Hyps: c.wcs(sc, w.Hyps), Body: c.wc(sc, w.Body)}

	case *parser.Conj:
		return c.wcs(sc, w.Wcs)

	default:
		panic("impossible where-clause")
	}
}
