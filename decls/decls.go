// Package decls checks parsed crates
// and lowers them to the clauses and invariants of a Program.
//
// An impl
//
//	impl<ty T> Iterator for Vec<T> where T: Debug { type Item = T; }
//
// becomes the clauses
//
//	for<ty T> {Debug(T)} => Iterator(Vec<T>)
//	for<ty T> {Debug(T)} => <Vec<T> as Iterator>::Item => T
//
// The where-clauses of a trait and the bounds of its associated types
// become invariants that hold for every type implementing the trait.
package decls

import (
	"strings"

	"github.com/eaburns/formality/grammar"
	"github.com/eaburns/formality/parser"
	"github.com/eaburns/formality/prove"
)

// Builtins are the predeclared scalar types.
var Builtins = []string{
	"u8", "u16", "u32", "u64",
	"i8", "i16", "i32", "i64",
	"usize", "isize", "bool", "char", "str",
}

// A Program is a checked set of crates.
// It implements prove.Database.
//
// The methods of a Program are safe for concurrent use,
// except for Query.
type Program struct {
	parser *parser.Parser
	types  map[string]*typeDef
	traits map[string]*traitDef
	nextID int

	clauses    []grammar.Clause
	invariants []grammar.Invariant
	byHead     map[grammar.Skeleton][]grammar.Clause
	byConseq   map[grammar.Skeleton][]grammar.Invariant
}

var _ prove.Database = &Program{}

// Clauses returns all program clauses in declaration order.
func (p *Program) Clauses() []grammar.Clause { return p.clauses }

// Invariants returns all invariants in declaration order.
func (p *Program) Invariants() []grammar.Invariant { return p.invariants }

// ElaborateRelation returns the symmetric equality,
// and for each side that is an alias,
// that the alias normalizes to the other side.
func (p *Program) ElaborateRelation(r grammar.Relation) []grammar.Wc {
	eq, ok := r.(*grammar.Equals)
	if !ok {
		return nil
	}
	wcs := []grammar.Wc{&grammar.Equals{A: eq.B, B: eq.A}}
	if a, ok := eq.A.(*grammar.AliasTy); ok {
		wcs = append(wcs, &grammar.NormalizesTo{Alias: a, Ty: eq.B})
	}
	if b, ok := eq.B.(*grammar.AliasTy); ok {
		wcs = append(wcs, &grammar.NormalizesTo{Alias: b, Ty: eq.A})
	}
	return wcs
}

// InvariantsForPredicate returns the invariants
// whose consequence has the skeleton.
func (p *Program) InvariantsForPredicate(s grammar.Skeleton) []grammar.Invariant {
	return p.byConseq[s]
}

// ProgramClauses returns the clauses whose head has the skeleton.
func (p *Program) ProgramClauses(s grammar.Skeleton) []grammar.Clause {
	return p.byHead[s]
}

func (p *Program) addClause(c grammar.Clause) {
	p.clauses = append(p.clauses, c)
	s := c.Head.Skeleton()
	p.byHead[s] = append(p.byHead[s], c)
}

func (p *Program) addInvariant(inv grammar.Invariant) {
	p.invariants = append(p.invariants, inv)
	s := inv.Consequence.Skeleton()
	p.byConseq[s] = append(p.byConseq[s], inv)
}

func (p *Program) newVar(name string, k grammar.Kind) grammar.Var {
	p.nextID++
	return grammar.Var{Quant: grammar.Bound, Kind: k, ID: p.nextID, Name: name}
}

// A Query is a lowered query:
//
//	forall<ForAll> exists<Exists> { Assumptions } => { Goal }
type Query struct {
	ForAll      []grammar.Var
	Exists      []grammar.Var
	Assumptions grammar.Wcs
	Goal        grammar.Wcs
}

func (q *Query) String() string {
	var s strings.Builder
	writeBinder(&s, "forall", q.ForAll)
	writeBinder(&s, "exists", q.Exists)
	s.WriteString((&grammar.Implies{Hyps: q.Assumptions, Body: q.Goal}).String())
	return s.String()
}

func writeBinder(s *strings.Builder, kw string, vs []grammar.Var) {
	if len(vs) == 0 {
		return
	}
	s.WriteString(kw)
	s.WriteRune('<')
	for i, v := range vs {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(v.Kind.String())
		s.WriteRune(' ')
		s.WriteString(v.String())
	}
	s.WriteString("> ")
}

// Query checks and lowers a parsed query.
// The query must have been parsed by the Parser of the Program.
func (p *Program) Query(q *parser.Query) (*Query, []error) {
	c := &checker{prog: p}
	all, sc := c.binder(q.ForAll, nil)
	ex, sc := c.binder(q.Exists, sc)
	lq := &Query{
		ForAll:      all,
		Exists:      ex,
		Assumptions: c.wcs(sc, q.Assumptions),
		Goal:        c.wcs(sc, q.Goals),
	}
	if errs := c.done(); len(errs) > 0 {
		return nil, errs
	}
	return lq, nil
}

// Solve proves the query.
// The forall variables become universal variables
// and the exists variables become existential variables,
// in that order.
func (p *Program) Solve(q *Query, opts ...prove.Opt) prove.Set {
	env := prove.NewEnv()
	s, _ := env.UniversalSubstitution(q.ForAll)
	ex, _ := env.ExistentialSubstitution(q.Exists)
	for v, x := range ex {
		s[v] = x
	}
	return prove.Prove(p, env, s.ApplyWcs(q.Assumptions), s.ApplyWc(q.Goal), opts...)
}
