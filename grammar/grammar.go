// Package grammar defines the terms, predicates and goals
// that the prover reasons about.
package grammar

import "strings"

// Kind is the kind of a Parameter.
type Kind int

const (
	// Ty is the kind of types.
	Ty Kind = iota
	// Lt is the kind of lifetimes.
	Lt
)

func (k Kind) String() string {
	if k == Lt {
		return "lt"
	}
	return "ty"
}

// Quantifier is how a variable is quantified.
type Quantifier int

const (
	// Bound variables are bound by a ForAll, Exists, Clause, or Invariant binder.
	Bound Quantifier = iota
	// Existential variables stand for some specific but unknown value.
	Existential
	// Universal variables stand for any value whatsoever.
	Universal
)

// A Term is a Parameter or a Wc.
type Term interface {
	String() string
	buildString(*strings.Builder)
}

// A Parameter is a type or lifetime.
// It is one of *RigidTy, *AliasTy, Static, or Var.
type Parameter interface {
	Term
	kind() Kind
}

// KindOf returns the kind of a Parameter.
func KindOf(p Parameter) Kind { return p.kind() }

// A Var is a variable.
// Vars are compared by value;
// two Vars are the same variable iff they are ==.
type Var struct {
	Quant Quantifier
	Kind  Kind
	ID    int
	// Name is the source name of a Bound variable.
	// It is only used for printing.
	Name string
}

// RigidTy is a type constructor applied to parameters, like Vec<u32>.
type RigidTy struct {
	Name   string
	Params []Parameter
}

// AliasTy is an associated-type projection <Params[0] as Trait<Params[1:]>>::Item.
type AliasTy struct {
	Trait  string
	Item   string
	Params []Parameter
}

// Static is the 'static lifetime.
type Static struct{}

func (v Var) kind() Kind    { return v.Kind }
func (*RigidTy) kind() Kind { return Ty }
func (*AliasTy) kind() Kind { return Ty }
func (Static) kind() Kind   { return Lt }

// IsExistential returns whether p is an existential variable.
func IsExistential(p Parameter) bool {
	v, ok := p.(Var)
	return ok && v.Quant == Existential
}

// A Wc is a where-clause: a goal or a hypothesis.
// It is one of *IsImplemented, *NormalizesTo, *Equals,
// Wcs, *ForAll, *Exists, or *Implies.
type Wc interface {
	Term
	isWc()
}

// SkeletonKind is the kind of a predicate.
type SkeletonKind int

const (
	// IsImplementedSkeleton is the skeleton kind of *IsImplemented.
	IsImplementedSkeleton SkeletonKind = iota
	// NormalizesToSkeleton is the skeleton kind of *NormalizesTo.
	NormalizesToSkeleton
)

// A Skeleton identifies the shape of a predicate:
// two predicates with the same Skeleton
// are equal iff their Params are equal.
type Skeleton struct {
	Kind SkeletonKind
	Name string
}

func (s Skeleton) String() string {
	if s.Kind == NormalizesToSkeleton {
		return s.Name + " =>"
	}
	return s.Name
}

// A Predicate is a Wc proved by clauses.
type Predicate interface {
	Wc
	Skeleton() Skeleton
	Params() []Parameter
}

// IsImplemented is the predicate Trait(Args[0], Args[1:]...).
// Args[0] is the self type.
type IsImplemented struct {
	Trait string
	Args  []Parameter
}

func (p *IsImplemented) Skeleton() Skeleton {
	return Skeleton{Kind: IsImplementedSkeleton, Name: p.Trait}
}

func (p *IsImplemented) Params() []Parameter { return p.Args }

// NormalizesTo is the predicate that Alias normalizes to Ty.
type NormalizesTo struct {
	Alias *AliasTy
	Ty    Parameter
}

func (p *NormalizesTo) Skeleton() Skeleton {
	return Skeleton{Kind: NormalizesToSkeleton, Name: p.Alias.Trait + "::" + p.Alias.Item}
}

func (p *NormalizesTo) Params() []Parameter {
	ps := make([]Parameter, 0, len(p.Alias.Params)+1)
	ps = append(ps, p.Alias.Params...)
	return append(ps, p.Ty)
}

// A Relation is a Wc proved by the equality rules.
type Relation interface {
	Wc
	isRelation()
}

// Equals is the relation A = B.
type Equals struct {
	A, B Parameter
}

// Wcs is a conjunction.
type Wcs []Wc

// ForAll holds if Body holds for any values of Vars.
type ForAll struct {
	Vars []Var
	Body Wc
}

// Exists holds if Body holds for some values of Vars.
type Exists struct {
	Vars []Var
	Body Wc
}

// Implies holds if Body holds assuming Hyps.
type Implies struct {
	Hyps Wcs
	Body Wc
}

func (*IsImplemented) isWc() {}
func (*NormalizesTo) isWc()  {}
func (*Equals) isWc()        {}
func (Wcs) isWc()            {}
func (*ForAll) isWc()        {}
func (*Exists) isWc()        {}
func (*Implies) isWc()       {}
func (*Equals) isRelation()  {}

// A Clause is a program clause: for_all(Vars) { Body } => Head.
type Clause struct {
	Vars []Var
	Body Wcs
	Head Predicate
}

// Wc returns the clause as a where-clause.
func (c Clause) Wc() Wc {
	return &ForAll{Vars: c.Vars, Body: &Implies{Hyps: c.Body, Body: c.Head}}
}

func (c Clause) String() string { return c.Wc().String() }

// An Invariant is a fact that always holds:
// for_all(Vars) Premise => Consequence.
type Invariant struct {
	Vars        []Var
	Premise     Predicate
	Consequence Predicate
}

// Wc returns the invariant as a where-clause.
func (inv Invariant) Wc() Wc {
	return &ForAll{
		Vars: inv.Vars,
		Body: &Implies{Hyps: Wcs{inv.Premise}, Body: inv.Consequence},
	}
}

func (inv Invariant) String() string { return inv.Wc().String() }
