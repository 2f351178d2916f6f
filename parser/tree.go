package parser

import "github.com/eaburns/formality/loc"

// A File is a parsed source file.
type File struct {
	P      string
	NLs    []int
	Length int

	// Crates is set for a program file.
	Crates []*Crate
	// Query is set for a query file.
	Query *Query

	// Comments are the locations of comments in the file.
	Comments []loc.Loc
}

func (f *File) Path() string    { return f.P }
func (f *File) NewLines() []int { return f.NLs }
func (f *File) Len() int        { return f.Length }

// A Crate is a named set of items.
type Crate struct {
	Name  Ident
	Items []Item
	L     loc.Loc
}

// An Item is a *Trait, *Struct, or *Impl.
type Item interface {
	loc.Locer
	isItem()
}

// Trait is a trait declaration:
//
//	trait Name<Binder> where Where { Assocs }
type Trait struct {
	Name   Ident
	Binder []*Var
	Where  []Wc
	Assocs []*AssocDecl
	L      loc.Loc
}

// AssocDecl declares an associated type:
//
//	type Name : [Bounds];
type AssocDecl struct {
	Name   Ident
	Bounds []*TraitRef
	L      loc.Loc
}

// Struct is a struct declaration:
//
//	struct Name<Binder> where Where { Fields }
type Struct struct {
	Name   Ident
	Binder []*Var
	Where  []Wc
	Fields []*Field
	L      loc.Loc
}

// A Field is a struct field.
type Field struct {
	Name Ident
	Ty   Ty
	L    loc.Loc
}

// Impl is an impl declaration:
//
//	impl<Binder> Trait for Self where Where { Values }
type Impl struct {
	Binder []*Var
	Trait  *TraitRef
	Self   Ty
	Where  []Wc
	Values []*AssocValue
	L      loc.Loc
}

// AssocValue is the value of an associated type in an impl:
//
//	type Name = Ty;
type AssocValue struct {
	Name Ident
	Ty   Ty
	L    loc.Loc
}

// An Ident is an identifier.
type Ident struct {
	Name string
	L    loc.Loc
}

// A Var is a variable in a binder.
type Var struct {
	// Kind is "ty" or "lt".
	Kind string
	Name Ident
	L    loc.Loc
}

// A TraitRef names a trait and its parameters other than Self.
type TraitRef struct {
	Name Ident
	Args []Ty
	L    loc.Loc
}

// A Ty is a *NamedTy, *AliasTy, or *Lifetime.
type Ty interface {
	loc.Locer
	isTy()
}

// NamedTy is a named type, possibly with arguments.
// The name may be a struct, a builtin type, or a variable.
type NamedTy struct {
	Name Ident
	Args []Ty
	L    loc.Loc
}

// AliasTy is an associated-type projection:
//
//	<Self as Trait>::Item
type AliasTy struct {
	Self  Ty
	Trait *TraitRef
	Item  Ident
	L     loc.Loc
}

// Lifetime is a lifetime, like 'static or 'a.
// The name does not include the quote.
type Lifetime struct {
	Name string
	L    loc.Loc
}

// A Wc is a where-clause:
// *Bound, *Normalizes, *Eq, *ForAll, *Exists, *Implies, or *Conj.
type Wc interface {
	loc.Locer
	isWc()
}

// Bound is a trait bound: Self: Trait<Args>
// or equivalently Trait(Self, Args).
type Bound struct {
	Self  Ty
	Trait *TraitRef
	L     loc.Loc
}

// Normalizes is a normalizes-to clause: Alias => Ty.
type Normalizes struct {
	Alias *AliasTy
	Ty    Ty
	L     loc.Loc
}

// Eq is an equality: A = B.
type Eq struct {
	A, B Ty
	L    loc.Loc
}

// ForAll is for<Binder> Body.
type ForAll struct {
	Binder []*Var
	Body   Wc
	L      loc.Loc
}

// Exists is exists<Binder> Body.
type Exists struct {
	Binder []*Var
	Body   Wc
	L      loc.Loc
}

// Implies is { Hyps } => Body.
type Implies struct {
	Hyps []Wc
	Body Wc
	L    loc.Loc
}

// Conj is { Wcs }.
type Conj struct {
	Wcs []Wc
	L   loc.Loc
}

// A Query is a goal to prove:
//
//	forall<ForAll> exists<Exists> { Assumptions } => { Goals }
type Query struct {
	ForAll      []*Var
	Exists      []*Var
	Assumptions []Wc
	Goals       []Wc
	L           loc.Loc
}

func (n *Crate) Loc() loc.Loc      { return n.L }
func (n *Trait) Loc() loc.Loc      { return n.L }
func (n *AssocDecl) Loc() loc.Loc  { return n.L }
func (n *Struct) Loc() loc.Loc     { return n.L }
func (n *Field) Loc() loc.Loc      { return n.L }
func (n *Impl) Loc() loc.Loc       { return n.L }
func (n *AssocValue) Loc() loc.Loc { return n.L }
func (n Ident) Loc() loc.Loc       { return n.L }
func (n *Var) Loc() loc.Loc        { return n.L }
func (n *TraitRef) Loc() loc.Loc   { return n.L }
func (n *NamedTy) Loc() loc.Loc    { return n.L }
func (n *AliasTy) Loc() loc.Loc    { return n.L }
func (n *Lifetime) Loc() loc.Loc   { return n.L }
func (n *Bound) Loc() loc.Loc      { return n.L }
func (n *Normalizes) Loc() loc.Loc { return n.L }
func (n *Eq) Loc() loc.Loc         { return n.L }
func (n *ForAll) Loc() loc.Loc     { return n.L }
func (n *Exists) Loc() loc.Loc     { return n.L }
func (n *Implies) Loc() loc.Loc    { return n.L }
func (n *Conj) Loc() loc.Loc       { return n.L }
func (n *Query) Loc() loc.Loc      { return n.L }

func (*Trait) isItem()  {}
func (*Struct) isItem() {}
func (*Impl) isItem()   {}

func (*NamedTy) isTy()  {}
func (*AliasTy) isTy()  {}
func (*Lifetime) isTy() {}

func (*Bound) isWc()      {}
func (*Normalizes) isWc() {}
func (*Eq) isWc()         {}
func (*ForAll) isWc()     {}
func (*Exists) isWc()     {}
func (*Implies) isWc()    {}
func (*Conj) isWc()       {}
