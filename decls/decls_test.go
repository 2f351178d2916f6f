package decls

import (
	"regexp"
	"strings"
	"testing"

	"github.com/eaburns/formality/grammar"
	"github.com/eaburns/formality/parser"
	"github.com/eaburns/formality/prove"
	"github.com/google/go-cmp/cmp"
)

const coreSrc = `
	crate core {
		trait Debug {}
		trait Eq {}
		trait Ord where Self: Eq {}
		trait Iterator {
			type Item : [];
		}
		struct Vec<ty T> {}
		struct Ref<lt a, ty T> {}
		impl Debug for u32 {}
		impl<ty T> Debug for Vec<T> where T: Debug {}
		impl<ty T> Iterator for Vec<T> where T: Debug {
			type Item = T;
		}
	}
`

func TestClauses(t *testing.T) {
	_, prog := check(t, coreSrc)
	var got []string
	for _, cl := range prog.Clauses() {
		got = append(got, cl.String())
	}
	want := []string{
		"for<> {} => Debug(u32)",
		"for<ty T> {Debug(T)} => Debug(Vec<T>)",
		"for<ty T> {Debug(T)} => Iterator(Vec<T>)",
		"for<ty T> {Debug(T)} => <Vec<T> as Iterator>::Item => T",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestInvariants(t *testing.T) {
	_, prog := check(t, coreSrc)
	var got []string
	for _, inv := range prog.Invariants() {
		got = append(got, inv.String())
	}
	want := []string{"for<ty Self> {Ord(Self)} => Eq(Self)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
	eq := grammar.Skeleton{Kind: grammar.IsImplementedSkeleton, Name: "Eq"}
	if n := len(prog.InvariantsForPredicate(eq)); n != 1 {
		t.Errorf("got %d Eq invariants, want 1", n)
	}
	debug := grammar.Skeleton{Kind: grammar.IsImplementedSkeleton, Name: "Debug"}
	if n := len(prog.ProgramClauses(debug)); n != 2 {
		t.Errorf("got %d Debug clauses, want 2", n)
	}
}

const boundsSrc = `
	crate test {
		trait Debug {}
		trait Iterator<ty T> {
			type Item : [Debug, Iterator<T>];
		}
	}
`

func TestAssocBounds(t *testing.T) {
	p, prog := check(t, boundsSrc)
	var got []string
	for _, inv := range prog.Invariants() {
		got = append(got, inv.String())
	}
	want := []string{
		"for<ty Self, ty T> {Iterator(Self, T)} => Debug(<Self as Iterator<T>>::Item)",
		"for<ty Self, ty T> {Iterator(Self, T)} => Iterator(<Self as Iterator<T>>::Item, T)",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}

	q := query(t, p, prog, "forall<ty T> {Iterator(T, u32)} => {Debug(<T as Iterator<u32>>::Item)}")
	want = []string{"{env: [!ty_1], known_true: true, subst: {}}"}
	if diff := cmp.Diff(want, solutions(prog.Solve(q))); diff != "" {
		t.Error(diff)
	}

	q = query(t, p, prog, "forall<ty T> {} => {Debug(<T as Iterator<u32>>::Item)}")
	if s := prog.Solve(q); len(s) != 0 {
		t.Errorf("got %s, want no solutions", s)
	}
}

func TestTraitWhereNormalizes(t *testing.T) {
	_, prog := check(t, `
		crate test {
			trait Iterator {
				type Item : [];
			}
			trait Bytes where Self: Iterator, <Self as Iterator>::Item => u8 {}
			impl Iterator for u32 {
				type Item = u8;
			}
			impl Bytes for u32 {}
		}
	`)
	var got []string
	for _, inv := range prog.Invariants() {
		got = append(got, inv.String())
	}
	want := []string{
		"for<ty Self> {Bytes(Self)} => Iterator(Self)",
		"for<ty Self> {Bytes(Self)} => <Self as Iterator>::Item => u8",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
	var clauses []string
	for _, cl := range prog.Clauses() {
		clauses = append(clauses, cl.String())
	}
	if want := "for<> {Iterator(u32), <u32 as Iterator>::Item = u8} => Bytes(u32)"; clauses[len(clauses)-1] != want {
		t.Errorf("got %s, want %s", clauses[len(clauses)-1], want)
	}
}

func TestTraitWhereInImplBody(t *testing.T) {
	_, prog := check(t, `
		crate test {
			trait Eq {}
			trait Ord where Self: Eq {}
			impl Ord for u8 {}
		}
	`)
	if got, want := prog.Clauses()[0].String(), "for<> {Eq(u8)} => Ord(u8)"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestElaborateRelation(t *testing.T) {
	_, prog := check(t, coreSrc)
	alias := &grammar.AliasTy{
		Trait:  "Iterator",
		Item:   "Item",
		Params: []grammar.Parameter{&grammar.RigidTy{Name: "u8"}},
	}
	u32 := &grammar.RigidTy{Name: "u32"}
	var got []string
	for _, w := range prog.ElaborateRelation(&grammar.Equals{A: alias, B: u32}) {
		got = append(got, w.String())
	}
	want := []string{
		"u32 = <u8 as Iterator>::Item",
		"<u8 as Iterator>::Item => u32",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

const intoIteratorSrc = `
	crate test {
		trait IntoIterator {
			type Item : [];
		}
		trait Iterator {
			type Item : [];
		}
		struct Vec<ty T> {}
		struct Foo {}
		impl<ty T> IntoIterator for Vec<T> {
			type Item = T;
		}
		impl<ty T> IntoIterator for T where T: Iterator {
			type Item = <T as Iterator>::Item;
		}
	}
`

const projectionEqualitySrc = `
	crate test {
		trait Trait1<> {
			type Type : [];
		}
		trait Trait2<ty T> {}
		impl<ty T, ty U> Trait2<T> for U where U: Trait1<>, <S as Trait1>::Type => T {}
		struct S {}
		impl Trait1<> for S {
			type Type = u32;
		}
	}
`

const mirrorSrc = `
	crate core {
		trait Mirror<> {
			type Assoc : [];
		}
		impl<ty T> Mirror<> for T {
			type Assoc = T;
		}
	}
`

func TestSolve(t *testing.T) {
	tests := []struct {
		name string
		// src is the program, or coreSrc if empty.
		src   string
		query string
		want  []string
	}{
		{
			name:  "single impl",
			query: "{} => {Debug(u32)}",
			want:  []string{"{env: [], known_true: true, subst: {}}"},
		},
		{
			name:  "nested impls",
			query: "{} => {Debug(Vec<Vec<u32>>)}",
			want:  []string{"{env: [], known_true: true, subst: {}}"},
		},
		{
			name:  "no impl",
			query: "{} => {Debug(Vec<bool>)}",
			want:  nil,
		},
		{
			name:  "universal with assumption",
			query: "forall<ty T> {Debug(T)} => {Debug(Vec<T>)}",
			want:  []string{"{env: [!ty_1], known_true: true, subst: {}}"},
		},
		{
			name:  "universal without assumption",
			query: "forall<ty T> {} => {Debug(Vec<T>)}",
			want:  nil,
		},
		{
			name:  "normalize",
			query: "exists<ty U> {} => {<Vec<u32> as Iterator>::Item = U}",
			want: []string{
				"{env: [?ty_1], known_true: true, subst: {?ty_1 => <Vec<u32> as Iterator>::Item}}",
				"{env: [?ty_1], known_true: true, subst: {?ty_1 => u32}}",
			},
		},
		{
			name:  "supertrait",
			query: "forall<ty T> {Ord(T)} => {Eq(T)}",
			want:  []string{"{env: [!ty_1], known_true: true, subst: {}}"},
		},
		{
			name:  "supertrait needs the subtrait",
			query: "forall<ty T> {Eq(T)} => {Ord(T)}",
			want:  nil,
		},
		{
			name:  "equality assumption",
			query: "forall<ty T> {<T as Iterator>::Item = u32} => {Debug(<T as Iterator>::Item)}",
			want:  []string{"{env: [!ty_1], known_true: true, subst: {}}"},
		},
		{
			name:  "mirror",
			src:   mirrorSrc,
			query: "exists<ty T> {} => {<u32 as Mirror>::Assoc = T}",
			want: []string{
				"{env: [?ty_1], known_true: true, subst: {?ty_1 => <u32 as Mirror>::Assoc}}",
				"{env: [?ty_1], known_true: true, subst: {?ty_1 => u32}}",
			},
		},
		{
			name:  "normalize into iterator",
			src:   intoIteratorSrc,
			query: "forall<ty T> exists<ty U> {} => {<Vec<T> as IntoIterator>::Item = U}",
			want: []string{
				"{env: [!ty_1, ?ty_2], known_true: true, subst: {?ty_2 => !ty_1}}",
				"{env: [!ty_1, ?ty_2], known_true: true, subst: {?ty_2 => <Vec<!ty_1> as IntoIterator>::Item}}",
			},
		},
		{
			name:  "projection equality",
			src:   projectionEqualitySrc,
			query: "exists<ty U> {} => {Trait1(S), <S as Trait1<>>::Type = U}",
			want: []string{
				"{env: [?ty_1], known_true: true, subst: {?ty_1 => <S as Trait1>::Type}}",
				"{env: [?ty_1], known_true: true, subst: {?ty_1 => u32}}",
			},
		},
		{
			name:  "projection equality in impl where-clause",
			src:   projectionEqualitySrc,
			query: "exists<ty U> {} => {Trait2(S, U)}",
			want: []string{
				"{env: [?ty_1], known_true: true, subst: {?ty_1 => <S as Trait1>::Type}}",
				"{env: [?ty_1], known_true: true, subst: {?ty_1 => u32}}",
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			src := test.src
			if src == "" {
				src = coreSrc
			}
			p, prog := check(t, src)
			q := query(t, p, prog, test.query)
			if diff := cmp.Diff(test.want, solutions(prog.Solve(q))); diff != "" {
				t.Errorf("%s\n%s", q, diff)
			}
		})
	}
}

func TestSolveOverflow(t *testing.T) {
	const src = `
		crate test {
			trait Foo {}
			struct Box<ty T> {}
			impl<ty T> Foo for T where Box<T>: Foo {}
		}
	`
	p, prog := check(t, src)
	q := query(t, p, prog, "{} => {Foo(u32)}")
	if s := prog.Solve(q, prove.MaxSize(8)); len(s) != 0 {
		t.Errorf("got %s, want no solutions", s)
	}
	s := prog.Solve(q, prove.MaxSize(8), prove.AmbiguousOnOverflow())
	if !s.Ambiguous() {
		t.Errorf("got %s, want ambiguous", s)
	}
}

func TestQueryString(t *testing.T) {
	p, prog := check(t, coreSrc)
	q := query(t, p, prog, "forall<ty T> exists<ty U> {Iterator(T)} => {<T as Iterator>::Item = U}")
	want := "forall<ty T> exists<ty U> {Iterator(T)} => {<T as Iterator>::Item = U}"
	if got := q.String(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestCheckErrors(t *testing.T) {
	tests := []struct {
		src string
		err string
	}{
		{
			src: "crate a { impl Debug for u32 {} }",
			err: `^test.fm:1.16-21: Debug: not found$`,
		},
		{
			src: "crate a { trait Debug {} impl Debug for Foo {} }",
			err: `Foo: not found`,
		},
		{
			src: "crate a { struct Vec<ty T> {} trait Debug {} impl Debug for Vec {} }",
			err: `Vec: got 0 parameters, expected 1`,
		},
		{
			src: "crate a { struct A {} struct A {} }",
			err: `A redefined\n\tprevious \(test.fm:1.18-19\)`,
		},
		{
			src: "crate a { struct u32 {} }",
			err: `u32 redefined\n\tu32 is built-in`,
		},
		{
			src: "crate a { struct Debug {} trait Debug {} }",
			err: `Debug redefined`,
		},
		{
			src: "crate a {} crate a {}",
			err: `crate a redefined`,
		},
		{
			src: "crate a { struct P<ty A, ty A> {} }",
			err: `A redefined`,
		},
		{
			src: "crate a { trait T { type A : []; type A : []; } }",
			err: `A redefined`,
		},
		{
			src: "crate a { struct S { x: u32, x: u32 } }",
			err: `x redefined`,
		},
		{
			src: "crate a { trait T {} impl T for u32 { type Item = u32; } }",
			err: `Item is not an associated type of T`,
		},
		{
			src: "crate a { trait T { type Item : []; } impl T for u32 {} }",
			err: `missing associated type Item`,
		},
		{
			src: "crate a { trait T { type Item : []; } impl T for u32 { type Item = u32; type Item = u8; } }",
			err: `Item redefined`,
		},
		{
			src: "crate a { struct S<lt a> {} struct U { s: S<u32> } }",
			err: `S: parameter 1 is ty, expected lt`,
		},
		{
			src: "crate a { struct S<ty T> { x: T<u32> } }",
			err: `T is a variable and cannot have parameters`,
		},
		{
			src: "crate a { struct S<lt a> { x: a } }",
			err: `a is a lifetime, expected a type`,
		},
		{
			src: "crate a { struct S<ty T> { x: Ref<'T, u32> } struct Ref<lt a, ty T> {} }",
			err: `T is a type, expected a lifetime`,
		},
		{
			src: "crate a { struct S { x: Ref<'b, u32> } struct Ref<lt a, ty T> {} }",
			err: `'b: not found`,
		},
		{
			src: "crate a { trait T {} struct S where <u32 as T>::Item = u32 {} }",
			err: `Item is not an associated type of T`,
		},
	}
	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			p := parser.New()
			if err := p.Parse("test.fm", strings.NewReader(test.src)); err != nil {
				t.Fatalf("failed to parse: %s", err)
			}
			_, errs := Check(p)
			if len(errs) == 0 {
				t.Fatalf("got no errors, want %q", test.err)
			}
			re := regexp.MustCompile(test.err)
			for _, err := range errs {
				if re.MatchString(err.Error()) {
					return
				}
			}
			t.Errorf("got %v, want %q", errs, test.err)
		})
	}
}

func TestQueryErrors(t *testing.T) {
	tests := []struct {
		query string
		err   string
	}{
		{query: "{} => {Debug(T)}", err: `T: not found`},
		{query: "{} => {Show(u32)}", err: `Show: not found`},
		{query: "forall<ty T> {} => {<T as Debug>::Item = u32}", err: `Item is not an associated type of Debug`},
		{query: "forall<ty T, ty T> {} => {}", err: `T redefined`},
	}
	for _, test := range tests {
		t.Run(test.query, func(t *testing.T) {
			p, prog := check(t, coreSrc)
			pq, err := p.ParseQuery("query", strings.NewReader(test.query))
			if err != nil {
				t.Fatalf("failed to parse: %s", err)
			}
			_, errs := prog.Query(pq)
			re := regexp.MustCompile(test.err)
			for _, err := range errs {
				if re.MatchString(err.Error()) {
					return
				}
			}
			t.Errorf("got %v, want %q", errs, test.err)
		})
	}
}

func check(t *testing.T, src string) (*parser.Parser, *Program) {
	t.Helper()
	p := parser.New()
	if err := p.Parse("test.fm", strings.NewReader(src)); err != nil {
		t.Fatalf("failed to parse: %s", err)
	}
	prog, errs := Check(p)
	if len(errs) > 0 {
		t.Fatalf("failed to check: %v", errs)
	}
	return p, prog
}

func query(t *testing.T, p *parser.Parser, prog *Program, src string) *Query {
	t.Helper()
	pq, err := p.ParseQuery("query", strings.NewReader(src))
	if err != nil {
		t.Fatalf("failed to parse query: %s", err)
	}
	q, errs := prog.Query(pq)
	if len(errs) > 0 {
		t.Fatalf("failed to check query: %v", errs)
	}
	return q
}

func solutions(s prove.Set) []string {
	var ss []string
	for _, c := range s {
		ss = append(ss, c.String())
	}
	return ss
}
