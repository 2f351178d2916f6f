package parser

import (
	"strings"
	"testing"

	"github.com/eaburns/formality/loc"
	"github.com/google/go-cmp/cmp"
)

func id(name string) Ident { return Ident{Name: name} }

func named(name string, args ...Ty) *NamedTy { return &NamedTy{Name: id(name), Args: args} }

func ref(name string, args ...Ty) *TraitRef { return &TraitRef{Name: id(name), Args: args} }

func tyVar(name string) *Var { return &Var{Kind: "ty", Name: id(name)} }

var diffOpts = []cmp.Option{cmp.FilterPath(isLoc, cmp.Ignore())}

func TestWc(t *testing.T) {
	tests := []struct {
		src  string
		want Wc
	}{
		{"T: Debug", &Bound{Self: named("T"), Trait: ref("Debug")}},
		{"Debug(T)", &Bound{Self: named("T"), Trait: ref("Debug")}},
		{"Vec<u32>: Into<u64>", &Bound{Self: named("Vec", named("u32")), Trait: ref("Into", named("u64"))}},
		{"Into(Vec<u32>, u64)", &Bound{Self: named("Vec", named("u32")), Trait: ref("Into", named("u64"))}},
		{
			"<S as Trait1>::Type => T",
			&Normalizes{
				Alias: &AliasTy{Self: named("S"), Trait: ref("Trait1"), Item: id("Type")},
				Ty:    named("T"),
			},
		},
		{
			"<Vec<T> as Iterator>::Item = U",
			&Eq{
				A: &AliasTy{Self: named("Vec", named("T")), Trait: ref("Iterator"), Item: id("Item")},
				B: named("U"),
			},
		},
		{"'a = 'static", &Eq{A: &Lifetime{Name: "a"}, B: &Lifetime{Name: "static"}}},
		{
			"for<ty T> T: Debug",
			&ForAll{Binder: []*Var{tyVar("T")}, Body: &Bound{Self: named("T"), Trait: ref("Debug")}},
		},
		{
			"exists<ty T, lt a> T = u32",
			&Exists{
				Binder: []*Var{tyVar("T"), {Kind: "lt", Name: id("a")}},
				Body:   &Eq{A: named("T"), B: named("u32")},
			},
		},
		{
			"{T: Debug} => Vec<T>: Debug",
			&Implies{
				Hyps: []Wc{&Bound{Self: named("T"), Trait: ref("Debug")}},
				Body: &Bound{Self: named("Vec", named("T")), Trait: ref("Debug")},
			},
		},
		{"{}", &Conj{Wcs: []Wc{}}},
	}
	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			q, err := New().ParseQuery("", strings.NewReader("{} => {"+test.src+"}"))
			if err != nil {
				t.Fatalf("failed to parse: %s", err)
			}
			if diff := cmp.Diff(test.want, q.Goals[0], diffOpts...); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestQuery(t *testing.T) {
	const src = "forall<ty T> exists<ty U> { Iterator(T) } => { <T as Iterator>::Item = U, U: Debug }"
	q, err := New().ParseQuery("q", strings.NewReader(src))
	if err != nil {
		t.Fatalf("failed to parse: %s", err)
	}
	want := &Query{
		ForAll:      []*Var{tyVar("T")},
		Exists:      []*Var{tyVar("U")},
		Assumptions: []Wc{&Bound{Self: named("T"), Trait: ref("Iterator")}},
		Goals: []Wc{
			&Eq{
				A: &AliasTy{Self: named("T"), Trait: ref("Iterator"), Item: id("Item")},
				B: named("U"),
			},
			&Bound{Self: named("U"), Trait: ref("Debug")},
		},
	}
	if diff := cmp.Diff(want, q, diffOpts...); diff != "" {
		t.Error(diff)
	}
}

func TestCrates(t *testing.T) {
	const src = `[
		crate test {
			trait Trait1<> {
				type Type : [];
			}
			trait Trait2<ty T> where T: Trait1 {}
			// Comments are ignored.
			impl<ty T, ty U> Trait2<T> for U where U: Trait1<>, <S as Trait1>::Type => T {}
			struct S {}
			struct Pair<ty A, ty B> { a: A, b: B }
			impl Trait1<> for S {
				type Type = u32;
			}
		}
	]`
	p := New()
	if err := p.Parse("test.fm", strings.NewReader(src)); err != nil {
		t.Fatalf("failed to parse: %s", err)
	}
	want := []*Crate{{
		Name: id("test"),
		Items: []Item{
			&Trait{
				Name:   id("Trait1"),
				Binder: []*Var{},
				Assocs: []*AssocDecl{{Name: id("Type")}},
			},
			&Trait{
				Name:   id("Trait2"),
				Binder: []*Var{tyVar("T")},
				Where:  []Wc{&Bound{Self: named("T"), Trait: ref("Trait1")}},
			},
			&Impl{
				Binder: []*Var{tyVar("T"), tyVar("U")},
				Trait:  ref("Trait2", named("T")),
				Self:   named("U"),
				Where: []Wc{
					&Bound{Self: named("U"), Trait: ref("Trait1")},
					&Normalizes{
						Alias: &AliasTy{Self: named("S"), Trait: ref("Trait1"), Item: id("Type")},
						Ty:    named("T"),
					},
				},
			},
			&Struct{Name: id("S")},
			&Struct{
				Name:   id("Pair"),
				Binder: []*Var{tyVar("A"), tyVar("B")},
				Fields: []*Field{{Name: id("a"), Ty: named("A")}, {Name: id("b"), Ty: named("B")}},
			},
			&Impl{
				Trait:  ref("Trait1"),
				Self:   named("S"),
				Values: []*AssocValue{{Name: id("Type"), Ty: named("u32")}},
			},
		},
	}}
	if diff := cmp.Diff(want, p.Crates(), diffOpts...); diff != "" {
		t.Error(diff)
	}
}

func TestLoc(t *testing.T) {
	p := New()
	if err := p.Parse("a", strings.NewReader("crate a {}\n")); err != nil {
		t.Fatalf("failed to parse: %s", err)
	}
	if err := p.Parse("b", strings.NewReader("crate b {\n\tstruct Foo {}\n}")); err != nil {
		t.Fatalf("failed to parse: %s", err)
	}
	st := p.Files[1].Crates[0].Items[0].(*Struct)
	got := p.LocFiles().Location(st.L).String()
	if want := "b:2.2-15"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src  string
		line int
		col  int
	}{
		{src: "crate {}", line: 1, col: 7},
		{src: "crate a {\n\ttrait T { type A }\n}", line: 2, col: 19},
		{src: "crate a {\n\tenum E {}\n}", line: 2, col: 2},
		{src: "crate a { impl Foo Bar {} }", line: 1, col: 20},
		{src: "crate a { struct A {} } #", line: 1, col: 25},
		{src: "crate a { impl X for Y where T = {} }", line: 1, col: 34},
	}
	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			p := New()
			err := p.Parse("test.fm", strings.NewReader(test.src))
			if err == nil {
				t.Fatalf("got no error, want error")
			}
			perr, ok := err.(parseError)
			if !ok {
				t.Fatalf("got %T, want parseError", err)
			}
			files := loc.Files{&File{P: "test.fm", Length: len(test.src), NLs: newLines(test.src)}}
			l := files.Location(perr.Loc())
			if l.Line[0] != test.line || l.Col[0] != test.col {
				t.Errorf("got error at %s, want %d.%d", l, test.line, test.col)
			}
			if perr.Tree() == nil {
				t.Errorf("no failure tree")
			}
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	err := New().Parse("test.fm", strings.NewReader("crate {}"))
	if err == nil {
		t.Fatalf("got no error, want error")
	}
	if !strings.HasPrefix(err.Error(), "test.fm:1.7: want ") {
		t.Errorf("got %q, want prefix test.fm:1.7: want ", err.Error())
	}
	tree := err.(parseError).Tree()
	if tree.Name != "File" || len(tree.Kids) == 0 {
		t.Errorf("got failure tree %s with %d kids, want File with kids", tree.Name, len(tree.Kids))
	}
}

func TestComments(t *testing.T) {
	p := New()
	if err := p.Parse("a", strings.NewReader("// a\ncrate a {}")); err != nil {
		t.Fatalf("failed to parse: %s", err)
	}
	const src = "crate b { // one\n\tstruct Foo {} // two\n}\n// three"
	if err := p.Parse("b", strings.NewReader(src)); err != nil {
		t.Fatalf("failed to parse: %s", err)
	}
	var got []string
	for _, c := range p.Files[1].Comments {
		got = append(got, p.LocFiles().Location(c).String())
	}
	want := []string{"b:1.11-17", "b:2.16-22", "b:4.1-9"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
	st := p.Files[1].Crates[0].Items[0].(*Struct)
	if got, want := p.LocFiles().Location(st.L).String(), "b:2.2-15"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if n := len(p.Files[0].Comments); n != 1 {
		t.Errorf("got %d comments in a, want 1", n)
	}
}

func TestQueryComments(t *testing.T) {
	p := New()
	if _, err := p.ParseQuery("q", strings.NewReader("{} => {} // done")); err != nil {
		t.Fatalf("failed to parse: %s", err)
	}
	if n := len(p.Files[0].Comments); n != 1 {
		t.Errorf("got %d comments, want 1", n)
	}
}

func newLines(s string) []int {
	var nls []int
	for i, r := range s {
		if r == '\n' {
			nls = append(nls, i)
		}
	}
	return nls
}

func TestQueryErrors(t *testing.T) {
	for _, src := range []string{
		"",
		"{}",
		"{} => ",
		"forall {} => {}",
		"{} => {T}",
		"{} => {Vec<T> => U}",
		"{} => {Debug()}",
	} {
		if _, err := New().ParseQuery("", strings.NewReader(src)); err == nil {
			t.Errorf("ParseQuery(%q): got no error", src)
		}
	}
}

func isLoc(path cmp.Path) bool {
	for _, s := range path {
		if s.String() == ".L" {
			return true
		}
	}
	return false
}
