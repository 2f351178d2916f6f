package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormat(t *testing.T) {
	const src = `crate test { trait Trait1<> { type Type : []; }
		trait Trait2<ty T> where T: Trait1 {}
		trait Iterator { type Item : [Trait1, Trait2<u8>]; }
		// Comments are dropped.
		impl<ty T, ty U> Trait2<T> for U where U: Trait1<>, <S as Trait1>::Type => T {}
		struct S {}
		struct Ref<lt a, ty T> where T: Trait1 { r: T, l: 'a, }
		impl Trait1 for S { type Type = u32; }
	}
	crate empty {}`
	const want = `crate test {
	trait Trait1<> {
		type Type;
	}
	trait Trait2<ty T> where T: Trait1 {}
	trait Iterator {
		type Item : [Trait1, Trait2<u8>];
	}
	impl<ty T, ty U> Trait2<T> for U where U: Trait1, <S as Trait1>::Type => T {}
	struct S {}
	struct Ref<lt a, ty T> where T: Trait1 {
		r: T,
		l: 'a,
	}
	impl Trait1 for S {
		type Type = u32;
	}
}

crate empty {}
`
	p := New()
	if err := p.Parse("test.fm", strings.NewReader(src)); err != nil {
		t.Fatalf("failed to parse: %s", err)
	}
	var s strings.Builder
	if err := Format(&s, p.Crates()); err != nil {
		t.Fatalf("failed to format: %s", err)
	}
	if s.String() != want {
		t.Errorf("got\n%s\nwant\n%s", s.String(), want)
	}

	re := New()
	if err := re.Parse("formatted.fm", strings.NewReader(s.String())); err != nil {
		t.Fatalf("failed to parse formatted source: %s", err)
	}
	if diff := cmp.Diff(p.Crates(), re.Crates(), diffOpts...); diff != "" {
		t.Errorf("formatted source parses differently:\n%s", diff)
	}
}

func TestFormatQuery(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"{}=>{}", "{} => {}\n"},
		{"{} => {Debug(u32)}", "{} => {u32: Debug}\n"},
		{
			"forall<ty T> exists<ty U> { Iterator(T) } => { <T as Iterator>::Item = U, U: Debug }",
			"forall<ty T> exists<ty U> {T: Iterator} => {<T as Iterator>::Item = U, U: Debug}\n",
		},
		{
			"{for<ty T> {Debug(T)} => Debug(Vec<T>)} => {exists<lt a> 'a = 'static, {}}",
			"{for<ty T> {T: Debug} => Vec<T>: Debug} => {exists<lt a> 'a = 'static, {}}\n",
		},
		{
			"forall<> {} => {<u8 as Into<u16>>::Out => u16}",
			"forall<> {} => {<u8 as Into<u16>>::Out => u16}\n",
		},
	}
	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			q, err := New().ParseQuery("q", strings.NewReader(test.src))
			if err != nil {
				t.Fatalf("failed to parse: %s", err)
			}
			var s strings.Builder
			if err := FormatQuery(&s, q); err != nil {
				t.Fatalf("failed to format: %s", err)
			}
			if s.String() != test.want {
				t.Errorf("got %q, want %q", s.String(), test.want)
			}
			re, err := New().ParseQuery("formatted", strings.NewReader(s.String()))
			if err != nil {
				t.Fatalf("failed to parse formatted query: %s", err)
			}
			if diff := cmp.Diff(q, re, diffOpts...); diff != "" {
				t.Errorf("formatted query parses differently:\n%s", diff)
			}
		})
	}
}
