package grammar

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	t1 = Var{Quant: Universal, Kind: Ty, ID: 1}
	u2 = Var{Quant: Existential, Kind: Ty, ID: 2}
	bT = Var{Quant: Bound, Kind: Ty, ID: 3, Name: "T"}
)

func rigid(name string, ps ...Parameter) *RigidTy { return &RigidTy{Name: name, Params: ps} }

func TestString(t *testing.T) {
	tests := []struct {
		term Term
		want string
	}{
		{term: t1, want: "!ty_1"},
		{term: u2, want: "?ty_2"},
		{term: bT, want: "T"},
		{term: Var{Quant: Bound, Kind: Lt, ID: 7}, want: "^lt_7"},
		{term: Static{}, want: "'static"},
		{term: rigid("u32"), want: "u32"},
		{term: rigid("Vec", rigid("u32")), want: "Vec<u32>"},
		{term: rigid("Map", t1, u2), want: "Map<!ty_1, ?ty_2>"},
		{
			term: &AliasTy{Trait: "Mirror", Item: "Assoc", Params: []Parameter{rigid("u32")}},
			want: "<u32 as Mirror>::Assoc",
		},
		{
			term: &AliasTy{Trait: "Trait2", Item: "Item", Params: []Parameter{rigid("S"), bT}},
			want: "<S as Trait2<T>>::Item",
		},
		{
			term: &IsImplemented{Trait: "Debug", Args: []Parameter{rigid("Vec", rigid("u32"))}},
			want: "Debug(Vec<u32>)",
		},
		{
			term: &NormalizesTo{
				Alias: &AliasTy{Trait: "Iterator", Item: "Item", Params: []Parameter{t1}},
				Ty:    u2,
			},
			want: "<!ty_1 as Iterator>::Item => ?ty_2",
		},
		{term: &Equals{A: t1, B: u2}, want: "!ty_1 = ?ty_2"},
		{
			term: Clause{
				Vars: []Var{bT},
				Body: Wcs{&IsImplemented{Trait: "Debug", Args: []Parameter{bT}}},
				Head: &IsImplemented{Trait: "Debug", Args: []Parameter{rigid("Vec", bT)}},
			}.Wc(),
			want: "for<ty T> {Debug(T)} => Debug(Vec<T>)",
		},
		{
			term: &Exists{Vars: []Var{bT}, Body: Wcs{&Equals{A: bT, B: rigid("u32")}}},
			want: "exists<ty T> {T = u32}",
		},
	}
	for _, test := range tests {
		if got := test.term.String(); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}
}

func TestApply(t *testing.T) {
	s := Subst{u2: rigid("u32"), bT: rigid("bool")}
	tests := []struct {
		wc   Wc
		want string
	}{
		{
			wc:   &Equals{A: rigid("Vec", u2), B: t1},
			want: "Vec<u32> = !ty_1",
		},
		{
			wc:   &IsImplemented{Trait: "Foo", Args: []Parameter{u2, bT}},
			want: "Foo(u32, bool)",
		},
		{
			// bT is bound by the ForAll, so it is not replaced.
			wc: &ForAll{
				Vars: []Var{bT},
				Body: &IsImplemented{Trait: "Foo", Args: []Parameter{u2, bT}},
			},
			want: "for<ty T> Foo(u32, T)",
		},
		{
			wc: &Implies{
				Hyps: Wcs{&Equals{A: u2, B: u2}},
				Body: &NormalizesTo{
					Alias: &AliasTy{Trait: "Iterator", Item: "Item", Params: []Parameter{u2}},
					Ty:    bT,
				},
			},
			want: "{u32 = u32} => <u32 as Iterator>::Item => bool",
		},
	}
	for _, test := range tests {
		if got := s.ApplyWc(test.wc).String(); got != test.want {
			t.Errorf("%s: got %q, want %q", test.wc, got, test.want)
		}
	}
}

func TestFreeVars(t *testing.T) {
	wc := &ForAll{
		Vars: []Var{bT},
		Body: Wcs{
			&IsImplemented{Trait: "Foo", Args: []Parameter{u2, bT}},
			&Equals{A: rigid("Vec", t1), B: u2},
		},
	}
	got := FreeVars(wc)
	want := []Var{u2, t1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FreeVars(%s)=%v, want %v\n%s", wc, got, want, diff)
	}
	if !Occurs(t1, wc) {
		t.Errorf("Occurs(%s, %s)=false, want true", t1, wc)
	}
	if Occurs(bT, wc) {
		t.Errorf("Occurs(%s, %s)=true, want false", bT, wc)
	}
}

func TestEqAndSize(t *testing.T) {
	a := rigid("Vec", &AliasTy{Trait: "It", Item: "Item", Params: []Parameter{t1}})
	b := rigid("Vec", &AliasTy{Trait: "It", Item: "Item", Params: []Parameter{t1}})
	if !Eq(a, b) {
		t.Errorf("Eq(%s, %s)=false, want true", a, b)
	}
	if c := rigid("Vec", t1); Eq(a, c) {
		t.Errorf("Eq(%s, %s)=true, want false", a, c)
	}
	if n := Size(a); n != 3 {
		t.Errorf("Size(%s)=%d, want 3", a, n)
	}
	p := &NormalizesTo{Alias: &AliasTy{Trait: "It", Item: "Item", Params: []Parameter{t1}}, Ty: u2}
	want := []Parameter{t1, u2}
	if diff := cmp.Diff(want, p.Params()); diff != "" {
		t.Errorf("Params()=%v, want %v\n%s", p.Params(), want, diff)
	}
}
