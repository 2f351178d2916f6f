package prove

import (
	"testing"

	"github.com/eaburns/formality/grammar"
	"github.com/google/go-cmp/cmp"
)

func TestInsertFreshBefore(t *testing.T) {
	env := NewEnv()
	a := env.NewUniversal(grammar.Ty)
	b := env.NewExistential(grammar.Ty)
	c := env.NewExistential(grammar.Lt)
	y := env.InsertFreshBefore(grammar.Existential, grammar.Ty, env.Universe(b))

	want := []grammar.Var{a, y, b, c}
	if diff := cmp.Diff(want, env.Vars()); diff != "" {
		t.Errorf("Vars()=%s, want %v\n%s", env, want, diff)
	}
	if env.Universe(y) >= env.Universe(b) {
		t.Errorf("Universe(%s)=%d, want < Universe(%s)=%d",
			y, env.Universe(y), b, env.Universe(b))
	}
	if env.Universe(a) >= env.Universe(y) {
		t.Errorf("Universe(%s)=%d, want > Universe(%s)=%d",
			y, env.Universe(y), a, env.Universe(a))
	}
	seen := make(map[int]bool)
	for _, v := range env.Vars() {
		if seen[v.ID] {
			t.Errorf("duplicate ID %d in %s", v.ID, env)
		}
		seen[v.ID] = true
	}
}

func TestOrderByUniverse(t *testing.T) {
	env := NewEnv()
	a := env.NewExistential(grammar.Ty)
	b := env.NewExistential(grammar.Ty)
	if lo, hi := env.OrderByUniverse(b, a); lo != a || hi != b {
		t.Errorf("OrderByUniverse(%s, %s)=%s, %s, want %s, %s", b, a, lo, hi, a, b)
	}
	if lo, hi := env.OrderByUniverse(a, b); lo != a || hi != b {
		t.Errorf("OrderByUniverse(%s, %s)=%s, %s, want %s, %s", a, b, lo, hi, a, b)
	}
}

func TestEncloses(t *testing.T) {
	env := NewEnv()
	a := env.NewExistential(grammar.Ty)
	other := NewEnv()
	other.NewExistential(grammar.Ty)
	missing := other.NewExistential(grammar.Ty)
	bound := grammar.Var{Quant: grammar.Bound, ID: 10, Name: "T"}

	tests := []struct {
		term grammar.Term
		want bool
	}{
		{term: &grammar.RigidTy{Name: "u32"}, want: true},
		{term: &grammar.RigidTy{Name: "Vec", Params: []grammar.Parameter{a}}, want: true},
		{term: &grammar.RigidTy{Name: "Vec", Params: []grammar.Parameter{missing}}, want: false},
		{term: &grammar.RigidTy{Name: "Vec", Params: []grammar.Parameter{bound}}, want: false},
		{
			term: &grammar.ForAll{
				Vars: []grammar.Var{bound},
				Body: &grammar.Equals{A: bound, B: a},
			},
			want: true,
		},
	}
	for _, test := range tests {
		if got := env.Encloses(test.term); got != test.want {
			t.Errorf("Encloses(%s)=%v, want %v", test.term, got, test.want)
		}
	}
}

func TestUniversePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Universe did not panic")
		}
	}()
	NewEnv().Universe(grammar.Var{Quant: grammar.Existential, ID: 1})
}

func TestCloneIndependent(t *testing.T) {
	env := NewEnv()
	env.NewExistential(grammar.Ty)
	c := env.Clone()
	v := c.NewUniversal(grammar.Ty)
	if env.Contains(v) {
		t.Errorf("%s contains %s added to its clone", env, v)
	}
	if env.Len() != 1 || c.Len() != 2 {
		t.Errorf("Len()=%d, %d, want 1, 2", env.Len(), c.Len())
	}
}
