package prove

import (
	"testing"

	"github.com/eaburns/formality/grammar"
)

func TestSeq(t *testing.T) {
	env := NewEnv()
	x := env.NewExistential(grammar.Ty)
	y := env.NewExistential(grammar.Ty)
	c1 := From(env, []Binding{{Var: y, Value: ty("Vec", x)}})
	c2 := From(env, []Binding{{Var: x, Value: u32}}).Ambiguous()

	got := c1.Seq(c2).String()
	want := "{env: [?ty_1, ?ty_2], known_true: false, subst: {?ty_1 => u32, ?ty_2 => Vec<u32>}}"
	if got != want {
		t.Errorf("Seq=%s, want %s", got, want)
	}
}

func TestPopSubst(t *testing.T) {
	env := NewEnv()
	bound := env.NewExistential(grammar.Ty)
	used := env.NewExistential(grammar.Ty)
	unused := env.NewExistential(grammar.Ty)
	q := env.NewExistential(grammar.Ty)
	c := From(env, []Binding{
		{Var: bound, Value: u32},
		{Var: q, Value: ty("Vec", used)},
	})

	got := c.popSubst([]grammar.Var{bound, used, unused}).String()
	want := "{env: [?ty_1, ?ty_2], known_true: true, subst: {?ty_2 => Vec<?ty_1>}}"
	if got != want {
		t.Errorf("popSubst=%s, want %s", got, want)
	}
}

func TestCanonicalEquality(t *testing.T) {
	build := func(extra int) *Constraints {
		env := NewEnv()
		for i := 0; i < extra; i++ {
			env.remove([]grammar.Var{env.NewExistential(grammar.Ty)})
		}
		x := env.NewUniversal(grammar.Ty)
		y := env.NewExistential(grammar.Ty)
		return From(env, []Binding{{Var: y, Value: ty("Vec", x)}})
	}
	a, b := build(0), build(3)
	if a.Env().Vars()[0] == b.Env().Vars()[0] {
		t.Fatalf("variables not renumbered")
	}
	if a.String() != b.String() {
		t.Errorf("%s != %s", a, b)
	}
	var sb setBuilder
	sb.add(a, b)
	if s := sb.set(); len(s) != 1 {
		t.Errorf("set %s, want one element", s)
	}
}

func TestFromPanics(t *testing.T) {
	env := NewEnv()
	y := env.NewExistential(grammar.Ty)
	x := env.NewExistential(grammar.Ty)
	u := env.NewUniversal(grammar.Ty)
	tests := []struct {
		name     string
		bindings []Binding
	}{
		{name: "universal", bindings: []Binding{{Var: u, Value: u32}}},
		{name: "escape", bindings: []Binding{{Var: x, Value: ty("Vec", u)}}},
		{
			name: "not idempotent",
			bindings: []Binding{
				{Var: x, Value: ty("Vec", y)},
				{Var: y, Value: u32},
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("From(%v) did not panic", test.bindings)
				}
			}()
			From(env, test.bindings)
		})
	}
}
