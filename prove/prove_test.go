package prove

import (
	"bytes"
	"strings"
	"testing"

	"github.com/eaburns/formality/grammar"
	"github.com/google/go-cmp/cmp"
)

type testDB struct {
	clauses    []grammar.Clause
	invariants []grammar.Invariant
}

func (db *testDB) ElaborateRelation(r grammar.Relation) []grammar.Wc {
	if eq, ok := r.(*grammar.Equals); ok {
		return []grammar.Wc{&grammar.Equals{A: eq.B, B: eq.A}}
	}
	return nil
}

func (db *testDB) InvariantsForPredicate(s grammar.Skeleton) []grammar.Invariant {
	var invs []grammar.Invariant
	for _, inv := range db.invariants {
		if inv.Consequence.Skeleton() == s {
			invs = append(invs, inv)
		}
	}
	return invs
}

func (db *testDB) ProgramClauses(s grammar.Skeleton) []grammar.Clause {
	var cls []grammar.Clause
	for _, cl := range db.clauses {
		if cl.Head.Skeleton() == s {
			cls = append(cls, cl)
		}
	}
	return cls
}

func ty(name string, ps ...grammar.Parameter) *grammar.RigidTy {
	return &grammar.RigidTy{Name: name, Params: ps}
}

func pred(trait string, ps ...grammar.Parameter) *grammar.IsImplemented {
	return &grammar.IsImplemented{Trait: trait, Args: ps}
}

func alias(trait, item string, ps ...grammar.Parameter) *grammar.AliasTy {
	return &grammar.AliasTy{Trait: trait, Item: item, Params: ps}
}

func eq(a, b grammar.Parameter) *grammar.Equals { return &grammar.Equals{A: a, B: b} }

func bound(id int, name string) grammar.Var {
	return grammar.Var{Quant: grammar.Bound, Kind: grammar.Ty, ID: id, Name: name}
}

var (
	u32 = ty("u32")
	bT  = bound(100, "T")
	bU  = bound(101, "U")

	debugDB = &testDB{
		clauses: []grammar.Clause{
			{
				Vars: []grammar.Var{bT},
				Body: grammar.Wcs{pred("Debug", bT)},
				Head: pred("Debug", ty("Vec", bT)),
			},
			{Head: pred("Debug", u32)},
		},
	}

	mirrorDB = &testDB{
		clauses: []grammar.Clause{
			{Head: pred("Mirror", u32)},
			{Head: &grammar.NormalizesTo{Alias: alias("Mirror", "Assoc", u32), Ty: u32}},
		},
	}

	iteratorDB = &testDB{
		clauses: []grammar.Clause{
			{
				Vars: []grammar.Var{bT},
				Head: pred("Iterator", ty("Vec", bT)),
			},
			{
				Vars: []grammar.Var{bT},
				Head: &grammar.NormalizesTo{Alias: alias("Iterator", "Item", ty("Vec", bT)), Ty: bT},
			},
		},
	}
)

func TestProve(t *testing.T) {
	tests := []struct {
		name        string
		db          Database
		exists      []grammar.Var
		forall      []grammar.Var
		existsFirst bool
		assumptions grammar.Wcs
		goal        grammar.Wc
		want        []string
	}{
		{
			name: "one impl",
			db:   debugDB,
			goal: pred("Debug", ty("Vec", u32)),
			want: []string{"{env: [], known_true: true, subst: {}}"},
		},
		{
			name: "chained impls",
			db:   debugDB,
			goal: pred("Debug", ty("Vec", ty("Vec", u32))),
			want: []string{"{env: [], known_true: true, subst: {}}"},
		},
		{
			name: "no clause",
			db:   debugDB,
			goal: pred("Debug", ty("bool")),
			want: nil,
		},
		{
			name: "no clause for trait",
			db:   debugDB,
			goal: pred("Display", u32),
			want: nil,
		},
		{
			name:   "normalize or defer",
			db:     mirrorDB,
			exists: []grammar.Var{bU},
			goal:   eq(alias("Mirror", "Assoc", u32), bU),
			want: []string{
				"{env: [?ty_1], known_true: true, subst: {?ty_1 => <u32 as Mirror>::Assoc}}",
				"{env: [?ty_1], known_true: true, subst: {?ty_1 => u32}}",
			},
		},
		{
			name:   "existential found by clause",
			db:     debugDB,
			exists: []grammar.Var{bU},
			goal:   grammar.Wcs{eq(bU, u32), pred("Debug", ty("Vec", bU))},
			want:   []string{"{env: [?ty_1], known_true: true, subst: {?ty_1 => u32}}"},
		},
		{
			name:   "universal below existential",
			db:     debugDB,
			forall: []grammar.Var{bT},
			exists: []grammar.Var{bU},
			goal:   eq(bU, bT),
			want:   []string{"{env: [!ty_1, ?ty_2], known_true: true, subst: {?ty_2 => !ty_1}}"},
		},
		{
			name:        "universal above existential",
			db:          debugDB,
			exists:      []grammar.Var{bU},
			forall:      []grammar.Var{bT},
			existsFirst: true,
			goal:        eq(bU, bT),
			want:        nil,
		},
		{
			name:   "universal from assumption",
			db:     debugDB,
			forall: []grammar.Var{bT},
			goal: &grammar.Implies{
				Hyps: grammar.Wcs{pred("Debug", bT)},
				Body: pred("Debug", ty("Vec", ty("Vec", bT))),
			},
			want: []string{"{env: [!ty_1], known_true: true, subst: {}}"},
		},
		{
			name:   "universal without assumption",
			db:     debugDB,
			forall: []grammar.Var{bT},
			goal:   pred("Debug", ty("Vec", bT)),
			want:   nil,
		},
		{
			name:   "normalize basic",
			db:     iteratorDB,
			forall: []grammar.Var{bT},
			exists: []grammar.Var{bU},
			goal:   eq(alias("Iterator", "Item", ty("Vec", bT)), bU),
			want: []string{
				"{env: [!ty_1, ?ty_2], known_true: true, subst: {?ty_2 => !ty_1}}",
				"{env: [!ty_1, ?ty_2], known_true: true, subst: {?ty_2 => <Vec<!ty_1> as Iterator>::Item}}",
			},
		},
		{
			name:   "normalize to universal",
			db:     iteratorDB,
			forall: []grammar.Var{bT},
			goal:   grammar.Wcs{pred("Iterator", ty("Vec", bT)), eq(alias("Iterator", "Item", ty("Vec", bT)), bT)},
			want:   []string{"{env: [!ty_1], known_true: true, subst: {}}"},
		},
		{
			name:        "normalize by assumption",
			db:          iteratorDB,
			forall:      []grammar.Var{bT},
			assumptions: grammar.Wcs{pred("Iterator", bT), eq(alias("Iterator", "Item", bT), ty("Foo"))},
			goal:        eq(alias("Iterator", "Item", bT), ty("Foo")),
			want:        []string{"{env: [!ty_1], known_true: true, subst: {}}"},
		},
		{
			name:        "projection not normalizable",
			db:          iteratorDB,
			forall:      []grammar.Var{bT},
			exists:      []grammar.Var{bU},
			assumptions: grammar.Wcs{pred("Iterator", bT)},
			goal:        eq(alias("Iterator", "Item", bT), bU),
			want:        []string{"{env: [!ty_1, ?ty_2], known_true: true, subst: {?ty_2 => <!ty_1 as Iterator>::Item}}"},
		},
		{
			name:        "projections with universe repair",
			db:          iteratorDB,
			forall:      []grammar.Var{bT},
			exists:      []grammar.Var{bU},
			assumptions: grammar.Wcs{pred("Iterator", bT)},
			goal:        eq(alias("Iterator", "Item", bT), alias("Iterator", "Item", bU)),
			want: []string{
				"{env: [!ty_1, ?ty_2, ?ty_3], known_true: true, subst: {?ty_2 => <!ty_1 as Iterator>::Item, ?ty_3 => Vec<<!ty_1 as Iterator>::Item>}}",
				"{env: [!ty_1, ?ty_2], known_true: true, subst: {?ty_2 => !ty_1}}",
			},
		},
		{
			name: "exists in goal",
			db:   debugDB,
			goal: &grammar.Exists{
				Vars: []grammar.Var{bU},
				Body: grammar.Wcs{eq(bU, u32), pred("Debug", ty("Vec", bU))},
			},
			want: []string{"{env: [], known_true: true, subst: {}}"},
		},
		{
			name: "forall in goal",
			db:   debugDB,
			goal: &grammar.ForAll{Vars: []grammar.Var{bT}, Body: pred("Debug", bT)},
			want: nil,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			env := NewEnv()
			sub := make(grammar.Subst)
			exists := func() {
				for _, v := range test.exists {
					sub[v] = env.NewExistential(v.Kind)
				}
			}
			if test.existsFirst {
				exists()
			}
			for _, v := range test.forall {
				sub[v] = env.NewUniversal(v.Kind)
			}
			if !test.existsFirst {
				exists()
			}
			got := solutions(Prove(test.db, env, sub.ApplyWcs(test.assumptions), sub.ApplyWc(test.goal)))
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("got:\n%s\nwant:\n%s\ndiff:\n%s",
					strings.Join(got, "\n"), strings.Join(test.want, "\n"), diff)
			}
		})
	}
}

func solutions(s Set) []string {
	var ss []string
	for _, c := range s {
		ss = append(ss, c.String())
	}
	return ss
}

func TestOccursCheck(t *testing.T) {
	env := NewEnv()
	x := env.NewExistential(grammar.Ty)
	p := &prover{db: debugDB, maxDepth: DefaultMaxDepth, maxSize: DefaultMaxSize, inProgress: make(map[string]bool)}
	if s := p.equateVariable(env, nil, x, ty("Vec", x)); len(s) != 0 {
		t.Errorf("equateVariable(%s, Vec<%s>)=%s, want empty", x, x, s)
	}
	if s := Prove(debugDB, env, nil, eq(x, ty("Vec", ty("Vec", x)))); len(s) != 0 {
		t.Errorf("Prove(%s = Vec<Vec<%s>>)=%s, want empty", x, x, s)
	}
}

func TestEquateVariablePanics(t *testing.T) {
	env := NewEnv()
	x := env.NewExistential(grammar.Ty)
	y := env.NewExistential(grammar.Ty)
	p := &prover{db: debugDB, maxDepth: DefaultMaxDepth, maxSize: DefaultMaxSize, inProgress: make(map[string]bool)}
	tests := []struct {
		name string
		v    grammar.Parameter
	}{
		{name: "variable", v: y},
		{name: "not enclosed", v: ty("Vec", grammar.Var{Quant: grammar.Existential, ID: 99})},
		{name: "bound", v: ty("Vec", bT)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("equateVariable(%s, %s) did not panic", x, test.v)
				}
			}()
			p.equateVariable(env, nil, x, test.v)
		})
	}
}

func TestUniverseRepair(t *testing.T) {
	env := NewEnv()
	x := env.NewExistential(grammar.Ty)
	y := env.NewExistential(grammar.Ty)
	got := Prove(debugDB, env, nil, eq(x, ty("Vec", y)))
	want := []string{"{env: [?ty_1, ?ty_2, ?ty_3], known_true: true, subst: {?ty_2 => Vec<?ty_1>, ?ty_3 => ?ty_1}}"}
	if diff := cmp.Diff(want, solutions(got)); diff != "" {
		t.Errorf("got %s, want %v\n%s", got, want, diff)
	}

	env = NewEnv()
	x = env.NewExistential(grammar.Ty)
	u := env.NewUniversal(grammar.Ty)
	if got := Prove(debugDB, env, nil, eq(x, ty("Vec", u))); len(got) != 0 {
		t.Errorf("got %s, want empty", got)
	}
	got = Prove(debugDB, env, grammar.Wcs{eq(u, u32)}, eq(x, ty("Vec", u)))
	want = []string{"{env: [?ty_1, ?ty_2, !ty_3], known_true: true, subst: {?ty_1 => u32, ?ty_2 => Vec<u32>}}"}
	if diff := cmp.Diff(want, solutions(got)); diff != "" {
		t.Errorf("got %s, want %v\n%s", got, want, diff)
	}
}

func TestUniverseSafety(t *testing.T) {
	env := NewEnv()
	t1 := env.NewUniversal(grammar.Ty)
	u := env.NewExistential(grammar.Ty)
	t2 := env.NewUniversal(grammar.Ty)
	v := env.NewExistential(grammar.Ty)
	goals := []grammar.Wc{
		eq(u, ty("Vec", v)),
		eq(v, ty("Vec", u)),
		eq(u, t1),
		eq(v, t2),
		grammar.Wcs{eq(v, ty("Vec", t1)), eq(u, v)},
		eq(alias("Iterator", "Item", ty("Vec", t1)), v),
	}
	for _, goal := range goals {
		for _, c := range Prove(iteratorDB, env, nil, goal) {
			for _, b := range c.Bindings() {
				for _, fv := range grammar.FreeVars(b.Value) {
					if c.env.Universe(fv) > c.env.Universe(b.Var) {
						t.Errorf("%s: %s escapes universe in %s", goal, b, c)
					}
				}
				if !grammar.Eq(c.subst.Apply(b.Value), b.Value) {
					t.Errorf("%s: substitution not idempotent in %s", goal, c)
				}
			}
		}
	}
}

func TestReflexivity(t *testing.T) {
	terms := []grammar.Parameter{
		u32,
		ty("Vec", ty("Vec", u32)),
		alias("Mirror", "Assoc", u32),
		grammar.Static{},
	}
	p := &prover{db: mirrorDB, maxDepth: DefaultMaxDepth, maxSize: DefaultMaxSize, inProgress: make(map[string]bool)}
	for _, term := range terms {
		env := NewEnv()
		s := p.proveEq(env, nil, term, term)
		if len(s) != 1 || !s.Proven() || len(s[0].subst) != 0 {
			t.Errorf("proveEq(%s, %s)=%s, want the trivial solution", term, term, s)
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() string {
		env := NewEnv()
		tv := env.NewUniversal(grammar.Ty)
		u := env.NewExistential(grammar.Ty)
		return Prove(iteratorDB, env, grammar.Wcs{pred("Iterator", tv)},
			eq(alias("Iterator", "Item", tv), alias("Iterator", "Item", u))).String()
	}
	first := run()
	for i := 0; i < 5; i++ {
		if got := run(); got != first {
			t.Fatalf("run %d got %s, want %s", i, got, first)
		}
	}
}

func TestBounds(t *testing.T) {
	// Foo(T) if Foo(Vec<T>) never terminates without a bound.
	db := &testDB{
		clauses: []grammar.Clause{{
			Vars: []grammar.Var{bT},
			Body: grammar.Wcs{pred("Foo", ty("Vec", bT))},
			Head: pred("Foo", bT),
		}},
	}
	if s := Prove(db, NewEnv(), nil, pred("Foo", u32)); len(s) != 0 {
		t.Errorf("got %s, want empty", s)
	}
	if s := Prove(db, NewEnv(), nil, pred("Foo", u32), MaxDepth(4)); len(s) != 0 {
		t.Errorf("MaxDepth(4): got %s, want empty", s)
	}
	s := Prove(db, NewEnv(), nil, pred("Foo", u32), MaxDepth(8), AmbiguousOnOverflow())
	if len(s) == 0 || !s.Ambiguous() {
		t.Errorf("AmbiguousOnOverflow: got %s, want ambiguous", s)
	}
	for _, c := range s {
		if c.KnownTrue() {
			t.Errorf("AmbiguousOnOverflow: got known-true %s", c)
		}
	}
	if s := Prove(debugDB, NewEnv(), nil, pred("Debug", ty("Vec", ty("Vec", u32))), MaxSize(3)); len(s) != 0 {
		t.Errorf("MaxSize(3): got %s, want empty", s)
	}
}

func TestCycle(t *testing.T) {
	loop := grammar.Clause{
		Vars: []grammar.Var{bT},
		Body: grammar.Wcs{pred("Foo", bT)},
		Head: pred("Foo", bT),
	}
	db := &testDB{clauses: []grammar.Clause{loop}}
	if s := Prove(db, NewEnv(), nil, pred("Foo", u32)); len(s) != 0 {
		t.Errorf("got %s, want empty", s)
	}
	db = &testDB{clauses: []grammar.Clause{loop, {Head: pred("Foo", u32)}}}
	if s := Prove(db, NewEnv(), nil, pred("Foo", u32)); !s.Proven() {
		t.Errorf("got %s, want proven", s)
	}
}

func TestInvariants(t *testing.T) {
	// Sub(T) => Super(T)
	db := &testDB{
		invariants: []grammar.Invariant{{
			Vars:        []grammar.Var{bT},
			Premise:     pred("Sub", bT),
			Consequence: pred("Super", bT),
		}},
	}
	env := NewEnv()
	tv := env.NewUniversal(grammar.Ty)
	if s := Prove(db, env, grammar.Wcs{pred("Sub", tv)}, pred("Super", tv)); !s.Proven() {
		t.Errorf("got %s, want proven", s)
	}
	if s := Prove(db, env, nil, pred("Super", tv)); len(s) != 0 {
		t.Errorf("got %s, want empty", s)
	}
}

func TestProvePanicsNotEnclosed(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Prove did not panic")
		}
	}()
	x := grammar.Var{Quant: grammar.Existential, ID: 5}
	Prove(debugDB, NewEnv(), nil, pred("Debug", x))
}

func TestTrace(t *testing.T) {
	var b bytes.Buffer
	Prove(debugDB, NewEnv(), nil, pred("Debug", ty("Vec", u32)), Trace(&b, -1))
	for _, want := range []string{"prove Debug(Vec<u32>)", "clause for<ty T> {Debug(T)} => Debug(Vec<T>)", "prove Debug(u32)"} {
		if !strings.Contains(b.String(), want) {
			t.Errorf("trace does not contain %q:\n%s", want, b.String())
		}
	}
}
