package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/eaburns/formality/prove"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const suiteSrc = `
program: |
  crate core {
    trait Debug {}
    trait Iterator { type Item : []; }
    struct Vec<ty T> {}
    impl Debug for u32 {}
    impl<ty T> Debug for Vec<T> where T: Debug {}
    impl<ty T> Iterator for Vec<T> { type Item = T; }
  }
max_depth: 16
goals:
  - name: vec of u32
    query: "{} => {Debug(Vec<u32>)}"
    solutions:
      - "{env: [], known_true: true, subst: {}}"
  - name: bool
    query: "{} => {Debug(bool)}"
    expect: unprovable
  - name: item
    query: "exists<ty U> {} => {<Vec<u32> as Iterator>::Item = U}"
    expect: ambiguous
    solutions:
      - "{env: [?ty_1], known_true: true, subst: {?ty_1 => <Vec<u32> as Iterator>::Item}}"
      - "{env: [?ty_1], known_true: true, subst: {?ty_1 => u32}}"
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(suiteSrc), "suite.yaml")
	require.NoError(t, err)
	assert.Equal(t, "suite.yaml", s.Path)
	assert.Equal(t, 16, s.MaxDepth)
	assert.Equal(t, prove.DefaultMaxSize, s.MaxSize)
	require.Len(t, s.Goals, 3)
	assert.Equal(t, Proven, s.Goals[0].Expect, "expect defaults to proven")
	assert.Equal(t, Unprovable, s.Goals[1].Expect)
	assert.Equal(t, Ambiguous, s.Goals[2].Expect)
	assert.Len(t, s.Opts(), 2)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		err  string
	}{
		{
			name: "bad yaml",
			src:  "goals: [",
			err:  "parsing suite.yaml",
		},
		{
			name: "no program",
			src:  "goals: [{name: a, query: x}]",
			err:  "no program or files",
		},
		{
			name: "no goals",
			src:  "program: x",
			err:  "no goals",
		},
		{
			name: "no name",
			src:  "program: x\ngoals: [{query: x}]",
			err:  "goals[0]: name is required",
		},
		{
			name: "no query",
			src:  "program: x\ngoals: [{name: a}]",
			err:  "goals[0] (a): query is required",
		},
		{
			name: "duplicate name",
			src:  "program: x\ngoals: [{name: a, query: x}, {name: a, query: y}]",
			err:  `name "a" is also goals[0]`,
		},
		{
			name: "bad expect",
			src:  "program: x\ngoals: [{name: a, query: x, expect: maybe}]",
			err:  `bad expect "maybe"`,
		},
		{
			name: "unprovable with solutions",
			src:  "program: x\ngoals: [{name: a, query: x, expect: unprovable, solutions: [s]}]",
			err:  "unprovable goals have no solutions",
		},
		{
			name: "negative depth",
			src:  "program: x\nmax_depth: -1\ngoals: [{name: a, query: x}]",
			err:  "max_depth must not be negative",
		},
		{
			name: "negative size",
			src:  "program: x\nmax_size: -1\ngoals: [{name: a, query: x}]",
			err:  "max_size must not be negative",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.src), "suite.yaml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.err)
		})
	}
}

func TestCompileAndCheck(t *testing.T) {
	s, err := Parse([]byte(suiteSrc), "suite.yaml")
	require.NoError(t, err)
	c, err := s.Compile()
	require.NoError(t, err)
	require.Len(t, c.Queries, len(s.Goals))
	for i, g := range s.Goals {
		assert.NoError(t, g.Check(c.Solve(i)), g.Name)
	}
}

func TestCheckMismatch(t *testing.T) {
	s, err := Parse([]byte(suiteSrc), "suite.yaml")
	require.NoError(t, err)
	c, err := s.Compile()
	require.NoError(t, err)

	g := s.Goals[1]
	g.Expect = Proven
	err = g.Check(c.Solve(1))
	require.Error(t, err)
	assert.Equal(t, "bool: got unprovable, want proven", err.Error())

	g = s.Goals[2]
	g.Solutions = g.Solutions[:1]
	err = g.Check(c.Solve(2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item: got solutions")
}

func TestCompileFiles(t *testing.T) {
	dir := t.TempDir()
	prog := "crate core { trait Debug {} impl Debug for u8 {} }"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "core.fm"), []byte(prog), 0o644))
	src := "files: [core.fm]\ngoals: [{name: u8, query: \"{} => {Debug(u8)}\"}]"
	path := filepath.Join(dir, "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	c, err := s.Compile()
	require.NoError(t, err)
	assert.NoError(t, s.Goals[0].Check(c.Solve(0)))
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		err  string
	}{
		{
			name: "syntax error",
			src:  "program: \"crate {}\"\ngoals: [{name: a, query: \"{} => {}\"}]",
			err:  "suite.yaml:program",
		},
		{
			name: "check error",
			src:  "program: \"crate a { impl Debug for u8 {} }\"\ngoals: [{name: a, query: \"{} => {}\"}]",
			err:  "Debug: not found",
		},
		{
			name: "query syntax error",
			src:  "program: \"crate a {}\"\ngoals: [{name: a, query: \"{} =>\"}]",
			err:  "suite.yaml:a",
		},
		{
			name: "query check error",
			src:  "program: \"crate a {}\"\ngoals: [{name: a, query: \"{} => {Debug(u8)}\"}]",
			err:  "Debug: not found",
		},
		{
			name: "missing file",
			src:  "files: [nope.fm]\ngoals: [{name: a, query: \"{} => {}\"}]",
			err:  "nope.fm",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, err := Parse([]byte(test.src), "suite.yaml")
			require.NoError(t, err)
			_, err = s.Compile()
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.err)
		})
	}
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, Unprovable, OutcomeOf(nil))
	assert.Equal(t, Proven, OutcomeOf(prove.Set{prove.None(prove.NewEnv())}))
	assert.Equal(t, Ambiguous, OutcomeOf(prove.Set{prove.None(prove.NewEnv()).Ambiguous()}))
}
