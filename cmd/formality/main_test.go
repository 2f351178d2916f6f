package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const coreSrc = `
crate core {
	trait Debug {}
	trait Eq {}
	trait Ord where Self: Eq {}
	struct Vec<ty T> {}
	impl Debug for u32 {}
	impl<ty T> Debug for Vec<T> where T: Debug {}
}
`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestProve(t *testing.T) {
	core := writeFile(t, t.TempDir(), "core.fm", coreSrc)
	tests := []struct {
		query string
		want  string
	}{
		{
			query: "{} => {Debug(Vec<u32>)}",
			want:  "proven\n{env: [], known_true: true, subst: {}}\n",
		},
		{
			query: "{} => {Debug(bool)}",
			want:  "unprovable\n",
		},
		{
			query: "forall<ty T> {Ord(T)} => {Eq(T)}",
			want:  "proven\n{env: [!ty_1], known_true: true, subst: {}}\n",
		},
	}
	for _, test := range tests {
		t.Run(test.query, func(t *testing.T) {
			stdout, _, err := execute(t, "prove", "-q", test.query, core)
			require.NoError(t, err)
			assert.Equal(t, test.want, stdout)
		})
	}
}

func TestProveTrace(t *testing.T) {
	core := writeFile(t, t.TempDir(), "core.fm", coreSrc)
	_, stderr, err := execute(t, "prove", "--trace", "-1", "-q", "{} => {Debug(Vec<u32>)}", core)
	require.NoError(t, err)
	assert.Contains(t, stderr, "prove Debug(Vec<u32>)")
	assert.Contains(t, stderr, "prove Debug(u32)")
}

func TestProveErrors(t *testing.T) {
	dir := t.TempDir()
	core := writeFile(t, dir, "core.fm", coreSrc)
	bad := writeFile(t, dir, "bad.fm", "crate a { impl Show for u8 {} }")
	tests := []struct {
		name string
		args []string
		err  string
	}{
		{name: "no query", args: []string{"prove", core}, err: "query"},
		{name: "no files", args: []string{"prove", "-q", "{} => {}"}, err: "requires at least 1 arg"},
		{name: "missing file", args: []string{"prove", "-q", "{} => {}", filepath.Join(dir, "nope.fm")}, err: "nope.fm"},
		{name: "check error", args: []string{"prove", "-q", "{} => {}", bad}, err: "Show: not found"},
		{name: "query syntax", args: []string{"prove", "-q", "{} =>", core}, err: "query"},
		{name: "query check", args: []string{"prove", "-q", "{} => {Show(u8)}", core}, err: "Show: not found"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := execute(t, test.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.err)
		})
	}
}

func TestClauses(t *testing.T) {
	core := writeFile(t, t.TempDir(), "core.fm", coreSrc)
	stdout, _, err := execute(t, "clauses", core)
	require.NoError(t, err)
	want := "clauses:\n" +
		"\tfor<> {} => Debug(u32)\n" +
		"\tfor<ty T> {Debug(T)} => Debug(Vec<T>)\n" +
		"invariants:\n" +
		"\tfor<ty Self> {Ord(Self)} => Eq(Self)\n"
	assert.Equal(t, want, stdout)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "core.fm", coreSrc)
	suite := writeFile(t, dir, "suite.yaml", `
files: [core.fm]
goals:
  - name: vec
    query: "{} => {Debug(Vec<u32>)}"
  - name: bool
    query: "{} => {Debug(bool)}"
    expect: unprovable
  - name: supertrait
    query: "forall<ty T> {Ord(T)} => {Eq(T)}"
    solutions: ["{env: [!ty_1], known_true: true, subst: {}}"]
`)
	stdout, _, err := execute(t, "run", "-j", "2", suite)
	require.NoError(t, err)
	assert.Equal(t, "PASS vec\nPASS bool\nPASS supertrait\n", stdout)
}

func TestRunFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "core.fm", coreSrc)
	suite := writeFile(t, dir, "suite.yaml", `
files: [core.fm]
goals:
  - name: vec
    query: "{} => {Debug(Vec<u32>)}"
  - name: bool
    query: "{} => {Debug(bool)}"
`)
	stdout, _, err := execute(t, "run", suite)
	require.Error(t, err)
	assert.Equal(t, "1 goals failed", err.Error())
	assert.Contains(t, stdout, "PASS vec\n")
	assert.Contains(t, stdout, "FAIL bool\n\tbool: got unprovable, want proven\n")
}

func TestRunVerboseLogs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "core.fm", coreSrc)
	suite := writeFile(t, dir, "suite.yaml", "files: [core.fm]\ngoals: [{name: u32, query: \"{} => {Debug(u32)}\"}]\n")
	_, stderr, err := execute(t, "run", "-v", suite)
	require.NoError(t, err)
	assert.Contains(t, stderr, "suite loaded")
	assert.Contains(t, stderr, "suite done")
	assert.Contains(t, stderr, "passed=1")
}

func TestTracingForcesOneJob(t *testing.T) {
	var l limits
	assert.False(t, l.tracing())

	l.trace = -1
	assert.True(t, l.tracing())

	l.trace = 0
	require.NoError(t, flag.Set("trace.depth", "3"))
	t.Cleanup(func() { flag.Set("trace.depth", "0") })
	assert.True(t, l.tracing())
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.yaml", "goals: [{name: a, query: x}]")
	_, _, err := execute(t, "run", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no program or files")

	_, _, err = execute(t, "run", "-j", "0", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--jobs must be at least 1")
}

func TestFmt(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.fm", "crate a { trait Debug{}\n impl Debug for u8{} }")
	const want = "crate a {\n\ttrait Debug {}\n\timpl Debug for u8 {}\n}\n"

	stdout, _, err := execute(t, "fmt", path)
	require.NoError(t, err)
	assert.Equal(t, want, stdout)

	stdout, _, err = execute(t, "fmt", "-w", path)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, string(data))

	bad := writeFile(t, dir, "bad.fm", "crate {}")
	_, _, err = execute(t, "fmt", "-w", bad)
	require.Error(t, err)
	data, err = os.ReadFile(bad)
	require.NoError(t, err)
	assert.Equal(t, "crate {}", string(data), "files with errors are not rewritten")
}

func TestFmtComments(t *testing.T) {
	const src = "crate a { trait Debug{} // kept\n impl Debug for u8{} }"
	path := writeFile(t, t.TempDir(), "a.fm", src)

	stdout, _, err := execute(t, "fmt", path)
	require.NoError(t, err)
	assert.Equal(t, "crate a {\n\ttrait Debug {}\n\timpl Debug for u8 {}\n}\n", stdout)

	_, _, err = execute(t, "fmt", "-w", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a.fm:1.25-32")
	assert.Contains(t, err.Error(), "comments would be dropped")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, src, string(data), "files with comments are not rewritten")
}

func TestParse(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.fm", "crate a { trait Debug {} }")
	stdout, _, err := execute(t, "parse", "--locs", "-q", "{} => {Debug(u8)}", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Crate{\t(")
	assert.Contains(t, stdout, "Name: Ident(Debug)")
	assert.Contains(t, stdout, "Query{\t(query:1.1-18)")

	_, _, err = execute(t, "parse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a file or --query is required")
}
