package parser

import (
	"strings"
	"testing"
)

func TestPrint(t *testing.T) {
	p := New()
	if err := p.Parse("test.fm", strings.NewReader("crate core {\n\tstruct Vec<ty T> {}\n}")); err != nil {
		t.Fatalf("failed to parse: %s", err)
	}
	var s strings.Builder
	if err := p.Files[0].Print(&s); err != nil {
		t.Fatalf("failed to print: %s", err)
	}
	const want = `File{
  Path: test.fm
  Crates: {
    Crate{
      Name: Ident(core)
      Items: {
        Struct{
          Name: Ident(Vec)
          Binder: {
            Var(ty T),
          }
        },
      }
    },
  }
}
`
	if s.String() != want {
		t.Errorf("got\n%s\nwant\n%s", s.String(), want)
	}
}

func TestPrintLocs(t *testing.T) {
	p := New()
	if err := p.Parse("test.fm", strings.NewReader("crate core {\n\tstruct Vec<ty T> {}\n}")); err != nil {
		t.Fatalf("failed to parse: %s", err)
	}
	var s strings.Builder
	if err := p.Files[0].Print(&s, PrintLocs(p.LocFiles())); err != nil {
		t.Fatalf("failed to print: %s", err)
	}
	for _, want := range []string{
		"Crate{\t(test.fm:1.1-3.2)",
		"Struct{\t(test.fm:2.2-21)",
		"Var(ty T)\t(test.fm:2.13-17)",
	} {
		if !strings.Contains(s.String(), want) {
			t.Errorf("missing %q in\n%s", want, s.String())
		}
	}
}

func TestPrintQuery(t *testing.T) {
	p := New()
	if _, err := p.ParseQuery("q", strings.NewReader("{} => {'a = 'static}")); err != nil {
		t.Fatalf("failed to parse: %s", err)
	}
	var s strings.Builder
	if err := p.Files[0].Print(&s); err != nil {
		t.Fatalf("failed to print: %s", err)
	}
	for _, want := range []string{"Query{", "Assumptions: {\n", "Eq{", "A: Lifetime('a)", "B: Lifetime('static)"} {
		if !strings.Contains(s.String(), want) {
			t.Errorf("missing %q in\n%s", want, s.String())
		}
	}
}
