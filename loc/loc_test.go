package loc

import "testing"

type testFile struct {
	path string
	text string
}

func (f testFile) Path() string { return f.path }
func (f testFile) Len() int     { return len(f.text) }

func (f testFile) NewLines() []int {
	var nls []int
	for i, r := range f.text {
		if r == '\n' {
			nls = append(nls, i)
		}
	}
	return nls
}

func TestLocation(t *testing.T) {
	files := Files{
		testFile{path: "a", text: "abc\ndef\n"},
		testFile{path: "b", text: "xy\nz"},
	}
	tests := []struct {
		loc  Loc
		want string
	}{
		{loc: Loc{}, want: ""},
		{loc: Loc{1, 1}, want: "a:1.1"},
		{loc: Loc{1, 3}, want: "a:1.1-3"},
		{loc: Loc{5, 7}, want: "a:2.1-3"},
		{loc: Loc{3, 6}, want: "a:1.3-2.2"},
		{loc: Loc{9, 10}, want: "b:1.1-2"},
		{loc: Loc{12, 12}, want: "b:2.1"},
	}
	for _, test := range tests {
		if got := files.Location(test.loc).String(); got != test.want {
			t.Errorf("Location(%v)=%q, want %q", test.loc, got, test.want)
		}
	}
}

func TestSpan(t *testing.T) {
	if got := Span(Loc{3, 5}, Loc{8, 10}); got != (Loc{3, 10}) {
		t.Errorf("Span=%v, want [3 10]", got)
	}
}
