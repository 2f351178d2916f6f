// Package parser parses programs and queries.
//
// A program is a list of crates of trait, struct, and impl declarations:
//
//	crate core {
//		trait Iterator { type Item : []; }
//		struct Vec<ty T> {}
//		impl<ty T> Iterator for Vec<T> { type Item = T; }
//	}
//
// A query is a goal with its variables and assumptions:
//
//	forall<ty T> exists<ty U> { Iterator(T) } => { <T as Iterator>::Item = U }
package parser

import (
	"io"
	"io/ioutil"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/eaburns/formality/loc"
	"github.com/eaburns/peggy/peg"
)

//go:generate peggy -t=false -o grammar.go grammar.peggy

// A Parser parses source code files.
type Parser struct {
	Files []*File
	offs  int

	// comments collects comment locations during the current parse.
	comments []loc.Loc
}

// New returns a new parser.
func New() *Parser { return &Parser{offs: 1} }

// Crates returns the crates of all parsed program files.
func (p *Parser) Crates() []*Crate {
	var cs []*Crate
	for _, f := range p.Files {
		cs = append(cs, f.Crates...)
	}
	return cs
}

// LocFiles returns the parsed files for resolving locations.
func (p *Parser) LocFiles() loc.Files {
	fs := make(loc.Files, len(p.Files))
	for i, f := range p.Files {
		fs[i] = f
	}
	return fs
}

// Parse parses a program file from an io.Reader.
// The first argument is the file path or "" if unspecified.
func (p *Parser) Parse(path string, r io.Reader) error {
	_, err := p.parse(path, r, false)
	return err
}

// ParseFile parses a program from a file path.
func (p *Parser) ParseFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return p.Parse(path, f)
}

// ParseQuery parses a query from an io.Reader.
// The first argument is the file path or "" if unspecified.
func (p *Parser) ParseQuery(path string, r io.Reader) (*Query, error) {
	f, err := p.parse(path, r, true)
	if err != nil {
		return nil, err
	}
	return f.Query, nil
}

func (p *Parser) parse(path string, r io.Reader, query bool) (*File, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	accepts, fail, action := _FileAccepts, _FileFail, _FileAction
	if query {
		accepts, fail, action = _QueryFileAccepts, _QueryFileFail, _QueryFileAction
	}
	_p := _NewParser(string(data))
	_p.data = p
	if pos, perr := accepts(_p, 0); pos < 0 {
		_, t := fail(_p, 0, perr)
		return nil, parseError{
			path: path,
			text: _p.text,
			loc:  loc.Loc{p.offs + perr, p.offs + perr},
			fail: t,
		}
	}
	p.comments = p.comments[:0]
	_, file := action(_p, 0)
	file.P = path
	file.Comments = uniqueLocs(p.comments)
	for i, r := range data {
		if r == '\n' {
			file.NLs = append(file.NLs, i)
		}
	}
	file.Length = len(data)
	p.Files = append(p.Files, file)
	p.offs += len(data)
	return file, nil
}

type parseError struct {
	path string
	text string
	loc  loc.Loc
	fail *peg.Fail
}

func (err parseError) Tree() *peg.Fail { return err.fail }

func (err parseError) Loc() loc.Loc { return err.loc }

func (err parseError) Error() string {
	e := peg.SimpleError(err.text, err.fail)
	e.FilePath = err.path
	return e.Error()
}

// parenBound returns the Bound written Trait(Self, Args...).
func parenBound(name Ident, args []Ty, l loc.Loc) *Bound {
	tr := &TraitRef{Name: name, L: l}
	if len(args) > 1 {
		tr.Args = args[1:]
	}
	return &Bound{Self: args[0], Trait: tr, L: l}
}

func vars(vs *[]*Var) []*Var {
	if vs == nil {
		return nil
	}
	return *vs
}

func wcs(ws *[]Wc) []Wc {
	if ws == nil {
		return nil
	}
	return *ws
}

func fields(fs *[]*Field) []*Field {
	if fs == nil {
		return nil
	}
	return *fs
}

func traitRefs(trs *[]*TraitRef) []*TraitRef {
	if trs == nil {
		return nil
	}
	return *trs
}

func tys(ts *[]Ty) []Ty {
	if ts == nil {
		return nil
	}
	return *ts
}

// comment records the location of the comment text[s:e].
func comment(p *_Parser, s, e int) string {
	parser := p.data.(*Parser)
	parser.comments = append(parser.comments, loc.Loc{parser.offs + s, parser.offs + e})
	return p.text[s:e]
}

func uniqueLocs(ls []loc.Loc) []loc.Loc {
	if len(ls) == 0 {
		return nil
	}
	sort.Slice(ls, func(i, j int) bool { return ls[i][0] < ls[j][0] })
	u := []loc.Loc{ls[0]}
	for _, c := range ls[1:] {
		if c != u[len(u)-1] {
			u = append(u, c)
		}
	}
	return u
}

// l returns the location of text[s:e],
// less leading space and comments.
func l(p *_Parser, s, e int) loc.Loc {
	for s < e {
		if strings.HasPrefix(p.text[s:], "//") {
			n := strings.IndexByte(p.text[s:], '\n')
			if n < 0 {
				n = len(p.text) - s
			}
			s += n
			continue
		}
		r, w := utf8.DecodeRuneInString(p.text[s:])
		if !unicode.IsSpace(r) {
			break
		}
		s += w
	}
	for {
		r, w := utf8.DecodeLastRuneInString(p.text[:e])
		if !unicode.IsSpace(r) {
			break
		}
		e -= w
	}
	offs := p.data.(*Parser).offs
	return loc.Loc{offs + s, offs + e}
}
