package parser

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/eaburns/formality/loc"
)

// A PrintOpt is an option to Print.
type PrintOpt func(*config)

// PrintLocs prints the location of each node.
func PrintLocs(files loc.Files) PrintOpt {
	return func(pc *config) { pc.files = files }
}

// Print prints the syntax tree of the file.
func (f *File) Print(w io.Writer, opts ...PrintOpt) error {
	return print(w, f, opts...)
}

type config struct {
	w      io.Writer
	files  loc.Files
	n      int
	indent string
}

type printerError struct{ error }

type printer interface {
	print(*config)
}

func print(w io.Writer, tree printer, opts ...PrintOpt) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(printerError); ok {
			err = e
		} else {
			panic(r)
		}
	}()
	pc := &config{w: w, indent: "  "}
	for _, opt := range opts {
		opt(pc)
	}
	tree.print(pc)
	pc.p("\n")
	return err
}

func (f *File) print(pc *config) {
	pc.p("File{")
	pc.field("Path", f.P)
	pc.field("Crates", f.Crates)
	pc.field("Query", f.Query)
	pc.p("\n}")
}

func (c *Crate) print(pc *config) {
	pc.p("Crate{")
	pc.loc(c.L)
	pc.field("Name", c.Name)
	pc.field("Items", c.Items)
	pc.p("\n}")
}

func (t *Trait) print(pc *config) {
	pc.p("Trait{")
	pc.loc(t.L)
	pc.field("Name", t.Name)
	pc.field("Binder", t.Binder)
	pc.field("Where", t.Where)
	pc.field("Assocs", t.Assocs)
	pc.p("\n}")
}

func (a *AssocDecl) print(pc *config) {
	pc.p("AssocDecl{")
	pc.loc(a.L)
	pc.field("Name", a.Name)
	pc.field("Bounds", a.Bounds)
	pc.p("\n}")
}

func (s *Struct) print(pc *config) {
	pc.p("Struct{")
	pc.loc(s.L)
	pc.field("Name", s.Name)
	pc.field("Binder", s.Binder)
	pc.field("Where", s.Where)
	pc.field("Fields", s.Fields)
	pc.p("\n}")
}

func (f *Field) print(pc *config) {
	pc.p("Field{")
	pc.loc(f.L)
	pc.field("Name", f.Name)
	pc.field("Ty", f.Ty)
	pc.p("\n}")
}

func (im *Impl) print(pc *config) {
	pc.p("Impl{")
	pc.loc(im.L)
	pc.field("Binder", im.Binder)
	pc.field("Trait", im.Trait)
	pc.field("Self", im.Self)
	pc.field("Where", im.Where)
	pc.field("Values", im.Values)
	pc.p("\n}")
}

func (v *AssocValue) print(pc *config) {
	pc.p("AssocValue{")
	pc.loc(v.L)
	pc.field("Name", v.Name)
	pc.field("Ty", v.Ty)
	pc.p("\n}")
}

func (tr *TraitRef) print(pc *config) {
	pc.p("TraitRef{")
	pc.loc(tr.L)
	pc.field("Name", tr.Name)
	pc.field("Args", tr.Args)
	pc.p("\n}")
}

func (n *NamedTy) print(pc *config) {
	pc.p("NamedTy{")
	pc.loc(n.L)
	pc.field("Name", n.Name)
	pc.field("Args", n.Args)
	pc.p("\n}")
}

func (a *AliasTy) print(pc *config) {
	pc.p("AliasTy{")
	pc.loc(a.L)
	pc.field("Self", a.Self)
	pc.field("Trait", a.Trait)
	pc.field("Item", a.Item)
	pc.p("\n}")
}

func (b *Bound) print(pc *config) {
	pc.p("Bound{")
	pc.loc(b.L)
	pc.field("Self", b.Self)
	pc.field("Trait", b.Trait)
	pc.p("\n}")
}

func (n *Normalizes) print(pc *config) {
	pc.p("Normalizes{")
	pc.loc(n.L)
	pc.field("Alias", n.Alias)
	pc.field("Ty", n.Ty)
	pc.p("\n}")
}

func (e *Eq) print(pc *config) {
	pc.p("Eq{")
	pc.loc(e.L)
	pc.field("A", e.A)
	pc.field("B", e.B)
	pc.p("\n}")
}

func (f *ForAll) print(pc *config) {
	pc.p("ForAll{")
	pc.loc(f.L)
	pc.field("Binder", f.Binder)
	pc.field("Body", f.Body)
	pc.p("\n}")
}

func (e *Exists) print(pc *config) {
	pc.p("Exists{")
	pc.loc(e.L)
	pc.field("Binder", e.Binder)
	pc.field("Body", e.Body)
	pc.p("\n}")
}

func (im *Implies) print(pc *config) {
	pc.p("Implies{")
	pc.loc(im.L)
	pc.field("Hyps", im.Hyps)
	pc.field("Body", im.Body)
	pc.p("\n}")
}

func (c *Conj) print(pc *config) {
	pc.p("Conj{")
	pc.loc(c.L)
	pc.field("Wcs", c.Wcs)
	pc.p("\n}")
}

func (q *Query) print(pc *config) {
	pc.p("Query{")
	pc.loc(q.L)
	pc.field("ForAll", q.ForAll)
	pc.field("Exists", q.Exists)
	pc.field("Assumptions", q.Assumptions)
	pc.field("Goals", q.Goals)
	pc.p("\n}")
}

func (v *Var) print(pc *config) {
	pc.p("Var(%s %s)", v.Kind, v.Name.Name)
	pc.loc(v.L)
}

func (l *Lifetime) print(pc *config) {
	pc.p("Lifetime('%s)", l.Name)
	pc.loc(l.L)
}

func (id Ident) print(pc *config) {
	pc.p("Ident(%s)", id.Name)
	pc.loc(id.L)
}

func (pc *config) loc(l loc.Loc) {
	if pc.files == nil || (l == loc.Loc{}) {
		return
	}
	pc.p("\t(%s)", pc.files.Location(l))
}

func (pc *config) field(name string, val interface{}) {
	v := reflect.ValueOf(val)
	if val == nil || (v.Kind() == reflect.Ptr || v.Kind() == reflect.Slice || v.Kind() == reflect.Interface) && v.IsNil() {
		return
	}
	pc.n++
	defer func() { pc.n-- }()
	pc.p("\n" + name + ": ")
	if v.Kind() == reflect.Slice {
		pc.slice(val)
		return
	}
	if t, ok := val.(printer); ok {
		t.print(pc)
		return
	}
	pc.p("%v", val)
}

func (pc *config) slice(s interface{}) {
	v := reflect.ValueOf(s)
	pc.n++
	pc.p("{")
	for i := 0; i < v.Len(); i++ {
		pc.p("\n")
		v.Index(i).Interface().(printer).print(pc)
		pc.p(",")
	}
	pc.n--
	pc.p("\n}")
}

func (pc *config) p(f string, vs ...interface{}) {
	f = strings.ReplaceAll(f, "\n", "\n"+strings.Repeat(pc.indent, pc.n))
	_, err := fmt.Fprintf(pc.w, f, vs...)
	if err != nil {
		panic(printerError{err})
	}
}
