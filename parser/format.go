package parser

import (
	"io"
	"strings"
)

// Format writes crates in canonical source form.
// Comments are not preserved.
func Format(w io.Writer, crates []*Crate) error {
	var s strings.Builder
	for i, c := range crates {
		if i > 0 {
			s.WriteString("\n")
		}
		formatCrate(&s, c)
	}
	_, err := io.WriteString(w, s.String())
	return err
}

// FormatQuery writes a query in canonical source form.
func FormatQuery(w io.Writer, q *Query) error {
	var s strings.Builder
	formatQuery(&s, q)
	s.WriteString("\n")
	_, err := io.WriteString(w, s.String())
	return err
}

func formatCrate(s *strings.Builder, c *Crate) {
	s.WriteString("crate ")
	s.WriteString(c.Name.Name)
	if len(c.Items) == 0 {
		s.WriteString(" {}\n")
		return
	}
	s.WriteString(" {\n")
	for _, item := range c.Items {
		s.WriteString("\t")
		switch item := item.(type) {
		case *Trait:
			formatTrait(s, item)
		case *Struct:
			formatStruct(s, item)
		case *Impl:
			formatImpl(s, item)
		default:
			panic("impossible item")
		}
		s.WriteString("\n")
	}
	s.WriteString("}\n")
}

func formatTrait(s *strings.Builder, t *Trait) {
	s.WriteString("trait ")
	s.WriteString(t.Name.Name)
	formatBinder(s, t.Binder)
	formatWhere(s, t.Where)
	if len(t.Assocs) == 0 {
		s.WriteString(" {}")
		return
	}
	s.WriteString(" {\n")
	for _, a := range t.Assocs {
		s.WriteString("\t\ttype ")
		s.WriteString(a.Name.Name)
		if len(a.Bounds) > 0 {
			s.WriteString(" : [")
			for i, b := range a.Bounds {
				if i > 0 {
					s.WriteString(", ")
				}
				formatTraitRef(s, b)
			}
			s.WriteString("]")
		}
		s.WriteString(";\n")
	}
	s.WriteString("\t}")
}

func formatStruct(s *strings.Builder, st *Struct) {
	s.WriteString("struct ")
	s.WriteString(st.Name.Name)
	formatBinder(s, st.Binder)
	formatWhere(s, st.Where)
	if len(st.Fields) == 0 {
		s.WriteString(" {}")
		return
	}
	s.WriteString(" {\n")
	for _, f := range st.Fields {
		s.WriteString("\t\t")
		s.WriteString(f.Name.Name)
		s.WriteString(": ")
		formatTy(s, f.Ty)
		s.WriteString(",\n")
	}
	s.WriteString("\t}")
}

func formatImpl(s *strings.Builder, im *Impl) {
	s.WriteString("impl")
	formatBinder(s, im.Binder)
	s.WriteString(" ")
	formatTraitRef(s, im.Trait)
	s.WriteString(" for ")
	formatTy(s, im.Self)
	formatWhere(s, im.Where)
	if len(im.Values) == 0 {
		s.WriteString(" {}")
		return
	}
	s.WriteString(" {\n")
	for _, v := range im.Values {
		s.WriteString("\t\ttype ")
		s.WriteString(v.Name.Name)
		s.WriteString(" = ")
		formatTy(s, v.Ty)
		s.WriteString(";\n")
	}
	s.WriteString("\t}")
}

func formatBinder(s *strings.Builder, vs []*Var) {
	if vs == nil {
		return
	}
	s.WriteString("<")
	for i, v := range vs {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(v.Kind)
		s.WriteString(" ")
		s.WriteString(v.Name.Name)
	}
	s.WriteString(">")
}

func formatWhere(s *strings.Builder, wcs []Wc) {
	if len(wcs) == 0 {
		return
	}
	s.WriteString(" where ")
	formatWcs(s, wcs)
}

func formatWcs(s *strings.Builder, wcs []Wc) {
	for i, w := range wcs {
		if i > 0 {
			s.WriteString(", ")
		}
		formatWc(s, w)
	}
}

func formatWc(s *strings.Builder, w Wc) {
	switch w := w.(type) {
	case *Bound:
		formatTy(s, w.Self)
		s.WriteString(": ")
		formatTraitRef(s, w.Trait)
	case *Normalizes:
		formatTy(s, w.Alias)
		s.WriteString(" => ")
		formatTy(s, w.Ty)
	case *Eq:
		formatTy(s, w.A)
		s.WriteString(" = ")
		formatTy(s, w.B)
	case *ForAll:
		s.WriteString("for")
		formatBinder(s, w.Binder)
		s.WriteString(" ")
		formatWc(s, w.Body)
	case *Exists:
		s.WriteString("exists")
		formatBinder(s, w.Binder)
		s.WriteString(" ")
		formatWc(s, w.Body)
	case *Implies:
		formatBlock(s, w.Hyps)
		s.WriteString(" => ")
		formatWc(s, w.Body)
	case *Conj:
		formatBlock(s, w.Wcs)
	default:
		panic("impossible where-clause")
	}
}

func formatBlock(s *strings.Builder, wcs []Wc) {
	s.WriteString("{")
	formatWcs(s, wcs)
	s.WriteString("}")
}

func formatTraitRef(s *strings.Builder, tr *TraitRef) {
	s.WriteString(tr.Name.Name)
	formatTyArgs(s, tr.Args)
}

func formatTyArgs(s *strings.Builder, tys []Ty) {
	if len(tys) == 0 {
		return
	}
	s.WriteString("<")
	for i, t := range tys {
		if i > 0 {
			s.WriteString(", ")
		}
		formatTy(s, t)
	}
	s.WriteString(">")
}

func formatTy(s *strings.Builder, t Ty) {
	switch t := t.(type) {
	case *NamedTy:
		s.WriteString(t.Name.Name)
		formatTyArgs(s, t.Args)
	case *AliasTy:
		s.WriteString("<")
		formatTy(s, t.Self)
		s.WriteString(" as ")
		formatTraitRef(s, t.Trait)
		s.WriteString(">::")
		s.WriteString(t.Item.Name)
	case *Lifetime:
		s.WriteString("'")
		s.WriteString(t.Name)
	default:
		panic("impossible type")
	}
}

func formatQuery(s *strings.Builder, q *Query) {
	if q.ForAll != nil {
		s.WriteString("forall")
		formatBinder(s, q.ForAll)
		s.WriteString(" ")
	}
	if q.Exists != nil {
		s.WriteString("exists")
		formatBinder(s, q.Exists)
		s.WriteString(" ")
	}
	formatBlock(s, q.Assumptions)
	s.WriteString(" => ")
	formatBlock(s, q.Goals)
}
