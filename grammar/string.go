package grammar

import (
	"strconv"
	"strings"
)

func (v Var) String() string            { return buildString(v) }
func (t *RigidTy) String() string       { return buildString(t) }
func (a *AliasTy) String() string       { return buildString(a) }
func (Static) String() string           { return "'static" }
func (p *IsImplemented) String() string { return buildString(p) }
func (p *NormalizesTo) String() string  { return buildString(p) }
func (e *Equals) String() string        { return buildString(e) }
func (ws Wcs) String() string           { return buildString(ws) }
func (f *ForAll) String() string        { return buildString(f) }
func (e *Exists) String() string        { return buildString(e) }
func (i *Implies) String() string       { return buildString(i) }

func buildString(t Term) string {
	var s strings.Builder
	t.buildString(&s)
	return s.String()
}

func (v Var) buildString(s *strings.Builder) {
	switch v.Quant {
	case Existential:
		s.WriteRune('?')
	case Universal:
		s.WriteRune('!')
	case Bound:
		if v.Name != "" {
			s.WriteString(v.Name)
			return
		}
		s.WriteRune('^')
	}
	s.WriteString(v.Kind.String())
	s.WriteRune('_')
	s.WriteString(strconv.Itoa(v.ID))
}

func (t *RigidTy) buildString(s *strings.Builder) {
	s.WriteString(t.Name)
	buildParams(s, "<", t.Params, ">")
}

func (a *AliasTy) buildString(s *strings.Builder) {
	s.WriteRune('<')
	if len(a.Params) > 0 {
		a.Params[0].buildString(s)
	}
	s.WriteString(" as ")
	s.WriteString(a.Trait)
	if len(a.Params) > 1 {
		buildParams(s, "<", a.Params[1:], ">")
	}
	s.WriteString(">::")
	s.WriteString(a.Item)
}

func (Static) buildString(s *strings.Builder) { s.WriteString("'static") }

func (p *IsImplemented) buildString(s *strings.Builder) {
	s.WriteString(p.Trait)
	s.WriteRune('(')
	buildParams(s, "", p.Args, "")
	s.WriteRune(')')
}

func (p *NormalizesTo) buildString(s *strings.Builder) {
	p.Alias.buildString(s)
	s.WriteString(" => ")
	p.Ty.buildString(s)
}

func (e *Equals) buildString(s *strings.Builder) {
	e.A.buildString(s)
	s.WriteString(" = ")
	e.B.buildString(s)
}

func (ws Wcs) buildString(s *strings.Builder) {
	s.WriteRune('{')
	for i, w := range ws {
		if i > 0 {
			s.WriteString(", ")
		}
		w.buildString(s)
	}
	s.WriteRune('}')
}

func (f *ForAll) buildString(s *strings.Builder) {
	s.WriteString("for")
	buildBinder(s, f.Vars)
	f.Body.buildString(s)
}

func (e *Exists) buildString(s *strings.Builder) {
	s.WriteString("exists")
	buildBinder(s, e.Vars)
	e.Body.buildString(s)
}

func (i *Implies) buildString(s *strings.Builder) {
	i.Hyps.buildString(s)
	s.WriteString(" => ")
	i.Body.buildString(s)
}

func buildBinder(s *strings.Builder, vs []Var) {
	s.WriteRune('<')
	for i, v := range vs {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(v.Kind.String())
		s.WriteRune(' ')
		v.buildString(s)
	}
	s.WriteString("> ")
}

func buildParams(s *strings.Builder, open string, ps []Parameter, close string) {
	if len(ps) == 0 {
		return
	}
	s.WriteString(open)
	for i, p := range ps {
		if i > 0 {
			s.WriteString(", ")
		}
		p.buildString(s)
	}
	s.WriteString(close)
}
