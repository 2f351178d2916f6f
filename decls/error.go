package decls

import (
	"fmt"
	"strings"

	"github.com/eaburns/formality/loc"
)

// An Error is a declaration error at a source location.
type Error struct {
	msg   string
	loc   loc.Loc
	notes []*Error
}

func newError(locer loc.Locer, f string, vs ...interface{}) *Error {
	l := locer.Loc()
	if l == (loc.Loc{}) {
		panic("impossible no location")
	}
	return &Error{msg: fmt.Sprintf(f, vs...), loc: l}
}

func notFound(name string, locer loc.Locer) *Error {
	return newError(locer, "%s: not found", name)
}

func redef(locer loc.Locer, name string, prev loc.Locer) *Error {
	err := newError(locer, "%s redefined", name)
	if prev.Loc() != (loc.Loc{}) {
		err.note(prev, "previous")
	} else {
		err.note(loc.Loc{}, "%s is built-in", name)
	}
	return err
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Loc() loc.Loc { return e.loc }

func (e *Error) note(locer loc.Locer, f string, vs ...interface{}) {
	e.notes = append(e.notes, &Error{msg: fmt.Sprintf(f, vs...), loc: locer.Loc()})
}

// done renders the message with the error and note locations.
func (e *Error) done(files loc.Files) {
	var s strings.Builder
	s.WriteString(files.Location(e.loc).String())
	s.WriteString(": ")
	s.WriteString(e.msg)
	for _, n := range e.notes {
		s.WriteString("\n\t")
		s.WriteString(n.msg)
		if n.loc != (loc.Loc{}) {
			s.WriteString(" (")
			s.WriteString(files.Location(n.loc).String())
			s.WriteRune(')')
		}
	}
	e.msg = s.String()
}
