// Package loc tracks locations in source files.
package loc

import (
	"fmt"
	"sort"
)

// Loc is a byte range in a set of files.
// Offsets start at 1, so the zero value indicates no location.
type Loc [2]int

// Loc returns the Loc itself, so that a Loc is a Locer.
func (l Loc) Loc() Loc { return l }

// A Locer has a location.
type Locer interface {
	Loc() Loc
}

// Span returns the Loc spanning from the start of a to the end of b.
func Span(a, b Locer) Loc { return Loc{a.Loc()[0], b.Loc()[1]} }

// A Location is a human-readable location in a file.
// The zero value indicates no location.
type Location struct {
	Path string
	Line [2]int
	Col  [2]int
}

func (l Location) String() string {
	switch {
	case l == (Location{}):
		return ""
	case l.Line[0] == l.Line[1] && l.Col[0] == l.Col[1]:
		return fmt.Sprintf("%s:%d.%d", l.Path, l.Line[0], l.Col[0])
	case l.Line[0] == l.Line[1]:
		return fmt.Sprintf("%s:%d.%d-%d", l.Path, l.Line[0], l.Col[0], l.Col[1])
	default:
		return fmt.Sprintf("%s:%d.%d-%d.%d", l.Path, l.Line[0], l.Col[0], l.Line[1], l.Col[1])
	}
}

// File is a source file described by its path,
// its length in bytes, and the byte offsets of its newlines.
type File interface {
	Path() string
	Len() int
	NewLines() []int
}

// Files is a set of files laid end to end.
// A Loc into the set is an offset into the concatenation, plus 1.
type Files []File

// Len returns the total length of all files.
func (fs Files) Len() int {
	var n int
	for _, f := range fs {
		n += f.Len()
	}
	return n
}

// Location returns the Location of a Loc.
// It panics if the Loc is out of range or spans files.
func (fs Files) Location(l Loc) Location {
	switch {
	case l == (Loc{}):
		return Location{}
	case len(fs) == 0:
		panic("no files")
	case l[0] < 1 || l[1]-1 > fs.Len():
		panic("out of range")
	case l[0] > l[1]:
		panic("bad Loc")
	}
	f0, line0, col0 := fs.position(l[0] - 1)
	f1, line1, col1 := fs.position(l[1] - 1)
	if f0 != f1 {
		panic("multi-file Loc")
	}
	return Location{
		Path: fs[f0].Path(),
		Line: [2]int{line0, line1},
		Col:  [2]int{col0, col1},
	}
}

// position returns the file index, line, and column of a 0-based offset.
func (fs Files) position(offs int) (int, int, int) {
	i := 0
	for ; i < len(fs)-1 && offs >= fs[i].Len(); i++ {
		offs -= fs[i].Len()
	}
	nls := fs[i].NewLines()
	line := sort.SearchInts(nls, offs)
	col := offs + 1
	if line > 0 {
		col = offs - nls[line-1]
	}
	return i, line + 1, col
}
