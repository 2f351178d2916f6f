package prove

import (
	"sort"
	"strings"
)

// A Set is a set of alternative solutions,
// without duplicates and sorted by canonical form.
// An empty Set means the goal could not be proved.
type Set []*Constraints

// Proven returns whether the set is a single, known-true solution.
func (s Set) Proven() bool { return len(s) == 1 && s[0].knownTrue }

// Ambiguous returns whether the set is non-empty but not Proven.
func (s Set) Ambiguous() bool { return len(s) > 0 && !s.Proven() }

func (s Set) String() string {
	var b strings.Builder
	b.WriteRune('{')
	for _, c := range s {
		b.WriteString("\n\t")
		b.WriteString(c.String())
	}
	if len(s) > 0 {
		b.WriteRune('\n')
	}
	b.WriteRune('}')
	return b.String()
}

// setBuilder accumulates solutions, dropping duplicates.
// Two solutions are duplicates if their canonical forms are equal.
type setBuilder struct {
	seen map[string]bool
	keys []string
	cs   []*Constraints
}

func (b *setBuilder) add(cs ...*Constraints) {
	for _, c := range cs {
		k := c.String()
		if b.seen[k] {
			continue
		}
		if b.seen == nil {
			b.seen = make(map[string]bool)
		}
		b.seen[k] = true
		b.keys = append(b.keys, k)
		b.cs = append(b.cs, c)
	}
}

func (b *setBuilder) set() Set {
	if len(b.cs) == 0 {
		return nil
	}
	idx := make([]int, len(b.cs))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return b.keys[idx[i]] < b.keys[idx[j]] })
	s := make(Set, len(idx))
	for i, j := range idx {
		s[i] = b.cs[j]
	}
	return s
}

func union(sets ...Set) Set {
	var b setBuilder
	for _, s := range sets {
		b.add(s...)
	}
	return b.set()
}
