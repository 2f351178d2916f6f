package prove

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	traceDepth = flag.Int("trace.depth", 0, "max depth for proof trace (0 = no trace; -1 = infinite)")
)

const traceIndent = "\t"

var bullets = []string{"•", "◦", "▪", "▫"}

type tracer struct {
	w          io.Writer
	maxDepth   int
	indent     string
	nextBullet int
}

type traceItem struct {
	tr     *tracer
	indent string
	bullet int
}

func (t *tracer) init() {
	if t.w == nil {
		t.w = os.Stdout
		t.maxDepth = *traceDepth
	}
}

func (p *prover) trItem(f string, vs ...interface{}) *traceItem {
	t := &p.tr
	tr := &traceItem{tr: t, indent: t.indent, bullet: t.nextBullet}
	t.indent += traceIndent
	t.nextBullet++
	tr.trace(f, vs...)
	return tr
}

func (tr *traceItem) done() {
	tr.tr.indent = strings.TrimSuffix(tr.tr.indent, traceIndent)
	tr.tr.nextBullet--
}

// result traces a result Set and returns it.
func (tr *traceItem) result(s Set) Set {
	switch len(s) {
	case 0:
		tr.trace("no solutions")
	default:
		tr.trace("%d solutions: %s", len(s), s)
	}
	return s
}

func (tr *traceItem) trace(f string, vs ...interface{}) {
	if tr.tr.maxDepth == 0 {
		return
	}
	depth := strings.Count(tr.indent, traceIndent) + 1
	if tr.tr.maxDepth > 0 && depth > tr.tr.maxDepth {
		return
	}
	s := fmt.Sprintf(f, vs...)
	s = strings.TrimSuffix(s, "\n")
	s = strings.ReplaceAll(s, "\n", "\n"+tr.indent+"  ")
	if tr.bullet >= 0 {
		s = bullets[tr.bullet%len(bullets)] + " " + s
		tr.bullet = -1
	} else {
		s = "  " + s
	}
	fmt.Fprintln(tr.tr.w, tr.indent+s)
}
