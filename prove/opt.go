package prove

import "io"

const (
	// DefaultMaxDepth is the default maximum derivation depth.
	DefaultMaxDepth = 32
	// DefaultMaxSize is the default maximum goal size.
	DefaultMaxSize = 64
)

// An Opt is an option to Prove.
type Opt func(*prover)

// MaxDepth sets the maximum number of nested atomic goals in a derivation.
// A branch deeper than this fails.
func MaxDepth(n int) Opt { return func(p *prover) { p.maxDepth = n } }

// MaxSize sets the maximum size of an atomic goal.
// A branch with a larger goal fails.
func MaxSize(n int) Opt { return func(p *prover) { p.maxSize = n } }

// AmbiguousOnOverflow makes a branch that exceeds MaxDepth or MaxSize
// produce an ambiguous solution instead of failing.
func AmbiguousOnOverflow() Opt { return func(p *prover) { p.ambiguousOnOverflow = true } }

// Trace writes a trace of the proof to w,
// up to the given depth (-1 = infinite).
func Trace(w io.Writer, depth int) Opt {
	return func(p *prover) {
		p.tr.w = w
		p.tr.maxDepth = depth
	}
}
