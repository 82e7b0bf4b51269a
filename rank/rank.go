// Package rank assigns a specificity rank to every format in an analyzed
// catalog. A format sitting below a long chain of strictly larger languages
// is more specific than one near the top of the containment order, and
// among formats at the same depth a fixed or bounded length language beats
// an open-ended one. Ranks are a pure function of the language, so formats
// whose patterns accept the same strings always receive the same rank.
package rank

import (
	"github.com/chronoid/chronoid/errors"
	"github.com/chronoid/chronoid/overlap"
)

// Structural score tiers. Compared only when depths are equal.
const (
	structuralOpen    = 0 // no finite length bound
	structuralBounded = 1 // bounded but variable length
	structuralFixed   = 2 // every accepted string has the same length
)

// Value is the specificity rank of a format. Depth dominates; Structural
// breaks ties between formats at the same depth.
type Value struct {
	Depth      int
	Structural int
}

// Compare returns -1, 0 or 1 as v ranks below, equal to or above o.
func (v Value) Compare(o Value) int {
	switch {
	case v.Depth != o.Depth:
		if v.Depth < o.Depth {
			return -1
		}
		return 1
	case v.Structural != o.Structural:
		if v.Structural < o.Structural {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Specificity holds the per-class ranks computed from a containment graph.
type Specificity struct {
	g     *overlap.Graph
	depth []int
	str   []int
}

// Build computes ranks for every equivalence class in g. Depth is the
// length of the longest chain of strictly larger languages above the
// class; the structural score comes from the class's length profile.
func Build(g *overlap.Graph) *Specificity {
	n := g.NumClasses()
	s := &Specificity{
		g:     g,
		depth: make([]int, n),
		str:   make([]int, n),
	}

	memo := make([]int, n)
	for i := range memo {
		memo[i] = -1
	}
	for c := 0; c < n; c++ {
		s.depth[c] = chainDepth(g, c, memo)

		info := g.Info(c)
		switch {
		case info.Fixed:
			s.str[c] = structuralFixed
		case info.Bounded:
			s.str[c] = structuralBounded
		default:
			s.str[c] = structuralOpen
		}
	}
	return s
}

// chainDepth memoizes the longest superset chain starting at class c.
// The graph is acyclic, so plain recursion terminates.
func chainDepth(g *overlap.Graph, c int, memo []int) int {
	if memo[c] >= 0 {
		return memo[c]
	}
	best := 0
	for _, super := range g.Supersets(c) {
		if d := chainDepth(g, super, memo) + 1; d > best {
			best = d
		}
	}
	memo[c] = best
	return best
}

// Class returns the rank of equivalence class c.
func (s *Specificity) Class(c int) Value {
	return Value{Depth: s.depth[c], Structural: s.str[c]}
}

// Of returns the rank of the named format.
func (s *Specificity) Of(name string) (Value, error) {
	c, ok := s.g.ClassOf(name)
	if !ok {
		return Value{}, errors.NewNotFoundError("format %q", name)
	}
	return s.Class(c), nil
}
