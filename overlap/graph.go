package overlap

import (
	"github.com/chronoid/chronoid/errors"
)

// LanguageInfo records shape properties of a class's accepted language,
// used by the specificity ranker's structural tiebreak. Being language
// properties rather than pattern-text properties, they are necessarily
// equal for every member of an equivalence class.
type LanguageInfo struct {
	// MinLen is the length of the shortest accepted string.
	MinLen int
	// MaxLen is the length of the longest accepted string; meaningless
	// when Bounded is false.
	MaxLen int
	// Bounded reports whether accepted lengths have an upper bound.
	Bounded bool
	// Fixed reports whether every accepted string has the same length.
	Fixed bool
}

// Graph is the complete, immutable result of overlap analysis for one
// registry: every pairwise relation, the equivalence classes of mutually
// identical formats, and the containment DAG over those classes.
type Graph struct {
	names []string
	index map[string]int

	// rel is the full symmetric relation matrix over definition indices;
	// rel[i][i] is Identical by convention.
	rel [][]Kind

	classOf []int   // definition index -> class id
	classes [][]int // class id -> member definition indices, registration order

	classRel [][]Kind       // class-level relation matrix
	supers   [][]int        // class id -> ids of classes strictly containing it
	info     []LanguageInfo // class id -> language shape
}

// Relation returns the relation between formats a and b as the ordered pair
// (a, b). Unknown names return an error wrapping errors.ErrNotFound.
func (g *Graph) Relation(a, b string) (Kind, error) {
	ia, ok := g.index[a]
	if !ok {
		return 0, errors.NewNotFoundError("format %q", a)
	}
	ib, ok := g.index[b]
	if !ok {
		return 0, errors.NewNotFoundError("format %q", b)
	}
	return g.rel[ia][ib], nil
}

// NumClasses returns the number of Identical-equivalence classes.
func (g *Graph) NumClasses() int {
	return len(g.classes)
}

// ClassOf returns the equivalence class id of a format name.
func (g *Graph) ClassOf(name string) (int, bool) {
	i, ok := g.index[name]
	if !ok {
		return 0, false
	}
	return g.classOf[i], true
}

// ClassMembers returns the names in class c, in registration order.
func (g *Graph) ClassMembers(c int) []string {
	members := make([]string, len(g.classes[c]))
	for i, def := range g.classes[c] {
		members[i] = g.names[def]
	}
	return members
}

// EquivalenceClass returns every format accepting exactly the same language
// as name, including name itself.
func (g *Graph) EquivalenceClass(name string) []string {
	c, ok := g.ClassOf(name)
	if !ok {
		return nil
	}
	return g.ClassMembers(c)
}

// Supersets returns the ids of classes whose language strictly contains
// class c's language.
func (g *Graph) Supersets(c int) []int {
	return g.supers[c]
}

// ClassRelation returns the relation between two classes.
func (g *Graph) ClassRelation(a, b int) Kind {
	return g.classRel[a][b]
}

// Info returns the language shape of class c.
func (g *Graph) Info(c int) LanguageInfo {
	return g.info[c]
}

// Names returns every format name in registration order.
func (g *Graph) Names() []string {
	return g.names
}

// assemble builds the class structures from a complete relation matrix and
// verifies the graph's internal consistency. Violations indicate a bug in
// relation computation and fail with errors.ErrInvariantViolation.
func assemble(names []string, rel [][]Kind, defInfo []LanguageInfo) (*Graph, error) {
	n := len(names)
	index := make(map[string]int, n)
	for i, name := range names {
		index[name] = i
	}

	// Union mutually identical definitions into classes.
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rel[i][j] == Identical {
				ri, rj := find(i), find(j)
				if ri != rj {
					parent[rj] = ri
				}
			}
		}
	}

	classOf := make([]int, n)
	rootToClass := map[int]int{}
	var classes [][]int
	for i := 0; i < n; i++ {
		root := find(i)
		c, ok := rootToClass[root]
		if !ok {
			c = len(classes)
			rootToClass[root] = c
			classes = append(classes, nil)
		}
		classOf[i] = c
		classes[c] = append(classes[c], i)
	}

	// Identity must be transitive across each class: a member pair that is
	// not Identical means two comparisons disagreed.
	for c, members := range classes {
		for x := 0; x < len(members); x++ {
			for y := x + 1; y < len(members); y++ {
				if rel[members[x]][members[y]] != Identical {
					return nil, errors.Wrapf(errors.ErrInvariantViolation,
						"formats %q and %q are in identity class %d but related as %s",
						names[members[x]], names[members[y]], c, rel[members[x]][members[y]])
				}
			}
		}
	}

	// Collapse the relation matrix onto classes. Every member pair across
	// two classes must agree on the relation kind.
	nc := len(classes)
	classRel := make([][]Kind, nc)
	for a := range classRel {
		classRel[a] = make([]Kind, nc)
		classRel[a][a] = Identical
	}
	for a := 0; a < nc; a++ {
		for b := a + 1; b < nc; b++ {
			want := rel[classes[a][0]][classes[b][0]]
			for _, x := range classes[a] {
				for _, y := range classes[b] {
					if rel[x][y] != want {
						return nil, errors.Wrapf(errors.ErrInvariantViolation,
							"inconsistent relations between classes of %q and %q: %s vs %s",
							names[x], names[y], want, rel[x][y])
					}
				}
			}
			if want == Identical {
				return nil, errors.Wrapf(errors.ErrInvariantViolation,
					"classes of %q and %q are distinct yet related as identical",
					names[classes[a][0]], names[classes[b][0]])
			}
			classRel[a][b] = want
			classRel[b][a] = want.Invert()
		}
	}

	// Containment edges: class -> classes strictly containing it.
	supers := make([][]int, nc)
	for a := 0; a < nc; a++ {
		for b := 0; b < nc; b++ {
			if a != b && classRel[a][b] == StrictSubset {
				supers[a] = append(supers[a], b)
			}
		}
	}

	// The containment DAG must be acyclic: a cycle would mean two distinct
	// languages each strictly contain the other.
	if cycle := findCycle(supers); cycle >= 0 {
		return nil, errors.Wrapf(errors.ErrInvariantViolation,
			"containment cycle through class of %q", names[classes[cycle][0]])
	}

	info := make([]LanguageInfo, nc)
	for c, members := range classes {
		info[c] = defInfo[members[0]]
	}

	return &Graph{
		names:    names,
		index:    index,
		rel:      rel,
		classOf:  classOf,
		classes:  classes,
		classRel: classRel,
		supers:   supers,
		info:     info,
	}, nil
}

// findCycle runs a three-color DFS over the containment edges and returns a
// class on a cycle, or -1.
func findCycle(supers [][]int) int {
	const (
		visiting = 1
		done     = 2
	)
	mark := make([]int8, len(supers))

	var visit func(int) int
	visit = func(c int) int {
		mark[c] = visiting
		for _, s := range supers[c] {
			switch mark[s] {
			case visiting:
				return s
			case 0:
				if bad := visit(s); bad >= 0 {
					return bad
				}
			}
		}
		mark[c] = done
		return -1
	}

	for c := range supers {
		if mark[c] == 0 {
			if bad := visit(c); bad >= 0 {
				return bad
			}
		}
	}
	return -1
}
