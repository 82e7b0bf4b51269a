package automaton

import (
	"sort"
	"unicode/utf8"
)

// Alphabet partitions the rune space into intervals such that every
// transition of every contributing NFA either fully covers an interval or
// does not touch it. Determinized machines over the same partition can be
// compared symbol by symbol instead of rune by rune, which keeps the product
// walk proportional to the partition size rather than the rune space.
type Alphabet struct {
	// cuts holds ascending interval start points; interval i covers
	// [cuts[i], cuts[i+1]-1], the last interval extends to utf8.MaxRune.
	cuts []rune
}

// NewAlphabet builds the coarsest partition refining every transition range
// of the given NFAs.
func NewAlphabet(nfas []*NFA) *Alphabet {
	points := map[rune]struct{}{0: {}}
	for _, n := range nfas {
		for _, st := range n.states {
			for _, e := range st.edges {
				points[e.lo] = struct{}{}
				if e.hi < utf8.MaxRune {
					points[e.hi+1] = struct{}{}
				}
			}
		}
	}

	cuts := make([]rune, 0, len(points))
	for p := range points {
		cuts = append(cuts, p)
	}
	sort.Slice(cuts, func(i, j int) bool { return cuts[i] < cuts[j] })
	return &Alphabet{cuts: cuts}
}

// Size returns the number of symbols (intervals) in the partition.
func (a *Alphabet) Size() int {
	return len(a.cuts)
}

// Interval returns the rune range covered by symbol i.
func (a *Alphabet) Interval(i int) (lo, hi rune) {
	lo = a.cuts[i]
	if i+1 < len(a.cuts) {
		hi = a.cuts[i+1] - 1
	} else {
		hi = utf8.MaxRune
	}
	return lo, hi
}

// Symbol returns the symbol index covering rune r.
func (a *Alphabet) Symbol(r rune) int {
	// Binary search for the rightmost cut <= r.
	i := sort.Search(len(a.cuts), func(i int) bool { return a.cuts[i] > r })
	return i - 1
}
