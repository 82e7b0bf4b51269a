// Package overlap proves pairwise relationships between the accepted
// languages of every format in a registry and assembles them into an
// immutable overlap graph: equivalence classes of identical patterns plus a
// containment DAG over those classes.
//
// Analysis runs once per catalog version, before any classification, and is
// parallelized across pattern pairs. The resulting graph is read-only and
// shared by the specificity ranker and the disambiguator.
package overlap

import "github.com/chronoid/chronoid/automaton"

// Kind is the provable relationship between an ordered pair of formats
// (A, B).
type Kind int

const (
	// Disjoint: no string matches both patterns.
	Disjoint Kind = iota
	// Identical: both patterns accept exactly the same language.
	Identical
	// StrictSubset: A's language is strictly contained in B's.
	StrictSubset
	// StrictSuperset: B's language is strictly contained in A's.
	StrictSuperset
	// PartialOverlap: the languages intersect but neither contains the other.
	PartialOverlap
)

func (k Kind) String() string {
	switch k {
	case Disjoint:
		return "disjoint"
	case Identical:
		return "identical"
	case StrictSubset:
		return "strict-subset"
	case StrictSuperset:
		return "strict-superset"
	case PartialOverlap:
		return "partial-overlap"
	}
	return "unknown"
}

// Invert returns the relation seen from the other side of the pair:
// StrictSubset(A,B) is StrictSuperset(B,A) and vice versa, every other kind
// is symmetric.
func (k Kind) Invert() Kind {
	switch k {
	case StrictSubset:
		return StrictSuperset
	case StrictSuperset:
		return StrictSubset
	}
	return k
}

// fromOutcome maps an automaton comparison outcome onto a relation kind.
func fromOutcome(o automaton.Outcome) Kind {
	switch o {
	case automaton.Equal:
		return Identical
	case automaton.ProperSubset:
		return StrictSubset
	case automaton.ProperSuperset:
		return StrictSuperset
	case automaton.Intersect:
		return PartialOverlap
	default:
		return Disjoint
	}
}
