package automaton

// Outcome is the provable relationship between the languages of two
// machines A and B.
type Outcome int

const (
	// Disjoint: no string is accepted by both machines.
	Disjoint Outcome = iota
	// Equal: both machines accept exactly the same language.
	Equal
	// ProperSubset: L(A) is strictly contained in L(B).
	ProperSubset
	// ProperSuperset: L(B) is strictly contained in L(A).
	ProperSuperset
	// Intersect: the languages overlap but neither contains the other.
	Intersect
)

func (o Outcome) String() string {
	switch o {
	case Disjoint:
		return "disjoint"
	case Equal:
		return "equal"
	case ProperSubset:
		return "proper-subset"
	case ProperSuperset:
		return "proper-superset"
	case Intersect:
		return "intersect"
	}
	return "unknown"
}

// Compare decides the relationship between the languages of a and b with a
// single walk of the product automaton. Both machines must be determinized
// over the same Alphabet; this is the caller's responsibility (the overlap
// analyzer builds one partition for the whole catalog).
//
// The walk visits every reachable state pair and records which acceptance
// combinations occur. A pair where both accept witnesses a common string; a
// pair where only A accepts witnesses a string outside L(B), and vice
// versa. Those three bits determine the outcome:
//
//	neither exclusive witness        -> Equal
//	no common witness                -> Disjoint
//	only B-exclusive witnesses       -> ProperSubset (A within B)
//	only A-exclusive witnesses       -> ProperSuperset
//	all three                        -> Intersect
func Compare(a, b *DFA) Outcome {
	type pair struct{ pa, pb int32 }

	var common, onlyA, onlyB bool

	seen := map[pair]bool{}
	start := pair{int32(a.start), int32(b.start)}
	seen[start] = true
	queue := []pair{start}

	nsym := a.ab.Size()
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		accA := a.accept[p.pa]
		accB := b.accept[p.pb]
		switch {
		case accA && accB:
			common = true
		case accA:
			onlyA = true
		case accB:
			onlyB = true
		}
		if common && onlyA && onlyB {
			return Intersect
		}

		for sym := 0; sym < nsym; sym++ {
			next := pair{a.trans[p.pa][sym], b.trans[p.pb][sym]}
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}

	switch {
	case !onlyA && !onlyB:
		return Equal
	case !common:
		return Disjoint
	case !onlyA:
		return ProperSubset
	default:
		return ProperSuperset
	}
}
