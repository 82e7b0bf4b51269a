package automaton

import (
	"sort"
	"strconv"
	"strings"

	"github.com/chronoid/chronoid/errors"
)

// maxDFAStates bounds subset construction. The catalog's patterns are nearly
// deterministic so real machines stay tiny; the cap exists so a pathological
// catalog fails loading instead of exhausting memory.
const maxDFAStates = 100000

// DFA is a complete deterministic automaton over an Alphabet partition:
// every state has a transition for every symbol (a dead sink completes the
// machine), so language comparisons never need to special-case missing
// transitions.
type DFA struct {
	ab     *Alphabet
	trans  [][]int32 // [state][symbol] -> next state
	accept []bool
	start  int
}

// Alphabet returns the partition this machine was determinized over.
func (d *DFA) Alphabet() *Alphabet { return d.ab }

// NumStates returns the state count including the dead sink.
func (d *DFA) NumStates() int { return len(d.trans) }

// Determinize runs subset construction over the given partition, producing a
// complete DFA. The partition must refine the NFA's transition ranges, which
// holds whenever the NFA contributed to NewAlphabet.
func (n *NFA) Determinize(ab *Alphabet) (*DFA, error) {
	nsym := ab.Size()

	startSet := n.closure([]int{n.start})
	index := map[string]int32{}
	var sets [][]int
	var trans [][]int32
	var accept []bool

	add := func(set []int) (int32, error) {
		key := setKey(set)
		if id, ok := index[key]; ok {
			return id, nil
		}
		if len(sets) >= maxDFAStates {
			return 0, errors.Wrap(errors.ErrInvalidCatalog, "pattern determinizes to too many DFA states")
		}
		id := int32(len(sets))
		index[key] = id
		sets = append(sets, set)
		trans = append(trans, make([]int32, nsym))
		accept = append(accept, contains(set, n.accept))
		return id, nil
	}

	if _, err := add(startSet); err != nil {
		return nil, err
	}

	for i := 0; i < len(sets); i++ {
		for sym := 0; sym < nsym; sym++ {
			lo, hi := ab.Interval(sym)
			next := n.closure(n.move(sets[i], lo, hi))
			id, err := add(next)
			if err != nil {
				return nil, err
			}
			trans[i][sym] = id
		}
	}

	return &DFA{ab: ab, trans: trans, accept: accept, start: 0}, nil
}

// move collects NFA states reachable from set on any rune in [lo, hi]. The
// partition guarantees an edge either covers the whole interval or none of it.
func (n *NFA) move(set []int, lo, hi rune) []int {
	var out []int
	seen := map[int]bool{}
	for _, s := range set {
		for _, e := range n.states[s].edges {
			if e.lo <= lo && hi <= e.hi && !seen[e.to] {
				seen[e.to] = true
				out = append(out, e.to)
			}
		}
	}
	return out
}

// closure returns the epsilon closure of set, sorted for canonical keys.
func (n *NFA) closure(set []int) []int {
	seen := map[int]bool{}
	stack := append([]int(nil), set...)
	for _, s := range set {
		seen[s] = true
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range n.states[s].eps {
			if !seen[t] {
				seen[t] = true
				stack = append(stack, t)
			}
		}
	}
	out := make([]int, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

func setKey(set []int) string {
	var b strings.Builder
	for _, s := range set {
		b.WriteString(strconv.Itoa(s))
		b.WriteByte(',')
	}
	return b.String()
}

func contains(sorted []int, x int) bool {
	i := sort.SearchInts(sorted, x)
	return i < len(sorted) && sorted[i] == x
}

// Minimize merges equivalent states via Moore partition refinement. This is
// an optimization for the pairwise comparisons, not a correctness
// requirement; two machines accepting the same language compare as equal
// whether or not they are minimal.
func (d *DFA) Minimize() *DFA {
	n := len(d.trans)
	nsym := d.ab.Size()

	class := make([]int32, n)
	for i := range class {
		if d.accept[i] {
			class[i] = 1
		}
	}

	for {
		index := map[string]int32{}
		next := make([]int32, n)
		for i := 0; i < n; i++ {
			var b strings.Builder
			b.WriteString(strconv.Itoa(int(class[i])))
			for sym := 0; sym < nsym; sym++ {
				b.WriteByte(':')
				b.WriteString(strconv.Itoa(int(class[d.trans[i][sym]])))
			}
			key := b.String()
			id, ok := index[key]
			if !ok {
				id = int32(len(index))
				index[key] = id
			}
			next[i] = id
		}
		stable := true
		for i := range class {
			if class[i] != next[i] {
				stable = false
				break
			}
		}
		class = next
		if stable {
			break
		}
	}

	nclasses := 0
	for _, c := range class {
		if int(c) >= nclasses {
			nclasses = int(c) + 1
		}
	}

	trans := make([][]int32, nclasses)
	accept := make([]bool, nclasses)
	built := make([]bool, nclasses)
	for i := 0; i < n; i++ {
		c := class[i]
		if built[c] {
			continue
		}
		built[c] = true
		row := make([]int32, nsym)
		for sym := 0; sym < nsym; sym++ {
			row[sym] = class[d.trans[i][sym]]
		}
		trans[c] = row
		accept[c] = d.accept[i]
	}

	return &DFA{ab: d.ab, trans: trans, accept: accept, start: int(class[d.start])}
}

// Empty reports whether the machine accepts no string at all.
func (d *DFA) Empty() bool {
	_, ok := d.MinLen()
	return !ok
}

// MinLen returns the length of the shortest accepted string. ok is false
// when the language is empty.
func (d *DFA) MinLen() (int, bool) {
	type item struct{ state, depth int }
	seen := make([]bool, len(d.trans))
	queue := []item{{d.start, 0}}
	seen[d.start] = true
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		if d.accept[it.state] {
			return it.depth, true
		}
		for _, next := range d.trans[it.state] {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, item{int(next), it.depth + 1})
			}
		}
	}
	return 0, false
}

// MaxLen returns the length of the longest accepted string. bounded is
// false when arbitrarily long strings are accepted; for an empty language
// MaxLen returns (0, true).
func (d *DFA) MaxLen() (length int, bounded bool) {
	useful := d.usefulStates()

	// Longest path over useful states; a cycle among them means unbounded.
	const (
		inProgress = 1
		done       = 2
	)
	mark := make([]int8, len(d.trans))
	best := make([]int, len(d.trans))

	var walk func(s int) bool
	walk = func(s int) bool {
		if mark[s] == inProgress {
			return false // cycle through a useful state
		}
		if mark[s] == done {
			return true
		}
		mark[s] = inProgress
		longest := -1
		if d.accept[s] {
			longest = 0
		}
		for _, next := range d.trans[s] {
			if !useful[next] {
				continue
			}
			if !walk(int(next)) {
				return false
			}
			if best[next] >= 0 && best[next]+1 > longest {
				longest = best[next] + 1
			}
		}
		best[s] = longest
		mark[s] = done
		return true
	}

	if !useful[d.start] {
		return 0, true
	}
	if !walk(d.start) {
		return 0, false
	}
	return best[d.start], true
}

// usefulStates marks states that can still reach an accepting state.
func (d *DFA) usefulStates() []bool {
	n := len(d.trans)
	rev := make([][]int32, n)
	for s := 0; s < n; s++ {
		for _, next := range d.trans[s] {
			rev[next] = append(rev[next], int32(s))
		}
	}
	useful := make([]bool, n)
	var stack []int32
	for s := 0; s < n; s++ {
		if d.accept[s] {
			useful[s] = true
			stack = append(stack, int32(s))
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range rev[s] {
			if !useful[p] {
				useful[p] = true
				stack = append(stack, p)
			}
		}
	}
	return useful
}

// FixedLength reports whether every accepted string has the same length,
// and that length. Empty languages report false.
func (d *DFA) FixedLength() (int, bool) {
	min, ok := d.MinLen()
	if !ok {
		return 0, false
	}
	max, bounded := d.MaxLen()
	if !bounded || min != max {
		return 0, false
	}
	return min, true
}
