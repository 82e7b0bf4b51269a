// Package automaton converts regular expressions into finite automata and
// decides relationships between their accepted languages.
//
// Patterns are parsed with the standard regexp/syntax package (RE2 dialect,
// so backreferences cannot occur by construction), compiled into Thompson
// NFAs over rune-interval transitions, and determinized into complete DFAs
// over a shared alphabet partition. Two DFAs over the same partition can
// then be compared with a single product walk that decides disjointness,
// equality, containment, or partial overlap in one pass.
//
// Acceptance is whole-string: a machine accepts a string iff consuming every
// rune lands in an accepting state. Anchors (^, $) are therefore redundant
// and are only permitted at the edges of a pattern; interior anchors and
// word boundaries have no finite-state equivalent under these semantics and
// are rejected at compile time.
package automaton

import (
	"regexp/syntax"
	"unicode"
	"unicode/utf8"

	"github.com/chronoid/chronoid/errors"
)

// maxNFAStates bounds NFA construction, mostly to keep counted repetitions
// like \d{1,9} from expanding a hostile pattern without limit.
const maxNFAStates = 50000

type edge struct {
	lo, hi rune
	to     int
}

type nstate struct {
	edges []edge
	eps   []int
}

// NFA is a Thompson construction with a single start and single accept state.
type NFA struct {
	states []nstate
	start  int
	accept int
}

// Compile parses a pattern in RE2 syntax and builds its NFA.
//
// Returns an error wrapping errors.ErrInvalidCatalog when the pattern does
// not parse or uses a construct without a finite-state equivalent (interior
// anchors, word boundaries).
func Compile(pattern string) (*NFA, error) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidCatalog, "pattern %q does not parse: %v", pattern, err)
	}
	re = re.Simplify()

	if err := validateAnchors(re, true, true); err != nil {
		return nil, errors.Wrapf(err, "pattern %q", pattern)
	}

	b := &builder{}
	start, accept, err := b.compile(re)
	if err != nil {
		return nil, errors.Wrapf(err, "pattern %q", pattern)
	}
	return &NFA{states: b.states, start: start, accept: accept}, nil
}

// validateAnchors walks the syntax tree and confirms every anchor sits at a
// position where no input can precede (for ^) or follow (for $). atStart and
// atEnd describe the position of the subtree within the whole pattern.
func validateAnchors(re *syntax.Regexp, atStart, atEnd bool) error {
	switch re.Op {
	case syntax.OpBeginText, syntax.OpBeginLine:
		if !atStart {
			return errors.Wrap(errors.ErrInvalidCatalog, "interior ^ anchor is not supported by containment analysis")
		}
	case syntax.OpEndText, syntax.OpEndLine:
		if !atEnd {
			return errors.Wrap(errors.ErrInvalidCatalog, "interior $ anchor is not supported by containment analysis")
		}
	case syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return errors.Wrap(errors.ErrInvalidCatalog, "word boundary has no finite-state equivalent")
	case syntax.OpConcat:
		for i, sub := range re.Sub {
			subStart := atStart && zeroWidthAll(re.Sub[:i])
			subEnd := atEnd && zeroWidthAll(re.Sub[i+1:])
			if err := validateAnchors(sub, subStart, subEnd); err != nil {
				return err
			}
		}
	case syntax.OpAlternate:
		for _, sub := range re.Sub {
			if err := validateAnchors(sub, atStart, atEnd); err != nil {
				return err
			}
		}
	case syntax.OpCapture:
		return validateAnchors(re.Sub[0], atStart, atEnd)
	case syntax.OpStar, syntax.OpPlus, syntax.OpQuest, syntax.OpRepeat:
		if containsAnchor(re.Sub[0]) {
			return errors.Wrap(errors.ErrInvalidCatalog, "anchor inside repetition is not supported by containment analysis")
		}
	}
	return nil
}

// zeroWidthAll reports whether every subtree in subs can only match the
// empty string, meaning an anchor after them is still at the pattern edge.
func zeroWidthAll(subs []*syntax.Regexp) bool {
	for _, sub := range subs {
		if _, max := subWidth(sub); max != 0 {
			return false
		}
	}
	return true
}

// subWidth returns the minimum and maximum number of runes a subtree can
// consume; max is -1 when unbounded.
func subWidth(re *syntax.Regexp) (min, max int) {
	switch re.Op {
	case syntax.OpEmptyMatch, syntax.OpBeginText, syntax.OpEndText,
		syntax.OpBeginLine, syntax.OpEndLine,
		syntax.OpWordBoundary, syntax.OpNoWordBoundary, syntax.OpNoMatch:
		return 0, 0
	case syntax.OpLiteral:
		return len(re.Rune), len(re.Rune)
	case syntax.OpCharClass, syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		return 1, 1
	case syntax.OpCapture:
		return subWidth(re.Sub[0])
	case syntax.OpConcat:
		for _, sub := range re.Sub {
			smin, smax := subWidth(sub)
			min += smin
			if max == -1 || smax == -1 {
				max = -1
			} else {
				max += smax
			}
		}
		return min, max
	case syntax.OpAlternate:
		min, max = -1, 0
		for _, sub := range re.Sub {
			smin, smax := subWidth(sub)
			if min == -1 || smin < min {
				min = smin
			}
			if max != -1 && (smax == -1 || smax > max) {
				max = smax
			}
		}
		if min == -1 {
			min = 0
		}
		return min, max
	case syntax.OpStar:
		_, smax := subWidth(re.Sub[0])
		if smax == 0 {
			return 0, 0
		}
		return 0, -1
	case syntax.OpPlus:
		smin, smax := subWidth(re.Sub[0])
		if smax == 0 {
			return 0, 0
		}
		if smax == -1 {
			return smin, -1
		}
		return smin, -1
	case syntax.OpQuest:
		_, smax := subWidth(re.Sub[0])
		return 0, smax
	case syntax.OpRepeat:
		smin, smax := subWidth(re.Sub[0])
		min = smin * re.Min
		if re.Max == -1 || smax == -1 {
			return min, -1
		}
		return min, smax * re.Max
	}
	return 0, -1
}

func containsAnchor(re *syntax.Regexp) bool {
	switch re.Op {
	case syntax.OpBeginText, syntax.OpEndText, syntax.OpBeginLine, syntax.OpEndLine,
		syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return true
	}
	for _, sub := range re.Sub {
		if containsAnchor(sub) {
			return true
		}
	}
	return false
}

type builder struct {
	states []nstate
}

func (b *builder) node() (int, error) {
	if len(b.states) >= maxNFAStates {
		return 0, errors.Wrap(errors.ErrInvalidCatalog, "pattern expands to too many NFA states")
	}
	b.states = append(b.states, nstate{})
	return len(b.states) - 1, nil
}

func (b *builder) addEdge(from int, lo, hi rune, to int) {
	b.states[from].edges = append(b.states[from].edges, edge{lo: lo, hi: hi, to: to})
}

func (b *builder) addEps(from, to int) {
	b.states[from].eps = append(b.states[from].eps, to)
}

// compile returns the start and accept state of the fragment for re.
func (b *builder) compile(re *syntax.Regexp) (int, int, error) {
	switch re.Op {
	case syntax.OpEmptyMatch, syntax.OpBeginText, syntax.OpEndText,
		syntax.OpBeginLine, syntax.OpEndLine:
		// Anchors were validated to sit at pattern edges; under whole-string
		// acceptance they carry no information and compile to epsilon.
		s, err := b.node()
		if err != nil {
			return 0, 0, err
		}
		e, err := b.node()
		if err != nil {
			return 0, 0, err
		}
		b.addEps(s, e)
		return s, e, nil

	case syntax.OpNoMatch:
		s, err := b.node()
		if err != nil {
			return 0, 0, err
		}
		e, err := b.node()
		if err != nil {
			return 0, 0, err
		}
		return s, e, nil

	case syntax.OpLiteral:
		s, err := b.node()
		if err != nil {
			return 0, 0, err
		}
		cur := s
		for _, r := range re.Rune {
			next, err := b.node()
			if err != nil {
				return 0, 0, err
			}
			if re.Flags&syntax.FoldCase != 0 {
				for _, f := range foldOrbit(r) {
					b.addEdge(cur, f, f, next)
				}
			} else {
				b.addEdge(cur, r, r, next)
			}
			cur = next
		}
		return s, cur, nil

	case syntax.OpCharClass:
		s, err := b.node()
		if err != nil {
			return 0, 0, err
		}
		e, err := b.node()
		if err != nil {
			return 0, 0, err
		}
		for i := 0; i+1 < len(re.Rune); i += 2 {
			b.addEdge(s, re.Rune[i], re.Rune[i+1], e)
		}
		return s, e, nil

	case syntax.OpAnyChar:
		s, err := b.node()
		if err != nil {
			return 0, 0, err
		}
		e, err := b.node()
		if err != nil {
			return 0, 0, err
		}
		b.addEdge(s, 0, utf8.MaxRune, e)
		return s, e, nil

	case syntax.OpAnyCharNotNL:
		s, err := b.node()
		if err != nil {
			return 0, 0, err
		}
		e, err := b.node()
		if err != nil {
			return 0, 0, err
		}
		b.addEdge(s, 0, '\n'-1, e)
		b.addEdge(s, '\n'+1, utf8.MaxRune, e)
		return s, e, nil

	case syntax.OpCapture:
		return b.compile(re.Sub[0])

	case syntax.OpConcat:
		if len(re.Sub) == 0 {
			return b.compile(&syntax.Regexp{Op: syntax.OpEmptyMatch})
		}
		start, end, err := b.compile(re.Sub[0])
		if err != nil {
			return 0, 0, err
		}
		for _, sub := range re.Sub[1:] {
			s, e, err := b.compile(sub)
			if err != nil {
				return 0, 0, err
			}
			b.addEps(end, s)
			end = e
		}
		return start, end, nil

	case syntax.OpAlternate:
		s, err := b.node()
		if err != nil {
			return 0, 0, err
		}
		e, err := b.node()
		if err != nil {
			return 0, 0, err
		}
		for _, sub := range re.Sub {
			cs, ce, err := b.compile(sub)
			if err != nil {
				return 0, 0, err
			}
			b.addEps(s, cs)
			b.addEps(ce, e)
		}
		return s, e, nil

	case syntax.OpQuest:
		cs, ce, err := b.compile(re.Sub[0])
		if err != nil {
			return 0, 0, err
		}
		b.addEps(cs, ce)
		return cs, ce, nil

	case syntax.OpStar:
		s, err := b.node()
		if err != nil {
			return 0, 0, err
		}
		e, err := b.node()
		if err != nil {
			return 0, 0, err
		}
		cs, ce, err := b.compile(re.Sub[0])
		if err != nil {
			return 0, 0, err
		}
		b.addEps(s, cs)
		b.addEps(s, e)
		b.addEps(ce, cs)
		b.addEps(ce, e)
		return s, e, nil

	case syntax.OpPlus:
		cs, ce, err := b.compile(re.Sub[0])
		if err != nil {
			return 0, 0, err
		}
		e, err := b.node()
		if err != nil {
			return 0, 0, err
		}
		b.addEps(ce, cs)
		b.addEps(ce, e)
		return cs, e, nil

	case syntax.OpRepeat:
		// Expand x{m,n} into m mandatory copies followed by optional copies.
		start, end, err := b.compile(&syntax.Regexp{Op: syntax.OpEmptyMatch})
		if err != nil {
			return 0, 0, err
		}
		for i := 0; i < re.Min; i++ {
			s, e, err := b.compile(re.Sub[0])
			if err != nil {
				return 0, 0, err
			}
			b.addEps(end, s)
			end = e
		}
		if re.Max == -1 {
			s, e, err := b.compile(&syntax.Regexp{Op: syntax.OpStar, Sub: re.Sub})
			if err != nil {
				return 0, 0, err
			}
			b.addEps(end, s)
			return start, e, nil
		}
		for i := re.Min; i < re.Max; i++ {
			s, e, err := b.compile(re.Sub[0])
			if err != nil {
				return 0, 0, err
			}
			b.addEps(s, e) // optional copy
			b.addEps(end, s)
			end = e
		}
		return start, end, nil
	}

	return 0, 0, errors.Wrapf(errors.ErrInvalidCatalog, "unsupported regexp op %v", re.Op)
}

// foldOrbit returns r and every rune that case-folds to it.
func foldOrbit(r rune) []rune {
	orbit := []rune{r}
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		orbit = append(orbit, f)
	}
	return orbit
}
