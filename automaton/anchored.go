package automaton

import "regexp/syntax"

// Anchored reports whether the pattern is fully anchored: it begins with a
// start-of-text anchor and ends with an end-of-text anchor, so it can only
// ever match a string in its entirety. Unparseable patterns report false.
func Anchored(pattern string) bool {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return false
	}
	re = re.Simplify()
	return startsAnchored(re) && endsAnchored(re)
}

func startsAnchored(re *syntax.Regexp) bool {
	switch re.Op {
	case syntax.OpBeginText, syntax.OpBeginLine:
		return true
	case syntax.OpConcat:
		if len(re.Sub) == 0 {
			return false
		}
		return startsAnchored(re.Sub[0])
	case syntax.OpCapture:
		return startsAnchored(re.Sub[0])
	case syntax.OpAlternate:
		for _, sub := range re.Sub {
			if !startsAnchored(sub) {
				return false
			}
		}
		return len(re.Sub) > 0
	}
	return false
}

func endsAnchored(re *syntax.Regexp) bool {
	switch re.Op {
	case syntax.OpEndText, syntax.OpEndLine:
		return true
	case syntax.OpConcat:
		if len(re.Sub) == 0 {
			return false
		}
		return endsAnchored(re.Sub[len(re.Sub)-1])
	case syntax.OpCapture:
		return endsAnchored(re.Sub[0])
	case syntax.OpAlternate:
		for _, sub := range re.Sub {
			if !endsAnchored(sub) {
				return false
			}
		}
		return len(re.Sub) > 0
	}
	return false
}
