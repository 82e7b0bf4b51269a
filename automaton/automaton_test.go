package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronoid/chronoid/errors"
)

// build compiles patterns, determinizes them over a shared alphabet, and
// returns the minimized machines.
func build(t *testing.T, patterns ...string) []*DFA {
	t.Helper()

	nfas := make([]*NFA, len(patterns))
	for i, p := range patterns {
		nfa, err := Compile(p)
		require.NoError(t, err, "pattern %q", p)
		nfas[i] = nfa
	}
	ab := NewAlphabet(nfas)

	dfas := make([]*DFA, len(nfas))
	for i, nfa := range nfas {
		dfa, err := nfa.Determinize(ab)
		require.NoError(t, err)
		dfas[i] = dfa.Minimize()
	}
	return dfas
}

// accepts runs the DFA over the string manually.
func accepts(d *DFA, s string) bool {
	state := int32(d.start)
	for _, r := range s {
		state = d.trans[state][d.ab.Symbol(r)]
	}
	return d.accept[state]
}

func TestCompileRejectsUnsupportedConstructs(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"interior caret", `a^b`},
		{"interior dollar", `a$b`},
		{"word boundary", `\bfoo\b`},
		{"anchor inside repetition", `(?:^a)+`},
		{"unbalanced paren", `(a`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.pattern)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidCatalog(err))
		})
	}
}

func TestCompileAcceptsEdgeAnchors(t *testing.T) {
	for _, p := range []string{`^\d{4}$`, `^abc`, `abc$`, `^(?:a|b)$`, `^$`} {
		_, err := Compile(p)
		assert.NoError(t, err, "pattern %q", p)
	}
}

func TestAcceptance(t *testing.T) {
	dfas := build(t, `^\d{4}-\d{2}-\d{2}$`)
	d := dfas[0]

	assert.True(t, accepts(d, "2025-05-19"))
	assert.False(t, accepts(d, "2025-05-19T14:30:15"))
	assert.False(t, accepts(d, ""))
	assert.False(t, accepts(d, "x025-05-19"))
}

func TestCompareOutcomes(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want Outcome
	}{
		{"identical literals", `^abc$`, `^abc$`, Equal},
		{"identical via different syntax", `^\d\d$`, `^[0-9]{2}$`, Equal},
		{"digit count disjoint", `^\d{10}$`, `^\d{13}$`, Disjoint},
		{"restricted first digit subset", `^[1-9]\d{9}$`, `^\d{10,19}$`, ProperSubset},
		{"superset inverse", `^\d{10,19}$`, `^[1-9]\d{9}$`, ProperSuperset},
		{"suffix wildcards intersect", `^.*Z$`, `^.* [A-Z]{3,5}$`, Intersect},
		{"letters vs digits disjoint", `^[a-z]+$`, `^\d+$`, Disjoint},
		{"optional digit superset", `^\d{1,2}$`, `^\d$`, ProperSuperset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dfas := build(t, tt.a, tt.b)
			assert.Equal(t, tt.want, Compare(dfas[0], dfas[1]))
			assert.Equal(t, invert(tt.want), Compare(dfas[1], dfas[0]), "inverted comparison")
		})
	}
}

func invert(o Outcome) Outcome {
	switch o {
	case ProperSubset:
		return ProperSuperset
	case ProperSuperset:
		return ProperSubset
	}
	return o
}

func TestLengthProperties(t *testing.T) {
	tests := []struct {
		pattern     string
		min         int
		max         int
		bounded     bool
		fixedLength bool
	}{
		{`^\d{4}$`, 4, 4, true, true},
		{`^\d{1,9}$`, 1, 9, true, false},
		{`^\d{10,19}$`, 10, 19, true, false},
		{`^.*Z$`, 1, 0, false, false},
		{`^\d+$`, 1, 0, false, false},
		{`^abc$`, 3, 3, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			dfas := build(t, tt.pattern)
			d := dfas[0]

			min, ok := d.MinLen()
			require.True(t, ok)
			assert.Equal(t, tt.min, min)

			max, bounded := d.MaxLen()
			assert.Equal(t, tt.bounded, bounded)
			if bounded {
				assert.Equal(t, tt.max, max)
			}

			_, fixed := d.FixedLength()
			assert.Equal(t, tt.fixedLength, fixed)
		})
	}
}

func TestMinimizePreservesLanguage(t *testing.T) {
	nfa, err := Compile(`^(?:0[1-9]|1[0-2]):[0-5]\d$`)
	require.NoError(t, err)
	ab := NewAlphabet([]*NFA{nfa})

	full, err := nfa.Determinize(ab)
	require.NoError(t, err)
	min := full.Minimize()

	assert.LessOrEqual(t, min.NumStates(), full.NumStates())
	assert.Equal(t, Equal, Compare(full, min))

	for _, s := range []string{"09:30", "12:59", "13:00", "00:10", "9:30"} {
		assert.Equal(t, accepts(full, s), accepts(min, s), "input %q", s)
	}
}

func TestAlphabetSymbolLookup(t *testing.T) {
	nfa, err := Compile(`^[a-c]x$`)
	require.NoError(t, err)
	ab := NewAlphabet([]*NFA{nfa})

	// All of a, b, c must land in the same symbol; x in another.
	assert.Equal(t, ab.Symbol('a'), ab.Symbol('b'))
	assert.Equal(t, ab.Symbol('a'), ab.Symbol('c'))
	assert.NotEqual(t, ab.Symbol('a'), ab.Symbol('x'))
	assert.NotEqual(t, ab.Symbol('a'), ab.Symbol('d'))
}

func TestEmptyLanguage(t *testing.T) {
	// Impossible class: character class with no members via negation
	dfas := build(t, `^[^\x00-\x{10FFFF}]$`)
	assert.True(t, dfas[0].Empty())

	_, ok := dfas[0].MinLen()
	assert.False(t, ok)
}
