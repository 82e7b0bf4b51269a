package rank_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronoid/chronoid/catalog"
	"github.com/chronoid/chronoid/errors"
	"github.com/chronoid/chronoid/overlap"
	"github.com/chronoid/chronoid/rank"
)

func builtinRanks(t *testing.T) *rank.Specificity {
	t.Helper()
	reg, err := catalog.Load(catalog.Builtin())
	require.NoError(t, err)
	g, err := overlap.Analyze(context.Background(), reg, overlap.Options{})
	require.NoError(t, err)
	return rank.Build(g)
}

func TestValueCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b rank.Value
		want int
	}{
		{"equal", rank.Value{Depth: 1, Structural: 2}, rank.Value{Depth: 1, Structural: 2}, 0},
		{"depth wins", rank.Value{Depth: 2, Structural: 0}, rank.Value{Depth: 1, Structural: 2}, 1},
		{"structural breaks tie", rank.Value{Depth: 1, Structural: 2}, rank.Value{Depth: 1, Structural: 1}, 1},
		{"lower depth", rank.Value{Depth: 0, Structural: 2}, rank.Value{Depth: 3, Structural: 0}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
		})
	}
}

func TestSubsetOutranksSuperset(t *testing.T) {
	s := builtinRanks(t)

	pairs := []struct{ narrow, wide string }{
		{"UNIX_SECONDS", "CUSTOM_EPOCH"},
		{"COMPACT_TIMESTAMP", "CUSTOM_EPOCH"},
		{"RFC_3339", "ISO_TZ_OFFSET"},
		{"ISO_DATETIME_UTC", "ZULU_INDICATOR"},
		{"THAI_CALENDAR", "ISO_DATE"},
	}
	for _, p := range pairs {
		narrow, err := s.Of(p.narrow)
		require.NoError(t, err)
		wide, err := s.Of(p.wide)
		require.NoError(t, err)
		assert.Equal(t, 1, narrow.Compare(wide), "%s should outrank %s", p.narrow, p.wide)
		assert.Greater(t, narrow.Depth, wide.Depth)
	}
}

func TestIndistinguishableFormatsTie(t *testing.T) {
	s := builtinRanks(t)

	groups := [][]string{
		{"US_DATETIME", "EU_DATETIME"},
		{"ISO_DATETIME_TZ", "RFC_3339", "W3C_DTF"},
		{"COMPACT_TIMESTAMP", "CONTINUOUS_DATETIME"},
		{"ORDINAL_DATE_SHORT", "JULIAN_SHORT"},
	}
	for _, group := range groups {
		first, err := s.Of(group[0])
		require.NoError(t, err)
		for _, name := range group[1:] {
			v, err := s.Of(name)
			require.NoError(t, err)
			assert.Equal(t, 0, first.Compare(v), "%s and %s accept the same strings", group[0], name)
		}
	}
}

func TestStructuralScoreFollowsLengthProfile(t *testing.T) {
	s := builtinRanks(t)

	isoDate, err := s.Of("ISO_DATE") // every match is 10 runes long
	require.NoError(t, err)
	assert.Equal(t, 2, isoDate.Structural)

	epoch, err := s.Of("CUSTOM_EPOCH") // 10 to 19 digits
	require.NoError(t, err)
	assert.Equal(t, 1, epoch.Structural)

	zulu, err := s.Of("ZULU_INDICATOR") // arbitrarily long prefix
	require.NoError(t, err)
	assert.Equal(t, 0, zulu.Structural)
}

func TestOfUnknownFormat(t *testing.T) {
	s := builtinRanks(t)
	_, err := s.Of("NO_SUCH_FORMAT")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDepthIsLongestChain(t *testing.T) {
	reg, err := catalog.Load([]catalog.FormatDefinition{
		{Name: "ANY_DIGITS", Pattern: `^\d+$`, Category: catalog.CategoryUnixEpoch, Example: "1"},
		{Name: "TEN_PLUS", Pattern: `^\d{10,19}$`, Category: catalog.CategoryUnixEpoch, Example: "1716159600"},
		{Name: "EXACT_TEN", Pattern: `^\d{10}$`, Category: catalog.CategoryUnixEpoch, Example: "1716159600"},
		{Name: "NONZERO_TEN", Pattern: `^[1-9]\d{9}$`, Category: catalog.CategoryUnixEpoch, Example: "1716159600"},
	})
	require.NoError(t, err)
	g, err := overlap.Analyze(context.Background(), reg, overlap.Options{})
	require.NoError(t, err)
	s := rank.Build(g)

	wantDepth := map[string]int{
		"ANY_DIGITS":  0,
		"TEN_PLUS":    1,
		"EXACT_TEN":   2,
		"NONZERO_TEN": 3,
	}
	for name, want := range wantDepth {
		v, err := s.Of(name)
		require.NoError(t, err)
		assert.Equal(t, want, v.Depth, name)
	}
}
