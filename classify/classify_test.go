package classify_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronoid/chronoid/catalog"
	"github.com/chronoid/chronoid/classify"
	"github.com/chronoid/chronoid/errors"
	"github.com/chronoid/chronoid/overlap"
)

func newEngine(t *testing.T, prio *catalog.Priority) *classify.Engine {
	t.Helper()
	e, err := classify.NewEngine(context.Background(), catalog.Builtin(), prio, overlap.Options{})
	require.NoError(t, err)
	return e
}

func TestClassifyBuiltinInputs(t *testing.T) {
	e := newEngine(t, nil)

	tests := []struct {
		name    string
		input   string
		status  classify.Status
		winner  string
		winners []string
	}{
		{
			name:   "iso date",
			input:  "2025-05-19",
			status: classify.Unique,
			winner: "ISO_DATE",
		},
		{
			name:   "epoch seconds beat generic epoch",
			input:  "1716159600",
			status: classify.Unique,
			winner: "UNIX_SECONDS",
		},
		{
			name:    "slash datetime is regionally ambiguous",
			input:   "05/19/2025 14:30:15",
			status:  classify.Ambiguous,
			winners: []string{"US_DATETIME", "EU_DATETIME"},
		},
		{
			name:    "offset datetime has three equal spellings",
			input:   "2025-05-19T14:30:15+02:00",
			status:  classify.Ambiguous,
			winners: []string{"ISO_DATETIME_TZ", "RFC_3339", "W3C_DTF"},
		},
		{
			name:   "garbage",
			input:  "not a timestamp",
			status: classify.NoMatch,
		},
		{
			name:    "seventeen digits",
			input:   "20250519143015234",
			status:  classify.Ambiguous,
			winners: []string{"COMPACT_TIMESTAMP", "CONTINUOUS_DATETIME"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := e.Classify(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.status, res.Status)
			assert.Equal(t, tt.winner, res.Winner)
			if tt.winners != nil {
				assert.Equal(t, tt.winners, res.Winners)
			}
			assert.False(t, res.OverrideApplied)
		})
	}
}

func TestCandidatesAreExhaustive(t *testing.T) {
	reg, err := catalog.Load(catalog.Builtin())
	require.NoError(t, err)

	// A 17 digit run matches three digit-run formats; registration
	// order must be preserved and none may be skipped.
	got := classify.Candidates(reg, "20250519143015234")
	assert.Equal(t, []string{"COMPACT_TIMESTAMP", "CONTINUOUS_DATETIME", "CUSTOM_EPOCH"}, got)

	assert.Nil(t, classify.Candidates(reg, ""))
}

func TestEveryBuiltinExampleMatchesItself(t *testing.T) {
	e := newEngine(t, nil)
	for _, def := range e.Registry().All() {
		res, err := e.Classify(def.Example)
		require.NoError(t, err)
		assert.NotEqual(t, classify.NoMatch, res.Status, def.Name)
		assert.Contains(t, res.Candidates, def.Name, def.Name)
	}
}

func TestIdenticalFormatsAlwaysTieTogether(t *testing.T) {
	e := newEngine(t, nil)
	g := e.Graph()

	for _, def := range e.Registry().All() {
		class := g.EquivalenceClass(def.Name)
		if len(class) < 2 {
			continue
		}
		res, err := e.Classify(def.Example)
		require.NoError(t, err)
		for _, name := range class {
			assert.Contains(t, res.Winners, name,
				"%s matched %q so %s must too", def.Name, def.Example, name)
		}
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	e := newEngine(t, nil)
	first, err := e.Classify("2025-05-19T14:30:15+02:00")
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		res, err := e.Classify("2025-05-19T14:30:15+02:00")
		require.NoError(t, err)
		assert.Equal(t, first, res)
	}
}

func TestPriorityOverride(t *testing.T) {
	t.Run("resolves distinct categories", func(t *testing.T) {
		prio, err := catalog.NewPriority([]catalog.Category{
			catalog.CategoryLegacy,
			catalog.CategoryLanguageSystem,
		})
		require.NoError(t, err)
		e := newEngine(t, prio)

		res, err := e.Classify("20250519143015234")
		require.NoError(t, err)
		assert.Equal(t, classify.Unique, res.Status)
		assert.Equal(t, "CONTINUOUS_DATETIME", res.Winner)
		assert.True(t, res.OverrideApplied)
	})

	t.Run("cannot split one category", func(t *testing.T) {
		prio, err := catalog.NewPriority([]catalog.Category{catalog.CategoryRegional})
		require.NoError(t, err)
		e := newEngine(t, prio)

		res, err := e.Classify("05/19/2025 14:30:15")
		require.NoError(t, err)
		assert.Equal(t, classify.Ambiguous, res.Status)
		assert.False(t, res.OverrideApplied)
	})

	t.Run("requires every winner to be ranked", func(t *testing.T) {
		// Legacy is listed but LanguageSystem is not, so the tie
		// between the two seventeen digit formats must stand.
		prio, err := catalog.NewPriority([]catalog.Category{catalog.CategoryLegacy})
		require.NoError(t, err)
		e := newEngine(t, prio)

		res, err := e.Classify("20250519143015234")
		require.NoError(t, err)
		assert.Equal(t, classify.Ambiguous, res.Status)
	})

	t.Run("best category must hold one winner", func(t *testing.T) {
		prio, err := catalog.NewPriority([]catalog.Category{
			catalog.CategoryISO,
			catalog.CategoryRFC,
		})
		require.NoError(t, err)
		e := newEngine(t, prio)

		res, err := e.Classify("2025-05-19T14:30:15+02:00")
		require.NoError(t, err)
		assert.Equal(t, classify.Unique, res.Status)
		assert.Equal(t, "ISO_DATETIME_TZ", res.Winner)
		assert.True(t, res.OverrideApplied)

		// With RFC first, two formats share the best category.
		prio, err = catalog.NewPriority([]catalog.Category{
			catalog.CategoryRFC,
			catalog.CategoryISO,
		})
		require.NoError(t, err)
		e = newEngine(t, prio)

		res, err = e.Classify("2025-05-19T14:30:15+02:00")
		require.NoError(t, err)
		assert.Equal(t, classify.Ambiguous, res.Status)
	})
}

func TestEngineReload(t *testing.T) {
	e := newEngine(t, nil)

	res, err := e.Classify("2025-05-19")
	require.NoError(t, err)
	assert.Equal(t, "ISO_DATE", res.Winner)

	err = e.Reload(context.Background(), []catalog.FormatDefinition{
		{Name: "DASHED_DATE", Pattern: `^\d{4}-\d{2}-\d{2}$`, Category: catalog.CategoryISO, Example: "2025-05-19"},
	}, nil, overlap.Options{})
	require.NoError(t, err)

	res, err = e.Classify("2025-05-19")
	require.NoError(t, err)
	assert.Equal(t, "DASHED_DATE", res.Winner)
}

func TestEngineReloadKeepsOldCatalogOnError(t *testing.T) {
	e := newEngine(t, nil)

	err := e.Reload(context.Background(), []catalog.FormatDefinition{
		{Name: "BROKEN", Pattern: `^(unclosed$`, Category: catalog.CategoryISO, Example: "x"},
	}, nil, overlap.Options{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidCatalog(err))

	res, err := e.Classify("2025-05-19")
	require.NoError(t, err)
	assert.Equal(t, "ISO_DATE", res.Winner)
}
