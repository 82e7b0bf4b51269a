package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronoid/chronoid/errors"
)

func TestLoadBuiltin(t *testing.T) {
	reg, err := Load(Builtin())
	require.NoError(t, err)
	assert.Equal(t, len(Builtin()), reg.Len())

	// Every builtin entry is fully anchored and self-witnessing.
	for _, d := range reg.All() {
		assert.True(t, d.Anchored, "format %s should be anchored", d.Name)
		assert.True(t, d.Matches(d.Example), "format %s example %q", d.Name, d.Example)
		assert.NotNil(t, d.NFA(), "format %s", d.Name)
	}
}

func TestLoadPreservesRegistrationOrder(t *testing.T) {
	defs := Builtin()
	reg, err := Load(defs)
	require.NoError(t, err)

	all := reg.All()
	require.Len(t, all, len(defs))
	for i, d := range all {
		assert.Equal(t, defs[i].Name, d.Name)
		assert.Equal(t, i, reg.Position(d.Name))
	}
}

func TestLoadRejectsDuplicateName(t *testing.T) {
	defs := []FormatDefinition{
		{Name: "A", Pattern: `^\d+$`, Category: CategoryISO, Example: "1"},
		{Name: "A", Pattern: `^\w+$`, Category: CategoryISO, Example: "x"},
	}
	_, err := Load(defs)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidCatalog(err))
	assert.Contains(t, err.Error(), "duplicate")
}

func TestLoadRejectsBadPattern(t *testing.T) {
	defs := []FormatDefinition{
		{Name: "BROKEN", Pattern: `^(\d+$`, Category: CategoryISO, Example: "1"},
	}
	_, err := Load(defs)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidCatalog(err))
}

func TestLoadRejectsUnsupportedConstruct(t *testing.T) {
	defs := []FormatDefinition{
		{Name: "BOUNDARY", Pattern: `\b\d{4}\b`, Category: CategoryISO, Example: "2025"},
	}
	_, err := Load(defs)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidCatalog(err))
}

func TestLoadRejectsUnknownCategory(t *testing.T) {
	defs := []FormatDefinition{
		{Name: "X", Pattern: `^\d+$`, Category: "Martian", Example: "1"},
	}
	_, err := Load(defs)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidCatalog(err))
}

func TestLoadRejectsNonMatchingExample(t *testing.T) {
	defs := []FormatDefinition{
		{Name: "X", Pattern: `^\d{4}$`, Category: CategoryISO, Example: "not-a-year"},
	}
	_, err := Load(defs)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidCatalog(err))
	assert.Contains(t, err.Error(), "example")
}

func TestMatchesIsWholeString(t *testing.T) {
	defs := []FormatDefinition{
		// Deliberately unanchored pattern: matching must still consume the
		// whole input.
		{Name: "LOOSE", Pattern: `\d{4}`, Category: CategoryISO, Example: "2025"},
	}
	reg, err := Load(defs)
	require.NoError(t, err)

	d, err := reg.Lookup("LOOSE")
	require.NoError(t, err)
	assert.False(t, d.Anchored)
	assert.True(t, d.Matches("2025"))
	assert.False(t, d.Matches("in 2025 something happened"))
}

func TestLookupNotFound(t *testing.T) {
	reg, err := Load(Builtin())
	require.NoError(t, err)

	_, err = reg.Lookup("NO_SUCH_FORMAT")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))

	d, err := reg.Lookup("ISO_DATE")
	require.NoError(t, err)
	assert.Equal(t, CategoryISO, d.Category)
}

func TestPriority(t *testing.T) {
	p, err := NewPriority([]Category{CategoryRFC, CategoryISO, CategoryRegional})
	require.NoError(t, err)
	assert.False(t, p.Empty())

	r, ok := p.Rank(CategoryRFC)
	require.True(t, ok)
	assert.Equal(t, 0, r)

	r, ok = p.Rank(CategoryRegional)
	require.True(t, ok)
	assert.Equal(t, 2, r)

	_, ok = p.Rank(CategoryCalendar)
	assert.False(t, ok)
}

func TestPriorityRejectsUnknownAndDuplicate(t *testing.T) {
	_, err := NewPriority([]Category{"Martian"})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidCatalog(err))

	_, err = NewPriority([]Category{CategoryISO, CategoryISO})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidCatalog(err))
}

func TestNilPriority(t *testing.T) {
	var p *Priority
	assert.True(t, p.Empty())
	_, ok := p.Rank(CategoryISO)
	assert.False(t, ok)
}
