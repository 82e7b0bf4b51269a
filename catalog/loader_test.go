package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronoid/chronoid/errors"
)

const sampleCatalog = `
formats:
  - name: ISO_DATE
    pattern: '^\d{4}-\d{2}-\d{2}$'
    template: YYYY-MM-DD
    category: ISO
    example: "2025-05-19"
  - name: UNIX_SECONDS
    pattern: '^[1-9]\d{9}$'
    template: seconds since epoch
    category: Unix/Epoch
    example: "1716159600"
priority: [RFC, ISO, Regional]
`

func TestParse(t *testing.T) {
	reg, prio, err := Parse([]byte(sampleCatalog))
	require.NoError(t, err)

	assert.Equal(t, 2, reg.Len())
	d, err := reg.Lookup("ISO_DATE")
	require.NoError(t, err)
	assert.True(t, d.Matches("2025-05-19"))

	require.NotNil(t, prio)
	r, ok := prio.Rank(CategoryISO)
	require.True(t, ok)
	assert.Equal(t, 1, r)
}

func TestParseWithoutPriority(t *testing.T) {
	_, prio, err := Parse([]byte(`
formats:
  - name: X
    pattern: '^\d+$'
    category: ISO
    example: "1"
`))
	require.NoError(t, err)
	assert.Nil(t, prio)
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, _, err := Parse([]byte(`formats: [}`))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidCatalog(err))
}

func TestParseRejectsEmptyCatalog(t *testing.T) {
	_, _, err := Parse([]byte(`priority: [ISO]`))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidCatalog(err))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o644))

	reg, _, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())

	_, _, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
