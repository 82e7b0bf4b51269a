package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestIs(t *testing.T) {
	err1 := New("error 1")
	err2 := New("error 2")
	wrapped := Wrap(err1, "wrapped")

	assert.True(t, Is(wrapped, err1))
	assert.False(t, Is(wrapped, err2))
	assert.False(t, Is(nil, err1))
}

func TestSentinels(t *testing.T) {
	err := NewInvalidCatalogError("duplicate name %q", "ISO_DATE")
	assert.True(t, IsInvalidCatalog(err))
	assert.False(t, IsInvariantViolation(err))
	assert.Contains(t, err.Error(), "ISO_DATE")

	err = NewInvariantViolationError("containment cycle through %q", "UNIX_SECONDS")
	assert.True(t, IsInvariantViolation(err))
	assert.False(t, IsInvalidCatalog(err))

	err = NewNotFoundError("format %q", "NOPE")
	assert.True(t, IsNotFoundError(err))
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	err := Wrap(NewInvalidCatalogError("bad pattern"), "loading catalog")
	err = Wrap(err, "startup")

	assert.True(t, IsInvalidCatalog(err))
	assert.Contains(t, err.Error(), "startup")
	assert.Contains(t, err.Error(), "bad pattern")
}

func TestWithHint(t *testing.T) {
	err := New("error")
	withHint := WithHint(err, "try this fix")

	hints := GetAllHints(withHint)
	require.Len(t, hints, 1)
	assert.Equal(t, "try this fix", hints[0])
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithStack(nil))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WithDetail(nil, "detail"))
}

func ExampleWrap() {
	baseErr := New("pattern does not compile")
	err := Wrap(baseErr, "failed to load catalog")
	fmt.Println(err)
	// Output: failed to load catalog: pattern does not compile
}
