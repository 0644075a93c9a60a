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

func TestNewf(t *testing.T) {
	err := Newf("error: %s %d", "test", 42)
	require.NotNil(t, err)
	assert.Equal(t, "error: test 42", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWrapf(t *testing.T) {
	original := New("original")
	wrapped := Wrapf(original, "wrapped: %d", 42)

	assert.Contains(t, wrapped.Error(), "wrapped: 42")
	assert.Contains(t, wrapped.Error(), "original")
}

func TestIs(t *testing.T) {
	err1 := New("error 1")
	err2 := New("error 2")
	wrapped := Wrap(err1, "wrapped")

	assert.True(t, Is(wrapped, err1))
	assert.False(t, Is(wrapped, err2))
	assert.False(t, Is(nil, err1))
}

func TestMark(t *testing.T) {
	sentinel := New("sentinel")
	err := Mark(New("specific failure"), sentinel)

	assert.True(t, Is(err, sentinel))
	assert.Equal(t, "specific failure", err.Error())
}

func TestWithHint(t *testing.T) {
	err := WithHint(New("boom"), "try again")
	hints := GetAllHints(err)

	require.Len(t, hints, 1)
	assert.Equal(t, "try again", hints[0])
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
}

func TestUnwrap(t *testing.T) {
	original := fmt.Errorf("inner")
	wrapped := Wrap(original, "outer")

	assert.True(t, Is(wrapped, original))
	assert.NotNil(t, Unwrap(wrapped))
}
