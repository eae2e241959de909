package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, Wrap("list notices", nil))
}

func TestWrap_MessageAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap("list notices", cause)

	assert.EqualError(t, err, "list notices: connection refused")
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsDataAccess(err))
}

func TestWrap_DoesNotDoubleWrap(t *testing.T) {
	inner := Wrap("replace items", errors.New("boom"))
	outer := Wrap("update menu", inner)

	assert.Same(t, inner, outer)
}

func TestIsDataAccess_ThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("handler: %w", Wrap("stats", errors.New("x")))
	assert.True(t, IsDataAccess(err))
	assert.False(t, IsDataAccess(errors.New("plain")))
}

func TestDataAccessError_NilCause(t *testing.T) {
	err := &DataAccessError{Op: "verify feedback"}
	assert.Equal(t, "verify feedback", err.Error())
	assert.Nil(t, err.Unwrap())
}
