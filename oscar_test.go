package oscar_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/oscar"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := oscar.Errorf(oscar.ECREDITS, "no credit hours in block %d", 2)

	assert.Equal(t, oscar.ECREDITS, oscar.ErrorCode(err))
	assert.Equal(t, "no credit hours in block 2", oscar.ErrorMessage(err))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("term 202008: %w", oscar.Errorf(oscar.EBOUNDARY, "missing"))

	assert.Equal(t, oscar.EBOUNDARY, oscar.ErrorCode(err))
	assert.Equal(t, "missing", oscar.ErrorMessage(err))
}

func TestErrorCode_ForeignError(t *testing.T) {
	t.Parallel()

	err := errors.New("connection reset")

	assert.Equal(t, oscar.EINTERNAL, oscar.ErrorCode(err))
	assert.Equal(t, "Internal error", oscar.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, oscar.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, oscar.ErrorMessage(nil))
}
