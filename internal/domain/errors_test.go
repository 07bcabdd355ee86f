package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecificErrorsMatchTheirKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"student not found", ErrStudentNotFound, ErrNotFound},
		{"reward not found", ErrRewardNotFound, ErrNotFound},
		{"class not found", ErrClassNotFound, ErrNotFound},
		{"empty name", ErrEmptyName, ErrValidation},
		{"invalid cost", ErrInvalidCost, ErrValidation},
		{"invalid thresholds", ErrInvalidThresholds, ErrValidation},
		{"class has students", ErrClassHasStudents, ErrValidation},
		{"threshold conflict", ErrThresholdConflict, ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.kind)
			assert.Equal(t, tt.kind, ErrorKind(tt.err))
		})
	}
	assert.Equal(t, "student not found", ErrStudentNotFound.Error())
}

func TestNewPersistenceError(t *testing.T) {
	driverErr := errors.New("connection reset")

	err := NewPersistenceError("update student", driverErr)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, driverErr)
	assert.Contains(t, err.Error(), "update student")
	assert.Equal(t, ErrPersistence, ErrorKind(err))

	// already wrapped errors are returned unchanged
	assert.Same(t, err, NewPersistenceError("outer", err))
	assert.NoError(t, NewPersistenceError("noop", nil))
}

func TestErrorKind_Unknown(t *testing.T) {
	assert.Nil(t, ErrorKind(errors.New("boom")))
	assert.Nil(t, ErrorKind(nil))
}

func TestImportError(t *testing.T) {
	ok := ImportGroupResult{ClassName: "10A", Imported: 2}
	failed := ImportGroupResult{ClassName: "9B"}.WithError(NewPersistenceError("insert student", errors.New("disk full")))

	err := &ImportError{Succeeded: []ImportGroupResult{ok}, Failed: []ImportGroupResult{failed}}

	assert.Contains(t, err.Error(), "1 of 2 groups failed")
	assert.Contains(t, err.Error(), "9B")
	assert.ErrorIs(t, err, ErrPersistence)
	assert.True(t, failed.Failed())
	assert.False(t, ok.Failed())

	result := &ImportResult{Groups: []ImportGroupResult{ok, failed}}
	require.Len(t, result.Failed(), 1)
	assert.Equal(t, "9B", result.Failed()[0].ClassName)
}

func TestStudentSort_Valid(t *testing.T) {
	assert.True(t, SortByPoints.Valid())
	assert.True(t, SortByName.Valid())
	assert.True(t, SortByOrder.Valid())
	assert.False(t, StudentSort("random").Valid())
}
