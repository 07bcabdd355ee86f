package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Error kinds
	ErrMsgNotFound            = "not found"
	ErrMsgValidation          = "validation failed"
	ErrMsgInsufficientBalance = "insufficient balance"
	ErrMsgPersistence         = "persistence failure"

	// Validation details
	ErrMsgEmptyName           = "name must not be empty"
	ErrMsgInvalidCost         = "cost must be greater than zero"
	ErrMsgInvalidThresholds   = "thresholds must satisfy 0 = hat < nay_mam < cay_con < cay_to"
	ErrMsgHatThresholdNonZero = "hat threshold must be 0"
	ErrMsgNoDefaultClass      = "rows without a class require a default class"
	ErrMsgClassHasStudents    = "class still has students"
	ErrMsgRewardInactive      = "reward is not active"
	ErrMsgRewardClassMismatch = "reward belongs to a different class"
	ErrMsgThresholdConflict   = "thresholds were changed concurrently"
	ErrMsgInvalidSort         = "unsupported sort mode"
	ErrMsgEmptyImport         = "import contains no rows"

	// Import
	ErrMsgImportPartial = "import partially applied"

	// Transaction
	ErrMsgTxClosed = "tx is closed"
)

// Error kinds. Every error returned by the services matches exactly one of
// these through errors.Is.
var (
	ErrNotFound            = errors.New(ErrMsgNotFound)
	ErrValidation          = errors.New(ErrMsgValidation)
	ErrInsufficientBalance = errors.New(ErrMsgInsufficientBalance)
	ErrPersistence         = errors.New(ErrMsgPersistence)
)

// Not found errors
var (
	ErrStudentNotFound = fmt.Errorf("student %w", ErrNotFound)
	ErrRewardNotFound  = fmt.Errorf("reward %w", ErrNotFound)
	ErrClassNotFound   = fmt.Errorf("class %w", ErrNotFound)
)

// Validation errors
var (
	ErrEmptyName           = fmt.Errorf("%w: %s", ErrValidation, ErrMsgEmptyName)
	ErrInvalidCost         = fmt.Errorf("%w: %s", ErrValidation, ErrMsgInvalidCost)
	ErrInvalidThresholds   = fmt.Errorf("%w: %s", ErrValidation, ErrMsgInvalidThresholds)
	ErrHatThresholdNonZero = fmt.Errorf("%w: %s", ErrValidation, ErrMsgHatThresholdNonZero)
	ErrNoDefaultClass      = fmt.Errorf("%w: %s", ErrValidation, ErrMsgNoDefaultClass)
	ErrClassHasStudents    = fmt.Errorf("%w: %s", ErrValidation, ErrMsgClassHasStudents)
	ErrRewardInactive      = fmt.Errorf("%w: %s", ErrValidation, ErrMsgRewardInactive)
	ErrRewardClassMismatch = fmt.Errorf("%w: %s", ErrValidation, ErrMsgRewardClassMismatch)
	ErrThresholdConflict   = fmt.Errorf("%w: %s", ErrValidation, ErrMsgThresholdConflict)
	ErrInvalidSort         = fmt.Errorf("%w: %s", ErrValidation, ErrMsgInvalidSort)
	ErrEmptyImport         = fmt.Errorf("%w: %s", ErrValidation, ErrMsgEmptyImport)
)

// NewPersistenceError wraps a storage failure so that it matches both
// ErrPersistence and the underlying driver error.
func NewPersistenceError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrPersistence) {
		return err
	}
	return fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
}

// ErrorKind returns the kind sentinel matched by err, or nil for unknown errors.
func ErrorKind(err error) error {
	for _, kind := range []error{ErrNotFound, ErrValidation, ErrInsufficientBalance, ErrPersistence} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
