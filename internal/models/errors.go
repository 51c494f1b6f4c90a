package models

import (
	"errors"
	"fmt"
)

// The engine distinguishes four failure kinds. Mutations fail atomically with
// one of these; queries never raise for malformed resident data.
var (
	// ErrNotFound means a report or note id does not exist in the store.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState means a lifecycle transition is illegal from the
	// report's current state, e.g. resolving an already-resolved report.
	ErrInvalidState = errors.New("invalid state")
)

// ValidationError reports malformed input to a mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// InvalidArgumentError reports an out-of-range numeric parameter, e.g. a
// non-positive radius or hour window.
type InvalidArgumentError struct {
	Param  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Param, e.Reason)
}
