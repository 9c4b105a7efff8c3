package errors

import (
	"fmt"

	"github.com/go-gryf/gryf"
)

// SchemaMismatchError occurs when an appended operation's required input schema
// disagrees with the running schema of the pipeline under construction
type SchemaMismatchError struct {
	Op       string
	Expected gryf.Schema
	Actual   gryf.Schema
}

// Error returns a textual representation of this SchemaMismatchError
func (e SchemaMismatchError) Error() string {
	return fmt.Sprintf("Operation %s requires input schema %s but the current schema is %s", e.Op, e.Expected, e.Actual)
}

// UnsupportedFormatError occurs when a configured source format is not in the
// supported set
type UnsupportedFormatError struct {
	Format gryf.DataFormat
}

// Error returns a textual representation of this UnsupportedFormatError
func (e UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s is not a supported input format", e.Format)
}

// CompositionError occurs when pipeline composition fails after intermediate
// storage allocation has begun. Allocated locations are rolled back before it
// is surfaced.
type CompositionError struct {
	Cause error
}

// Error returns a textual representation of this CompositionError
func (e CompositionError) Error() string {
	return fmt.Sprintf("Unable to compose pipeline: %v", e.Cause)
}

// Unwrap returns the underlying failure
func (e CompositionError) Unwrap() error {
	return e.Cause
}

// ExecutionError occurs when a stage fails inside the substrate. Stages already
// completed are not undone.
type ExecutionError struct {
	StageIndex int
	Cause      error
}

// Error returns a textual representation of this ExecutionError
func (e ExecutionError) Error() string {
	return fmt.Sprintf("Stage %d failed: %v", e.StageIndex, e.Cause)
}

// Unwrap returns the underlying substrate failure
func (e ExecutionError) Unwrap() error {
	return e.Cause
}
