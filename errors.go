package ggforce

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDescriptor is matched by errors describing malformed curve
	// parameters: too few control points, negative or inverted radii, or
	// non-finite coordinates.
	ErrInvalidDescriptor = errors.New("invalid curve descriptor")
	// ErrInvalidResolution is matched by errors describing an unusable
	// [Resolution].
	ErrInvalidResolution = errors.New("invalid sample resolution")
	// ErrDuplicateGroup is returned by the batch driver when two instances
	// share a group identifier.
	ErrDuplicateGroup = errors.New("duplicate group identifier")
)

// DescriptorError describes why a curve descriptor was rejected.
type DescriptorError struct {
	Kind   Kind
	Reason string
}

func (e *DescriptorError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidDescriptor, e.Kind, e.Reason)
}

func (e *DescriptorError) Unwrap() error { return ErrInvalidDescriptor }

func invalid(k Kind, format string, args ...any) error {
	return &DescriptorError{Kind: k, Reason: fmt.Sprintf(format, args...)}
}

// ResolutionError describes why a [Resolution] was rejected.
type ResolutionError struct {
	Resolution Resolution
	Reason     string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s %v: %s", ErrInvalidResolution, e.Resolution, e.Reason)
}

func (e *ResolutionError) Unwrap() error { return ErrInvalidResolution }

// BatchError reports the first instance of a batch that failed validation. No
// output is produced for a batch that fails.
type BatchError struct {
	// Index is the position of the offending instance in the input, or -1 if
	// the failure is not specific to one instance (an invalid resolution).
	Index int
	Group string
	Err   error
}

func (e *BatchError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("batch failed: %s", e.Err)
	}
	return fmt.Sprintf("batch failed at instance %d (group %q): %s", e.Index, e.Group, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }
