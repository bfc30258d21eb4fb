package assemble

import "errors"

// Sentinel errors for the assemble package.
var (
	// ErrInvariantViolation indicates the assertion in spec.md §4.6 that
	// both endpoints of a scored connection share an instance id failed.
	// This indicates a partitioner bug and is fatal (spec.md §7
	// InvariantError).
	ErrInvariantViolation = errors.New("assemble: connection endpoints are not in the same instance")
)
