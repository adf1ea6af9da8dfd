// Package mergeplan plans fragment consolidation for multi-dimensional
// arrays. Given a snapshot of fragment descriptors — URI, non-empty
// domain, on-disk size, in write order — and a target fragment size, it
// partitions the fragments into nodes: groups to be merged in a single
// consolidation pass. Fragments whose domains overlap, directly or
// through a chain of overlaps, always land in the same node; a lone
// fragment already over the size budget becomes a single-fragment node
// marked for splitting; the remaining small fragments are combined
// toward the budget.
//
// A Plan is immutable once built and safe for concurrent readers. The
// planner performs no I/O: enumerating fragments and executing the plan
// belong to the storage layer.
package mergeplan

import "errors"

// Sentinel errors for programmatic handling. Callers can use errors.Is
// to distinguish invalid input (ErrZeroBudget, ErrInvalidDomain,
// ErrDimensionMismatch, ErrEmptyNode) from misuse of a valid plan
// (ErrNodeOutOfBounds, ErrFragmentOutOfBounds) and from undecodable
// payloads (ErrDecode).
var (
	ErrZeroBudget          = errors.New("fragment size budget must be positive")
	ErrInvalidDomain       = errors.New("fragment domain is empty or has inverted bounds")
	ErrDimensionMismatch   = errors.New("fragment domains disagree on dimensionality")
	ErrEmptyNode           = errors.New("plan node contains no fragments")
	ErrNodeOutOfBounds     = errors.New("trying to access a node that doesn't exist")
	ErrFragmentOutOfBounds = errors.New("trying to access a fragment that doesn't exist")
	ErrDecode              = errors.New("plan decoding failed")
)
