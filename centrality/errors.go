// SPDX-License-Identifier: MIT
// Package centrality: sentinel errors and the typed non-convergence failure.
//
// All failures are terminal for the call that produced them: no partial
// scores are ever returned alongside an error. Match with errors.Is; use
// errors.As to recover the iteration bound of a non-convergence.

package centrality

import (
	"errors"
	"fmt"
)

var (
	// ErrNilGraph indicates a nil Graph adapter or a nil adjacency matrix.
	ErrNilGraph = errors.New("centrality: graph is nil")

	// ErrDimensionMismatch indicates len(nodelist) != A.Rows() or A is not square.
	ErrDimensionMismatch = errors.New("centrality: nodelist and adjacency matrix are not aligned")

	// ErrOptionViolation indicates an invalid option value (alpha outside [0,1],
	// negative max_iter, negative or non-finite tol, negative or non-finite mapping weights,
	// or a mapping keyed by a type other than the graph's node type).
	ErrOptionViolation = errors.New("centrality: invalid option supplied")

	// ErrZeroPersonalization indicates the personalization mapping sums to 0
	// over the nodelist, so it cannot be normalized into a distribution.
	ErrZeroPersonalization = errors.New("centrality: personalization vector sums to zero")

	// ErrZeroNStart indicates the nstart mapping sums to 0 over the nodelist.
	ErrZeroNStart = errors.New("centrality: nstart vector sums to zero")

	// ErrZeroDangling indicates the dangling mapping sums to 0 over the nodelist.
	ErrZeroDangling = errors.New("centrality: dangling vector sums to zero")

	// ErrZeroVector indicates HITS produced an all-zero iterate (no node has an
	// incoming edge), which cannot be rescaled by its maximum.
	ErrZeroVector = errors.New("centrality: power iteration collapsed to the zero vector")

	// ErrPowerIterationFailedConvergence is matched by every
	// *PowerIterationFailedConvergence via errors.Is.
	ErrPowerIterationFailedConvergence = errors.New("centrality: power iteration failed to converge")
)

// PowerIterationFailedConvergence reports that the iteration bound was
// exhausted before the L1 residual dropped below the tolerance.
type PowerIterationFailedConvergence struct {
	// MaxIter is the bound the caller configured.
	MaxIter int
}

// Error implements error.
func (e *PowerIterationFailedConvergence) Error() string {
	return fmt.Sprintf("%s within %d iterations", ErrPowerIterationFailedConvergence.Error(), e.MaxIter)
}

// Is makes errors.Is(err, ErrPowerIterationFailedConvergence) true.
func (e *PowerIterationFailedConvergence) Is(target error) bool {
	return target == ErrPowerIterationFailedConvergence
}

// centralityErrorf prefixes err with the operation tag, preserving errors.Is.
func centralityErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
