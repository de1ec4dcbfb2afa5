// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Kernels return these sentinels, wrapped with a call-site tag via
// sparseErrorf; callers match them with errors.Is.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape has a negative dimension.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. x·A with len(x) != Rows, or ragged dense input.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value offered for storage.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrNilMatrix indicates a nil *CSR receiver or operand.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)

// sparseErrorf prefixes err with the operation tag, preserving errors.Is.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
