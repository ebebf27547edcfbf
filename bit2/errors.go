// SPDX-License-Identifier: MIT
// Package bit2: sentinel error set.
// All sentinels wrap ErrContractViolation; tests match them via errors.Is.
// Public methods return these (wrapped with call-site context) and never
// panic on caller input.

package bit2

import (
	"fmt"

	"github.com/katalvlaran/bitgrid/bit"
)

var (
	// ErrContractViolation is the only error class of this package.
	// It is shared with package bit so one errors.Is check covers both layers.
	ErrContractViolation = bit.ErrContractViolation

	// ErrInvalidDimensions indicates a negative width or height, or a
	// width*height product that does not fit in int.
	ErrInvalidDimensions = fmt.Errorf("%w: bit2: invalid dimensions", ErrContractViolation)

	// ErrOutOfRange indicates a coordinate (or linear index) outside the matrix.
	ErrOutOfRange = fmt.Errorf("%w: bit2: coordinate out of range", ErrContractViolation)

	// ErrNonBinary indicates a write of a value other than 0 or 1.
	ErrNonBinary = bit.ErrNonBinary

	// ErrNilMatrix indicates a method call on a nil *BitMatrix.
	ErrNilMatrix = fmt.Errorf("%w: bit2: nil matrix", ErrContractViolation)

	// ErrReleased indicates use of a matrix after Release.
	ErrReleased = fmt.Errorf("%w: bit2: matrix released", ErrContractViolation)

	// ErrNilVisitor indicates a nil VisitFunc passed to a traversal.
	ErrNilVisitor = fmt.Errorf("%w: bit2: nil visitor", ErrContractViolation)

	// ErrNonRectangular indicates FromRows input with rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: bit2: rows have differing lengths", ErrContractViolation)
)

// matrixErrorf wraps err with the method name and the offending coordinate.
func matrixErrorf(method string, col, row int, err error) error {
	return fmt.Errorf("BitMatrix.%s(%d,%d): %w", method, col, row, err)
}

// opErrorf wraps err with a method name only (no coordinate applies).
func opErrorf(method string, err error) error {
	return fmt.Errorf("BitMatrix.%s: %w", method, err)
}
