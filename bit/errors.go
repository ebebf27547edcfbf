// SPDX-License-Identifier: MIT
// Package bit: sentinel error set.
// Every sentinel wraps ErrContractViolation so callers can match either the
// precise condition or the whole class with errors.Is.

package bit

import (
	"errors"
	"fmt"
)

var (
	// ErrContractViolation is the single error class of this package: a caller
	// broke a documented precondition.
	ErrContractViolation = errors.New("bit: contract violation")

	// ErrInvalidLength is returned by New for a negative length, or a length
	// the selected storage cannot address.
	ErrInvalidLength = fmt.Errorf("%w: invalid length", ErrContractViolation)

	// ErrOutOfRange indicates an index outside [0, Len()).
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrContractViolation)

	// ErrNonBinary indicates a write of a value other than 0 or 1.
	ErrNonBinary = fmt.Errorf("%w: value is not 0 or 1", ErrContractViolation)

	// ErrReleased indicates use of a vector after Release.
	ErrReleased = fmt.Errorf("%w: vector released", ErrContractViolation)
)

// vectorErrorf attaches the method name and index to a sentinel.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}
