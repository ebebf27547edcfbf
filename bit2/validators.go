// SPDX-License-Identifier: MIT
// Package bit2: the single source of truth for precondition checks.
// Validators return plain sentinels; callers wrap them with coordinates.

package bit2

import "math"

// validateDims checks width, height >= 0 and that width*height fits in int.
// Complexity: O(1).
func validateDims(width, height int) error {
	if width < 0 || height < 0 {
		return ErrInvalidDimensions
	}
	if width != 0 && height > math.MaxInt/width {
		return ErrInvalidDimensions
	}
	return nil
}

// validateLive rejects nil and released matrices.
// Complexity: O(1).
func validateLive(m *BitMatrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.storage == nil {
		return ErrReleased
	}
	return nil
}

// validateCoord composes validateLive with the bounds check.
// Complexity: O(1).
func validateCoord(m *BitMatrix, col, row int) error {
	if err := validateLive(m); err != nil {
		return err
	}
	if !m.InBounds(col, row) {
		return ErrOutOfRange
	}
	return nil
}
