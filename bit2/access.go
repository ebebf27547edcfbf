// SPDX-License-Identifier: MIT

package bit2

import "github.com/katalvlaran/bitgrid/bit"

// Get returns the bit stored at (col,row).
//
// Errors (wrapped with the coordinate):
//   - ErrNilMatrix, ErrReleased, ErrOutOfRange.
//
// Complexity: O(1).
func (m *BitMatrix) Get(col, row int) (bit.Bit, error) {
	if err := validateCoord(m, col, row); err != nil {
		return bit.Zero, matrixErrorf(ctxGet, col, row, err)
	}
	b, err := m.storage.Get(m.index(col, row))
	if err != nil {
		return bit.Zero, matrixErrorf(ctxGet, col, row, err)
	}
	return b, nil
}

// Put stores b at (col,row) and returns the bit that was there before.
// The previous value makes compare-and-swap style updates and undo logs
// possible without a separate Get.
//
// Errors (wrapped with the coordinate):
//   - ErrNilMatrix, ErrReleased, ErrOutOfRange, ErrNonBinary.
//
// On error the matrix is unchanged.
// Complexity: O(1).
func (m *BitMatrix) Put(col, row int, b bit.Bit) (prev bit.Bit, err error) {
	if err = validateCoord(m, col, row); err != nil {
		return bit.Zero, matrixErrorf(ctxPut, col, row, err)
	}
	if !b.Valid() {
		return bit.Zero, matrixErrorf(ctxPut, col, row, ErrNonBinary)
	}
	prev, err = m.storage.Put(m.index(col, row), b)
	if err != nil {
		return bit.Zero, matrixErrorf(ctxPut, col, row, err)
	}
	return prev, nil
}

// Fill stores b in every cell.
// Errors: ErrNilMatrix, ErrReleased, ErrNonBinary.
// Complexity: O(w·h/64) dense.
func (m *BitMatrix) Fill(b bit.Bit) error {
	if err := validateLive(m); err != nil {
		return opErrorf(ctxFill, err)
	}
	if !b.Valid() {
		return opErrorf(ctxFill, ErrNonBinary)
	}
	if err := m.storage.Fill(b); err != nil {
		return opErrorf(ctxFill, err)
	}
	return nil
}

// Count returns the number of set cells. Zero for nil or released matrices.
func (m *BitMatrix) Count() int {
	if validateLive(m) != nil {
		return 0
	}
	return m.storage.Count()
}
