// SPDX-License-Identifier: MIT

package bit2

import (
	"strings"

	"github.com/katalvlaran/bitgrid/bit"
)

// ---------- Formatting literals ----------
const (
	_fmtZero    = '0'
	_fmtOne     = '1'
	_fmtRowEnd  = '\n'
	_fmtNil     = "<nil>"
	_fmtRelease = "<released>"
)

// Clone returns a deep copy with the same shape and storage kind.
// Cloning a released matrix yields a released matrix; nil yields nil.
// Complexity: O(w·h/64) dense.
func (m *BitMatrix) Clone() *BitMatrix {
	if m == nil {
		return nil
	}
	c := &BitMatrix{width: m.width, height: m.height}
	if m.storage != nil {
		c.storage = m.storage.Clone()
	}
	return c
}

// Equal reports whether m and other have the same shape and the same bits.
// Storage kinds may differ. Two nil matrices are equal; released matrices
// are equal to nothing but themselves.
// Complexity: O(k) where k is the number of set cells.
func (m *BitMatrix) Equal(other *BitMatrix) bool {
	if m == other {
		return true
	}
	if validateLive(m) != nil || validateLive(other) != nil {
		return false
	}
	if m.width != other.width || m.height != other.height {
		return false
	}
	if m.storage.Count() != other.storage.Count() {
		return false
	}
	for i, ok := m.storage.NextSet(0); ok; i, ok = m.storage.NextSet(i + 1) {
		b, err := other.storage.Get(i)
		if err != nil || b != bit.One {
			return false
		}
	}
	return true
}

// String renders one line per row, '0' and '1' per cell, each line ending in
// a newline. Complexity: O(w·h).
func (m *BitMatrix) String() string {
	if m == nil {
		return _fmtNil
	}
	if m.storage == nil {
		return _fmtRelease
	}
	var sb strings.Builder
	sb.Grow(m.height * (m.width + 1))
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			b, _ := m.storage.Get(m.index(col, row)) // in bounds by loop construction
			if b == bit.One {
				sb.WriteByte(_fmtOne)
			} else {
				sb.WriteByte(_fmtZero)
			}
		}
		sb.WriteByte(_fmtRowEnd)
	}
	return sb.String()
}
