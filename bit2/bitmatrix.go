// SPDX-License-Identifier: MIT

// Package bit2 - BitMatrix storage, construction and shape queries.
//
// Purpose:
//   - Own a packed-bit vector of exactly width*height bits.
//   - Map (col,row) to the row-major index row*width + col (a bijection onto
//     [0, width*height)).
//   - Surface every precondition failure as a returned error.
package bit2

import (
	"fmt"

	"github.com/katalvlaran/bitgrid/bit"
)

// ---------- error context tags ----------

const (
	ctxNew        = "New"
	ctxFromRows   = "FromRows"
	ctxGet        = "Get"
	ctxPut        = "Put"
	ctxIndex      = "Index"
	ctxCoordinate = "Coordinate"
	ctxFill       = "Fill"
	ctxColMajor   = "MapColMajor"
	ctxRowMajor   = "MapRowMajor"
)

// BitMatrix is a fixed-size width×height matrix of bits.
//   - width, height are fixed at construction (both may be zero).
//   - storage holds width*height bits in row-major order; nil once released.
//
// The zero value is not usable; construct with New or FromRows.
type BitMatrix struct {
	width, height int        // columns, rows
	storage       bit.Vector // len == width*height while live
}

// Cell is a (column, row) coordinate.
type Cell struct {
	Col, Row int
}

var _ fmt.Stringer = (*BitMatrix)(nil)

// New creates a width×height matrix with every bit cleared.
//
// Implementation:
//   - Stage 1: validate width >= 0, height >= 0 and that width*height fits in int.
//   - Stage 2: allocate a zero-initialized bit.Vector of width*height bits.
//
// Errors:
//   - ErrInvalidDimensions (wrapped).
//   - Storage errors from bit.New (e.g. a sparse request beyond bit.MaxSparseLen).
//
// Complexity:
//   - Time O(w·h) for dense storage, Space O(w·h/64) words.
//
// New(0, 0) is legal and yields a matrix with no valid coordinates.
func New(width, height int, opts ...Option) (*BitMatrix, error) {
	if err := validateDims(width, height); err != nil {
		return nil, matrixErrorf(ctxNew, width, height, err)
	}
	o := gatherOptions(opts...)
	storage, err := bit.New(width*height, o.vector...)
	if err != nil {
		return nil, matrixErrorf(ctxNew, width, height, err)
	}

	return &BitMatrix{width: width, height: height, storage: storage}, nil
}

// MustNew is New that panics on error. Use it where bad dimensions are a
// programmer error, e.g. compile-time constants.
func MustNew(width, height int, opts ...Option) *BitMatrix {
	m, err := New(width, height, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// FromRows builds a matrix from row slices: rows[row][col].
// Height is len(rows); width is the common row length (0 when rows is empty).
//
// Errors:
//   - ErrNonRectangular if row lengths differ.
//   - ErrNonBinary if any value is not 0 or 1.
//
// Complexity: O(w·h).
func FromRows(rows [][]bit.Bit, opts ...Option) (*BitMatrix, error) {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	for r, line := range rows {
		if len(line) != width {
			return nil, matrixErrorf(ctxFromRows, len(line), r, ErrNonRectangular)
		}
	}
	m, err := New(width, height, opts...)
	if err != nil {
		return nil, err
	}
	for r, line := range rows {
		for c, b := range line {
			if b == bit.Zero {
				continue
			}
			if _, err = m.Put(c, r, b); err != nil {
				m.Release()
				return nil, err
			}
		}
	}

	return m, nil
}

// Width returns the number of columns. Zero for a nil matrix.
// Complexity: O(1).
func (m *BitMatrix) Width() int {
	if m == nil {
		return 0
	}
	return m.width
}

// Height returns the number of rows. Zero for a nil matrix.
// Complexity: O(1).
func (m *BitMatrix) Height() int {
	if m == nil {
		return 0
	}
	return m.height
}

// Shape returns Width() and Height() in one call.
func (m *BitMatrix) Shape() (width, height int) { return m.Width(), m.Height() }

// Len returns the number of cells, Width()*Height().
func (m *BitMatrix) Len() int { return m.Width() * m.Height() }

// Storage reports the backing storage kind. Dense for nil or released matrices.
func (m *BitMatrix) Storage() bit.StorageKind {
	if validateLive(m) != nil {
		return bit.DefaultStorage
	}
	return m.storage.Kind()
}

// InBounds reports whether (col,row) is a valid coordinate.
// Complexity: O(1).
func (m *BitMatrix) InBounds(col, row int) bool {
	return col >= 0 && col < m.Width() && row >= 0 && row < m.Height()
}

// index maps (col,row) to row*width + col. Callers validate first.
func (m *BitMatrix) index(col, row int) int {
	return row*m.width + col
}

// Index returns the linear storage index of (col,row).
// Errors: ErrNilMatrix, ErrOutOfRange (wrapped).
func (m *BitMatrix) Index(col, row int) (int, error) {
	if m == nil {
		return 0, matrixErrorf(ctxIndex, col, row, ErrNilMatrix)
	}
	if !m.InBounds(col, row) {
		return 0, matrixErrorf(ctxIndex, col, row, ErrOutOfRange)
	}
	return m.index(col, row), nil
}

// Coordinate is the inverse of Index: it converts a linear index back to
// (col,row). Errors: ErrNilMatrix, ErrOutOfRange (wrapped).
func (m *BitMatrix) Coordinate(idx int) (col, row int, err error) {
	if m == nil {
		return 0, 0, opErrorf(ctxCoordinate, ErrNilMatrix)
	}
	if idx < 0 || idx >= m.Len() {
		return 0, 0, fmt.Errorf("BitMatrix.%s(%d): %w", ctxCoordinate, idx, ErrOutOfRange)
	}
	return idx % m.width, idx / m.width, nil
}

// Release drops the owned storage. The matrix keeps its shape, but every
// later access fails with ErrReleased. Releasing twice (or a nil matrix) is
// a no-op.
func (m *BitMatrix) Release() {
	if m == nil || m.storage == nil {
		return
	}
	m.storage.Release()
	m.storage = nil
}

// Released reports whether Release has been called.
func (m *BitMatrix) Released() bool {
	return m != nil && m.storage == nil
}
