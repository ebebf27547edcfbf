// SPDX-License-Identifier: MIT

// Package bit2 - full-matrix traversal.
//
// Determinism:
//   - Both orders are fixed nested loops with ascending indices; no state
//     survives between calls.
//   - The bit handed to the visitor is read at visit time, not snapshotted.
//     A visitor that writes a not-yet-visited cell sees its own write when
//     that cell comes up; already delivered values are never revisited.
package bit2

import (
	"iter"

	"github.com/katalvlaran/bitgrid/bit"
)

// VisitFunc receives one cell per call: its coordinate, the matrix being
// traversed and the bit currently stored there. State the visitor needs is
// captured by the closure. The visitor may call Get/Put on m.
type VisitFunc func(col, row int, m *BitMatrix, b bit.Bit)

// MapColMajor calls fn for every cell, columns outermost:
// (0,0), (0,1), …, (0,h-1), (1,0), …
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrNilVisitor before any visit.
//   - ErrReleased if fn releases m mid-traversal; the traversal stops there.
//
// Complexity: O(w·h) visits. Storage is strided by Width() per step.
func (m *BitMatrix) MapColMajor(fn VisitFunc) error {
	if err := validateTraversal(m, fn); err != nil {
		return opErrorf(ctxColMajor, err)
	}
	for col := 0; col < m.width; col++ {
		for row := 0; row < m.height; row++ {
			if err := m.visit(ctxColMajor, col, row, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// MapRowMajor calls fn for every cell, rows outermost:
// (0,0), (1,0), …, (w-1,0), (0,1), …
//
// Errors: as MapColMajor.
// Complexity: O(w·h) visits over sequential storage.
func (m *BitMatrix) MapRowMajor(fn VisitFunc) error {
	if err := validateTraversal(m, fn); err != nil {
		return opErrorf(ctxRowMajor, err)
	}
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			if err := m.visit(ctxRowMajor, col, row, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// visit reads the current bit at (col,row) and hands it to fn.
func (m *BitMatrix) visit(method string, col, row int, fn VisitFunc) error {
	if m.storage == nil {
		return matrixErrorf(method, col, row, ErrReleased)
	}
	b, err := m.storage.Get(m.index(col, row))
	if err != nil {
		return matrixErrorf(method, col, row, err)
	}
	fn(col, row, m, b)
	return nil
}

func validateTraversal(m *BitMatrix, fn VisitFunc) error {
	if err := validateLive(m); err != nil {
		return err
	}
	if fn == nil {
		return ErrNilVisitor
	}
	return nil
}

// All returns a row-major iterator over (cell, bit) pairs for use with
// range-over-func. Values are read at yield time, like MapRowMajor.
// Iteration yields nothing for a nil or released matrix and ends early if
// the loop body releases the matrix; use MapRowMajor when that must be
// reported as an error.
func (m *BitMatrix) All() iter.Seq2[Cell, bit.Bit] {
	return func(yield func(Cell, bit.Bit) bool) {
		if validateLive(m) != nil {
			return
		}
		for row := 0; row < m.height; row++ {
			for col := 0; col < m.width; col++ {
				if m.storage == nil {
					return
				}
				b, err := m.storage.Get(m.index(col, row))
				if err != nil {
					return
				}
				if !yield(Cell{Col: col, Row: row}, b) {
					return
				}
			}
		}
	}
}

// SetCells returns the coordinates of every set cell in row-major order.
// Complexity: O(w·h/64 + k) dense, where k is the number of set cells.
func (m *BitMatrix) SetCells() []Cell {
	if validateLive(m) != nil {
		return nil
	}
	var cells []Cell
	n := m.Len()
	for i, ok := m.storage.NextSet(0); ok && i < n; i, ok = m.storage.NextSet(i + 1) {
		cells = append(cells, Cell{Col: i % m.width, Row: i / m.width})
	}
	return cells
}
