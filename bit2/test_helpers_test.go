// SPDX-License-Identifier: MIT
// Package bit2_test contains shared fixtures for BitMatrix tests.

package bit2_test

import (
	"testing"

	"github.com/katalvlaran/bitgrid/bit"
	"github.com/katalvlaran/bitgrid/bit2"
	"github.com/stretchr/testify/require"
)

// storageKinds lets every behavioral test run against both backings.
var storageKinds = []bit.StorageKind{bit.StorageDense, bit.StorageSparse}

// mustMatrix allocates a w×h matrix of the given storage or fails the test.
func mustMatrix(tb testing.TB, w, h int, kind bit.StorageKind) *bit2.BitMatrix {
	tb.Helper()
	m, err := bit2.New(w, h, bit2.WithStorage(kind))
	require.NoError(tb, err)
	return m
}

// mustPut writes b at (col,row) or fails the test.
func mustPut(tb testing.TB, m *bit2.BitMatrix, col, row int, b bit.Bit) {
	tb.Helper()
	_, err := m.Put(col, row, b)
	require.NoError(tb, err)
}

// visit is one recorded visitor call.
type visit struct {
	Col, Row int
	Bit      bit.Bit
}

// recorder returns a VisitFunc that appends every call to *out.
func recorder(out *[]visit) bit2.VisitFunc {
	return func(col, row int, _ *bit2.BitMatrix, b bit.Bit) {
		*out = append(*out, visit{Col: col, Row: row, Bit: b})
	}
}

// sample3x2 builds the 3×2 matrix with (2,0) and (0,1) set:
//
//	001
//	100
func sample3x2(tb testing.TB, kind bit.StorageKind) *bit2.BitMatrix {
	tb.Helper()
	m := mustMatrix(tb, 3, 2, kind)
	mustPut(tb, m, 2, 0, bit.One)
	mustPut(tb, m, 0, 1, bit.One)
	return m
}
