// Package bitgrid is a small in-memory toolkit for two-dimensional bit
// matrices: a packed storage layer, a bounds-checked matrix on top of it,
// and grid-graph analysis over the result.
//
// Under the hood, everything is organized under three subpackages:
//
//	bit/       : fixed-length packed-bit Vector (dense bitset or sparse roaring storage)
//	bit2/      : BitMatrix: (col,row) addressing, Get/Put, column- and row-major traversal
//	gridgraph/ : connected components, border-region clearing, island expansion
//
// Quick example:
//
//	m, _ := bit2.New(3, 2)
//	_, _ = m.Put(2, 0, bit.One)
//	_ = m.MapRowMajor(func(col, row int, _ *bit2.BitMatrix, b bit.Bit) {
//		fmt.Print(b)
//	}) // 001000
//
// Every precondition failure is returned as an error wrapping
// bit.ErrContractViolation; nothing panics on caller input.
//
//	go get github.com/katalvlaran/bitgrid
package bitgrid
