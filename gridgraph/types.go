// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/bitgrid.
package gridgraph

import (
	"github.com/katalvlaran/bitgrid/bit"
	"github.com/katalvlaran/bitgrid/bit2"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

func (c Connectivity) valid() bool { return c == Conn4 || c == Conn8 }

// offsets returns the (dx,dy) neighbor steps in clockwise order from north.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}
	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Land is the bit value treated as land. One by default; use Zero to
	// analyze the background (e.g. enclosed holes).
	Land bit.Bit
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// Land=One, Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Land: bit.One,
		Conn: Conn4,
	}
}

// GridGraph treats a bit matrix as a graph. It is immutable once built:
// cells is a private clone of the input matrix.
type GridGraph struct {
	Width, Height   int
	Conn            Connectivity
	Land            bit.Bit
	cells           *bit2.BitMatrix
	neighborOffsets [][2]int
}
