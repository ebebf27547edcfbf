package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/bitgrid/bit"
	"github.com/katalvlaran/bitgrid/bit2"
)

// NewGridGraph constructs a GridGraph over a snapshot of m.
// Later writes to m do not affect the GridGraph.
// Returns ErrNilMatrix for nil (or released) m, ErrEmptyGrid if m has no
// rows or columns, ErrBadConnectivity for an unknown opts.Conn and
// bit2.ErrNonBinary for an invalid opts.Land.
// Complexity: O(W×H) time and memory for the clone.
func NewGridGraph(m *bit2.BitMatrix, opts GridOptions) (*GridGraph, error) {
	gg, err := wrap(m, opts)
	if err != nil {
		return nil, err
	}
	gg.cells = m.Clone()
	return gg, nil
}

// From2D builds a GridGraph from rows of bits, rows[y][x], with Land=One.
// Returns ErrEmptyGrid or ErrNonRectangular on malformed input.
func From2D(rows [][]bit.Bit, conn Connectivity) (*GridGraph, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	m, err := bit2.FromRows(rows)
	if err != nil {
		return nil, err
	}
	opts := DefaultGridOptions()
	opts.Conn = conn
	// m is ours already; no need to clone it again.
	return wrap(m, opts)
}

// wrap validates inputs and builds a GridGraph reading m directly.
func wrap(m *bit2.BitMatrix, opts GridOptions) (*GridGraph, error) {
	if m == nil || m.Released() {
		return nil, ErrNilMatrix
	}
	if m.Width() == 0 || m.Height() == 0 {
		return nil, ErrEmptyGrid
	}
	if !opts.Conn.valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadConnectivity, int(opts.Conn))
	}
	if !opts.Land.Valid() {
		return nil, bit2.ErrNonBinary
	}

	return &GridGraph{
		Width:           m.Width(),
		Height:          m.Height(),
		Conn:            opts.Conn,
		Land:            opts.Land,
		cells:           m,
		neighborOffsets: opts.Conn.offsets(),
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Matrix returns a copy of the underlying bits.
func (gg *GridGraph) Matrix() *bit2.BitMatrix {
	return gg.cells.Clone()
}

// isLand reports whether (x,y) holds the land bit. Callers check bounds.
func (gg *GridGraph) isLand(x, y int) bool {
	b, err := gg.cells.Get(x, y)
	return err == nil && b == gg.Land
}

// onBorder reports whether (x,y) is in the first/last row or column.
func (gg *GridGraph) onBorder(x, y int) bool {
	return x == 0 || y == 0 || x == gg.Width-1 || y == gg.Height-1
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
