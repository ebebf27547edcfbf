package gridgraph

import (
	"errors"

	"github.com/katalvlaran/bitgrid/bit2"
)

var (
	// ErrNilMatrix indicates a nil *bit2.BitMatrix input.
	ErrNilMatrix = bit2.ErrNilMatrix
	// ErrEmptyGrid indicates the matrix has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = bit2.ErrNonRectangular
	// ErrBadConnectivity indicates a Connectivity other than Conn4 or Conn8.
	ErrBadConnectivity = errors.New("gridgraph: unknown connectivity")
	// ErrComponentIndex indicates a requested component index is invalid.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)
