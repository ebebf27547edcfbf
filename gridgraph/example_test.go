// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/bitgrid/bit"
	"github.com/katalvlaran/bitgrid/bit2"
	"github.com/katalvlaran/bitgrid/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ConnectedComponents lists the islands of set bits in a
// 5×3 matrix under 4-connectivity.
func ExampleGridGraph_ConnectedComponents() {
	gg, _ := gridgraph.From2D([][]bit.Bit{
		{0, 1, 1, 0, 1},
		{1, 1, 0, 1, 1},
		{1, 0, 1, 1, 0},
	}, gridgraph.Conn4)

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			x, y := gg.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}

	// Output:
	// components: 2
	// component 0: (1,0) (2,0) (1,1) (0,1) (0,2)
	// component 1: (4,0) (4,1) (3,1) (3,2) (2,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: ClearBorderRegions
////////////////////////////////////////////////////////////////////////////////

// ExampleClearBorderRegions wipes ink touching the page edge and keeps the
// glyph in the middle.
func ExampleClearBorderRegions() {
	page, _ := bit2.FromRows([][]bit.Bit{
		{1, 0, 0, 0, 0, 0},
		{1, 0, 1, 1, 0, 0},
		{0, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 0, 1},
	})
	n, _ := gridgraph.ClearBorderRegions(page, gridgraph.Conn8)
	fmt.Println("cleared:", n)
	fmt.Print(page)

	// Output:
	// cleared: 3
	// 000000
	// 001100
	// 001000
	// 000000
}
