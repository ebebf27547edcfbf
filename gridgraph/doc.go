// Package gridgraph treats a BitMatrix as a grid graph, enabling component
// analysis, border-region clearing and minimal-cost "island" expansions.
//
// What:
//
//   - GridGraph snapshots a *bit2.BitMatrix; cells holding the land bit
//     (One by default) are vertices, neighbors are joined by Conn4 or Conn8.
//   - ConnectedComponents finds the contiguous land regions ("islands").
//   - BorderComponents keeps only the regions touching the matrix edge.
//   - ClearBorderRegions erases every land cell connected to the edge, in
//     place (the classic "remove black edges from a scanned page" pass).
//   - ExpandIsland computes the fewest water cells to convert to join two
//     islands (0-1 BFS).
//
// Indices:
//
//	Components and paths are reported as row-major indices y*Width + x,
//	identical to bit2.BitMatrix.Index. Use Coordinate to go back to (x,y).
//
// Complexity:
//
//   - ConnectedComponents / BorderComponents: O(W×H×d), Memory: O(W×H).
//   - ClearBorderRegions: O(W×H×d), Memory: O(W×H).
//   - ExpandIsland: O(W×H×d), Memory: O(W×H).
//
// (d = number of neighbors, 4 or 8.)
//
// Errors:
//
//   - ErrNilMatrix: nil input matrix.
//   - ErrEmptyGrid: matrix has no rows or no columns.
//   - ErrNonRectangular: From2D rows have differing lengths.
//   - ErrBadConnectivity: unknown Connectivity value.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
