// Package bit2 implements BitMatrix, a fixed-size two-dimensional matrix of
// bits stored in a one-dimensional packed-bit vector (package bit).
//
// What:
//
//   - Cells are addressed by (col, row) with 0 ≤ col < Width() and
//     0 ≤ row < Height().
//   - Storage is always row-major: cell (col, row) lives at index
//     row*Width() + col. This holds for both traversal orders.
//   - Get reads one bit; Put writes one bit and returns the previous one.
//   - MapColMajor and MapRowMajor visit every cell exactly once, in a fixed
//     order, handing the visitor the bit read at visit time.
//
// Errors:
//
//	Every precondition failure is a contract violation and is returned as an
//	error wrapping ErrContractViolation (and a precise sentinel such as
//	ErrOutOfRange). Nothing is silently clamped or corrected. Callers that
//	prefer fail-fast semantics can use MustNew or panic on the returned error.
//
// Lifecycle:
//
//	New → Get/Put/Map… → Release. Release drops the storage; every later
//	access returns ErrReleased instead of touching freed memory.
//
// Concurrency:
//
//	A BitMatrix is not safe for concurrent mutation. Serialize access
//	externally (one lock per matrix, or disjoint ownership).
//
// Complexity:
//
//	New O(w·h) dense / O(1) sparse; Get/Put O(1); MapColMajor/MapRowMajor
//	O(w·h). Row-major traversal walks storage sequentially; column-major
//	strides by Width().
package bit2
