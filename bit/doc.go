// Package bit provides a fixed-length packed-bit vector.
//
// What:
//
//   - Vector is a one-dimensional container of bits addressed by an integer
//     index in [0, Len()). Every slot holds exactly one Bit (0 or 1).
//   - New allocates a zero-initialized vector of the requested length.
//   - Put overwrites a slot and returns the bit stored immediately before.
//
// Storage:
//
//   - StorageDense (default) packs bits into machine words via
//     github.com/bits-and-blooms/bitset. Memory is n/8 bytes regardless of
//     how many bits are set.
//   - StorageSparse keeps only set bits in a compressed roaring bitmap
//     (github.com/RoaringBitmap/roaring/v2). Good for large, mostly-zero
//     vectors; length is limited to the 32-bit address space.
//
// Both kinds are observably identical through the Vector interface.
//
// Errors:
//
//   - ErrInvalidLength: negative length (or too long for sparse storage).
//   - ErrOutOfRange: index outside [0, Len()).
//   - ErrNonBinary: a value other than 0 or 1 was written.
//   - ErrReleased: the vector was used after Release.
//
// All of the above wrap ErrContractViolation.
//
// Complexity:
//
//   - Get/Put: O(1) dense, O(log n) sparse.
//   - Count: O(n/64) dense, O(containers) sparse.
//
// Vectors are not safe for concurrent mutation.
package bit
