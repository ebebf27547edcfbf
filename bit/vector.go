// SPDX-License-Identifier: MIT

package bit

const (
	ctxGet  = "Get"
	ctxPut  = "Put"
	ctxFill = "Fill"
)

// New allocates a zero-initialized Vector of n bits.
//
// Implementation:
//   - Stage 1: resolve options; validate n >= 0 (and n <= MaxSparseLen for sparse).
//   - Stage 2: allocate the selected storage.
//
// Errors:
//   - ErrInvalidLength.
//
// Complexity:
//   - Dense: Time O(n/64), Space O(n/64) words.
//   - Sparse: Time O(1), Space O(1) until bits are set.
func New(n int, opts ...Option) (Vector, error) {
	o := gatherOptions(opts...)
	if n < 0 {
		return nil, ErrInvalidLength
	}
	switch o.storage {
	case StorageSparse:
		if uint64(n) > MaxSparseLen {
			return nil, ErrInvalidLength
		}
		return newSparse(n), nil
	default:
		return newDense(n), nil
	}
}

// checkIndex validates that the vector is live and i addresses a slot.
func checkIndex(method string, released bool, n, i int) error {
	if released {
		return vectorErrorf(method, i, ErrReleased)
	}
	if i < 0 || i >= n {
		return vectorErrorf(method, i, ErrOutOfRange)
	}
	return nil
}

// checkWrite is checkIndex plus the binary-value guard.
func checkWrite(method string, released bool, n, i int, b Bit) error {
	if err := checkIndex(method, released, n, i); err != nil {
		return err
	}
	if !b.Valid() {
		return vectorErrorf(method, i, ErrNonBinary)
	}
	return nil
}
