// SPDX-License-Identifier: MIT

package bit

import "github.com/bits-and-blooms/bitset"

// denseVector packs bits into 64-bit words.
// n is kept separately because bitset grows on out-of-range Set.
type denseVector struct {
	n        int
	bits     *bitset.BitSet
	released bool
}

var _ Vector = (*denseVector)(nil)

func newDense(n int) *denseVector {
	return &denseVector{n: n, bits: bitset.New(uint(n))}
}

func (v *denseVector) Len() int {
	if v.released {
		return 0
	}
	return v.n
}

func (v *denseVector) Kind() StorageKind { return StorageDense }

func (v *denseVector) Get(i int) (Bit, error) {
	if err := checkIndex(ctxGet, v.released, v.n, i); err != nil {
		return Zero, err
	}
	return FromBool(v.bits.Test(uint(i))), nil
}

func (v *denseVector) Put(i int, b Bit) (Bit, error) {
	if err := checkWrite(ctxPut, v.released, v.n, i, b); err != nil {
		return Zero, err
	}
	prev := FromBool(v.bits.Test(uint(i)))
	v.bits.SetTo(uint(i), b == One)
	return prev, nil
}

func (v *denseVector) Count() int {
	if v.released {
		return 0
	}
	return int(v.bits.Count())
}

func (v *denseVector) NextSet(i int) (int, bool) {
	if v.released || i >= v.n {
		return 0, false
	}
	if i < 0 {
		i = 0
	}
	next, ok := v.bits.NextSet(uint(i))
	if !ok || next >= uint(v.n) {
		return 0, false
	}
	return int(next), true
}

func (v *denseVector) Fill(b Bit) error {
	if v.released {
		return vectorErrorf(ctxFill, 0, ErrReleased)
	}
	if !b.Valid() {
		return vectorErrorf(ctxFill, 0, ErrNonBinary)
	}
	v.bits.ClearAll()
	if b == One && v.n > 0 {
		v.bits.FlipRange(0, uint(v.n))
	}
	return nil
}

func (v *denseVector) Clone() Vector {
	if v.released {
		return newDense(0)
	}
	return &denseVector{n: v.n, bits: v.bits.Clone()}
}

func (v *denseVector) Release() {
	v.bits = nil
	v.released = true
}
