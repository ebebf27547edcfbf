// SPDX-License-Identifier: MIT

package bit

import "github.com/RoaringBitmap/roaring/v2"

// sparseVector keeps the set of indices holding One in a roaring bitmap.
// Absent indices read as Zero.
type sparseVector struct {
	n        int
	rb       *roaring.Bitmap
	released bool
}

var _ Vector = (*sparseVector)(nil)

func newSparse(n int) *sparseVector {
	return &sparseVector{n: n, rb: roaring.New()}
}

func (v *sparseVector) Len() int {
	if v.released {
		return 0
	}
	return v.n
}

func (v *sparseVector) Kind() StorageKind { return StorageSparse }

func (v *sparseVector) Get(i int) (Bit, error) {
	if err := checkIndex(ctxGet, v.released, v.n, i); err != nil {
		return Zero, err
	}
	return FromBool(v.rb.Contains(uint32(i))), nil
}

func (v *sparseVector) Put(i int, b Bit) (Bit, error) {
	if err := checkWrite(ctxPut, v.released, v.n, i, b); err != nil {
		return Zero, err
	}
	x := uint32(i)
	// CheckedAdd/CheckedRemove report whether the set changed, which is
	// exactly "the previous bit differed from b".
	if b == One {
		if v.rb.CheckedAdd(x) {
			return Zero, nil
		}
		return One, nil
	}
	if v.rb.CheckedRemove(x) {
		return One, nil
	}
	return Zero, nil
}

func (v *sparseVector) Count() int {
	if v.released {
		return 0
	}
	return int(v.rb.GetCardinality())
}

func (v *sparseVector) NextSet(i int) (int, bool) {
	if v.released || i >= v.n {
		return 0, false
	}
	if i < 0 {
		i = 0
	}
	it := v.rb.Iterator()
	it.AdvanceIfNeeded(uint32(i))
	if !it.HasNext() {
		return 0, false
	}
	return int(it.Next()), true
}

func (v *sparseVector) Fill(b Bit) error {
	if v.released {
		return vectorErrorf(ctxFill, 0, ErrReleased)
	}
	if !b.Valid() {
		return vectorErrorf(ctxFill, 0, ErrNonBinary)
	}
	v.rb.Clear()
	if b == One && v.n > 0 {
		v.rb.AddRange(0, uint64(v.n))
	}
	return nil
}

func (v *sparseVector) Clone() Vector {
	if v.released {
		return newSparse(0)
	}
	return &sparseVector{n: v.n, rb: v.rb.Clone()}
}

func (v *sparseVector) Release() {
	v.rb = nil
	v.released = true
}
