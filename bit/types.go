// SPDX-License-Identifier: MIT

package bit

// Bit is a single binary value. Only Zero and One are legal; writes of any
// other value are rejected with ErrNonBinary.
type Bit uint8

const (
	// Zero is the cleared bit.
	Zero Bit = 0
	// One is the set bit.
	One Bit = 1
)

// Valid reports whether b is 0 or 1.
func (b Bit) Valid() bool { return b <= One }

// FromBool converts a boolean to a Bit.
func FromBool(v bool) Bit {
	if v {
		return One
	}
	return Zero
}

// Vector is a fixed-length packed-bit vector.
//
// Implementations validate every index and value and report violations as
// errors wrapping ErrContractViolation; they never panic on caller input.
type Vector interface {
	// Len returns the number of bits. Zero after Release.
	Len() int

	// Get returns the bit at index i.
	Get(i int) (Bit, error)

	// Put stores b at index i and returns the bit stored before the write.
	Put(i int, b Bit) (prev Bit, err error)

	// Count returns the number of set bits.
	Count() int

	// NextSet returns the smallest index >= i holding a set bit.
	// ok is false when there is none.
	NextSet(i int) (next int, ok bool)

	// Fill stores b in every slot.
	Fill(b Bit) error

	// Clone returns an independent copy with the same storage kind.
	Clone() Vector

	// Kind reports the storage backing this vector.
	Kind() StorageKind

	// Release drops the storage. Later Get/Put/Fill calls fail with ErrReleased.
	Release()
}
