// SPDX-License-Identifier: MIT

// Package bit: functional options for vector construction.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors panic on nonsensical values (programmer error).
package bit

import "fmt"

// StorageKind selects the backing representation of a Vector.
type StorageKind int

const (
	// StorageDense packs every bit into a word slice (bits-and-blooms/bitset).
	StorageDense StorageKind = iota
	// StorageSparse stores only set bits in a roaring bitmap.
	StorageSparse
)

// DefaultStorage is the storage kind used when no option is given.
const DefaultStorage = StorageDense

// MaxSparseLen is the largest length addressable by StorageSparse
// (roaring bitmaps index with uint32).
const MaxSparseLen uint64 = 1 << 32

const panicStorageInvalid = "bit: WithStorage: unknown storage kind"

// String implements fmt.Stringer.
func (k StorageKind) String() string {
	switch k {
	case StorageDense:
		return "dense"
	case StorageSparse:
		return "sparse"
	default:
		return fmt.Sprintf("StorageKind(%d)", int(k))
	}
}

func (k StorageKind) valid() bool {
	return k == StorageDense || k == StorageSparse
}

// Options holds resolved construction settings. Fields are unexported;
// use the WithX constructors.
type Options struct {
	storage StorageKind
}

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// WithStorage selects the backing storage. Panics on an unknown kind.
func WithStorage(kind StorageKind) Option {
	if !kind.valid() {
		panic(panicStorageInvalid)
	}
	return func(o *Options) { o.storage = kind }
}

// Storage returns the selected storage kind.
func (o Options) Storage() StorageKind { return o.storage }

// defaultOptions returns Options populated from the documented defaults.
func defaultOptions() Options {
	return Options{storage: DefaultStorage}
}

// gatherOptions applies opts in order over the defaults. nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
