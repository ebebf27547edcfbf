// SPDX-License-Identifier: MIT

package bit2

import "github.com/katalvlaran/bitgrid/bit"

// Options holds construction settings for a BitMatrix.
type Options struct {
	vector []bit.Option // forwarded verbatim to bit.New
}

// Option configures New / FromRows.
type Option func(*Options)

// WithStorage selects the packed-bit storage behind the matrix
// (bit.StorageDense by default). Panics on an unknown kind.
func WithStorage(kind bit.StorageKind) Option {
	fwd := bit.WithStorage(kind)
	return func(o *Options) { o.vector = append(o.vector, fwd) }
}

func gatherOptions(opts ...Option) Options {
	var o Options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
