// SPDX-License-Identifier: MIT
package bit_test

import (
	"testing"

	"github.com/katalvlaran/bitgrid/bit"
	"github.com/stretchr/testify/require"
)

// storageKinds runs every behavioral test against both backings.
var storageKinds = []bit.StorageKind{bit.StorageDense, bit.StorageSparse}

// mustVector allocates an n-bit vector of the given kind or fails the test.
func mustVector(t *testing.T, n int, kind bit.StorageKind) bit.Vector {
	t.Helper()
	v, err := bit.New(n, bit.WithStorage(kind))
	require.NoError(t, err)
	return v
}

func TestNew_InvalidLength(t *testing.T) {
	for _, kind := range storageKinds {
		t.Run(kind.String(), func(t *testing.T) {
			_, err := bit.New(-1, bit.WithStorage(kind))
			require.ErrorIs(t, err, bit.ErrInvalidLength)
			require.ErrorIs(t, err, bit.ErrContractViolation)
		})
	}
}

func TestNew_ZeroInitialized(t *testing.T) {
	for _, kind := range storageKinds {
		t.Run(kind.String(), func(t *testing.T) {
			v := mustVector(t, 130, kind)
			require.Equal(t, 130, v.Len())
			require.Equal(t, kind, v.Kind())
			require.Zero(t, v.Count())
			for i := 0; i < v.Len(); i++ {
				b, err := v.Get(i)
				require.NoError(t, err)
				require.Equal(t, bit.Zero, b)
			}
		})
	}
}

func TestNew_DefaultIsDense(t *testing.T) {
	v, err := bit.New(8)
	require.NoError(t, err)
	require.Equal(t, bit.StorageDense, v.Kind())
}

func TestPut_ReturnsPrevious(t *testing.T) {
	for _, kind := range storageKinds {
		t.Run(kind.String(), func(t *testing.T) {
			v := mustVector(t, 70, kind)
			writes := []struct {
				b    bit.Bit
				prev bit.Bit
			}{
				{bit.One, bit.Zero},
				{bit.One, bit.One},
				{bit.Zero, bit.One},
				{bit.Zero, bit.Zero},
				{bit.One, bit.Zero},
			}
			for _, w := range writes {
				prev, err := v.Put(65, w.b)
				require.NoError(t, err)
				require.Equal(t, w.prev, prev)
				got, err := v.Get(65)
				require.NoError(t, err)
				require.Equal(t, w.b, got)
			}
			require.Equal(t, 1, v.Count())
		})
	}
}

func TestGetPut_Violations(t *testing.T) {
	for _, kind := range storageKinds {
		t.Run(kind.String(), func(t *testing.T) {
			v := mustVector(t, 4, kind)

			_, err := v.Get(-1)
			require.ErrorIs(t, err, bit.ErrOutOfRange)
			_, err = v.Get(4)
			require.ErrorIs(t, err, bit.ErrOutOfRange)
			_, err = v.Put(4, bit.One)
			require.ErrorIs(t, err, bit.ErrOutOfRange)
			_, err = v.Put(0, bit.Bit(2))
			require.ErrorIs(t, err, bit.ErrNonBinary)
			require.ErrorIs(t, v.Fill(bit.Bit(7)), bit.ErrNonBinary)

			// A rejected write leaves the slot untouched.
			b, err := v.Get(0)
			require.NoError(t, err)
			require.Equal(t, bit.Zero, b)
		})
	}
}

func TestEmptyVector(t *testing.T) {
	for _, kind := range storageKinds {
		t.Run(kind.String(), func(t *testing.T) {
			v := mustVector(t, 0, kind)
			require.Zero(t, v.Len())
			_, err := v.Get(0)
			require.ErrorIs(t, err, bit.ErrOutOfRange)
			require.NoError(t, v.Fill(bit.One))
			require.Zero(t, v.Count())
			_, ok := v.NextSet(0)
			require.False(t, ok)
		})
	}
}

func TestNextSet(t *testing.T) {
	for _, kind := range storageKinds {
		t.Run(kind.String(), func(t *testing.T) {
			v := mustVector(t, 200, kind)
			for _, i := range []int{3, 64, 199} {
				_, err := v.Put(i, bit.One)
				require.NoError(t, err)
			}
			var got []int
			for i, ok := v.NextSet(0); ok; i, ok = v.NextSet(i + 1) {
				got = append(got, i)
			}
			require.Equal(t, []int{3, 64, 199}, got)

			next, ok := v.NextSet(-5)
			require.True(t, ok)
			require.Equal(t, 3, next)
			_, ok = v.NextSet(200)
			require.False(t, ok)
		})
	}
}

func TestFill(t *testing.T) {
	for _, kind := range storageKinds {
		t.Run(kind.String(), func(t *testing.T) {
			v := mustVector(t, 100, kind)
			require.NoError(t, v.Fill(bit.One))
			require.Equal(t, 100, v.Count())
			b, err := v.Get(99)
			require.NoError(t, err)
			require.Equal(t, bit.One, b)

			require.NoError(t, v.Fill(bit.Zero))
			require.Zero(t, v.Count())
		})
	}
}

func TestClone_Independent(t *testing.T) {
	for _, kind := range storageKinds {
		t.Run(kind.String(), func(t *testing.T) {
			v := mustVector(t, 10, kind)
			_, _ = v.Put(2, bit.One)

			c := v.Clone()
			require.Equal(t, kind, c.Kind())
			_, _ = c.Put(2, bit.Zero)
			_, _ = c.Put(5, bit.One)

			orig, _ := v.Get(2)
			require.Equal(t, bit.One, orig)
			other, _ := v.Get(5)
			require.Equal(t, bit.Zero, other)
		})
	}
}

func TestRelease(t *testing.T) {
	for _, kind := range storageKinds {
		t.Run(kind.String(), func(t *testing.T) {
			v := mustVector(t, 10, kind)
			v.Release()

			require.Zero(t, v.Len())
			require.Zero(t, v.Count())
			_, err := v.Get(0)
			require.ErrorIs(t, err, bit.ErrReleased)
			_, err = v.Put(0, bit.One)
			require.ErrorIs(t, err, bit.ErrReleased)
			require.ErrorIs(t, v.Fill(bit.Zero), bit.ErrReleased)
		})
	}
}

func TestWithStorage_PanicsOnUnknownKind(t *testing.T) {
	require.Panics(t, func() { bit.WithStorage(bit.StorageKind(42)) })
	require.Equal(t, "StorageKind(42)", bit.StorageKind(42).String())
}

func TestFromBool(t *testing.T) {
	require.Equal(t, bit.One, bit.FromBool(true))
	require.Equal(t, bit.Zero, bit.FromBool(false))
	require.True(t, bit.One.Valid())
	require.False(t, bit.Bit(2).Valid())
}
