package decimal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/decimal"
)

func TestValuePromotion(t *testing.T) {
	type TC struct {
		Name  string
		X, Y  decimal.Value
		Kind  decimal.Kind
		Sum   string
		Quo   string
		Order decimal.Ordering
	}

	tcs := []TC{
		{
			Name:  "32+32",
			X:     decimal.Value32(d32(1, 0)),
			Y:     decimal.Value32(d32(3, 0)),
			Kind:  decimal.Kind32,
			Sum:   "4e0",
			Quo:   "3333333e-7",
			Order: decimal.Less,
		},
		{
			Name:  "32+64",
			X:     decimal.Value32(d32(1, 0)),
			Y:     decimal.Value64(d64(3, 0)),
			Kind:  decimal.Kind64,
			Sum:   "4e0",
			Quo:   "3333333333333333e-16",
			Order: decimal.Less,
		},
		{
			Name:  "128+32",
			X:     decimal.Value128(d128(2, 0)),
			Y:     decimal.Value32(d32(3, 0)),
			Kind:  decimal.Kind128,
			Sum:   "5e0",
			Quo:   "6666666666666666666666666666666667e-34",
			Order: decimal.Less,
		},
		{
			Name:  "64+128",
			X:     decimal.Value64(d64(30, -1)),
			Y:     decimal.Value128(d128(3, 0)),
			Kind:  decimal.Kind128,
			Sum:   "60e-1",
			Quo:   "10e-1",
			Order: decimal.Equal,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Name, func(t *testing.T) {
			sum := tc.X.Add(tc.Y)
			require.Equal(t, tc.Kind, sum.Kind())
			require.Equal(t, tc.Sum, sum.String())

			quo := tc.X.Quo(tc.Y)
			require.Equal(t, tc.Kind, quo.Kind())
			require.Equal(t, tc.Quo, quo.String())

			require.Equal(t, tc.Order, tc.X.Compare(tc.Y))
			require.Equal(t, -tc.Order, tc.Y.Compare(tc.X))
		})
	}

	t.Run("ops", func(t *testing.T) {
		x := decimal.Value32(d32(7, 0))
		y := decimal.Value64(d64(2, 0))

		require.Equal(t, "5e0", x.Sub(y).String())
		require.Equal(t, "14e0", x.Mul(y).String())
		require.Equal(t, "1e0", x.Rem(y).String())
		require.True(t, x.Equal(decimal.Value128(d128(70, -1))))
		require.False(t, x.Equal(decimal.Value32(decimal.NaN32())))
	})

	t.Run("zero value", func(t *testing.T) {
		var v decimal.Value
		require.Equal(t, decimal.Kind32, v.Kind())
		require.True(t, v.As32().IsZero())
		require.Equal(t, "decimal32", v.Kind().String())
	})

	t.Run("narrowing", func(t *testing.T) {
		v := decimal.Value64(d64(1234567890123456, 0))
		require.Equal(t, "1234568e9", v.As32().String())
		require.Equal(t, "1234567890123456e0", v.As128().String())
	})
}
