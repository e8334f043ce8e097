package decimal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/decimal"
)

func TestRemquo(t *testing.T) {
	type TC struct {
		X, Y decimal.Decimal32
		Rem  string
		Quo  int
	}

	tcs := []TC{
		{d32(51, -1), d32(3, 0), "-9e-1", 2},
		{d32(7, 0), d32(2, 0), "-1e0", 4},
		{d32(5, 0), d32(2, 0), "1e0", 2},
		{d32(-7, 0), d32(2, 0), "1e0", -4},
		{d32(7, 0), d32(-2, 0), "-1e0", -4},
		{d32(6, 0), d32(4, 0), "-2e0", 2},
		{d32(-6, 0), d32(4, 0), "2e0", -2},
		{d32(25, -1), d32(1, 0), "5e-1", 2},
		{d32(1, 10), d32(7, 0), "-3e0", 5},
		{d32(1, 90), d32(3, 0), "1e0", 5},
		{d32(9, 0), d32(1, 1), "-1e0", 1},
		{d32(15, 0), d32(1, 1), "-5e0", 2},
		{d32(5, 0), d32(1, 1), "5e0", 0},
		{d32(1, 0), d32(1, 5), "1e0", 0},
		{d32(1, -101), d32(3, -101), "1e-101", 0},
		{d32(-6, 0), d32(3, 0), "-0e-101", -2},
		{d32(3, 0), decimal.Inf32(1), "3e0", 0},
		{decimal.Inf32(1), d32(3, 0), "NaN", 0},
		{d32(3, 0), d32(0, 0), "NaN", 0},
		{decimal.NaN32(), d32(3, 0), "NaN", 0},
	}

	for _, tc := range tcs {
		t.Run(tc.X.String()+"/"+tc.Y.String(), func(t *testing.T) {
			r, quo := tc.X.Remquo(tc.Y)
			require.Equal(t, tc.Rem, r.String())
			require.Equal(t, tc.Quo, quo)
			require.Equal(t, tc.Rem, tc.X.Remainder(tc.Y).String())
		})
	}

	t.Run("wide exponent gap", func(t *testing.T) {
		r64, quo := d64(1, 300).Remquo(d64(3, -300))
		require.Equal(t, "1e-300", r64.String())
		require.Equal(t, 5, quo)

		r128, quo := d128(1, 6000).Remquo(d128(7, -6000))
		require.Equal(t, "1e-6000", r128.String())
		require.Equal(t, 1, quo)
	})
}

func TestModf(t *testing.T) {
	type TC struct {
		X           decimal.Decimal32
		Ipart, Frac string
	}

	tcs := []TC{
		{d32(325, -2), "3e0", "25e-2"},
		{d32(-325, -2), "-3e0", "-25e-2"},
		{d32(5, 0), "5e0", "0e-101"},
		{d32(-5, 0), "-5e0", "-0e-101"},
		{d32(-5, -1), "-0e-101", "-5e-1"},
		{decimal.Inf32(1), "+Inf", "0e-101"},
		{decimal.Inf32(-1), "-Inf", "-0e-101"},
		{decimal.NaN32(), "NaN", "NaN"},
	}

	for _, tc := range tcs {
		t.Run(tc.X.String(), func(t *testing.T) {
			ipart, frac := tc.X.Modf()
			require.Equal(t, tc.Ipart, ipart.String())
			require.Equal(t, tc.Frac, frac.String())
		})
	}

	ipart, frac := d128(123456789, -4).Modf()
	require.Equal(t, "12345e0", ipart.String())
	require.Equal(t, "6789e-4", frac.String())
}

func TestDim(t *testing.T) {
	require.Equal(t, "2e0", d32(5, 0).Dim(d32(3, 0)).String())
	require.Equal(t, "0e-101", d32(3, 0).Dim(d32(5, 0)).String())
	require.Equal(t, "0e-101", d32(-3, 0).Dim(d32(-3, 0)).String())
	require.Equal(t, "+Inf", decimal.Inf32(1).Dim(d32(1, 0)).String())
	require.Equal(t, "0e-101", decimal.Inf32(1).Dim(decimal.Inf32(1)).String())
	require.Equal(t, "+Inf", d32(1, 0).Dim(decimal.Inf32(-1)).String())
	require.True(t, decimal.NaN32().Dim(d32(1, 0)).IsNaN())
	require.True(t, d32(1, 0).Dim(decimal.NaN32()).IsNaN())

	require.Equal(t, "15e-1", d64(4, 0).Dim(d64(25, -1)).String())
	require.Equal(t, "0e-6176", d128(1, 0).Dim(d128(2, 0)).String())
}

func TestNextUpDown(t *testing.T) {
	type TC struct {
		X        decimal.Decimal32
		Up, Down string
	}

	tcs := []TC{
		{d32(1, 0), "1000001e-6", "9999999e-7"},
		{d32(-1, 0), "-9999999e-7", "-1000001e-6"},
		{d32(123, 0), "1230001e-4", "1229999e-4"},
		{d32(0, 0), "1e-101", "-1e-101"},
		{d32(0, 0).Neg(), "1e-101", "-1e-101"},
		{d32(1, -101), "2e-101", "0e-101"},
		{d32(-1, -101), "-0e-101", "-2e-101"},
		{d32(1, -95), "1000001e-101", "999999e-101"},
		{d32(-1, -95), "-999999e-101", "-1000001e-101"},
		{d32(1, 96), "1000001e90", "9999999e89"},
		{d32(9999999, 90), "+Inf", "9999998e90"},
		{d32(-9999999, 90), "-9999998e90", "-Inf"},
		{decimal.Inf32(1), "+Inf", "9999999e90"},
		{decimal.Inf32(-1), "-9999999e90", "-Inf"},
		{decimal.NaN32(), "NaN", "NaN"},
	}

	for _, tc := range tcs {
		t.Run(tc.X.String(), func(t *testing.T) {
			require.Equal(t, tc.Up, tc.X.NextUp().String())
			require.Equal(t, tc.Down, tc.X.NextDown().String())

			if tc.X.IsFinite() {
				require.True(t, tc.X.Less(tc.X.NextUp()))
				require.True(t, tc.X.Greater(tc.X.NextDown()))
			}
		})
	}

	require.Equal(t, "1000000000000001e-15", d64(1, 0).NextUp().String())
	require.Equal(t, "9999999999999999e-16", d64(1, 0).NextDown().String())
	require.Equal(t, "1e-398", d64(0, 0).NextUp().String())
	require.Equal(t, "1000000000000000000000000000000001e-33", d128(1, 0).NextUp().String())
	require.Equal(t, "-1e-6176", d128(0, 0).NextDown().String())
}

func TestNextafter(t *testing.T) {
	one, two := d32(1, 0), d32(2, 0)

	require.Equal(t, "1000001e-6", one.Nextafter(two).String())
	require.Equal(t, "9999999e-7", one.Nextafter(d32(0, 0)).String())
	require.Equal(t, "10e-1", one.Nextafter(d32(10, -1)).String())
	require.Equal(t, "-0e-101", d32(0, 0).Nextafter(d32(0, 0).Neg()).String())
	require.Equal(t, "9999999e90", decimal.Inf32(1).Nextafter(one).String())
	require.True(t, one.Nextafter(decimal.NaN32()).IsNaN())
	require.True(t, decimal.NaN32().Nextafter(one).IsNaN())

	require.Equal(t, "1000000000000001e-15", d64(1, 0).Nextafter(d64(2, 0)).String())
	require.Equal(t, "9999999999999999999999999999999999e-34", d128(1, 0).Nextafter(d128(-1, 0)).String())
}
