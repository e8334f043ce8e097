package decimal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/decimal"
)

func TestIntegerConversions(t *testing.T) {
	type TC struct {
		X       decimal.Decimal32
		Int64   int64
		Int32   int32
		Uint64  uint64
		Invalid bool
		Range64 bool
		Range32 bool
		RangeU  bool
	}

	tcs := []TC{
		{X: d32(12345, -2), Int64: 123, Int32: 123, Uint64: 123},
		{X: d32(-12345, -2), Int64: -123, Int32: -123, RangeU: true},
		{X: d32(-1, -1), Int64: 0, Int32: 0, Uint64: 0},
		{X: d32(0, 0)},
		{X: d32(9, 18), Int64: 9e18, Range32: true, Uint64: 9e18},
		{X: d32(1, 19), Range64: true, Range32: true, Uint64: 1e19},
		{X: d32(3, 9), Int64: 3e9, Range32: true, Uint64: 3e9},
		{X: d32(1, 90), Range64: true, Range32: true, RangeU: true},
		{X: d32(1, -101)},
		{X: decimal.Inf32(1), Range64: true, Range32: true, RangeU: true},
		{X: decimal.NaN32(), Invalid: true},
	}

	for _, tc := range tcs {
		t.Run(tc.X.String(), func(t *testing.T) {
			i64, err := tc.X.Int64()
			switch {
			case tc.Invalid:
				require.True(t, decimal.ErrInvalid.Has(err), "%v", err)
			case tc.Range64:
				require.True(t, decimal.ErrRange.Has(err), "%v", err)
			default:
				require.NoError(t, err)
				require.Equal(t, tc.Int64, i64)
			}

			i32, err := tc.X.Int32()
			switch {
			case tc.Invalid:
				require.True(t, decimal.ErrInvalid.Has(err), "%v", err)
			case tc.Range32:
				require.True(t, decimal.ErrRange.Has(err), "%v", err)
				require.Equal(t, int32(0), i32)
			default:
				require.NoError(t, err)
				require.Equal(t, tc.Int32, i32)
			}

			u64, err := tc.X.Uint64()
			switch {
			case tc.Invalid:
				require.True(t, decimal.ErrInvalid.Has(err), "%v", err)
			case tc.RangeU:
				require.True(t, decimal.ErrRange.Has(err), "%v", err)
			default:
				require.NoError(t, err)
				require.Equal(t, tc.Uint64, u64)
			}
		})
	}

	v, err := d128(math.MinInt64, 0).Int64()
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), v)

	_, err = d128(math.MinInt64, 0).Dec().Int64()
	require.True(t, decimal.ErrRange.Has(err))
}

func TestFloatConversions(t *testing.T) {
	require.Equal(t, 0.1, d32(1, -1).Float64())
	require.Equal(t, -2.5, d32(-25, -1).Float64())
	require.Equal(t, float32(0.1), d32(1, -1).Float32())
	require.Equal(t, 1e90, d32(1, 90).Float64())
	require.True(t, math.IsInf(decimal.Inf32(-1).Float64(), -1))
	require.True(t, math.IsNaN(decimal.NaN32().Float64()))

	require.Equal(t, "1e-1", decimal.NewDecimal32FromFloat(0.1).String())
	require.Equal(t, "3333333e-7", decimal.NewDecimal32FromFloat(1.0/3).String())
	require.Equal(t, "-Inf", decimal.NewDecimal32FromFloat(math.Inf(-1)).String())
	require.True(t, decimal.NewDecimal32FromFloat(math.NaN()).IsNaN())
	require.Equal(t, "123456e-3", decimal.NewDecimal64FromFloat(123.456).String())
	require.Equal(t, "0e-6176", decimal.NewDecimal128FromFloat(0).String())

	for _, f := range []float64{1, 0.5, 1e-300, 6.02214076e23, 123.456, -math.SmallestNonzeroFloat64} {
		require.Equal(t, f, decimal.NewDecimal64FromFloat(f).Float64(), "%g", f)
		require.Equal(t, f, decimal.NewDecimal128FromFloat(f).Float64(), "%g", f)
	}
}

func TestFormatConversions(t *testing.T) {
	x := d32(1234567, -3)
	require.Equal(t, "1234567e-3", x.To64().String())
	require.Equal(t, "1234567e-3", x.To128().String())
	require.Equal(t, "1234567e-3", x.To128().To64().To32().String())

	y := d64(1234567890123456, 0)
	require.Equal(t, "1234568e9", y.To32().String())
	require.Equal(t, "1234567e9", decimal.Context{Mode: decimal.TowardZero}.To32(y).String())
	require.True(t, d64(1, 100).To32().IsInf())
	require.True(t, d64(1, -200).To32().IsZero())
	require.True(t, decimal.SNaN64().To32().IsSignaling())

	z := d128(math.MaxInt64, 0)
	require.Equal(t, "9223372036854776e3", z.To64().String())
	require.Equal(t, "9223372036854775e3", decimal.Context{Mode: decimal.TowardZero}.To64(z).String())
	require.Equal(t, "9223372e12", z.To32().String())
}

func TestMath(t *testing.T) {
	type TC struct {
		X                                  decimal.Decimal32
		Floor, Ceil, Trunc, Round, RoundEv string
	}

	tcs := []TC{
		{d32(15, -1), "1e0", "2e0", "1e0", "2e0", "2e0"},
		{d32(-15, -1), "-2e0", "-1e0", "-1e0", "-2e0", "-2e0"},
		{d32(25, -1), "2e0", "3e0", "2e0", "3e0", "2e0"},
		{d32(-5, -1), "-1e0", "-0e-101", "-0e-101", "-1e0", "-0e-101"},
		{d32(7, 0), "7e0", "7e0", "7e0", "7e0", "7e0"},
		{d32(1, 50), "1e50", "1e50", "1e50", "1e50", "1e50"},
		{decimal.Inf32(-1), "-Inf", "-Inf", "-Inf", "-Inf", "-Inf"},
	}

	for _, tc := range tcs {
		t.Run(tc.X.String(), func(t *testing.T) {
			require.Equal(t, tc.Floor, tc.X.Floor().String())
			require.Equal(t, tc.Ceil, tc.X.Ceil().String())
			require.Equal(t, tc.Trunc, tc.X.Trunc().String())
			require.Equal(t, tc.Round, tc.X.Round().String())
			require.Equal(t, tc.RoundEv, tc.X.RoundEven().String())
		})
	}

	t.Run("scalbn", func(t *testing.T) {
		require.Equal(t, "15e3", d32(15, 0).Scalbn(3).String())
		require.Equal(t, "15e-3", d32(15, 0).Scalbln(-3).String())
		require.True(t, d32(15, 0).Scalbn(-200).IsZero())
		require.True(t, d32(15, 0).Scalbln(math.MaxInt64).IsInf())
		require.True(t, decimal.NaN32().Scalbn(1).IsNaN())
	})

	t.Run("frexp10", func(t *testing.T) {
		sig, exp := d32(15, 0).Frexp10()
		require.Equal(t, uint32(1500000), sig)
		require.Equal(t, -5, exp)

		sig, exp = d32(0, 7).Frexp10()
		require.Equal(t, uint32(0), sig)
		require.Equal(t, 0, exp)

		sig, _ = decimal.Inf32(1).Frexp10()
		require.Equal(t, uint32(math.MaxUint32), sig)

		sig64, exp := d64(-15, 0).Frexp10()
		require.Equal(t, uint64(1500000000000000), sig64)
		require.Equal(t, -14, exp)

		sig128, exp := d128(15, 0).Frexp10()
		require.Equal(t, "1500000000000000000000000000000000", sig128.String())
		require.Equal(t, -32, exp)
	})

	t.Run("ilogb", func(t *testing.T) {
		require.Equal(t, 1, d32(15, 0).Ilogb())
		require.Equal(t, -2, d32(15, -3).Ilogb())
		require.Equal(t, math.MinInt32, d32(0, 0).Ilogb())
		require.Equal(t, math.MaxInt32, decimal.Inf32(1).Ilogb())
		require.Equal(t, math.MaxInt32, decimal.NaN32().Ilogb())

		require.Equal(t, "-2e0", d32(15, -3).Logb().String())
		require.Equal(t, "-Inf", d32(0, 0).Logb().String())
		require.Equal(t, "+Inf", decimal.Inf32(-1).Logb().String())
		require.True(t, decimal.NaN32().Logb().IsNaN())
	})

	t.Run("min max", func(t *testing.T) {
		one, two := d32(1, 0), d32(2, 0)
		nan := decimal.NaN32()
		pz, nz := d32(0, 0), d32(0, 0).Neg()

		require.True(t, one.Min(two).Equal(one))
		require.True(t, two.Min(one).Equal(one))
		require.True(t, one.Max(two).Equal(two))
		require.True(t, one.Min(nan).Equal(one))
		require.True(t, nan.Max(one).Equal(one))
		require.True(t, nan.Max(nan).IsNaN())
		require.True(t, pz.Min(nz).Signbit())
		require.True(t, nz.Min(pz).Signbit())
		require.False(t, pz.Max(nz).Signbit())
		require.False(t, nz.Max(pz).Signbit())
	})
}
