package interchange

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/decimal"
)

func TestDeclet(t *testing.T) {
	t.Run("known", func(t *testing.T) {
		type TC struct {
			Digits [3]uint16
			Declet uint16
		}

		tcs := []TC{
			{Digits: [3]uint16{0, 0, 0}, Declet: 0b000_000_0_000},
			{Digits: [3]uint16{0, 0, 1}, Declet: 0b000_000_0_001},
			{Digits: [3]uint16{1, 2, 3}, Declet: 0b001_010_0_011},
			{Digits: [3]uint16{0, 0, 9}, Declet: 0b000_000_1_001},
			{Digits: [3]uint16{0, 9, 0}, Declet: 0b000_001_1_010},
			{Digits: [3]uint16{9, 0, 0}, Declet: 0b001_000_1_100},
			{Digits: [3]uint16{9, 9, 9}, Declet: 0b001_111_1_111},
		}

		for _, tc := range tcs {
			d := encodeDeclet(tc.Digits[0], tc.Digits[1], tc.Digits[2])
			require.Equal(t, tc.Declet, d, "%v", tc.Digits)

			d0, d1, d2 := decodeDeclet(d)
			require.Equal(t, tc.Digits, [3]uint16{d0, d1, d2})
		}
	})

	t.Run("all", func(t *testing.T) {
		seen := map[uint16]bool{}

		for n := uint16(0); n < 1000; n++ {
			d := encodeDeclet(n/100, n/10%10, n%10)
			require.Less(t, d, uint16(1024))
			require.False(t, seen[d], "duplicate declet %010b", d)
			seen[d] = true

			d0, d1, d2 := decodeDeclet(d)
			require.Equal(t, n, d0*100+d1*10+d2)
		}
	})

	t.Run("non-canonical", func(t *testing.T) {
		// 1024 patterns encode 1000 values; the rest decode too.
		for x := uint16(0); x < 1024; x++ {
			d0, d1, d2 := decodeDeclet(x)
			require.LessOrEqual(t, d0, uint16(9))
			require.LessOrEqual(t, d1, uint16(9))
			require.LessOrEqual(t, d2, uint16(9))
		}

		d0, d1, d2 := decodeDeclet(0b111_111_1_111)
		require.Equal(t, [3]uint16{9, 9, 9}, [3]uint16{d0, d1, d2})
	})
}

func TestDPDVectors(t *testing.T) {
	type TC struct {
		Name string
		X    decimal.Decimal32
		Bits uint32
	}

	tcs := []TC{
		{Name: "1", X: decimal.NewDecimal32(1, 0), Bits: 0x22500001},
		{Name: "-1", X: decimal.NewDecimal32(-1, 0), Bits: 0xa2500001},
		{Name: "1234567", X: decimal.NewDecimal32(1234567, 0), Bits: 0x2654d2e7},
		{Name: "max", X: decimal.NewDecimal32(9999999, 90), Bits: 0x77f3fcff},
		{Name: "tiny", X: decimal.NewDecimal32(1, -101), Bits: 0x00000001},
		{Name: "0", X: decimal.NewDecimal32(0, 0), Bits: 0x00000000},
		{Name: "-Inf", X: decimal.Inf32(-1), Bits: 0xf8000000},
		{Name: "NaN", X: decimal.NaN32(), Bits: 0x7c000000},
		{Name: "sNaN", X: decimal.SNaN32(), Bits: 0x7e000000},
	}

	for _, tc := range tcs {
		t.Run(tc.Name, func(t *testing.T) {
			require.Equal(t, tc.Bits, EncodeDPD32(tc.X), "%08x", EncodeDPD32(tc.X))
			require.Equal(t, tc.X.Bits(), DecodeDPD32(tc.Bits).Bits())
		})
	}

	require.Equal(t, uint64(0x2238000000000001), EncodeDPD64(decimal.NewDecimal64(1, 0)))

	hi, lo := EncodeDPD128(decimal.NewDecimal128(1, 0))
	require.Equal(t, uint64(0x2208000000000000), hi)
	require.Equal(t, uint64(1), lo)
}

func TestDPDDecodeAll32(t *testing.T) {
	// Sign, combination and exponent continuation bits in every
	// combination, over all-ones declets (the largest non-canonical
	// pattern) and all-zero declets.
	for head := uint32(0); head < 1<<12; head++ {
		for _, trailing := range []uint32{0, 1<<20 - 1} {
			bits := head<<20 | trailing
			x := DecodeDPD32(bits)

			require.Equal(t, bits>>31 == 1, x.Signbit(), "%#08x", bits)

			switch comb := bits >> 26 & 0b11111; {
			case comb == 0b11111:
				require.True(t, x.IsNaN(), "%#08x", bits)
				require.Equal(t, bits>>25&1 == 1, x.IsSignaling(), "%#08x", bits)
			case comb == 0b11110:
				require.True(t, x.IsInf(), "%#08x", bits)
			default:
				require.True(t, x.IsFinite(), "%#08x", bits)
				require.Equal(t, trailing == 0 && comb&0b11000 != 0b11000 && comb&0b111 == 0, x.IsZero(), "%#08x", bits)

				y := DecodeDPD32(EncodeDPD32(x))
				require.Equal(t, x.Bits(), y.Bits(), "%#08x", bits)
			}
		}
	}

	x := DecodeDPD64(0x77fcff3fcff3fcff)
	require.Equal(t, "9999999999999999e369", x.String())

	hi, lo := EncodeDPD128(decimal.NewDecimal128(-7, 12))
	require.Equal(t, "-7e12", DecodeDPD128(hi, lo).String())
}
