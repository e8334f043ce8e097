package decimal_test

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/decimal"
)

// decomposer is the interface database drivers use to move decimals
// without going through text.
type decomposer interface {
	Decompose(buf []byte) (form byte, negative bool, coefficient []byte, exponent int32)
}

func pow10Bytes(n int64, minus int64) []byte {
	v := new(big.Int).Exp(big.NewInt(10), big.NewInt(n), nil)

	return v.Sub(v, big.NewInt(minus)).Bytes()
}

func TestDecompose(t *testing.T) {
	type TC struct {
		Name        string
		X           decomposer
		Form        byte
		Negative    bool
		Coefficient []byte
		Exponent    int32
	}

	tcs := []TC{
		{
			Name:        "32",
			X:           d32(1234567, -3),
			Form:        decimal.FormFinite,
			Coefficient: []byte{0x12, 0xd6, 0x87},
			Exponent:    -3,
		},
		{
			Name:        "32/-0",
			X:           d32(0, 0).Neg(),
			Form:        decimal.FormFinite,
			Negative:    true,
			Coefficient: []byte{0},
			Exponent:    -101,
		},
		{
			Name:        "64/-Inf",
			X:           decimal.Inf64(-1),
			Form:        decimal.FormInfinite,
			Negative:    true,
		},
		{
			Name:        "64/NaN",
			X:           decimal.NaN64(),
			Form:        decimal.FormNaN,
			Coefficient: []byte{0},
		},
		{
			Name:        "128/sNaN",
			X:           decimal.SNaN128(),
			Form:        decimal.FormSNaN,
			Coefficient: []byte{0},
		},
		{
			Name:        "128/max",
			X:           d128(1, 6144),
			Form:        decimal.FormFinite,
			Coefficient: pow10Bytes(33, 0),
			Exponent:    6111,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Name, func(t *testing.T) {
			form, negative, coefficient, exponent := tc.X.Decompose(nil)
			require.Equal(t, tc.Form, form)
			require.Equal(t, tc.Negative, negative)
			require.Equal(t, tc.Exponent, exponent)
			require.Empty(t, cmp.Diff(tc.Coefficient, coefficient))
		})
	}

	t.Run("buffer reuse", func(t *testing.T) {
		buf := make([]byte, 0, 32)
		_, _, coefficient, _ := d64(255, 0).Decompose(buf)
		require.Equal(t, []byte{0xff}, coefficient)
		require.Same(t, &buf[:1][0], &coefficient[0])
	})
}

func TestComposeRoundTrip(t *testing.T) {
	xs32 := []decimal.Decimal32{
		d32(1234567, -3),
		d32(10, -1),
		d32(-1, 90),
		d32(1000000, 90),
		d32(1, -101),
		d32(0, 0).Neg(),
		decimal.Inf32(1),
		decimal.NaN32(),
		decimal.SNaN32().Neg(),
	}

	for _, x := range xs32 {
		var y decimal.Decimal32
		require.NoError(t, y.Compose(x.Decompose(nil)))
		require.Equal(t, x.Bits(), y.Bits(), x.String())
	}

	xs64 := []decimal.Decimal64{
		d64(1234567890123456, -20),
		d64(-5, 369),
		d64(1, -398),
		decimal.Inf64(-1),
	}

	for _, x := range xs64 {
		var y decimal.Decimal64
		require.NoError(t, y.Compose(x.Decompose(nil)))
		require.Equal(t, x.Bits(), y.Bits(), x.String())
	}

	xs128 := []decimal.Decimal128{
		d128(-9223372036854775807, -6176),
		d128(1, 6144),
		decimal.Inf128(1).Neg(),
		decimal.SNaN128(),
	}

	for _, x := range xs128 {
		var y decimal.Decimal128
		require.NoError(t, y.Compose(x.Decompose(nil)))
		require.Equal(t, x.String(), y.String())

		xh, xl := x.Bits()
		yh, yl := y.Bits()
		require.Equal(t, xh, yh)
		require.Equal(t, xl, yl)
	}
}

func TestComposeErrors(t *testing.T) {
	type TC struct {
		Name        string
		Form        byte
		Coefficient []byte
		Exponent    int32
	}

	tcs := []TC{
		{Name: "digits", Form: decimal.FormFinite, Coefficient: pow10Bytes(7, 0)},
		{Name: "exponent high", Form: decimal.FormFinite, Coefficient: []byte{1}, Exponent: 91},
		{Name: "exponent low", Form: decimal.FormFinite, Coefficient: []byte{1}, Exponent: -102},
		{Name: "payload", Form: decimal.FormNaN, Coefficient: pow10Bytes(6, 0)},
		{Name: "form", Form: 9, Coefficient: []byte{1}},
		{Name: "width", Form: decimal.FormFinite, Coefficient: bytes.Repeat([]byte{0xff}, 17)},
	}

	for _, tc := range tcs {
		t.Run(tc.Name, func(t *testing.T) {
			x := d32(42, 0)
			err := x.Compose(tc.Form, false, tc.Coefficient, tc.Exponent)
			require.Error(t, err)
			require.True(t, decimal.Error.Has(err), "%v", err)
			require.Equal(t, "42e0", x.String())
		})
	}

	var x decimal.Decimal128
	require.NoError(t, x.Compose(decimal.FormFinite, false, pow10Bytes(34, 1), 0))
	require.Equal(t, "9999999999999999999999999999999999e0", x.String())
	require.Error(t, x.Compose(decimal.FormFinite, false, pow10Bytes(34, 0), 0))

	var y decimal.Decimal32
	require.NoError(t, y.Compose(decimal.FormFinite, true, nil, 0))
	require.True(t, y.IsZero())
	require.True(t, y.Signbit())
}
