package decimal_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/calebcase/decimal"
)

func TestRoundingModeText(t *testing.T) {
	for _, m := range []decimal.RoundingMode{
		decimal.NearestEven,
		decimal.NearestFromZero,
		decimal.TowardZero,
		decimal.Upward,
		decimal.Downward,
	} {
		data, err := m.MarshalText()
		require.NoError(t, err)

		var got decimal.RoundingMode
		require.NoError(t, got.UnmarshalText(data))
		require.Equal(t, m, got)
	}

	var m decimal.RoundingMode
	require.NoError(t, m.UnmarshalText([]byte("Toward-Zero")))
	require.Equal(t, decimal.TowardZero, m)

	require.Error(t, m.UnmarshalText([]byte("sideways")))

	_, err := decimal.RoundingMode(42).MarshalText()
	require.Error(t, err)
	require.Equal(t, "unknown", decimal.RoundingMode(42).String())
}

func TestContextModes(t *testing.T) {
	type TC struct {
		Mode   decimal.RoundingMode
		Coeff  int64
		String string
	}

	tcs := []TC{
		{decimal.NearestEven, 12345675, "1234568e1"},
		{decimal.NearestEven, 12345665, "1234566e1"},
		{decimal.NearestFromZero, 12345665, "1234567e1"},
		{decimal.NearestFromZero, -12345665, "-1234567e1"},
		{decimal.TowardZero, 12345675, "1234567e1"},
		{decimal.TowardZero, -12345679, "-1234567e1"},
		{decimal.Upward, 12345671, "1234568e1"},
		{decimal.Upward, -12345679, "-1234567e1"},
		{decimal.Downward, 12345679, "1234567e1"},
		{decimal.Downward, -12345671, "-1234568e1"},
		{decimal.Upward, 12345670, "1234567e1"},
	}

	for _, tc := range tcs {
		t.Run(tc.Mode.String()+"/"+tc.String, func(t *testing.T) {
			ctx := decimal.Context{Mode: tc.Mode}
			require.Equal(t, tc.String, ctx.NewDecimal32(tc.Coeff, 0).String())
		})
	}

	t.Run("arithmetic", func(t *testing.T) {
		up := decimal.Context{Mode: decimal.Upward}
		down := decimal.Context{Mode: decimal.Downward}

		one, three := d32(1, 0), d32(3, 0)
		require.Equal(t, "3333334e-7", up.Quo32(one, three).String())
		require.Equal(t, "3333333e-7", down.Quo32(one, three).String())
		require.Equal(t, "-3333334e-7", down.Quo32(one.Neg(), three).String())

		big := d32(9999999, 0)
		require.Equal(t, "1000000e1", up.Add32(big, d32(1, -5)).String())
		require.Equal(t, "9999999e0", down.Add32(big, d32(1, -5)).String())
		require.Equal(t, "9999999e0", up.Sub32(big, d32(1, -5)).String())

		require.Equal(t, "1100000e1", up.Mul32(big, d32(11, -1)).String())
		require.Equal(t, "1099999e1", down.Mul32(big, d32(11, -1)).String())
	})

	t.Run("sign constructors", func(t *testing.T) {
		for _, tc := range tcs {
			ctx := decimal.Context{Mode: tc.Mode}

			mag, neg := uint64(tc.Coeff), tc.Coeff < 0
			if neg {
				mag = uint64(-tc.Coeff)
			}

			require.Equal(t, tc.String, ctx.NewDecimal32Sign(mag, 0, neg).String())
		}

		up := decimal.Context{Mode: decimal.Upward}
		down := decimal.Context{Mode: decimal.Downward}

		require.Equal(t, "1000000000000000e4", up.NewDecimal64Sign(99999999999999999, 2, false).String())
		require.Equal(t, "-1000000000000000e4", down.NewDecimal64Sign(99999999999999999, 2, true).String())
		require.Equal(t, "9999999999999999e3", down.NewDecimal64Sign(99999999999999999, 2, false).String())
		require.True(t, up.NewDecimal64Sign(0, 0, true).Signbit())
	})

	t.Run("default is explicit", func(t *testing.T) {
		prev := decimal.SetRoundingMode(decimal.Upward)
		defer decimal.SetRoundingMode(prev)

		require.Equal(t, decimal.Upward, decimal.DefaultContext().Mode)
		require.Equal(t, "1234568e1", d32(12345671, 0).String())

		ctx := decimal.Context{}
		require.Equal(t, "1234567e1", ctx.NewDecimal32(12345671, 0).String())
	})
}

func TestSetRoundingMode(t *testing.T) {
	prev := decimal.SetRoundingMode(decimal.TowardZero)
	require.Equal(t, decimal.NearestEven, prev)
	require.Equal(t, decimal.TowardZero, decimal.RoundingModeDefault())

	require.Equal(t, "1234567e1", d32(12345679, 0).String())

	require.Equal(t, decimal.TowardZero, decimal.SetRoundingMode(prev))
	require.Equal(t, "1234568e1", d32(12345679, 0).String())
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	decimal.SetLogger(zap.New(core))
	defer decimal.SetLogger(nil)

	_ = d32(1, 97)
	_ = d32(12345678, 0)
	_ = d32(1, -110)

	messages := []string{}
	for _, e := range logs.All() {
		messages = append(messages, e.Message)
		require.Equal(t, "decimal32", e.ContextMap()["format"])
	}

	require.Contains(t, messages, "overflow")
	require.Contains(t, messages, "inexact")
	require.Contains(t, messages, "underflow")

	decimal.SetLogger(nil)
	require.NotNil(t, decimal.Logger())
}
