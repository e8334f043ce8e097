package decimal

import (
	num "github.com/shabbyrobe/go-num"

	"github.com/calebcase/decimal/integer"
)

// Context carries a rounding mode explicitly. Its methods never consult the
// process wide default, so goroutines can round differently without
// coordinating.
//
// The zero Context rounds to nearest, ties to even.
type Context struct {
	Mode RoundingMode
}

// DefaultContext returns a Context holding the current process wide mode.
func DefaultContext() Context {
	return Context{Mode: RoundingModeDefault()}
}

// NewDecimal32 is NewDecimal32 rounded with the context mode.
func (ctx Context) NewDecimal32(coeff int64, exp int) Decimal32 {
	return pack32(fromInt64(eng32, coeff, exp, ctx.Mode))
}

// NewDecimal32Sign is NewDecimal32Sign rounded with the context mode.
func (ctx Context) NewDecimal32Sign(coeff uint64, exp int, neg bool) Decimal32 {
	return pack32(eng32.finish(neg, integer.U64(coeff), exp, false, ctx.Mode))
}

// Add32 returns x + y rounded with the context mode.
func (ctx Context) Add32(x, y Decimal32) Decimal32 {
	return pack32(eng32.add(x.unpack(), y.unpack(), false, ctx.Mode))
}

// Sub32 returns x - y rounded with the context mode.
func (ctx Context) Sub32(x, y Decimal32) Decimal32 {
	return pack32(eng32.add(x.unpack(), y.unpack(), true, ctx.Mode))
}

// Mul32 returns x * y rounded with the context mode.
func (ctx Context) Mul32(x, y Decimal32) Decimal32 {
	return pack32(eng32.mul(x.unpack(), y.unpack(), ctx.Mode))
}

// Quo32 returns x / y rounded with the context mode.
func (ctx Context) Quo32(x, y Decimal32) Decimal32 {
	return pack32(eng32.quo(x.unpack(), y.unpack(), ctx.Mode))
}

// Rem32 returns the truncated remainder of x / y, like fmod.
func (ctx Context) Rem32(x, y Decimal32) Decimal32 {
	return pack32(eng32.rem(x.unpack(), y.unpack(), ctx.Mode))
}

// FMA32 returns x*y + z with a single rounding in the context mode.
func (ctx Context) FMA32(x, y, z Decimal32) Decimal32 {
	return pack32(fma(eng32, fma32, x.unpack(), y.unpack(), z.unpack(), ctx.Mode))
}

// Quantize32 returns x with the exponent of y, rounding with the context mode.
func (ctx Context) Quantize32(x, y Decimal32) Decimal32 {
	return pack32(eng32.quantize(x.unpack(), y.unpack(), ctx.Mode))
}

// Round32 rounds x to an integral value with the context mode.
func (ctx Context) Round32(x Decimal32) Decimal32 {
	return x.RoundToIntegral(ctx.Mode)
}

// FromFloat32 is NewDecimal32FromFloat rounded with the context mode.
func (ctx Context) FromFloat32(f float64) Decimal32 {
	return pack32(fromFloat(eng32, f, 64, ctx.Mode))
}

// NewDecimal64 is NewDecimal64 rounded with the context mode.
func (ctx Context) NewDecimal64(coeff int64, exp int) Decimal64 {
	return pack64(fromInt64(eng64, coeff, exp, ctx.Mode))
}

// NewDecimal64Sign is NewDecimal64Sign rounded with the context mode.
func (ctx Context) NewDecimal64Sign(coeff uint64, exp int, neg bool) Decimal64 {
	return pack64(eng64.finish(neg, eng64.num(coeff), exp, false, ctx.Mode))
}

// Add64 returns x + y rounded with the context mode.
func (ctx Context) Add64(x, y Decimal64) Decimal64 {
	return pack64(eng64.add(x.unpack(), y.unpack(), false, ctx.Mode))
}

// Sub64 returns x - y rounded with the context mode.
func (ctx Context) Sub64(x, y Decimal64) Decimal64 {
	return pack64(eng64.add(x.unpack(), y.unpack(), true, ctx.Mode))
}

// Mul64 returns x * y rounded with the context mode.
func (ctx Context) Mul64(x, y Decimal64) Decimal64 {
	return pack64(eng64.mul(x.unpack(), y.unpack(), ctx.Mode))
}

// Quo64 returns x / y rounded with the context mode.
func (ctx Context) Quo64(x, y Decimal64) Decimal64 {
	return pack64(eng64.quo(x.unpack(), y.unpack(), ctx.Mode))
}

// Rem64 returns the truncated remainder of x / y, like fmod.
func (ctx Context) Rem64(x, y Decimal64) Decimal64 {
	return pack64(eng64.rem(x.unpack(), y.unpack(), ctx.Mode))
}

// FMA64 returns x*y + z with a single rounding in the context mode.
func (ctx Context) FMA64(x, y, z Decimal64) Decimal64 {
	return pack64(fma(eng64, fma64, x.unpack(), y.unpack(), z.unpack(), ctx.Mode))
}

// Quantize64 returns x with the exponent of y, rounding with the context mode.
func (ctx Context) Quantize64(x, y Decimal64) Decimal64 {
	return pack64(eng64.quantize(x.unpack(), y.unpack(), ctx.Mode))
}

// Round64 rounds x to an integral value with the context mode.
func (ctx Context) Round64(x Decimal64) Decimal64 {
	return x.RoundToIntegral(ctx.Mode)
}

// FromFloat64 is NewDecimal64FromFloat rounded with the context mode.
func (ctx Context) FromFloat64(f float64) Decimal64 {
	return pack64(fromFloat(eng64, f, 64, ctx.Mode))
}

// NewDecimal128 is NewDecimal128 rounded with the context mode.
func (ctx Context) NewDecimal128(coeff int64, exp int) Decimal128 {
	return pack128(fromInt64(eng128, coeff, exp, ctx.Mode))
}

// NewDecimal128Sign is NewDecimal128Sign rounded with the context mode.
func (ctx Context) NewDecimal128Sign(coeff num.U128, exp int, neg bool) Decimal128 {
	hi, lo := coeff.Raw()

	return pack128(eng128.finish(neg, eng128.num(0).FromWords(hi, lo), exp, false, ctx.Mode))
}

// Add128 returns x + y rounded with the context mode.
func (ctx Context) Add128(x, y Decimal128) Decimal128 {
	return pack128(eng128.add(x.unpack(), y.unpack(), false, ctx.Mode))
}

// Sub128 returns x - y rounded with the context mode.
func (ctx Context) Sub128(x, y Decimal128) Decimal128 {
	return pack128(eng128.add(x.unpack(), y.unpack(), true, ctx.Mode))
}

// Mul128 returns x * y rounded with the context mode.
func (ctx Context) Mul128(x, y Decimal128) Decimal128 {
	return pack128(eng128.mul(x.unpack(), y.unpack(), ctx.Mode))
}

// Quo128 returns x / y rounded with the context mode.
func (ctx Context) Quo128(x, y Decimal128) Decimal128 {
	return pack128(eng128.quo(x.unpack(), y.unpack(), ctx.Mode))
}

// Rem128 returns the truncated remainder of x / y, like fmod.
func (ctx Context) Rem128(x, y Decimal128) Decimal128 {
	return pack128(eng128.rem(x.unpack(), y.unpack(), ctx.Mode))
}

// FMA128 returns x*y + z with a single rounding in the context mode.
func (ctx Context) FMA128(x, y, z Decimal128) Decimal128 {
	return pack128(fma(eng128, fma128, x.unpack(), y.unpack(), z.unpack(), ctx.Mode))
}

// Quantize128 returns x with the exponent of y, rounding with the context mode.
func (ctx Context) Quantize128(x, y Decimal128) Decimal128 {
	return pack128(eng128.quantize(x.unpack(), y.unpack(), ctx.Mode))
}

// Round128 rounds x to an integral value with the context mode.
func (ctx Context) Round128(x Decimal128) Decimal128 {
	return x.RoundToIntegral(ctx.Mode)
}

// FromFloat128 is NewDecimal128FromFloat rounded with the context mode.
func (ctx Context) FromFloat128(f float64) Decimal128 {
	return pack128(fromFloat(eng128, f, 64, ctx.Mode))
}

// To32 narrows x to a Decimal32 with the context mode.
func (ctx Context) To32(x Decimal64) Decimal32 {
	return pack32(convert(eng32, x.unpack(), ctx.Mode))
}

// To64 narrows x to a Decimal64 with the context mode.
func (ctx Context) To64(x Decimal128) Decimal64 {
	return pack64(convert(eng64, x.unpack(), ctx.Mode))
}

// To32From128 narrows x to a Decimal32 with the context mode.
func (ctx Context) To32From128(x Decimal128) Decimal32 {
	return pack32(convert(eng32, x.unpack(), ctx.Mode))
}
