package decimal

import (
	"math"

	num "github.com/shabbyrobe/go-num"

	"github.com/calebcase/decimal/integer"
)

// Decimal128 is an IEEE 754 decimal128 value in the binary integer decimal
// encoding: 34 digits of precision and exponents from -6176 to 6111.
//
// The zero value is positive zero.
type Decimal128 struct {
	hi, lo uint64
}

// 10^34 - 1
var maxSig128 = integer.U256{}.Pow10(34).Sub(integer.U256{}.From64(1))

// Decimal128FromBits reinterprets a raw bit pattern given as its high and
// low words. Every pattern is accepted.
func Decimal128FromBits(hi, lo uint64) Decimal128 {
	return Decimal128{hi: hi, lo: lo}
}

// Bits returns the raw bit pattern as its high and low words.
func (x Decimal128) Bits() (hi, lo uint64) {
	return x.hi, x.lo
}

// NewDecimal128 returns coeff * 10^exp rounded with the default mode.
func NewDecimal128(coeff int64, exp int) Decimal128 {
	return pack128(fromInt64(eng128, coeff, exp, RoundingModeDefault()))
}

// NewDecimal128Sign returns ±coeff * 10^exp rounded with the default mode.
func NewDecimal128Sign(coeff num.U128, exp int, neg bool) Decimal128 {
	hi, lo := coeff.Raw()

	return pack128(eng128.finish(neg, integer.U256{}.FromWords(hi, lo), exp, false, RoundingModeDefault()))
}

// NewDecimal128FromFloat returns the decimal closest to the shortest decimal
// form of f.
func NewDecimal128FromFloat(f float64) Decimal128 {
	return pack128(fromFloat(eng128, f, 64, RoundingModeDefault()))
}

// Inf128 returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf128(sign int) Decimal128 {
	return pack128(eng128.inf(sign < 0))
}

// NaN128 returns a quiet NaN.
func NaN128() Decimal128 {
	return pack128(eng128.nan())
}

// SNaN128 returns a signaling NaN.
func SNaN128() Decimal128 {
	return pack128(eng128.snan())
}

func (x Decimal128) unpack() components[integer.U256] {
	f := format128.layout.decode(x.hi)

	c := components[integer.U256]{
		kind:  f.kind,
		neg:   f.neg,
		coeff: integer.U256{}.FromWords(f.sig, x.lo),
	}

	if f.kind == finite {
		c.exp = f.biased - format128.bias

		if c.coeff.Cmp(maxSig128) > 0 {
			c.coeff = integer.U256{}
		}
	}

	return c
}

func pack128(c components[integer.U256]) Decimal128 {
	hi, lo := c.coeff.Words()

	f := fields{
		kind: c.kind,
		neg:  c.neg,
		sig:  hi,
	}

	if c.kind == finite {
		f.biased = c.exp + format128.bias
	}

	if c.kind == infinite {
		lo = 0
	}

	return Decimal128{hi: format128.layout.encode(f), lo: lo}
}

// String returns the debug form, for example 1234568e2 or -Inf.
func (x Decimal128) String() string {
	return x.unpack().String()
}

// Signbit reports whether the sign bit is set.
func (x Decimal128) Signbit() bool {
	return x.hi&format128.layout.signMask != 0
}

// IsNaN reports whether x is a quiet or signaling NaN.
func (x Decimal128) IsNaN() bool {
	return x.unpack().kind.isNaN()
}

// IsSignaling reports whether x is a signaling NaN.
func (x Decimal128) IsSignaling() bool {
	return x.unpack().kind == signalingNaN
}

// IsInf reports whether x is an infinity.
func (x Decimal128) IsInf() bool {
	return x.unpack().kind == infinite
}

// IsFinite reports whether x is neither infinite nor NaN.
func (x Decimal128) IsFinite() bool {
	return x.unpack().kind == finite
}

// IsZero reports whether x is a zero of either sign.
func (x Decimal128) IsZero() bool {
	return x.unpack().isZero()
}

// IsNormal reports whether x is finite, nonzero and not subnormal.
func (x Decimal128) IsNormal() bool {
	return eng128.isNormal(x.unpack())
}

// Class returns the category of x.
func (x Decimal128) Class() Class {
	return eng128.classify(x.unpack())
}

// Add returns x + y.
func (x Decimal128) Add(y Decimal128) Decimal128 {
	return pack128(eng128.add(x.unpack(), y.unpack(), false, RoundingModeDefault()))
}

// Sub returns x - y.
func (x Decimal128) Sub(y Decimal128) Decimal128 {
	return pack128(eng128.add(x.unpack(), y.unpack(), true, RoundingModeDefault()))
}

// Mul returns x * y.
func (x Decimal128) Mul(y Decimal128) Decimal128 {
	return pack128(eng128.mul(x.unpack(), y.unpack(), RoundingModeDefault()))
}

// Quo returns x / y.
func (x Decimal128) Quo(y Decimal128) Decimal128 {
	return pack128(eng128.quo(x.unpack(), y.unpack(), RoundingModeDefault()))
}

// Rem returns the remainder of x / y truncated toward zero, like fmod.
func (x Decimal128) Rem(y Decimal128) Decimal128 {
	return pack128(eng128.rem(x.unpack(), y.unpack(), RoundingModeDefault()))
}

// FMA returns x * y + z rounded once.
func (x Decimal128) FMA(y, z Decimal128) Decimal128 {
	return pack128(fma(eng128, fma128, x.unpack(), y.unpack(), z.unpack(), RoundingModeDefault()))
}

// Inc returns x + 1.
func (x Decimal128) Inc() Decimal128 {
	return x.Add(Decimal128FromBits(one128, 1))
}

// Dec returns x - 1.
func (x Decimal128) Dec() Decimal128 {
	return x.Sub(Decimal128FromBits(one128, 1))
}

// 1e0
const one128 = 6176 << 49

// Neg returns x with its sign flipped.
func (x Decimal128) Neg() Decimal128 {
	return Decimal128{hi: x.hi ^ format128.layout.signMask, lo: x.lo}
}

// Abs returns x with its sign cleared.
func (x Decimal128) Abs() Decimal128 {
	return Decimal128{hi: x.hi &^ format128.layout.signMask, lo: x.lo}
}

// CopySign returns x with the sign of y.
func (x Decimal128) CopySign(y Decimal128) Decimal128 {
	if x.Signbit() == y.Signbit() {
		return x
	}

	return x.Neg()
}

// Compare orders x and y by value. Any NaN makes the result Unordered.
func (x Decimal128) Compare(y Decimal128) Ordering {
	return eng128.compare(x.unpack(), y.unpack())
}

// Equal reports whether x and y have the same value. Zeros of either sign
// are equal and NaN equals nothing.
func (x Decimal128) Equal(y Decimal128) bool { return x.Compare(y) == Equal }

// NotEqual is the negation of Equal; it is true when either side is NaN.
func (x Decimal128) NotEqual(y Decimal128) bool { return x.Compare(y) != Equal }

func (x Decimal128) Less(y Decimal128) bool { return x.Compare(y) == Less }

func (x Decimal128) LessEqual(y Decimal128) bool {
	o := x.Compare(y)

	return o == Less || o == Equal
}

func (x Decimal128) Greater(y Decimal128) bool { return x.Compare(y) == Greater }

func (x Decimal128) GreaterEqual(y Decimal128) bool {
	o := x.Compare(y)

	return o == Greater || o == Equal
}

// Min returns the smaller of x and y. A single NaN operand is ignored.
func (x Decimal128) Min(y Decimal128) Decimal128 {
	return pack128(eng128.minMax(x.unpack(), y.unpack(), false))
}

// Max returns the larger of x and y. A single NaN operand is ignored.
func (x Decimal128) Max(y Decimal128) Decimal128 {
	return pack128(eng128.minMax(x.unpack(), y.unpack(), true))
}

// Remainder returns the IEEE remainder x - n*y where n is x/y rounded to
// nearest, ties to even.
func (x Decimal128) Remainder(y Decimal128) Decimal128 {
	r, _ := eng128.remquo(x.unpack(), y.unpack(), RoundingModeDefault())

	return pack128(r)
}

// Remquo is Remainder that also returns the low three bits of n with the
// sign of x/y.
func (x Decimal128) Remquo(y Decimal128) (Decimal128, int) {
	r, quo := eng128.remquo(x.unpack(), y.unpack(), RoundingModeDefault())

	return pack128(r), quo
}

// Modf returns the integral part of x and the fraction, both with the sign
// of x.
func (x Decimal128) Modf() (ipart, frac Decimal128) {
	i, f := eng128.modf(x.unpack(), RoundingModeDefault())

	return pack128(i), pack128(f)
}

// Dim returns x - y when x > y and +0 otherwise.
func (x Decimal128) Dim(y Decimal128) Decimal128 {
	return pack128(eng128.dim(x.unpack(), y.unpack(), RoundingModeDefault()))
}

// NextUp returns the least Decimal128 greater than x.
func (x Decimal128) NextUp() Decimal128 {
	return pack128(eng128.nextUp(x.unpack()))
}

// NextDown returns the greatest Decimal128 less than x.
func (x Decimal128) NextDown() Decimal128 {
	return pack128(eng128.nextDown(x.unpack()))
}

// Nextafter returns the next representable value after x toward y. If x
// equals y it returns y.
func (x Decimal128) Nextafter(y Decimal128) Decimal128 {
	return pack128(eng128.nextAfter(x.unpack(), y.unpack()))
}

// SameQuantum reports whether x and y share an exponent, or are both NaN,
// or are both infinite.
func (x Decimal128) SameQuantum(y Decimal128) bool {
	return sameQuantum(x.unpack(), y.unpack())
}

// QuantExp returns the unbiased exponent of x, or math.MinInt32 when x is
// not finite.
func (x Decimal128) QuantExp() int {
	return quantExp(x.unpack())
}

// Quantize returns x rounded to the exponent of y.
func (x Decimal128) Quantize(y Decimal128) Decimal128 {
	return pack128(eng128.quantize(x.unpack(), y.unpack(), RoundingModeDefault()))
}

// Floor rounds toward negative infinity.
func (x Decimal128) Floor() Decimal128 { return x.RoundToIntegral(Downward) }

// Ceil rounds toward positive infinity.
func (x Decimal128) Ceil() Decimal128 { return x.RoundToIntegral(Upward) }

// Trunc rounds toward zero.
func (x Decimal128) Trunc() Decimal128 { return x.RoundToIntegral(TowardZero) }

// Round rounds to the nearest integer, ties away from zero.
func (x Decimal128) Round() Decimal128 { return x.RoundToIntegral(NearestFromZero) }

// RoundEven rounds to the nearest integer, ties to even.
func (x Decimal128) RoundEven() Decimal128 { return x.RoundToIntegral(NearestEven) }

// RoundToIntegral rounds x to an integral value with the given mode.
func (x Decimal128) RoundToIntegral(mode RoundingMode) Decimal128 {
	return pack128(eng128.integral(x.unpack(), mode))
}

// Scalbn returns x * 10^n.
func (x Decimal128) Scalbn(n int) Decimal128 {
	return x.Scalbln(int64(n))
}

// Scalbln returns x * 10^n.
func (x Decimal128) Scalbln(n int64) Decimal128 {
	return pack128(eng128.scalbn(x.unpack(), n, RoundingModeDefault()))
}

// Frexp10 returns a 34 digit significand and exponent with
// x = ±sig * 10^exp. Zero gives (0, 0); NaN and Inf give
// (num.MaxU128, 0).
func (x Decimal128) Frexp10() (sig num.U128, exp int) {
	c, e := eng128.frexp10(x.unpack(), integer.U256{}.FromWords(math.MaxUint64, math.MaxUint64))

	return num.U128FromRaw(c.Words()), e
}

// Ilogb returns the exponent of the leading digit of x.
func (x Decimal128) Ilogb() int {
	return eng128.ilogb(x.unpack())
}

// Logb returns Ilogb as a decimal.
func (x Decimal128) Logb() Decimal128 {
	return pack128(eng128.logb(x.unpack(), RoundingModeDefault()))
}

// Int64 truncates x toward zero. NaN fails with ErrInvalid; infinities and
// values out of range fail with ErrRange.
func (x Decimal128) Int64() (int64, error) {
	return x.unpack().toInt64(math.MinInt64, math.MaxInt64)
}

// Int32 is Int64 for the int32 range.
func (x Decimal128) Int32() (int32, error) {
	v, err := x.unpack().toInt64(math.MinInt32, math.MaxInt32)

	return int32(v), err
}

// Uint64 truncates x toward zero. Negative values fail with ErrRange.
func (x Decimal128) Uint64() (uint64, error) {
	return x.unpack().toUint64()
}

// Float64 returns the float64 nearest to x.
func (x Decimal128) Float64() float64 {
	return x.unpack().toFloat(64)
}

// Float32 returns the float32 nearest to x.
func (x Decimal128) Float32() float32 {
	return float32(x.unpack().toFloat(32))
}

// To32 narrows x to a Decimal32, rounding with the default mode.
func (x Decimal128) To32() Decimal32 {
	return pack32(convert(eng32, x.unpack(), RoundingModeDefault()))
}

// To64 narrows x to a Decimal64, rounding with the default mode.
func (x Decimal128) To64() Decimal64 {
	return pack64(convert(eng64, x.unpack(), RoundingModeDefault()))
}
