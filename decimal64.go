package decimal

import (
	"math"

	"github.com/calebcase/decimal/integer"
)

// Decimal64 is an IEEE 754 decimal64 value in the binary integer decimal
// encoding: 16 digits of precision and exponents from -398 to 369.
//
// The zero value is positive zero.
type Decimal64 struct {
	bits uint64
}

const maxSig64 = 9999999999999999

// Decimal64FromBits reinterprets a raw bit pattern. Every pattern is
// accepted.
func Decimal64FromBits(bits uint64) Decimal64 {
	return Decimal64{bits: bits}
}

// Bits returns the raw bit pattern.
func (x Decimal64) Bits() uint64 {
	return x.bits
}

// NewDecimal64 returns coeff * 10^exp rounded with the default mode.
func NewDecimal64(coeff int64, exp int) Decimal64 {
	return pack64(fromInt64(eng64, coeff, exp, RoundingModeDefault()))
}

// NewDecimal64Sign returns ±coeff * 10^exp rounded with the default mode.
func NewDecimal64Sign(coeff uint64, exp int, neg bool) Decimal64 {
	return pack64(eng64.finish(neg, eng64.num(coeff), exp, false, RoundingModeDefault()))
}

// NewDecimal64FromFloat returns the decimal closest to the shortest decimal
// form of f.
func NewDecimal64FromFloat(f float64) Decimal64 {
	return pack64(fromFloat(eng64, f, 64, RoundingModeDefault()))
}

// Inf64 returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf64(sign int) Decimal64 {
	return pack64(eng64.inf(sign < 0))
}

// NaN64 returns a quiet NaN.
func NaN64() Decimal64 {
	return pack64(eng64.nan())
}

// SNaN64 returns a signaling NaN.
func SNaN64() Decimal64 {
	return pack64(eng64.snan())
}

func (x Decimal64) unpack() components[integer.U128] {
	f := format64.layout.decode(x.bits)

	c := components[integer.U128]{
		kind:  f.kind,
		neg:   f.neg,
		coeff: eng64.num(f.sig),
	}

	if f.kind == finite {
		c.exp = f.biased - format64.bias

		if f.sig > maxSig64 {
			c.coeff = eng64.num(0)
		}
	}

	return c
}

func pack64(c components[integer.U128]) Decimal64 {
	f := fields{
		kind: c.kind,
		neg:  c.neg,
		sig:  c.coeff.Uint64(),
	}

	if c.kind == finite {
		f.biased = c.exp + format64.bias
	}

	return Decimal64{bits: format64.layout.encode(f)}
}

// String returns the debug form, for example 1234568e2 or -Inf.
func (x Decimal64) String() string {
	return x.unpack().String()
}

// Signbit reports whether the sign bit is set.
func (x Decimal64) Signbit() bool {
	return x.bits&format64.layout.signMask != 0
}

// IsNaN reports whether x is a quiet or signaling NaN.
func (x Decimal64) IsNaN() bool {
	return x.unpack().kind.isNaN()
}

// IsSignaling reports whether x is a signaling NaN.
func (x Decimal64) IsSignaling() bool {
	return x.unpack().kind == signalingNaN
}

// IsInf reports whether x is an infinity.
func (x Decimal64) IsInf() bool {
	return x.unpack().kind == infinite
}

// IsFinite reports whether x is neither infinite nor NaN.
func (x Decimal64) IsFinite() bool {
	return x.unpack().kind == finite
}

// IsZero reports whether x is a zero of either sign.
func (x Decimal64) IsZero() bool {
	return x.unpack().isZero()
}

// IsNormal reports whether x is finite, nonzero and not subnormal.
func (x Decimal64) IsNormal() bool {
	return eng64.isNormal(x.unpack())
}

// Class returns the category of x.
func (x Decimal64) Class() Class {
	return eng64.classify(x.unpack())
}

// Add returns x + y.
func (x Decimal64) Add(y Decimal64) Decimal64 {
	return pack64(eng64.add(x.unpack(), y.unpack(), false, RoundingModeDefault()))
}

// Sub returns x - y.
func (x Decimal64) Sub(y Decimal64) Decimal64 {
	return pack64(eng64.add(x.unpack(), y.unpack(), true, RoundingModeDefault()))
}

// Mul returns x * y.
func (x Decimal64) Mul(y Decimal64) Decimal64 {
	return pack64(eng64.mul(x.unpack(), y.unpack(), RoundingModeDefault()))
}

// Quo returns x / y.
func (x Decimal64) Quo(y Decimal64) Decimal64 {
	return pack64(eng64.quo(x.unpack(), y.unpack(), RoundingModeDefault()))
}

// Rem returns the remainder of x / y truncated toward zero, like fmod.
func (x Decimal64) Rem(y Decimal64) Decimal64 {
	return pack64(eng64.rem(x.unpack(), y.unpack(), RoundingModeDefault()))
}

// FMA returns x * y + z rounded once.
func (x Decimal64) FMA(y, z Decimal64) Decimal64 {
	return pack64(fma(eng64, fma64, x.unpack(), y.unpack(), z.unpack(), RoundingModeDefault()))
}

// Inc returns x + 1.
func (x Decimal64) Inc() Decimal64 {
	return x.Add(Decimal64FromBits(one64))
}

// Dec returns x - 1.
func (x Decimal64) Dec() Decimal64 {
	return x.Sub(Decimal64FromBits(one64))
}

// 1e0
const one64 = 398<<53 | 1

// Neg returns x with its sign flipped.
func (x Decimal64) Neg() Decimal64 {
	return Decimal64{bits: x.bits ^ format64.layout.signMask}
}

// Abs returns x with its sign cleared.
func (x Decimal64) Abs() Decimal64 {
	return Decimal64{bits: x.bits &^ format64.layout.signMask}
}

// CopySign returns x with the sign of y.
func (x Decimal64) CopySign(y Decimal64) Decimal64 {
	if x.Signbit() == y.Signbit() {
		return x
	}

	return x.Neg()
}

// Compare orders x and y by value. Any NaN makes the result Unordered.
func (x Decimal64) Compare(y Decimal64) Ordering {
	return eng64.compare(x.unpack(), y.unpack())
}

// Equal reports whether x and y have the same value. Zeros of either sign
// are equal and NaN equals nothing.
func (x Decimal64) Equal(y Decimal64) bool { return x.Compare(y) == Equal }

// NotEqual is the negation of Equal; it is true when either side is NaN.
func (x Decimal64) NotEqual(y Decimal64) bool { return x.Compare(y) != Equal }

func (x Decimal64) Less(y Decimal64) bool { return x.Compare(y) == Less }

func (x Decimal64) LessEqual(y Decimal64) bool {
	o := x.Compare(y)

	return o == Less || o == Equal
}

func (x Decimal64) Greater(y Decimal64) bool { return x.Compare(y) == Greater }

func (x Decimal64) GreaterEqual(y Decimal64) bool {
	o := x.Compare(y)

	return o == Greater || o == Equal
}

// Min returns the smaller of x and y. A single NaN operand is ignored.
func (x Decimal64) Min(y Decimal64) Decimal64 {
	return pack64(eng64.minMax(x.unpack(), y.unpack(), false))
}

// Max returns the larger of x and y. A single NaN operand is ignored.
func (x Decimal64) Max(y Decimal64) Decimal64 {
	return pack64(eng64.minMax(x.unpack(), y.unpack(), true))
}

// Remainder returns the IEEE remainder x - n*y where n is x/y rounded to
// nearest, ties to even.
func (x Decimal64) Remainder(y Decimal64) Decimal64 {
	r, _ := eng64.remquo(x.unpack(), y.unpack(), RoundingModeDefault())

	return pack64(r)
}

// Remquo is Remainder that also returns the low three bits of n with the
// sign of x/y.
func (x Decimal64) Remquo(y Decimal64) (Decimal64, int) {
	r, quo := eng64.remquo(x.unpack(), y.unpack(), RoundingModeDefault())

	return pack64(r), quo
}

// Modf returns the integral part of x and the fraction, both with the sign
// of x.
func (x Decimal64) Modf() (ipart, frac Decimal64) {
	i, f := eng64.modf(x.unpack(), RoundingModeDefault())

	return pack64(i), pack64(f)
}

// Dim returns x - y when x > y and +0 otherwise.
func (x Decimal64) Dim(y Decimal64) Decimal64 {
	return pack64(eng64.dim(x.unpack(), y.unpack(), RoundingModeDefault()))
}

// NextUp returns the least Decimal64 greater than x.
func (x Decimal64) NextUp() Decimal64 {
	return pack64(eng64.nextUp(x.unpack()))
}

// NextDown returns the greatest Decimal64 less than x.
func (x Decimal64) NextDown() Decimal64 {
	return pack64(eng64.nextDown(x.unpack()))
}

// Nextafter returns the next representable value after x toward y. If x
// equals y it returns y.
func (x Decimal64) Nextafter(y Decimal64) Decimal64 {
	return pack64(eng64.nextAfter(x.unpack(), y.unpack()))
}

// SameQuantum reports whether x and y share an exponent, or are both NaN,
// or are both infinite.
func (x Decimal64) SameQuantum(y Decimal64) bool {
	return sameQuantum(x.unpack(), y.unpack())
}

// QuantExp returns the unbiased exponent of x, or math.MinInt32 when x is
// not finite.
func (x Decimal64) QuantExp() int {
	return quantExp(x.unpack())
}

// Quantize returns x rounded to the exponent of y.
func (x Decimal64) Quantize(y Decimal64) Decimal64 {
	return pack64(eng64.quantize(x.unpack(), y.unpack(), RoundingModeDefault()))
}

// Floor rounds toward negative infinity.
func (x Decimal64) Floor() Decimal64 { return x.RoundToIntegral(Downward) }

// Ceil rounds toward positive infinity.
func (x Decimal64) Ceil() Decimal64 { return x.RoundToIntegral(Upward) }

// Trunc rounds toward zero.
func (x Decimal64) Trunc() Decimal64 { return x.RoundToIntegral(TowardZero) }

// Round rounds to the nearest integer, ties away from zero.
func (x Decimal64) Round() Decimal64 { return x.RoundToIntegral(NearestFromZero) }

// RoundEven rounds to the nearest integer, ties to even.
func (x Decimal64) RoundEven() Decimal64 { return x.RoundToIntegral(NearestEven) }

// RoundToIntegral rounds x to an integral value with the given mode.
func (x Decimal64) RoundToIntegral(mode RoundingMode) Decimal64 {
	return pack64(eng64.integral(x.unpack(), mode))
}

// Scalbn returns x * 10^n.
func (x Decimal64) Scalbn(n int) Decimal64 {
	return x.Scalbln(int64(n))
}

// Scalbln returns x * 10^n.
func (x Decimal64) Scalbln(n int64) Decimal64 {
	return pack64(eng64.scalbn(x.unpack(), n, RoundingModeDefault()))
}

// Frexp10 returns a 16 digit significand and exponent with
// x = ±sig * 10^exp. Zero gives (0, 0); NaN and Inf give
// (math.MaxUint64, 0).
func (x Decimal64) Frexp10() (sig uint64, exp int) {
	c, e := eng64.frexp10(x.unpack(), eng64.num(math.MaxUint64))

	return c.Uint64(), e
}

// Ilogb returns the exponent of the leading digit of x.
func (x Decimal64) Ilogb() int {
	return eng64.ilogb(x.unpack())
}

// Logb returns Ilogb as a decimal.
func (x Decimal64) Logb() Decimal64 {
	return pack64(eng64.logb(x.unpack(), RoundingModeDefault()))
}

// Int64 truncates x toward zero. NaN fails with ErrInvalid; infinities and
// values out of range fail with ErrRange.
func (x Decimal64) Int64() (int64, error) {
	return x.unpack().toInt64(math.MinInt64, math.MaxInt64)
}

// Int32 is Int64 for the int32 range.
func (x Decimal64) Int32() (int32, error) {
	v, err := x.unpack().toInt64(math.MinInt32, math.MaxInt32)

	return int32(v), err
}

// Uint64 truncates x toward zero. Negative values fail with ErrRange.
func (x Decimal64) Uint64() (uint64, error) {
	return x.unpack().toUint64()
}

// Float64 returns the float64 nearest to x.
func (x Decimal64) Float64() float64 {
	return x.unpack().toFloat(64)
}

// Float32 returns the float32 nearest to x.
func (x Decimal64) Float32() float32 {
	return float32(x.unpack().toFloat(32))
}

// To32 narrows x to a Decimal32, rounding with the default mode.
func (x Decimal64) To32() Decimal32 {
	return pack32(convert(eng32, x.unpack(), RoundingModeDefault()))
}

// To128 widens x to a Decimal128. The conversion is exact.
func (x Decimal64) To128() Decimal128 {
	return pack128(convert(eng128, x.unpack(), RoundingModeDefault()))
}
