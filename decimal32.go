package decimal

import (
	"math"

	"github.com/calebcase/decimal/integer"
)

// Decimal32 is an IEEE 754 decimal32 value in the binary integer decimal
// encoding: 7 digits of precision and exponents from -101 to 90.
//
// The zero value is positive zero.
type Decimal32 struct {
	bits uint32
}

const maxSig32 = 9999999

// Decimal32FromBits reinterprets a raw bit pattern. Every pattern is
// accepted.
func Decimal32FromBits(bits uint32) Decimal32 {
	return Decimal32{bits: bits}
}

// Bits returns the raw bit pattern.
func (x Decimal32) Bits() uint32 {
	return x.bits
}

// NewDecimal32 returns coeff * 10^exp rounded with the default mode.
func NewDecimal32(coeff int64, exp int) Decimal32 {
	return pack32(fromInt64(eng32, coeff, exp, RoundingModeDefault()))
}

// NewDecimal32Sign returns ±coeff * 10^exp rounded with the default mode.
func NewDecimal32Sign(coeff uint64, exp int, neg bool) Decimal32 {
	return pack32(eng32.finish(neg, integer.U64(coeff), exp, false, RoundingModeDefault()))
}

// NewDecimal32FromFloat returns the decimal closest to the shortest decimal
// form of f.
func NewDecimal32FromFloat(f float64) Decimal32 {
	return pack32(fromFloat(eng32, f, 64, RoundingModeDefault()))
}

// Inf32 returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf32(sign int) Decimal32 {
	return pack32(eng32.inf(sign < 0))
}

// NaN32 returns a quiet NaN.
func NaN32() Decimal32 {
	return pack32(eng32.nan())
}

// SNaN32 returns a signaling NaN.
func SNaN32() Decimal32 {
	return pack32(eng32.snan())
}

func (x Decimal32) unpack() components[integer.U64] {
	f := format32.layout.decode(uint64(x.bits))

	c := components[integer.U64]{
		kind:  f.kind,
		neg:   f.neg,
		coeff: integer.U64(f.sig),
	}

	if f.kind == finite {
		c.exp = f.biased - format32.bias

		if f.sig > maxSig32 {
			c.coeff = 0
		}
	}

	return c
}

func pack32(c components[integer.U64]) Decimal32 {
	f := fields{
		kind: c.kind,
		neg:  c.neg,
		sig:  uint64(c.coeff),
	}

	if c.kind == finite {
		f.biased = c.exp + format32.bias
	}

	return Decimal32{bits: uint32(format32.layout.encode(f))}
}

// String returns the debug form, for example 1234568e2 or -Inf.
func (x Decimal32) String() string {
	return x.unpack().String()
}

// Signbit reports whether the sign bit is set.
func (x Decimal32) Signbit() bool {
	return x.bits&uint32(format32.layout.signMask) != 0
}

// IsNaN reports whether x is a quiet or signaling NaN.
func (x Decimal32) IsNaN() bool {
	return x.unpack().kind.isNaN()
}

// IsSignaling reports whether x is a signaling NaN.
func (x Decimal32) IsSignaling() bool {
	return x.unpack().kind == signalingNaN
}

// IsInf reports whether x is an infinity.
func (x Decimal32) IsInf() bool {
	return x.unpack().kind == infinite
}

// IsFinite reports whether x is neither infinite nor NaN.
func (x Decimal32) IsFinite() bool {
	return x.unpack().kind == finite
}

// IsZero reports whether x is a zero of either sign.
func (x Decimal32) IsZero() bool {
	return x.unpack().isZero()
}

// IsNormal reports whether x is finite, nonzero and not subnormal.
func (x Decimal32) IsNormal() bool {
	return eng32.isNormal(x.unpack())
}

// Class returns the category of x.
func (x Decimal32) Class() Class {
	return eng32.classify(x.unpack())
}

// Add returns x + y.
func (x Decimal32) Add(y Decimal32) Decimal32 {
	return pack32(eng32.add(x.unpack(), y.unpack(), false, RoundingModeDefault()))
}

// Sub returns x - y.
func (x Decimal32) Sub(y Decimal32) Decimal32 {
	return pack32(eng32.add(x.unpack(), y.unpack(), true, RoundingModeDefault()))
}

// Mul returns x * y.
func (x Decimal32) Mul(y Decimal32) Decimal32 {
	return pack32(eng32.mul(x.unpack(), y.unpack(), RoundingModeDefault()))
}

// Quo returns x / y.
func (x Decimal32) Quo(y Decimal32) Decimal32 {
	return pack32(eng32.quo(x.unpack(), y.unpack(), RoundingModeDefault()))
}

// Rem returns the remainder of x / y truncated toward zero, like fmod.
func (x Decimal32) Rem(y Decimal32) Decimal32 {
	return pack32(eng32.rem(x.unpack(), y.unpack(), RoundingModeDefault()))
}

// FMA returns x * y + z rounded once.
func (x Decimal32) FMA(y, z Decimal32) Decimal32 {
	return pack32(fma(eng32, fma32, x.unpack(), y.unpack(), z.unpack(), RoundingModeDefault()))
}

// Inc returns x + 1.
func (x Decimal32) Inc() Decimal32 {
	return x.Add(Decimal32FromBits(one32))
}

// Dec returns x - 1.
func (x Decimal32) Dec() Decimal32 {
	return x.Sub(Decimal32FromBits(one32))
}

// 1e0
const one32 = 101<<23 | 1

// Neg returns x with its sign flipped.
func (x Decimal32) Neg() Decimal32 {
	return Decimal32{bits: x.bits ^ uint32(format32.layout.signMask)}
}

// Abs returns x with its sign cleared.
func (x Decimal32) Abs() Decimal32 {
	return Decimal32{bits: x.bits &^ uint32(format32.layout.signMask)}
}

// CopySign returns x with the sign of y.
func (x Decimal32) CopySign(y Decimal32) Decimal32 {
	if x.Signbit() == y.Signbit() {
		return x
	}

	return x.Neg()
}

// Compare orders x and y by value. Any NaN makes the result Unordered.
func (x Decimal32) Compare(y Decimal32) Ordering {
	return eng32.compare(x.unpack(), y.unpack())
}

// Equal reports whether x and y have the same value. Zeros of either sign
// are equal and NaN equals nothing.
func (x Decimal32) Equal(y Decimal32) bool { return x.Compare(y) == Equal }

// NotEqual is the negation of Equal; it is true when either side is NaN.
func (x Decimal32) NotEqual(y Decimal32) bool { return x.Compare(y) != Equal }

func (x Decimal32) Less(y Decimal32) bool { return x.Compare(y) == Less }

func (x Decimal32) LessEqual(y Decimal32) bool {
	o := x.Compare(y)

	return o == Less || o == Equal
}

func (x Decimal32) Greater(y Decimal32) bool { return x.Compare(y) == Greater }

func (x Decimal32) GreaterEqual(y Decimal32) bool {
	o := x.Compare(y)

	return o == Greater || o == Equal
}

// Min returns the smaller of x and y. A single NaN operand is ignored.
func (x Decimal32) Min(y Decimal32) Decimal32 {
	return pack32(eng32.minMax(x.unpack(), y.unpack(), false))
}

// Max returns the larger of x and y. A single NaN operand is ignored.
func (x Decimal32) Max(y Decimal32) Decimal32 {
	return pack32(eng32.minMax(x.unpack(), y.unpack(), true))
}

// Remainder returns the IEEE remainder x - n*y where n is x/y rounded to
// nearest, ties to even.
func (x Decimal32) Remainder(y Decimal32) Decimal32 {
	r, _ := eng32.remquo(x.unpack(), y.unpack(), RoundingModeDefault())

	return pack32(r)
}

// Remquo is Remainder that also returns the low three bits of n with the
// sign of x/y.
func (x Decimal32) Remquo(y Decimal32) (Decimal32, int) {
	r, quo := eng32.remquo(x.unpack(), y.unpack(), RoundingModeDefault())

	return pack32(r), quo
}

// Modf returns the integral part of x and the fraction, both with the sign
// of x.
func (x Decimal32) Modf() (ipart, frac Decimal32) {
	i, f := eng32.modf(x.unpack(), RoundingModeDefault())

	return pack32(i), pack32(f)
}

// Dim returns x - y when x > y and +0 otherwise.
func (x Decimal32) Dim(y Decimal32) Decimal32 {
	return pack32(eng32.dim(x.unpack(), y.unpack(), RoundingModeDefault()))
}

// NextUp returns the least Decimal32 greater than x.
func (x Decimal32) NextUp() Decimal32 {
	return pack32(eng32.nextUp(x.unpack()))
}

// NextDown returns the greatest Decimal32 less than x.
func (x Decimal32) NextDown() Decimal32 {
	return pack32(eng32.nextDown(x.unpack()))
}

// Nextafter returns the next representable value after x toward y. If x
// equals y it returns y.
func (x Decimal32) Nextafter(y Decimal32) Decimal32 {
	return pack32(eng32.nextAfter(x.unpack(), y.unpack()))
}

// SameQuantum reports whether x and y share an exponent, or are both NaN,
// or are both infinite.
func (x Decimal32) SameQuantum(y Decimal32) bool {
	return sameQuantum(x.unpack(), y.unpack())
}

// QuantExp returns the unbiased exponent of x, or math.MinInt32 when x is
// not finite.
func (x Decimal32) QuantExp() int {
	return quantExp(x.unpack())
}

// Quantize returns x rounded to the exponent of y.
func (x Decimal32) Quantize(y Decimal32) Decimal32 {
	return pack32(eng32.quantize(x.unpack(), y.unpack(), RoundingModeDefault()))
}

// Floor rounds toward negative infinity.
func (x Decimal32) Floor() Decimal32 { return x.RoundToIntegral(Downward) }

// Ceil rounds toward positive infinity.
func (x Decimal32) Ceil() Decimal32 { return x.RoundToIntegral(Upward) }

// Trunc rounds toward zero.
func (x Decimal32) Trunc() Decimal32 { return x.RoundToIntegral(TowardZero) }

// Round rounds to the nearest integer, ties away from zero.
func (x Decimal32) Round() Decimal32 { return x.RoundToIntegral(NearestFromZero) }

// RoundEven rounds to the nearest integer, ties to even.
func (x Decimal32) RoundEven() Decimal32 { return x.RoundToIntegral(NearestEven) }

// RoundToIntegral rounds x to an integral value with the given mode.
func (x Decimal32) RoundToIntegral(mode RoundingMode) Decimal32 {
	return pack32(eng32.integral(x.unpack(), mode))
}

// Scalbn returns x * 10^n.
func (x Decimal32) Scalbn(n int) Decimal32 {
	return x.Scalbln(int64(n))
}

// Scalbln returns x * 10^n.
func (x Decimal32) Scalbln(n int64) Decimal32 {
	return pack32(eng32.scalbn(x.unpack(), n, RoundingModeDefault()))
}

// Frexp10 returns a 7 digit significand and exponent with
// x = ±sig * 10^exp. Zero gives (0, 0); NaN and Inf give
// (math.MaxUint32, 0).
func (x Decimal32) Frexp10() (sig uint32, exp int) {
	c, e := eng32.frexp10(x.unpack(), integer.U64(math.MaxUint32))

	return uint32(c), e
}

// Ilogb returns the exponent of the leading digit of x.
func (x Decimal32) Ilogb() int {
	return eng32.ilogb(x.unpack())
}

// Logb returns Ilogb as a decimal.
func (x Decimal32) Logb() Decimal32 {
	return pack32(eng32.logb(x.unpack(), RoundingModeDefault()))
}

// Int64 truncates x toward zero. NaN fails with ErrInvalid; infinities and
// values out of range fail with ErrRange.
func (x Decimal32) Int64() (int64, error) {
	return x.unpack().toInt64(math.MinInt64, math.MaxInt64)
}

// Int32 is Int64 for the int32 range.
func (x Decimal32) Int32() (int32, error) {
	v, err := x.unpack().toInt64(math.MinInt32, math.MaxInt32)

	return int32(v), err
}

// Uint64 truncates x toward zero. Negative values fail with ErrRange.
func (x Decimal32) Uint64() (uint64, error) {
	return x.unpack().toUint64()
}

// Float64 returns the float64 nearest to x.
func (x Decimal32) Float64() float64 {
	return x.unpack().toFloat(64)
}

// Float32 returns the float32 nearest to x.
func (x Decimal32) Float32() float32 {
	return float32(x.unpack().toFloat(32))
}

// To64 widens x to a Decimal64. The conversion is exact.
func (x Decimal32) To64() Decimal64 {
	return pack64(convert(eng64, x.unpack(), RoundingModeDefault()))
}

// To128 widens x to a Decimal128. The conversion is exact.
func (x Decimal32) To128() Decimal128 {
	return pack128(convert(eng128, x.unpack(), RoundingModeDefault()))
}
