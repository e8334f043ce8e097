package decimal

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	num "github.com/shabbyrobe/go-num"

	"github.com/calebcase/decimal/integer"
)

// String returns the debug form: [-]<coefficient>e<exponent>, NaN, sNaN,
// +Inf or -Inf.
func (c components[T]) String() string {
	sign := ""
	if c.neg {
		sign = "-"
	}

	switch c.kind {
	case infinite:
		if c.neg {
			return "-Inf"
		}

		return "+Inf"
	case quietNaN:
		return sign + "NaN"
	case signalingNaN:
		return sign + "sNaN"
	}

	hi, lo := c.coeff.Words()

	return sign + num.U128FromRaw(hi, lo).String() + "e" + strconv.Itoa(c.exp)
}

// bigInt returns the integer part of a finite value, truncated toward zero.
func (c components[T]) bigInt() *big.Int {
	hi, lo := c.coeff.Words()

	v := new(big.Int).SetUint64(hi)
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(lo))

	switch {
	case v.Sign() == 0:
		return v
	case c.exp > 0:
		v.Mul(v, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(c.exp)), nil))
	case c.exp < 0 && -c.exp > 40:
		v.SetUint64(0)
	case c.exp < 0:
		v.Quo(v, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-c.exp)), nil))
	}

	if c.neg {
		v.Neg(v)
	}

	return v
}

// checkIntegral rejects NaN and Inf and bounds the exponent so bigInt
// stays small.
func (c components[T]) checkIntegral() (err error) {
	switch {
	case c.kind.isNaN():
		return ErrInvalid.New("%s to integer", c)
	case c.kind == infinite:
		return ErrRange.New("%s to integer", c)
	case c.exp > 40 && !c.coeff.IsZero():
		return ErrRange.New("%s to integer", c)
	}

	return nil
}

func (c components[T]) toInt64(lo, hi int64) (v int64, err error) {
	err = c.checkIntegral()
	if err != nil {
		return 0, err
	}

	b := c.bigInt()
	if b.Cmp(big.NewInt(lo)) < 0 || b.Cmp(big.NewInt(hi)) > 0 {
		return 0, ErrRange.New("%s to integer in [%d, %d]", c, lo, hi)
	}

	return b.Int64(), nil
}

func (c components[T]) toUint64() (v uint64, err error) {
	err = c.checkIntegral()
	if err != nil {
		return 0, err
	}

	b := c.bigInt()
	if b.Sign() < 0 || !b.IsUint64() {
		return 0, ErrRange.New("%s to uint64", c)
	}

	return b.Uint64(), nil
}

// toFloat converts with correct rounding by handing the exact digits to
// strconv.
func (c components[T]) toFloat(bitSize int) float64 {
	switch c.kind {
	case quietNaN, signalingNaN:
		return math.NaN()
	case infinite:
		if c.neg {
			return math.Inf(-1)
		}

		return math.Inf(1)
	}

	// Out of range inputs come back as ±Inf or ±0 which is what we want.
	f, _ := strconv.ParseFloat(c.String(), bitSize)

	return f
}

// fromFloat takes the shortest digits that round trip f and rounds them to
// the format.
func fromFloat[T integer.Uint[T]](e engine[T], f float64, bitSize int, mode RoundingMode) components[T] {
	switch {
	case math.IsNaN(f):
		return e.nan()
	case math.IsInf(f, 0):
		return e.inf(f < 0)
	}

	// d.ddddde±xx
	s := strconv.FormatFloat(f, 'e', -1, bitSize)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	mant, exps, _ := strings.Cut(s, "e")
	exp, _ := strconv.Atoi(exps)

	if whole, frac, ok := strings.Cut(mant, "."); ok {
		mant = whole + frac
		exp -= len(frac)
	}

	coeff, _ := strconv.ParseUint(mant, 10, 64)

	return e.finish(neg, e.num(coeff), exp, false, mode)
}

// convert re-rounds c into the format of to. The rounding happens in the
// source coefficient type so a narrowing conversion never truncates a
// coefficient before it is rounded.
func convert[T integer.Uint[T], S integer.Uint[S]](to engine[T], c components[S], mode RoundingMode) components[T] {
	if c.kind != finite {
		return narrow(to, c)
	}

	via := engine[S]{to.f}

	return narrow(to, via.finish(c.neg, c.coeff, c.exp, false, mode))
}

// frexp10 returns the coefficient scaled to exactly precision digits and
// the matching exponent. Zero returns (0, 0); NaN and Inf return the all
// ones coefficient and 0.
func (e engine[T]) frexp10(c components[T], ones T) (T, int) {
	switch {
	case c.kind != finite:
		return ones, 0
	case c.coeff.IsZero():
		return c.coeff, 0
	}

	return e.maximize(c.coeff, c.exp)
}

// ilogb returns the exponent of the leading digit. It follows math.Ilogb:
// zero gives math.MinInt32 and NaN or Inf give math.MaxInt32.
func (e engine[T]) ilogb(c components[T]) int {
	switch {
	case c.kind != finite:
		return math.MaxInt32
	case c.coeff.IsZero():
		return math.MinInt32
	}

	return c.coeff.Digits() - 1 + c.exp
}

// logb is ilogb as a decimal: -Inf for zero, +Inf for Inf, NaN for NaN.
func (e engine[T]) logb(c components[T], mode RoundingMode) components[T] {
	switch {
	case c.kind.isNaN():
		return c
	case c.kind == infinite:
		return e.inf(false)
	case c.coeff.IsZero():
		return e.inf(true)
	}

	v := e.ilogb(c)
	neg := v < 0
	if neg {
		v = -v
	}

	return e.finish(neg, e.num(uint64(v)), 0, false, mode)
}

// scalbn multiplies by 10^n.
func (e engine[T]) scalbn(c components[T], n int64, mode RoundingMode) components[T] {
	if c.kind != finite || c.coeff.IsZero() {
		return c
	}

	return e.finish(c.neg, c.coeff, c.exp+int(clampExp(n)), false, mode)
}

// fromInt64 builds a value from a signed coefficient.
func fromInt64[T integer.Uint[T]](e engine[T], coeff int64, exp int, mode RoundingMode) components[T] {
	neg := coeff < 0

	mag := uint64(coeff)
	if neg {
		mag = -mag
	}

	return e.finish(neg, e.num(mag), exp, false, mode)
}

// minMax returns the smaller (or larger) operand, ignoring a single NaN like
// fmin and fmax.
func (e engine[T]) minMax(a, b components[T], larger bool) components[T] {
	switch {
	case a.kind.isNaN() && b.kind.isNaN():
		r, _ := e.propagate(a, b)

		return r
	case a.kind.isNaN():
		return b
	case b.kind.isNaN():
		return a
	}

	o := e.compare(a, b)
	if o == Equal && a.isZero() {
		// -0 is the smaller zero.
		if a.neg == larger {
			return b
		}

		return a
	}

	if (o == Less) == larger {
		return b
	}

	return a
}
