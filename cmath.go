package decimal

import (
	"github.com/calebcase/decimal/integer"
)

// modScaled returns (c * 10^k) mod m. The scaled dividend never exists in
// full: the remainder is reduced after every step that fits in T.
func (e engine[T]) modScaled(c T, k int, m T) T {
	_, r := c.QuoRem(m)

	step := r.MaxDigits() - m.Digits()
	if step > 64 {
		step = 64
	}

	for ; k > 0; k -= step {
		s := k
		if s > step {
			s = step
		}

		_, r = integer.MulPow10(r, s).QuoRem(m)
	}

	return r
}

// remquo is the IEEE remainder x - n*y where n is x/y rounded to nearest,
// ties to even. quo carries the low three bits of |n| with the sign of x/y.
func (e engine[T]) remquo(a, b components[T], mode RoundingMode) (r components[T], quo int) {
	if nan, ok := e.propagate(a, b); ok {
		return nan, 0
	}

	switch {
	case a.kind == infinite:
		return e.nan(), 0
	case b.kind == infinite:
		return a, 0
	case b.coeff.IsZero():
		return e.nan(), 0
	case a.coeff.IsZero():
		return a, 0
	}

	var y, c T
	var n uint64
	var exp int

	if a.exp >= b.exp {
		// Working modulo 8y keeps the low bits of n.
		y = b.coeff
		c8 := e.modScaled(a.coeff, a.exp-b.exp, y.Mul(e.num(8)))

		var q T
		q, c = c8.QuoRem(y)
		n = q.Uint64()
		exp = b.exp
	} else {
		k := b.exp - a.exp
		if b.coeff.Digits()-1+k > a.coeff.Digits() {
			// |y| > 10|x| so n is zero.
			return a, 0
		}

		y = integer.MulPow10(b.coeff, k)

		var q T
		q, c = a.coeff.QuoRem(y)
		n = q.Uint64()
		exp = a.exp
	}

	neg := a.neg
	if h := c.Add(c).Cmp(y); h > 0 || (h == 0 && n&1 == 1) {
		n++
		c = y.Sub(c)
		neg = !neg
	}

	quo = int(n & 7)
	if a.neg != b.neg {
		quo = -quo
	}

	r = e.finish(neg, c, exp, false, mode)
	if r.isZero() {
		r.neg = a.neg
	}

	return r, quo
}

// modf splits a into its integral part and the fraction, both with the sign
// of a.
func (e engine[T]) modf(a components[T], mode RoundingMode) (ipart, frac components[T]) {
	switch {
	case a.kind.isNaN():
		return a, a
	case a.kind == infinite:
		return a, e.zero(a.neg)
	}

	ipart = e.integral(a, TowardZero)
	if ipart.isZero() {
		return ipart, a
	}

	frac = e.add(a, ipart, true, mode)
	if frac.isZero() {
		frac.neg = a.neg
	}

	return ipart, frac
}

// dim is the positive difference: a - b when a > b, otherwise +0.
func (e engine[T]) dim(a, b components[T], mode RoundingMode) components[T] {
	if r, ok := e.propagate(a, b); ok {
		return r
	}

	if e.compare(a, b) != Greater {
		return e.zero(false)
	}

	return e.add(a, b, true, mode)
}

// largest returns the largest finite magnitude with the given sign.
func (e engine[T]) largest(neg bool) components[T] {
	p := e.f.precision
	c := e.num(1).Pow10(p).Sub(e.num(1))

	return components[T]{kind: finite, neg: neg, exp: e.f.maxBiased - e.f.bias, coeff: c}
}

// nextUp returns the least value that compares greater than a.
func (e engine[T]) nextUp(a components[T]) components[T] {
	switch {
	case a.kind.isNaN():
		return a
	case a.kind == infinite:
		if a.neg {
			return e.largest(true)
		}

		return a
	case a.coeff.IsZero():
		return components[T]{kind: finite, exp: -e.f.bias, coeff: e.num(1)}
	}

	p := e.f.precision
	etiny := -e.f.bias

	// Scale to the finest exponent that still has room for the digits.
	c, exp := a.coeff, a.exp
	shift := p - c.Digits()
	if lim := exp - etiny; shift > lim {
		shift = lim
	}
	if shift > 0 {
		c, exp = integer.MulPow10(c, shift), exp-shift
	}

	one := e.num(1)

	if !a.neg {
		c = c.Add(one)
		if c.Digits() > p {
			c, exp = c.Pow10(p-1), exp+1
			if exp+e.f.bias > e.f.maxBiased {
				return e.inf(false)
			}
		}

		return components[T]{kind: finite, exp: exp, coeff: c}
	}

	if exp > etiny && c.Cmp(c.Pow10(p-1)) == 0 {
		// The next magnitude down has a finer exponent.
		return components[T]{kind: finite, neg: true, exp: exp - 1, coeff: c.Pow10(p).Sub(one)}
	}

	c = c.Sub(one)
	if c.IsZero() {
		return e.zero(true)
	}

	return components[T]{kind: finite, neg: true, exp: exp, coeff: c}
}

// nextDown returns the greatest value that compares less than a.
func (e engine[T]) nextDown(a components[T]) components[T] {
	if a.kind.isNaN() {
		return a
	}

	a.neg = !a.neg
	r := e.nextUp(a)
	r.neg = !r.neg

	return r
}

// nextAfter steps a one representable value toward b. Equal operands
// return b.
func (e engine[T]) nextAfter(a, b components[T]) components[T] {
	if r, ok := e.propagate(a, b); ok {
		return r
	}

	switch e.compare(a, b) {
	case Less:
		return e.nextUp(a)
	case Greater:
		return e.nextDown(a)
	}

	return b
}
