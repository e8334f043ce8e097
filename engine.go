package decimal

import (
	"go.uber.org/zap"

	"github.com/calebcase/decimal/integer"
)

type kind uint8

const (
	finite kind = iota
	infinite
	quietNaN
	signalingNaN
)

func (k kind) isNaN() bool { return k >= quietNaN }

// components is the decoded form of a value: coeff * 10^exp with a sign.
// For NaN the coefficient holds the payload.
type components[T integer.Uint[T]] struct {
	kind  kind
	neg   bool
	exp   int
	coeff T
}

func (c components[T]) isZero() bool {
	return c.kind == finite && c.coeff.IsZero()
}

// engine implements construction and arithmetic for one format over one
// coefficient type.
type engine[T integer.Uint[T]] struct {
	f *format
}

func (e engine[T]) num(v uint64) T {
	var z T

	return z.From64(v)
}

func (e engine[T]) nan() components[T] {
	return components[T]{kind: quietNaN, coeff: e.num(0)}
}

func (e engine[T]) snan() components[T] {
	return components[T]{kind: signalingNaN, coeff: e.num(0)}
}

func (e engine[T]) inf(neg bool) components[T] {
	return components[T]{kind: infinite, neg: neg, coeff: e.num(0)}
}

// expLimit is far beyond every exponent range. Exponents past it round the
// same way as at it and keep the exponent arithmetic inside int.
const expLimit = 1 << 24

func clampExp[I int | int64](exp I) I {
	switch {
	case exp > expLimit:
		return expLimit
	case exp < -expLimit:
		return -expLimit
	}

	return exp
}

func (e engine[T]) zero(neg bool) components[T] {
	return components[T]{kind: finite, neg: neg, exp: -e.f.bias, coeff: e.num(0)}
}

// finish rounds an exact coefficient to the format and places it in the
// exponent range. sticky means nonzero digits below c were already dropped;
// callers only set it when c carries more than precision digits so the
// rounding position is above the lost digits.
func (e engine[T]) finish(neg bool, c T, exp int, sticky bool, mode RoundingMode) components[T] {
	exp = clampExp(exp)

	p := e.f.precision
	etiny := -e.f.bias
	d := c.Digits()

	drop := d - p
	if under := etiny - exp; under > drop {
		drop = under

		if ce := Logger().Check(zap.DebugLevel, "underflow"); ce != nil {
			ce.Write(
				zap.String("format", e.f.name),
				zap.Int("exp", exp),
				zap.Int("drop", drop),
			)
		}
	}

	if drop > 0 {
		q, rem := integer.DivPow10(c, drop, sticky)
		if mode.roundUp(neg, integer.Odd(q), rem) {
			q = q.Add(e.num(1))
		}

		if !rem.Zero {
			if ce := Logger().Check(zap.DebugLevel, "inexact"); ce != nil {
				ce.Write(
					zap.String("format", e.f.name),
					zap.Stringer("mode", mode),
					zap.Int("digits", d),
					zap.Int("drop", drop),
					zap.Int("half", rem.Half),
				)
			}
		}

		c, exp = q, exp+drop

		// A carry out of 99..9 leaves exactly 10^p.
		if c.Digits() > p {
			c, _ = c.QuoRem(e.num(10))
			exp++
		}
	}

	if c.IsZero() {
		return e.zero(neg)
	}

	if biased := exp + e.f.bias; biased > e.f.maxBiased {
		// Clamp by moving digits into the coefficient when they fit.
		shift := biased - e.f.maxBiased
		if c.Digits()+shift > p {
			if ce := Logger().Check(zap.DebugLevel, "overflow"); ce != nil {
				ce.Write(
					zap.String("format", e.f.name),
					zap.Int("exp", exp),
					zap.Int("digits", c.Digits()),
				)
			}

			return e.inf(neg)
		}

		c = integer.MulPow10(c, shift)
		exp -= shift
	}

	return components[T]{kind: finite, neg: neg, exp: exp, coeff: c}
}

// maximize scales a finite nonzero coefficient up to exactly precision
// digits.
func (e engine[T]) maximize(c T, exp int) (T, int) {
	if c.IsZero() {
		return c, exp
	}

	shift := e.f.precision - c.Digits()
	if shift <= 0 {
		return c, exp
	}

	return integer.MulPow10(c, shift), exp - shift
}

// strip removes trailing zeros from c while exp stays at or below limit.
func (e engine[T]) strip(c T, exp, limit int) (T, int) {
	if c.IsZero() {
		return c, exp
	}

	ten := e.num(10)
	for exp < limit {
		q, r := c.QuoRem(ten)
		if !r.IsZero() {
			break
		}

		c = q
		exp++
	}

	return c, exp
}

// propagate returns the NaN operand that wins: the first signaling NaN,
// otherwise the first quiet NaN.
func (e engine[T]) propagate(xs ...components[T]) (components[T], bool) {
	for _, x := range xs {
		if x.kind == signalingNaN {
			return x, true
		}
	}

	for _, x := range xs {
		if x.kind == quietNaN {
			return x, true
		}
	}

	return components[T]{}, false
}

func (e engine[T]) add(a, b components[T], sub bool, mode RoundingMode) components[T] {
	if r, ok := e.propagate(a, b); ok {
		return r
	}

	if sub {
		b.neg = !b.neg
	}

	switch {
	case a.kind == infinite && b.kind == infinite:
		if a.neg != b.neg {
			return e.nan()
		}

		return a
	case a.kind == infinite:
		return a
	case b.kind == infinite:
		return b
	}

	return e.addFinite(a, b, mode)
}

func (e engine[T]) addFinite(a, b components[T], mode RoundingMode) components[T] {
	if a.coeff.IsZero() && b.coeff.IsZero() {
		neg := a.neg && b.neg
		if mode == Downward {
			neg = a.neg || b.neg
		}

		return e.zero(neg)
	}

	if a.exp < b.exp {
		a, b = b, a
	}

	p := e.f.precision
	delta := a.exp - b.exp

	d := a.coeff.Digits()
	if db := b.coeff.Digits(); db > d {
		d = db
	}

	// Past limit the smaller operand no longer reaches the digits that
	// survive rounding and only its presence matters.
	limit := d + 1
	if limit <= p {
		limit = p + 1
	}

	ca, cb, exp := a.coeff, b.coeff, b.exp
	sticky := false

	switch {
	case delta <= limit:
		ca = integer.MulPow10(ca, delta)
	case a.coeff.IsZero():
		return e.finish(b.neg, b.coeff, b.exp, false, mode)
	case b.coeff.IsZero():
		c, exp := e.maximize(a.coeff, a.exp)

		return e.finish(a.neg, c, exp, false, mode)
	default:
		var rem integer.Remainder

		ca = integer.MulPow10(ca, limit)
		exp = a.exp - limit
		cb, rem = integer.DivPow10(cb, delta-limit, false)
		sticky = !rem.Zero
	}

	neg := a.neg
	var c T

	if a.neg == b.neg {
		c = ca.Add(cb)
	} else {
		// With sticky set ca is at least 10^limit and cb is far below it.
		switch ca.Cmp(cb) {
		case 1:
			c = ca.Sub(cb)
			if sticky {
				c = c.Sub(e.num(1))
			}
		case -1:
			c = cb.Sub(ca)
			neg = b.neg
		default:
			return e.zero(mode == Downward)
		}
	}

	return e.finish(neg, c, exp, sticky, mode)
}

func (e engine[T]) mul(a, b components[T], mode RoundingMode) components[T] {
	if r, ok := e.propagate(a, b); ok {
		return r
	}

	neg := a.neg != b.neg

	if a.kind == infinite || b.kind == infinite {
		if a.isZero() || b.isZero() {
			return e.nan()
		}

		return e.inf(neg)
	}

	r := e.finish(neg, a.coeff.Mul(b.coeff), a.exp+b.exp, false, mode)

	// A zero product is positive whatever the operand signs.
	if r.isZero() {
		r.neg = false
	}

	return r
}

func (e engine[T]) quo(a, b components[T], mode RoundingMode) components[T] {
	if r, ok := e.propagate(a, b); ok {
		return r
	}

	neg := a.neg != b.neg

	switch {
	case a.kind == infinite && b.kind == infinite:
		return e.nan()
	case a.kind == infinite:
		return e.inf(neg)
	case b.kind == infinite:
		return e.zero(neg)
	case b.coeff.IsZero():
		if a.coeff.IsZero() {
			return e.nan()
		}

		return e.inf(neg)
	case a.coeff.IsZero():
		return e.zero(neg)
	}

	p := e.f.precision

	// Scale the dividend so the quotient has at least p+1 digits.
	shift := p + 1 + b.coeff.Digits() - a.coeff.Digits()
	if shift < 0 {
		shift = 0
	}

	q, r := integer.MulPow10(a.coeff, shift).QuoRem(b.coeff)
	exp := a.exp - shift - b.exp

	sticky := !r.IsZero()
	if !sticky {
		q, exp = e.strip(q, exp, a.exp-b.exp)
	}

	return e.finish(neg, q, exp, sticky, mode)
}

// rem is the remainder of truncating division: the result has the sign of
// a and a magnitude below |b|.
func (e engine[T]) rem(a, b components[T], mode RoundingMode) components[T] {
	if r, ok := e.propagate(a, b); ok {
		return r
	}

	switch {
	case a.kind == infinite:
		return e.nan()
	case b.kind == infinite:
		return a
	case b.coeff.IsZero():
		return e.nan()
	case a.coeff.IsZero():
		return a
	}

	var c T
	var exp int

	if a.exp >= b.exp {
		c = e.modScaled(a.coeff, a.exp-b.exp, b.coeff)
		exp = b.exp
	} else {
		k := b.exp - a.exp
		if b.coeff.Digits()-1+k >= a.coeff.Digits() {
			return a
		}

		_, c = a.coeff.QuoRem(integer.MulPow10(b.coeff, k))
		exp = a.exp
	}

	return e.finish(a.neg, c, exp, false, mode)
}

// quantize returns a expressed with b's exponent.
func (e engine[T]) quantize(a, b components[T], mode RoundingMode) components[T] {
	if a.kind.isNaN() || b.kind.isNaN() {
		r, _ := e.propagate(a, b)
		r.kind = quietNaN

		return r
	}

	switch {
	case a.kind == infinite && b.kind == infinite:
		return a
	case a.kind == infinite || b.kind == infinite:
		return e.snan()
	}

	p := e.f.precision
	target := b.exp

	if a.exp >= target {
		k := a.exp - target
		if !a.coeff.IsZero() && a.coeff.Digits()+k > p {
			return e.nan()
		}

		c := integer.MulPow10(a.coeff, k)
		if c.IsZero() {
			return e.zero(a.neg)
		}

		return components[T]{kind: finite, neg: a.neg, exp: target, coeff: c}
	}

	q, rem := integer.DivPow10(a.coeff, target-a.exp, false)
	if mode.roundUp(a.neg, integer.Odd(q), rem) {
		q = q.Add(e.num(1))
	}

	if q.Digits() > p {
		return e.nan()
	}

	if q.IsZero() {
		return e.zero(a.neg)
	}

	return components[T]{kind: finite, neg: a.neg, exp: target, coeff: q}
}

// integral rounds a to an integer with the given mode.
func (e engine[T]) integral(a components[T], mode RoundingMode) components[T] {
	if a.kind != finite || a.exp >= 0 || a.coeff.IsZero() {
		return a
	}

	q, rem := integer.DivPow10(a.coeff, -a.exp, false)
	if mode.roundUp(a.neg, integer.Odd(q), rem) {
		q = q.Add(e.num(1))
	}

	return e.finish(a.neg, q, 0, false, mode)
}

// compare orders a and b by value.
func (e engine[T]) compare(a, b components[T]) Ordering {
	if a.kind.isNaN() || b.kind.isNaN() {
		return Unordered
	}

	sa, sb := e.signum(a), e.signum(b)
	if sa != sb || a.kind == infinite || b.kind == infinite || sa == 0 {
		return order(sa, sb)
	}

	ca, ea := e.maximize(a.coeff, a.exp)
	cb, eb := e.maximize(b.coeff, b.exp)

	m := Ordering(ca.Cmp(cb))
	if ea != eb {
		m = order(ea, eb)
	}

	if sa < 0 {
		m = -m
	}

	return m
}

// signum ranks a value: -2 for -Inf, -1 negative, 0 zero, 1 positive, 2
// for +Inf.
func (e engine[T]) signum(a components[T]) int {
	r := 1
	switch {
	case a.kind == infinite:
		r = 2
	case a.coeff.IsZero():
		return 0
	}

	if a.neg {
		r = -r
	}

	return r
}

func order(a, b int) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	}

	return Equal
}

// isNormal reports whether a finite nonzero value has its adjusted exponent
// at or above the smallest normal exponent.
func (e engine[T]) isNormal(a components[T]) bool {
	if a.kind != finite || a.coeff.IsZero() {
		return false
	}

	emin := e.f.precision - 1 - e.f.bias

	return a.coeff.Digits()-1+a.exp >= emin
}

// fma computes x*y + z with a single rounding using a wider engine w for
// the exact intermediate.
func fma[T integer.Uint[T], W integer.Uint[W]](e engine[T], w engine[W], x, y, z components[T], mode RoundingMode) components[T] {
	if r, ok := e.propagate(x, y, z); ok {
		return r
	}

	neg := x.neg != y.neg

	if x.kind == infinite || y.kind == infinite {
		if x.isZero() || y.isZero() {
			return e.nan()
		}

		if z.kind == infinite && z.neg != neg {
			return e.nan()
		}

		return e.inf(neg)
	}

	if z.kind == infinite {
		return z
	}

	product := components[W]{
		kind:  finite,
		neg:   neg,
		exp:   x.exp + y.exp,
		coeff: integer.Convert[W](x.coeff).Mul(integer.Convert[W](y.coeff)),
	}

	if product.coeff.IsZero() {
		product.neg = false
	}

	return narrow(e, w.addFinite(product, widen(w, z), mode))
}

func widen[T integer.Uint[T], W integer.Uint[W]](w engine[W], c components[T]) components[W] {
	return components[W]{
		kind:  c.kind,
		neg:   c.neg,
		exp:   c.exp,
		coeff: integer.Convert[W](c.coeff),
	}
}

func narrow[T integer.Uint[T], W integer.Uint[W]](e engine[T], c components[W]) components[T] {
	return components[T]{
		kind:  c.kind,
		neg:   c.neg,
		exp:   c.exp,
		coeff: integer.Convert[T](c.coeff),
	}
}
