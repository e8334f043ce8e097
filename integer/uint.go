package integer

// Uint is the capability set a decimal coefficient needs. Implementations
// are value types: every operation returns a new value and leaves the
// receiver untouched. Results are only defined while they fit in MaxDigits
// decimal digits; callers size their scratch type accordingly.
type Uint[T any] interface {
	// From64 returns v in the receiver's type. The receiver is only used to
	// pick the implementation and may be the zero value.
	From64(v uint64) T

	// FromWords returns hi<<64 | lo in the receiver's type.
	FromWords(hi, lo uint64) T

	// Words returns the low 128 bits.
	Words() (hi, lo uint64)

	// Uint64 returns the low 64 bits.
	Uint64() uint64

	// Pow10 returns 10^n. n must be in [0, MaxDigits].
	Pow10(n int) T

	Add(y T) T
	Sub(y T) T
	Mul(y T) T
	QuoRem(y T) (q, r T)
	Cmp(y T) int
	IsZero() bool

	// Digits returns the number of decimal digits. Zero has one digit.
	Digits() int

	// MaxDigits is the largest n such that every n digit number fits.
	MaxDigits() int
}

// Odd reports whether x is odd.
func Odd[T Uint[T]](x T) bool {
	return x.Uint64()&1 == 1
}

// MulPow10 returns x * 10^n.
func MulPow10[T Uint[T]](x T, n int) T {
	if n <= 0 || x.IsZero() {
		return x
	}

	for n > 0 {
		step := n
		if m := x.MaxDigits(); step > m {
			step = m
		}

		x = x.Mul(x.Pow10(step))
		n -= step
	}

	return x
}

// Remainder describes the digits discarded by DivPow10 relative to one unit
// in the last retained place.
type Remainder struct {
	// Half is -1, 0 or +1 as the discarded part is below, exactly at or
	// above one half.
	Half int

	// Zero is true when nothing but zeros was discarded.
	Zero bool
}

// DivPow10 returns x / 10^n along with a summary of the discarded digits.
// When sticky is set the caller has already dropped nonzero digits below
// x, which breaks exact ties and marks the remainder as nonzero.
func DivPow10[T Uint[T]](x T, n int, sticky bool) (q T, rem Remainder) {
	var zero T

	if n <= 0 {
		rem.Zero = !sticky
		rem.Half = -1

		return x, rem
	}

	if n > x.Digits() || n > x.MaxDigits() {
		// Everything goes and x is below 5*10^(n-1), so below half.
		rem.Zero = x.IsZero() && !sticky
		rem.Half = -1

		return zero.From64(0), rem
	}

	div := x.Pow10(n)
	q, r := x.QuoRem(div)

	rem.Zero = r.IsZero() && !sticky

	half := x.Pow10(n - 1).Mul(x.From64(5))
	rem.Half = r.Cmp(half)

	if rem.Half == 0 && sticky {
		rem.Half = 1
	}

	return q, rem
}

// TrailingZeros returns the number of trailing decimal zeros in x. Zero
// reports zero trailing zeros.
func TrailingZeros[T Uint[T]](x T) (n int) {
	if x.IsZero() {
		return 0
	}

	ten := x.From64(10)

	for {
		q, r := x.QuoRem(ten)
		if !r.IsZero() {
			return n
		}

		x = q
		n++
	}
}

// Convert moves x into another coefficient type. Only the low 128 bits
// survive, which covers every stored decimal significand.
func Convert[T Uint[T], S Uint[S]](x S) T {
	var zero T

	hi, lo := x.Words()

	return zero.FromWords(hi, lo)
}
