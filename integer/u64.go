package integer

import "math/bits"

// U64 is a native 64 bit coefficient.
type U64 uint64

var pow10U64 = [...]uint64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000,
	10000000000000000000,
}

// pow2Digits maps a bit length to the digit count of 2^length - 1.
var pow2Digits = [...]uint8{
	1, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 4, 5, 5,
	5, 6, 6, 6, 7, 7, 7, 7, 8, 8, 8, 9, 9, 9, 10, 10,
	10, 10, 11, 11, 11, 12, 12, 12, 13, 13, 13, 13, 14, 14, 14, 15,
	15, 15, 16, 16, 16, 16, 17, 17, 17, 18, 18, 18, 19, 19, 19, 19,
	20,
}

// Pow10U64 returns 10^n for n in [0, 19].
func Pow10U64(n int) uint64 {
	return pow10U64[n]
}

// DigitsU64 returns the number of decimal digits in x.
func DigitsU64(x uint64) int {
	d := int(pow2Digits[bits.Len64(x)])
	if d > 1 && x < pow10U64[d-1] {
		d--
	}

	return d
}

func (U64) From64(v uint64) U64 { return U64(v) }

func (U64) FromWords(_, lo uint64) U64 { return U64(lo) }

func (x U64) Words() (hi, lo uint64) { return 0, uint64(x) }

func (x U64) Uint64() uint64 { return uint64(x) }

func (U64) Pow10(n int) U64 { return U64(pow10U64[n]) }

func (x U64) Add(y U64) U64 { return x + y }

func (x U64) Sub(y U64) U64 { return x - y }

func (x U64) Mul(y U64) U64 { return x * y }

func (x U64) QuoRem(y U64) (q, r U64) { return x / y, x % y }

func (x U64) Cmp(y U64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}

	return 0
}

func (x U64) IsZero() bool { return x == 0 }

func (x U64) Digits() int { return DigitsU64(uint64(x)) }

func (U64) MaxDigits() int { return 19 }
