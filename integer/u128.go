package integer

import (
	num "github.com/shabbyrobe/go-num"
)

// U128 is a 128 bit coefficient backed by go-num.
type U128 num.U128

var pow10U128 = func() (tab [39]num.U128) {
	tab[0] = num.U128From64(1)
	ten := num.U128From64(10)

	for i := 1; i < len(tab); i++ {
		tab[i] = tab[i-1].Mul(ten)
	}

	return tab
}()

// Pow10U128 returns 10^n for n in [0, 38].
func Pow10U128(n int) num.U128 {
	return pow10U128[n]
}

// DigitsU128 returns the number of decimal digits in x.
func DigitsU128(x num.U128) int {
	if x.IsUint64() {
		return DigitsU64(x.AsUint64())
	}

	// Above 2^64 there are at least 20 digits.
	d := 20
	for d < len(pow10U128) && x.Cmp(pow10U128[d]) >= 0 {
		d++
	}

	return d
}

func (U128) From64(v uint64) U128 { return U128(num.U128From64(v)) }

func (U128) FromWords(hi, lo uint64) U128 { return U128(num.U128FromRaw(hi, lo)) }

func (x U128) Words() (hi, lo uint64) { return num.U128(x).Raw() }

func (x U128) Uint64() uint64 {
	_, lo := num.U128(x).Raw()

	return lo
}

func (U128) Pow10(n int) U128 { return U128(pow10U128[n]) }

func (x U128) Add(y U128) U128 { return U128(num.U128(x).Add(num.U128(y))) }

func (x U128) Sub(y U128) U128 { return U128(num.U128(x).Sub(num.U128(y))) }

func (x U128) Mul(y U128) U128 { return U128(num.U128(x).Mul(num.U128(y))) }

func (x U128) QuoRem(y U128) (q, r U128) {
	nq, nr := num.U128(x).QuoRem(num.U128(y))

	return U128(nq), U128(nr)
}

func (x U128) Cmp(y U128) int { return num.U128(x).Cmp(num.U128(y)) }

func (x U128) IsZero() bool { return num.U128(x).IsZero() }

func (x U128) Digits() int { return DigitsU128(num.U128(x)) }

func (U128) MaxDigits() int { return 38 }
