package integer

import (
	"github.com/holiman/uint256"
)

// U256 is a 256 bit coefficient backed by uint256. Limbs are little endian.
type U256 uint256.Int

var pow10U256 = func() (tab [78]uint256.Int) {
	tab[0].SetUint64(1)
	ten := uint256.NewInt(10)

	for i := 1; i < len(tab); i++ {
		tab[i].Mul(&tab[i-1], ten)
	}

	return tab
}()

// DigitsU256 returns the number of decimal digits in x.
func DigitsU256(x *uint256.Int) int {
	if x.IsUint64() {
		return DigitsU64(x.Uint64())
	}

	d := 20
	for d < len(pow10U256) && !x.Lt(&pow10U256[d]) {
		d++
	}

	return d
}

func (U256) From64(v uint64) U256 { return U256{v} }

func (U256) FromWords(hi, lo uint64) U256 { return U256{lo, hi} }

func (x U256) Words() (hi, lo uint64) { return x[1], x[0] }

func (x U256) Uint64() uint64 { return x[0] }

func (U256) Pow10(n int) U256 { return U256(pow10U256[n]) }

func (x U256) Add(y U256) U256 {
	var z uint256.Int
	a, b := uint256.Int(x), uint256.Int(y)

	return U256(*z.Add(&a, &b))
}

func (x U256) Sub(y U256) U256 {
	var z uint256.Int
	a, b := uint256.Int(x), uint256.Int(y)

	return U256(*z.Sub(&a, &b))
}

func (x U256) Mul(y U256) U256 {
	var z uint256.Int
	a, b := uint256.Int(x), uint256.Int(y)

	return U256(*z.Mul(&a, &b))
}

func (x U256) QuoRem(y U256) (q, r U256) {
	var zq, zr uint256.Int
	a, b := uint256.Int(x), uint256.Int(y)

	zq.DivMod(&a, &b, &zr)

	return U256(zq), U256(zr)
}

func (x U256) Cmp(y U256) int {
	a, b := uint256.Int(x), uint256.Int(y)

	return a.Cmp(&b)
}

func (x U256) IsZero() bool {
	a := uint256.Int(x)

	return a.IsZero()
}

func (x U256) Digits() int {
	a := uint256.Int(x)

	return DigitsU256(&a)
}

func (U256) MaxDigits() int { return 77 }
