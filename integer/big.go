package integer

import (
	"math/big"
	"sync"
)

// Big is an unbounded coefficient. It is only used where an exact result
// can outgrow every fixed width, such as a fused multiply-add in the
// widest format. A nil value is zero.
type Big struct {
	v *big.Int
}

var (
	bigPow10Mu sync.Mutex
	bigPow10   = []*big.Int{big.NewInt(1)}
	bigTen     = big.NewInt(10)
)

// NewBig returns x as a Big. x is copied.
func NewBig(x *big.Int) Big {
	return Big{v: new(big.Int).Set(x)}
}

// Int returns a copy of the value as a big.Int.
func (x Big) Int() *big.Int {
	return new(big.Int).Set(x.get())
}

func (x Big) get() *big.Int {
	if x.v == nil {
		return new(big.Int)
	}

	return x.v
}

func (Big) From64(v uint64) Big { return Big{v: new(big.Int).SetUint64(v)} }

func (Big) FromWords(hi, lo uint64) Big {
	v := new(big.Int).SetUint64(hi)
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(lo))

	return Big{v: v}
}

func (x Big) Words() (hi, lo uint64) {
	v := x.get()
	mask := new(big.Int).SetUint64(^uint64(0))

	lo = new(big.Int).And(v, mask).Uint64()
	hi = new(big.Int).And(new(big.Int).Rsh(v, 64), mask).Uint64()

	return hi, lo
}

func (x Big) Uint64() uint64 {
	_, lo := x.Words()

	return lo
}

func (Big) Pow10(n int) Big {
	bigPow10Mu.Lock()
	defer bigPow10Mu.Unlock()

	for len(bigPow10) <= n {
		last := bigPow10[len(bigPow10)-1]
		bigPow10 = append(bigPow10, new(big.Int).Mul(last, bigTen))
	}

	return Big{v: bigPow10[n]}
}

func (x Big) Add(y Big) Big { return Big{v: new(big.Int).Add(x.get(), y.get())} }

func (x Big) Sub(y Big) Big { return Big{v: new(big.Int).Sub(x.get(), y.get())} }

func (x Big) Mul(y Big) Big { return Big{v: new(big.Int).Mul(x.get(), y.get())} }

func (x Big) QuoRem(y Big) (q, r Big) {
	qv, rv := new(big.Int).QuoRem(x.get(), y.get(), new(big.Int))

	return Big{v: qv}, Big{v: rv}
}

func (x Big) Cmp(y Big) int { return x.get().Cmp(y.get()) }

func (x Big) IsZero() bool { return x.get().Sign() == 0 }

func (x Big) Digits() int {
	v := x.get()
	if v.Sign() == 0 {
		return 1
	}

	// Estimate from the bit length and correct by at most one.
	d := int(float64(v.BitLen()-1)*0.30102999566398120) + 1
	if v.CmpAbs(x.Pow10(d).v) >= 0 {
		d++
	}

	return d
}

// MaxDigits is effectively unbounded.
func (Big) MaxDigits() int { return 1 << 20 }
