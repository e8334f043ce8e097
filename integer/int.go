package integer

import (
	"math/big"
)

// Int is a sign-magnitude integer. Value holds the big-endian magnitude.
type Int struct {
	Value    []byte
	Negative bool
}

// NewInt64 returns v as an Int.
func NewInt64(v int64) Int {
	i := big.NewInt(v)

	return Int{
		Value:    magnitude(i),
		Negative: v < 0,
	}
}

// NewWords returns the 128 bit magnitude hi<<64 | lo with the given sign.
func NewWords(hi, lo uint64, negative bool) Int {
	i := new(big.Int).SetUint64(hi)
	i.Lsh(i, 64)
	i.Or(i, new(big.Int).SetUint64(lo))

	return Int{
		Value:    magnitude(i),
		Negative: negative,
	}
}

func magnitude(i *big.Int) []byte {
	data := new(big.Int).Abs(i).Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data
}

// Big returns the signed value.
func (i Int) Big() *big.Int {
	v := new(big.Int).SetBytes(i.Value)
	if i.Negative {
		v.Neg(v)
	}

	return v
}

// Int64 returns the signed value if it fits.
func (i Int) Int64() (v int64, err error) {
	b := i.Big()
	if !b.IsInt64() {
		return 0, Error.New("out of range for int64: %s", b)
	}

	return b.Int64(), nil
}

// Words returns the magnitude as two 64 bit words if it fits in 128 bits.
func (i Int) Words() (hi, lo uint64, err error) {
	m := new(big.Int).SetBytes(i.Value)
	if m.BitLen() > 128 {
		return 0, 0, Error.New("out of range for 128 bits: %d bits", m.BitLen())
	}

	lo = new(big.Int).And(m, new(big.Int).SetUint64(^uint64(0))).Uint64()
	hi = new(big.Int).Rsh(m, 64).Uint64()

	return hi, lo, nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The sign is stored in
// the lowest bit (zig-zag) so small magnitudes stay short.
func (i Int) MarshalBinary() (data []byte, err error) {
	v := new(big.Int).SetBytes(i.Value)

	v.Lsh(v, 1)
	if i.Negative {
		v.SetBit(v, 0, 1)
	}

	return magnitude(v), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (i *Int) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("empty integer")
	}

	v := new(big.Int).SetBytes(data)

	i.Negative = v.Bit(0) == 1
	v.Rsh(v, 1)

	i.Value = magnitude(v)

	return nil
}
