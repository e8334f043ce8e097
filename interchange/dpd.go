package interchange

import (
	num "github.com/shabbyrobe/go-num"

	"github.com/calebcase/decimal"
	"github.com/calebcase/decimal/integer"
)

// dpdFormat describes the densely packed decimal layout of one format:
//
//	| sign | combination (5) | exponent continuation | declets (10 each) |
type dpdFormat struct {
	width    uint
	contBits uint
	declets  uint
	bias     int
}

var (
	dpd32  = dpdFormat{width: 32, contBits: 6, declets: 2, bias: 101}
	dpd64  = dpdFormat{width: 64, contBits: 8, declets: 5, bias: 398}
	dpd128 = dpdFormat{width: 128, contBits: 12, declets: 11, bias: 6176}
)

const (
	combInf = 0b11110
	combNaN = 0b11111
)

// encodeDeclet packs three digits, most significant first, into 10 bits
// (IEEE 754-2008 table 3.4).
func encodeDeclet(d0, d1, d2 uint16) uint16 {
	b, c, d := d0>>2&1, d0>>1&1, d0&1
	f, g, h := d1>>2&1, d1>>1&1, d1&1
	j, k, m := d2>>2&1, d2>>1&1, d2&1

	g3 := func(x, y, z uint16) uint16 { return x<<2 | y<<1 | z }

	var pqr, stu, v, wxy uint16

	switch d0>>3<<2 | d1>>3<<1 | d2>>3 {
	case 0b000:
		pqr, stu, v, wxy = g3(b, c, d), g3(f, g, h), 0, g3(j, k, m)
	case 0b001:
		pqr, stu, v, wxy = g3(b, c, d), g3(f, g, h), 1, g3(0, 0, m)
	case 0b010:
		pqr, stu, v, wxy = g3(b, c, d), g3(j, k, h), 1, g3(0, 1, m)
	case 0b011:
		pqr, stu, v, wxy = g3(b, c, d), g3(1, 0, h), 1, g3(1, 1, m)
	case 0b100:
		pqr, stu, v, wxy = g3(j, k, d), g3(f, g, h), 1, g3(1, 0, m)
	case 0b101:
		pqr, stu, v, wxy = g3(f, g, d), g3(0, 1, h), 1, g3(1, 1, m)
	case 0b110:
		pqr, stu, v, wxy = g3(j, k, d), g3(0, 0, h), 1, g3(1, 1, m)
	default:
		pqr, stu, v, wxy = g3(0, 0, d), g3(1, 1, h), 1, g3(1, 1, m)
	}

	return pqr<<7 | stu<<4 | v<<3 | wxy
}

// decodeDeclet unpacks 10 bits into three digits, most significant first.
// Every pattern decodes, including the non-canonical ones.
func decodeDeclet(x uint16) (d0, d1, d2 uint16) {
	pq, r := x>>8&0b11, x>>7&1
	st, u := x>>5&0b11, x>>4&1
	v, wx, y := x>>3&1, x>>1&0b11, x&1

	pqr := pq<<1 | r
	stu := st<<1 | u

	if v == 0 {
		return pqr, stu, x & 0b111
	}

	switch wx {
	case 0b00:
		return pqr, stu, 8 + y
	case 0b01:
		return pqr, 8 + u, st<<1 | y
	case 0b10:
		return 8 + r, stu, pq<<1 | y
	}

	switch st {
	case 0b00:
		return 8 + r, 8 + u, pq<<1 | y
	case 0b01:
		return 8 + r, pq<<1 | u, 8 + y
	case 0b10:
		return pqr, 8 + u, 8 + y
	}

	return 8 + r, 8 + u, 8 + y
}

var thousand = num.U128From64(1000)

// packDeclets stores the low 3*n digits of c as n declets.
func packDeclets(c num.U128, n uint) (out num.U128) {
	for i := uint(0); i < n; i++ {
		q, r := c.QuoRem(thousand)
		c = q

		d := r.AsUint64()
		dec := encodeDeclet(uint16(d/100), uint16(d/10%10), uint16(d%10))

		out = out.Or(num.U128From64(uint64(dec)).Lsh(10 * i))
	}

	return out
}

// unpackDeclets reads n declets from the low bits of x.
func unpackDeclets(x num.U128, n uint) (c num.U128) {
	for i := int(n) - 1; i >= 0; i-- {
		dec := uint16(x.Rsh(10 * uint(i)).AsUint64() & 0x3ff)
		d0, d1, d2 := decodeDeclet(dec)

		c = c.Mul(thousand).Add(num.U128From64(uint64(d0)*100 + uint64(d1)*10 + uint64(d2)))
	}

	return c
}

type decomposer interface {
	Decompose(buf []byte) (form byte, negative bool, coefficient []byte, exponent int32)
}

type composer interface {
	Compose(form byte, negative bool, coefficient []byte, exponent int32) error
}

func (f dpdFormat) encode(x decomposer) (out num.U128) {
	form, neg, coefficient, exponent := x.Decompose(nil)

	if neg {
		out = num.U128From64(1).Lsh(f.width - 1)
	}

	combShift := f.width - 6
	trailing := 10 * f.declets

	hi, lo, _ := integer.Int{Value: coefficient}.Words()
	c := num.U128FromRaw(hi, lo)

	switch form {
	case decimal.FormInfinite:
		return out.Or(num.U128From64(combInf).Lsh(combShift))
	case decimal.FormNaN, decimal.FormSNaN:
		out = out.Or(num.U128From64(combNaN).Lsh(combShift))
		if form == decimal.FormSNaN {
			out = out.Or(num.U128From64(1).Lsh(combShift - 1))
		}

		if integer.DigitsU128(c) > int(3*f.declets) {
			return out
		}

		return out.Or(packDeclets(c, f.declets))
	}

	q, _ := c.QuoRem(integer.Pow10U128(int(3 * f.declets)))
	lead := q.AsUint64()

	biased := uint64(int(exponent) + f.bias)
	top := biased >> f.contBits

	var comb uint64
	if lead < 8 {
		comb = top<<3 | lead
	} else {
		comb = 0b11000 | top<<1 | lead&1
	}

	cont := biased & (uint64(1)<<f.contBits - 1)

	return out.
		Or(num.U128From64(comb).Lsh(combShift)).
		Or(num.U128From64(cont).Lsh(trailing)).
		Or(packDeclets(c, f.declets))
}

func (f dpdFormat) decode(bits num.U128, z composer) {
	neg := !bits.Rsh(f.width - 1).IsZero()

	combShift := f.width - 6
	trailing := 10 * f.declets

	comb := bits.Rsh(combShift).AsUint64() & 0b11111
	payload := unpackDeclets(bits, f.declets)

	form := decimal.FormFinite
	var c num.U128
	var exp int32

	switch comb {
	case combInf:
		form = decimal.FormInfinite
	case combNaN:
		form = decimal.FormNaN
		if bits.Rsh(combShift-1).AsUint64()&1 == 1 {
			form = decimal.FormSNaN
		}

		c = payload
	default:
		var top, lead uint64
		if comb>>3 == 0b11 {
			top, lead = comb>>1&0b11, 8+comb&1
		} else {
			top, lead = comb>>3, comb&0b111
		}

		cont := bits.Rsh(trailing).AsUint64() & (uint64(1)<<f.contBits - 1)
		biased := top<<f.contBits | cont

		c = num.U128From64(lead).Mul(integer.Pow10U128(int(3 * f.declets))).Add(payload)
		exp = int32(int(biased) - f.bias)
	}

	hi, lo := c.Raw()

	// Declets decode to at most 999 each and the biased exponent tops out at
	// maxBiased, so the parts are always in range and Compose cannot fail.
	_ = z.Compose(form, neg, integer.NewWords(hi, lo, false).Value, exp)
}

// EncodeDPD32 returns the densely packed decimal encoding of x.
func EncodeDPD32(x decimal.Decimal32) uint32 {
	return uint32(dpd32.encode(x).AsUint64())
}

// DecodeDPD32 decodes a densely packed decimal32. Every bit pattern decodes.
func DecodeDPD32(bits uint32) (x decimal.Decimal32) {
	dpd32.decode(num.U128From64(uint64(bits)), &x)

	return x
}

// EncodeDPD64 returns the densely packed decimal encoding of x.
func EncodeDPD64(x decimal.Decimal64) uint64 {
	return dpd64.encode(x).AsUint64()
}

// DecodeDPD64 decodes a densely packed decimal64. Every bit pattern decodes.
func DecodeDPD64(bits uint64) (x decimal.Decimal64) {
	dpd64.decode(num.U128From64(bits), &x)

	return x
}

// EncodeDPD128 returns the densely packed decimal encoding of x as its high
// and low words.
func EncodeDPD128(x decimal.Decimal128) (hi, lo uint64) {
	return dpd128.encode(x).Raw()
}

// DecodeDPD128 decodes a densely packed decimal128. Every bit pattern
// decodes.
func DecodeDPD128(hi, lo uint64) (x decimal.Decimal128) {
	dpd128.decode(num.U128FromRaw(hi, lo), &x)

	return x
}
