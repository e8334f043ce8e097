package interchange

import (
	"encoding/binary"

	"github.com/calebcase/decimal"
)

// AppendBID32 appends the 4 byte BID encoding of x to dst.
func AppendBID32(dst []byte, order binary.ByteOrder, x decimal.Decimal32) []byte {
	var buf [4]byte

	order.PutUint32(buf[:], x.Bits())

	return append(dst, buf[:]...)
}

// ReadBID32 decodes a decimal32 from the first 4 bytes of src.
func ReadBID32(src []byte, order binary.ByteOrder) (x decimal.Decimal32, err error) {
	if len(src) < 4 {
		return x, Error.New("decimal32: short buffer: %d bytes", len(src))
	}

	return decimal.Decimal32FromBits(order.Uint32(src)), nil
}

// AppendBID64 appends the 8 byte BID encoding of x to dst.
func AppendBID64(dst []byte, order binary.ByteOrder, x decimal.Decimal64) []byte {
	var buf [8]byte

	order.PutUint64(buf[:], x.Bits())

	return append(dst, buf[:]...)
}

// ReadBID64 decodes a decimal64 from the first 8 bytes of src.
func ReadBID64(src []byte, order binary.ByteOrder) (x decimal.Decimal64, err error) {
	if len(src) < 8 {
		return x, Error.New("decimal64: short buffer: %d bytes", len(src))
	}

	return decimal.Decimal64FromBits(order.Uint64(src)), nil
}

// AppendBID128 appends the 16 byte BID encoding of x to dst. The word order
// follows the byte order: big-endian writes the high word first.
func AppendBID128(dst []byte, order binary.ByteOrder, x decimal.Decimal128) []byte {
	var buf [16]byte

	hi, lo := x.Bits()

	if order == binary.LittleEndian {
		order.PutUint64(buf[:8], lo)
		order.PutUint64(buf[8:], hi)
	} else {
		order.PutUint64(buf[:8], hi)
		order.PutUint64(buf[8:], lo)
	}

	return append(dst, buf[:]...)
}

// ReadBID128 decodes a decimal128 from the first 16 bytes of src.
func ReadBID128(src []byte, order binary.ByteOrder) (x decimal.Decimal128, err error) {
	if len(src) < 16 {
		return x, Error.New("decimal128: short buffer: %d bytes", len(src))
	}

	hi, lo := order.Uint64(src[:8]), order.Uint64(src[8:16])
	if order == binary.LittleEndian {
		hi, lo = lo, hi
	}

	return decimal.Decimal128FromBits(hi, lo), nil
}
