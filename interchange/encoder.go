package interchange

import (
	"encoding/binary"
	"io"

	"github.com/calebcase/decimal"
	"github.com/calebcase/decimal/integer"
)

// Encoder writes tagged records.
type Encoder struct {
	w   io.Writer
	enc Encoding
}

// NewEncoder returns an Encoder writing BID records to w.
func NewEncoder(w io.Writer) *Encoder {
	e := &Encoder{
		w: w,
	}

	return e
}

// SetEncoding changes the encoding of subsequent records.
func (e *Encoder) SetEncoding(enc Encoding) {
	e.enc = enc
}

// Encode writes v as one record.
func (e *Encoder) Encode(v decimal.Value) (err error) {
	defer Error.WrapP(&err)

	t, ok := Tags.Find(v.Kind(), e.enc)
	if !ok {
		return Error.New("no tag for %s/%s", v.Kind(), e.enc)
	}

	buf := []byte{t.Prefix}

	switch e.enc {
	case BID:
		buf = appendBID(buf, v)
	case DPD:
		buf = appendDPD(buf, v)
	case Parts:
		buf, err = appendParts(buf, v)
		if err != nil {
			return err
		}
	}

	_, err = e.w.Write(buf)
	if err != nil {
		return err
	}

	return nil
}

func appendBID(buf []byte, v decimal.Value) []byte {
	switch v.Kind() {
	case decimal.Kind64:
		return AppendBID64(buf, binary.BigEndian, v.As64())
	case decimal.Kind128:
		return AppendBID128(buf, binary.BigEndian, v.As128())
	}

	return AppendBID32(buf, binary.BigEndian, v.As32())
}

func appendDPD(buf []byte, v decimal.Value) []byte {
	switch v.Kind() {
	case decimal.Kind64:
		return binary.BigEndian.AppendUint64(buf, EncodeDPD64(v.As64()))
	case decimal.Kind128:
		hi, lo := EncodeDPD128(v.As128())
		buf = binary.BigEndian.AppendUint64(buf, hi)

		return binary.BigEndian.AppendUint64(buf, lo)
	}

	return binary.BigEndian.AppendUint32(buf, EncodeDPD32(v.As32()))
}

// appendParts writes
//
//	| form << 1 | sign | size | exponent ... | size | coefficient ... |
//
// with both integers zig-zag encoded.
func appendParts(buf []byte, v decimal.Value) (_ []byte, err error) {
	var d decomposer

	switch v.Kind() {
	case decimal.Kind64:
		d = v.As64()
	case decimal.Kind128:
		d = v.As128()
	default:
		d = v.As32()
	}

	form, neg, coefficient, exponent := d.Decompose(nil)

	head := form << 1
	if neg {
		head |= 1
	}

	buf = append(buf, head)

	for _, i := range []integer.Int{
		integer.NewInt64(int64(exponent)),
		{Value: coefficient},
	} {
		data, err := i.MarshalBinary()
		if err != nil {
			return nil, err
		}

		buf = append(buf, byte(len(data)))
		buf = append(buf, data...)
	}

	return buf, nil
}
