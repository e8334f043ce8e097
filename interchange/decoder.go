package interchange

import (
	"encoding/binary"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/calebcase/decimal"
	"github.com/calebcase/decimal/integer"
)

// Decoder reads tagged records one at a time:
//
//	d := interchange.NewDecoder(r)
//	for d.Next() {
//		v := d.Value()
//		...
//	}
//	if err := d.Err(); err != nil {
//		...
//	}
type Decoder struct {
	r io.Reader

	consumed uint64

	value [1]byte
	t     Tag
	v     decimal.Value

	err error
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	d := &Decoder{
		r: r,
	}

	return d
}

// Next reads the next record. It returns false at the end of the input or
// on the first error.
func (d *Decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	d.t = Unknown
	d.v = decimal.Value{}

	// Read the record tag.
	_, d.err = io.ReadFull(d.r, d.value[:])
	if d.err != nil {
		if errors.Is(d.err, io.EOF) {
			d.err = nil
			return false
		}

		d.err = Error.Wrap(d.err)

		return false
	}

	d.consumed += 1

	t, ok := Tags.Match(d.value[0])
	if !ok {
		if ce := decimal.Logger().Check(zap.DebugLevel, "unknown record tag"); ce != nil {
			ce.Write(
				zap.Binary("tag", d.value[:]),
				zap.Uint64("offset", d.consumed-1),
			)
		}

		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	d.t = t

	switch t.Encoding {
	case BID:
		d.v, d.err = d.readBID()
	case DPD:
		d.v, d.err = d.readDPD()
	case Parts:
		d.v, d.err = d.readParts()
	}

	if d.err != nil {
		d.t = Unknown
		d.err = Error.Wrap(d.err)

		return false
	}

	return true
}

// Err returns the first error encountered.
func (d *Decoder) Err() error {
	return d.err
}

// Tag returns the tag of the current record.
func (d *Decoder) Tag() Tag {
	return d.t
}

// Value returns the value of the current record.
func (d *Decoder) Value() decimal.Value {
	return d.v
}

// Consumed returns the number of bytes read so far.
func (d *Decoder) Consumed() uint64 {
	return d.consumed
}

func (d *Decoder) read(n int) (data []byte, err error) {
	data = make([]byte, n)

	_, err = io.ReadFull(d.r, data)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return nil, err
	}

	d.consumed += uint64(n)

	return data, nil
}

func width(k decimal.Kind) int {
	switch k {
	case decimal.Kind64:
		return 8
	case decimal.Kind128:
		return 16
	}

	return 4
}

func (d *Decoder) readBID() (v decimal.Value, err error) {
	data, err := d.read(width(d.t.Kind))
	if err != nil {
		return v, err
	}

	switch d.t.Kind {
	case decimal.Kind64:
		x, err := ReadBID64(data, binary.BigEndian)

		return decimal.Value64(x), err
	case decimal.Kind128:
		x, err := ReadBID128(data, binary.BigEndian)

		return decimal.Value128(x), err
	}

	x, err := ReadBID32(data, binary.BigEndian)

	return decimal.Value32(x), err
}

func (d *Decoder) readDPD() (v decimal.Value, err error) {
	data, err := d.read(width(d.t.Kind))
	if err != nil {
		return v, err
	}

	switch d.t.Kind {
	case decimal.Kind64:
		return decimal.Value64(DecodeDPD64(binary.BigEndian.Uint64(data))), nil
	case decimal.Kind128:
		hi, lo := binary.BigEndian.Uint64(data[:8]), binary.BigEndian.Uint64(data[8:])

		return decimal.Value128(DecodeDPD128(hi, lo)), nil
	}

	return decimal.Value32(DecodeDPD32(binary.BigEndian.Uint32(data))), nil
}

func (d *Decoder) readInt() (i integer.Int, err error) {
	size, err := d.read(1)
	if err != nil {
		return i, err
	}

	data, err := d.read(int(size[0]))
	if err != nil {
		return i, err
	}

	err = i.UnmarshalBinary(data)
	if err != nil {
		return i, err
	}

	return i, nil
}

func (d *Decoder) readParts() (v decimal.Value, err error) {
	head, err := d.read(1)
	if err != nil {
		return v, err
	}

	form, neg := head[0]>>1, head[0]&1 == 1

	exp, err := d.readInt()
	if err != nil {
		return v, err
	}

	e, err := exp.Int64()
	if err != nil {
		return v, err
	}

	if e < -1<<31 || e > 1<<31-1 {
		return v, Error.New("exponent out of range: %d", e)
	}

	coeff, err := d.readInt()
	if err != nil {
		return v, err
	}

	if coeff.Negative {
		return v, Error.New("negative coefficient")
	}

	switch d.t.Kind {
	case decimal.Kind64:
		var x decimal.Decimal64
		err = x.Compose(form, neg, coeff.Value, int32(e))

		return decimal.Value64(x), err
	case decimal.Kind128:
		var x decimal.Decimal128
		err = x.Compose(form, neg, coeff.Value, int32(e))

		return decimal.Value128(x), err
	}

	var x decimal.Decimal32
	err = x.Compose(form, neg, coeff.Value, int32(e))

	return decimal.Value32(x), err
}
