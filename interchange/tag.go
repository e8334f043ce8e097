package interchange

import "github.com/calebcase/decimal"

// Encoding selects how a record stores its value.
type Encoding uint8

const (
	// BID stores the raw binary integer decimal bits, big-endian.
	BID Encoding = iota

	// DPD stores the densely packed decimal bits, big-endian.
	DPD

	// Parts stores form and sign, then the exponent and the coefficient
	// as length prefixed zig-zag integers.
	Parts
)

func (e Encoding) String() string {
	switch e {
	case BID:
		return "bid"
	case DPD:
		return "dpd"
	case Parts:
		return "parts"
	}

	return "unknown"
}

// Tag is the first byte of a record.
type Tag struct {
	Prefix byte
	Mask   byte
	Abbr   string

	Kind     decimal.Kind
	Encoding Encoding
}

// Match returns true if this tag matches the given byte.
func (t Tag) Match(b byte) bool {
	return b&^t.Mask == t.Prefix
}

type tags []Tag

func (ts tags) Match(b byte) (t Tag, ok bool) {
	for _, t := range ts {
		if t.Match(b) {
			return t, true
		}
	}

	return t, false
}

// Find returns the tag for a kind and encoding.
func (ts tags) Find(k decimal.Kind, e Encoding) (t Tag, ok bool) {
	for _, t := range ts {
		if t.Kind == k && t.Encoding == e {
			return t, true
		}
	}

	return t, false
}

var (
	Unknown  = Tag{}
	BID32    = Tag{0b_1000_0000, 0b_0000_0000, "b32", decimal.Kind32, BID}
	BID64    = Tag{0b_1000_0001, 0b_0000_0000, "b64", decimal.Kind64, BID}
	BID128   = Tag{0b_1000_0010, 0b_0000_0000, "b128", decimal.Kind128, BID}
	DPD32    = Tag{0b_1001_0000, 0b_0000_0000, "d32", decimal.Kind32, DPD}
	DPD64    = Tag{0b_1001_0001, 0b_0000_0000, "d64", decimal.Kind64, DPD}
	DPD128   = Tag{0b_1001_0010, 0b_0000_0000, "d128", decimal.Kind128, DPD}
	Parts32  = Tag{0b_1010_0000, 0b_0000_0000, "p32", decimal.Kind32, Parts}
	Parts64  = Tag{0b_1010_0001, 0b_0000_0000, "p64", decimal.Kind64, Parts}
	Parts128 = Tag{0b_1010_0010, 0b_0000_0000, "p128", decimal.Kind128, Parts}

	Tags = tags{
		BID32,
		BID64,
		BID128,
		DPD32,
		DPD64,
		DPD128,
		Parts32,
		Parts64,
		Parts128,
	}
)
