package decimal

// pattern matches a fixed run of bits at the top of the word that holds the
// sign and combination field. Mask holds the bits that are free to vary.
type pattern struct {
	Prefix uint64
	Mask   uint64
	Abbr   string
	Kind   kind
}

// Match returns true if this pattern matches the given top word.
func (p pattern) Match(top uint64) bool {
	return top&^p.Mask == p.Prefix
}

type patterns []pattern

// Match returns the first matching pattern. Order matters: a signaling NaN
// is also a NaN and a NaN is also a large combination.
func (ps patterns) Match(top uint64) (p pattern, ok bool) {
	for _, p := range ps {
		if p.Match(top) {
			return p, true
		}
	}

	return p, false
}

// layout describes the top word of a format: the whole value for decimal32
// and decimal64, the high half for decimal128.
type layout struct {
	word    uint
	expBits uint

	signMask uint64
	expMask  uint64

	// directShift is where the exponent starts in the direct layout and
	// the width of the significand bits held in the top word.
	directShift uint

	// largeShift is the same for the large combination layout, where
	// the significand has an implied 100 prefix.
	largeShift uint

	// payloadBits is how many NaN payload bits live in the top word.
	payloadBits uint

	large    pattern
	patterns patterns
}

func newLayout(word, expBits, payloadBits uint) *layout {
	wordMask := ^uint64(0) >> (64 - word)

	p := func(prefix, care uint64, abbr string, k kind) pattern {
		return pattern{
			Prefix: prefix,
			Mask:   wordMask &^ care,
			Abbr:   abbr,
			Kind:   k,
		}
	}

	snan := uint64(0b111111) << (word - 7)
	nan := uint64(0b11111) << (word - 6)
	inf := uint64(0b11110) << (word - 6)
	large := uint64(0b11) << (word - 3)

	l := &layout{
		word:        word,
		expBits:     expBits,
		signMask:    uint64(1) << (word - 1),
		expMask:     uint64(1)<<expBits - 1,
		directShift: word - 1 - expBits,
		largeShift:  word - 3 - expBits,
		payloadBits: payloadBits,
		large:       p(large, large, "L", finite),
	}

	l.patterns = patterns{
		p(snan, snan, "sNaN", signalingNaN),
		p(nan, nan, "NaN", quietNaN),
		p(inf, nan, "Inf", infinite),
		l.large,
	}

	return l
}

// fields is the decoded view of a top word.
type fields struct {
	kind   kind
	neg    bool
	biased int

	// sig holds the significand bits from the top word with the implied
	// prefix restored, or the NaN payload bits.
	sig uint64
}

func (l *layout) decode(top uint64) (f fields) {
	f.neg = top&l.signMask != 0

	p, ok := l.patterns.Match(top)
	switch {
	case !ok:
		f.kind = finite
		f.biased = int(top >> l.directShift & l.expMask)
		f.sig = top & (uint64(1)<<l.directShift - 1)
	case p.Kind == finite:
		f.kind = finite
		f.biased = int(top >> l.largeShift & l.expMask)
		f.sig = uint64(0b100)<<l.largeShift | top&(uint64(1)<<l.largeShift-1)
	case p.Kind == infinite:
		f.kind = infinite
	default:
		f.kind = p.Kind
		f.sig = top & (uint64(1)<<l.payloadBits - 1)
	}

	return f
}

func (l *layout) encode(f fields) (top uint64) {
	if f.neg {
		top = l.signMask
	}

	switch f.kind {
	case infinite:
		return top | l.patterns[2].Prefix
	case quietNaN:
		return top | l.patterns[1].Prefix | f.sig&(uint64(1)<<l.payloadBits-1)
	case signalingNaN:
		return top | l.patterns[0].Prefix | f.sig&(uint64(1)<<l.payloadBits-1)
	}

	biased := uint64(f.biased) & l.expMask

	if f.sig>>l.directShift != 0 {
		return top | l.large.Prefix | biased<<l.largeShift | f.sig&(uint64(1)<<l.largeShift-1)
	}

	return top | biased<<l.directShift | f.sig
}
