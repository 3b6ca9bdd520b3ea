package decimal

import "strconv"

const (
	// _DW is the number of decimal digits per limb and _DB the limb radix.
	_DW = 9
	_DB = 1000000000
	// _DHalf is the midpoint used by the rounding engine.
	_DHalf = _DB / 2

	// MaxLimbs bounds the limb count of a canonical value; values that would
	// exceed it are rounded to MaxLimbs limbs.
	MaxLimbs = 12
	// MaxDigits is the significand capacity in decimal digits.
	MaxDigits = MaxLimbs * _DW

	// guardLimbs is the number of extra limb positions carried by arithmetic
	// buffers: one for overflow, one for pre-round precision.
	guardLimbs = 2
)

// limbs holds a number's digit groups in base _DB, most significant first.
// Every element lies in (-_DB, _DB) and all non-zero elements carry the sign
// of the value. The canonical form has no leading and no trailing zero
// elements; the empty (or nil) slice is the unique representation of zero.
//
// A limbs slice together with an exponent e denotes the value
//
//	x = x[0]*_DB**e + x[1]*_DB**(e-1) + ... + x[n-1]*_DB**(e-n+1)
type limbs []int64

// sign returns the sign of the value: the sign of the most significant
// non-zero limb, or 0 if there is none.
func (x limbs) sign() int {
	for _, w := range x {
		if w > 0 {
			return 1
		}
		if w < 0 {
			return -1
		}
	}
	return 0
}

func (x limbs) clone() limbs {
	if len(x) == 0 {
		return nil
	}
	z := make(limbs, len(x))
	copy(z, x)
	return z
}

// neg returns a fresh copy of x with every limb negated.
func (x limbs) neg() limbs {
	z := make(limbs, len(x))
	for i, w := range x {
		z[i] = -w
	}
	return z
}

// abs returns a fresh copy of x with every limb made non-negative.
func (x limbs) abs() limbs {
	z := make(limbs, len(x))
	for i, w := range x {
		if w < 0 {
			w = -w
		}
		z[i] = w
	}
	return z
}

// at returns the limb of (x, exp) at limb exponent e, zero outside the
// stored range.
func (x limbs) at(exp, e int32) int64 {
	i := exp - e
	if i < 0 || i >= int32(len(x)) {
		return 0
	}
	return x[i]
}

// trimLeading drops leading zero limbs, decrementing exp once per dropped
// limb. The returned slice aliases x.
func trimLeading(ls limbs, exp int32) (limbs, int32) {
	for len(ls) > 0 && ls[0] == 0 {
		ls = ls[1:]
		exp--
	}
	return ls, exp
}

// trimTrailing drops trailing zero limbs. The exponent of the most
// significant limb is unaffected.
func trimTrailing(ls limbs) limbs {
	for len(ls) > 0 && ls[len(ls)-1] == 0 {
		ls = ls[:len(ls)-1]
	}
	return ls
}

// packDigits converts a digit string into limbs. digits must contain ASCII
// decimal digits only, with no sign; dexp is the decimal exponent of the
// first digit. Digits are grouped in chunks of _DW aligned on the boundary
// implied by dexp, left- and right-padding with zeros, so the digit with
// decimal exponent e lands in the limb with limb exponent floor(e/_DW).
//
// The result is range-normalized and sign-uniform but may carry leading or
// trailing zero limbs; callers canonicalize.
func packDigits(digits []byte, dexp int, neg bool) (limbs, int32) {
	e := floorDiv(dexp, _DW)
	lead := _DW - 1 - (dexp - e*_DW)
	n := (lead + len(digits) + _DW - 1) / _DW
	ls := make(limbs, n)
	for i := 0; i < len(digits); i++ {
		p := lead + i
		ls[p/_DW] += int64(digits[i]-'0') * pow10(_DW-1-p%_DW)
	}
	if neg {
		for i := range ls {
			ls[i] = -ls[i]
		}
	}
	return ls, int32(e)
}

// unpackDigits is the inverse of packDigits for canonical non-zero limbs: it
// renders the absolute value as a digit string with no leading or trailing
// zeros and returns the decimal exponent of the first digit. Every limb but
// the first is zero-padded to exactly _DW digits before concatenation.
func unpackDigits(ls limbs, exp int32) ([]byte, int) {
	w := ls[0]
	if w < 0 {
		w = -w
	}
	d := strconv.AppendInt(nil, w, 10)
	dexp := int(exp)*_DW + decDigits(w) - 1
	for _, l := range ls[1:] {
		if l < 0 {
			l = -l
		}
		for p := _DW - 1; p >= 0; p-- {
			d = append(d, byte('0'+l/pow10(p)%10))
		}
	}
	for len(d) > 0 && d[len(d)-1] == '0' {
		d = d[:len(d)-1]
	}
	return d, dexp
}
