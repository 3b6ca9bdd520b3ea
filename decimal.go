package decimal

import (
	"math"
	"math/bits"
	"strconv"
)

// A Decimal is an immutable arbitrary-precision decimal floating-point
// number of up to MaxDigits significant digits.
//
// The significand is stored as base 10**9 limbs, most significant first,
// with exp giving the power of the radix associated with the first limb:
//
//	x = Σ limbs[i] * _DB**(exp-i)
//
// Every observable Decimal is canonical: no leading or trailing zero limbs,
// all non-zero limbs share the value's sign, and zero is the empty limb
// slice with a zero exponent. Operations never mutate their operands; each
// builds a fresh limb buffer, runs it through the carry engine and returns a
// new canonical value, so Decimals may be shared freely across goroutines
// without synchronization.
type Decimal struct {
	limbs limbs
	exp   int32
}

// Common values.
var (
	Zero    = Decimal{}
	One     = Decimal{limbs: limbs{1}}
	Two     = Decimal{limbs: limbs{2}}
	Ten     = Decimal{limbs: limbs{10}}
	Hundred = Decimal{limbs: limbs{100}}
)

// norm builds the canonical value for an arbitrary limb buffer: carry fixup,
// sign alignment, leading-zero trimming, rounding to MaxLimbs limbs and
// trailing-zero trimming. norm owns ls. Every construction path and every
// arithmetic result funnels through here.
func norm(ls limbs, exp int32, mode RoundingMode) Decimal {
	ls, exp = fixCarry(ls, exp, len(ls)-1)
	ls = alignSigns(ls)
	ls, exp = trimLeading(ls, exp)
	ls, exp = roundLimbs(ls, exp, mode)
	ls = trimTrailing(ls)
	if len(ls) == 0 {
		return Decimal{}
	}
	return Decimal{limbs: ls, exp: exp}
}

// packValue builds a canonical Decimal from an unsigned digit string whose
// first digit has decimal exponent dexp. packValue trims zero digits itself,
// so callers may pass raw digit runs.
func packValue(digits []byte, dexp int, neg bool) Decimal {
	for len(digits) > 0 && digits[0] == '0' {
		digits = digits[1:]
		dexp--
	}
	for len(digits) > 0 && digits[len(digits)-1] == '0' {
		digits = digits[:len(digits)-1]
	}
	if len(digits) == 0 {
		return Decimal{}
	}
	ls, exp := packDigits(digits, dexp, neg)
	return norm(ls, exp, ToNearestEven)
}

// New returns the fixed-point value coef * 10**-scale.
//
// New(12345, 4) == 1.2345 and New(12345, -2) == 1234500.
func New(coef int64, scale int32) Decimal {
	if coef == 0 {
		return Decimal{}
	}
	neg := coef < 0
	u := uint64(coef)
	if neg {
		u = -u
	}
	digits := strconv.AppendUint(nil, u, 10)
	return packValue(digits, len(digits)-1-int(scale), neg)
}

// FromInt64 returns the value of v. The conversion is always exact.
func FromInt64(v int64) Decimal {
	return New(v, 0)
}

// FromUint64 returns the value of v. The conversion is always exact.
func FromUint64(v uint64) Decimal {
	if v == 0 {
		return Decimal{}
	}
	digits := strconv.AppendUint(nil, v, 10)
	return packValue(digits, len(digits)-1, false)
}

// FromFloat64 returns the value of f via its shortest decimal decomposition,
// so FromFloat64(0.1) is exactly 0.1 even though f itself holds a binary
// approximation. NaN and infinities are rejected with ErrInvalidFormat.
func FromFloat64(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, ErrInvalidFormat.New("cannot convert %v", f)
	}
	return Parse(strconv.FormatFloat(f, 'E', -1, 64))
}

// FromLimbs returns the canonical value denoted by the given limb sequence
// and exponent, where value = Σ ls[i] * B**(exp-i) with B = 10**9. The input
// need not be canonical: out-of-range and mixed-sign limbs are resolved by
// the carry engine and the result is rounded to MaxLimbs limbs. ls is
// copied, never retained.
func FromLimbs(ls []int64, exp int32) Decimal {
	return norm(limbs(ls).clone(), exp, ToNearestEven)
}

// IsZero reports whether x is 0.
func (x Decimal) IsZero() bool {
	return len(x.limbs) == 0
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
func (x Decimal) Sign() int {
	return x.limbs.sign()
}

// Neg returns -x.
func (x Decimal) Neg() Decimal {
	if x.IsZero() {
		return Decimal{}
	}
	return Decimal{limbs: x.limbs.neg(), exp: x.exp}
}

// Abs returns |x|.
func (x Decimal) Abs() Decimal {
	if x.Sign() >= 0 {
		return x
	}
	return x.Neg()
}

// Cmp compares x and y and returns -1, 0 or +1. Canonical form makes this a
// structural comparison: signs first, then exponents, then limbs left to
// right with missing trailing limbs implicitly zero.
func (x Decimal) Cmp(y Decimal) int {
	sx, sy := x.Sign(), y.Sign()
	if sx != sy {
		if sx < sy {
			return -1
		}
		return 1
	}
	if sx == 0 {
		return 0
	}
	if x.exp != y.exp {
		// a larger limb exponent means a larger magnitude
		if (x.exp > y.exp) == (sx > 0) {
			return 1
		}
		return -1
	}
	n := max(len(x.limbs), len(y.limbs))
	for i := 0; i < n; i++ {
		var a, b int64
		if i < len(x.limbs) {
			a = x.limbs[i]
		}
		if i < len(y.limbs) {
			b = y.limbs[i]
		}
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal reports whether x and y denote the same value.
func (x Decimal) Equal(y Decimal) bool {
	return x.Cmp(y) == 0
}

// Int64 returns the integer part of x truncated toward zero. It fails with
// ErrOverflow if that integer does not fit in an int64.
func (x Decimal) Int64() (int64, error) {
	if x.exp < 0 {
		return 0, nil
	}
	if x.exp > 2 {
		// three limbs already exceed 10**18
		return 0, ErrOverflow.New("%s overflows int64", x)
	}
	neg := x.Sign() < 0
	var u uint64
	for e := x.exp; e >= 0; e-- {
		l := x.limbs.at(x.exp, e)
		if neg {
			l = -l
		}
		hi, lo := bits.Mul64(u, _DB)
		sum, c := bits.Add64(lo, uint64(l), 0)
		if hi != 0 || c != 0 {
			return 0, ErrOverflow.New("%s overflows int64", x)
		}
		u = sum
	}
	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}
	if u > limit {
		return 0, ErrOverflow.New("%s overflows int64", x)
	}
	if neg {
		return -int64(u), nil
	}
	return int64(u), nil
}

// Float64 returns the nearest float64 to x. It fails with ErrOverflow when
// |x| exceeds the float64 range; values too small for a float64 underflow to
// zero without error.
func (x Decimal) Float64() (float64, error) {
	f, err := strconv.ParseFloat(x.Text('E', -1), 64)
	if err != nil && math.IsInf(f, 0) {
		return 0, ErrOverflow.New("%s overflows float64", x)
	}
	return f, nil
}
