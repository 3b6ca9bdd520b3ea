package decimal

// RoundingMode determines how a value whose limb count exceeds MaxLimbs is
// rounded back to MaxLimbs limbs.
type RoundingMode byte

// These constants define the supported rounding modes.
const (
	ToNearestEven RoundingMode = iota // == IEEE 754-2008 roundTiesToEven
	ToNearestAway                     // == IEEE 754-2008 roundTiesToAway
	ToZero                            // == IEEE 754-2008 roundTowardZero
	AwayFromZero                      // no IEEE 754-2008 equivalent
	ToNegativeInf                     // == IEEE 754-2008 roundTowardNegative
	ToPositiveInf                     // == IEEE 754-2008 roundTowardPositive
)

//go:generate stringer -type=RoundingMode

// roundLimbs truncates ls to at most MaxLimbs limbs, rounding per mode. The
// first discarded limb acts as a base-_DB remainder digit: its absolute value
// is compared against _DHalf for the midpoint test, with ties resolved by the
// parity of the retained last limb under ToNearestEven. Limbs past the first
// discarded one feed only the directed modes; a remainder limb exactly at
// _DHalf ties to even regardless of what follows it. ls must be sign-uniform
// with no leading zero limb. The returned slice may alias ls.
//
// If the increment carries out of the most significant limb, the slice grows
// by one and exp is incremented; the now redundant trailing zero limb is
// dropped so the result never exceeds MaxLimbs limbs.
func roundLimbs(ls limbs, exp int32, mode RoundingMode) (limbs, int32) {
	if len(ls) <= MaxLimbs {
		return ls, exp
	}
	r := ls[MaxLimbs]
	if r < 0 {
		r = -r
	}
	rest := r != 0
	for _, w := range ls[MaxLimbs+1:] {
		if w != 0 {
			rest = true
			break
		}
	}
	neg := ls.sign() < 0
	kept := ls[:MaxLimbs]

	var inc bool
	switch mode {
	case ToNearestEven:
		inc = r > _DHalf || r == _DHalf && kept[MaxLimbs-1]&1 != 0
	case ToNearestAway:
		inc = r >= _DHalf
	case ToZero:
		// nothing to do
	case AwayFromZero:
		inc = rest
	case ToNegativeInf:
		inc = neg && rest
	case ToPositiveInf:
		inc = !neg && rest
	default:
		panic("decimal: unknown rounding mode")
	}
	if inc {
		if neg {
			kept[MaxLimbs-1]--
		} else {
			kept[MaxLimbs-1]++
		}
		kept, exp = fixCarry(kept, exp, MaxLimbs-1)
		if len(kept) > MaxLimbs {
			// the increment rippled through every limb; the trailing limb
			// is now zero
			kept = kept[:len(kept)-1]
		}
	}
	return kept, exp
}
