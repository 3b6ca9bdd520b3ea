package decimal

// fixCarry brings the limbs at indices start down to 0 back into the open
// interval (-_DB, _DB), propagating the excess leftward. A carry out of index
// 0 grows the slice by one limb at the front and increments exp. Limbs to the
// right of start are not inspected, which lets multiplication re-run the
// fixup incrementally after each partial-product accumulation.
//
// The returned slice may alias ls; callers must treat ls as consumed.
func fixCarry(ls limbs, exp int32, start int) (limbs, int32) {
	var c int64
	for i := start; i >= 0; i-- {
		v := ls[i] + c
		c = v / _DB
		ls[i] = v - c*_DB
	}
	if c != 0 {
		grown := make(limbs, len(ls)+1)
		grown[0] = c
		copy(grown[1:], ls)
		ls = grown
		exp++
	}
	return ls, exp
}

// alignSigns rewrites ls so that every non-zero limb carries the sign of the
// value, i.e. each limb lies in [0, _DB) for a positive value or (-_DB, 0]
// for a negative one. ls must already be range-normalized by fixCarry. The
// rewrite may introduce leading zero limbs but never grows the slice.
func alignSigns(ls limbs) limbs {
	s := ls.sign()
	if s == 0 {
		return ls
	}
	for i := len(ls) - 1; i > 0; i-- {
		if s > 0 && ls[i] < 0 {
			ls[i] += _DB
			ls[i-1]--
		} else if s < 0 && ls[i] > 0 {
			ls[i] -= _DB
			ls[i-1]++
		}
	}
	return ls
}
