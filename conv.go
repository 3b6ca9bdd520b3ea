package decimal

import "strconv"

// Parse converts the text representation s into a Decimal. The accepted form
// is
//
//	number   = [ sign ] digits [ "." digits ] [ exponent ] .
//	sign     = "+" | "-" .
//	exponent = ( "e" | "E" ) [ sign ] digits .
//
// Whitespace, underscores and comma group separators are stripped before
// matching, so "1,234,567.89" and "1_000" are accepted. Anything else —
// empty input, a missing digit run, a second decimal point, trailing
// characters — fails with ErrInvalidFormat. The entire string must match.
//
// Values with more than MaxDigits significant digits are rounded to nearest,
// ties to even.
func Parse(s string) (Decimal, error) {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', ',', '_':
			// group separators and whitespace do not change the value
		default:
			buf = append(buf, s[i])
		}
	}
	if len(buf) == 0 {
		return Decimal{}, ErrInvalidFormat.New("empty input %q", s)
	}

	i := 0
	neg := false
	if buf[i] == '+' || buf[i] == '-' {
		neg = buf[i] == '-'
		i++
	}

	start := i
	for i < len(buf) && '0' <= buf[i] && buf[i] <= '9' {
		i++
	}
	intLen := i - start
	if intLen == 0 {
		return Decimal{}, ErrInvalidFormat.New("%q has no digits before the decimal point", s)
	}
	digits := append([]byte(nil), buf[start:i]...)

	if i < len(buf) && buf[i] == '.' {
		i++
		start = i
		for i < len(buf) && '0' <= buf[i] && buf[i] <= '9' {
			i++
		}
		if i == start {
			return Decimal{}, ErrInvalidFormat.New("%q has no digits after the decimal point", s)
		}
		digits = append(digits, buf[start:i]...)
	}

	exp := 0
	if i < len(buf) && (buf[i] == 'e' || buf[i] == 'E') {
		i++
		eneg := false
		if i < len(buf) && (buf[i] == '+' || buf[i] == '-') {
			eneg = buf[i] == '-'
			i++
		}
		start = i
		for i < len(buf) && '0' <= buf[i] && buf[i] <= '9' {
			i++
		}
		if i == start {
			return Decimal{}, ErrInvalidFormat.New("%q has no exponent digits", s)
		}
		v, err := strconv.Atoi(string(buf[start:i]))
		if err != nil || v > maxParseExp {
			return Decimal{}, ErrInvalidFormat.New("exponent out of range in %q", s)
		}
		if eneg {
			v = -v
		}
		exp = v
	}
	if i != len(buf) {
		return Decimal{}, ErrInvalidFormat.New("trailing characters %q in %q", buf[i:], s)
	}
	return packValue(digits, exp+intLen-1, neg), nil
}

// maxParseExp bounds the decimal exponent accepted by Parse so that limb
// exponents stay well inside the int32 range.
const maxParseExp = 1 << 30

// MustParse is like Parse but panics on invalid input. It simplifies the
// initialization of constant values.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}
