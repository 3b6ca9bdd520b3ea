package decimal

import (
	"fmt"
	"strconv"
)

// String formats x in the 'G' style: the shorter of the fixed-point and
// scientific renderings.
func (x Decimal) String() string {
	return x.Text('G', -1)
}

// Text converts x to a string according to format and precision prec.
//
// The format characters are:
//
//	'D', 'R'  raw significand and exponent, e.g. "12345E+6"; Parse of this
//	          form reproduces x exactly
//	'E'       scientific with one leading significant digit, e.g. "1.2345E+10"
//	'F'       fixed-point, e.g. "4750683906.1032"
//	'N'       fixed-point with comma group separators, e.g. "4,750,683,906.1032"
//	'G'       the shorter of 'E' and 'F'
//	'P'       percentage: x multiplied by 100, fixed-point, with a trailing '%'
//
// Lowercase format characters are accepted as synonyms. For 'E', 'G' and
// 'P' a non-negative prec sets the number of digits after the decimal point,
// with the last digit rounded to nearest, ties to even; prec = -1 uses the
// smallest number of digits that represents x exactly.
func (x Decimal) Text(format byte, prec int) string {
	return string(x.Append(nil, format, prec))
}

// Append appends the Text rendering of x to buf and returns the extended
// buffer.
func (x Decimal) Append(buf []byte, format byte, prec int) []byte {
	switch format {
	case 'D', 'd', 'R', 'r':
		return x.appendRaw(buf)
	case 'E', 'e':
		return x.appendSci(buf, prec, false)
	case 'F', 'f':
		return x.appendFixed(buf, prec, false)
	case 'N', 'n':
		return x.appendFixed(buf, prec, true)
	case 'G', 'g':
		return x.appendGeneral(buf, prec, false)
	case 'P', 'p':
		return x.appendPercent(buf, prec)
	}
	buf = append(buf, '%', '!', format, '(')
	buf = x.appendGeneral(buf, -1, false)
	return append(buf, ')')
}

// Format implements fmt.Formatter. The verbs 'e', 'E', 'f', 'F', 'g', 'G',
// 'v' and 's' follow Text, with the fmt precision applied; 'd' prints the
// raw form. The '#' flag switches scientific exponents from ASCII "E±n" to
// "×10" followed by superscript digits, e.g. 1.2345×10¹⁰.
func (x Decimal) Format(s fmt.State, verb rune) {
	prec, ok := s.Precision()
	if !ok {
		prec = -1
	}
	unicode := s.Flag('#')
	var out []byte
	switch verb {
	case 'e', 'E':
		out = x.appendSci(nil, prec, unicode)
	case 'f', 'F':
		out = x.appendFixed(nil, prec, false)
	case 'n', 'N':
		out = x.appendFixed(nil, prec, true)
	case 'g', 'G', 'v', 's':
		out = x.appendGeneral(nil, prec, unicode)
	case 'd':
		out = x.appendRaw(nil)
	default:
		fmt.Fprintf(s, "%%!%c(decimal.Decimal=%s)", verb, x.String())
		return
	}
	if w, ok := s.Width(); ok && w > len(out) {
		pad := make([]byte, w-len(out))
		for i := range pad {
			pad[i] = ' '
		}
		if s.Flag('-') {
			out = append(out, pad...)
		} else {
			out = append(pad, out...)
		}
	}
	s.Write(out)
}

// digits returns the significand of x as a digit string with no leading or
// trailing zeros, the decimal exponent of its first digit, and the sign.
// Zero yields a nil digit string.
func (x Decimal) digits() ([]byte, int, bool) {
	if x.IsZero() {
		return nil, 0, false
	}
	d, dexp := unpackDigits(x.limbs, x.exp)
	return d, dexp, x.Sign() < 0
}

func (x Decimal) appendRaw(buf []byte) []byte {
	d, dexp, neg := x.digits()
	if d == nil {
		return append(buf, "0E+0"...)
	}
	if neg {
		buf = append(buf, '-')
	}
	buf = append(buf, d...)
	return appendExpASCII(buf, dexp-len(d)+1)
}

func (x Decimal) appendSci(buf []byte, prec int, unicode bool) []byte {
	d, dexp, neg := x.digits()
	if d == nil {
		buf = append(buf, '0')
		if prec > 0 {
			buf = append(buf, '.')
			buf = appendZeros(buf, prec)
		}
		return appendExp(buf, 0, unicode)
	}
	if prec >= 0 {
		var adj int
		d, adj = roundDigits(d, prec+1)
		dexp += adj
	}
	if neg {
		buf = append(buf, '-')
	}
	buf = append(buf, d[0])
	rest := d[1:]
	if prec < 0 {
		if len(rest) > 0 {
			buf = append(buf, '.')
			buf = append(buf, rest...)
		}
	} else if prec > 0 {
		buf = append(buf, '.')
		buf = append(buf, rest...)
		buf = appendZeros(buf, prec-len(rest))
	}
	return appendExp(buf, dexp, unicode)
}

func (x Decimal) appendFixed(buf []byte, prec int, group bool) []byte {
	d, dexp, neg := x.digits()
	var ip, fp []byte
	switch {
	case d == nil:
		ip = []byte{'0'}
	case dexp >= len(d)-1:
		ip = appendZeros(append([]byte(nil), d...), dexp-len(d)+1)
	case dexp >= 0:
		ip, fp = d[:dexp+1], d[dexp+1:]
	default:
		ip = []byte{'0'}
		fp = append(appendZeros(nil, -dexp-1), d...)
	}
	if prec >= 0 {
		ip, fp = roundFixed(ip, fp, prec)
	}
	if neg && !digitsZero(ip) {
		buf = append(buf, '-')
	} else if neg && !digitsZero(fp) {
		buf = append(buf, '-')
	}
	if group {
		buf = appendGrouped(buf, ip)
	} else {
		buf = append(buf, ip...)
	}
	if len(fp) > 0 {
		buf = append(buf, '.')
		buf = append(buf, fp...)
	}
	return buf
}

func (x Decimal) appendGeneral(buf []byte, prec int, unicode bool) []byte {
	e := x.appendSci(nil, prec, unicode)
	f := x.appendFixed(nil, prec, false)
	if len(e) < len(f) {
		return append(buf, e...)
	}
	return append(buf, f...)
}

func (x Decimal) appendPercent(buf []byte, prec int) []byte {
	buf = Mul(x, PowTen(2), ToNearestEven).appendFixed(buf, prec, false)
	return append(buf, '%')
}

// roundDigits rounds the digit string d to n digits, to nearest with ties to
// even, and returns the rounded digits along with the exponent adjustment (1
// when the round carries out into a new leading digit).
func roundDigits(d []byte, n int) ([]byte, int) {
	if n <= 0 || n >= len(d) {
		return d, 0
	}
	keep := append([]byte(nil), d[:n]...)
	r := d[n]
	sticky := false
	for _, c := range d[n+1:] {
		if c != '0' {
			sticky = true
			break
		}
	}
	if r > '5' || r == '5' && (sticky || (keep[n-1]-'0')&1 != 0) {
		i := n - 1
		for ; i >= 0; i-- {
			if keep[i] < '9' {
				keep[i]++
				break
			}
			keep[i] = '0'
		}
		if i < 0 {
			keep[0] = '1'
			return keep, 1
		}
	}
	for len(keep) > 1 && keep[len(keep)-1] == '0' {
		keep = keep[:len(keep)-1]
	}
	return keep, 0
}

// roundFixed rounds the integer/fraction digit pair to prec fraction digits,
// to nearest with ties to even, padding with zeros as needed. The integer
// part grows by one digit when the round carries out, e.g. 99.95 at one
// fraction digit becomes 100.0.
func roundFixed(ip, fp []byte, prec int) ([]byte, []byte) {
	if len(fp) <= prec {
		return ip, appendZeros(append([]byte(nil), fp...), prec-len(fp))
	}
	all := append(append([]byte(nil), ip...), fp...)
	n := len(ip) + prec
	r := all[n]
	sticky := false
	for _, c := range all[n+1:] {
		if c != '0' {
			sticky = true
			break
		}
	}
	all = all[:n]
	if r > '5' || r == '5' && (sticky || (all[n-1]-'0')&1 != 0) {
		i := n - 1
		for ; i >= 0; i-- {
			if all[i] < '9' {
				all[i]++
				break
			}
			all[i] = '0'
		}
		if i < 0 {
			all = append([]byte{'1'}, all...)
			return all[:len(ip)+1], all[len(ip)+1:]
		}
	}
	return all[:len(ip)], all[len(ip):]
}

func digitsZero(d []byte) bool {
	for _, c := range d {
		if c != '0' {
			return false
		}
	}
	return true
}

func appendZeros(buf []byte, n int) []byte {
	for ; n > 0; n-- {
		buf = append(buf, '0')
	}
	return buf
}

// appendGrouped writes the integer digit string ip with a comma between
// every group of three digits.
func appendGrouped(buf, ip []byte) []byte {
	lead := len(ip) % 3
	if lead == 0 {
		lead = 3
	}
	buf = append(buf, ip[:lead]...)
	for i := lead; i < len(ip); i += 3 {
		buf = append(buf, ',')
		buf = append(buf, ip[i:i+3]...)
	}
	return buf
}

func appendExpASCII(buf []byte, e int) []byte {
	buf = append(buf, 'E')
	if e < 0 {
		buf = append(buf, '-')
		e = -e
	} else {
		buf = append(buf, '+')
	}
	return strconv.AppendInt(buf, int64(e), 10)
}

var superDigits = [10]string{"⁰", "¹", "²", "³", "⁴", "⁵", "⁶", "⁷", "⁸", "⁹"}

// appendExp renders the exponent suffix, either as ASCII "E±n" or, in the
// Unicode style, as "×10" followed by superscript digits with no plus sign.
func appendExp(buf []byte, e int, unicode bool) []byte {
	if !unicode {
		return appendExpASCII(buf, e)
	}
	buf = append(buf, "×10"...)
	if e < 0 {
		buf = append(buf, "⁻"...)
		e = -e
	}
	var digs [20]int
	n := 0
	for {
		digs[n] = e % 10
		n++
		e /= 10
		if e == 0 {
			break
		}
	}
	for i := n - 1; i >= 0; i-- {
		buf = append(buf, superDigits[digs[i]]...)
	}
	return buf
}
