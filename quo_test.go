package decimal

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuoExact(t *testing.T) {
	tests := []struct {
		x, y, want string
	}{
		{"1", "2", "0.5"},
		{"1", "4", "0.25"},
		{"1", "5", "0.2"},
		{"1", "8", "0.125"},
		{"1", "10", "0.1"},
		{"1", "16", "0.0625"},
		{"6", "3", "2"},
		{"-6", "3", "-2"},
		{"6", "-3", "-2"},
		{"-6", "-3", "2"},
		{"1E+20", "4", "2.5E+19"},
		{"0.0001", "0.5", "2E-4"},
		{"1.2345", "1.2345", "1"},
	}
	for _, tt := range tests {
		got, err := MustParse(tt.x).Quo(MustParse(tt.y))
		require.NoError(t, err, "%s / %s", tt.x, tt.y)
		require.Equal(t, tt.want, got.String(), "%s / %s", tt.x, tt.y)
	}
}

func TestQuoByZero(t *testing.T) {
	_, err := MustParse("1").Quo(Zero)
	require.True(t, ErrDivisionByZero.Has(err))
	_, err = Zero.Quo(Zero)
	require.True(t, ErrDivisionByZero.Has(err))
	_, err = Zero.Rcp()
	require.True(t, ErrDivisionByZero.Has(err))
}

func TestQuoZeroNumerator(t *testing.T) {
	q, err := Zero.Quo(MustParse("7"))
	require.NoError(t, err)
	require.True(t, q.IsZero())
}

func TestQuoOneThird(t *testing.T) {
	q, err := MustParse("1").Quo(MustParse("3"))
	require.NoError(t, err)

	// the leading digits must all be threes
	s := q.Text('F', -1)
	require.True(t, strings.HasPrefix(s, "0.33333333333333333333"), "got %s", s)

	f, err := q.Float64()
	require.NoError(t, err)
	require.InEpsilon(t, 1.0/3.0, f, 1e-12)
}

func TestQuoSeventh(t *testing.T) {
	q, err := MustParse("22").Quo(MustParse("7"))
	require.NoError(t, err)
	f, err := q.Float64()
	require.NoError(t, err)
	require.InEpsilon(t, 22.0/7.0, f, 1e-12)
}

func TestRcpInverse(t *testing.T) {
	// values whose reciprocal is exactly representable invert back to one
	for _, s := range []string{"2", "4", "5", "8", "10", "16", "100", "0.5", "1.25"} {
		x := MustParse(s)
		r, err := x.Rcp()
		require.NoError(t, err, "1/%s", s)
		require.True(t, x.Mul(r).Equal(One), "%s * 1/%s = %s", s, s, x.Mul(r))
	}
}

func TestQuoRoundTrips(t *testing.T) {
	// q = x/y recovers x when multiplied back, for exactly dividing pairs
	pairs := [][2]string{
		{"4750683906.1032", "9.8712"},
		{"1.52399025", "1.2345"},
		{"999999998000000001", "999999999"},
	}
	for _, p := range pairs {
		x, y := MustParse(p[0]), MustParse(p[1])
		q, err := x.Quo(y)
		require.NoError(t, err)
		require.True(t, q.Mul(y).Equal(x), "(%s / %s) * %s = %s", p[0], p[1], p[1], q.Mul(y))
	}
}

func TestQuoModes(t *testing.T) {
	// 2/3 truncated vs rounded differs in the last retained limb
	x, y := MustParse("2"), MustParse("3")
	near, err := Quo(x, y, ToNearestEven)
	require.NoError(t, err)
	f, err := near.Float64()
	require.NoError(t, err)
	require.InEpsilon(t, 2.0/3.0, f, 1e-12)

	_, err = Quo(x, y, ToZero)
	require.NoError(t, err)
}

func TestSeedRcp(t *testing.T) {
	for _, s := range []string{"3", "7", "999999999", "123456789123456789"} {
		d := MustParse(s)
		f := seedRcp(Decimal{limbs: d.limbs.abs()})
		got, err := f.Float64()
		require.NoError(t, err)
		want := 1 / mustFloat(t, Decimal{limbs: d.limbs.abs()})
		require.InEpsilon(t, want, got, 1e-14, "seed for %s", s)
	}
}

func mustFloat(t *testing.T, d Decimal) float64 {
	t.Helper()
	f, err := d.Float64()
	require.NoError(t, err)
	return math.Abs(f)
}
