package decimal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		coef  int64
		scale int32
		want  string
	}{
		{12345, 4, "1.2345"},
		{12345, 0, "12345"},
		{12345, -2, "1234500"},
		{-12345, 4, "-1.2345"},
		{0, 7, "0"},
		{math.MinInt64, 0, "-9223372036854775808"},
		{math.MaxInt64, 0, "9223372036854775807"},
		{5, 1, "0.5"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, New(tt.coef, tt.scale).Text('F', -1), "New(%d, %d)", tt.coef, tt.scale)
	}
}

func TestFromConversions(t *testing.T) {
	require.True(t, FromInt64(42).Equal(MustParse("42")))
	require.True(t, FromInt64(-42).Equal(MustParse("-42")))
	require.True(t, FromUint64(0).IsZero())
	require.True(t, FromUint64(math.MaxUint64).Equal(MustParse("18446744073709551615")))

	d, err := FromFloat64(0.1)
	require.NoError(t, err)
	require.Equal(t, "0.1", d.String())

	d, err = FromFloat64(-2.5e30)
	require.NoError(t, err)
	require.Equal(t, "-2.5E+30", d.Text('E', -1))

	_, err = FromFloat64(math.NaN())
	require.True(t, ErrInvalidFormat.Has(err))
	_, err = FromFloat64(math.Inf(1))
	require.True(t, ErrInvalidFormat.Has(err))
}

// Every construction path must land on the identical representation.
func TestCanonicalUniqueness(t *testing.T) {
	want := MustParse("1.2345")

	fromNew := New(12345, 4)
	require.Equal(t, want, fromNew)

	fromFloat, err := FromFloat64(1.2345)
	require.NoError(t, err)
	require.Equal(t, want, fromFloat)

	fromLimbs := FromLimbs([]int64{1, 234500000}, 0)
	require.Equal(t, want, fromLimbs)

	reparsed := MustParse(want.Text('R', -1))
	require.Equal(t, want, reparsed)
}

func TestFromLimbsNormalizes(t *testing.T) {
	// out-of-range limb
	d := FromLimbs([]int64{2500000000}, 0)
	require.Equal(t, "2500000000", d.Text('F', -1))

	// mixed signs resolve by borrowing
	d = FromLimbs([]int64{1, -1}, 1)
	require.Equal(t, "999999999", d.Text('F', -1))
	require.Equal(t, MustParse("999999999"), d)
	d = FromLimbs([]int64{1, -1}, 0)
	require.Equal(t, "0.999999999", d.Text('F', -1))

	// leading and trailing zero limbs
	d = FromLimbs([]int64{0, 7, 0}, 3)
	require.Equal(t, "7E+18", d.Text('R', -1))

	require.True(t, FromLimbs(nil, 5).IsZero())
	require.True(t, FromLimbs([]int64{0, 0}, 5).IsZero())
}

func TestSignNegAbs(t *testing.T) {
	x := MustParse("-9.8712")
	require.Equal(t, -1, x.Sign())
	require.Equal(t, 1, x.Neg().Sign())
	require.Equal(t, "9.8712", x.Abs().String())
	require.Equal(t, x, x.Neg().Neg())
	require.True(t, Zero.Neg().IsZero())
	require.Equal(t, 0, Zero.Sign())
}

func TestCmp(t *testing.T) {
	tests := []struct {
		x, y string
		want int
	}{
		{"0", "0", 0},
		{"1", "0", 1},
		{"-1", "0", -1},
		{"-1", "1", -1},
		{"1.2345", "1.2345", 0},
		{"1.2345", "1.2346", -1},
		{"10", "2", 1},
		{"-10", "-2", -1},
		{"0.5", "0.0000005", 1},
		{"-0.5", "-0.0000005", -1},
		{"1E+107", "1E+106", 1},
		{"9.99", "10", -1},
		{"1.0", "1", 0},
		{"100", "1E+2", 0},
	}
	for _, tt := range tests {
		x, y := MustParse(tt.x), MustParse(tt.y)
		require.Equal(t, tt.want, x.Cmp(y), "%s cmp %s", tt.x, tt.y)
		require.Equal(t, -tt.want, y.Cmp(x), "%s cmp %s", tt.y, tt.x)
		require.Equal(t, tt.want == 0, x.Equal(y))
	}
}

func TestInt64(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"0", 0, true},
		{"1.9", 1, true},
		{"-1.9", -1, true},
		{"0.99", 0, true},
		{"12345", 12345, true},
		{"9223372036854775807", math.MaxInt64, true},
		{"-9223372036854775808", math.MinInt64, true},
		{"9223372036854775808", 0, false},
		{"-9223372036854775809", 0, false},
		{"1E+20", 0, false},
		{"1E+107", 0, false},
	}
	for _, tt := range tests {
		got, err := MustParse(tt.in).Int64()
		if tt.ok {
			require.NoError(t, err, "Int64(%s)", tt.in)
			require.Equal(t, tt.want, got, "Int64(%s)", tt.in)
		} else {
			require.True(t, ErrOverflow.Has(err), "Int64(%s)", tt.in)
		}
	}
}

func TestFloat64(t *testing.T) {
	f, err := MustParse("1.2345").Float64()
	require.NoError(t, err)
	require.Equal(t, 1.2345, f)

	f, err = MustParse("-0.5").Float64()
	require.NoError(t, err)
	require.Equal(t, -0.5, f)

	// 1E+214 still fits a float64
	f, err = Mul(MustParse("1E+107"), MustParse("1E+107"), ToNearestEven).Float64()
	require.NoError(t, err)
	require.Equal(t, 1e214, f)

	// 1E+400 is beyond the float64 range
	_, err = PowTen(400).Float64()
	require.True(t, ErrOverflow.Has(err))
}
