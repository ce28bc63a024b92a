package interop

import (
	"math"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/inf.v0"

	"github.com/govalues/bigdecimal"
)

var decimalComparer = cmp.Comparer(func(x, y *bigdecimal.Decimal) bool {
	return x.Equal(y)
})

var roundTripValues = []string{
	"0",
	"0.00",
	"0E+3",
	"1",
	"-1",
	"1.5",
	"-123.456",
	"1E+10",
	"1.23E-7",
	"9223372036854775807",
	"-9223372036854775808",
	"123456789012345678901234567890.12345",
	"-123456789012345678901234567890E+20",
	"1E-2147483647",
	"1E+2147483647",
}

func TestAPD(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, s := range roundTripValues {
			d := bigdecimal.MustParse(s)
			x, err := ToAPD(d)
			require.NoError(t, err, s)
			assert.Equal(t, d.String(), x.String(), s)
			got, err := FromAPD(x)
			require.NoError(t, err, s)
			if diff := cmp.Diff(d, got, decimalComparer); diff != "" {
				t.Errorf("FromAPD(ToAPD(%q)) mismatch (-want +got):\n%s", s, diff)
			}
		}
	})

	t.Run("from apd", func(t *testing.T) {
		tests := []struct {
			x    *apd.Decimal
			want string
		}{
			{apd.New(-123, -2), "-1.23"},
			{apd.New(1, 3), "1E+3"},
			{apd.New(0, -2), "0.00"},
			{&apd.Decimal{Negative: true, Exponent: -2}, "0.00"},
		}
		for _, tt := range tests {
			got, err := FromAPD(tt.x)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := ToAPD(bigdecimal.New(1, math.MinInt32))
		assert.ErrorIs(t, err, bigdecimal.ErrScaleOverflow)

		_, err = FromAPD(apd.New(1, math.MinInt32))
		assert.ErrorIs(t, err, bigdecimal.ErrScaleOverflow)

		for _, form := range []apd.Form{apd.Infinite, apd.NaN, apd.NaNSignaling} {
			_, err = FromAPD(&apd.Decimal{Form: form})
			assert.ErrorIs(t, err, bigdecimal.ErrInvalidArgument)
		}
	})

	t.Run("arithmetic", func(t *testing.T) {
		ctx := apd.BaseContext.WithPrecision(5)
		ctx.Rounding = apd.RoundHalfUp
		x, err := ToAPD(bigdecimal.MustParse("1"))
		require.NoError(t, err)
		y, err := ToAPD(bigdecimal.MustParse("3"))
		require.NoError(t, err)
		q := new(apd.Decimal)
		_, err = ctx.Quo(q, x, y)
		require.NoError(t, err)
		got, err := FromAPD(q)
		require.NoError(t, err)
		want, err := bigdecimal.One.QuoContext(bigdecimal.MustParse("3"), bigdecimal.NewContext(5, bigdecimal.RoundHalfUp))
		require.NoError(t, err)
		assert.True(t, want.Equal(got), "apd %v, bigdecimal %v", got, want)
	})
}

func TestInf(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, s := range roundTripValues {
			d := bigdecimal.MustParse(s)
			x, err := ToInf(d)
			require.NoError(t, err, s)
			assert.Zero(t, d.Unscaled().Cmp(x.UnscaledBig()), s)
			assert.Equal(t, inf.Scale(d.Scale()), x.Scale(), s)
			got, err := FromInf(x)
			require.NoError(t, err, s)
			if diff := cmp.Diff(d, got, decimalComparer); diff != "" {
				t.Errorf("FromInf(ToInf(%q)) mismatch (-want +got):\n%s", s, diff)
			}
		}
	})

	t.Run("from inf", func(t *testing.T) {
		got, err := FromInf(inf.NewDec(-123, 2))
		require.NoError(t, err)
		assert.Equal(t, "-1.23", got.String())

		got, err = FromInf(inf.NewDec(5, -3))
		require.NoError(t, err)
		assert.Equal(t, "5E+3", got.String())
	})
}

func TestShopspring(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, s := range roundTripValues {
			d := bigdecimal.MustParse(s)
			x, err := ToShopspring(d)
			require.NoError(t, err, s)
			assert.Equal(t, -d.Scale(), x.Exponent(), s)
			assert.Zero(t, d.Unscaled().Cmp(x.Coefficient()), s)
			got, err := FromShopspring(x)
			require.NoError(t, err, s)
			if diff := cmp.Diff(d, got, decimalComparer); diff != "" {
				t.Errorf("FromShopspring(ToShopspring(%q)) mismatch (-want +got):\n%s", s, diff)
			}
		}
	})

	t.Run("from shopspring", func(t *testing.T) {
		got, err := FromShopspring(decimal.New(-123, -2))
		require.NoError(t, err)
		assert.Equal(t, "-1.23", got.String())

		got, err = FromShopspring(decimal.RequireFromString("0.010"))
		require.NoError(t, err)
		assert.Equal(t, "0.010", got.String())
	})

	t.Run("error", func(t *testing.T) {
		_, err := ToShopspring(bigdecimal.New(1, math.MinInt32))
		assert.ErrorIs(t, err, bigdecimal.ErrScaleOverflow)

		_, err = FromShopspring(decimal.New(1, math.MinInt32))
		assert.ErrorIs(t, err, bigdecimal.ErrScaleOverflow)
	})
}
