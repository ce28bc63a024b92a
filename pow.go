package bigdecimal

import (
	"math/big"

	"github.com/pkg/errors"
)

// maxPowExponent is the largest absolute exponent accepted by Pow and PowContext.
const maxPowExponent = 999_999_999

// Pow returns the exact power d^n with scale d.Scale() × n.
// 0^0 is 1.
//
// Pow returns an error if n is outside of [0, 999999999]
// or if the scale of a nonzero result does not fit into int32.
func (d *Decimal) Pow(n int) (*Decimal, error) {
	if n < 0 || n > maxPowExponent {
		return nil, errors.Wrapf(ErrInvalidExponent, "%v^%d", d, n)
	}
	scale, err := checkScale(d.coef, int64(d.scale)*int64(n))
	if err != nil {
		return nil, err
	}
	switch {
	case n == 0:
		return One, nil
	case n == 1:
		return d, nil
	}
	if d.coef.isCompact() {
		if z, ok := pow64(d.coef.small, n); ok {
			return newDecimal(coef{small: z}, scale), nil
		}
	}
	z := new(big.Int).Exp(d.coef.bigInt(), big.NewInt(int64(n)), nil)
	return newDecimal(coefOfBig(z), scale), nil
}

// pow64 calculates x^n and checks overflow.
func pow64(x int64, n int) (int64, bool) {
	z := int64(1)
	for ; n > 0; n >>= 1 {
		var ok bool
		if n&1 != 0 {
			if z, ok = mul64(z, x); !ok {
				return 0, false
			}
		}
		if n > 1 {
			if x, ok = mul64(x, x); !ok {
				return 0, false
			}
		}
	}
	return z, true
}

// PowContext returns d^n rounded to the context precision.
// With an unlimited context it is equivalent to [Decimal.Pow].
// A negative exponent computes the reciprocal of d^|n|.
//
// The power is computed by binary exponentiation with ctx.Precision plus the
// number of digits in n plus one working digits, so the result before the final
// rounding is within two units in the last place.
//
// PowContext returns an error if |n| > 999999999, if n has more digits than
// the context precision, or if d = 0 and n < 0.
func (d *Decimal) PowContext(n int, ctx Context) (*Decimal, error) {
	if ctx.Precision == 0 {
		return d.Pow(n)
	}
	if n < -maxPowExponent || n > maxPowExponent {
		return nil, errors.Wrapf(ErrInvalidExponent, "%v^%d", d, n)
	}
	if n == 0 {
		return One, nil
	}
	mag := n
	if mag < 0 {
		mag = -mag
	}
	elength := int64(int64Prec(int64(mag)))
	if elength > ctx.prec() {
		return nil, errors.Wrapf(ErrInvalidExponent, "%v^%d: exponent has more digits than precision %d", d, n, ctx.Precision)
	}
	work := Context{Precision: uint32(ctx.prec() + elength + 1), Rounding: ctx.Rounding}
	acc := One
	seen := false
	// mag < 2^30
	for i := 29; i >= 0; i-- {
		var err error
		if seen {
			if acc, err = acc.MulContext(acc, work); err != nil {
				return nil, err
			}
		}
		if mag&(1<<i) != 0 {
			seen = true
			if acc, err = acc.MulContext(d, work); err != nil {
				return nil, err
			}
		}
	}
	if n < 0 {
		var err error
		if acc, err = One.QuoContext(acc, work); err != nil {
			return nil, err
		}
	}
	return acc.Round(ctx)
}
