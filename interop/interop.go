// Package interop converts decimals between bigdecimal and other Go decimal
// packages without loss: every conversion keeps both the unscaled value and the
// scale (or its negation, the exponent).
//
// Supported packages are github.com/cockroachdb/apd/v3, gopkg.in/inf.v0 and
// github.com/shopspring/decimal.
package interop

import (
	"math"

	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/inf.v0"

	"github.com/govalues/bigdecimal"
)

// exponentOf converts a scale to an exponent.
// The smallest int32 scale has no int32 exponent.
func exponentOf(d *bigdecimal.Decimal) (int32, error) {
	if d.Scale() == math.MinInt32 {
		return 0, errors.Wrapf(bigdecimal.ErrScaleOverflow, "exponent of %v", d)
	}
	return -d.Scale(), nil
}

// scaleOf converts an exponent to a scale.
func scaleOf(exp int32) (int32, error) {
	if exp == math.MinInt32 {
		return 0, errors.Wrapf(bigdecimal.ErrScaleOverflow, "exponent %d", exp)
	}
	return -exp, nil
}

// ToAPD converts d to an apd decimal with coefficient |unscaled| and
// exponent -scale.
func ToAPD(d *bigdecimal.Decimal) (*apd.Decimal, error) {
	exp, err := exponentOf(d)
	if err != nil {
		return nil, err
	}
	coeff := new(apd.BigInt).SetMathBigInt(d.Unscaled())
	return apd.NewWithBigInt(coeff, exp), nil
}

// FromAPD converts a finite apd decimal.
// A negative zero becomes zero.
func FromAPD(x *apd.Decimal) (*bigdecimal.Decimal, error) {
	if x.Form != apd.Finite {
		return nil, errors.Wrapf(bigdecimal.ErrInvalidArgument, "%v is not finite", x)
	}
	scale, err := scaleOf(x.Exponent)
	if err != nil {
		return nil, err
	}
	b := x.Coeff.MathBigInt()
	if x.Negative {
		b.Neg(b)
	}
	return bigdecimal.NewFromBigInt(b, scale), nil
}

// ToInf converts d to an inf decimal.
// Both packages use the same unscaled value and scale, so the conversion goes
// through their common binary encoding.
func ToInf(d *bigdecimal.Decimal) (*inf.Dec, error) {
	buf, err := d.MarshalBinary()
	if err != nil {
		return nil, err
	}
	x := new(inf.Dec)
	if err := x.GobDecode(buf); err != nil {
		return nil, errors.Wrapf(err, "converting %v to inf.Dec", d)
	}
	return x, nil
}

// FromInf converts an inf decimal.
func FromInf(x *inf.Dec) (*bigdecimal.Decimal, error) {
	buf, err := x.GobEncode()
	if err != nil {
		return nil, err
	}
	d := new(bigdecimal.Decimal)
	if err := d.UnmarshalBinary(buf); err != nil {
		return nil, errors.Wrapf(err, "converting %v from inf.Dec", x)
	}
	return d, nil
}

// ToShopspring converts d to a shopspring decimal.
func ToShopspring(d *bigdecimal.Decimal) (decimal.Decimal, error) {
	exp, err := exponentOf(d)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromBigInt(d.Unscaled(), exp), nil
}

// FromShopspring converts a shopspring decimal.
func FromShopspring(x decimal.Decimal) (*bigdecimal.Decimal, error) {
	scale, err := scaleOf(x.Exponent())
	if err != nil {
		return nil, err
	}
	return bigdecimal.NewFromBigInt(x.Coefficient(), scale), nil
}
