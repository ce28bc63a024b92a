package bigdecimal

import (
	"math"

	"github.com/pkg/errors"
)

// checkDivisor validates the operands of a division.
func checkDivisor(d, e *Decimal) error {
	if e.IsZero() {
		if d.IsZero() {
			return ErrDivisionUndefined
		}
		return ErrDivisionByZero
	}
	return nil
}

// exactQuoPrec bounds the number of digits of an exact quotient x / y.
// A terminating quotient has no more than prec(x) + ceil(10 × prec(y) / 3) digits.
func exactQuoPrec(xprec, yprec int) int64 {
	return min(int64(xprec)+(10*int64(yprec)+2)/3, math.MaxUint32)
}

// Quo returns the exact quotient d / e.
// The preferred scale of the result is d.Scale() - e.Scale();
// the result has the preferred scale unless more digits are needed
// to represent the quotient exactly.
//
// Quo returns an error if:
//   - the divisor is 0 ([ErrDivisionByZero], [ErrDivisionUndefined] for 0 / 0);
//   - the quotient has no finite decimal expansion ([ErrNonTerminating]).
func (d *Decimal) Quo(e *Decimal) (*Decimal, error) {
	if err := checkDivisor(d, e); err != nil {
		return nil, err
	}
	preferred := saturateScale(int64(d.scale) - int64(e.scale))
	if d.IsZero() {
		return zeroAt(preferred), nil
	}
	ctx := Context{Precision: uint32(exactQuoPrec(d.Prec(), e.Prec())), Rounding: RoundUnnecessary}
	q, err := d.QuoContext(e, ctx)
	if err != nil {
		if errors.Is(err, ErrInexact) {
			return nil, errors.Wrapf(ErrNonTerminating, "%v / %v", d, e)
		}
		return nil, err
	}
	if preferred > q.scale {
		return q.Rescale(preferred, RoundUnnecessary)
	}
	return q, nil
}

// QuoContext returns d / e rounded to the context precision.
// With an unlimited context it is equivalent to [Decimal.Quo].
// An exact quotient is returned with the scale closest to
// d.Scale() - e.Scale() that represents it.
func (d *Decimal) QuoContext(e *Decimal, ctx Context) (*Decimal, error) {
	if ctx.Precision == 0 {
		return d.Quo(e)
	}
	if err := checkDivisor(d, e); err != nil {
		return nil, err
	}
	preferred := int64(d.scale) - int64(e.scale)
	if d.IsZero() {
		return zeroAt(saturateScale(preferred)), nil
	}
	xprec, yprec := int64(d.Prec()), int64(e.Prec())
	p := ctx.prec()

	// Choose k so that |x| × 10^k / |y| has exactly p integer digits.
	// With k = p + prec(y) - prec(x) the ratio lies in (10^(p-1), 10^(p+1));
	// it reaches 10^p iff x and y aligned to the same digit count satisfy |x| >= |y|.
	k := p + yprec - xprec
	xa, ya := d.coef, e.coef
	if xprec < yprec {
		xa = xa.lsh(int(yprec - xprec))
	} else {
		ya = ya.lsh(int(xprec - yprec))
	}
	if xa.cmpAbs(ya) >= 0 {
		k--
	}
	x, y := d.coef, e.coef
	if k >= 0 {
		x = x.lsh(int(k))
	} else {
		y = y.lsh(int(-k))
	}
	q, exact, err := x.quo(y, ctx.Rounding)
	if err != nil {
		return nil, err
	}
	scale := preferred + k
	if exact {
		q, n := q.stripZeros(max(scale-preferred, 0))
		return roundCoef(q, scale-n, ctx)
	}
	// Rounding may have carried into a (p+1)-th digit.
	return roundCoef(q, scale, ctx)
}

// QuoScale returns d / e rounded according to the mode to the given scale.
func (d *Decimal) QuoScale(e *Decimal, scale int32, mode RoundingMode) (*Decimal, error) {
	if err := checkDivisor(d, e); err != nil {
		return nil, err
	}
	// q = x × 10^(scale + ys - xs) / y
	x, y := d.coef, e.coef
	shift := int64(scale) + int64(e.scale) - int64(d.scale)
	if shift > 0 {
		x = x.lsh(int(shift))
	} else {
		y = y.lsh(int(-shift))
	}
	q, _, err := x.quo(y, mode)
	if err != nil {
		return nil, err
	}
	return newDecimal(q, scale), nil
}

// QuoMode returns d / e rounded according to the mode to the scale of d.
func (d *Decimal) QuoMode(e *Decimal, mode RoundingMode) (*Decimal, error) {
	return d.QuoScale(e, d.scale, mode)
}

// QuoToIntegralValue returns the integer part of the exact quotient d / e,
// that is the quotient truncated towards zero.
// The preferred scale of the result is d.Scale() - e.Scale().
func (d *Decimal) QuoToIntegralValue(e *Decimal) (*Decimal, error) {
	if err := checkDivisor(d, e); err != nil {
		return nil, err
	}
	preferred := int64(d.scale) - int64(e.scale)
	if d.CmpAbs(e) < 0 {
		return zeroAt(saturateScale(preferred)), nil
	}
	if d.IsZero() {
		return zeroAt(saturateScale(preferred)), nil
	}
	// Enough digits for the integer part of the quotient plus some fraction digits.
	maxDigits := exactQuoPrec(d.Prec(), e.Prec()) + abs64(int64(d.scale)-int64(e.scale)) + 2
	ctx := Context{Precision: uint32(min(maxDigits, math.MaxInt32)), Rounding: RoundDown}
	q, err := d.QuoContext(e, ctx)
	if err != nil {
		return nil, err
	}
	if q.scale > 0 {
		q, err = q.Rescale(0, RoundDown)
		if err != nil {
			return nil, err
		}
		q = stripToScale(q.coef, int64(q.scale), preferred)
	}
	if int64(q.scale) < preferred {
		return q.Rescale(saturateScale(preferred), RoundUnnecessary)
	}
	return q, nil
}

// QuoToIntegralValueContext is like [Decimal.QuoToIntegralValue] but the
// integral quotient may have at most ctx.Precision digits.
// The rounding mode of the context is not used.
//
// It returns [ErrDivisionImpossible] if the integral quotient needs more digits.
func (d *Decimal) QuoToIntegralValueContext(e *Decimal, ctx Context) (*Decimal, error) {
	if ctx.Precision == 0 || d.CmpAbs(e) < 0 {
		return d.QuoToIntegralValue(e)
	}
	preferred := int64(d.scale) - int64(e.scale)
	q, err := d.QuoContext(e, Context{Precision: ctx.Precision, Rounding: RoundDown})
	if err != nil {
		return nil, err
	}
	switch {
	case q.scale < 0:
		// The truncated quotient lost integer digits unless it is
		// within one divisor of the dividend.
		p, err := q.Mul(e)
		if err != nil {
			return nil, err
		}
		r, err := d.Sub(p)
		if err != nil {
			return nil, err
		}
		if r.CmpAbs(e) >= 0 {
			return nil, errors.Wrapf(ErrDivisionImpossible, "integral part of %v / %v exceeds %d digits", d, e, ctx.Precision)
		}
	case q.scale > 0:
		q, err = q.Rescale(0, RoundDown)
		if err != nil {
			return nil, err
		}
	}
	if preferred > int64(q.scale) {
		if diff := ctx.prec() - int64(q.Prec()); diff > 0 {
			return q.Rescale(saturateScale(int64(q.scale)+min(diff, preferred-int64(q.scale))), RoundUnnecessary)
		}
		return q, nil
	}
	return stripToScale(q.coef, int64(q.scale), preferred), nil
}

// Rem returns the remainder d - e × d.QuoToIntegralValue(e).
// The result is exact and has the sign of d.
func (d *Decimal) Rem(e *Decimal) (*Decimal, error) {
	_, r, err := d.QuoRem(e)
	return r, err
}

// RemContext is like [Decimal.Rem] but the integral quotient is computed
// with [Decimal.QuoToIntegralValueContext].
// The remainder itself is always exact.
func (d *Decimal) RemContext(e *Decimal, ctx Context) (*Decimal, error) {
	_, r, err := d.QuoRemContext(e, ctx)
	return r, err
}

// QuoRem returns the integral quotient q = d.QuoToIntegralValue(e)
// and the remainder r = d - e × q.
func (d *Decimal) QuoRem(e *Decimal) (q, r *Decimal, err error) {
	q, err = d.QuoToIntegralValue(e)
	if err != nil {
		return nil, nil, err
	}
	r, err = remainder(d, e, q)
	if err != nil {
		return nil, nil, err
	}
	return q, r, nil
}

// QuoRemContext is like [Decimal.QuoRem] but the integral quotient is computed
// with [Decimal.QuoToIntegralValueContext].
func (d *Decimal) QuoRemContext(e *Decimal, ctx Context) (q, r *Decimal, err error) {
	q, err = d.QuoToIntegralValueContext(e, ctx)
	if err != nil {
		return nil, nil, err
	}
	r, err = remainder(d, e, q)
	if err != nil {
		return nil, nil, err
	}
	return q, r, nil
}

func remainder(d, e, q *Decimal) (*Decimal, error) {
	p, err := q.Mul(e)
	if err != nil {
		return nil, err
	}
	return d.Sub(p)
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
