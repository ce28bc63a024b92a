package bigdecimal

import (
	"math"
	"math/big"
)

// quoRound64 calculates x / y rounded according to the mode.
func quoRound64(x, y int64, mode RoundingMode) (int64, error) {
	q, r := x/y, x%y
	if r == 0 {
		return q, nil
	}
	return adjustQuo64(q, r, x, y, mode)
}

// adjustQuo64 applies the rounding mode to the truncated quotient q of x / y
// with the nonzero remainder r.
func adjustQuo64(q, r, x, y int64, mode RoundingMode) (int64, error) {
	qsign := 1
	if (x < 0) != (y < 0) {
		qsign = -1
	}
	// 2|r| < 2|y| <= 2^64, so the doubled remainder fits into uint64.
	half := 0
	switch rr, yy := 2*uabs(r), uabs(y); {
	case rr < yy:
		half = -1
	case rr > yy:
		half = 1
	}
	inc, err := mode.needIncrement(qsign, half, q&1 != 0)
	if err != nil {
		return 0, err
	}
	if inc {
		q += int64(qsign)
	}
	return q, nil
}

// quoRoundBig calculates x / y rounded according to the mode.
// The arguments are not modified.
func quoRoundBig(x, y *big.Int, mode RoundingMode) (*big.Int, error) {
	q, r := new(big.Int).QuoRem(x, y, new(big.Int))
	if r.Sign() == 0 {
		return q, nil
	}
	if err := adjustQuoBig(q, r, x, y, mode); err != nil {
		return nil, err
	}
	return q, nil
}

// adjustQuoBig applies the rounding mode to the truncated quotient q of x / y
// with the nonzero remainder r.
// It modifies q and r.
func adjustQuoBig(q, r, x, y *big.Int, mode RoundingMode) error {
	qsign := x.Sign() * y.Sign()
	half := r.Lsh(r, 1).CmpAbs(y)
	inc, err := mode.needIncrement(qsign, half, q.Bit(0) != 0)
	if err != nil {
		return err
	}
	if inc {
		q.Add(q, big.NewInt(int64(qsign)))
	}
	return nil
}

// checkScale converts a scale computed in int64 to int32.
// A zero value saturates to the nearest representable scale.
func checkScale(c coef, scale int64) (int32, error) {
	if scale >= math.MinInt32 && scale <= math.MaxInt32 {
		return int32(scale), nil
	}
	if c.sign() == 0 {
		if scale > 0 {
			return math.MaxInt32, nil
		}
		return math.MinInt32, nil
	}
	return 0, newScaleError(scale)
}

// saturateScale converts a preferred scale to int32 by clamping it.
func saturateScale(scale int64) int32 {
	switch {
	case scale > math.MaxInt32:
		return math.MaxInt32
	case scale < math.MinInt32:
		return math.MinInt32
	}
	return int32(scale)
}

// roundCoef builds a decimal from an exact significand and scale reducing
// it to at most ctx.Precision significant digits.
// A division can carry into a new leading digit (999 -> 1000),
// so the digit count is re-evaluated after every step.
func roundCoef(c coef, scale int64, ctx Context) (*Decimal, error) {
	prec := c.prec()
	p := ctx.prec()
	if p > 0 {
		for drop := int64(prec) - p; drop > 0; drop = int64(prec) - p {
			var err error
			c, err = c.rsh(int(drop), ctx.Rounding)
			if err != nil {
				return nil, err
			}
			scale -= drop
			prec = c.prec()
		}
	}
	s, err := checkScale(c, scale)
	if err != nil {
		return nil, err
	}
	return newDecimalPrec(c, s, prec), nil
}

// stripToScale removes trailing zeros from c while the scale stays above
// the preferred scale.
func stripToScale(c coef, scale, preferred int64) *Decimal {
	preferred = max(preferred, math.MinInt32)
	if scale > preferred {
		var k int64
		c, k = c.stripZeros(scale - preferred)
		scale -= k
	}
	// scale only decreased towards a preferred scale within the int32 range.
	return newDecimal(c, saturateScale(scale))
}

// Round returns d reduced to at most ctx.Precision significant digits.
// If the context is unlimited or d already fits, d is returned unchanged.
//
// Round returns an error if the rounding mode is [RoundUnnecessary] and
// nonzero digits would be discarded, or if the resulting scale overflows.
func (d *Decimal) Round(ctx Context) (*Decimal, error) {
	if ctx.Precision == 0 || int64(d.Prec()) <= ctx.prec() {
		return d, nil
	}
	return roundCoef(d.coef, int64(d.scale), ctx)
}

// Rescale returns a decimal whose scale is the given one and whose value is
// d rounded, if necessary, according to the mode.
// Increasing the scale is always exact; decreasing it discards digits.
//
// Rescale returns an error if:
//   - the mode is [RoundUnnecessary] and nonzero digits would be discarded;
//   - increasing the scale needs more significant digits than a scale can count.
func (d *Decimal) Rescale(scale int32, mode RoundingMode) (*Decimal, error) {
	if scale == d.scale {
		return d, nil
	}
	if d.coef.sign() == 0 {
		return zeroAt(scale), nil
	}
	if scale > d.scale {
		raise := int64(scale) - int64(d.scale)
		if int64(d.Prec())+raise > math.MaxInt32 {
			return nil, newScaleError(int64(d.Prec()) + raise)
		}
		return newDecimalPrec(d.coef.lsh(int(raise)), scale, d.Prec()+int(raise)), nil
	}
	c, err := d.coef.rsh(int(int64(d.scale)-int64(scale)), mode)
	if err != nil {
		return nil, err
	}
	return newDecimal(c, scale), nil
}
