package bigdecimal

import (
	"math/big"

	"github.com/pkg/errors"
)

// Sqrt returns the square root of d rounded to the context precision.
// The preferred scale of the result is d.Scale() / 2; the result has the
// preferred scale if the precision allows.
//
// With an unlimited context or [RoundUnnecessary] the root must be exact:
// Sqrt returns [ErrInexact] if it is not, or if it needs more digits than
// a nonzero context precision allows.
// Sqrt returns [ErrNegativeRadicand] if d < 0.
func (d *Decimal) Sqrt(ctx Context) (*Decimal, error) {
	switch d.Sign() {
	case -1:
		return nil, errors.Wrapf(ErrNegativeRadicand, "sqrt(%v)", d)
	case 0:
		return zeroAt(d.scale / 2), nil
	}
	preferred := int64(d.scale / 2)
	if ctx.Rounding == RoundUnnecessary || ctx.Precision == 0 {
		return d.sqrtExact(preferred, ctx)
	}
	return d.sqrtRound(preferred, ctx)
}

// sqrtExact computes a root that must be representable without rounding.
func (d *Decimal) sqrtExact(preferred int64, ctx Context) (*Decimal, error) {
	s := d.StripTrailingZeros()
	// The square of a decimal at scale k has scale 2k after stripping.
	if s.scale&1 != 0 {
		return nil, errors.Wrapf(ErrInexact, "sqrt(%v) is not exact", d)
	}
	var r *Decimal
	if s.coef.isOne() {
		r = newCompact(1, s.scale>>1)
	} else {
		x := s.coef.bigInt()
		root := new(big.Int).Sqrt(x)
		rem := new(big.Int).Sub(x, new(big.Int).Mul(root, root))
		r = newDecimal(coefOfBig(root), s.scale>>1)
		if rem.Sign() != 0 || (ctx.Precision > 0 && int64(r.Prec()) > ctx.prec()) {
			return nil, errors.Wrapf(ErrInexact, "sqrt(%v) is not exact", d)
		}
	}
	return adjustToPreferredScale(r, preferred, ctx.prec())
}

// sqrtRound computes the root with an integer square root of the
// significand scaled to at least 2p-1 digits (2p+1 for half-way modes).
// Half-way modes keep one extra digit of the root to decide the tie.
func (d *Decimal) sqrtRound(preferred int64, ctx Context) (*Decimal, error) {
	p := ctx.prec()
	mode := ctx.Rounding
	halfway := mode.isHalfway()
	extra := int64(0)
	if halfway {
		extra = 1
	}
	minWorkingPrec := 2*(p+extra) - 1
	normScale := minWorkingPrec - int64(d.Prec()) + int64(d.scale)
	normScale += normScale & 1
	workingScale := int64(d.scale) - normScale
	if _, err := checkScale(d.coef, workingScale); err != nil {
		return nil, err
	}
	// working is the significand at scale workingScale, truncated to an integer.
	working := d.coef.bigInt()
	workingIsInt := true
	switch {
	case workingScale < 0:
		working = d.coef.lsh(int(-workingScale)).bigInt()
	case workingScale > 0:
		c := d.coef.trunc(int(workingScale))
		_, k := d.coef.stripZeros(workingScale)
		workingIsInt = k == workingScale
		working = c.bigInt()
	}
	resultScale := normScale >> 1
	root := new(big.Int).Sqrt(working)
	rem := new(big.Int).Sub(working, new(big.Int).Mul(root, root))
	exact := rem.Sign() == 0 && workingIsInt
	if halfway {
		digit := new(big.Int)
		root.QuoRem(root, bigTen, digit)
		resultScale--
		switch v := digit.Int64(); {
		case v > 5:
			root.Add(root, bigOne)
		case v == 5:
			if mode == RoundHalfUp || (mode == RoundHalfEven && root.Bit(0) != 0) || !exact {
				root.Add(root, bigOne)
			}
		}
	} else if (mode == RoundUp || mode == RoundCeiling) && !exact {
		root.Add(root, bigOne)
	}
	r, err := roundCoef(coefOfBig(root), resultScale, ctx)
	if err != nil {
		return nil, err
	}
	if int64(r.scale) > preferred {
		return stripToScale(r.coef, int64(r.scale), preferred), nil
	}
	return r, nil
}
