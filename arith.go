package bigdecimal

// Add returns the exact sum d + e.
// The scale of the result is max(d.Scale(), e.Scale()).
func (d *Decimal) Add(e *Decimal) (*Decimal, error) {
	c, scale := addCoef(d.coef, int64(d.scale), e.coef, int64(e.scale))
	return newDecimal(c, int32(scale)), nil
}

// addCoef aligns both operands to the larger scale and adds them.
func addCoef(x coef, xs int64, y coef, ys int64) (coef, int64) {
	switch {
	case xs < ys:
		x = x.lsh(int(ys - xs))
		xs = ys
	case xs > ys:
		y = y.lsh(int(xs - ys))
	}
	return x.add(y), xs
}

// AddContext returns d + e rounded to the context precision.
// With an unlimited context it is equivalent to [Decimal.Add].
//
// If one of the operands is zero, the result is the other operand rounded
// and then rescaled as close to max(d.Scale(), e.Scale()) as the precision allows.
func (d *Decimal) AddContext(e *Decimal, ctx Context) (*Decimal, error) {
	if ctx.Precision == 0 {
		return d.Add(e)
	}
	dz, ez := d.IsZero(), e.IsZero()
	if dz || ez {
		preferred := max(d.scale, e.scale)
		if dz && ez {
			return zeroAt(preferred), nil
		}
		r := d
		if dz {
			r = e
		}
		r, err := r.Round(ctx)
		if err != nil {
			return nil, err
		}
		return adjustToPreferredScale(r, int64(preferred), ctx.prec())
	}
	x, xs := d.coef, int64(d.scale)
	y, ys := e.coef, int64(e.scale)
	switch {
	case xs < ys:
		y, ys = preAlign(x, xs, d.Prec(), y, ys, e.Prec(), ctx)
	case xs > ys:
		x, xs = preAlign(y, ys, e.Prec(), x, xs, d.Prec(), ctx)
	}
	c, scale := addCoef(x, xs, y, ys)
	return roundCoef(c, scale, ctx)
}

// preAlign returns the operand with the larger scale (small) unchanged
// unless all of its digits lie below the rounding position of the sum.
// In that case it is replaced by a signed unit just below that position,
// which keeps the rounding outcome and bounds the alignment cost.
// big has the smaller scale.
func preAlign(big coef, bigScale int64, bigPrec int, small coef, smallScale int64, smallPrec int, ctx Context) (coef, int64) {
	estResultUlpScale := bigScale - int64(bigPrec) + ctx.prec()
	smallHighDigitPos := smallScale - int64(smallPrec) + 1
	if smallHighDigitPos > bigScale+2 && smallHighDigitPos > estResultUlpScale+2 {
		return coefOf(int64(small.sign())), max(bigScale, estResultUlpScale) + 3
	}
	return small, smallScale
}

// Sub returns the exact difference d - e.
// The scale of the result is max(d.Scale(), e.Scale()).
func (d *Decimal) Sub(e *Decimal) (*Decimal, error) {
	return d.Add(e.Neg())
}

// SubContext returns d - e rounded to the context precision.
func (d *Decimal) SubContext(e *Decimal, ctx Context) (*Decimal, error) {
	return d.AddContext(e.Neg(), ctx)
}

// Mul returns the exact product d × e.
// The scale of the result is d.Scale() + e.Scale().
//
// Mul returns an error if the scale of a nonzero product does not fit into int32.
func (d *Decimal) Mul(e *Decimal) (*Decimal, error) {
	c := d.coef.mul(e.coef)
	scale, err := checkScale(c, int64(d.scale)+int64(e.scale))
	if err != nil {
		return nil, err
	}
	return newDecimal(c, scale), nil
}

// MulContext returns d × e rounded to the context precision.
func (d *Decimal) MulContext(e *Decimal, ctx Context) (*Decimal, error) {
	if ctx.Precision == 0 {
		return d.Mul(e)
	}
	c := d.coef.mul(e.coef)
	scale := int64(d.scale) + int64(e.scale)
	if _, err := checkScale(c, scale); err != nil {
		return nil, err
	}
	return roundCoef(c, scale, ctx)
}

// FMA returns the exact fused multiply-addition d × e + f.
// The scale of the result is max(d.Scale() + e.Scale(), f.Scale()).
//
// FMA returns an error if the scale of a nonzero product does not fit into int32.
func (d *Decimal) FMA(e, f *Decimal) (*Decimal, error) {
	return d.FMAContext(e, f, Unlimited)
}

// FMAContext returns d × e + f rounded to the context precision.
// The product is not rounded, so the result is rounded only once.
func (d *Decimal) FMAContext(e, f *Decimal, ctx Context) (*Decimal, error) {
	x, xs := d.coef.mul(e.coef), int64(d.scale)+int64(e.scale)
	s, err := checkScale(x, xs)
	if err != nil {
		return nil, err
	}
	xs = int64(s)
	y, ys := f.coef, int64(f.scale)
	if ctx.Precision > 0 && x.sign() != 0 && y.sign() != 0 {
		switch {
		case xs < ys:
			y, ys = preAlign(x, xs, x.prec(), y, ys, f.Prec(), ctx)
		case xs > ys:
			x, xs = preAlign(y, ys, f.Prec(), x, xs, x.prec(), ctx)
		}
	}
	c, scale := addCoef(x, xs, y, ys)
	return roundCoef(c, scale, ctx)
}

// adjustToPreferredScale moves the scale of d towards the preferred one
// without changing its value: trailing zeros are stripped when the scale is
// too large and appended, within the precision budget, when it is too small.
// A zero budget means unlimited precision.
func adjustToPreferredScale(d *Decimal, preferred, budget int64) (*Decimal, error) {
	scale := int64(d.scale)
	switch {
	case scale > preferred:
		return stripToScale(d.coef, scale, preferred), nil
	case scale < preferred:
		target := preferred
		if budget > 0 {
			target = min(preferred, scale+budget-int64(d.Prec()))
		}
		if target <= scale {
			return d, nil
		}
		return d.Rescale(saturateScale(target), RoundUnnecessary)
	}
	return d, nil
}
