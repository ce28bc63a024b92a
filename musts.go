package bigdecimal

import "fmt"

// MustAdd is like [Decimal.Add] but panics if computing error.
func (d *Decimal) MustAdd(e *Decimal) *Decimal {
	f, err := d.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", d, err))
	}
	return f
}

// MustSub is like [Decimal.Sub] but panics if computing error.
func (d *Decimal) MustSub(e *Decimal) *Decimal {
	f, err := d.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", d, err))
	}
	return f
}

// MustMul is like [Decimal.Mul] but panics if computing error.
func (d *Decimal) MustMul(e *Decimal) *Decimal {
	f, err := d.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", d, err))
	}
	return f
}

// MustFMA is like [Decimal.FMA] but panics if computing error.
func (d *Decimal) MustFMA(e, f *Decimal) *Decimal {
	g, err := d.FMA(e, f)
	if err != nil {
		panic(fmt.Sprintf("MustFMA(%v, %v) failed: %v", e, f, err))
	}
	return g
}

// MustQuo is like [Decimal.Quo] but panics if computing error.
func (d *Decimal) MustQuo(e *Decimal) *Decimal {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", d, err))
	}
	return f
}

// MustQuoContext is like [Decimal.QuoContext] but panics if computing error.
func (d *Decimal) MustQuoContext(e *Decimal, ctx Context) *Decimal {
	f, err := d.QuoContext(e, ctx)
	if err != nil {
		panic(fmt.Sprintf("MustQuoContext(%v, %v) failed: %v", d, ctx, err))
	}
	return f
}

// MustRescale is like [Decimal.Rescale] but panics if computing error.
func (d *Decimal) MustRescale(scale int32, mode RoundingMode) *Decimal {
	f, err := d.Rescale(scale, mode)
	if err != nil {
		panic(fmt.Sprintf("MustRescale(%v, %v) failed: %v", scale, mode, err))
	}
	return f
}
