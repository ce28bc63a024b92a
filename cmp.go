package bigdecimal

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Cmp compares d and e numerically, ignoring scale, and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
//
// Decimals of the same cohort, such as 2.0 and 2.00, compare equal.
func (d *Decimal) Cmp(e *Decimal) int {
	if d.scale == e.scale && d.coef.isCompact() && e.coef.isCompact() {
		return cmpInt64(d.coef.small, e.coef.small)
	}
	ds, es := d.Sign(), e.Sign()
	switch {
	case ds < es:
		return -1
	case ds > es:
		return 1
	case ds == 0:
		return 0
	}
	return ds * d.CmpAbs(e)
}

// CmpAbs compares |d| and |e| numerically, ignoring scale.
func (d *Decimal) CmpAbs(e *Decimal) int {
	switch {
	case d.IsZero():
		if e.IsZero() {
			return 0
		}
		return -1
	case e.IsZero():
		return 1
	}
	x, y := d.coef, e.coef
	if sdiff := int64(d.scale) - int64(e.scale); sdiff != 0 {
		// The adjusted exponent prec - scale locates the leading digit.
		xae := int64(d.Prec()) - int64(d.scale)
		yae := int64(e.Prec()) - int64(e.scale)
		switch {
		case xae < yae:
			return -1
		case xae > yae:
			return 1
		}
		// With equal adjusted exponents the scale difference equals the
		// precision difference, so alignment is bounded by the operand sizes.
		if sdiff < 0 {
			x = x.lsh(int(-sdiff))
		} else {
			y = y.lsh(int(sdiff))
		}
	}
	return x.cmpAbs(y)
}

func cmpInt64(x, y int64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// Equal reports whether d and e have the same unscaled value and the same scale.
// Unlike [Decimal.Cmp], it distinguishes members of a cohort:
// 2.0 and 2.00 are not equal.
func (d *Decimal) Equal(e *Decimal) bool {
	return d.scale == e.scale && d.coef.equal(e.coef)
}

// Hash returns a hash of the unscaled value and the scale of d.
// Decimals that are [Decimal.Equal] have the same hash;
// cohort members usually do not.
func (d *Decimal) Hash() uint64 {
	var hdr [5]byte
	binary.BigEndian.PutUint32(hdr[:4], uint32(d.scale))
	hdr[4] = byte(d.Sign() + 1)
	h := xxhash.New()
	_, _ = h.Write(hdr[:])
	_, _ = h.Write(d.coef.bytes())
	return h.Sum64()
}

// Min returns the numerically smaller of d and e.
// If they are numerically equal, d is returned.
func (d *Decimal) Min(e *Decimal) *Decimal {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}

// Max returns the numerically larger of d and e.
// If they are numerically equal, d is returned.
func (d *Decimal) Max(e *Decimal) *Decimal {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}
