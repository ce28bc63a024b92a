package bigdecimal

import (
	"math"
	"math/big"

	"github.com/pkg/errors"
)

// BigInt returns the integer part of d, truncating the fraction towards zero.
// The result is owned by the caller.
func (d *Decimal) BigInt() *big.Int {
	switch {
	case d.scale == 0:
		return d.coef.copyBigInt()
	case d.scale < 0:
		return d.coef.lsh(int(-int64(d.scale))).copyBigInt()
	}
	return d.coef.trunc(int(d.scale)).copyBigInt()
}

// BigIntExact is like [Decimal.BigInt] but returns [ErrInexact] if the
// fractional part of d is not zero.
func (d *Decimal) BigIntExact() (*big.Int, error) {
	if !d.IsInt() {
		return nil, errors.Wrapf(ErrInexact, "%v has a fractional part", d)
	}
	return d.BigInt(), nil
}

// Int64 returns the integer part of d, truncated towards zero, reduced to its
// low-order 64 bits in two's complement like a Go integer conversion.
// Use [Decimal.Int64Exact] to detect overflow.
func (d *Decimal) Int64() int64 {
	if d.coef.isCompact() && d.scale == 0 {
		return d.coef.small
	}
	// A scale of -64 or less makes the integer a multiple of 2^64.
	if d.IsZero() || d.fractionOnly() || d.scale <= -64 {
		return 0
	}
	b := d.BigInt()
	low := new(big.Int).And(new(big.Int).Abs(b), maxUint64).Uint64()
	v := int64(low)
	if b.Sign() < 0 {
		v = -v
	}
	return v
}

var maxUint64 = new(big.Int).SetUint64(math.MaxUint64)

// fractionOnly reports whether a nonzero d has no integer digits.
func (d *Decimal) fractionOnly() bool {
	return int64(d.Prec()) <= int64(d.scale)
}

// Int64Exact returns d as int64.
//
// Int64Exact returns an error if:
//   - d has a nonzero fractional part ([ErrInexact]);
//   - d is outside of the int64 range ([ErrOverflow]).
func (d *Decimal) Int64Exact() (int64, error) {
	if d.coef.isCompact() && d.scale == 0 {
		return d.coef.small, nil
	}
	if d.IsZero() {
		return 0, nil
	}
	if d.fractionOnly() {
		return 0, errors.Wrapf(ErrInexact, "%v has a fractional part", d)
	}
	// More than 19 integer digits never fit.
	if int64(d.Prec())-int64(d.scale) > 19 {
		return 0, errors.Wrapf(ErrOverflow, "%v does not fit into int64", d)
	}
	n, err := d.Rescale(0, RoundUnnecessary)
	if err != nil {
		return 0, errors.Wrapf(err, "%v has a fractional part", d)
	}
	if n.coef.isCompact() {
		return n.coef.small, nil
	}
	if n.coef.big.IsInt64() {
		return n.coef.big.Int64(), nil
	}
	return 0, errors.Wrapf(ErrOverflow, "%v does not fit into int64", d)
}

// Int32 is like [Decimal.Int64] but keeps the low-order 32 bits.
func (d *Decimal) Int32() int32 {
	return int32(d.Int64())
}

// Int32Exact is like [Decimal.Int64Exact] but for int32.
func (d *Decimal) Int32Exact() (int32, error) {
	v, err := d.intExact(math.MinInt32, math.MaxInt32, "int32")
	return int32(v), err
}

// Int16Exact is like [Decimal.Int64Exact] but for int16.
func (d *Decimal) Int16Exact() (int16, error) {
	v, err := d.intExact(math.MinInt16, math.MaxInt16, "int16")
	return int16(v), err
}

// Int8Exact is like [Decimal.Int64Exact] but for int8.
func (d *Decimal) Int8Exact() (int8, error) {
	v, err := d.intExact(math.MinInt8, math.MaxInt8, "int8")
	return int8(v), err
}

func (d *Decimal) intExact(lo, hi int64, typ string) (int64, error) {
	v, err := d.Int64Exact()
	if err != nil {
		if errors.Is(err, ErrOverflow) {
			return 0, errors.Wrapf(ErrOverflow, "%v does not fit into %s", d, typ)
		}
		return 0, err
	}
	if v < lo || v > hi {
		return 0, errors.Wrapf(ErrOverflow, "%v does not fit into %s", d, typ)
	}
	return v, nil
}
