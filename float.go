package bigdecimal

import (
	"math"
	"math/big"
	"math/bits"
	"strconv"

	"github.com/pkg/errors"
)

// NewFromFloat64 returns the exact decimal value of the binary floating-point
// number f.
// For example, 0.1 converts to 0.1000000000000000055511151231257827021181583404541015625.
// Use [NewFromFloat64Shortest] to get the shortest decimal that converts back to f.
//
// NewFromFloat64 returns an error if f is NaN or an infinity.
func NewFromFloat64(f float64) (*Decimal, error) {
	return NewFromFloat64Context(f, Unlimited)
}

// NewFromFloat32 is like [NewFromFloat64] but for float32.
func NewFromFloat32(f float32) (*Decimal, error) {
	return NewFromFloat64(float64(f))
}

// NewFromFloat64Context is like [NewFromFloat64] but rounds the result to the
// context precision.
func NewFromFloat64Context(f float64, ctx Context) (*Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errors.Wrapf(ErrInvalidArgument, "%v is not finite", f)
	}
	raw := math.Float64bits(f)
	neg := raw>>63 != 0
	exp := int((raw >> 52) & 0x7ff)
	mant := raw & (1<<52 - 1)
	if exp == 0 {
		// Subnormal.
		mant <<= 1
	} else {
		mant |= 1 << 52
	}
	exp -= 1075
	if mant == 0 {
		return Zero, nil
	}
	tz := bits.TrailingZeros64(mant)
	mant >>= tz
	exp += tz
	sm := int64(mant)
	if neg {
		sm = -sm
	}
	var (
		c     coef
		scale int64
	)
	switch {
	case exp == 0:
		c = coefOf(sm)
	case exp < 0:
		// m × 2^exp = m × 5^(-exp) × 10^exp
		b := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-exp)), nil)
		c = coefOfBig(b.Mul(b, big.NewInt(sm)))
		scale = int64(-exp)
	default:
		c = coefOfBig(new(big.Int).Lsh(big.NewInt(sm), uint(exp)))
	}
	return roundCoef(c, scale, ctx)
}

// NewFromFloat64Shortest returns the decimal with the fewest digits that
// converts back to f, as formatted by [strconv.FormatFloat] with precision -1.
// For example, 0.1 converts to 0.1.
//
// NewFromFloat64Shortest returns an error if f is NaN or an infinity.
func NewFromFloat64Shortest(f float64) (*Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errors.Wrapf(ErrInvalidArgument, "%v is not finite", f)
	}
	return Parse(strconv.FormatFloat(f, 'g', -1, 64))
}

// floatFormat describes a binary floating-point format.
type floatFormat struct {
	prec int   // significand bits, including the implicit bit
	qmin int64 // exponent of the smallest subnormal
	qmax int64 // exponent of the least significant bit of the largest finite value
}

var (
	float64Format = floatFormat{prec: 53, qmin: -1074, qmax: 971}
	float32Format = floatFormat{prec: 24, qmin: -149, qmax: 104}
)

// log2of10 is log2(10) rounded to the nearest float64.
const log2of10 = 3.321928094887362

var float64Pow10 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10, 1e11,
	1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

var float32Pow10 = [...]float32{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
}

// Float64 returns the float64 nearest to d, rounding half to even.
// Values too small in magnitude become a zero of the same sign and
// values too large become an infinity of the same sign.
func (d *Decimal) Float64() float64 {
	if d.coef.isCompact() {
		x := d.coef.small
		v := float64(x)
		if d.scale == 0 {
			return v
		}
		// Both v and the power of ten are exact, so the result is rounded once.
		if uabs(x) < 1<<53 {
			switch s := d.scale; {
			case s > 0 && int(s) < len(float64Pow10):
				return v / float64Pow10[s]
			case s < 0 && s > -int32(len(float64Pow10)):
				return v * float64Pow10[-s]
			}
		}
	}
	sig, exp, sign, special := d.floatParts(float64Format)
	if special {
		return sign
	}
	return sign * math.Ldexp(float64(sig), exp)
}

// Float32 returns the float32 nearest to d, rounding half to even.
// Values too small in magnitude become a zero of the same sign and
// values too large become an infinity of the same sign.
func (d *Decimal) Float32() float32 {
	if d.coef.isCompact() {
		x := d.coef.small
		v := float32(x)
		if d.scale == 0 {
			return v
		}
		if uabs(x) < 1<<24 {
			switch s := d.scale; {
			case s > 0 && int(s) < len(float32Pow10):
				return v / float32Pow10[s]
			case s < 0 && s > -int32(len(float32Pow10)):
				return v * float32Pow10[-s]
			}
		}
	}
	sig, exp, sign, special := d.floatParts(float32Format)
	if special {
		return float32(sign)
	}
	// sig has at most 27 bits, so sig × 2^exp is an exact float64 and
	// the conversion to float32 is the only rounding.
	f := math.Ldexp(float64(sig), exp)
	if f >= float32Cutoff {
		return float32(math.Copysign(math.Inf(1), sign))
	}
	return float32(sign * f)
}

// float32Cutoff is the smallest magnitude that rounds to a float32 infinity.
const float32Cutoff = (1<<24 - 0.5) * (1 << 104)

// floatParts reduces |d| to an integer sig and an exponent exp such that
// rounding sig to the precision of the format and multiplying it by 2^exp gives
// the correctly rounded |d|; sig has two extra bits for rounding and stickiness,
// and for subnormal results it is shifted so that the conversion of sig rounds
// to the subnormal precision.
// sign is ±1, or the final result itself when special is true.
//
// With bl = bitlen(|unscaled|) and qb = bl - ceil(scale × log2(10)), the binary
// exponent q of |d| = beta × 2^q, 2^(P+1) <= beta < 2^(P+2), lies in
// [qb - P - 3, qb - P]. Values outside [qmin - 2, qmax + P + 1] for qb
// round to zero or overflow.
func (d *Decimal) floatParts(f floatFormat) (sig uint64, exp int, sign float64, special bool) {
	sign = 1
	if d.Sign() < 0 {
		sign = -1
	}
	if d.IsZero() {
		return 0, 0, 0, true
	}
	p := int64(f.prec)
	w := new(big.Int).Abs(d.coef.bigInt())
	qb := int64(w.BitLen()) - int64(math.Ceil(float64(d.scale)*log2of10))
	if qb < f.qmin-2 {
		return 0, 0, math.Copysign(0, sign), true
	}
	if qb > f.qmax+p+1 {
		return 0, 0, math.Copysign(math.Inf(1), sign), true
	}
	if d.scale <= 0 {
		if d.scale < 0 {
			w.Mul(w, bigPow10(int(-d.scale)))
		}
		bf := new(big.Float).SetInt(w)
		if f.prec == float32Format.prec {
			v, _ := bf.Float32()
			return 0, 0, sign * float64(v), true
		}
		v, _ := bf.Float64()
		return 0, 0, sign * v, true
	}
	ql := qb - (p + 3)
	m, n := w, bigPow10(int(d.scale))
	if ql <= 0 {
		m = w.Lsh(w, uint(-ql))
	} else {
		n = new(big.Int).Lsh(n, uint(ql))
	}
	q, r := new(big.Int).QuoRem(m, n, new(big.Int))
	i := q.Uint64()
	var sb uint64
	if r.Sign() != 0 {
		sb = 1
	}
	dq := int64(64-(f.prec+2)) - int64(bits.LeadingZeros64(i))
	eq := (f.qmin - 2) - ql
	if dq >= eq {
		return i | sb, int(ql), sign, false
	}
	mask := uint64(1)<<uint(eq) - 1
	j := i >> uint(eq)
	if i&mask != 0 {
		j |= 1
	}
	return j | sb, int(f.qmin - 2), sign, false
}
