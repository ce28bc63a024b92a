package bigdecimal

import (
	"math"
	"math/big"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Decimal is an immutable arbitrary-precision signed decimal number.
// Its value is Unscaled × 10^(-Scale), where the unscaled value is an
// arbitrary-precision integer and the scale is a 32-bit integer.
// A negative scale multiplies the unscaled value by a power of ten.
//
// Decimals are used through pointers and are never modified after they are
// returned, so a *Decimal is safe for concurrent use by multiple goroutines.
// The zero value of Decimal is 0 at scale 0; a nil *Decimal is not a valid
// operand.
//
// The same number has many representations.
// For example, 1, 1.0 and 1.00 have the same value but different scales.
// [Decimal.Cmp] treats them as equal, [Decimal.Equal] does not.
type Decimal struct {
	coef  coef  // the unscaled value
	scale int32 // the number of digits after the decimal point

	// Lazily computed caches. Concurrent goroutines may compute them
	// more than once, always storing the same value.
	prec atomic.Int32           // the number of digits in coef, 0 if unknown
	str  atomic.Pointer[string] // the result of String
}

var (
	// ErrMalformedInput is returned when a string is not a valid decimal.
	ErrMalformedInput = errors.New("malformed decimal")
	// ErrInvalidArgument is returned for arguments outside the domain of an operation,
	// such as non-finite floats.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidExponent is returned when an exponent of [Decimal.Pow] is out of range.
	ErrInvalidExponent = errors.Wrap(ErrInvalidArgument, "exponent out of range")
	// ErrDivisionByZero is returned when a divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrDivisionUndefined is returned when both the dividend and the divisor are zero.
	ErrDivisionUndefined = errors.Wrap(ErrDivisionByZero, "division undefined")
	// ErrNonTerminating is returned when an exact quotient has no finite decimal expansion.
	ErrNonTerminating = errors.New("non-terminating decimal expansion")
	// ErrInexact is returned when rounding is necessary but not allowed.
	ErrInexact = errors.New("rounding necessary")
	// ErrScaleOverflow is returned when a scale does not fit into int32.
	ErrScaleOverflow = errors.New("scale out of range")
	// ErrOverflow is returned when a value is too large for the requested representation.
	ErrOverflow = errors.New("overflow")
	// ErrUnderflow is returned when a value is too small for the requested representation.
	ErrUnderflow = errors.New("underflow")
	// ErrNegativeRadicand is returned when computing the square root of a negative decimal.
	ErrNegativeRadicand = errors.New("square root of negative decimal")
	// ErrDivisionImpossible is returned when an integral quotient needs more digits
	// than the context allows.
	ErrDivisionImpossible = errors.New("division impossible")
)

// scaleError reports a scale outside of the int32 range.
// It matches both [ErrScaleOverflow] and the direction of the failure:
// a too large scale is an underflow, a too small scale is an overflow.
// A scale out of range in parsed input also matches [ErrOverflow].
type scaleError struct {
	scale  int64
	parsed bool
}

func newScaleError(scale int64) error {
	return errors.WithStack(&scaleError{scale: scale})
}

func (e *scaleError) Error() string {
	return e.direction().Error() + ": " + ErrScaleOverflow.Error()
}

func (e *scaleError) direction() error {
	if e.scale > 0 {
		return ErrUnderflow
	}
	return ErrOverflow
}

// Is makes the error match [ErrScaleOverflow] and its direction with errors.Is.
func (e *scaleError) Is(target error) bool {
	switch target {
	case ErrScaleOverflow, e.direction():
		return true
	case ErrOverflow:
		return e.parsed
	}
	return false
}

var (
	smallValues = func() [11]*Decimal {
		var t [11]*Decimal
		for i := range t {
			t[i] = newDecimalPrec(coef{small: int64(i)}, 0, int64Prec(int64(i)))
		}
		return t
	}()
	zeroScales = func() [16]*Decimal {
		var t [16]*Decimal
		t[0] = smallValues[0]
		for i := 1; i < len(t); i++ {
			t[i] = newDecimalPrec(coef{}, int32(i), 1)
		}
		return t
	}()

	// Zero is 0 at scale 0.
	Zero = smallValues[0]
	// One is 1 at scale 0.
	One = smallValues[1]
	// Ten is 10 at scale 0.
	Ten = smallValues[10]
)

func newDecimal(c coef, scale int32) *Decimal {
	return &Decimal{coef: c, scale: scale}
}

// newDecimalPrec is like newDecimal but also caches the known precision.
func newDecimalPrec(c coef, scale int32, prec int) *Decimal {
	d := newDecimal(c, scale)
	if prec > 0 && prec <= math.MaxInt32 {
		d.prec.Store(int32(prec))
	}
	return d
}

// zeroAt returns 0 at the given scale.
func zeroAt(scale int32) *Decimal {
	if scale >= 0 && int(scale) < len(zeroScales) {
		return zeroScales[scale]
	}
	return newDecimalPrec(coef{}, scale, 1)
}

// newCompact returns value × 10^(-scale) reusing the shared constants.
func newCompact(value int64, scale int32) *Decimal {
	switch {
	case value == 0:
		return zeroAt(scale)
	case scale == 0 && value > 0 && value < int64(len(smallValues)):
		return smallValues[value]
	}
	return newDecimal(coefOf(value), scale)
}

// New returns a decimal equal to value × 10^(-scale).
func New(value int64, scale int32) *Decimal {
	return newCompact(value, scale)
}

// NewFromInt64 returns a decimal equal to v with scale 0.
func NewFromInt64(v int64) *Decimal {
	return newCompact(v, 0)
}

// NewFromInt64Context is like [NewFromInt64] but rounds the result to the
// context precision.
func NewFromInt64Context(v int64, ctx Context) (*Decimal, error) {
	return NewFromInt64(v).Round(ctx)
}

// NewFromBigInt returns a decimal equal to value × 10^(-scale).
// The value is copied.
func NewFromBigInt(value *big.Int, scale int32) *Decimal {
	c := coefOfBig(new(big.Int).Set(value))
	if c.isCompact() {
		return newCompact(c.small, scale)
	}
	return newDecimal(c, scale)
}

// NewFromBigIntContext is like [NewFromBigInt] but rounds the result to the
// context precision.
func NewFromBigIntContext(value *big.Int, scale int32, ctx Context) (*Decimal, error) {
	return NewFromBigInt(value, scale).Round(ctx)
}

// Scale returns the number of digits after the decimal point.
// A negative scale is the number of zeros implied after the unscaled value.
func (d *Decimal) Scale() int32 {
	return d.scale
}

// Prec returns the number of digits in the unscaled value.
// The precision of zero is 1.
func (d *Decimal) Prec() int {
	if p := d.prec.Load(); p > 0 {
		return int(p)
	}
	p := d.coef.prec()
	if p <= math.MaxInt32 {
		d.prec.Store(int32(p))
	}
	return p
}

// Unscaled returns the unscaled value of d.
// The result is a copy owned by the caller.
func (d *Decimal) Unscaled() *big.Int {
	return d.coef.copyBigInt()
}

// Unscaled64 returns the unscaled value of d if it fits into int64.
func (d *Decimal) Unscaled64() (int64, bool) {
	if d.coef.isCompact() {
		return d.coef.small, true
	}
	if d.coef.big.IsInt64() {
		return d.coef.big.Int64(), true
	}
	return 0, false
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d *Decimal) Sign() int {
	return d.coef.sign()
}

// IsZero reports whether d == 0.
func (d *Decimal) IsZero() bool {
	return d.coef.sign() == 0
}

// IsInt reports whether the fractional part of d is zero.
func (d *Decimal) IsInt() bool {
	if d.scale <= 0 || d.coef.sign() == 0 {
		return true
	}
	if int64(d.Prec()) <= int64(d.scale) {
		return false
	}
	_, k := d.coef.stripZeros(int64(d.scale))
	return k == int64(d.scale)
}

// Neg returns -d.
func (d *Decimal) Neg() *Decimal {
	if d.coef.sign() == 0 {
		return d
	}
	return newDecimalPrec(d.coef.neg(), d.scale, int(d.prec.Load()))
}

// Abs returns |d|.
func (d *Decimal) Abs() *Decimal {
	if d.coef.sign() >= 0 {
		return d
	}
	return d.Neg()
}

// ULP (Unit in the Last Place) returns the smallest step of the decimal at its
// current scale, that is 1 × 10^(-scale).
func (d *Decimal) ULP() *Decimal {
	return newCompact(1, d.scale)
}

// StripTrailingZeros returns a decimal with the same value as d and the
// trailing zeros of the unscaled value removed.
// Zero is returned as 0 at scale 0.
// The scale never decreases below the minimum of int32.
func (d *Decimal) StripTrailingZeros() *Decimal {
	if d.coef.sign() == 0 {
		return Zero
	}
	return stripToScale(d.coef, int64(d.scale), math.MinInt64)
}

// ScaleByPowerOfTen returns d × 10^n with the same unscaled value and scale
// decreased by n.
func (d *Decimal) ScaleByPowerOfTen(n int32) (*Decimal, error) {
	scale, err := checkScale(d.coef, int64(d.scale)-int64(n))
	if err != nil {
		return nil, err
	}
	return newDecimalPrec(d.coef, scale, int(d.prec.Load())), nil
}

// MovePointLeft returns d × 10^(-n).
// The result has a non-negative scale of max(d.Scale()+n, 0).
func (d *Decimal) MovePointLeft(n int32) (*Decimal, error) {
	return d.movePoint(int64(d.scale) + int64(n))
}

// MovePointRight returns d × 10^n.
// The result has a non-negative scale of max(d.Scale()-n, 0).
func (d *Decimal) MovePointRight(n int32) (*Decimal, error) {
	return d.movePoint(int64(d.scale) - int64(n))
}

func (d *Decimal) movePoint(scale int64) (*Decimal, error) {
	s, err := checkScale(d.coef, scale)
	if err != nil {
		return nil, err
	}
	f := newDecimalPrec(d.coef, s, int(d.prec.Load()))
	if f.scale < 0 {
		return f.Rescale(0, RoundUnnecessary)
	}
	return f, nil
}

// setFrom overwrites d with the value of e.
// It is used only for decimals that have not been published yet.
func (d *Decimal) setFrom(e *Decimal) {
	d.coef = e.coef
	d.scale = e.scale
	d.prec.Store(e.prec.Load())
	d.str.Store(e.str.Load())
}
