package bigdecimal

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// RoundingMode specifies how a discarded fraction affects the retained digits.
type RoundingMode uint8

const (
	// RoundUp rounds away from zero.
	RoundUp RoundingMode = iota
	// RoundDown rounds towards zero (truncation).
	RoundDown
	// RoundCeiling rounds towards positive infinity.
	RoundCeiling
	// RoundFloor rounds towards negative infinity.
	RoundFloor
	// RoundHalfUp rounds to the nearest neighbor, ties away from zero.
	RoundHalfUp
	// RoundHalfDown rounds to the nearest neighbor, ties towards zero.
	RoundHalfDown
	// RoundHalfEven rounds to the nearest neighbor, ties to the even neighbor.
	// It is also known as "banker's rounding".
	RoundHalfEven
	// RoundUnnecessary asserts that the result is exact.
	// Operations fail with [ErrInexact] if any nonzero digit would be discarded.
	RoundUnnecessary
)

var roundingModeNames = [...]string{
	RoundUp:          "up",
	RoundDown:        "down",
	RoundCeiling:     "ceiling",
	RoundFloor:       "floor",
	RoundHalfUp:      "half_up",
	RoundHalfDown:    "half_down",
	RoundHalfEven:    "half_even",
	RoundUnnecessary: "unnecessary",
}

// String implements the [fmt.Stringer] interface.
func (m RoundingMode) String() string {
	if int(m) < len(roundingModeNames) {
		return roundingModeNames[m]
	}
	return fmt.Sprintf("RoundingMode(%d)", uint8(m))
}

// ParseRoundingMode converts a name such as "half_even", "HALF-EVEN" or
// "HalfEven" to a rounding mode.
func ParseRoundingMode(s string) (RoundingMode, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	for m, name := range roundingModeNames {
		if strings.ReplaceAll(name, "_", "") == key {
			return RoundingMode(m), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown rounding mode %q", s)
}

func (m RoundingMode) isHalfway() bool {
	return m == RoundHalfUp || m == RoundHalfDown || m == RoundHalfEven
}

// needIncrement reports whether a truncated quotient must be moved one unit
// away from zero.
// qsign is the sign of the exact quotient, half is the comparison of twice the
// discarded remainder with the divisor, and odd tells whether the truncated
// quotient is odd.
// It is called only when the discarded remainder is nonzero.
func (m RoundingMode) needIncrement(qsign, half int, odd bool) (bool, error) {
	switch m {
	case RoundUnnecessary:
		return false, ErrInexact
	case RoundUp:
		return true, nil
	case RoundDown:
		return false, nil
	case RoundCeiling:
		return qsign > 0, nil
	case RoundFloor:
		return qsign < 0, nil
	case RoundHalfUp, RoundHalfDown, RoundHalfEven:
		switch {
		case half < 0:
			return false, nil
		case half > 0:
			return true, nil
		}
		switch m {
		case RoundHalfUp:
			return true, nil
		case RoundHalfDown:
			return false, nil
		}
		return odd, nil
	}
	return false, errors.Wrapf(ErrInvalidArgument, "unknown rounding mode %v", m)
}

// Context bounds the number of significant digits of a result
// and selects the rounding mode applied when digits are discarded.
// The zero value is an unlimited context.
type Context struct {
	// Precision is the maximum number of significant digits.
	// Zero means no limit: operations are exact.
	Precision uint32
	// Rounding is the rounding mode.
	Rounding RoundingMode
}

var (
	// Unlimited is the context of exact arithmetic.
	Unlimited = Context{Precision: 0, Rounding: RoundHalfUp}
	// Decimal32 matches the IEEE 754-2019 decimal32 precision.
	Decimal32 = Context{Precision: 7, Rounding: RoundHalfEven}
	// Decimal64 matches the IEEE 754-2019 decimal64 precision.
	Decimal64 = Context{Precision: 16, Rounding: RoundHalfEven}
	// Decimal128 matches the IEEE 754-2019 decimal128 precision.
	Decimal128 = Context{Precision: 34, Rounding: RoundHalfEven}
)

// NewContext returns a context with the given precision and rounding mode.
func NewContext(prec uint32, mode RoundingMode) Context {
	return Context{Precision: prec, Rounding: mode}
}

// String implements the [fmt.Stringer] interface.
func (c Context) String() string {
	return fmt.Sprintf("precision=%d rounding=%v", c.Precision, c.Rounding)
}

func (c Context) prec() int64 {
	return int64(c.Precision)
}
