package bigdecimal

import (
	"fmt"
	"math"
	"math/big"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// maxExponentDigits is the maximum number of significant digits in an exponent.
const maxExponentDigits = 10

// Parse converts a string to a decimal.
// The string is a sign, a significand and an optional exponent:
//
//	[+|-] (digits ['.' [digits]] | '.' digits) [('e'|'E') [+|-] digits]
//
// Digits are any Unicode decimal digits.
// The result is exact: its unscaled value holds every digit of the significand
// and its scale is the number of fraction digits minus the exponent.
//
// Parse returns an error if the string is malformed ([ErrMalformedInput]) or if
// the scale does not fit into int32 ([ErrOverflow]).
func Parse(s string) (*Decimal, error) {
	return ParseContext(s, Unlimited)
}

// ParseContext is like [Parse] but rounds the result to the context precision.
func ParseContext(s string, ctx Context) (*Decimal, error) {
	c, scale, prec, err := parse(s)
	if err != nil {
		return nil, err
	}
	if ctx.Precision > 0 && int64(prec) > ctx.prec() {
		return roundCoef(c, scale, ctx)
	}
	return newDecimalPrec(c, int32(scale), prec), nil
}

// ParseRunes is like [ParseContext] but reads the characters
// in[offset:offset+length].
func ParseRunes(in []rune, offset, length int, ctx Context) (*Decimal, error) {
	if offset < 0 || length < 0 || offset > len(in) || length > len(in)-offset {
		return nil, errors.Wrapf(ErrInvalidArgument, "range [%d:%d] of %d characters", offset, offset+length, len(in))
	}
	return ParseContext(string(in[offset:offset+length]), ctx)
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) *Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return d
}

// parse returns the unscaled value, the scale and the precision of s.
// Inputs of at most maxCompactDigits bytes cannot hold more than
// maxCompactDigits digits and are accumulated in int64.
// Longer inputs collect their significant digits in a buffer.
func parse(s string) (c coef, scale int64, prec int, err error) {
	if s == "" {
		return coef{}, 0, 0, errors.Wrap(ErrMalformedInput, "empty string")
	}
	var (
		pos  int
		neg  bool
		dot  bool
		nz   bool // a nonzero digit was seen
		acc  int64
		buf  []byte
		fast = len(s) <= maxCompactDigits
	)
	if !fast {
		buf = make([]byte, 0, len(s))
	}
	switch s[0] {
	case '-':
		neg = true
		pos++
	case '+':
		pos++
	}
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if r == '.' {
			if dot {
				return coef{}, 0, 0, errors.Wrapf(ErrMalformedInput, "%q: more than one decimal point", s)
			}
			dot = true
			pos += size
			continue
		}
		if r == 'e' || r == 'E' {
			if prec == 0 {
				return coef{}, 0, 0, errors.Wrapf(ErrMalformedInput, "%q: no digits in significand", s)
			}
			exp, err := parseExponent(s, pos+size)
			if err != nil {
				return coef{}, 0, 0, err
			}
			scale -= exp
			break
		}
		v := digitValue(r)
		if v < 0 {
			return coef{}, 0, 0, errors.Wrapf(ErrMalformedInput, "%q: invalid character %q", s, r)
		}
		switch {
		case v == 0 && !nz:
			// Redundant leading zeros are not significant.
			prec = 1
		case !nz:
			nz = true
			prec = 1
		default:
			prec++
		}
		if nz {
			if fast {
				acc = acc*10 + int64(v)
			} else {
				buf = append(buf, byte('0'+v))
			}
		}
		if dot {
			scale++
		}
		pos += size
	}
	if prec == 0 {
		return coef{}, 0, 0, errors.Wrapf(ErrMalformedInput, "%q: no digits in significand", s)
	}
	if scale < math.MinInt32 || scale > math.MaxInt32 {
		return coef{}, 0, 0, errors.Wrapf(&scaleError{scale: scale, parsed: true}, "%q", s)
	}
	switch {
	case fast:
		if neg {
			acc = -acc
		}
		c = coefOf(acc)
	case len(buf) == 0:
		c = coef{}
	default:
		b, ok := new(big.Int).SetString(string(buf), 10)
		if !ok {
			return coef{}, 0, 0, errors.Wrapf(ErrMalformedInput, "%q", s)
		}
		if neg {
			b.Neg(b)
		}
		c = coefOfBig(b)
	}
	return c, scale, prec, nil
}

// parseExponent parses the exponent starting at s[pos:].
// Leading zeros are skipped; at most maxExponentDigits significant digits are allowed.
func parseExponent(s string, pos int) (int64, error) {
	neg := false
	if pos < len(s) {
		switch s[pos] {
		case '-':
			neg = true
			pos++
		case '+':
			pos++
		}
	}
	if pos >= len(s) {
		return 0, errors.Wrapf(ErrMalformedInput, "%q: no digits in exponent", s)
	}
	var exp int64
	digits := 0
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		v := digitValue(r)
		if v < 0 {
			return 0, errors.Wrapf(ErrMalformedInput, "%q: invalid character %q in exponent", s, r)
		}
		if v != 0 || digits > 0 {
			digits++
			if digits > maxExponentDigits {
				return 0, errors.Wrapf(ErrMalformedInput, "%q: too many nonzero exponent digits", s)
			}
			exp = exp*10 + int64(v)
		}
		pos += size
	}
	if neg {
		exp = -exp
	}
	return exp, nil
}

// digitValue returns the value of a Unicode decimal digit or -1.
// Decimal digits of every script are encoded in contiguous runs of ten,
// starting with zero.
func digitValue(r rune) int {
	if '0' <= r && r <= '9' {
		return int(r - '0')
	}
	if r < utf8.RuneSelf || !unicode.IsDigit(r) {
		return -1
	}
	start := r
	for unicode.IsDigit(start - 1) {
		start--
	}
	return int(r-start) % 10
}
