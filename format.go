package bigdecimal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// String returns the canonical string representation of d, using
// scientific notation if an exponent is needed.
//
// Let adjusted = -scale + (digits - 1) be the exponent of the leading digit.
// If scale >= 0 and adjusted >= -6 the value is written without an exponent:
//
//	123      (scale 0)
//	1.23     (scale 2)
//	0.000123 (scale 6)
//
// Otherwise it is written as one digit, a fraction and an exponent:
//
//	1.23E+3  (123 at scale -1)
//	1.23E-7  (123 at scale 9)
//	0E+3     (0 at scale -3)
//
// The result parses back to a decimal with the same unscaled value and scale.
// It is computed once and cached.
func (d *Decimal) String() string {
	if s := d.str.Load(); s != nil {
		return *s
	}
	s := string(d.layout(true))
	d.str.Store(&s)
	return s
}

// EngineeringString is like [Decimal.String] but the exponent is always a
// multiple of three, so one to three digits precede the decimal point.
func (d *Decimal) EngineeringString() string {
	return string(d.layout(false))
}

// PlainString returns the representation of d without an exponent.
// A negative scale is written as trailing zeros.
func (d *Decimal) PlainString() string {
	switch {
	case d.scale == 0:
		return string(d.appendCoef(nil))
	case d.scale < 0:
		if d.IsZero() {
			return "0"
		}
		buf := d.appendCoef(make([]byte, 0, d.Prec()+1-int(d.scale)))
		for i := int64(0); i < -int64(d.scale); i++ {
			buf = append(buf, '0')
		}
		return string(buf)
	}
	digits := d.coef.appendAbs(nil)
	return string(appendPoint(d.appendSign(nil), digits, int(d.scale)))
}

func (d *Decimal) appendSign(buf []byte) []byte {
	if d.Sign() < 0 {
		buf = append(buf, '-')
	}
	return buf
}

func (d *Decimal) appendCoef(buf []byte) []byte {
	return d.coef.appendAbs(d.appendSign(buf))
}

// appendPoint appends digits with a decimal point inserted scale digits from
// the right, padding with leading zeros when scale >= len(digits).
func appendPoint(buf, digits []byte, scale int) []byte {
	pad := scale - len(digits)
	if pad >= 0 {
		buf = append(buf, '0', '.')
		for ; pad > 0; pad-- {
			buf = append(buf, '0')
		}
		return append(buf, digits...)
	}
	buf = append(buf, digits[:-pad]...)
	buf = append(buf, '.')
	return append(buf, digits[-pad:]...)
}

// layout writes d in scientific (sci) or engineering notation.
func (d *Decimal) layout(sci bool) []byte {
	if d.scale == 0 {
		return d.appendCoef(nil)
	}
	// Currency shape: two fraction digits of a small non-negative value.
	if d.scale == 2 && d.coef.isCompact() && d.coef.small >= 0 && d.coef.small < math.MaxInt32 {
		v := d.coef.small
		buf := strconv.AppendInt(make([]byte, 0, 14), v/100, 10)
		return append(buf, '.', byte('0'+v%100/10), byte('0'+v%10))
	}
	digits := d.coef.appendAbs(nil)
	buf := d.appendSign(make([]byte, 0, len(digits)+16))
	adjusted := -int64(d.scale) + int64(len(digits)-1)
	if d.scale > 0 && adjusted >= -6 {
		return appendPoint(buf, digits, int(d.scale))
	}
	if sci {
		buf = append(buf, digits[0])
		if len(digits) > 1 {
			buf = append(buf, '.')
			buf = append(buf, digits[1:]...)
		}
	} else {
		sig := int(adjusted % 3)
		if sig < 0 {
			sig += 3
		}
		adjusted -= int64(sig)
		sig++
		switch {
		case d.IsZero():
			switch sig {
			case 1:
				buf = append(buf, '0')
			case 2:
				buf = append(buf, '0', '.', '0', '0')
				adjusted += 3
			case 3:
				buf = append(buf, '0', '.', '0')
				adjusted += 3
			}
		case sig >= len(digits):
			buf = append(buf, digits...)
			for i := len(digits); i < sig; i++ {
				buf = append(buf, '0')
			}
		default:
			buf = append(buf, digits[:sig]...)
			buf = append(buf, '.')
			buf = append(buf, digits[sig:]...)
		}
	}
	if adjusted != 0 {
		buf = append(buf, 'E')
		if adjusted > 0 {
			buf = append(buf, '+')
		}
		buf = strconv.AppendInt(buf, adjusted, 10)
	}
	return buf
}

// Format implements the [fmt.Formatter] interface.
// The following format verbs are available:
//
//	| Verb   | Example   | Description                     |
//	| ------ | --------- | ------------------------------- |
//	| %s, %v | 1.23E+3   | Canonical, as [Decimal.String]  |
//	| %q     | "1.23E+3" | Quoted canonical                |
//	| %f     | 1230      | Plain, as [Decimal.PlainString] |
//	| %e     | 1.23E+3   | Scientific, as [Decimal.String] |
//
// With %f the precision sets the number of fraction digits, rounding half to even.
// The '+' flag forces a sign, the '-' flag pads on the right,
// and the '0' flag pads with leading zeros.
func (d *Decimal) Format(state fmt.State, verb rune) {
	var s string
	switch verb {
	case 'v', 's', 'e', 'E':
		s = d.String()
	case 'q':
		s = strconv.Quote(d.String())
	case 'f', 'F':
		e := d
		if prec, ok := state.Precision(); ok {
			var err error
			if e, err = d.Rescale(int32(prec), RoundHalfEven); err != nil {
				fmt.Fprintf(state, "%%!%c(%v)", verb, err)
				return
			}
		}
		s = e.PlainString()
	default:
		fmt.Fprintf(state, "%%!%c(*bigdecimal.Decimal=%s)", verb, d.String())
		return
	}
	sign := ""
	if len(s) > 0 && s[0] == '-' {
		sign, s = "-", s[1:]
	} else if state.Flag('+') {
		sign = "+"
	}
	width, ok := state.Width()
	if !ok {
		width = 0
	}
	pad := width - len(sign) - len(s)
	switch {
	case pad <= 0:
		_, _ = fmt.Fprint(state, sign, s)
	case state.Flag('-'):
		_, _ = fmt.Fprint(state, sign, s, spaces(pad))
	case state.Flag('0') && verb != 'q':
		_, _ = fmt.Fprint(state, sign, zeros(pad), s)
	default:
		_, _ = fmt.Fprint(state, spaces(pad), sign, s)
	}
}

func spaces(n int) string {
	return strings.Repeat(" ", n)
}

func zeros(n int) string {
	return strings.Repeat("0", n)
}
