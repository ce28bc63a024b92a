package bigdecimal_test

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/govalues/bigdecimal"
)

func approximate(terms int, ctx bigdecimal.Context) (*bigdecimal.Decimal, error) {
	pi := bigdecimal.Zero
	four := bigdecimal.New(4, 0)
	two := bigdecimal.New(2, 0)
	denominator := bigdecimal.One

	for i := 0; i < terms; i++ {
		term, err := four.QuoContext(denominator, ctx)
		if err != nil {
			return nil, err
		}
		if i%2 == 1 {
			term = term.Neg()
		}
		pi, err = pi.AddContext(term, ctx)
		if err != nil {
			return nil, err
		}
		denominator, err = denominator.Add(two)
		if err != nil {
			return nil, err
		}
	}
	return pi, nil
}

// This example calculates an approximate value of pi using the Leibniz formula for pi.
// The Leibniz formula is an infinite series that converges to pi/4, and is
// given by the equation: 1 - 1/3 + 1/5 - 1/7 + 1/9 - 1/11 + ... = pi/4.
// Every term and every partial sum is rounded to 16 significant digits.
func Example_piApproximation() {
	pi, err := approximate(1000, bigdecimal.Decimal64)
	if err != nil {
		panic(err)
	}
	fmt.Println(pi)
	// Output: 3.140592653839773
}

func ExampleNew() {
	fmt.Println(bigdecimal.New(-123, 3))
	fmt.Println(bigdecimal.New(-123, 2))
	fmt.Println(bigdecimal.New(-123, 0))
	fmt.Println(bigdecimal.New(-123, -2))
	// Output:
	// -0.123
	// -1.23
	// -123
	// -1.23E+4
}

func ExampleNewFromInt64() {
	fmt.Println(bigdecimal.NewFromInt64(-123))
	fmt.Println(bigdecimal.NewFromInt64Context(123456, bigdecimal.NewContext(3, bigdecimal.RoundHalfUp)))
	// Output:
	// -123
	// 1.23E+5 <nil>
}

func ExampleNewFromBigInt() {
	b := new(big.Int).Lsh(big.NewInt(1), 70)
	fmt.Println(bigdecimal.NewFromBigInt(b, 10))
	// Output: 118059162071.7411303424
}

func ExampleNewFromFloat64() {
	fmt.Println(bigdecimal.NewFromFloat64(0.1))
	fmt.Println(bigdecimal.NewFromFloat64Shortest(0.1))
	fmt.Println(bigdecimal.NewFromFloat64Context(0.1, bigdecimal.Decimal32))
	// Output:
	// 0.1000000000000000055511151231257827021181583404541015625 <nil>
	// 0.1 <nil>
	// 0.1000000 <nil>
}

func ExampleParse() {
	fmt.Println(bigdecimal.Parse("-1.23"))
	fmt.Println(bigdecimal.Parse("1.23E+5"))
	fmt.Println(bigdecimal.Parse("12300"))
	fmt.Println(bigdecimal.Parse("0.000001"))
	fmt.Println(bigdecimal.Parse("0.0000001"))
	// Output:
	// -1.23 <nil>
	// 1.23E+5 <nil>
	// 12300 <nil>
	// 0.000001 <nil>
	// 1E-7 <nil>
}

func ExampleParseContext() {
	fmt.Println(bigdecimal.ParseContext("123.456", bigdecimal.NewContext(4, bigdecimal.RoundHalfUp)))
	fmt.Println(bigdecimal.ParseContext("123.456", bigdecimal.NewContext(4, bigdecimal.RoundDown)))
	// Output:
	// 123.5 <nil>
	// 123.4 <nil>
}

func ExampleMustParse() {
	fmt.Println(bigdecimal.MustParse("-1.23"))
	// Output: -1.23
}

func ExampleParseRoundingMode() {
	fmt.Println(bigdecimal.ParseRoundingMode("HALF-EVEN"))
	fmt.Println(bigdecimal.ParseRoundingMode("ceiling"))
	// Output:
	// half_even <nil>
	// ceiling <nil>
}

func ExampleNewContext() {
	fmt.Println(bigdecimal.NewContext(5, bigdecimal.RoundHalfUp))
	fmt.Println(bigdecimal.Decimal64)
	// Output:
	// precision=5 rounding=half_up
	// precision=16 rounding=half_even
}

func ExampleDecimal_Scale() {
	d := bigdecimal.MustParse("-12.300")
	fmt.Println(d.Scale())
	fmt.Println(d.Prec())
	fmt.Println(d.Unscaled())
	// Output:
	// 3
	// 5
	// -12300
}

func ExampleDecimal_ULP() {
	fmt.Println(bigdecimal.MustParse("-1.23").ULP())
	fmt.Println(bigdecimal.MustParse("0.4").ULP())
	fmt.Println(bigdecimal.MustParse("1.5E+3").ULP())
	// Output:
	// 0.01
	// 0.1
	// 1E+2
}

func ExampleDecimal_String() {
	fmt.Println(bigdecimal.New(123, -1).String())
	fmt.Println(bigdecimal.New(123, 8).String())
	fmt.Println(bigdecimal.New(123, 9).String())
	// Output:
	// 1.23E+3
	// 0.00000123
	// 1.23E-7
}

func ExampleDecimal_EngineeringString() {
	fmt.Println(bigdecimal.MustParse("1.23E+4").EngineeringString())
	fmt.Println(bigdecimal.MustParse("0E+4").EngineeringString())
	fmt.Println(bigdecimal.MustParse("1.2E-8").EngineeringString())
	// Output:
	// 12.3E+3
	// 0.00E+6
	// 12E-9
}

func ExampleDecimal_PlainString() {
	fmt.Println(bigdecimal.MustParse("1.23E+4").PlainString())
	fmt.Println(bigdecimal.MustParse("1.23E-7").PlainString())
	// Output:
	// 12300
	// 0.000000123
}

func ExampleDecimal_Format() {
	d := bigdecimal.MustParse("-1.255")
	fmt.Printf("%v|%.2f|%8.2f|%q\n", d, d, d, d)
	// Output: -1.255|-1.26|   -1.26|"-1.255"
}

func ExampleDecimal_Add() {
	d := bigdecimal.MustParse("1.5")
	e := bigdecimal.MustParse("2.25")
	fmt.Println(d.Add(e))
	// Output: 3.75 <nil>
}

func ExampleDecimal_AddContext() {
	d := bigdecimal.MustParse("1234.5")
	e := bigdecimal.MustParse("0.05")
	fmt.Println(d.AddContext(e, bigdecimal.NewContext(5, bigdecimal.RoundHalfUp)))
	// Output: 1234.6 <nil>
}

func ExampleDecimal_Sub() {
	d := bigdecimal.MustParse("5")
	e := bigdecimal.MustParse("0.75")
	fmt.Println(d.Sub(e))
	// Output: 4.25 <nil>
}

func ExampleDecimal_Mul() {
	d := bigdecimal.MustParse("1.5")
	e := bigdecimal.MustParse("2.25")
	fmt.Println(d.Mul(e))
	fmt.Println(d.MulContext(e, bigdecimal.NewContext(2, bigdecimal.RoundHalfEven)))
	// Output:
	// 3.375 <nil>
	// 3.4 <nil>
}

func ExampleDecimal_Quo() {
	fmt.Println(bigdecimal.MustParse("1").Quo(bigdecimal.MustParse("8")))
	fmt.Println(bigdecimal.MustParse("1.00").Quo(bigdecimal.MustParse("2")))
	fmt.Println(bigdecimal.MustParse("1").Quo(bigdecimal.MustParse("3")))
	// Output:
	// 0.125 <nil>
	// 0.50 <nil>
	// <nil> 1 / 3: non-terminating decimal expansion
}

func ExampleDecimal_QuoContext() {
	d := bigdecimal.MustParse("2")
	e := bigdecimal.MustParse("3")
	fmt.Println(d.QuoContext(e, bigdecimal.Decimal32))
	fmt.Println(d.QuoContext(e, bigdecimal.Decimal64))
	fmt.Println(d.QuoContext(bigdecimal.Zero, bigdecimal.Decimal64))
	// Output:
	// 0.6666667 <nil>
	// 0.6666666666666667 <nil>
	// <nil> division by zero
}

func ExampleDecimal_QuoRem() {
	d := bigdecimal.MustParse("7.5")
	e := bigdecimal.MustParse("2")
	fmt.Println(d.QuoRem(e))
	fmt.Println(bigdecimal.MustParse("10").Rem(bigdecimal.MustParse("3.3")))
	// Output:
	// 3.0 1.5 <nil>
	// 0.1 <nil>
}

func ExampleDecimal_Sqrt() {
	fmt.Println(bigdecimal.MustParse("2").Sqrt(bigdecimal.Decimal64))
	fmt.Println(bigdecimal.MustParse("0.25").Sqrt(bigdecimal.Unlimited))
	fmt.Println(bigdecimal.MustParse("-4").Sqrt(bigdecimal.Unlimited))
	// Output:
	// 1.414213562373095 <nil>
	// 0.5 <nil>
	// <nil> sqrt(-4): square root of negative decimal
}

func ExampleDecimal_Pow() {
	fmt.Println(bigdecimal.MustParse("1.05").Pow(10))
	fmt.Println(bigdecimal.MustParse("1.1").PowContext(10, bigdecimal.NewContext(5, bigdecimal.RoundHalfUp)))
	fmt.Println(bigdecimal.MustParse("2").PowContext(-2, bigdecimal.Decimal64))
	// Output:
	// 1.62889462677744140625 <nil>
	// 2.5937 <nil>
	// 0.25 <nil>
}

func ExampleDecimal_Rescale() {
	d := bigdecimal.MustParse("1.255")
	fmt.Println(d.Rescale(2, bigdecimal.RoundHalfEven))
	fmt.Println(d.Rescale(2, bigdecimal.RoundDown))
	fmt.Println(d.Rescale(5, bigdecimal.RoundUnnecessary))
	// Output:
	// 1.26 <nil>
	// 1.25 <nil>
	// 1.25500 <nil>
}

func ExampleDecimal_Round() {
	fmt.Println(bigdecimal.MustParse("123.456").Round(bigdecimal.NewContext(4, bigdecimal.RoundHalfUp)))
	fmt.Println(bigdecimal.MustParse("99.99").Round(bigdecimal.NewContext(3, bigdecimal.RoundHalfUp)))
	// Output:
	// 123.5 <nil>
	// 100 <nil>
}

func ExampleDecimal_StripTrailingZeros() {
	fmt.Println(bigdecimal.MustParse("1.2300").StripTrailingZeros())
	fmt.Println(bigdecimal.MustParse("600.0").StripTrailingZeros())
	fmt.Println(bigdecimal.MustParse("0.000").StripTrailingZeros())
	// Output:
	// 1.23
	// 6E+2
	// 0
}

func ExampleDecimal_MovePointLeft() {
	fmt.Println(bigdecimal.MustParse("123").MovePointLeft(2))
	fmt.Println(bigdecimal.MustParse("1.23").MovePointRight(4))
	fmt.Println(bigdecimal.MustParse("1.23").ScaleByPowerOfTen(3))
	// Output:
	// 1.23 <nil>
	// 12300 <nil>
	// 1.23E+3 <nil>
}

func ExampleDecimal_Cmp() {
	d := bigdecimal.MustParse("2.0")
	e := bigdecimal.MustParse("2.00")
	fmt.Println(d.Cmp(e))
	fmt.Println(d.Equal(e))
	fmt.Println(d.Cmp(bigdecimal.MustParse("2.5")))
	// Output:
	// 0
	// false
	// -1
}

func ExampleDecimal_Hash() {
	d := bigdecimal.MustParse("1.5")
	fmt.Println(d.Hash() == bigdecimal.New(15, 1).Hash())
	// Output: true
}

func ExampleDecimal_Float64() {
	fmt.Println(bigdecimal.MustParse("0.1").Float64())
	fmt.Println(bigdecimal.MustParse("1234567890.123456789").Float64())
	fmt.Println(bigdecimal.MustParse("1E+400").Float64())
	// Output:
	// 0.1
	// 1.2345678901234567e+09
	// +Inf
}

func ExampleDecimal_Int64Exact() {
	fmt.Println(bigdecimal.MustParse("123.00").Int64Exact())
	fmt.Println(bigdecimal.MustParse("123.45").Int64())
	// Output:
	// 123 <nil>
	// 123
}

type Value struct {
	Number *bigdecimal.Decimal `json:"number"`
}

func ExampleDecimal_UnmarshalText() {
	b := []byte(`{"number": "-15.67"}`)
	var v Value
	err := json.Unmarshal(b, &v)
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	// Output: {-15.67}
}

func ExampleDecimal_MarshalText() {
	d := bigdecimal.MustParse("-15.67")
	v := Value{Number: d}
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(b))
	// Output: {"number":"-15.67"}
}

func ExampleDecimal_Scan() {
	d := &bigdecimal.Decimal{}
	err := d.Scan("-15.67")
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output: -15.67
}

func ExampleDecimal_Value() {
	d := bigdecimal.MustParse("-15.67")
	fmt.Println(d.Value())
	// Output: -15.67 <nil>
}
