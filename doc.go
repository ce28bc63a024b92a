/*
Package bigdecimal implements immutable arbitrary-precision decimal numbers.
It is designed for computations where the representation error of binary
floating-point numbers is unacceptable and where every rounding must be
under explicit control of the caller.

# Representation

[Decimal] is an unscaled integer of arbitrary length and a 32-bit scale:

  - Unscaled value: an integer holding all digits of the decimal without the
    decimal point. Values that fit into int64 are stored inline; longer values
    are stored as [big.Int].
  - Scale: the position of the decimal point, counted from the right of the
    unscaled value. For example, an unscaled value of 12345 with a scale of 2
    represents 123.45. A negative scale appends zeros: 123 with a scale of -1
    represents 1230.

The numerical value of a decimal is Unscaled × 10^(-Scale).

The same numeric value can have multiple representations, called a cohort.
For example, 1, 1.0 and 1.00 have different scales and unscaled values.
[Decimal.Cmp] orders decimals by value, so cohort members compare equal,
while [Decimal.Equal] and [Decimal.Hash] distinguish them.

Special values such as NaN, infinities or negative zeros are not supported.
Operations that would produce them return errors instead.

Decimals are never modified after they are created and a *Decimal can be
shared by multiple goroutines. The precision and the string form of a
decimal are computed lazily and cached.

# Contexts

Arithmetic comes in two flavors:

  - Exact operations, such as [Decimal.Add] or [Decimal.Quo], return the
    mathematically exact result or an error if there is none, as for 1 / 3.
  - Context operations, such as [Decimal.AddContext] or [Decimal.QuoContext],
    round the exact result to [Context.Precision] significant digits using
    [Context.Rounding]. A zero precision makes them exact.

Each operation has a preferred scale, which is the scale of its result when
no rounding is needed:

	| Operation                    | Preferred scale                    |
	| ---------------------------- | ---------------------------------- |
	| [Decimal.Add], [Decimal.Sub] | max(d.Scale(), e.Scale())          |
	| [Decimal.Mul]                | d.Scale() + e.Scale()              |
	| [Decimal.Quo]                | d.Scale() - e.Scale()              |
	| [Decimal.Sqrt]               | d.Scale() / 2                      |
	| [Decimal.Pow]                | d.Scale() × n                      |

# Rounding

The rounding modes are:

	| Mode               | 5.5 | 2.5 | 1.6 | 1.1 | -1.1 | -1.6 | -2.5 | -5.5 |
	| ------------------ | --- | --- | --- | --- | ---- | ---- | ---- | ---- |
	| [RoundUp]          |  6  |  3  |  2  |  2  |  -2  |  -2  |  -3  |  -6  |
	| [RoundDown]        |  5  |  2  |  1  |  1  |  -1  |  -1  |  -2  |  -5  |
	| [RoundCeiling]     |  6  |  3  |  2  |  2  |  -1  |  -1  |  -2  |  -5  |
	| [RoundFloor]       |  5  |  2  |  1  |  1  |  -2  |  -2  |  -3  |  -6  |
	| [RoundHalfUp]      |  6  |  3  |  2  |  1  |  -1  |  -2  |  -3  |  -6  |
	| [RoundHalfDown]    |  5  |  2  |  2  |  1  |  -1  |  -2  |  -2  |  -5  |
	| [RoundHalfEven]    |  6  |  2  |  2  |  1  |  -1  |  -2  |  -2  |  -6  |
	| [RoundUnnecessary] | err | err | err | err | err  | err  | err  | err  |

# Conversions

The package provides methods for converting decimals:

  - from/to string:
    [Parse], [ParseContext], [Decimal.String], [Decimal.EngineeringString],
    [Decimal.PlainString], [Decimal.Format].
  - from/to float64:
    [NewFromFloat64], [NewFromFloat64Shortest], [Decimal.Float64], [Decimal.Float32].
  - from/to integers:
    [New], [NewFromInt64], [NewFromBigInt], [Decimal.Int64], [Decimal.Int64Exact],
    [Decimal.BigInt].

Conversions to floats are correctly rounded.
Conversions from floats are exact unless the shortest form is requested.

# Operations

Each arithmetic operation is carried out in two steps:

 1. The operation is initially performed using int64 arithmetic.
    If no overflow occurs, the exact result is immediately used.

 2. Otherwise the operation is repeated using [big.Int] arithmetic.

Results that fit into int64 are always stored inline again.
Powers of ten used for scaling are cached in a table shared by all goroutines.

The cost of operations grows with the number of digits involved.
Scales near the limits of int32 can ask for enormous numbers of digits,
for example when adding 1 and 1E-2000000000 exactly; callers that process
untrusted input should bound precision and scale themselves.

# Errors

All errors can be classified with [errors.Is] against the sentinel errors of
this package, such as [ErrDivisionByZero] or [ErrInexact].
Scale errors match both [ErrScaleOverflow] and either [ErrOverflow] or
[ErrUnderflow]; those from [Parse] always match [ErrOverflow].
*/
package bigdecimal
