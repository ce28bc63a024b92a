package bigdecimal

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

func TestNewFromFloat64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			f    float64
			want string
		}{
			{0, "0"},
			{math.Copysign(0, -1), "0"},
			{1, "1"},
			{-2.5, "-2.5"},
			{0.5, "0.5"},
			{1024, "1024"},
			{0.1, "0.1000000000000000055511151231257827021181583404541015625"},
			{1e22, "10000000000000000000000"},
			{math.Ldexp(1, -10), "0.0009765625"},
			{math.MaxInt64, "9223372036854775808"},
		}
		for _, tt := range tests {
			got, err := NewFromFloat64(tt.f)
			if err != nil {
				t.Errorf("NewFromFloat64(%v) failed: %v", tt.f, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("NewFromFloat64(%v) = %q, want %q", tt.f, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := NewFromFloat64(f)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("NewFromFloat64(%v) error = %v, want %v", f, err, ErrInvalidArgument)
			}
			_, err = NewFromFloat64Shortest(f)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("NewFromFloat64Shortest(%v) error = %v, want %v", f, err, ErrInvalidArgument)
			}
		}
	})
}

func TestNewFromFloat32(t *testing.T) {
	got, err := NewFromFloat32(0.1)
	if err != nil {
		t.Fatalf("NewFromFloat32(0.1) failed: %v", err)
	}
	if want := "0.100000001490116119384765625"; got.String() != want {
		t.Errorf("NewFromFloat32(0.1) = %q, want %q", got, want)
	}
}

func TestNewFromFloat64Context(t *testing.T) {
	tests := []struct {
		f    float64
		ctx  Context
		want string
	}{
		{0.1, NewContext(5, RoundHalfEven), "0.10000"},
		{0.1, Decimal64, "0.1000000000000000"},
		{2.0 / 3, NewContext(3, RoundDown), "0.666"},
		{1e22, NewContext(2, RoundHalfUp), "1.0E+22"},
	}
	for _, tt := range tests {
		got, err := NewFromFloat64Context(tt.f, tt.ctx)
		if err != nil {
			t.Errorf("NewFromFloat64Context(%v, %v) failed: %v", tt.f, tt.ctx, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("NewFromFloat64Context(%v, %v) = %q, want %q", tt.f, tt.ctx, got, tt.want)
		}
	}
}

func TestNewFromFloat64Shortest(t *testing.T) {
	tests := []struct {
		f    float64
		want string
	}{
		{0, "0"},
		{0.1, "0.1"},
		{-2.5, "-2.5"},
		{100, "100"},
		{1e6, "1E+6"},
		{1e21, "1E+21"},
		{1e-7, "1E-7"},
		{123456789, "123456789"},
		{math.MaxFloat64, "1.7976931348623157E+308"},
		{math.SmallestNonzeroFloat64, "5E-324"},
	}
	for _, tt := range tests {
		got, err := NewFromFloat64Shortest(tt.f)
		if err != nil {
			t.Errorf("NewFromFloat64Shortest(%v) failed: %v", tt.f, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("NewFromFloat64Shortest(%v) = %q, want %q", tt.f, got, tt.want)
		}
	}
}

// parseFloat converts the canonical string of d with strconv,
// which rounds correctly to the given bit size.
func parseFloat(t *testing.T, d *Decimal, bitSize int) float64 {
	t.Helper()
	f, err := strconv.ParseFloat(d.String(), bitSize)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		t.Fatalf("strconv.ParseFloat(%q) failed: %v", d, err)
	}
	return f
}

func TestDecimal_Float64(t *testing.T) {
	tests := []string{
		"0", "-0.00", "1", "-1", "0.1", "0.3", "123.456", "1E+22", "1E+23",
		"9007199254740993", "123456789012345678901234567890",
		"0.000000000000000000000000000001",
		"1.7976931348623157E+308", "1.7976931348623158E+308", "1.7976931348623159E+308",
		"1E+400", "-1E+400", "1E-400", "-1E-400",
		"4.9E-324", "2.5E-324", "2.4703282292062327E-324", "2.4703282292062328E-324",
		"2.2250738585072011E-308", "2.2250738585072014E-308",
		"1E-2147483647", "1E+2147483648",
	}
	for _, s := range tests {
		d := MustParse(s)
		got, want := d.Float64(), parseFloat(t, d, 64)
		if math.Float64bits(got) != math.Float64bits(want) {
			t.Errorf("%q.Float64() = %v, want %v", d, got, want)
		}
	}
}

func TestDecimal_Float32(t *testing.T) {
	tests := []string{
		"0", "1", "-1", "0.1", "16777217", "123456789012345678901234567890",
		"3.4028235E+38", "3.4028236E+38", "3.4028237E+38", "1E+39", "-1E+39",
		"1.4E-45", "7E-46", "7.1E-46", "1E-46", "-1E-46",
		"1.1754942E-38", "1.17549435E-38",
	}
	for _, s := range tests {
		d := MustParse(s)
		got, want := d.Float32(), float32(parseFloat(t, d, 32))
		if math.Float32bits(got) != math.Float32bits(want) {
			t.Errorf("%q.Float32() = %v, want %v", d, got, want)
		}
	}
}

func FuzzDecimal_Float64(f *testing.F) {
	for _, d := range fuzzCorpus {
		f.Add(d.coef, int16(d.scale), false)
		f.Add(d.coef, int16(d.scale)*20, true)
	}

	f.Fuzz(
		func(t *testing.T, coef int64, scale int16, wide bool) {
			d := New(coef, int32(scale))
			if wide {
				d = d.MustMul(New(coef, 0))
			}
			if got, want := d.Float64(), parseFloat(t, d, 64); math.Float64bits(got) != math.Float64bits(want) {
				t.Errorf("%q.Float64() = %v, want %v", d, got, want)
			}
			if got, want := d.Float32(), float32(parseFloat(t, d, 32)); math.Float32bits(got) != math.Float32bits(want) {
				t.Errorf("%q.Float32() = %v, want %v", d, got, want)
			}
		},
	)
}

func FuzzNewFromFloat64(f *testing.F) {
	for _, x := range []float64{0.1, 1, -2.5, 1e22, 1e-300, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		f.Add(x)
	}

	f.Fuzz(
		func(t *testing.T, x float64) {
			if math.IsNaN(x) || math.IsInf(x, 0) || x == 0 {
				t.Skip()
				return
			}
			d, err := NewFromFloat64(x)
			if err != nil {
				t.Errorf("NewFromFloat64(%v) failed: %v", x, err)
				return
			}
			if got := d.Float64(); got != x {
				t.Errorf("NewFromFloat64(%v).Float64() = %v", x, got)
			}
			s, err := NewFromFloat64Shortest(x)
			if err != nil {
				t.Errorf("NewFromFloat64Shortest(%v) failed: %v", x, err)
				return
			}
			if got := s.Float64(); got != x {
				t.Errorf("NewFromFloat64Shortest(%v).Float64() = %v", x, got)
			}
		},
	)
}
