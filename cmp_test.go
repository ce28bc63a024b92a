package bigdecimal

import (
	"math/big"
	"testing"
)

func TestDecimal_Cmp(t *testing.T) {
	tests := []struct {
		d, e string
		want int
	}{
		{"0", "0", 0},
		{"0", "-0.00", 0},
		{"0", "0E+5", 0},
		{"2.0", "2.00", 0},
		{"2", "2.00", 0},
		{"1E+2", "100", 0},
		{"1", "2", -1},
		{"2", "1", 1},
		{"-1", "1", -1},
		{"-1", "0", -1},
		{"0", "0.001", -1},
		{"0.1", "0.09", 1},
		{"-0.1", "-0.09", -1},
		{"1E+3", "999.9", 1},
		{"999.9", "1E+3", -1},
		{"1E-2147483647", "1E+2147483647", -1},
		{"123456789012345678901234567890", "1.2E+29", 1},
		{"123456789012345678901234567890", "123456789012345678901234567890.00", 0},
		{"-123456789012345678901234567890", "-123456789012345678901234567891", 1},
		{"9223372036854775807", "9223372036854775808", -1},
		{"-9223372036854775808", "-9223372036854775807", -1},
	}
	for _, tt := range tests {
		d, e := MustParse(tt.d), MustParse(tt.e)
		if got := d.Cmp(e); got != tt.want {
			t.Errorf("%q.Cmp(%q) = %v, want %v", d, e, got, tt.want)
		}
		if got := e.Cmp(d); got != -tt.want {
			t.Errorf("%q.Cmp(%q) = %v, want %v", e, d, got, -tt.want)
		}
	}
}

func TestDecimal_CmpAbs(t *testing.T) {
	tests := []struct {
		d, e string
		want int
	}{
		{"0", "0", 0},
		{"-3", "2", 1},
		{"2", "-3", -1},
		{"-2.0", "2.00", 0},
		{"0", "-0.1", -1},
		{"-1E+3", "999", 1},
	}
	for _, tt := range tests {
		d, e := MustParse(tt.d), MustParse(tt.e)
		if got := d.CmpAbs(e); got != tt.want {
			t.Errorf("%q.CmpAbs(%q) = %v, want %v", d, e, got, tt.want)
		}
	}
}

func TestDecimal_Equal(t *testing.T) {
	tests := []struct {
		d, e string
		want bool
	}{
		{"0", "0", true},
		{"0", "0.0", false},
		{"2.0", "2.0", true},
		{"2.0", "2.00", false},
		{"-2", "2", false},
		{"1E+2", "100", false},
		{"123456789012345678901234567890", "123456789012345678901234567890", true},
	}
	for _, tt := range tests {
		d, e := MustParse(tt.d), MustParse(tt.e)
		if got := d.Equal(e); got != tt.want {
			t.Errorf("%q.Equal(%q) = %v, want %v", d, e, got, tt.want)
		}
	}
}

func TestDecimal_Hash(t *testing.T) {
	t.Run("equal", func(t *testing.T) {
		b, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
		tests := []struct {
			d, e *Decimal
		}{
			{MustParse("2.00"), New(200, 2)},
			{MustParse("-7"), NewFromInt64(-7)},
			{MustParse("123"), NewFromBigInt(big.NewInt(123), 0)},
			{MustParse("1234567890123456789012345678.90"), NewFromBigInt(b, 2)},
			{Zero, New(0, 0)},
		}
		for _, tt := range tests {
			if tt.d.Hash() != tt.e.Hash() {
				t.Errorf("%q.Hash() != %q.Hash()", tt.d, tt.e)
			}
		}
	})

	t.Run("distinct", func(t *testing.T) {
		tests := []struct {
			d, e string
		}{
			{"2.0", "2.00"},
			{"1", "-1"},
			{"0", "0.0"},
			{"1E+2", "100"},
		}
		for _, tt := range tests {
			d, e := MustParse(tt.d), MustParse(tt.e)
			if d.Hash() == e.Hash() {
				t.Errorf("%q.Hash() == %q.Hash()", d, e)
			}
		}
	})

	t.Run("map", func(t *testing.T) {
		m := map[uint64]*Decimal{}
		for _, s := range []string{"1", "1.0", "1.00", "-1", "10", "1E+1"} {
			d := MustParse(s)
			m[d.Hash()] = d
		}
		if len(m) != 6 {
			t.Errorf("len(m) = %v, want 6", len(m))
		}
	})
}

func TestDecimal_MinMax(t *testing.T) {
	tests := []struct {
		d, e, wantMin, wantMax string
	}{
		{"1", "2", "1", "2"},
		{"2", "1", "1", "2"},
		{"-1", "1", "-1", "1"},
		{"2.0", "2.00", "2.0", "2.0"},
		{"2.00", "2.0", "2.00", "2.00"},
		{"1E+3", "999.9", "999.9", "1E+3"},
	}
	for _, tt := range tests {
		d, e := MustParse(tt.d), MustParse(tt.e)
		if got := d.Min(e); got.String() != tt.wantMin {
			t.Errorf("%q.Min(%q) = %q, want %q", d, e, got, tt.wantMin)
		}
		if got := d.Max(e); got.String() != tt.wantMax {
			t.Errorf("%q.Max(%q) = %q, want %q", d, e, got, tt.wantMax)
		}
	}
}

func FuzzDecimal_Cmp(f *testing.F) {
	for _, d := range fuzzCorpus {
		for _, e := range fuzzCorpus {
			f.Add(d.coef, d.scale, e.coef, e.scale)
		}
	}

	f.Fuzz(
		func(t *testing.T, dcoef int64, dscale int8, ecoef int64, escale int8) {
			d := New(dcoef, int32(dscale))
			e := New(ecoef, int32(escale))
			diff, err := d.Sub(e)
			if err != nil {
				t.Errorf("%q.Sub(%q) failed: %v", d, e, err)
				return
			}
			if got, want := d.Cmp(e), diff.Sign(); got != want {
				t.Errorf("%q.Cmp(%q) = %v, want %v", d, e, got, want)
			}
			if d.Equal(e) && d.Hash() != e.Hash() {
				t.Errorf("%q.Hash() != %q.Hash()", d, e)
			}
		},
	)
}
