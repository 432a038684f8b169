package fixed

import (
	"math"
	"testing"
)

func TestFixedPoint_FromInt64(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		scale int
		want  string
	}{
		{"zero", 0, 0, "0"},
		{"positive", 123, 0, "123"},
		{"negative", -456, 0, "-456"},
		{"with scale", 123, 2, "1.23"},
		{"negative with scale", -456, 3, "-0.456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromInt64(tt.value, tt.scale)
			if got.String() != tt.want {
				t.Errorf("FromInt64(%d, %d) = %s; want %s", tt.value, tt.scale, got.String(), tt.want)
			}
		})
	}
}

func TestFixedPoint_FromFloat64(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"zero", 0.0, "0"},
		{"positive", 123.45, "123.45"},
		{"negative", -67.89, "-67.89"},
		{"small decimal", 0.0001, "0.0001"},
		{"large number", 1e10, "10000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromFloat64(tt.value)
			if got.String() != tt.want {
				t.Errorf("FromFloat64(%f) = %s; want %s", tt.value, got.String(), tt.want)
			}
		})
	}
}

func TestFixedPoint_FromFloat64Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("FromFloat64(NaN) did not panic")
		}
	}()
	FromFloat64(math.NaN())
}

func TestFixedPoint_Parse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"integer", "42", "42", false},
		{"decimal", "1.2345", "1.2345", false},
		{"negative", "-0.5", "-0.5", false},
		{"garbage", "abc", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v; wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got.String() != tt.want {
				t.Errorf("Parse(%q) = %s; want %s", tt.input, got.String(), tt.want)
			}
		})
	}
}

func TestFixedPoint_Arithmetic(t *testing.T) {
	a := MustParse("10.50")
	b := MustParse("3.25")

	if got := a.Add(b).String(); got != "13.75" {
		t.Errorf("Add = %s; want 13.75", got)
	}
	if got := a.Sub(b).String(); got != "7.25" {
		t.Errorf("Sub = %s; want 7.25", got)
	}
	if got := a.Mul(Two).String(); got != "21.00" {
		t.Errorf("Mul = %s; want 21.00", got)
	}
	if got := a.DivInt(2).String(); got != "5.25" {
		t.Errorf("DivInt = %s; want 5.25", got)
	}
}

func TestFixedPoint_QuoRem(t *testing.T) {
	tests := []struct {
		name     string
		p        string
		o        string
		wantQuo  string
		wantZero bool
	}{
		{"exact multiple", "0.09", "0.01", "9", true},
		{"non multiple", "0.095", "0.01", "9", false},
		{"whole lots", "2.5", "0.5", "5", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, r := MustParse(tt.p).QuoRem(MustParse(tt.o))
			if q.Trunc(0).String() != tt.wantQuo {
				t.Errorf("QuoRem quotient = %s; want %s", q.String(), tt.wantQuo)
			}
			if r.IsZero() != tt.wantZero {
				t.Errorf("QuoRem remainder = %s; want zero = %v", r.String(), tt.wantZero)
			}
		})
	}
}

func TestFixedPoint_RescaleHalfUp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		scale int
		want  string
	}{
		{"no-op at scale", "1.23", 2, "1.23"},
		{"pad up", "1234.5", 2, "1234.50"},
		{"round down", "1.234", 2, "1.23"},
		{"round up", "1.236", 2, "1.24"},
		{"tie rounds up", "1.235", 2, "1.24"},
		{"tie rounds away from zero", "-1.235", 2, "-1.24"},
		{"negative round down", "-1.234", 2, "-1.23"},
		{"zero scale tie", "2.5", 0, "3"},
		{"negative zero scale tie", "-2.5", 0, "-3"},
		{"eight decimals", "1.234567895", 8, "1.23456790"},
		{"price digits", "1.123456", 5, "1.12346"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustParse(tt.input).RescaleHalfUp(tt.scale)
			if got.String() != tt.want {
				t.Errorf("RescaleHalfUp(%s, %d) = %s; want %s", tt.input, tt.scale, got.String(), tt.want)
			}
		})
	}
}

func TestFixedPoint_RescaleHalfUpIdempotent(t *testing.T) {
	inputs := []string{"0", "1.005", "-1.005", "99999.995", "0.00000001"}
	scales := []int{0, 2, 8}

	for _, input := range inputs {
		for _, scale := range scales {
			once := MustParse(input).RescaleHalfUp(scale)
			twice := once.RescaleHalfUp(scale)
			if !once.Eq(twice) || once.String() != twice.String() {
				t.Errorf("RescaleHalfUp(%s, %d) not idempotent: %s vs %s", input, scale, once.String(), twice.String())
			}
		}
	}
}

func TestFixedPoint_Comparisons(t *testing.T) {
	a := MustParse("1.00")
	b := MustParse("1")

	if !a.Eq(b) {
		t.Errorf("Eq should ignore scale: %s vs %s", a.String(), b.String())
	}
	if !Zero.Lt(One) || !One.Gt(Zero) {
		t.Errorf("ordering broken between Zero and One")
	}
	if !One.Gte(One) || !One.Lte(One) {
		t.Errorf("Gte/Lte not reflexive")
	}
}

func TestFixedPoint_SignPredicates(t *testing.T) {
	if !MustParse("-3").IsNeg() || MustParse("-3").Sign() != -1 {
		t.Errorf("negative predicates broken")
	}
	if !MustParse("3").IsPos() || MustParse("3").Sign() != 1 {
		t.Errorf("positive predicates broken")
	}
	if !Zero.IsZero() || Zero.Sign() != 0 {
		t.Errorf("zero predicates broken")
	}
}

func BenchmarkFixedPoint_RescaleHalfUp(b *testing.B) {
	p := MustParse("1234.56789")
	for i := 0; i < b.N; i++ {
		_ = p.RescaleHalfUp(2)
	}
}

func BenchmarkFixedPoint_AddMul(b *testing.B) {
	p := MustParse("1234.56")
	q := MustParse("0.0001")
	for i := 0; i < b.N; i++ {
		_ = p.Add(q).Mul(Two)
	}
}
