package cscan

import (
	"math"
	"testing"
)

func TestAtoi(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int32
		wantOK bool
	}{
		{name: "plain", input: "42", want: 42, wantOK: true},
		{name: "leading spaces", input: "  \t7", want: 7, wantOK: true},
		{name: "negative", input: "-13", want: -13, wantOK: true},
		{name: "plus sign", input: "+5", want: 5, wantOK: true},
		{name: "trailing text", input: "12abc", want: 12, wantOK: true},
		{name: "float text truncates", input: "3.9", want: 3, wantOK: true},
		{name: "overflow saturates", input: "99999999999", want: math.MaxInt32, wantOK: true},
		{name: "underflow saturates", input: "-99999999999", want: math.MinInt32, wantOK: true},
		{name: "empty", input: "", want: 0, wantOK: false},
		{name: "letters", input: "abc", want: 0, wantOK: false},
		{name: "sign only", input: "-", want: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Atoi(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Atoi(%q) = %d, %v, want %d, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAtof(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   float64
		wantOK bool
	}{
		{name: "integer", input: "3", want: 3, wantOK: true},
		{name: "decimal", input: "1.25", want: 1.25, wantOK: true},
		{name: "leading dot", input: ".5", want: 0.5, wantOK: true},
		{name: "trailing dot", input: "5.", want: 5, wantOK: true},
		{name: "exponent", input: "1.5e2", want: 150, wantOK: true},
		{name: "dangling exponent", input: "2e", want: 2, wantOK: true},
		{name: "negative", input: " -0.75 ", want: -0.75, wantOK: true},
		{name: "trailing text", input: "10.5 meters", want: 10.5, wantOK: true},
		{name: "empty", input: "", want: 0, wantOK: false},
		{name: "text", input: "none", want: 0, wantOK: false},
		{name: "dot only", input: ".", want: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Atof(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Atof(%q) = %v, %v, want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAtof_Specials(t *testing.T) {
	if v, ok := Atof("inf"); !ok || !math.IsInf(v, 1) {
		t.Errorf("Atof(inf) = %v, %v", v, ok)
	}
	if v, ok := Atof("-Infinity"); !ok || !math.IsInf(v, -1) {
		t.Errorf("Atof(-Infinity) = %v, %v", v, ok)
	}
	if v, ok := Atof("NaN"); !ok || !math.IsNaN(v) {
		t.Errorf("Atof(NaN) = %v, %v", v, ok)
	}
	if v, ok := Atof("1e999"); !ok || !math.IsInf(v, 1) {
		t.Errorf("Atof(1e999) = %v, %v", v, ok)
	}
}

func TestScanFloats(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		n         int
		wantCount int
		want      []float32
	}{
		{name: "exact", input: "1 2 3", n: 3, wantCount: 3, want: []float32{1, 2, 3}},
		{name: "extra ignored", input: "1 2 3 4", n: 2, wantCount: 2, want: []float32{1, 2}},
		{name: "too few", input: "1 2", n: 3, wantCount: 2, want: []float32{1, 2}},
		{name: "tabs and newlines", input: "0.5\t\n-1.5", n: 2, wantCount: 2, want: []float32{0.5, -1.5}},
		{name: "stops at garbage", input: "1 x 3", n: 3, wantCount: 1, want: []float32{1}},
		{name: "comma separated", input: "1,2", n: 2, wantCount: 1, want: []float32{1}},
		{name: "empty", input: "", n: 2, wantCount: 0, want: []float32{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, count := ScanFloats(tt.input, tt.n)
			if count != tt.wantCount {
				t.Fatalf("ScanFloats(%q, %d) count = %d, want %d", tt.input, tt.n, count, tt.wantCount)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("ScanFloats(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestScanInts(t *testing.T) {
	got, count := ScanInts("1 0", 2)
	if count != 2 || got[0] != 1 || got[1] != 0 {
		t.Errorf("ScanInts(\"1 0\") = %v, %d", got, count)
	}
	_, count = ScanInts("x", 2)
	if count != 0 {
		t.Errorf("ScanInts(\"x\") count = %d, want 0", count)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{input: 0, want: "0.000000"},
		{input: 1.5, want: "1.500000"},
		{input: -2.25, want: "-2.250000"},
		{input: 0.1234567, want: "0.123457"},
		{input: math.Inf(1), want: "inf"},
		{input: math.Inf(-1), want: "-inf"},
		{input: math.NaN(), want: "nan"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.input); got != tt.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatFloats(t *testing.T) {
	if got, want := FormatFloats(1, 2.5, -3), "1.000000 2.500000 -3.000000"; got != want {
		t.Errorf("FormatFloats = %q, want %q", got, want)
	}
	if got, want := FormatInt(-7), "-7"; got != want {
		t.Errorf("FormatInt = %q, want %q", got, want)
	}
}
