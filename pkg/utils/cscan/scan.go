// Package cscan provides C-style numeric text scanning and formatting.
//
// String values inside inibin containers were written by tools that read
// them back with atoi, atof and sscanf and rendered numbers with printf.
// The helpers here reproduce those rules so numeric text round-trips the
// same way:
//   - Leading whitespace is skipped
//   - Only the longest numeric prefix is consumed; trailing text is ignored
//   - A conversion with no digits fails instead of yielding zero
//
// Examples:
//
//	Atoi(" 42px")            => 42, true
//	Atof("1.5e2 trailing")   => 150, true
//	ScanFloats("1 2.5 x", 3) => [1 2.5], 2
package cscan

import (
	"math"
	"strconv"
	"strings"
)

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

// Atoi parses the leading integer of s. Values outside the int32 range
// saturate. It reports false when s holds no digits.
func Atoi(s string) (int32, bool) {
	v, n := scanInt(s)
	if n == 0 {
		return 0, false
	}
	return v, true
}

// scanInt returns the value and the number of bytes consumed, 0 on failure.
func scanInt(s string) (int32, int) {
	i := skipSpace(s, 0)
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	start := i
	var acc int64
	for i < len(s) && isDigit(s[i]) {
		if acc <= math.MaxInt32+1 {
			acc = acc*10 + int64(s[i]-'0')
		}
		i++
	}
	if i == start {
		return 0, 0
	}
	if neg {
		acc = -acc
	}
	switch {
	case acc > math.MaxInt32:
		acc = math.MaxInt32
	case acc < math.MinInt32:
		acc = math.MinInt32
	}
	return int32(acc), i
}

// Atof parses the leading floating point number of s with double
// precision. It reports false when s holds no number.
func Atof(s string) (float64, bool) {
	v, n := scanFloat(s, 64)
	if n == 0 {
		return 0, false
	}
	return v, true
}

// scanFloat returns the value and the number of bytes consumed, 0 on failure.
func scanFloat(s string, bitSize int) (float64, int) {
	i := skipSpace(s, 0)
	start := i
	sign := 1.0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}

	rest := strings.ToLower(s[i:min(len(s), i+8)])
	switch {
	case strings.HasPrefix(rest, "infinity"):
		return math.Inf(int(sign)), i + 8
	case strings.HasPrefix(rest, "inf"):
		return math.Inf(int(sign)), i + 3
	case strings.HasPrefix(rest, "nan"):
		return math.NaN(), i + 3
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, 0
	}

	// Exponent only counts when at least one digit follows.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}

	v, err := strconv.ParseFloat(s[start:i], bitSize)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return 0, 0
		}
	}
	return v, i
}

// ScanFloats reads up to n whitespace separated floats from s, the way
// sscanf(s, "%f %f ...") does. It returns the values scanned and their
// count; scanning stops at the first field that is not a number.
func ScanFloats(s string, n int) ([]float32, int) {
	out := make([]float32, 0, n)
	pos := 0
	for len(out) < n {
		v, used := scanFloat(s[pos:], 32)
		if used == 0 {
			break
		}
		out = append(out, float32(v))
		pos += used
	}
	return out, len(out)
}

// ScanInts reads up to n whitespace separated integers from s, the way
// sscanf(s, "%d %d ...") does.
func ScanInts(s string, n int) ([]int32, int) {
	out := make([]int32, 0, n)
	pos := 0
	for len(out) < n {
		v, used := scanInt(s[pos:])
		if used == 0 {
			break
		}
		out = append(out, v)
		pos += used
	}
	return out, len(out)
}
