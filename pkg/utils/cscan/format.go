package cscan

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders f like printf("%f"): six fractional digits, with
// "inf", "-inf" and "nan" for the special values.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', 6, 64)
}

// FormatFloats renders each value with FormatFloat, separated by a space.
func FormatFloats(vals ...float32) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = FormatFloat(float64(v))
	}
	return strings.Join(parts, " ")
}

// FormatInt renders i in decimal.
func FormatInt(i int32) string {
	return strconv.FormatInt(int64(i), 10)
}
