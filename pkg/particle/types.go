package particle

import (
	"math"

	"github.com/moonshadow565/TroyBinary/pkg/utils/cscan"
)

// Vector is implemented by every value type an animated property can carry.
// Each type is a fixed-size tuple of float32 axes.
type Vector[T any] interface {
	// Axes returns the number of components.
	Axes() int
	// Axis returns component i.
	Axis(i int) float32
	// WithAxis returns a copy with component i replaced.
	WithAxis(i int, v float32) T
	// FromAxes builds a value from the first Axes() entries of v.
	FromAxes(v []float32) T
	// CurveSuffixes lists the key suffixes of the per-axis curves, in
	// axis order.
	CurveSuffixes() []string
	// String formats the axes as space-separated %f numbers.
	String() string
}

type (
	Float float32
	Vec2  [2]float32
	Vec3  [3]float32
	Vec4  [4]float32
	// Color is RGBA.
	Color [4]float32
)

var inf = float32(math.Inf(1))

// Defaults used by loaders for properties with no meaningful zero.
var (
	Vec2Inf  = Vec2{inf, inf}
	Vec3Inf  = Vec3{inf, inf, inf}
	Vec4Inf  = Vec4{inf, inf, inf, inf}
	ColorInf = Color{inf, inf, inf, inf}
	White    = Color{1, 1, 1, 1}
)

// FloatMax stands in for "forever" in emitter timings.
const FloatMax = math.MaxFloat32

func (Float) Axes() int { return 1 }
func (f Float) Axis(int) float32 { return float32(f) }
func (Float) WithAxis(_ int, v float32) Float { return Float(v) }
func (Float) FromAxes(v []float32) Float { return Float(v[0]) }
func (Float) CurveSuffixes() []string { return []string{"XP"} }

func (v Vec2) Axes() int { return len(v) }
func (v Vec2) Axis(i int) float32 { return v[i] }
func (v Vec2) WithAxis(i int, x float32) Vec2 {
	v[i] = x
	return v
}
func (Vec2) FromAxes(v []float32) (r Vec2) {
	copy(r[:], v)
	return
}
func (Vec2) CurveSuffixes() []string { return []string{"XP", "YP"} }

func (v Vec3) Axes() int { return len(v) }
func (v Vec3) Axis(i int) float32 { return v[i] }
func (v Vec3) WithAxis(i int, x float32) Vec3 {
	v[i] = x
	return v
}
func (Vec3) FromAxes(v []float32) (r Vec3) {
	copy(r[:], v)
	return
}
func (Vec3) CurveSuffixes() []string { return []string{"XP", "YP", "ZP"} }

func (v Vec4) Axes() int { return len(v) }
func (v Vec4) Axis(i int) float32 { return v[i] }
func (v Vec4) WithAxis(i int, x float32) Vec4 {
	v[i] = x
	return v
}
func (Vec4) FromAxes(v []float32) (r Vec4) {
	copy(r[:], v)
	return
}
func (Vec4) CurveSuffixes() []string { return []string{"XP", "YP", "ZP", "WP"} }

func (c Color) Axes() int { return len(c) }
func (c Color) Axis(i int) float32 { return c[i] }
func (c Color) WithAxis(i int, x float32) Color {
	c[i] = x
	return c
}
func (Color) FromAxes(v []float32) (r Color) {
	copy(r[:], v)
	return
}
func (Color) CurveSuffixes() []string { return []string{"RP", "GP", "BP", "AP"} }

func (f Float) String() string { return cscan.FormatFloat(float64(f)) }
func (v Vec2) String() string { return cscan.FormatFloats(v[:]...) }
func (v Vec3) String() string { return cscan.FormatFloats(v[:]...) }
func (v Vec4) String() string { return cscan.FormatFloats(v[:]...) }
func (c Color) String() string { return cscan.FormatFloats(c[:]...) }

// affine is the interpolation formula shared by curves and keyframed
// properties. A FlatLine must agree with the two-key series it replaces.
func affine(base, delta, frac float32) float32 {
	return base + delta*frac
}

func lerp[T Vector[T]](a, b T, frac float32) T {
	r := a
	for i := 0; i < a.Axes(); i++ {
		r = r.WithAxis(i, affine(a.Axis(i), b.Axis(i)-a.Axis(i), frac))
	}
	return r
}

// Key is one keyframe of a time series.
type Key[T any] struct {
	Time  float32
	Value T
}

// search interpolates a non-empty key series at t, clamping to the first
// and last values outside the covered range.
func search[T any](keys []Key[T], t float32, interp func(a, b T, frac float32) T) T {
	if t < keys[0].Time {
		return keys[0].Value
	}
	for i := 1; i < len(keys); i++ {
		if t < keys[i].Time {
			k0, k1 := keys[i-1], keys[i]
			return interp(k0.Value, k1.Value, (t-k0.Time)/(k1.Time-k0.Time))
		}
	}
	return keys[len(keys)-1].Value
}
