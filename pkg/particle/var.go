package particle

import (
	"math"

	"github.com/moonshadow565/TroyBinary/pkg/inibin"
	"github.com/moonshadow565/TroyBinary/pkg/inihash"
	"github.com/moonshadow565/TroyBinary/pkg/utils/cscan"
)

// RampSize is the number of precomputed samples kept for composite
// properties.
const RampSize = 256

// Var is an animated property: a base value, an optional keyframe series
// over normalized lifetime, and optional per-axis probability curves.
//
// Scalar properties always interpolate their keys. Composite properties
// (more than one axis) read from a precomputed ramp once BuildRamp has run
// and never search their keys again, so Keys edited after BuildRamp have
// no effect until the next BuildRamp.
type Var[T Vector[T]] struct {
	Base   T
	Keys   []Key[T]
	// Curves has one entry per axis; nil entries leave the axis untouched.
	Curves []Curve

	ramp *[RampSize]T
}

// Float, vector and color properties.
type (
	FloatVar = Var[Float]
	Vec2Var  = Var[Vec2]
	Vec3Var  = Var[Vec3]
	Vec4Var  = Var[Vec4]
	ColorVar = Var[Color]
)

// NewVar returns a property that always evaluates to base.
func NewVar[T Vector[T]](base T) Var[T] {
	return Var[T]{Base: base, Curves: make([]Curve, base.Axes())}
}

func (v Var[T]) composite() bool {
	return v.Base.Axes() > 1
}

// rampIndex maps normalized time to a ramp slot, clamping out-of-range
// and NaN times.
func rampIndex(t float32) int {
	f := t * RampSize
	switch {
	case f != f || f < 0:
		return 0
	case f >= RampSize-1:
		return RampSize - 1
	}
	return int(math.Floor(float64(f)))
}

// EvalAnim returns the property value at normalized time t.
func (v Var[T]) EvalAnim(t float32) T {
	if len(v.Keys) == 0 {
		return v.Base
	}
	if v.ramp != nil {
		return v.ramp[rampIndex(t)]
	}
	return search(v.Keys, t, lerp[T])
}

// ApplyProbability multiplies each axis of value that has a curve by the
// curve's value at sample.
func (v Var[T]) ApplyProbability(value T, sample float32) T {
	for i, c := range v.Curves {
		if c != nil {
			value = value.WithAxis(i, Modulate(c, value.Axis(i), sample))
		}
	}
	return value
}

// Eval is ApplyProbability(EvalAnim(t), sample).
func (v Var[T]) Eval(t, sample float32) T {
	return v.ApplyProbability(v.EvalAnim(t), sample)
}

// BuildRamp precomputes the ramp of a composite property from its keys.
// It does nothing for scalar properties or properties without keys.
func (v *Var[T]) BuildRamp() {
	if !v.composite() || len(v.Keys) == 0 {
		v.ramp = nil
		return
	}
	ramp := new([RampSize]T)
	for k := range ramp {
		ramp[k] = search(v.Keys, float32(k)*(1.0/RampSize), lerp[T])
	}
	v.ramp = ramp
}

// HasRamp reports whether evaluation reads from a precomputed ramp.
func (v Var[T]) HasRamp() bool {
	return v.ramp != nil
}

// Ramp returns a copy of the precomputed samples, nil when no ramp exists.
func (v Var[T]) Ramp() []T {
	if v.ramp == nil {
		return nil
	}
	out := make([]T, RampSize)
	copy(out, v.ramp[:])
	return out
}

// LoadVar reads the property stored at h, starting from def.
//
//   - h holds the base as text with one number per axis. A base that does
//     not scan completely makes the whole property absent.
//   - h+"1" .. h+"9" hold keys as "time v0 .. vN". The series stops at the
//     first missing or malformed key.
//   - h+suffix holds the curve of each axis (see Vector.CurveSuffixes).
//     Scalars fall back to h+"P" when h+"XP" is absent.
//
// It reports false when none of these are present. The ramp of a
// composite property with keys is built before returning.
func LoadVar[T Vector[T]](s *inibin.Store, h inihash.Hash, def T) (Var[T], bool) {
	v := NewVar(def)
	axes := def.Axes()
	found := false

	if text, ok := s.String(h); ok {
		vals, n := cscan.ScanFloats(text, axes)
		if n != axes {
			return NewVar(def), false
		}
		v.Base = def.FromAxes(vals)
		found = true
	}

	for i := 1; i <= MaxKeys; i++ {
		text, ok := s.String(h.Appendf("%d", i))
		if !ok {
			break
		}
		vals, n := cscan.ScanFloats(text, axes+1)
		if n != axes+1 {
			break
		}
		v.Keys = append(v.Keys, Key[T]{Time: vals[0], Value: def.FromAxes(vals[1:])})
		found = true
	}

	for i, suffix := range def.CurveSuffixes() {
		c, ok := LoadCurve(s, h.Append(suffix))
		if !ok && axes == 1 {
			c, ok = LoadCurve(s, h.Append("P"))
		}
		if ok {
			v.Curves[i] = c
			found = true
		}
	}

	if !found {
		return v, false
	}
	v.BuildRamp()
	return v, true
}

// LoadVarOr is LoadVar without the presence report.
func LoadVarOr[T Vector[T]](s *inibin.Store, h inihash.Hash, def T) Var[T] {
	v, _ := LoadVar(s, h, def)
	return v
}
