package particle

import (
	"github.com/moonshadow565/TroyBinary/pkg/inibin"
	"github.com/moonshadow565/TroyBinary/pkg/inihash"
)

// MaxKeys is the highest keyframe index probed for a series ("1".."9").
const MaxKeys = 9

// Curve maps a random sample in [0,1] to a multiplier. It is one of
// Constant, FlatLine or Keyframes.
type Curve interface {
	Evaluate(sample float32) float32
	isCurve()
}

// Constant ignores the sample.
type Constant float32

// FlatLine is a two-key series spanning exactly [0,1], stored as
// base + delta*sample.
type FlatLine struct {
	Base  float32
	Delta float32
}

// Keyframes is a piecewise-linear series ordered by time.
type Keyframes []Key[float32]

// DefaultCurve is the curve of a property with no probability table.
var DefaultCurve Curve = Constant(1)

func (c Constant) Evaluate(float32) float32 { return float32(c) }

func (f FlatLine) Evaluate(sample float32) float32 {
	return affine(f.Base, f.Delta, sample)
}

// Evaluate clamps to the first value below the first key and to the last
// value at or after the last key. An empty series evaluates to 1.
func (k Keyframes) Evaluate(sample float32) float32 {
	if len(k) == 0 {
		return 1
	}
	return search[float32](k, sample, func(a, b, frac float32) float32 {
		return affine(a, b-a, frac)
	})
}

func (Constant) isCurve()  {}
func (FlatLine) isCurve()  {}
func (Keyframes) isCurve() {}

// Modulate scales baseline by the curve's value at sample. A nil curve
// leaves baseline unchanged.
func Modulate(c Curve, baseline, sample float32) float32 {
	if c == nil {
		return baseline
	}
	return baseline * c.Evaluate(sample)
}

// isFlatLine reports whether a two-key series starts at time 0 and ends at
// time 1, within the tolerance the producer tool used.
func isFlatLine(k0, k1 Key[float32]) bool {
	return k1.Time >= 0.99999899 && k1.Time < 1.000001 &&
		k0.Time >= -0.000001 && k0.Time < 0.000001
}

// LoadCurve reads the curve stored at h. A value at h itself that reads as
// a float is a Constant. Otherwise the keys at h+"1", h+"2", ... are read
// as (value, time) pairs until the first missing or non-Vec2 entry.
func LoadCurve(s *inibin.Store, h inihash.Hash) (Curve, bool) {
	if f, ok := s.Float(h); ok {
		return Constant(f), true
	}

	var keys Keyframes
	for i := 1; i <= MaxKeys; i++ {
		v, ok := s.Vec2(h.Appendf("%d", i))
		if !ok {
			break
		}
		keys = append(keys, Key[float32]{Time: v[1], Value: v[0]})
	}

	switch {
	case len(keys) == 0:
		return nil, false
	case len(keys) == 2 && isFlatLine(keys[0], keys[1]):
		return FlatLine{Base: keys[0].Value, Delta: keys[1].Value - keys[0].Value}, true
	}
	return keys, true
}
