package inibin

import (
	"math"

	"github.com/moonshadow565/TroyBinary/pkg/inihash"
	"github.com/moonshadow565/TroyBinary/pkg/utils/cscan"
)

// Coercions never fail loudly: a value that cannot be represented as the
// requested type reports false, exactly like a missing key.
//
//	source \ target  int    float  bool   string  vecN
//	Int              =      widen  !=0    decimal -
//	Float            trunc  =      !=0    %f      -
//	VecN             -      -      -      %f ...  = (same N only)
//	String           atoi   atof   '1'    =       sscanf, N fields

// truncate converts toward zero, saturating at the int32 range.
func truncate(f float32) int32 {
	switch {
	case f != f:
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int32(f)
}

// AsInt converts v to an int32.
func AsInt(v Value) (int32, bool) {
	switch v := v.(type) {
	case Int:
		return int32(v), true
	case Float:
		return truncate(float32(v)), true
	case String:
		return cscan.Atoi(string(v))
	}
	return 0, false
}

// AsUint32 converts v to an int32 and reinterprets its bits.
func AsUint32(v Value) (uint32, bool) {
	i, ok := AsInt(v)
	return uint32(i), ok
}

// AsFloat converts v to a float32.
func AsFloat(v Value) (float32, bool) {
	switch v := v.(type) {
	case Int:
		return float32(v), true
	case Float:
		return float32(v), true
	case String:
		f, ok := cscan.Atof(string(v))
		return float32(f), ok
	}
	return 0, false
}

// AsBool converts v to a bool. Strings are true when they start with '1'.
func AsBool(v Value) (bool, bool) {
	switch v := v.(type) {
	case Int:
		return v != 0, true
	case Float:
		return v != 0, true
	case String:
		return len(v) > 0 && v[0] == '1', true
	}
	return false, false
}

// AsString renders v as text.
func AsString(v Value) (string, bool) {
	switch v := v.(type) {
	case Int:
		return cscan.FormatInt(int32(v)), true
	case Float:
		return cscan.FormatFloat(float64(v)), true
	case Vec2:
		return cscan.FormatFloats(v[:]...), true
	case Vec3:
		return cscan.FormatFloats(v[:]...), true
	case Vec4:
		return cscan.FormatFloats(v[:]...), true
	case String:
		return string(v), true
	}
	return "", false
}

// scanVec fills out from a string holding exactly len(out) numbers.
func scanVec(s String, out []float32) bool {
	vals, n := cscan.ScanFloats(string(s), len(out))
	if n != len(out) {
		return false
	}
	copy(out, vals)
	return true
}

// AsVec2 converts v to a 2-component vector.
func AsVec2(v Value) (Vec2, bool) {
	var out Vec2
	switch v := v.(type) {
	case Vec2:
		return v, true
	case String:
		if scanVec(v, out[:]) {
			return out, true
		}
	}
	return Vec2{}, false
}

// AsVec3 converts v to a 3-component vector.
func AsVec3(v Value) (Vec3, bool) {
	var out Vec3
	switch v := v.(type) {
	case Vec3:
		return v, true
	case String:
		if scanVec(v, out[:]) {
			return out, true
		}
	}
	return Vec3{}, false
}

// AsVec4 converts v to a 4-component vector.
func AsVec4(v Value) (Vec4, bool) {
	var out Vec4
	switch v := v.(type) {
	case Vec4:
		return v, true
	case String:
		if scanVec(v, out[:]) {
			return out, true
		}
	}
	return Vec4{}, false
}

// Format renders v for display, "<none>" for an absent value.
func Format(v Value) string {
	if s, ok := AsString(v); ok {
		return s
	}
	return "<none>"
}

// Int returns the value at h as an int32.
func (s *Store) Int(h inihash.Hash) (int32, bool) { return AsInt(s.Get(h)) }

// IntOr returns the value at h as an int32, or def.
func (s *Store) IntOr(h inihash.Hash, def int32) int32 {
	if v, ok := s.Int(h); ok {
		return v
	}
	return def
}

// Uint32 returns the value at h as a uint32.
func (s *Store) Uint32(h inihash.Hash) (uint32, bool) { return AsUint32(s.Get(h)) }

// Uint32Or returns the value at h as a uint32, or def.
func (s *Store) Uint32Or(h inihash.Hash, def uint32) uint32 {
	if v, ok := s.Uint32(h); ok {
		return v
	}
	return def
}

// Float returns the value at h as a float32.
func (s *Store) Float(h inihash.Hash) (float32, bool) { return AsFloat(s.Get(h)) }

// FloatOr returns the value at h as a float32, or def.
func (s *Store) FloatOr(h inihash.Hash, def float32) float32 {
	if v, ok := s.Float(h); ok {
		return v
	}
	return def
}

// Bool returns the value at h as a bool.
func (s *Store) Bool(h inihash.Hash) (bool, bool) { return AsBool(s.Get(h)) }

// BoolOr returns the value at h as a bool, or def.
func (s *Store) BoolOr(h inihash.Hash, def bool) bool {
	if v, ok := s.Bool(h); ok {
		return v
	}
	return def
}

// String returns the value at h as text.
func (s *Store) String(h inihash.Hash) (string, bool) { return AsString(s.Get(h)) }

// StringOr returns the value at h as text, or def.
func (s *Store) StringOr(h inihash.Hash, def string) string {
	if v, ok := s.String(h); ok {
		return v
	}
	return def
}

// Vec2 returns the value at h as a 2-component vector.
func (s *Store) Vec2(h inihash.Hash) (Vec2, bool) { return AsVec2(s.Get(h)) }

// Vec2Or returns the value at h as a 2-component vector, or def.
func (s *Store) Vec2Or(h inihash.Hash, def Vec2) Vec2 {
	if v, ok := s.Vec2(h); ok {
		return v
	}
	return def
}

// Vec3 returns the value at h as a 3-component vector.
func (s *Store) Vec3(h inihash.Hash) (Vec3, bool) { return AsVec3(s.Get(h)) }

// Vec3Or returns the value at h as a 3-component vector, or def.
func (s *Store) Vec3Or(h inihash.Hash, def Vec3) Vec3 {
	if v, ok := s.Vec3(h); ok {
		return v
	}
	return def
}

// Vec4 returns the value at h as a 4-component vector.
func (s *Store) Vec4(h inihash.Hash) (Vec4, bool) { return AsVec4(s.Get(h)) }

// Vec4Or returns the value at h as a 4-component vector, or def.
func (s *Store) Vec4Or(h inihash.Hash, def Vec4) Vec4 {
	if v, ok := s.Vec4(h); ok {
		return v
	}
	return def
}
