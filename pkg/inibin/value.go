package inibin

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNone Kind = iota
	KindInt
	KindFloat
	KindVec2
	KindVec3
	KindVec4
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindVec2:
		return "vec2"
	case KindVec3:
		return "vec3"
	case KindVec4:
		return "vec4"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is one of Int, Float, Vec2, Vec3, Vec4 or String. A nil Value is
// the absent variant. The set is closed: only this package implements it.
type Value interface {
	Kind() Kind
	isValue()
}

type (
	Int    int32
	Float  float32
	Vec2   [2]float32
	Vec3   [3]float32
	Vec4   [4]float32
	String string
)

func (Int) Kind() Kind    { return KindInt }
func (Float) Kind() Kind  { return KindFloat }
func (Vec2) Kind() Kind   { return KindVec2 }
func (Vec3) Kind() Kind   { return KindVec3 }
func (Vec4) Kind() Kind   { return KindVec4 }
func (String) Kind() Kind { return KindString }

func (Int) isValue()    {}
func (Float) isValue()  {}
func (Vec2) isValue()   {}
func (Vec3) isValue()   {}
func (Vec4) isValue()   {}
func (String) isValue() {}

// KindOf returns the kind of v, KindNone for nil.
func KindOf(v Value) Kind {
	if v == nil {
		return KindNone
	}
	return v.Kind()
}
