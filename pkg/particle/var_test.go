package particle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moonshadow565/TroyBinary/pkg/inibin"
	"github.com/moonshadow565/TroyBinary/pkg/inihash"
)

func TestVar_NoKeysReturnsBase(t *testing.T) {
	v := NewVar(Vec3{1, 2, 3})
	assert.Equal(t, Vec3{1, 2, 3}, v.EvalAnim(0))
	assert.Equal(t, Vec3{1, 2, 3}, v.EvalAnim(0.7))
	assert.Equal(t, Vec3{1, 2, 3}, v.Eval(0.7, 0.3))
	assert.False(t, v.HasRamp())
}

func TestVar_ScalarSearchesKeys(t *testing.T) {
	v := NewVar(Float(0))
	v.Keys = []Key[Float]{{Time: 0, Value: 10}, {Time: 1, Value: 20}}
	v.BuildRamp()

	assert.False(t, v.HasRamp(), "scalar properties never use a ramp")
	assert.Equal(t, Float(15), v.EvalAnim(0.5))
	assert.InDelta(t, 15.03, float64(v.EvalAnim(0.503)), 1e-4)
	assert.Equal(t, Float(10), v.EvalAnim(-1))
	assert.Equal(t, Float(20), v.EvalAnim(2))
}

func TestVar_CompositeUsesRamp(t *testing.T) {
	v := NewVar(Vec3{})
	v.Keys = []Key[Vec3]{{Time: 0, Value: Vec3{0, 0, 0}}, {Time: 1, Value: Vec3{256, 512, 768}}}
	v.BuildRamp()
	require.True(t, v.HasRamp())

	assert.Equal(t, Vec3{128, 256, 384}, v.EvalAnim(0.5))
	// Between ramp slots the value is held, not interpolated.
	assert.Equal(t, Vec3{128, 256, 384}, v.EvalAnim(0.503))
	assert.Equal(t, Vec3{0, 0, 0}, v.EvalAnim(-1))
	assert.Equal(t, Vec3{255, 510, 765}, v.EvalAnim(2))
	assert.Equal(t, Vec3{0, 0, 0}, v.EvalAnim(float32(math.NaN())))
}

func TestVar_RampMatchesDirectEvaluation(t *testing.T) {
	v := NewVar(Color{})
	v.Keys = []Key[Color]{
		{Time: 0.1, Value: Color{1, 0, 0, 1}},
		{Time: 0.4, Value: Color{0, 1, 0, 0.5}},
		{Time: 0.9, Value: Color{0, 0, 1, 0}},
	}
	direct := v
	v.BuildRamp()

	ramp := v.Ramp()
	require.Len(t, ramp, RampSize)
	for k := 0; k < RampSize; k++ {
		assert.Equal(t, direct.EvalAnim(float32(k)/RampSize), ramp[k], "slot %d", k)
	}
}

func TestVar_ApplyProbability(t *testing.T) {
	v := NewVar(Vec3{1, 2, 3})
	v.Curves[1] = Constant(3)
	v.Curves[2] = FlatLine{Base: 0, Delta: 2}

	assert.Equal(t, Vec3{1, 6, 3}, v.Eval(0, 0.5))
	assert.Equal(t, Vec3{1, 6, 6}, v.Eval(0, 1))
}

func TestLoadVar(t *testing.T) {
	h := inihash.Section("Spark", "p-vel")

	t.Run("missing", func(t *testing.T) {
		v, ok := LoadVar(inibin.New(), h, Vec3{9, 9, 9})
		assert.False(t, ok)
		assert.Equal(t, Vec3{9, 9, 9}, v.Base)
	})

	t.Run("base from text", func(t *testing.T) {
		s := inibin.New()
		s.Set(h, inibin.String("1 2.5 -3"))
		v, ok := LoadVar(s, h, Vec3{})
		require.True(t, ok)
		assert.Equal(t, Vec3{1, 2.5, -3}, v.Base)
		assert.Empty(t, v.Keys)
		assert.False(t, v.HasRamp())
	})

	t.Run("base from stored vector", func(t *testing.T) {
		s := inibin.New()
		s.Set(h, inibin.Vec3{4, 5, 6})
		v, ok := LoadVar(s, h, Vec3{})
		require.True(t, ok)
		assert.Equal(t, Vec3{4, 5, 6}, v.Base)
	})

	t.Run("malformed base drops everything", func(t *testing.T) {
		s := inibin.New()
		s.Set(h, inibin.String("1 2"))
		s.Set(h.Append("1"), inibin.String("0 1 1 1"))
		s.Set(h.Append("XP"), inibin.Float(2))
		v, ok := LoadVar(s, h, Vec3{7, 7, 7})
		assert.False(t, ok)
		assert.Equal(t, NewVar(Vec3{7, 7, 7}), v)
	})

	t.Run("keys and ramp", func(t *testing.T) {
		s := inibin.New()
		s.Set(h.Append("1"), inibin.String("0 0 0 0"))
		s.Set(h.Append("2"), inibin.String("1 256 512 768"))
		v, ok := LoadVar(s, h, Vec3{1, 1, 1})
		require.True(t, ok)
		assert.Equal(t, Vec3{1, 1, 1}, v.Base, "base keeps the default when only keys exist")
		require.Len(t, v.Keys, 2)
		assert.True(t, v.HasRamp())
		assert.Equal(t, Vec3{128, 256, 384}, v.EvalAnim(0.5))
	})

	t.Run("malformed key stops the series", func(t *testing.T) {
		s := inibin.New()
		s.Set(h.Append("1"), inibin.String("0 1 1 1"))
		s.Set(h.Append("2"), inibin.String("0.5 1 1"))
		s.Set(h.Append("3"), inibin.String("1 2 2 2"))
		v, ok := LoadVar(s, h, Vec3{})
		require.True(t, ok)
		assert.Len(t, v.Keys, 1)
	})

	t.Run("axis curves", func(t *testing.T) {
		s := inibin.New()
		s.Set(h, inibin.String("1 1 1"))
		s.Set(h.Append("YP"), inibin.Float(2))
		s.Set(h.Append("ZP1"), inibin.Vec2{0, 0})
		s.Set(h.Append("ZP2"), inibin.Vec2{4, 1})
		v, ok := LoadVar(s, h, Vec3{})
		require.True(t, ok)
		assert.Nil(t, v.Curves[0])
		assert.Equal(t, Constant(2), v.Curves[1])
		assert.Equal(t, FlatLine{Base: 0, Delta: 4}, v.Curves[2])
		assert.Equal(t, Vec3{1, 2, 2}, v.Eval(0, 0.5))
	})

	t.Run("only a curve", func(t *testing.T) {
		s := inibin.New()
		s.Set(h.Append("XP"), inibin.Float(0.5))
		v, ok := LoadVar(s, h, Vec3{2, 2, 2})
		require.True(t, ok)
		assert.Equal(t, Vec3{1, 2, 2}, v.Eval(0, 0))
	})
}

func TestLoadVar_Float(t *testing.T) {
	h := inihash.Section("Spark", "e-rate")

	t.Run("numeric base", func(t *testing.T) {
		s := inibin.New()
		s.Set(h, inibin.Float(2.5))
		v, ok := LoadVar(s, h, Float(0))
		require.True(t, ok)
		assert.Equal(t, Float(2.5), v.Base)
	})

	t.Run("P fallback curve", func(t *testing.T) {
		s := inibin.New()
		s.Set(h, inibin.String("3"))
		s.Set(h.Append("P"), inibin.Float(2))
		v, ok := LoadVar(s, h, Float(0))
		require.True(t, ok)
		assert.Equal(t, Float(6), v.Eval(0, 0.5))
	})

	t.Run("XP preferred over P", func(t *testing.T) {
		s := inibin.New()
		s.Set(h, inibin.String("3"))
		s.Set(h.Append("XP"), inibin.Float(4))
		s.Set(h.Append("P"), inibin.Float(2))
		v, ok := LoadVar(s, h, Float(0))
		require.True(t, ok)
		assert.Equal(t, Constant(4), v.Curves[0])
	})

	t.Run("scalar keys", func(t *testing.T) {
		s := inibin.New()
		s.Set(h.Append("1"), inibin.String("0 10"))
		s.Set(h.Append("2"), inibin.String("1 20"))
		v, ok := LoadVar(s, h, Float(0))
		require.True(t, ok)
		assert.False(t, v.HasRamp())
		assert.Equal(t, Float(15), v.EvalAnim(0.5))
	})
}

func TestLoadVar_Color(t *testing.T) {
	h := inihash.Section("Glow", "p-xrgba")

	s := inibin.New()
	s.Set(h, inibin.String("1 0.5 0.25 1"))
	s.Set(h.Append("AP"), inibin.Float(0.5))
	v, ok := LoadVar(s, h, ColorInf)
	require.True(t, ok)
	assert.Equal(t, Color{1, 0.5, 0.25, 1}, v.Base)
	assert.Equal(t, Color{1, 0.5, 0.25, 0.5}, v.Eval(0, 0))

	s.Set(h, inibin.String("1"))
	_, ok = LoadVar(s, h, ColorInf)
	assert.False(t, ok, "a color base needs all four channels")
}
