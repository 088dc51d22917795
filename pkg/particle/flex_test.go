package particle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moonshadow565/TroyBinary/pkg/inibin"
	"github.com/moonshadow565/TroyBinary/pkg/inihash"
)

func TestFlexKey(t *testing.T) {
	h := inihash.Section("Emitter", "e-rate")
	assert.Equal(t, inihash.Hash(0x79e59d1e), FlexKey(h, 2))
}

func TestLoadFlexFloat(t *testing.T) {
	h := inihash.Section("Emitter", "p-scale")

	t.Run("unselected", func(t *testing.T) {
		f, ok := LoadFlexFloat(inibin.New(), h, 1.5)
		assert.False(t, ok)
		assert.False(t, f.Selected())
		assert.Equal(t, Unselected, f.Index)
		assert.Equal(t, float32(1.5), f.Value)
	})

	t.Run("single slot", func(t *testing.T) {
		s := inibin.New()
		s.Set(FlexKey(h, 2), inibin.Float(4))
		f, ok := LoadFlexFloat(s, h, 1.5)
		require.True(t, ok)
		assert.Equal(t, 2, f.Index)
		assert.Equal(t, float32(4), f.Value)
	})

	t.Run("first slot wins", func(t *testing.T) {
		s := inibin.New()
		s.Set(FlexKey(h, 3), inibin.Float(9))
		s.Set(FlexKey(h, 1), inibin.Int(3))
		f, ok := LoadFlexFloat(s, h, 0)
		require.True(t, ok)
		assert.Equal(t, 1, f.Index)
		assert.Equal(t, float32(3), f.Value)
	})

	t.Run("non-numeric slot skipped", func(t *testing.T) {
		s := inibin.New()
		s.Set(FlexKey(h, 0), inibin.String("none"))
		s.Set(FlexKey(h, 2), inibin.Float(2))
		f, ok := LoadFlexFloat(s, h, 0)
		require.True(t, ok)
		assert.Equal(t, 2, f.Index)
	})
}

func TestLoadFlexVar(t *testing.T) {
	h := inihash.Section("Emitter", "p-vel")

	t.Run("unselected keeps default", func(t *testing.T) {
		f, ok := LoadFlexVar(inibin.New(), h, Vec3{0, 1, 0})
		assert.False(t, ok)
		assert.Equal(t, Unselected, f.Index)
		assert.Equal(t, Vec3{0, 1, 0}, f.Value.Eval(0.5, 0.5))
	})

	t.Run("slot two", func(t *testing.T) {
		s := inibin.New()
		s.Set(FlexKey(h, 2), inibin.String("1 2 3"))
		f, ok := LoadFlexVar(s, h, Vec3{})
		require.True(t, ok)
		assert.Equal(t, 2, f.Index)
		assert.Equal(t, Vec3{1, 2, 3}, f.Value.Base)
	})

	t.Run("keys only in slot", func(t *testing.T) {
		s := inibin.New()
		slot := FlexKey(h, 0)
		s.Set(slot.Append("1"), inibin.String("0 0 0 0"))
		s.Set(slot.Append("2"), inibin.String("1 2 2 2"))
		f, ok := LoadFlexVar(s, h, Vec3{})
		require.True(t, ok)
		assert.Equal(t, 0, f.Index)
		assert.True(t, f.Value.HasRamp())
	})
}
