package particle

import (
	"github.com/moonshadow565/TroyBinary/pkg/inibin"
	"github.com/moonshadow565/TroyBinary/pkg/inihash"
)

// FlexSlots is the number of indexed alternates probed for a property.
const FlexSlots = 4

// Unselected is the Index of a Flex for which no alternate was found.
const Unselected = -1

// Flex is a property that may be overridden by one of the indexed
// alternates stored at base+"_flex0" .. base+"_flex3".
type Flex[T any] struct {
	Value T
	// Index is the alternate the value came from, or Unselected.
	Index int
}

// Selected reports whether an alternate was found.
func (f Flex[T]) Selected() bool {
	return f.Index != Unselected
}

// FlexKey returns the key of alternate i of h.
func FlexKey(h inihash.Hash, i int) inihash.Hash {
	return h.Appendf("_flex%d", i)
}

// LoadFlexFloat probes the float alternates of h. The first present slot
// wins. With no slot present it returns def, Unselected and false.
func LoadFlexFloat(s *inibin.Store, h inihash.Hash, def float32) (Flex[float32], bool) {
	for i := 0; i < FlexSlots; i++ {
		if f, ok := s.Float(FlexKey(h, i)); ok {
			return Flex[float32]{Value: f, Index: i}, true
		}
	}
	return Flex[float32]{Value: def, Index: Unselected}, false
}

// LoadFlexVar probes the animated-property alternates of h, each loaded
// with LoadVar starting from def.
func LoadFlexVar[T Vector[T]](s *inibin.Store, h inihash.Hash, def T) (Flex[Var[T]], bool) {
	for i := 0; i < FlexSlots; i++ {
		if v, ok := LoadVar(s, FlexKey(h, i), def); ok {
			return Flex[Var[T]]{Value: v, Index: i}, true
		}
	}
	return Flex[Var[T]]{Value: NewVar(def), Index: Unselected}, false
}
