package particle

import "fmt"

// SystemSection is the section holding the group list of a particle system.
const SystemSection = "System"

// MaxGroups bounds the GroupPartN series of a system.
const MaxGroups = 99

// System flag bits.
const (
	FlagSimulateWhileOffScreen   uint32 = 0x01
	FlagPersistThruDeath         uint32 = 0x02
	FlagSimulateOncePerFrame     uint32 = 0x04
	FlagSoundEndsOnEmitterEnd    uint32 = 0x08
	FlagSoundsPlayWhileOffScreen uint32 = 0x10
	FlagSimulateEveryFrame       uint32 = 0x20
	FlagKeepOrientation          uint32 = 0x40
)

var systemFlags = []struct {
	field string
	bit   uint32
	def   bool
}{
	{"SimulateWhileOffScreen", FlagSimulateWhileOffScreen, false},
	{"PersistThruDeath", FlagPersistThruDeath, false},
	{"SimulateOncePerFrame", FlagSimulateOncePerFrame, false},
	{"SoundEndsOnEmitterEnd", FlagSoundEndsOnEmitterEnd, false},
	{"SoundsPlayWhileOffScreen", FlagSoundsPlayWhileOffScreen, false},
	{"SimulateEveryFrame", FlagSimulateEveryFrame, false},
	{"KeepOrientationAfterSpellCast", FlagKeepOrientation, true},
}

// System is a complete particle effect: its groups and global settings.
type System struct {
	Simple  []*SimpleParticle
	Complex []*ComplexEmitter

	VisibilityRadius  float32
	Sounds            Sounds
	Flags             uint32
	BuildUpTime       float32
	MaterialOverrides MaterialOverrideList
	SelfIllumination  float32
}

// Groups returns the number of loaded groups.
func (s *System) Groups() int {
	return len(s.Simple) + len(s.Complex)
}

// HasFlag reports whether every bit of flag is set.
func (s *System) HasFlag(flag uint32) bool {
	return s.Flags&flag == flag
}

// System loads the particle system described by the store. Groups are read
// from GroupPart1, GroupPart2, ... until the first missing index.
func (l *Loader) System() *System {
	e := l.entity(SystemSection)
	sys := &System{}

	for i := 1; i <= MaxGroups; i++ {
		name, ok := l.store.String(e.keyf("GroupPart%d", i))
		if !ok {
			break
		}
		importance := ParseImportance(e.stringOr(fmt.Sprintf("GroupPart%dImportance", i), ""))
		kind := e.stringOr(fmt.Sprintf("GroupPart%dType", i), "Complex")

		l.logger.Trace("📦 Loading group", "index", i, "name", name, "type", kind, "importance", importance)
		if kind == "Simple" {
			p := l.SimpleParticle(name)
			p.Importance = importance
			sys.Simple = append(sys.Simple, p)
			continue
		}
		em := l.ComplexEmitter(name)
		em.Importance = importance
		em.OverrideTranslation = e.vec3Or(fmt.Sprintf("Override-Offset%d", i), Vec3{})
		em.OverrideRotation = e.vec3Or(fmt.Sprintf("Override-Rotation%d", i), Vec3{})
		em.OverrideScale = e.vec3Or(fmt.Sprintf("Override-Scale%d", i), Vec3{})
		sys.Complex = append(sys.Complex, em)
	}

	sys.VisibilityRadius = e.floatOr("group-vis", 250)
	sys.Sounds = e.sounds()
	for _, f := range systemFlags {
		if e.boolOr(f.field, f.def) {
			sys.Flags |= f.bit
		}
	}
	sys.BuildUpTime = e.floatOr("build-up-time", 0)
	sys.MaterialOverrides = e.materialOverrides()
	sys.SelfIllumination = e.floatOr("SelfIllumination", -1)

	l.logger.Debug("✅ Loaded particle system",
		"simple", len(sys.Simple),
		"complex", len(sys.Complex),
		"flags", fmt.Sprintf("0x%02x", sys.Flags),
	)
	return sys
}
