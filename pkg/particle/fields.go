package particle

import (
	"fmt"

	"github.com/moonshadow565/TroyBinary/pkg/inihash"
)

// FieldAcceleration applies a constant acceleration to particles.
type FieldAcceleration struct {
	Name         string
	LocalSpace   bool
	Acceleration Vec3Var
}

// FieldAttraction pulls particles towards a point.
type FieldAttraction struct {
	Name         string
	Position     Vec3Var
	Radius       FloatVar
	Acceleration FloatVar
}

// FieldDrag slows particles within a radius.
type FieldDrag struct {
	Name     string
	Position Vec3Var
	Radius   FloatVar
	Strength FloatVar
}

// FieldNoise perturbs particle velocity.
type FieldNoise struct {
	Name          string
	Position      Vec3Var
	Radius        FloatVar
	Period        FloatVar
	VelocityDelta FloatVar
	AxisFraction  Vec3
}

// FieldOrbital spins particles around a direction.
type FieldOrbital struct {
	Name       string
	LocalSpace bool
	Direction  Vec3Var
}

// Fields holds the movement fields an emitter references.
type Fields struct {
	Acceleration []FieldAcceleration
	Attraction   []FieldAttraction
	Drag         []FieldDrag
	Noise        []FieldNoise
	Orbital      []FieldOrbital
}

// Len returns the total number of fields.
func (f Fields) Len() int {
	return len(f.Acceleration) + len(f.Attraction) + len(f.Drag) + len(f.Noise) + len(f.Orbital)
}

// FluidsDef configures the fluid simulation grid of an emitter.
type FluidsDef struct {
	Name                string
	Viscosity           float32
	Diffusion           float32
	Acceleration        Vec2
	Buoyancy            float32
	Dissipation         float32
	MoveKick            float32
	MoveDensity         float32
	MovementProjectionX Vec3
	MovementProjectionY Vec3
	JetKinetics         [JetCount]Vec2
	JetKineticsDir      [JetCount]float32
	JetChaos            [JetCount]Vec2
	JetChaosDir         [JetCount]float32
	InitialDensityMap   string
	InkFillTime         float32
	InkFillRate         float32
	RenderGridSize      int32
}

// JetCount is the number of fluid jets.
const JetCount = 3

// MaterialOverride replaces the material of one sub-mesh.
type MaterialOverride struct {
	SubMesh       string
	Texture       string
	Priority      int32
	RenderingMode int32
}

// MaterialOverrideSlots is the number of material overrides an entity can
// carry.
const MaterialOverrideSlots = 4

// MaterialOverrideList is the full material override block of an entity.
type MaterialOverrideList struct {
	Overrides   [MaterialOverrideSlots]MaterialOverride
	TransMap    string
	TransSample float32
	TransSource int32
}

// named resolves the definition name stored at h. Fields and fluids are
// referenced by name and read from their own section.
func (l *Loader) named(h inihash.Hash) (string, entity, bool) {
	name, ok := l.store.String(h)
	if !ok {
		return "", entity{}, false
	}
	return name, l.entity(name), true
}

func (l *Loader) fieldAcceleration(h inihash.Hash) (FieldAcceleration, bool) {
	name, e, ok := l.named(h)
	if !ok {
		return FieldAcceleration{}, false
	}
	return FieldAcceleration{
		Name:         name,
		LocalSpace:   e.intOr("f-localspace", 0) != 0,
		Acceleration: varOr(e, "f-accel", Vec3Inf),
	}, true
}

func (l *Loader) fieldAttraction(h inihash.Hash) (FieldAttraction, bool) {
	name, e, ok := l.named(h)
	if !ok {
		return FieldAttraction{}, false
	}
	return FieldAttraction{
		Name:         name,
		Position:     varOr(e, "f-pos", Vec3{}),
		Radius:       varOr(e, "f-radius", Float(0)),
		Acceleration: varOr(e, "f-accel", Float(0)),
	}, true
}

func (l *Loader) fieldDrag(h inihash.Hash) (FieldDrag, bool) {
	name, e, ok := l.named(h)
	if !ok {
		return FieldDrag{}, false
	}
	return FieldDrag{
		Name:     name,
		Position: varOr(e, "f-pos", Vec3{}),
		Radius:   varOr(e, "f-radius", Float(0)),
		Strength: varOr(e, "f-drag", Float(0)),
	}, true
}

func (l *Loader) fieldNoise(h inihash.Hash) (FieldNoise, bool) {
	name, e, ok := l.named(h)
	if !ok {
		return FieldNoise{}, false
	}
	return FieldNoise{
		Name:          name,
		Position:      varOr(e, "f-pos", Vec3{}),
		Radius:        varOr(e, "f-radius", Float(0)),
		Period:        varOr(e, "f-period", Float(FloatMax)),
		VelocityDelta: varOr(e, "f-veldelta", Float(0)),
		AxisFraction:  e.vec3Or("f-axisfrac", Vec3Inf),
	}, true
}

func (l *Loader) fieldOrbital(h inihash.Hash) (FieldOrbital, bool) {
	name, e, ok := l.named(h)
	if !ok {
		return FieldOrbital{}, false
	}
	return FieldOrbital{
		Name:       name,
		LocalSpace: e.intOr("f-localspace", 0) != 0,
		Direction:  varOr(e, "f-direction", Vec3Inf),
	}, true
}

// series collects load(owner*(prefix+i)) for i = 1.. until the first miss.
func series[T any](owner entity, prefix string, load func(inihash.Hash) (T, bool)) []T {
	var out []T
	for i := 1; i <= MaxKeys; i++ {
		v, ok := load(owner.keyf("%s%d", prefix, i))
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

// Fields loads the movement fields referenced by the entity called owner.
func (l *Loader) Fields(owner string) Fields {
	e := l.entity(owner)
	f := Fields{
		Acceleration: series(e, "field-accel-", l.fieldAcceleration),
		Attraction:   series(e, "field-attract-", l.fieldAttraction),
		Drag:         series(e, "field-drag-", l.fieldDrag),
		Noise:        series(e, "field-noise-", l.fieldNoise),
		Orbital:      series(e, "field-orbit-", l.fieldOrbital),
	}
	if n := f.Len(); n > 0 {
		l.logger.Trace("🧲 Loaded fields", "owner", owner, "count", n)
	}
	return f
}

// Fluid loads the fluid definition referenced by h, if any.
func (l *Loader) Fluid(h inihash.Hash) (*FluidsDef, bool) {
	name, e, ok := l.named(h)
	if !ok {
		return nil, false
	}
	f := &FluidsDef{
		Name:                name,
		Viscosity:           e.floatOr("f-viscosity", 0),
		Diffusion:           e.floatOr("f-diffusion", 0),
		Acceleration:        e.vec2Or("f-accel", Vec2{}),
		Buoyancy:            e.floatOr("f-buoyancy", 0),
		Dissipation:         e.floatOr("f-dissipation", 0),
		MoveKick:            e.floatOr("f-startkick", 1),
		MoveDensity:         e.floatOr("f-denseforce", 0),
		MovementProjectionX: e.vec3Or("f-movement-x", Vec3{}),
		MovementProjectionY: e.vec3Or("f-movement-y", Vec3{}),
		InitialDensityMap:   e.stringOr("f-initdensity", ""),
		InkFillTime:         e.floatOr("f-life", 0),
		InkFillRate:         e.floatOr("f-rate", 0),
		RenderGridSize:      e.intOr("f-rendersize", 0),
	}
	for i := 0; i < JetCount; i++ {
		f.JetKinetics[i] = e.vec2Or(fmt.Sprintf("f-jetpos%d", i+1), Vec2{})
		f.JetKineticsDir[i] = e.floatOr(fmt.Sprintf("f-jetdir%d", i+1), 0)
		f.JetChaos[i] = e.vec2Or(fmt.Sprintf("f-jetspeed%d", i+1), Vec2{})
		f.JetChaosDir[i] = e.floatOr(fmt.Sprintf("f-jetspeeddiff%d", i+1), 0)
	}
	l.logger.Trace("💧 Loaded fluid", "name", name)
	return f, true
}

// materialOverrides loads the material override block of e.
func (e entity) materialOverrides() MaterialOverrideList {
	m := MaterialOverrideList{
		TransMap:    e.stringOr("MaterialOverrideTransMap", ""),
		TransSample: e.floatOr("p-trans-sample", 0),
		TransSource: e.intOr("MaterialOverrideTransSource", 0),
	}
	for i := range m.Overrides {
		m.Overrides[i] = MaterialOverride{
			SubMesh:       e.s.StringOr(e.keyf("MaterialOverride%dSubMesh", i), ""),
			Texture:       e.s.StringOr(e.keyf("MaterialOverride%dTexture", i), ""),
			Priority:      e.s.IntOr(e.keyf("MaterialOverride%dPriority", i), 0),
			RenderingMode: e.s.IntOr(e.keyf("MaterialOverride%dBlendMode", i), 0),
		}
	}
	return m
}

// Active returns the overrides that name a sub-mesh.
func (m MaterialOverrideList) Active() []MaterialOverride {
	var out []MaterialOverride
	for _, o := range m.Overrides {
		if o.SubMesh != "" {
			out = append(out, o)
		}
	}
	return out
}
