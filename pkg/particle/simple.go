package particle

import "fmt"

// Quad types with extra settings.
const (
	QuadMesh       int32 = 3
	QuadProjection int32 = 7
)

// lingerLimit bounds the linger times of simple emitters.
const lingerLimit = 10

// Mesh names the geometry a mesh particle renders.
type Mesh struct {
	File            string
	SkinFile        string
	Skeleton        string
	Animation       string
	DisableBackface bool
}

// BoundObjectScale scales offsets and birth scales by the size of the
// object the system is attached to.
type BoundObjectScale struct {
	OffsetBySize   float32
	ScaleBySize    float32
	OffsetByHeight float32
	ScaleByHeight  float32
	OffsetByRadius float32
	ScaleByRadius  float32
}

func (e entity) boundObjectScale() BoundObjectScale {
	return BoundObjectScale{
		OffsetBySize:   e.floatOr("p-flexoffset", 0),
		ScaleBySize:    e.floatOr("p-flexscale", 0),
		OffsetByHeight: e.floatOr("p-offsetbyheight", 0),
		ScaleByHeight:  e.floatOr("p-scalebyheight", 0),
		OffsetByRadius: e.floatOr("p-offsetbyradius", 0),
		ScaleByRadius:  e.floatOr("p-scalebyradius", 0),
	}
}

// Timing controls when an emitter is active.
type Timing struct {
	// Delay before the first emission, never negative.
	StartOffset   float32
	// Lifetime of the emitter, FloatMax for forever.
	Lifetime      float32
	LifetimeScale bool
	Period        float32
	ActiveTime    float32
}

func (e entity) timing() Timing {
	start := e.floatOr("e-timeoffset", 0)
	if start < 0 {
		start = 0
	}
	return Timing{
		StartOffset:   start,
		Lifetime:      forever(e.floatOr("e-life", -1)),
		LifetimeScale: e.boolOr("e-life-scale", false),
		ActiveTime:    forever(e.floatOr("e-active", FloatMax)),
		Period:        forever(e.floatOr("e-period", FloatMax)),
	}
}

// Sounds names the sounds an emitter or system plays.
type Sounds struct {
	OnCreate   string
	Persistent string
}

func (e entity) sounds() Sounds {
	return Sounds{
		OnCreate:   e.stringOr("SoundOnCreate", ""),
		Persistent: e.stringOr("SoundPersistent", ""),
	}
}

// SimpleEmitter is an emitter of a simple particle group.
type SimpleEmitter struct {
	Name string

	Rate                  FloatVar
	ParticleLifetime      FloatVar
	ParticleLifetimeScale bool
	ParticleLinger        float32
	EmitterLinger         float32

	BirthTranslation        Vec3Var
	BirthRotation           FloatVar
	BirthScale              FloatVar
	BirthVelocity           Vec3Var
	BirthRotationalVelocity FloatVar

	EmitOffset               Vec3Var
	EmitRotationAngles       []FloatVar
	EmitRotationAxes         []Vec3
	LocalOrientation         bool
	ParticleLocalOrientation bool

	HasFixedOrbit   bool
	FixedOrbitType  FixedOrbitType
	ParticleBind    Vec2
	LockedToEmitter bool

	Timing Timing

	CastShadow     bool
	SingleParticle int32

	StartFrame         int32
	NumFrames          int32
	FrameRate          float32
	QuadType           int32
	UVScrollRate       Vec2
	UVScrollClamp      bool
	DirectionOriented  bool
	ScaleAlongMovement float32
	Scale              FloatVar
	Rotation           FloatVar
	RotationEnabled    bool
	ProjectionYRange   float32
	ProjectionFading   float32
	ScaleBias          Vec2
	Orientation        Orientation
	RandomStartFrame   bool
	ScaleUpFromOrigin  bool
	ColorLookupTypes   [2]ColorLookupType
	ColorLookupScales  Vec2
	ColorLookupOffsets Vec2
	BoundObject        BoundObjectScale
	Mesh               Mesh

	Fields            Fields
	Fluid             *FluidsDef
	MaterialOverrides MaterialOverrideList
	Sounds            Sounds

	FlexScaleEmitOffset       *Flex[float32]
	FlexScaleBirthScale       *Flex[float32]
	FlexOffset                *Flex[Vec3Var]
	FlexBirthTranslation      *Flex[Vec3Var]
	FlexRate                  *Flex[FloatVar]
	FlexBirthRotationVelocity *Flex[FloatVar]
	FlexParticleLifetime      *Flex[FloatVar]
	FlexBirthVelocity         *Flex[Vec3Var]
}

// SimpleParticle is a particle group with its own render state and one or
// more emitters.
type SimpleParticle struct {
	Name           string
	Importance     Importance
	BlendMode      int32
	RenderFlags    uint32
	Pass           int32
	AlphaRef       int32
	Texture        string
	ColorTexture   string
	NormalMap      string
	FalloffTexture string
	Distortion     float32
	DistortionMode uint32
	TexDiv         Vec2
	UvMode         UvMode
	Emitters       []SimpleEmitter
}

// SimpleParticle loads the simple particle group called name. Its emitters
// are listed as Emitter1, Emitter2, ...; a group with no list is its own
// single emitter.
func (l *Loader) SimpleParticle(name string) *SimpleParticle {
	e := l.entity(name)
	p := &SimpleParticle{
		Name:           name,
		BlendMode:      e.intOr("rendermode", 0),
		Pass:           e.intOr("pass", 0),
		AlphaRef:       e.intOr("e-alpharef", 5),
		UvMode:         UvMode(e.intOr("p-uvmode", int32(UvModeDefault))),
		Distortion:     e.floatOr("p-distortion-power", 0),
		DistortionMode: e.uint32Or("p-distortion-mode", 1),
		RenderFlags:    e.renderFlags(),
		Texture:        e.stringOr("p-texture", ""),
		TexDiv:         e.vec2Or("p-texdiv", Vec2Inf),
		ColorTexture:   e.stringOr("p-rgba", ""),
		NormalMap:      e.stringOr("p-normal-map", ""),
		FalloffTexture: e.stringOr("p-falloff-texture", ""),
	}
	if e.boolOr("dont-scroll-alpha-UV", false) {
		p.UvMode = UvModeLockAlpha
	}

	for i := 1; i <= MaxKeys; i++ {
		emitter, ok := l.store.String(e.keyf("Emitter%d", i))
		if !ok {
			break
		}
		p.Emitters = append(p.Emitters, l.simpleEmitter(emitter, p))
	}
	if len(p.Emitters) == 0 {
		p.Emitters = append(p.Emitters, l.simpleEmitter(name, p))
	}

	l.logger.Debug("✨ Loaded simple particle", "name", name, "emitters", len(p.Emitters))
	return p
}

func (l *Loader) simpleEmitter(name string, p *SimpleParticle) SimpleEmitter {
	e := l.entity(name)
	em := SimpleEmitter{
		Name:       name,
		StartFrame: e.intOr("p-startframe", 0),
		NumFrames:  e.intOr("p-numframes", frameCount(p.TexDiv)),
		FrameRate:  e.floatOr("p-frameRate", 0),
		QuadType:   e.intOr("p-type", 0),

		UVScrollRate:       e.vec2Or("p-uvscroll-rgb", Vec2{}),
		UVScrollClamp:      e.boolOr("p-uvscroll-rgb-clamp", false),
		DirectionOriented:  e.boolOr("p-vecalign", false),
		ScaleAlongMovement: e.floatOr("Particle-ScaleAlongMovementVector", 0),
		Scale:              varOr(e, "p-xscale", Float(1)),
		Rotation:           varOr(e, "p-xquadrot", Float(0)),
		RotationEnabled:    e.boolOr("p-xquadrot-on", false),

		Timing:         e.timing(),
		CastShadow:     e.boolOr("p-shadow", false),
		SingleParticle: e.intOr("single-particle", 0),

		Rate:                  varOr(e, "e-rate", Float(0)),
		ParticleLifetime:      varOr(e, "p-life", Float(0)),
		ParticleLifetimeScale: e.boolOr("p-life-scale", false),

		BirthTranslation:        varOr(e, "p-postoffset", Vec3{}),
		BirthRotation:           varOr(e, "p-quadrot", Float(0)),
		BirthScale:              varOr(e, "p-scale", Float(1)),
		BirthVelocity:           varOr(e, "p-vel", Vec3{}),
		BirthRotationalVelocity: varOr(e, "p-rotvel", Float(0)),

		LocalOrientation:         e.boolOr("e-local-orient", false),
		ParticleLocalOrientation: e.boolOr("p-local-orient", false),
		HasFixedOrbit:            e.boolOr("p-fixedorbit", false),
		FixedOrbitType:           FixedOrbitType(e.intOr("p-fixedorbittype", int32(OrbitWorldY))),
		EmitOffset:               varOr(e, "p-offset", Vec3{}),

		ParticleBind:       e.vec2Or("p-bindtoemitter", Vec2{}),
		LockedToEmitter:    e.boolOr("p-lockedtoemitter", false),
		ScaleBias:          e.vec2Or("p-scalebias", Vec2Inf),
		Orientation:        Orientation(e.intOr("p-simpleorient", int32(OrientCamera))),
		RandomStartFrame:   e.boolOr("p-randomstartframe", false),
		ScaleUpFromOrigin:  e.boolOr("p-scaleupfromorigin", false),
		ColorLookupTypes:   e.colorLookup(),
		ColorLookupScales:  e.vec2Or("p-colorscale", Vec2Inf),
		ColorLookupOffsets: e.vec2Or("p-coloroffset", Vec2Inf),
		ParticleLinger:     clampLinger(e.floatOr("p-linger", lingerLimit), lingerLimit),
		EmitterLinger:      clampLinger(e.floatOr("e-linger", lingerLimit), lingerLimit),
		BoundObject:        e.boundObjectScale(),

		Fields:            l.Fields(name),
		MaterialOverrides: e.materialOverrides(),
		Sounds:            e.sounds(),

		FlexRate:                  flexVar(e, "e-rate", Float(0)),
		FlexParticleLifetime:      flexVar(e, "p-life", Float(0)),
		FlexBirthTranslation:      flexVar(e, "p-postoffset", Vec3{}),
		FlexBirthVelocity:         flexVar(e, "p-vel", Vec3{}),
		FlexBirthRotationVelocity: flexVar(e, "p-rotvel", Float(0)),
		FlexScaleEmitOffset:       flexFloat(e, "p-scaleEmitOffset", 0),
		FlexScaleBirthScale:       flexFloat(e, "p-scale", 0),
		FlexOffset:                flexVar(e, "p-offset", Vec3{}),
	}
	em.Mesh.DisableBackface = e.intOr("p-backfaceon", 0) != 0
	// 30 is a placeholder the producer tool wrote for "not single".
	if em.SingleParticle == 30 {
		em.SingleParticle = 0
	}

	switch em.QuadType {
	case QuadMesh:
		em.Mesh.File = e.stringOr("p-mesh", "arrow01.sco")
		em.Mesh.SkinFile = e.stringOr("p-skin", "")
		em.Mesh.Skeleton = e.stringOr("p-skeleton", "")
		em.Mesh.Animation = e.stringOr("p-animation", "")
	case QuadProjection:
		em.ProjectionYRange = e.floatOr("p-projection-y-range", 5)
		em.ProjectionFading = e.floatOr("p-projection-fading", 200)
	}

	em.EmitRotationAngles, em.EmitRotationAxes = emitRotations(e)
	em.Fluid, _ = l.Fluid(e.key("fluid-params"))

	l.logger.Trace("🔫 Loaded simple emitter", "name", name, "quad_type", em.QuadType)
	return em
}

// String summarizes the group for logs.
func (p *SimpleParticle) String() string {
	return fmt.Sprintf("simple %q (%d emitters)", p.Name, len(p.Emitters))
}
