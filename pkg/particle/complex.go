package particle

import "fmt"

// ComplexParticle is the particle spawned by a complex emitter.
type ComplexParticle struct {
	Name string

	StartFrame int32
	NumFrames  int32
	FrameRate  float32
	QuadType   int32
	Mesh       Mesh

	UVScrollRate       Vec2Var
	DirectionOriented  bool
	ScaleAlongMovement float32
	UniformScale       bool

	// PostRotation is the fixed orientation applied after the particle's
	// own rotation, as Euler angles in degrees (pitch, yaw, roll).
	PostRotation    Vec3
	HasPostRotation bool

	LocalOrientation bool
	RandomStartFrame bool
	CastShadow       bool
	Distortion       float32
	UvMode           UvMode
	TrailMode        TrailMode
	BeamMode         BeamMode
	ProjectionYRange float32
	ProjectionFading float32

	Velocity          Vec3Var
	Acceleration      Vec3Var
	WorldAcceleration Vec3Var
	Scale             Vec3Var
	Color             ColorVar
	BindWeight        FloatVar
	Drag              Vec3Var
	Rotation          Vec3Var
	RotationEnabled   bool
}

// ComplexEmitter is a particle group whose emitter and particle share one
// name.
type ComplexEmitter struct {
	Name       string
	Importance Importance
	Particle   ComplexParticle

	BlendMode      int32
	RenderFlags    uint32
	Pass           int32
	AlphaRef       int32
	Texture        string
	ColorTexture   string
	FalloffTexture string
	NormalMap      string
	TexDiv         Vec2

	Rate                  FloatVar
	ParticleLifetime      FloatVar
	ParticleLifetimeScale bool
	Distortion            float32
	DistortionMode        int32

	BirthTranslation            Vec3Var
	BirthRotation               Vec3Var
	BirthScale                  Vec3Var
	BirthColor                  ColorVar
	BirthVelocity               Vec3Var
	BirthAcceleration           Vec3Var
	BirthRotationalVelocity     Vec3Var
	BirthRotationalAcceleration Vec3Var
	BirthDrag                   Vec3Var
	BirthOrbitalVelocity        Vec3Var
	BirthFrameRate              FloatVar
	BirthTilingSize             Vec3Var
	BirthUVOffset               Vec2Var
	RateByVelocity              Vec2Var
	UVScroll                    Vec2

	EmitOffset         Vec3Var
	EmitRotationAngles []FloatVar
	EmitRotationAxes   []Vec3
	LocalOrientation   bool

	Timing         Timing
	TrailCutoff    float32
	BeamSegments   int32
	SingleParticle int32
	ParticleLinger float32
	EmitterLinger  float32

	ColorLookupTypes   [2]ColorLookupType
	ColorLookupScales  Vec2
	ColorLookupOffsets Vec2
	BoundObject        BoundObjectScale

	MaterialOverrides MaterialOverrideList
	Sounds            Sounds
	Fluid             *FluidsDef

	FlexScaleEmitOffset         *Flex[float32]
	FlexScaleBirthScale         *Flex[float32]
	FlexOffset                  *Flex[Vec3Var]
	FlexBirthUVOffset           *Flex[Vec2Var]
	FlexBirthTranslation        *Flex[Vec3Var]
	FlexRate                    *Flex[FloatVar]
	FlexBirthRotationalVelocity *Flex[Vec3Var]
	FlexParticleLifetime        *Flex[FloatVar]

	// Per-group transform overrides set by the owning System.
	OverrideTranslation Vec3
	OverrideRotation    Vec3
	OverrideScale       Vec3
}

// ComplexEmitter loads the complex emitter called name together with its
// particle.
func (l *Loader) ComplexEmitter(name string) *ComplexEmitter {
	e := l.entity(name)
	em := &ComplexEmitter{
		Name:           name,
		BlendMode:      e.intOr("rendermode", 0),
		RenderFlags:    e.renderFlags(),
		Pass:           e.intOr("pass", 0),
		AlphaRef:       e.intOr("e-alpharef", 5),
		Texture:        e.stringOr("p-texture", ""),
		TexDiv:         e.vec2Or("p-texdiv", Vec2Inf),
		ColorTexture:   e.stringOr("p-rgba", "DefaultColorOverLifetime.dds"),
		FalloffTexture: e.stringOr("p-falloff-texture", "DefaultFalloff.dds"),
		NormalMap:      e.stringOr("p-normal-map", ""),

		Timing:         e.timing(),
		TrailCutoff:    e.floatOr("e-trail-cutoff", 0),
		BeamSegments:   e.intOr("e-beam-segments", 0),
		SingleParticle: e.intOr("single-particle", 0),

		Rate:                  varOr(e, "e-rate", Float(0)),
		ParticleLifetime:      varOr(e, "p-life", Float(3)),
		ParticleLifetimeScale: e.boolOr("p-life-scale", false),
		RateByVelocity:        varOr(e, "e-ratebyvel", Vec2{}),
		Distortion:            e.floatOr("p-distortion-power", 0),
		DistortionMode:        e.intOr("p-distortion-mode", 1),

		BirthTranslation:            varOr(e, "p-postoffset", Vec3{}),
		BirthRotation:               varOr(e, "p-quadrot", Vec3{}),
		BirthScale:                  varOr(e, "p-scale", Vec3{1, 1, 1}),
		BirthColor:                  varOr(e, "e-rgba", White),
		BirthVelocity:               varOr(e, "p-vel", Vec3{}),
		BirthAcceleration:           varOr(e, "p-accel", Vec3{}),
		BirthRotationalVelocity:     varOr(e, "p-rotvel", Vec3{}),
		BirthRotationalAcceleration: varOr(e, "Emitter-BirthRotationalAcceleration", Vec3{}),
		BirthDrag:                   varOr(e, "p-drag", Vec3{}),
		BirthOrbitalVelocity:        varOr(e, "p-orbitvel", Vec3{}),
		BirthFrameRate:              varOr(e, "e-framerate", Float(1)),
		BirthTilingSize:             varOr(e, "e-tilesize", Vec3{}),
		BirthUVOffset:               varOr(e, "e-uvoffset", Vec2{}),
		UVScroll:                    e.vec2Or("e-uvscroll", Vec2{}),

		LocalOrientation: e.intOr("e-local-orient", 1) != 0,
		EmitOffset:       varOr(e, "p-offset", Vec3{}),

		ColorLookupTypes:   e.colorLookup(),
		ColorLookupScales:  e.vec2Or("p-colorscale", Vec2Inf),
		ColorLookupOffsets: e.vec2Or("p-coloroffset", Vec2Inf),
		BoundObject:        e.boundObjectScale(),

		MaterialOverrides: e.materialOverrides(),
		Sounds:            e.sounds(),

		FlexRate:                    flexVar(e, "e-rate", Float(0)),
		FlexParticleLifetime:        flexVar(e, "p-life", Float(3)),
		FlexBirthTranslation:        flexVar(e, "p-postoffset", Vec3{}),
		FlexBirthRotationalVelocity: flexVar(e, "p-rotvel", Vec3{}),
		FlexScaleEmitOffset:         flexFloat(e, "p-scaleEmitOffset", 0),
		FlexScaleBirthScale:         flexFloat(e, "p-scale", 0),
		FlexOffset:                  flexVar(e, "p-offset", Vec3{}),
		FlexBirthUVOffset:           flexVar(e, "e-uvoffset", Vec2{}),
	}
	em.Particle = l.complexParticle(name, em)
	em.EmitRotationAngles, em.EmitRotationAxes = emitRotations(e)

	limit := em.Timing.Lifetime + lingerLimit
	em.ParticleLinger = clampLinger(e.floatOr("p-linger", limit), limit)
	em.EmitterLinger = clampLinger(e.floatOr("e-linger", 0), limit)

	em.Fluid, _ = l.Fluid(e.key("fluid-params"))

	l.logger.Debug("✨ Loaded complex emitter", "name", name, "quad_type", em.Particle.QuadType)
	return em
}

func (l *Loader) complexParticle(name string, em *ComplexEmitter) ComplexParticle {
	e := l.entity(name)
	p := ComplexParticle{
		Name:       name,
		StartFrame: e.intOr("p-startframe", 0),
		NumFrames:  e.intOr("p-numframes", frameCount(em.TexDiv)),
		FrameRate:  e.floatOr("p-framerate", 0),
		QuadType:   e.intOr("p-type", 0),
		Mesh: Mesh{
			File:            e.stringOr("p-mesh", ""),
			SkinFile:        e.stringOr("p-skin", ""),
			Skeleton:        e.stringOr("p-skeleton", ""),
			Animation:       e.stringOr("p-animation", ""),
			DisableBackface: e.intOr("p-backfaceon", 0) != 0,
		},

		UVScrollRate:      varOr(e, "p-uvscroll-rgb", Vec2{}),
		Velocity:          varOr(e, "Particle-Velocity", Vec3{}),
		Acceleration:      varOr(e, "Particle-Acceleration", Vec3{}),
		WorldAcceleration: varOr(e, "p-worldaccel", Vec3{}),
		Scale:             varOr(e, "p-xscale", Vec3Inf),
		Color:             varOr(e, "p-xrgba", ColorInf),
		BindWeight:        varOr(e, "p-bindtoemitter", Float(0)),
		Drag:              varOr(e, "Particle-Drag", Vec3{}),
		Rotation:          varOr(e, "p-xquadrot", Vec3{}),
		RotationEnabled:   e.boolOr("p-xquadrot-on", false),

		DirectionOriented:  e.intOr("p-vecalign", 0) != 0,
		ScaleAlongMovement: e.floatOr("Particle-ScaleAlongMovementVector", 0),
		UniformScale:       e.intOr("uniformscale", 0) != 0,
		PostRotation:       e.vec3Or("p-orientation", Vec3{}),

		LocalOrientation: e.intOr("p-local-orient", 0) != 0,
		RandomStartFrame: e.boolOr("p-randomstartframe", false),
		CastShadow:       e.boolOr("p-shadow", false),
		Distortion:       e.floatOr("p-distortion-power", 0),
		UvMode:           UvMode(e.intOr("p-uvmode", int32(UvModeDefault))),
		TrailMode:        TrailMode(e.intOr("p-trailmode", int32(TrailModeDefault))),
		BeamMode:         BeamMode(e.intOr("p-beammode", int32(BeamModeDefault))),
	}
	p.HasPostRotation = p.PostRotation != Vec3{}
	if e.boolOr("p-uvscroll-no-alpha", false) {
		p.UvMode = UvModeLockAlpha
	}
	if p.QuadType == QuadProjection {
		p.ProjectionYRange = e.floatOr("p-projection-y-range", 5)
		p.ProjectionFading = e.floatOr("p-projection-fading", 200)
	}
	return p
}

// String summarizes the emitter for logs.
func (em *ComplexEmitter) String() string {
	return fmt.Sprintf("complex %q", em.Name)
}
