package particle

import "fmt"

// Importance is the level of detail a group is shown at.
type Importance uint32

const (
	ImportanceLow Importance = iota
	ImportanceNormal
	ImportanceHigh
	ImportanceNotWhenHigh
)

// ParseImportance maps the System section's importance names. Unknown or
// missing names mean NotWhenHigh.
func ParseImportance(s string) Importance {
	switch s {
	case "High":
		return ImportanceHigh
	case "Medium":
		return ImportanceNormal
	case "Low":
		return ImportanceLow
	default:
		return ImportanceNotWhenHigh
	}
}

func (i Importance) String() string {
	switch i {
	case ImportanceLow:
		return "Low"
	case ImportanceNormal:
		return "Medium"
	case ImportanceHigh:
		return "High"
	case ImportanceNotWhenHigh:
		return "NotWhenHigh"
	default:
		return fmt.Sprintf("Importance(%d)", uint32(i))
	}
}

// UvMode selects how texture coordinates are generated.
type UvMode uint32

const (
	UvModeDefault UvMode = iota
	UvModeScreenSpace
	UvModeLockAlpha
)

func (m UvMode) String() string {
	switch m {
	case UvModeDefault:
		return "Default"
	case UvModeScreenSpace:
		return "ScreenSpace"
	case UvModeLockAlpha:
		return "LockAlpha"
	default:
		return fmt.Sprintf("UvMode(%d)", uint32(m))
	}
}

type TrailMode uint32

const (
	TrailModeDefault TrailMode = iota
	TrailModeWake
)

type BeamMode uint32

const (
	BeamModeDefault BeamMode = iota
	BeamModeArbitrary
)

// ColorLookupType selects what drives the lookup into the color texture.
type ColorLookupType uint32

const (
	ColorLookupConstant ColorLookupType = iota
	ColorLookupLifetime
	ColorLookupVelocity
	ColorLookupBirthRandom
)

func (c ColorLookupType) String() string {
	switch c {
	case ColorLookupConstant:
		return "Constant"
	case ColorLookupLifetime:
		return "Lifetime"
	case ColorLookupVelocity:
		return "Velocity"
	case ColorLookupBirthRandom:
		return "BirthRandom"
	default:
		return fmt.Sprintf("ColorLookupType(%d)", uint32(c))
	}
}

// FixedOrbitType is the axis a particle orbits around.
type FixedOrbitType uint32

const (
	OrbitWorldX FixedOrbitType = iota
	OrbitWorldY
	OrbitWorldZ
	OrbitWorldNegX
	OrbitWorldNegY
	OrbitWorldNegZ
)

// Orientation faces a particle towards the camera or along a world axis.
type Orientation uint32

const (
	OrientCamera Orientation = iota
	OrientWorldX
	OrientWorldY
	OrientWorldZ
)

func (o Orientation) String() string {
	switch o {
	case OrientCamera:
		return "Camera"
	case OrientWorldX:
		return "WorldX"
	case OrientWorldY:
		return "WorldY"
	case OrientWorldZ:
		return "WorldZ"
	default:
		return fmt.Sprintf("Orientation(%d)", uint32(o))
	}
}

// Render flag bits shared by simple particles and complex emitters.
const (
	RenderDisableZ      uint32 = 1 << 0
	RenderProjected     uint32 = 1 << 1
	RenderTeamColor     uint32 = 1 << 2
	RenderBrighterInFog uint32 = 1 << 3
)
