package particle

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/moonshadow565/TroyBinary/pkg/inibin"
	"github.com/moonshadow565/TroyBinary/pkg/inihash"
	"github.com/moonshadow565/TroyBinary/pkg/utils/cscan"
)

// Loader builds particle definitions from a loaded store. Missing fields
// take their documented defaults; loading never fails.
type Loader struct {
	store  *inibin.Store
	logger hclog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used to trace definition loading.
func WithLogger(logger hclog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a loader reading from store.
func NewLoader(store *inibin.Store, opts ...Option) *Loader {
	l := &Loader{
		store:  store,
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// entity reads the fields of one named definition, keyed name*field.
type entity struct {
	s *inibin.Store
	h inihash.Hash
}

func (l *Loader) entity(name string) entity {
	return entity{s: l.store, h: inihash.Sum(name)}
}

func (e entity) key(field string) inihash.Hash {
	return e.h.Join(field)
}

func (e entity) keyf(format string, args ...any) inihash.Hash {
	return e.h.Join(fmt.Sprintf(format, args...))
}

func (e entity) intOr(field string, def int32) int32 {
	return e.s.IntOr(e.key(field), def)
}

func (e entity) uint32Or(field string, def uint32) uint32 {
	return e.s.Uint32Or(e.key(field), def)
}

func (e entity) floatOr(field string, def float32) float32 {
	return e.s.FloatOr(e.key(field), def)
}

func (e entity) boolOr(field string, def bool) bool {
	return e.s.BoolOr(e.key(field), def)
}

func (e entity) stringOr(field, def string) string {
	return e.s.StringOr(e.key(field), def)
}

func (e entity) vec2Or(field string, def Vec2) Vec2 {
	return Vec2(e.s.Vec2Or(e.key(field), inibin.Vec2(def)))
}

func (e entity) vec3Or(field string, def Vec3) Vec3 {
	return Vec3(e.s.Vec3Or(e.key(field), inibin.Vec3(def)))
}

// flags ORs bit into the result for every field that reads true.
func (e entity) flags(fields []string, bits []uint32) uint32 {
	var out uint32
	for i, f := range fields {
		if e.boolOr(f, false) {
			out |= bits[i]
		}
	}
	return out
}

func (e entity) renderFlags() uint32 {
	return e.flags(
		[]string{"flag-disable-z", "flag-projected", "teamcolor-correction", "flag-brighter-in-fow"},
		[]uint32{RenderDisableZ, RenderProjected, RenderTeamColor, RenderBrighterInFog},
	)
}

// colorLookup scans "p-colortype" as two integers; fields that do not scan
// keep their zero value.
func (e entity) colorLookup() [2]ColorLookupType {
	var out [2]ColorLookupType
	vals, n := cscan.ScanInts(e.stringOr("p-colortype", "1 0"), 2)
	for i := 0; i < n; i++ {
		out[i] = ColorLookupType(vals[i])
	}
	return out
}

// clampLinger bounds a linger time to [0, limit], mapping negatives to
// limit.
func clampLinger(v, limit float32) float32 {
	if v < 0 || v > limit {
		return limit
	}
	return v
}

// forever maps negative emitter timings to FloatMax.
func forever(v float32) float32 {
	if v < 0 {
		return FloatMax
	}
	return v
}

// frameCount is the default frame count of a texture split into div
// tiles. Divisions that do not multiply to a finite count give 1.
func frameCount(div Vec2) int32 {
	n := div[0] * div[1]
	if n != n || n > 1<<30 || n < -(1<<30) {
		return 1
	}
	return int32(n)
}

func varOr[T Vector[T]](e entity, field string, def T) Var[T] {
	return LoadVarOr(e.s, e.key(field), def)
}

func flexVar[T Vector[T]](e entity, field string, def T) *Flex[Var[T]] {
	if f, ok := LoadFlexVar(e.s, e.key(field), def); ok {
		return &f
	}
	return nil
}

func flexFloat(e entity, field string, def float32) *Flex[float32] {
	if f, ok := LoadFlexFloat(e.s, e.key(field), def); ok {
		return &f
	}
	return nil
}

// emitRotations reads the "e-rotationN" angle series with the matching
// "e-rotationN-axis" axes.
func emitRotations(e entity) ([]FloatVar, []Vec3) {
	var angles []FloatVar
	var axes []Vec3
	for i := 1; i <= MaxKeys; i++ {
		angle, ok := LoadVar(e.s, e.keyf("e-rotation%d", i), Float(0))
		if !ok {
			break
		}
		angles = append(angles, angle)
		axes = append(axes, e.vec3Or(fmt.Sprintf("e-rotation%d-axis", i), Vec3{}))
	}
	return angles, axes
}
