package main

import (
	"fmt"
	"strings"

	"github.com/moonshadow565/TroyBinary/pkg/codec"
	_ "github.com/moonshadow565/TroyBinary/pkg/codec/compress"
	"github.com/moonshadow565/TroyBinary/pkg/inibin"
	"github.com/moonshadow565/TroyBinary/pkg/inihash"
	"github.com/moonshadow565/TroyBinary/pkg/names"
)

// loadStore reads path, unwrapping any compression, and decodes it.
func (a *app) loadStore(path string) (*inibin.Store, error) {
	data, c, err := codec.ReadFile(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("📄 Read input", "path", path, "codec", c.Name(), "size", len(data))

	s, err := inibin.Load(data, inibin.WithLogger(a.logger.Named("inibin")))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return s, nil
}

// dictionary returns the built-in names merged with the configured file.
func (a *app) dictionary() (*names.Dictionary, error) {
	d, err := names.Default()
	if err != nil {
		return nil, err
	}
	if a.cfg.Dictionary != "" {
		extra, err := names.Load(a.cfg.Dictionary)
		if err != nil {
			return nil, err
		}
		d.Merge(extra)
		a.logger.Debug("📖 Merged dictionary", "path", a.cfg.Dictionary)
	}
	return d, nil
}

// key builds the hash for a section and field. An empty section hashes
// field alone.
func key(section, field string) inihash.Hash {
	if section == "" {
		return inihash.Sum(field)
	}
	return inihash.Section(section, field)
}

// valueTypes lists the accepted --type names.
var valueTypes = []string{"int", "float", "bool", "string", "vec2", "vec3", "vec4"}

// coerce reads h from s as the named type.
func coerce(s *inibin.Store, h inihash.Hash, typ string) (string, bool, error) {
	v := s.Get(h)
	var (
		out string
		ok  bool
	)
	switch strings.ToLower(typ) {
	case "":
		if v == nil {
			return "", false, nil
		}
		return inibin.Format(v), true, nil
	case "int":
		var i int32
		i, ok = inibin.AsInt(v)
		out = fmt.Sprint(i)
	case "float":
		var f float32
		f, ok = inibin.AsFloat(v)
		out = fmt.Sprint(f)
	case "bool":
		var b bool
		b, ok = inibin.AsBool(v)
		out = fmt.Sprint(b)
	case "string":
		out, ok = inibin.AsString(v)
	case "vec2":
		var vec inibin.Vec2
		vec, ok = inibin.AsVec2(v)
		out = inibin.Format(vec)
	case "vec3":
		var vec inibin.Vec3
		vec, ok = inibin.AsVec3(v)
		out = inibin.Format(vec)
	case "vec4":
		var vec inibin.Vec4
		vec, ok = inibin.AsVec4(v)
		out = inibin.Format(vec)
	default:
		return "", false, fmt.Errorf("unknown type %q (want one of %s)", typ, strings.Join(valueTypes, ", "))
	}
	return out, ok, nil
}
