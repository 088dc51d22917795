package main

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moonshadow565/TroyBinary/pkg/inihash"
)

// container collects values for a minimal v2 file with int32, float32 and
// string sections.
type container struct {
	ints    map[inihash.Hash]int32
	floats  map[inihash.Hash]float32
	strings map[inihash.Hash]string
}

func newContainer() *container {
	return &container{
		ints:    map[inihash.Hash]int32{},
		floats:  map[inihash.Hash]float32{},
		strings: map[inihash.Hash]string{},
	}
}

func sortedKeys[V any](m map[inihash.Hash]V) []inihash.Hash {
	keys := make([]inihash.Hash, 0, len(m))
	for h := range m {
		keys = append(keys, h)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (c *container) bytes() []byte {
	le := binary.LittleEndian
	var blob []byte
	offsets := map[inihash.Hash]uint16{}
	for _, h := range sortedKeys(c.strings) {
		offsets[h] = uint16(len(blob))
		blob = append(blob, c.strings[h]...)
		blob = append(blob, 0)
	}

	buf := []byte{2}
	buf = le.AppendUint16(buf, uint16(len(blob)))
	buf = le.AppendUint16(buf, 1<<0|1<<1|1<<12)

	keys := sortedKeys(c.ints)
	buf = le.AppendUint16(buf, uint16(len(keys)))
	for _, h := range keys {
		buf = le.AppendUint32(buf, uint32(h))
	}
	for _, h := range keys {
		buf = le.AppendUint32(buf, uint32(c.ints[h]))
	}

	keys = sortedKeys(c.floats)
	buf = le.AppendUint16(buf, uint16(len(keys)))
	for _, h := range keys {
		buf = le.AppendUint32(buf, uint32(h))
	}
	for _, h := range keys {
		buf = le.AppendUint32(buf, math.Float32bits(c.floats[h]))
	}

	keys = sortedKeys(c.strings)
	buf = le.AppendUint16(buf, uint16(len(keys)))
	for _, h := range keys {
		buf = le.AppendUint32(buf, uint32(h))
	}
	for _, h := range keys {
		buf = le.AppendUint16(buf, offsets[h])
	}
	return append(buf, blob...)
}

func sampleContainer() *container {
	c := newContainer()
	c.strings[inihash.Section("System", "GroupPart1")] = "Spark"
	c.strings[inihash.Section("System", "GroupPart1Type")] = "Simple"
	c.strings[inihash.Section("System", "GroupPart1Importance")] = "High"
	c.floats[inihash.Section("System", "group-vis")] = 100
	c.ints[inihash.Section("System", "SimulateEveryFrame")] = 1
	c.strings[inihash.Section("Spark", "e-rate")] = "5"
	c.strings[inihash.Section("Spark", "p-scale")] = "2"
	c.strings[inihash.Section("Spark", "p-scale1")] = "0 1"
	c.strings[inihash.Section("Spark", "p-scale2")] = "1 3"
	c.floats[inihash.Section("Spark", "e-life")] = 4
	return c
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func isolateEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TROYBIN_LOG_LEVEL", "TROYBIN_CONFIG", "TROYBIN_DICT"} {
		t.Setenv(k, "")
	}
	t.Setenv("TROYBIN_JSON_LOG", "false")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("APPDATA", t.TempDir())
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	isolateEnv(t)
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestHashCommand(t *testing.T) {
	out, err := run(t, "hash", "--section", "System", "group-vis", "GroupPart1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, inihash.Section("System", "group-vis").String()+" System*group-vis", lines[0])
	assert.Equal(t, inihash.Section("System", "GroupPart1").String()+" System*GroupPart1", lines[1])

	out, err = run(t, "hash", "Version")
	require.NoError(t, err)
	assert.Equal(t, inihash.Sum("version").String()+" Version\n", out)
}

func TestGetCommand(t *testing.T) {
	path := writeFile(t, "sample.inibin", sampleContainer().bytes())

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"raw string", []string{"Spark", "e-rate"}, "5"},
		{"string as int", []string{"Spark", "e-rate", "--type", "int"}, "5"},
		{"float as string", []string{"System", "group-vis"}, "100.000000"},
		{"int as bool", []string{"System", "SimulateEveryFrame", "--type", "bool"}, "true"},
		{"case insensitive", []string{"system", "GROUP-VIS", "-t", "float"}, "100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"get", path}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}

	_, err := run(t, "get", path, "Spark", "missing")
	assert.ErrorContains(t, err, "not found")

	_, err = run(t, "get", path, "Spark", "e-life", "--type", "vec3")
	assert.ErrorContains(t, err, "cannot be read as vec3")

	_, err = run(t, "get", path, "Spark", "e-life", "--type", "matrix")
	assert.ErrorContains(t, err, "unknown type")
}

func TestDumpCommand(t *testing.T) {
	data := sampleContainer().bytes()
	raw := writeFile(t, "sample.inibin", data)

	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	compressed := writeFile(t, "sample.inibin.gz", gz.Bytes())

	for _, path := range []string{raw, compressed} {
		out, err := run(t, "dump", path)
		require.NoError(t, err)
		assert.Contains(t, out, "System*group-vis")
		assert.Contains(t, out, `"100.000000"`)
		// Spark is learned from the GroupPart1 value.
		assert.Contains(t, out, "Spark*e-rate")
	}

	out, err := run(t, "dump", raw, "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: System*GroupPart1")
	assert.Contains(t, out, "kind: string")

	out, err = run(t, "dump", raw, "-f", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Spark*p-scale1"`)

	_, err = run(t, "dump", raw, "-f", "xml")
	assert.Error(t, err)
}

func TestDumpCommand_ExtraDictionary(t *testing.T) {
	c := newContainer()
	c.ints[inihash.Section("Custom", "thing")] = 1
	path := writeFile(t, "custom.inibin", c.bytes())
	dict := writeFile(t, "dict.yaml", []byte("sections: [Custom]\nfields: [thing]\n"))

	out, err := run(t, "dump", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "Custom*thing")

	out, err = run(t, "dump", path, "--dict", dict)
	require.NoError(t, err)
	assert.Contains(t, out, "Custom*thing")
}

func TestDumpCommand_BadInput(t *testing.T) {
	path := writeFile(t, "bad.inibin", []byte{1, 0, 0, 0, 0})
	_, err := run(t, "dump", path)
	assert.ErrorContains(t, err, "decoding")

	_, err = run(t, "dump", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestParticlesCommand(t *testing.T) {
	path := writeFile(t, "sample.inibin", sampleContainer().bytes())

	out, err := run(t, "particles", path)
	require.NoError(t, err)
	assert.Contains(t, out, "system: 1 groups")
	assert.Contains(t, out, `Simple "Spark" importance=High`)
	assert.Contains(t, out, `emitter "Spark"`)
	assert.Contains(t, out, "rate=5.000000")

	out, err = run(t, "particles", path, "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "visibility_radius: 100")
	assert.Contains(t, out, "type: Simple")
}

func TestCurveCommand(t *testing.T) {
	path := writeFile(t, "sample.inibin", sampleContainer().bytes())

	out, err := run(t, "curve", path, "Spark", "p-scale", "--time", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "base: 2.000000")
	assert.Contains(t, out, "key: 0.000000 -> 1.000000")
	assert.Contains(t, out, "value: 2.000000")

	out, err = run(t, "curve", path, "Spark", "p-scale", "--steps", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "0.000000: 1.000000")
	assert.Contains(t, out, "1.000000: 3.000000")

	_, err = run(t, "curve", path, "Spark", "nothing")
	assert.ErrorContains(t, err, "no animated property")

	_, err = run(t, "curve", path, "Spark", "p-scale", "--type", "matrix")
	assert.ErrorContains(t, err, "unknown type")
}

func TestVersionFlag(t *testing.T) {
	out, err := run(t, "-V")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "troybin "+version), out)
}
