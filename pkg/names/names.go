// Package names maps hashed inibin keys back to readable names.
//
// Keys are one-way hashes, so names can only be recovered by hashing
// candidates. A Dictionary holds candidate sections, fields and plain keys
// loaded from YAML, and indexes every section*field combination.
package names

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/moonshadow565/TroyBinary/pkg/inibin"
	"github.com/moonshadow565/TroyBinary/pkg/inihash"
)

//go:embed names.yaml
var defaultYAML []byte

// File is the YAML form of a dictionary.
type File struct {
	Sections []string `yaml:"sections"`
	Fields   []string `yaml:"fields"`
	// Indexed fields hold one %d, expanded for 0..MaxIndex.
	Indexed  []string `yaml:"indexed"`
	MaxIndex int      `yaml:"max_index"`
	// Suffixes are appended to plain fields: keyframes, curves, flex slots.
	Suffixes []string `yaml:"suffixes"`
	// Keys are hashed whole, without a section.
	Keys     []string `yaml:"keys"`
}

// Dictionary resolves hashes to names. The index is rebuilt lazily after
// the candidate sets change; a Dictionary is not safe for concurrent use.
type Dictionary struct {
	sections []string
	fields   []string
	suffixes []string
	keys     []string
	seen     map[string]bool

	names map[inihash.Hash]string
	dirty bool
}

// New returns an empty dictionary.
func New() *Dictionary {
	return &Dictionary{seen: make(map[string]bool), dirty: true}
}

// Default returns the built-in dictionary of particle system names.
func Default() (*Dictionary, error) {
	return Parse(defaultYAML)
}

// Parse reads a dictionary from YAML.
func Parse(data []byte) (*Dictionary, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing dictionary: %w", err)
	}
	d := New()
	d.AddFile(f)
	return d, nil
}

// Load reads a dictionary file.
func Load(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func (d *Dictionary) add(list *[]string, kind, name string) {
	if name == "" || d.seen[kind+"\x00"+name] {
		return
	}
	d.seen[kind+"\x00"+name] = true
	*list = append(*list, name)
	d.dirty = true
}

// AddFile adds every candidate of f.
func (d *Dictionary) AddFile(f File) {
	for _, s := range f.Sections {
		d.AddSection(s)
	}
	for _, name := range f.Fields {
		d.add(&d.fields, "field", name)
	}
	for _, pattern := range f.Indexed {
		for i := 0; i <= f.MaxIndex; i++ {
			d.add(&d.fields, "indexed", fmt.Sprintf(pattern, i))
		}
	}
	for _, s := range f.Suffixes {
		d.add(&d.suffixes, "suffix", s)
	}
	for _, k := range f.Keys {
		d.add(&d.keys, "key", k)
	}
}

// AddSection adds a candidate section name.
func (d *Dictionary) AddSection(name string) {
	d.add(&d.sections, "section", name)
}

// Merge adds every candidate of other.
func (d *Dictionary) Merge(other *Dictionary) {
	for _, s := range other.sections {
		d.AddSection(s)
	}
	for _, f := range other.fields {
		d.add(&d.fields, "field", f)
	}
	for _, s := range other.suffixes {
		d.add(&d.suffixes, "suffix", s)
	}
	for _, k := range other.keys {
		d.add(&d.keys, "key", k)
	}
}

// Learn adds every string value of s as a candidate section. Particle
// files reference their groups, emitters and fields by name, so these
// values name the sections holding the rest of the keys.
func (d *Dictionary) Learn(s *inibin.Store) int {
	before := len(d.sections)
	s.Range(func(_ inihash.Hash, v inibin.Value) bool {
		if str, ok := v.(inibin.String); ok && str != "" && len(str) < 256 {
			d.AddSection(string(str))
		}
		return true
	})
	return len(d.sections) - before
}

// index records name for h unless h already has a name.
func (d *Dictionary) index(h inihash.Hash, name string) {
	if _, ok := d.names[h]; !ok {
		d.names[h] = name
	}
}

func (d *Dictionary) build() {
	if !d.dirty {
		return
	}
	d.names = make(map[inihash.Hash]string)
	for _, k := range d.keys {
		d.index(inihash.Sum(k), k)
	}
	for _, s := range d.sections {
		base := inihash.Sum(s).Join("")
		for _, f := range d.fields {
			h := inihash.Continue(base, f)
			name := s + inihash.Separator + f
			d.index(h, name)
			for _, suffix := range d.suffixes {
				d.index(h.Append(suffix), name+suffix)
			}
		}
	}
	d.dirty = false
}

// Lookup returns the name of h.
func (d *Dictionary) Lookup(h inihash.Hash) (string, bool) {
	d.build()
	name, ok := d.names[h]
	return name, ok
}

// Name returns the name of h, or its hex form when unknown.
func (d *Dictionary) Name(h inihash.Hash) string {
	if name, ok := d.Lookup(h); ok {
		return name
	}
	return h.String()
}

// Len returns the number of indexed names.
func (d *Dictionary) Len() int {
	d.build()
	return len(d.names)
}

// Sections returns the candidate sections in insertion order.
func (d *Dictionary) Sections() []string {
	return append([]string(nil), d.sections...)
}
