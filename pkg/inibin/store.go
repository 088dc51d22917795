// Package inibin implements the hashed configuration store read from
// inibin (".troybin") containers and the typed accessors over it.
//
// A Store maps inihash keys to tagged values. It is filled once by a
// Decoder and then read by property loaders. A Store is not safe for
// concurrent mutation; share it read-only after loading.
package inibin

import (
	"sort"

	"github.com/moonshadow565/TroyBinary/pkg/inihash"
)

// Store maps hashed keys to values. The zero value is an empty store.
type Store struct {
	values map[inihash.Hash]Value
}

// New returns an empty store.
func New() *Store {
	return &Store{values: make(map[inihash.Hash]Value)}
}

// Get returns the value stored under h, or nil when absent.
func (s *Store) Get(h inihash.Hash) Value {
	return s.values[h]
}

// Has reports whether h is present.
func (s *Store) Has(h inihash.Hash) bool {
	_, ok := s.values[h]
	return ok
}

// Set stores v under h, replacing any previous value. Setting nil erases h.
func (s *Store) Set(h inihash.Hash, v Value) {
	if v == nil {
		delete(s.values, h)
		return
	}
	if s.values == nil {
		s.values = make(map[inihash.Hash]Value)
	}
	s.values[h] = v
}

// insert stores v only if h is not present yet and reports whether it did.
func (s *Store) insert(h inihash.Hash, v Value) bool {
	if s.values == nil {
		s.values = make(map[inihash.Hash]Value)
	}
	if _, ok := s.values[h]; ok {
		return false
	}
	s.values[h] = v
	return true
}

// Size returns the number of entries.
func (s *Store) Size() int {
	return len(s.values)
}

// Clear removes every entry.
func (s *Store) Clear() {
	clear(s.values)
}

// Keys returns all keys in ascending order.
func (s *Store) Keys() []inihash.Hash {
	keys := make([]inihash.Hash, 0, len(s.values))
	for h := range s.values {
		keys = append(keys, h)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Range calls fn for each entry in ascending key order until fn returns
// false.
func (s *Store) Range(fn func(h inihash.Hash, v Value) bool) {
	for _, h := range s.Keys() {
		if !fn(h, s.values[h]) {
			return
		}
	}
}
