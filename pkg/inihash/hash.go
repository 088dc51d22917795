// Package inihash implements the key hash used by inibin configuration
// containers.
//
// Keys are never stored as text on disk, only as 32-bit hashes. A key is
// usually built from an entity name and a field name joined by "*", for
// example Section("System", "group-vis"). The hash must match the producer
// tool bit for bit since lookups compare raw integers.
package inihash

import "fmt"

// Multiplier is the per-character multiplier of the hash.
const Multiplier = 65599

// Separator joins a section name and a field name.
const Separator = "*"

// Hash is a case-insensitive 32-bit key hash.
type Hash uint32

// Sum hashes s with a zero seed.
func Sum(s string) Hash {
	return Continue(0, s)
}

// Continue hashes s using seed as the running value. Hashing stops at the
// first NUL byte. ASCII capitals fold to lowercase; other bytes are
// combined as signed chars, so bytes >= 0x80 sign-extend.
func Continue(seed Hash, s string) Hash {
	h := uint32(seed)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == 0 {
			break
		}
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		h = h*Multiplier + uint32(int32(int8(c)))
	}
	return Hash(h)
}

// Section returns the key for field name inside section.
func Section(section, name string) Hash {
	return Sum(section).Join(name)
}

// Join appends "*" and name, producing a segment-joined key.
func (h Hash) Join(name string) Hash {
	return Continue(Continue(h, Separator), name)
}

// Append continues the hash with suffix directly, as used for numbered
// series ("key1", "key2") and suffixed variants ("keyXP").
func (h Hash) Append(suffix string) Hash {
	return Continue(h, suffix)
}

// Appendf is Append with a formatted suffix.
func (h Hash) Appendf(format string, args ...any) Hash {
	return Continue(h, fmt.Sprintf(format, args...))
}

// String renders the hash as 8 hex digits.
func (h Hash) String() string {
	return fmt.Sprintf("%08x", uint32(h))
}
