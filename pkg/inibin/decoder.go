package inibin

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/hashicorp/go-hclog"
	"github.com/moonshadow565/TroyBinary/pkg/inihash"
	ierrors "github.com/moonshadow565/TroyBinary/pkg/inibin/errors"
)

// Version is the only container version the decoder accepts.
const Version = 2

// SectionCount is the number of optional sections a v2 container can carry.
const SectionCount = 13

// Section flag bits, in read order.
const (
	SectionInt32 = iota
	SectionFloat32
	SectionFixed8
	SectionInt16
	SectionUint8
	SectionBool
	SectionFixed8x3
	SectionFloat32x3
	SectionFixed8x2
	SectionFloat32x2
	SectionFixed8x4
	SectionFloat32x4
	SectionString
)

// Stage identifies the step of a read that failed.
type Stage int

const (
	StageVersion Stage = iota
	StageVersionCheck
	StageStringLength
	StageFlags
	StageCount
	StageHashes
	StageValues
	StageOffsets
	StageStringData
	StageOffsetCheck
)

func (s Stage) String() string {
	switch s {
	case StageVersion:
		return "version"
	case StageVersionCheck:
		return "version check"
	case StageStringLength:
		return "string data length"
	case StageFlags:
		return "section flags"
	case StageCount:
		return "count"
	case StageHashes:
		return "hashes"
	case StageValues:
		return "values"
	case StageOffsets:
		return "string offsets"
	case StageStringData:
		return "string data"
	case StageOffsetCheck:
		return "string offset check"
	default:
		return "unknown"
	}
}

// code returns the per-stage diagnostic number used by the producer tool.
func (s Stage) code() int {
	switch s {
	case StageVersion:
		return -2
	case StageVersionCheck:
		return -3
	case StageStringLength:
		return -4
	case StageFlags:
		return -5
	case StageCount:
		return -1
	case StageHashes:
		return -2
	case StageValues, StageOffsets:
		return -3
	case StageStringData:
		return -4
	case StageOffsetCheck:
		return -5
	default:
		return -1
	}
}

// FormatError reports a malformed container. Sections decoded before the
// failure stay in the store.
type FormatError struct {
	Section int // section bit, -1 for the header
	Stage   Stage
	Err     error
}

func (e *FormatError) Error() string {
	if e.Section < 0 {
		return fmt.Sprintf("inibin header %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("inibin section %d (%s) %s: %v", e.Section, sections[e.Section].name, e.Stage, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Code returns the numeric diagnostic the producer tool reports for this
// failure: -2..-5 for the header, stage code minus 10*(bit+1) for sections.
func (e *FormatError) Code() int {
	if e.Section < 0 {
		return e.Stage.code()
	}
	return e.Stage.code() - 10*(e.Section+1)
}

type section struct {
	name     string
	elemSize int
	decode   func(b []byte) Value
}

var le = binary.LittleEndian

func f32(b []byte) float32 {
	return math.Float32frombits(le.Uint32(b))
}

func fixed(b byte) float32 {
	return float32(b) / 10.0
}

var sections = [SectionCount]section{
	SectionInt32:   {name: "int32", elemSize: 4, decode: func(b []byte) Value { return Int(int32(le.Uint32(b))) }},
	SectionFloat32: {name: "float32", elemSize: 4, decode: func(b []byte) Value { return Float(f32(b)) }},
	SectionFixed8:  {name: "fixed8", elemSize: 1, decode: func(b []byte) Value { return Float(fixed(b[0])) }},
	SectionInt16:   {name: "int16", elemSize: 2, decode: func(b []byte) Value { return Int(int16(le.Uint16(b))) }},
	SectionUint8:   {name: "uint8", elemSize: 1, decode: func(b []byte) Value { return Int(b[0]) }},
	SectionBool:    {name: "bool"},
	SectionFixed8x3: {name: "fixed8x3", elemSize: 3, decode: func(b []byte) Value {
		return Vec3{fixed(b[0]), fixed(b[1]), fixed(b[2])}
	}},
	SectionFloat32x3: {name: "float32x3", elemSize: 12, decode: func(b []byte) Value {
		return Vec3{f32(b[0:]), f32(b[4:]), f32(b[8:])}
	}},
	SectionFixed8x2: {name: "fixed8x2", elemSize: 2, decode: func(b []byte) Value {
		return Vec2{fixed(b[0]), fixed(b[1])}
	}},
	SectionFloat32x2: {name: "float32x2", elemSize: 8, decode: func(b []byte) Value {
		return Vec2{f32(b[0:]), f32(b[4:])}
	}},
	SectionFixed8x4: {name: "fixed8x4", elemSize: 4, decode: func(b []byte) Value {
		return Vec4{fixed(b[0]), fixed(b[1]), fixed(b[2]), fixed(b[3])}
	}},
	SectionFloat32x4: {name: "float32x4", elemSize: 16, decode: func(b []byte) Value {
		return Vec4{f32(b[0:]), f32(b[4:]), f32(b[8:]), f32(b[12:])}
	}},
	SectionString: {name: "string"},
}

// SectionName returns a short name for a section bit.
func SectionName(bit int) string {
	if bit < 0 || bit >= SectionCount {
		return "unknown"
	}
	return sections[bit].name
}

// Decoder reads a v2 container from a byte stream. A Decoder consumes its
// reader sequentially and must not be shared.
type Decoder struct {
	r      io.Reader
	logger hclog.Logger
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sets the logger used for section tracing.
func WithLogger(logger hclog.Logger) Option {
	return func(d *Decoder) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDecoder creates a decoder reading from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	d := &Decoder{
		r:      r,
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Load decodes data into a new store. On a FormatError the returned store
// holds the sections decoded before the failure.
func Load(data []byte, opts ...Option) (*Store, error) {
	s := New()
	err := NewDecoder(bytes.NewReader(data), opts...).Decode(s)
	return s, err
}

// Decode reads one container into s. Keys already in s are kept: the
// first value written for a key wins. The header is fully validated
// before s is touched; a failing section leaves earlier sections in s.
// Bytes after the last section are not read.
func (d *Decoder) Decode(s *Store) error {
	var header [5]byte
	if err := d.read(header[:1]); err != nil {
		return &FormatError{Section: -1, Stage: StageVersion, Err: err}
	}
	if header[0] != Version {
		return &FormatError{
			Section: -1,
			Stage:   StageVersionCheck,
			Err:     fmt.Errorf("%w: got %d, expected %d", ierrors.ErrInvalidVersion, header[0], Version),
		}
	}
	if err := d.read(header[1:3]); err != nil {
		return &FormatError{Section: -1, Stage: StageStringLength, Err: err}
	}
	if err := d.read(header[3:5]); err != nil {
		return &FormatError{Section: -1, Stage: StageFlags, Err: err}
	}
	stringsLength := int(le.Uint16(header[1:3]))
	flags := le.Uint16(header[3:5])

	d.logger.Debug("📂 Decoding inibin",
		"version", header[0],
		"flags", fmt.Sprintf("0x%04x", flags),
		"string_data", stringsLength,
	)

	for bit := 0; bit < SectionCount; bit++ {
		if flags&(1<<bit) == 0 {
			continue
		}
		var err error
		switch bit {
		case SectionBool:
			err = d.readBools(s)
		case SectionString:
			err = d.readStrings(s, stringsLength)
		default:
			err = d.readValues(s, bit)
		}
		if err != nil {
			d.logger.Error("❌ Section decode failed", "section", bit, "name", sections[bit].name, "error", err)
			return err
		}
	}

	d.logger.Debug("✅ Decoded inibin", "entries", s.Size())
	return nil
}

// read fills buf completely; any shortfall is reported as ErrTruncated.
func (d *Decoder) read(buf []byte) error {
	if _, err := io.ReadFull(d.r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: need %d bytes", ierrors.ErrTruncated, len(buf))
		}
		return err
	}
	return nil
}

// readKeys reads the count and hash arrays shared by every section.
func (d *Decoder) readKeys(bit int) ([]inihash.Hash, error) {
	var countBuf [2]byte
	if err := d.read(countBuf[:]); err != nil {
		return nil, &FormatError{Section: bit, Stage: StageCount, Err: err}
	}
	count := int(le.Uint16(countBuf[:]))

	raw := make([]byte, count*4)
	if err := d.read(raw); err != nil {
		return nil, &FormatError{Section: bit, Stage: StageHashes, Err: err}
	}
	hashes := make([]inihash.Hash, count)
	for i := range hashes {
		hashes[i] = inihash.Hash(le.Uint32(raw[i*4:]))
	}

	d.logger.Trace("📦 Reading section", "section", bit, "name", sections[bit].name, "count", count)
	return hashes, nil
}

func (d *Decoder) readValues(s *Store, bit int) error {
	sec := sections[bit]
	hashes, err := d.readKeys(bit)
	if err != nil {
		return err
	}
	raw := make([]byte, len(hashes)*sec.elemSize)
	if err := d.read(raw); err != nil {
		return &FormatError{Section: bit, Stage: StageValues, Err: err}
	}
	for i, h := range hashes {
		off := i * sec.elemSize
		d.insert(s, h, sec.decode(raw[off:off+sec.elemSize]))
	}
	return nil
}

func (d *Decoder) readBools(s *Store) error {
	hashes, err := d.readKeys(SectionBool)
	if err != nil {
		return err
	}
	packed := make([]byte, (len(hashes)+7)/8)
	if err := d.read(packed); err != nil {
		return &FormatError{Section: SectionBool, Stage: StageValues, Err: err}
	}
	for i, h := range hashes {
		d.insert(s, h, Int((packed[i/8]>>(i%8))&1))
	}
	return nil
}

func (d *Decoder) readStrings(s *Store, length int) error {
	hashes, err := d.readKeys(SectionString)
	if err != nil {
		return err
	}
	rawOffsets := make([]byte, len(hashes)*2)
	if err := d.read(rawOffsets); err != nil {
		return &FormatError{Section: SectionString, Stage: StageOffsets, Err: err}
	}
	data := make([]byte, length, length+1)
	if err := d.read(data); err != nil {
		return &FormatError{Section: SectionString, Stage: StageStringData, Err: err}
	}
	data = append(data, 0)

	for i, h := range hashes {
		off := int(le.Uint16(rawOffsets[i*2:]))
		if off >= len(data) {
			return &FormatError{
				Section: SectionString,
				Stage:   StageOffsetCheck,
				Err:     fmt.Errorf("%w: offset %d, string data %d bytes", ierrors.ErrStringOffset, off, length),
			}
		}
		end := bytes.IndexByte(data[off:], 0)
		d.insert(s, h, String(data[off:off+end]))
	}
	return nil
}

func (d *Decoder) insert(s *Store, h inihash.Hash, v Value) {
	if !s.insert(h, v) {
		d.logger.Trace("Duplicate key kept first value", "hash", h.String())
	}
}
