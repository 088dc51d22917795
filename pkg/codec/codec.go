// Package codec unwraps compressed inibin containers.
//
// Containers are stored raw or wrapped in a single compression layer.
// Codecs register themselves by ID; Detect picks one from the leading magic
// bytes. Import pkg/codec/compress to register gzip and bzip2.
package codec

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	ierrors "github.com/moonshadow565/TroyBinary/pkg/inibin/errors"
)

// Codec IDs
const (
	// No compression
	CODEC_RAW = 0x00

	CODEC_GZIP  = 0x10 // GZIP
	CODEC_BZIP2 = 0x13 // BZIP2
)

// Codec is a reversible byte transformation.
type Codec interface {
	// ID returns the codec identifier (e.g., CODEC_GZIP)
	ID() uint8

	// Name returns the human-readable name
	Name() string

	// Magic returns the leading bytes that identify encoded data, nil when
	// the codec cannot be sniffed.
	Magic() []byte

	// Encode wraps input
	Encode(input []byte) ([]byte, error)

	// Decode unwraps input
	Decode(input []byte) ([]byte, error)

	// DecodeStream unwraps a stream
	DecodeStream(input io.Reader, output io.Writer) error
}

// BaseCodec provides common functionality for codecs
type BaseCodec struct {
	CodecID   uint8
	CodecName string
	MagicData []byte
}

func (c *BaseCodec) ID() uint8 {
	return c.CodecID
}

func (c *BaseCodec) Name() string {
	return c.CodecName
}

func (c *BaseCodec) Magic() []byte {
	return c.MagicData
}

var (
	registryMu sync.RWMutex
	registry   = map[uint8]Codec{CODEC_RAW: rawCodec{}}
)

// Register registers a codec implementation, replacing any codec with the
// same ID.
func Register(c Codec) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[c.ID()] = c
}

// Get retrieves a codec by ID
func Get(id uint8) (Codec, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	c, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("%w: 0x%02x", ierrors.ErrUnknownCodec, id)
	}
	return c, nil
}

// GetName returns the name of a codec by ID
func GetName(id uint8) string {
	switch id {
	case CODEC_RAW:
		return "RAW"
	case CODEC_GZIP:
		return "GZIP"
	case CODEC_BZIP2:
		return "BZIP2"
	default:
		return fmt.Sprintf("UNKNOWN_%02x", id)
	}
}

// Registered returns the registered codecs ordered by ID.
func Registered() []Codec {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Codec, 0, len(registry))
	for _, c := range registry {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Detect returns the codec whose magic prefixes header. Data no codec
// claims is raw.
func Detect(header []byte) Codec {
	for _, c := range Registered() {
		if m := c.Magic(); len(m) > 0 && bytes.HasPrefix(header, m) {
			return c
		}
	}
	return rawCodec{}
}

// Decode unwraps data with the codec Detect picks for it.
func Decode(data []byte) ([]byte, Codec, error) {
	c := Detect(data)
	out, err := c.Decode(data)
	if err != nil {
		return nil, c, fmt.Errorf("decoding %s data: %w", c.Name(), err)
	}
	return out, c, nil
}

// ReadFile reads path and unwraps its contents.
func ReadFile(path string) ([]byte, Codec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Decode(data)
}
