package compress

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/moonshadow565/TroyBinary/pkg/codec"
)

func init() {
	// Register GZIP codec on package init
	codec.Register(NewGzipCodec())
}

// GzipCodec implements GZIP compression
type GzipCodec struct {
	codec.BaseCodec
}

// NewGzipCodec creates a new GZIP codec
func NewGzipCodec() *GzipCodec {
	return &GzipCodec{
		BaseCodec: codec.BaseCodec{
			CodecID:   codec.CODEC_GZIP,
			CodecName: "GZIP",
			MagicData: []byte{0x1f, 0x8b},
		},
	}
}

// Encode compresses data using GZIP
func (c *GzipCodec) Encode(input []byte) ([]byte, error) {
	var buf bytes.Buffer

	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(input); err != nil {
		gw.Close()
		return nil, fmt.Errorf("writing gzip data: %w", err)
	}

	if err := gw.Close(); err != nil {
		return nil, fmt.Errorf("closing gzip writer: %w", err)
	}

	return buf.Bytes(), nil
}

// Decode decompresses GZIP data
func (c *GzipCodec) Decode(input []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.DecodeStream(bytes.NewReader(input), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeStream decompresses a GZIP stream
func (c *GzipCodec) DecodeStream(input io.Reader, output io.Writer) error {
	gr, err := gzip.NewReader(input)
	if err != nil {
		return fmt.Errorf("creating gzip reader: %w", err)
	}
	defer gr.Close()

	if _, err := io.Copy(output, gr); err != nil {
		return fmt.Errorf("decompressing stream: %w", err)
	}

	return nil
}
