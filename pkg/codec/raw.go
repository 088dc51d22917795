package codec

import (
	"fmt"
	"io"
)

// rawCodec passes data through unchanged.
type rawCodec struct{}

func (rawCodec) ID() uint8     { return CODEC_RAW }
func (rawCodec) Name() string  { return "RAW" }
func (rawCodec) Magic() []byte { return nil }

func (rawCodec) Encode(input []byte) ([]byte, error) { return input, nil }
func (rawCodec) Decode(input []byte) ([]byte, error) { return input, nil }

func (rawCodec) DecodeStream(input io.Reader, output io.Writer) error {
	if _, err := io.Copy(output, input); err != nil {
		return fmt.Errorf("copying stream: %w", err)
	}
	return nil
}
