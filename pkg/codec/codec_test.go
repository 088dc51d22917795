package codec

import (
	"bytes"
	"errors"
	"testing"

	ierrors "github.com/moonshadow565/TroyBinary/pkg/inibin/errors"
)

func TestDetect_RawByDefault(t *testing.T) {
	header := []byte{0x02, 0x00, 0x00, 0x00, 0x00}
	if c := Detect(header); c.ID() != CODEC_RAW {
		t.Errorf("Detect = %s, want RAW", c.Name())
	}
	if c := Detect(nil); c.ID() != CODEC_RAW {
		t.Errorf("Detect(nil) = %s, want RAW", c.Name())
	}
}

func TestDecode_RawPassthrough(t *testing.T) {
	data := []byte{0x02, 0x01, 0x00, 0x00, 0x00, 'x'}
	out, c, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if c.ID() != CODEC_RAW || !bytes.Equal(out, data) {
		t.Errorf("raw data changed by %s", c.Name())
	}
}

func TestGet_Unknown(t *testing.T) {
	_, err := Get(0x7f)
	if !errors.Is(err, ierrors.ErrUnknownCodec) {
		t.Errorf("expected ErrUnknownCodec, got %v", err)
	}
	if GetName(0x7f) != "UNKNOWN_7f" {
		t.Errorf("GetName(0x7f) = %s", GetName(0x7f))
	}
}
