package compress

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/moonshadow565/TroyBinary/pkg/codec"
)

func TestCodecs_RoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte{0x02, 0x00, 0x00, 0x01, 0x00, 'p', 'a', 'r', 't'}, 64)

	testCases := []struct {
		name  string
		codec codec.Codec
	}{
		{name: "gzip", codec: NewGzipCodec()},
		{name: "bzip2", codec: NewBzip2Codec()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := tc.codec.Encode(payload)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if !bytes.HasPrefix(encoded, tc.codec.Magic()) {
				t.Fatalf("encoded data does not start with %x", tc.codec.Magic())
			}

			decoded, detected, err := codec.Decode(encoded)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if detected.ID() != tc.codec.ID() {
				t.Errorf("detected %s, want %s", detected.Name(), tc.codec.Name())
			}
			if !bytes.Equal(decoded, payload) {
				t.Errorf("round trip mismatch: got %d bytes, want %d", len(decoded), len(payload))
			}

			var streamed bytes.Buffer
			if err := tc.codec.DecodeStream(bytes.NewReader(encoded), &streamed); err != nil {
				t.Fatalf("DecodeStream failed: %v", err)
			}
			if !bytes.Equal(streamed.Bytes(), payload) {
				t.Error("stream decode mismatch")
			}
		})
	}
}

func TestCodecs_Registered(t *testing.T) {
	for _, id := range []uint8{codec.CODEC_RAW, codec.CODEC_GZIP, codec.CODEC_BZIP2} {
		c, err := codec.Get(id)
		if err != nil {
			t.Fatalf("Get(0x%02x) failed: %v", id, err)
		}
		if c.Name() != codec.GetName(id) {
			t.Errorf("codec 0x%02x named %s, want %s", id, c.Name(), codec.GetName(id))
		}
	}
	if n := len(codec.Registered()); n != 3 {
		t.Errorf("Registered() = %d codecs, want 3", n)
	}
}

func TestReadFile_Sniffs(t *testing.T) {
	payload := []byte{0x02, 0x00, 0x00, 0x00, 0x00}
	encoded, err := NewGzipCodec().Encode(payload)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "fx.troybin.gz")
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, c, err := codec.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if c.ID() != codec.CODEC_GZIP || !bytes.Equal(data, payload) {
		t.Errorf("ReadFile returned %x via %s", data, c.Name())
	}

	if _, _, err := codec.ReadFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDecode_CorruptGzip(t *testing.T) {
	if _, _, err := codec.Decode([]byte{0x1f, 0x8b, 0x00}); err == nil {
		t.Error("expected error for corrupt gzip data")
	}
}
