package errors

import "errors"

var (
	// Format errors 📦
	ErrInvalidVersion = errors.New("❌ unsupported inibin version")
	ErrTruncated      = errors.New("❌ truncated inibin data")
	ErrStringOffset   = errors.New("❌ string offset outside string data")

	// Codec errors 🗜️
	ErrUnknownCodec = errors.New("❌ unknown codec")
)
