package bytenorm

import "errors"

var (
	// ErrEncoding reports a text value carrying a code point above U+00FF,
	// which the fixed 8-bit transform cannot represent.
	ErrEncoding = errors.New("bytenorm: code point outside Latin-1 range")

	// ErrRange reports an integer outside [0, 255] where a single byte
	// value is required.
	ErrRange = errors.New("bytenorm: byte value out of range")
)
