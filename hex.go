package bytenorm

import (
	"encoding/hex"
	"fmt"

	"github.com/danmuck/bytenorm/internal/rawbytes"
)

// Hexlify returns the lowercase hex encoding of the buffer contents.
func Hexlify(b Bytes) string {
	return hex.EncodeToString(rawbytes.Bytes(b.data))
}

// Unhexlify decodes a hex string into an immutable buffer.
func Unhexlify(s string) (Bytes, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Bytes{}, fmt.Errorf("bytenorm: decode hex: %w", err)
	}
	return Bytes{data: rawbytes.String(raw)}, nil
}
