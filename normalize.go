package bytenorm

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/danmuck/bytenorm/internal/rawbytes"
)

// latin1 is the fixed 8-bit transform: code point N <-> byte value N,
// defined only for N in [0, 255].
var latin1 = charmap.ISO8859_1

// FromText converts a text value to an immutable buffer using the fixed
// 8-bit transform. It fails with ErrEncoding if any code point lies above
// U+00FF.
func FromText(s string) (Bytes, error) {
	buf := make([]byte, 0, len(s))
	for i, r := range s {
		c, ok := latin1.EncodeRune(r)
		if !ok {
			return Bytes{}, fmt.Errorf("%w: %q at index %d", ErrEncoding, r, i)
		}
		buf = append(buf, c)
	}
	// buf never escapes, so the backing array can be adopted directly.
	return Bytes{data: rawbytes.String(buf)}, nil
}

// FromInt returns a one-byte buffer holding c. It fails with ErrRange if c
// lies outside [0, 255].
func FromInt(c int) (Bytes, error) {
	if c < 0 || c > 0xFF {
		return Bytes{}, fmt.Errorf("%w: %d", ErrRange, c)
	}
	return Bytes{data: string([]byte{byte(c)})}, nil
}

// Ord returns the integer value of a single buffer element.
func Ord(c byte) int {
	return int(c)
}

// ToBytes canonicalizes v into an immutable buffer:
//   - Bytes is returned unchanged.
//   - Text goes through the fixed 8-bit transform (may fail with ErrEncoding).
//   - Mutable and View contents are copied into fresh storage.
//   - IntSeq elements are validated against [0, 255] (ErrRange otherwise)
//     and concatenated in order.
func ToBytes(v Value) (Bytes, error) {
	switch s := v.(type) {
	case Bytes:
		return s, nil
	case Text:
		return FromText(string(s))
	case Mutable:
		return New(s), nil
	case View:
		return New(s.data), nil
	case IntSeq:
		buf := make([]byte, len(s))
		for i, c := range s {
			if c < 0 || c > 0xFF {
				return Bytes{}, fmt.Errorf("%w: element %d is %d", ErrRange, i, c)
			}
			buf[i] = byte(c)
		}
		return Bytes{data: rawbytes.String(buf)}, nil
	default:
		// Value is sealed; no other kind can exist.
		panic(fmt.Sprintf("bytenorm: unknown value kind %T", v))
	}
}

// ToText inverts the fixed 8-bit transform: byte value N becomes code point
// N. It is total over all buffers. Buffers holding only ASCII come back
// without allocation.
func ToText(b Bytes) string {
	i := 0
	for i < len(b.data) && b.data[i] < utf8.RuneSelf {
		i++
	}
	if i == len(b.data) {
		return b.data
	}
	var sb strings.Builder
	sb.Grow(len(b.data) + len(b.data) - i)
	sb.WriteString(b.data[:i])
	for ; i < len(b.data); i++ {
		sb.WriteRune(latin1.DecodeByte(b.data[i]))
	}
	return sb.String()
}

// IsImmutable reports whether v is an immutable buffer: a Bytes, or a
// read-only View over one. Text, Mutable, IntSeq and writable Views are
// not immutable buffers.
func IsImmutable(v Value) bool {
	switch s := v.(type) {
	case Bytes:
		return true
	case View:
		return s.readonly
	default:
		return false
	}
}

// IsMutable is the logical negation of IsImmutable.
func IsMutable(v Value) bool {
	return !IsImmutable(v)
}

// CopyRange returns an immutable copy of src's half-open range [start, end).
// Bounds clamp to the container length; negative or reordered bounds yield
// the empty buffer. The result never aliases mutable memory: mutating src
// after the call is not observable in the copy, and mutating a Raw copy of
// the result is not observable in src.
func CopyRange(start, end int, src Buffer) Bytes {
	switch s := src.(type) {
	case Bytes:
		lo, hi := clampRange(start, end, len(s.data))
		// Substrings of immutable storage are safe to share.
		return Bytes{data: s.data[lo:hi]}
	case View:
		lo, hi := clampRange(start, end, len(s.data))
		return New(s.data[lo:hi])
	case Mutable:
		lo, hi := clampRange(start, end, len(s))
		return New(s[lo:hi])
	default:
		panic(fmt.Sprintf("bytenorm: unknown buffer kind %T", src))
	}
}

func clampRange(start, end, n int) (int, int) {
	if start < 0 || end < 0 {
		return 0, 0
	}
	if start > n {
		start = n
	}
	if end > n {
		end = n
	}
	if start >= end {
		return 0, 0
	}
	return start, end
}
