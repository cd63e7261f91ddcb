package bytenorm

import (
	"strings"

	"github.com/danmuck/bytenorm/internal/rawbytes"
)

// Bytes is the canonical immutable byte buffer. The zero value is the empty
// buffer. Bytes values are comparable and may be used as map keys.
//
// The contents are backed by a string, so nothing can mutate a Bytes after
// construction; constructors copy caller memory in and accessors copy out.
type Bytes struct {
	data string
}

// New copies p into a fresh immutable buffer. Later mutations of p are not
// observable through the result.
func New(p []byte) Bytes {
	return Bytes{data: string(p)}
}

// Len returns the number of bytes in the buffer.
func (b Bytes) Len() int {
	return len(b.data)
}

// At returns the byte at index i. It panics if i is out of range, matching
// slice indexing.
func (b Bytes) At(i int) byte {
	return b.data[i]
}

// Raw returns a mutable copy of the buffer contents. The copy does not alias
// the buffer's storage.
func (b Bytes) Raw() []byte {
	return []byte(b.data)
}

// Equal reports whether two buffers hold the same bytes.
func (b Bytes) Equal(o Bytes) bool {
	return b.data == o.data
}

// Reader returns a seekable reader over the buffer contents without copying.
func (b Bytes) Reader() *strings.Reader {
	return strings.NewReader(b.data)
}

// View returns a read-only window over the buffer's storage without copying.
func (b Bytes) View() View {
	return View{data: rawbytes.Bytes(b.data), readonly: true}
}

// String returns the Latin-1 text form of the buffer, equivalent to ToText.
func (b Bytes) String() string {
	return ToText(b)
}
