package bytenorm

// Value is the closed set of inputs the normalization entry points accept.
// The set is sealed: Text, Mutable, IntSeq, Bytes and View are the only
// implementations, and dispatch over them is an explicit type switch.
type Value interface {
	isValue()
}

// Buffer is the subset of Value kinds that hold byte storage directly:
// Bytes, View and Mutable. CopyRange accepts only these.
type Buffer interface {
	Value
	isBuffer()
}

// Text is a textual value. Its code points must lie in [0, 255] to be
// convertible to bytes.
type Text string

// Mutable is a caller-owned byte slice, modifiable in place by its holder.
type Mutable []byte

// IntSeq is a sequence of byte-like integers, each expected in [0, 255].
type IntSeq []int

func (Text) isValue()    {}
func (Mutable) isValue() {}
func (IntSeq) isValue()  {}
func (Bytes) isValue()   {}
func (View) isValue()    {}

func (Mutable) isBuffer() {}
func (Bytes) isBuffer()   {}
func (View) isBuffer()    {}
