package bytenorm

// View is a window over byte storage. A View built with NewView is writable
// through the underlying slice and aliases caller memory; a View derived
// from a Bytes is read-only and shares the buffer's storage without copying.
//
// The read-only contract is the caller's to honor: the bytes behind a
// read-only View must never be written.
type View struct {
	data     []byte
	readonly bool
}

// NewView returns a writable view over p. The view aliases p; mutations of
// p are visible through the view and vice versa.
func NewView(p []byte) View {
	return View{data: p}
}

// ReadOnly reports whether the view's storage must not be written.
func (v View) ReadOnly() bool {
	return v.readonly
}

// Len returns the number of bytes visible through the view.
func (v View) Len() int {
	return len(v.data)
}

// At returns the byte at index i. It panics if i is out of range, matching
// slice indexing.
func (v View) At(i int) byte {
	return v.data[i]
}

// Window returns a sub-view over [start, end), sharing the same storage.
// Bounds clamp to the view length; negative or reordered bounds yield an
// empty view. The read-only bit carries over.
func (v View) Window(start, end int) View {
	lo, hi := clampRange(start, end, len(v.data))
	return View{data: v.data[lo:hi], readonly: v.readonly}
}
