//go:build !appengine

// Package rawbytes converts between string and []byte without copying.
//
// Both directions share memory with the input. The caller owns the aliasing
// contract: a slice returned by Bytes must never be written, and a slice
// passed to String must never be written afterwards.
package rawbytes

import "unsafe"

// String adopts b as a string without copying. b must not be modified after
// the call.
func String(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Bytes exposes s as a read-only []byte without copying. The returned slice
// must not be modified.
func Bytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
