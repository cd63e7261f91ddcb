//go:build appengine

package rawbytes

// String converts b to a string with a copy.
func String(b []byte) string {
	return string(b)
}

// Bytes converts s to a []byte with a copy.
func Bytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return []byte(s)
}
