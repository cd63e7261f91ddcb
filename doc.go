// Package bytenorm normalizes heterogeneous byte-carrying values into a
// single canonical immutable buffer type for consumption by cryptographic
// primitives.
//
// Ownership boundary:
// - Bytes/View buffer primitives
// - Latin-1 text <-> byte conversions
// - mutability classification and non-aliasing range copies
// - hex helpers
//
// Every operation is a pure function of its arguments. Code downstream of
// this package should deal in Bytes and in integer byte values, never in
// raw text, so that a buffer means the same thing everywhere.
package bytenorm
