// Package section implements the byte-exact wire records embedded in LAS
// file metadata: the 192-byte extra-bytes spec record describing optional
// point fields, and the fixed VLR/EVLR headers framing variable-length
// records.
//
// All records are little-endian on disk. Parsing and serialization are
// symmetric: for every ParseX there is a Bytes/AppendTo producing the exact
// inverse, and the tests round-trip through both.
package section
