// Package loader converts between raw LAS point-record bytes and the
// dimension-addressable point representation.
//
// The conversion is performed by a chain of codec units, each owning a
// disjoint byte window of the record: the legacy or extended base record,
// then GPS time, color and near-infrared fields where the format carries
// them, then one unit covering all extra-bytes dimensions. Units are never
// constructed directly; the Driver assembles the chain from a point record
// format id, a coordinate scaling and an extra-dimension list, and drives
// bulk decode (Load) and encode (Pack) one record at a time.
//
// A Driver holds no per-record state, so one instance may be shared by
// concurrent goroutines as long as each call uses its own buffer and point
// and no goroutine re-runs Init concurrently.
package loader
