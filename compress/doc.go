// Package compress provides the pluggable codecs applied to point-record
// chunks.
//
// The point codec itself never compresses or decompresses anything; it
// consumes and produces raw record bytes. Sources that deliver compressed
// chunks (entwine-style trees store them zstandard-compressed, archival
// pipelines often wrap them in LZ4 or S2) pick a codec by its
// format.Compression kind and run chunks through it before handing records
// to the loader driver.
//
// LasZip and LazPerf chunks use point-aware compression this module does
// not implement; selecting those kinds returns errs.ErrExternalCodec so
// callers can route them to an external codec.
//
// Zstandard has two implementations selected at build time: valyala/gozstd
// (cgo) and klauspost/compress/zstd (pure Go).
package compress
