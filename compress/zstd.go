package compress

// ZstdCodec compresses chunks with Zstandard, the kind entwine-style point
// trees use for their non-laszip tiles. It favors compression ratio over
// speed, which suits cold tiles fetched over the network.
//
// The implementation is selected at build time: valyala/gozstd when cgo is
// available, klauspost/compress/zstd otherwise. The two produce compatible
// streams.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstandard codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
