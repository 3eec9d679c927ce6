//go:build cgo

package compress

import "github.com/valyala/gozstd"

// zstdLevel balances ratio against chunk encode latency.
const zstdLevel = 3

// Compress compresses the chunk using Zstandard.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress restores a Zstandard-compressed chunk.
func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
