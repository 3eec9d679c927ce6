package compress

import (
	"fmt"

	"github.com/arloliu/lasrec/errs"
	"github.com/arloliu/lasrec/format"
)

// Compressor compresses one chunk of point-record bytes.
//
// Memory management: the returned slice is newly allocated and owned by the
// caller; the input slice is not modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores one chunk previously compressed with the same
// algorithm. Implementations validate the input format and return an error
// for corrupt or mismatched data.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. All built-in codecs are stateless and
// safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

// GetCodec returns the built-in codec for a compression kind.
//
// CompressionLasZip and CompressionLazPerf return ErrExternalCodec: those
// chunk formats are point-aware and must be handled by an externally
// registered codec.
func GetCodec(kind format.Compression) (Codec, error) {
	switch kind {
	case format.CompressionNone:
		return NewNoOpCodec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(), nil
	case format.CompressionS2:
		return NewS2Codec(), nil
	case format.CompressionLasZip, format.CompressionLazPerf:
		return nil, fmt.Errorf("%w: %s", errs.ErrExternalCodec, kind)
	default:
		return nil, fmt.Errorf("unsupported compression kind: %s", kind)
	}
}
