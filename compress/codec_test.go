package compress

import (
	"bytes"
	"testing"

	"github.com/arloliu/lasrec/errs"
	"github.com/arloliu/lasrec/format"
	"github.com/stretchr/testify/require"
)

// chunk builds a pseudo point-record chunk: repetitive enough to compress.
func chunk(records, recordSize int) []byte {
	buf := make([]byte, 0, records*recordSize)
	for i := range records {
		rec := make([]byte, recordSize)
		rec[0] = byte(i)
		rec[4] = byte(i >> 8)
		buf = append(buf, rec...)
	}

	return buf
}

func TestCodecRoundTrip(t *testing.T) {
	kinds := []format.Compression{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionLZ4,
		format.CompressionS2,
	}
	data := chunk(1000, 34)

	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			codec, err := GetCodec(kind)
			require.NoError(t, err)

			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(data, restored))

			if kind != format.CompressionNone {
				require.Less(t, len(compressed), len(data))
			}
		})
	}
}

func TestCodecEmptyChunk(t *testing.T) {
	for _, kind := range []format.Compression{format.CompressionZstd, format.CompressionLZ4, format.CompressionS2} {
		codec, err := GetCodec(kind)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		restored, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, restored)
	}
}

func TestGetCodecExternalKinds(t *testing.T) {
	for _, kind := range []format.Compression{format.CompressionLasZip, format.CompressionLazPerf} {
		_, err := GetCodec(kind)
		require.ErrorIs(t, err, errs.ErrExternalCodec, kind.String())
	}
}

func TestGetCodecUnknownKind(t *testing.T) {
	_, err := GetCodec(format.Compression(99))
	require.Error(t, err)
}

func TestCorruptChunk(t *testing.T) {
	codec, err := GetCodec(format.CompressionZstd)
	require.NoError(t, err)

	_, err = codec.Decompress([]byte("definitely not a zstd frame"))
	require.Error(t, err)
}
