package lasrec_test

import (
	"bytes"
	"testing"

	"github.com/arloliu/lasrec"
	"github.com/arloliu/lasrec/compress"
	"github.com/arloliu/lasrec/dimension"
	"github.com/arloliu/lasrec/format"
	"github.com/arloliu/lasrec/point"
	"github.com/arloliu/lasrec/section"
	"github.com/arloliu/lasrec/vlr"
	"github.com/stretchr/testify/require"
)

// TestEndToEnd exercises the full metadata-to-points path: an extra-bytes
// spec record served through the VLR catalog configures a loader driver,
// which then round-trips point records through a compressed chunk.
func TestEndToEnd(t *testing.T) {
	// Extra-bytes VLR payload describing one scaled field and one raw run.
	ebPayload := section.NewExtraBytes("Reflectance", dimension.Unsigned16, "calibrated").AppendTo(nil)
	raw := section.NewExtraBytes("Echo", dimension.None, "")
	raw.Size = 3
	ebPayload = raw.AppendTo(ebPayload)

	// Synthetic file region holding that VLR at offset 227.
	header := section.VlrHeader{
		UserID:   "LASF_Spec",
		RecordID: 4,
		Length:   uint64(len(ebPayload)),
	}
	stream := make([]byte, 227)
	stream = append(stream, header.Bytes()...)
	stream = append(stream, ebPayload...)

	catalog := lasrec.NewVlrCatalog(vlr.ReaderAt(bytes.NewReader(stream)))
	require.NoError(t, catalog.Load(227, 1, 0, 0))

	payload, err := catalog.Fetch("LASF_Spec", 4)
	require.NoError(t, err)
	require.Equal(t, ebPayload, payload)

	// Build the driver from the fetched spec records.
	const formatID = 6
	baseSize, err := format.BaseSize(formatID)
	require.NoError(t, err)

	dims, err := section.ToExtraDims(payload, baseSize)
	require.NoError(t, err)
	require.Len(t, dims, 2)
	require.Equal(t, baseSize, dims[0].ByteOffset)

	scaling := format.Scaling{
		X: format.XForm{Scale: 0.001, Offset: 600000},
		Y: format.XForm{Scale: 0.001, Offset: 5000000},
		Z: format.XForm{Scale: 0.001},
	}
	driver, err := lasrec.NewLoaderDriver(formatID, scaling, dims)
	require.NoError(t, err)
	require.Equal(t, baseSize+2+3, driver.RecordSize())

	// Pack a few points into a chunk.
	const count = 10
	chunk := make([]byte, 0, count*driver.RecordSize())
	record := make([]byte, driver.RecordSize())
	for i := range count {
		p := point.New()
		p.SetFloat(dimension.X, 600100.001+float64(i))
		p.SetFloat(dimension.Y, 5000200.5)
		p.SetFloat(dimension.Z, 35.462)
		p.SetUint(dimension.Intensity, uint64(100*i))
		p.SetUint(dimension.ReturnNumber, 1)
		p.SetUint(dimension.NumberOfReturns, 1)
		p.SetUint(dimension.Classification, 2)
		p.SetFloat(dimension.GpsTime, 300000.25+float64(i))
		p.SetFloat(lasrec.DimID("Reflectance"), float64(i*7))
		p.SetRaw(lasrec.DimID("Echo"), []byte{byte(i), 0x10, 0x20})

		require.NoError(t, driver.Pack(p, record))
		chunk = append(chunk, record...)
	}

	// Round-trip the chunk through the zstd codec, as an entwine-style
	// source would deliver it.
	codec, err := compress.GetCodec(format.CompressionZstd)
	require.NoError(t, err)
	compressed, err := codec.Compress(chunk)
	require.NoError(t, err)
	restored, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, chunk, restored)

	// Decode and verify a couple of fields per point.
	for i := range count {
		p := point.New()
		rec := restored[i*driver.RecordSize() : (i+1)*driver.RecordSize()]
		require.NoError(t, driver.Load(p, rec))

		require.InDelta(t, 600100.001+float64(i), p.GetFloat(dimension.X), 0.0005)
		require.Equal(t, uint64(100*i), p.GetUint(dimension.Intensity))
		require.Equal(t, 300000.25+float64(i), p.GetFloat(dimension.GpsTime))
		require.Equal(t, float64(i*7), p.GetFloat(lasrec.DimID("Reflectance")))
		require.Equal(t, []byte{byte(i), 0x10, 0x20}, p.GetRaw(lasrec.DimID("Echo")))
	}
}

func TestParseExtraDimsWrapper(t *testing.T) {
	dims, err := lasrec.ParseExtraDims([]string{"Foo=Unsigned16:0.01:10", "Bar=7"}, true)

	require.NoError(t, err)
	require.Len(t, dims, 2)
	require.Equal(t, dimension.Unsigned16, dims[0].Type)
	require.Equal(t, 7, dims[1].Size)
}
