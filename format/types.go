// Package format defines the type tags and descriptors for LAS point
// records: the compression kind selector, the point record format table,
// and the scale/offset transforms applied to stored coordinates.
package format

import (
	"strings"

	"github.com/arloliu/lasrec/dimension"
	"github.com/arloliu/lasrec/errs"
)

// Compression selects the codec applied to point-record chunks. The codec
// itself is pluggable (see the compress package); this type only names the
// kind so it can travel through configuration and file metadata.
type Compression uint8

const (
	CompressionNone    Compression = iota // uncompressed point records
	CompressionLasZip                     // laszip chunked stream, external codec
	CompressionLazPerf                    // lazperf chunked stream, external codec
	CompressionZstd                       // zstandard-compressed raw chunks (EPT style)
	CompressionLZ4                        // lz4 block-compressed raw chunks
	CompressionS2                         // s2-compressed raw chunks
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionLasZip:
		return "LasZip"
	case CompressionLazPerf:
		return "LazPerf"
	case CompressionZstd:
		return "Zstd"
	case CompressionLZ4:
		return "LZ4"
	case CompressionS2:
		return "S2"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a configuration string to a Compression kind.
// "laszip" and "true" select LasZip, "lazperf" selects LazPerf, "zstd" and
// "zstandard" select Zstd; anything else means no compression. Matching is
// case-insensitive.
func ParseCompression(s string) Compression {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LASZIP", "TRUE":
		return CompressionLasZip
	case "LAZPERF":
		return CompressionLazPerf
	case "ZSTD", "ZSTANDARD":
		return CompressionZstd
	case "LZ4":
		return CompressionLZ4
	case "S2":
		return CompressionS2
	default:
		return CompressionNone
	}
}

// Base record sizes and optional-field offsets per point record format id.
// Formats 4, 5, 9 and 10 carry wave packets and are not supported.
var formats = map[int]struct {
	baseSize      int
	gpstimeOffset int // -1 when absent
	colorOffset   int // -1 when absent
	nirOffset     int // -1 when absent
	extended      bool
}{
	0: {20, -1, -1, -1, false},
	1: {28, 20, -1, -1, false},
	2: {26, -1, 20, -1, false},
	3: {34, 20, 28, -1, false},
	6: {30, 22, -1, -1, true},
	7: {36, 22, 30, -1, true},
	8: {38, 22, 30, 36, true},
}

// Supported reports whether the point record format id is one this codec
// can decode.
func Supported(formatID int) bool {
	_, ok := formats[formatID]

	return ok
}

// BaseSize returns the fixed record size in bytes for the format id,
// excluding any extra bytes. It returns ErrUnsupportedFormat for wave-packet
// formats and unknown ids.
func BaseSize(formatID int) (int, error) {
	f, ok := formats[formatID]
	if !ok {
		return 0, errs.ErrUnsupportedFormat
	}

	return f.baseSize, nil
}

// Extended reports whether the format uses the LAS 1.4 extended base record
// (formats 6 and up) rather than the legacy 20-byte base record.
func Extended(formatID int) bool {
	return formats[formatID].extended
}

// HasGpstime reports whether the format carries a GPS time field.
func HasGpstime(formatID int) bool { return formats[formatID].gpstimeOffset >= 0 }

// HasColor reports whether the format carries Red/Green/Blue fields.
func HasColor(formatID int) bool { return formats[formatID].colorOffset >= 0 }

// HasNir reports whether the format carries a near-infrared field.
func HasNir(formatID int) bool { return formats[formatID].nirOffset >= 0 }

// GpstimeOffset returns the byte offset of the GPS time field within the
// record, or -1 when the format has none.
func GpstimeOffset(formatID int) int { return formats[formatID].gpstimeOffset }

// ColorOffset returns the byte offset of the Red field within the record,
// or -1 when the format has none.
func ColorOffset(formatID int) int { return formats[formatID].colorOffset }

// NirOffset returns the byte offset of the near-infrared field within the
// record, or -1 when the format has none.
func NirOffset(formatID int) int { return formats[formatID].nirOffset }

var v10Dims = []dimension.ID{
	dimension.X, dimension.Y, dimension.Z, dimension.Intensity,
	dimension.ReturnNumber, dimension.NumberOfReturns,
	dimension.ScanDirectionFlag, dimension.EdgeOfFlightLine,
	dimension.Classification, dimension.Synthetic, dimension.KeyPoint,
	dimension.Withheld, dimension.ScanAngleRank, dimension.UserData,
	dimension.PointSourceID,
}

var v14Dims = []dimension.ID{
	dimension.X, dimension.Y, dimension.Z, dimension.Intensity,
	dimension.ReturnNumber, dimension.NumberOfReturns,
	dimension.ScanDirectionFlag, dimension.EdgeOfFlightLine,
	dimension.Classification, dimension.Synthetic, dimension.KeyPoint,
	dimension.Withheld, dimension.Overlap, dimension.ScannerChannel,
	dimension.ScanAngleRank, dimension.UserData, dimension.PointSourceID,
}

// Dims returns the dimension ids a point record format carries, in on-disk
// field order. The returned slice is owned by the caller.
func Dims(formatID int) ([]dimension.ID, error) {
	f, ok := formats[formatID]
	if !ok {
		return nil, errs.ErrUnsupportedFormat
	}

	dims := v10Dims
	if f.extended {
		dims = v14Dims
	}
	out := make([]dimension.ID, len(dims), len(dims)+5)
	copy(out, dims)

	if f.gpstimeOffset >= 0 {
		out = append(out, dimension.GpsTime)
	}
	if f.colorOffset >= 0 {
		out = append(out, dimension.Red, dimension.Green, dimension.Blue)
	}
	if f.nirOffset >= 0 {
		out = append(out, dimension.Infrared)
	}

	return out, nil
}
