package section

import (
	"fmt"
	"math"
	"strconv"

	"github.com/arloliu/lasrec/dimension"
	"github.com/arloliu/lasrec/endian"
	"github.com/arloliu/lasrec/errs"
)

// ExtraBytesRecordSize is the fixed size of one extra-bytes spec record.
//
// Wire layout (little-endian):
//
//	offset   size  field
//	0        2     reserved
//	2        1     data type code (0-30)
//	3        1     options bitmask (noData/min/max/scale/offset presence)
//	4        32    name, zero padded
//	36       4     reserved
//	40       24    no-data, 3 x uint64
//	64       24    min, 3 x float64
//	88       24    max, 3 x float64
//	112      24    scale, 3 x float64
//	136      24    offset, 3 x float64
//	160      32    description, zero padded
const ExtraBytesRecordSize = 192

// Options bitmask flags.
const (
	noDataFlag = 1 << 0
	minFlag    = 1 << 1
	maxFlag    = 1 << 2
	scaleFlag  = 1 << 3
	offsetFlag = 1 << 4
)

// ExtraBytes is the in-memory form of one extra-bytes spec record.
//
// FieldCount is 0 for an opaque run of raw bytes (Size holds the declared
// byte count) and 1-3 for typed records, where counts above one fan out to
// numbered sub-fields. Scale and Offset hold per-sub-field transforms;
// HasScale/HasOffset mirror the option flags that mark them as present.
type ExtraBytes struct {
	Name        string
	Description string
	Type        dimension.Type
	FieldCount  int
	Scale       [3]float64
	Offset      [3]float64
	Size        int
	HasScale    bool
	HasOffset   bool
}

// NewExtraBytes creates a spec record for a single field of the given type,
// or for raw bytes when typ is None (set Size afterwards for that case).
//
// Scales are left at zero rather than one: when the scale option flag is
// not set the wire value is supposed to be zero, and this codec always
// clears the flag on write.
func NewExtraBytes(name string, typ dimension.Type, description string) *ExtraBytes {
	eb := &ExtraBytes{
		Name:        name,
		Description: description,
		Type:        typ,
		Size:        dimension.Size(typ),
	}
	if typ != dimension.None {
		eb.FieldCount = 1
	}

	return eb
}

var lasTypes = []dimension.Type{
	dimension.None,
	dimension.Unsigned8, dimension.Signed8,
	dimension.Unsigned16, dimension.Signed16,
	dimension.Unsigned32, dimension.Signed32,
	dimension.Unsigned64, dimension.Signed64,
	dimension.Float, dimension.Double,
}

// LasType returns the wire data type code for the record: 0 for raw bytes,
// otherwise 10*(fieldCount-1) + base code, where base codes 1-10 follow the
// order unsigned/signed per width, then float, then double.
func (eb *ExtraBytes) LasType() uint8 {
	if eb.FieldCount == 0 {
		return 0
	}

	base := 0
	for i, t := range lasTypes {
		if t == eb.Type {
			base = i
			break
		}
	}

	return uint8(10*(eb.FieldCount-1) + base)
}

// SetLasType applies a wire data type code, setting Type and FieldCount.
// Code 0 selects raw bytes with field count 0; codes 1-30 select a typed
// record with 1-3 sub-fields.
func (eb *ExtraBytes) SetLasType(code uint8) error {
	if code > 30 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidLasType, code)
	}
	if code == 0 {
		eb.Type = dimension.None
		eb.FieldCount = 0

		return nil
	}

	cnt := 1
	for code > 10 {
		code -= 10
		cnt++
	}
	eb.Type = lasTypes[code]
	eb.FieldCount = cnt
	eb.Size = dimension.Size(eb.Type)

	return nil
}

// AppendTo serializes the record and appends the 192 bytes to buf,
// returning the extended slice.
//
// The scale and offset option flags are always cleared on write even when
// the arrays carry values; for raw-byte records the options byte instead
// holds the declared size.
func (eb *ExtraBytes) AppendTo(buf []byte) []byte {
	engine := endian.GetLittleEndianEngine()

	code := eb.LasType()
	options := uint8(0)
	if code == 0 {
		options = uint8(eb.Size)
	}

	buf = engine.AppendUint16(buf, 0) // reserved
	buf = append(buf, code, options)
	buf = appendPadded(buf, eb.Name, 32)
	buf = engine.AppendUint32(buf, 0) // reserved
	for range 3 {
		buf = engine.AppendUint64(buf, 0) // no data
	}
	for range 6 {
		buf = engine.AppendUint64(buf, 0) // min, max
	}
	for i := range 3 {
		buf = engine.AppendUint64(buf, math.Float64bits(eb.Scale[i]))
	}
	for i := range 3 {
		buf = engine.AppendUint64(buf, math.Float64bits(eb.Offset[i]))
	}

	return appendPadded(buf, eb.Description, 32)
}

// ReadFrom parses one spec record from buf, the exact inverse of AppendTo.
// buf must hold at least ExtraBytesRecordSize bytes.
func (eb *ExtraBytes) ReadFrom(buf []byte) error {
	if len(buf) < ExtraBytesRecordSize {
		return fmt.Errorf("%w: got %d bytes", errs.ErrInvalidExtraBytesSize, len(buf))
	}
	engine := endian.GetLittleEndianEngine()

	code := buf[2]
	options := buf[3]
	eb.Name = trimPadded(buf[4:36])
	// bytes 36-39 reserved, 40-63 no data, 64-111 min/max: all skipped
	for i := range 3 {
		eb.Scale[i] = math.Float64frombits(engine.Uint64(buf[112+8*i:]))
		eb.Offset[i] = math.Float64frombits(engine.Uint64(buf[136+8*i:]))
	}
	eb.Description = trimPadded(buf[160:192])

	if err := eb.SetLasType(code); err != nil {
		return err
	}
	if eb.Type == dimension.None {
		// For undocumented raw bytes the options byte carries the size.
		eb.Size = int(options)
		eb.HasScale = false
		eb.HasOffset = false

		return nil
	}

	eb.HasScale = options&scaleFlag != 0
	eb.HasOffset = options&offsetFlag != 0
	if !eb.HasScale {
		eb.Scale = [3]float64{}
	}
	if !eb.HasOffset {
		eb.Offset = [3]float64{}
	}

	return nil
}

// ToExtraDims scans buf as a concatenation of 192-byte spec records and
// returns one ExtraDim per declared field, with byte offsets accumulated
// from baseOffset in record order. Multi-field records fan out to numbered
// dims (name0, name1, ...).
//
// A buffer length that is not a multiple of the record size is rejected
// rather than silently truncated.
func ToExtraDims(buf []byte, baseOffset int) (dimension.ExtraDims, error) {
	if len(buf)%ExtraBytesRecordSize != 0 {
		return nil, fmt.Errorf("%w: payload length %d is not a multiple of %d",
			errs.ErrInvalidExtraBytesSize, len(buf), ExtraBytesRecordSize)
	}

	var dims dimension.ExtraDims
	byteOffset := baseOffset
	for len(buf) > 0 {
		var eb ExtraBytes
		if err := eb.ReadFrom(buf); err != nil {
			return nil, err
		}

		if eb.Type == dimension.None {
			dims = append(dims, dimension.NewRawExtraDim(eb.Name, eb.Size, byteOffset))
			byteOffset += eb.Size
		} else {
			for i := range eb.FieldCount {
				name := eb.Name
				if eb.FieldCount > 1 {
					name += strconv.Itoa(i)
				}
				scale, offset := 1.0, 0.0
				if eb.HasScale {
					scale = eb.Scale[i]
				}
				if eb.HasOffset {
					offset = eb.Offset[i]
				}
				dim := dimension.NewExtraDim(name, eb.Type, byteOffset, scale, offset)
				dims = append(dims, dim)
				byteOffset += dim.Size
			}
		}
		buf = buf[ExtraBytesRecordSize:]
	}

	return dims, nil
}

// appendPadded appends s zero-padded or truncated to exactly n bytes.
func appendPadded(buf []byte, s string, n int) []byte {
	if len(s) > n {
		s = s[:n]
	}
	buf = append(buf, s...)
	for i := len(s); i < n; i++ {
		buf = append(buf, 0)
	}

	return buf
}

// trimPadded returns the string up to the first NUL byte.
func trimPadded(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}

	return string(buf)
}
