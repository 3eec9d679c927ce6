package loader

import (
	"math"

	"github.com/arloliu/lasrec/dimension"
	"github.com/arloliu/lasrec/endian"
	"github.com/arloliu/lasrec/point"
)

// extraDimLoader handles every extra-bytes dimension of a record in one
// unit. Typed dims decode to a numeric value with the dim's own scale and
// offset applied; untyped dims copy their raw bytes verbatim.
type extraDimLoader struct {
	dims   dimension.ExtraDims
	engine endian.EndianEngine
}

func newExtraDimLoader(dims dimension.ExtraDims) *extraDimLoader {
	return &extraDimLoader{dims: dims, engine: endian.GetLittleEndianEngine()}
}

func (l *extraDimLoader) load(p *point.Point, buf []byte) {
	for _, dim := range l.dims {
		window := buf[dim.ByteOffset : dim.ByteOffset+dim.Size]
		if dim.Type == dimension.None {
			p.SetRaw(dim.ID(), window)

			continue
		}

		val := extractValue(l.engine, dim.Type, window)
		if dim.Scale != 0 {
			val = val*dim.Scale + dim.Offset
		} else {
			val += dim.Offset
		}
		p.SetFloat(dim.ID(), val)
	}
}

func (l *extraDimLoader) pack(p *point.Point, buf []byte) {
	for _, dim := range l.dims {
		window := buf[dim.ByteOffset : dim.ByteOffset+dim.Size]
		if dim.Type == dimension.None {
			copy(window, p.GetRaw(dim.ID()))

			continue
		}

		val := p.GetFloat(dim.ID()) - dim.Offset
		if dim.Scale != 0 {
			val /= dim.Scale
		}
		insertValue(l.engine, dim.Type, window, val)
	}
}

// extractValue decodes one typed value from its byte window.
func extractValue(engine endian.EndianEngine, typ dimension.Type, buf []byte) float64 {
	switch typ {
	case dimension.Unsigned8:
		return float64(buf[0])
	case dimension.Signed8:
		return float64(int8(buf[0]))
	case dimension.Unsigned16:
		return float64(engine.Uint16(buf))
	case dimension.Signed16:
		return float64(int16(engine.Uint16(buf)))
	case dimension.Unsigned32:
		return float64(engine.Uint32(buf))
	case dimension.Signed32:
		return float64(int32(engine.Uint32(buf)))
	case dimension.Unsigned64:
		return float64(engine.Uint64(buf))
	case dimension.Signed64:
		return float64(int64(engine.Uint64(buf)))
	case dimension.Float:
		return float64(math.Float32frombits(engine.Uint32(buf)))
	case dimension.Double:
		return math.Float64frombits(engine.Uint64(buf))
	default:
		return 0
	}
}

// insertValue encodes one typed value into its byte window. Integral types
// round half away from zero; float types store the value as-is.
func insertValue(engine endian.EndianEngine, typ dimension.Type, buf []byte, val float64) {
	switch typ {
	case dimension.Unsigned8:
		buf[0] = uint8(math.Round(val))
	case dimension.Signed8:
		buf[0] = uint8(int8(math.Round(val)))
	case dimension.Unsigned16:
		engine.PutUint16(buf, uint16(math.Round(val)))
	case dimension.Signed16:
		engine.PutUint16(buf, uint16(int16(math.Round(val))))
	case dimension.Unsigned32:
		engine.PutUint32(buf, uint32(math.Round(val)))
	case dimension.Signed32:
		engine.PutUint32(buf, uint32(int32(math.Round(val))))
	case dimension.Unsigned64:
		engine.PutUint64(buf, uint64(math.Round(val)))
	case dimension.Signed64:
		engine.PutUint64(buf, uint64(int64(math.Round(val))))
	case dimension.Float:
		engine.PutUint32(buf, math.Float32bits(float32(val)))
	case dimension.Double:
		engine.PutUint64(buf, math.Float64bits(val))
	}
}
