package loader

import (
	"math"

	"github.com/arloliu/lasrec/dimension"
	"github.com/arloliu/lasrec/endian"
	"github.com/arloliu/lasrec/format"
	"github.com/arloliu/lasrec/point"
)

// pointLoader is one codec unit of the record chain. Both methods assume
// the Driver has already verified that buf covers the full record; units
// therefore cannot fail.
type pointLoader interface {
	load(p *point.Point, buf []byte)
	pack(p *point.Point, buf []byte)
}

// v10BaseLoader handles the legacy 20-byte base record used by point
// formats 0-5.
type v10BaseLoader struct {
	scaling format.Scaling
	engine  endian.EndianEngine
}

func newV10BaseLoader(scaling format.Scaling) *v10BaseLoader {
	return &v10BaseLoader{scaling: scaling, engine: endian.GetLittleEndianEngine()}
}

func (l *v10BaseLoader) load(p *point.Point, buf []byte) {
	x := int32(l.engine.Uint32(buf[0:4]))
	y := int32(l.engine.Uint32(buf[4:8]))
	z := int32(l.engine.Uint32(buf[8:12]))
	p.SetFloat(dimension.X, l.scaling.X.FromRaw(int64(x)))
	p.SetFloat(dimension.Y, l.scaling.Y.FromRaw(int64(y)))
	p.SetFloat(dimension.Z, l.scaling.Z.FromRaw(int64(z)))

	p.SetUint(dimension.Intensity, uint64(l.engine.Uint16(buf[12:14])))

	flags := buf[14]
	p.SetUint(dimension.ReturnNumber, uint64(flags&0x07))
	p.SetUint(dimension.NumberOfReturns, uint64((flags>>3)&0x07))
	p.SetBool(dimension.ScanDirectionFlag, flags&0x40 != 0)
	p.SetBool(dimension.EdgeOfFlightLine, flags&0x80 != 0)

	// Classification flags ride in the top three bits of the class byte.
	class := buf[15]
	p.SetUint(dimension.Classification, uint64(class&0x1F))
	p.SetBool(dimension.Synthetic, class&0x20 != 0)
	p.SetBool(dimension.KeyPoint, class&0x40 != 0)
	p.SetBool(dimension.Withheld, class&0x80 != 0)

	p.SetInt(dimension.ScanAngleRank, int64(int8(buf[16])))
	p.SetUint(dimension.UserData, uint64(buf[17]))
	p.SetUint(dimension.PointSourceID, uint64(l.engine.Uint16(buf[18:20])))
}

func (l *v10BaseLoader) pack(p *point.Point, buf []byte) {
	l.engine.PutUint32(buf[0:4], uint32(int32(l.scaling.X.ToRaw(p.GetFloat(dimension.X)))))
	l.engine.PutUint32(buf[4:8], uint32(int32(l.scaling.Y.ToRaw(p.GetFloat(dimension.Y)))))
	l.engine.PutUint32(buf[8:12], uint32(int32(l.scaling.Z.ToRaw(p.GetFloat(dimension.Z)))))

	l.engine.PutUint16(buf[12:14], uint16(p.GetUint(dimension.Intensity)))

	flags := uint8(p.GetUint(dimension.ReturnNumber) & 0x07)
	flags |= uint8(p.GetUint(dimension.NumberOfReturns)&0x07) << 3
	if p.GetBool(dimension.ScanDirectionFlag) {
		flags |= 0x40
	}
	if p.GetBool(dimension.EdgeOfFlightLine) {
		flags |= 0x80
	}
	buf[14] = flags

	class := uint8(p.GetUint(dimension.Classification) & 0x1F)
	if p.GetBool(dimension.Synthetic) {
		class |= 0x20
	}
	if p.GetBool(dimension.KeyPoint) {
		class |= 0x40
	}
	if p.GetBool(dimension.Withheld) {
		class |= 0x80
	}
	buf[15] = class

	buf[16] = uint8(int8(p.GetInt(dimension.ScanAngleRank)))
	buf[17] = uint8(p.GetUint(dimension.UserData))
	l.engine.PutUint16(buf[18:20], uint16(p.GetUint(dimension.PointSourceID)))
}

// scanAngleResolution is the fixed unit of the extended scan angle field.
const scanAngleResolution = 0.006

// v14BaseLoader handles the 22-byte extended base record used by point
// formats 6 and up: four-bit return counts, a full classification byte, a
// separate flags byte with scanner channel, and a 16-bit scan angle at
// 0.006 degree resolution.
type v14BaseLoader struct {
	scaling format.Scaling
	engine  endian.EndianEngine
}

func newV14BaseLoader(scaling format.Scaling) *v14BaseLoader {
	return &v14BaseLoader{scaling: scaling, engine: endian.GetLittleEndianEngine()}
}

func (l *v14BaseLoader) load(p *point.Point, buf []byte) {
	x := int32(l.engine.Uint32(buf[0:4]))
	y := int32(l.engine.Uint32(buf[4:8]))
	z := int32(l.engine.Uint32(buf[8:12]))
	p.SetFloat(dimension.X, l.scaling.X.FromRaw(int64(x)))
	p.SetFloat(dimension.Y, l.scaling.Y.FromRaw(int64(y)))
	p.SetFloat(dimension.Z, l.scaling.Z.FromRaw(int64(z)))

	p.SetUint(dimension.Intensity, uint64(l.engine.Uint16(buf[12:14])))

	returns := buf[14]
	p.SetUint(dimension.ReturnNumber, uint64(returns&0x0F))
	p.SetUint(dimension.NumberOfReturns, uint64(returns>>4))

	flags := buf[15]
	p.SetBool(dimension.Synthetic, flags&0x01 != 0)
	p.SetBool(dimension.KeyPoint, flags&0x02 != 0)
	p.SetBool(dimension.Withheld, flags&0x04 != 0)
	p.SetBool(dimension.Overlap, flags&0x08 != 0)
	p.SetUint(dimension.ScannerChannel, uint64((flags>>4)&0x03))
	p.SetBool(dimension.ScanDirectionFlag, flags&0x40 != 0)
	p.SetBool(dimension.EdgeOfFlightLine, flags&0x80 != 0)

	p.SetUint(dimension.Classification, uint64(buf[16]))
	p.SetUint(dimension.UserData, uint64(buf[17]))

	angle := int16(l.engine.Uint16(buf[18:20]))
	p.SetFloat(dimension.ScanAngleRank, float64(angle)*scanAngleResolution)

	p.SetUint(dimension.PointSourceID, uint64(l.engine.Uint16(buf[20:22])))
}

func (l *v14BaseLoader) pack(p *point.Point, buf []byte) {
	l.engine.PutUint32(buf[0:4], uint32(int32(l.scaling.X.ToRaw(p.GetFloat(dimension.X)))))
	l.engine.PutUint32(buf[4:8], uint32(int32(l.scaling.Y.ToRaw(p.GetFloat(dimension.Y)))))
	l.engine.PutUint32(buf[8:12], uint32(int32(l.scaling.Z.ToRaw(p.GetFloat(dimension.Z)))))

	l.engine.PutUint16(buf[12:14], uint16(p.GetUint(dimension.Intensity)))

	returns := uint8(p.GetUint(dimension.ReturnNumber) & 0x0F)
	returns |= uint8(p.GetUint(dimension.NumberOfReturns)&0x0F) << 4
	buf[14] = returns

	var flags uint8
	if p.GetBool(dimension.Synthetic) {
		flags |= 0x01
	}
	if p.GetBool(dimension.KeyPoint) {
		flags |= 0x02
	}
	if p.GetBool(dimension.Withheld) {
		flags |= 0x04
	}
	if p.GetBool(dimension.Overlap) {
		flags |= 0x08
	}
	flags |= uint8(p.GetUint(dimension.ScannerChannel)&0x03) << 4
	if p.GetBool(dimension.ScanDirectionFlag) {
		flags |= 0x40
	}
	if p.GetBool(dimension.EdgeOfFlightLine) {
		flags |= 0x80
	}
	buf[15] = flags

	buf[16] = uint8(p.GetUint(dimension.Classification))
	buf[17] = uint8(p.GetUint(dimension.UserData))

	angle := math.Round(p.GetFloat(dimension.ScanAngleRank) / scanAngleResolution)
	l.engine.PutUint16(buf[18:20], uint16(int16(angle)))

	l.engine.PutUint16(buf[20:22], uint16(p.GetUint(dimension.PointSourceID)))
}
