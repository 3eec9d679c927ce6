package loader

import (
	"math"

	"github.com/arloliu/lasrec/dimension"
	"github.com/arloliu/lasrec/endian"
	"github.com/arloliu/lasrec/point"
)

// gpstimeLoader handles the 8-byte GPS time field at a fixed offset.
type gpstimeLoader struct {
	offset int
	engine endian.EndianEngine
}

func newGpstimeLoader(offset int) *gpstimeLoader {
	return &gpstimeLoader{offset: offset, engine: endian.GetLittleEndianEngine()}
}

func (l *gpstimeLoader) load(p *point.Point, buf []byte) {
	bits := l.engine.Uint64(buf[l.offset : l.offset+8])
	p.SetFloat(dimension.GpsTime, math.Float64frombits(bits))
}

func (l *gpstimeLoader) pack(p *point.Point, buf []byte) {
	bits := math.Float64bits(p.GetFloat(dimension.GpsTime))
	l.engine.PutUint64(buf[l.offset:l.offset+8], bits)
}

// colorLoader handles the three consecutive 16-bit Red/Green/Blue fields.
type colorLoader struct {
	offset int
	engine endian.EndianEngine
}

func newColorLoader(offset int) *colorLoader {
	return &colorLoader{offset: offset, engine: endian.GetLittleEndianEngine()}
}

func (l *colorLoader) load(p *point.Point, buf []byte) {
	p.SetUint(dimension.Red, uint64(l.engine.Uint16(buf[l.offset:])))
	p.SetUint(dimension.Green, uint64(l.engine.Uint16(buf[l.offset+2:])))
	p.SetUint(dimension.Blue, uint64(l.engine.Uint16(buf[l.offset+4:])))
}

func (l *colorLoader) pack(p *point.Point, buf []byte) {
	l.engine.PutUint16(buf[l.offset:l.offset+2], uint16(p.GetUint(dimension.Red)))
	l.engine.PutUint16(buf[l.offset+2:l.offset+4], uint16(p.GetUint(dimension.Green)))
	l.engine.PutUint16(buf[l.offset+4:l.offset+6], uint16(p.GetUint(dimension.Blue)))
}

// nirLoader handles the 16-bit near-infrared field.
type nirLoader struct {
	offset int
	engine endian.EndianEngine
}

func newNirLoader(offset int) *nirLoader {
	return &nirLoader{offset: offset, engine: endian.GetLittleEndianEngine()}
}

func (l *nirLoader) load(p *point.Point, buf []byte) {
	p.SetUint(dimension.Infrared, uint64(l.engine.Uint16(buf[l.offset:])))
}

func (l *nirLoader) pack(p *point.Point, buf []byte) {
	l.engine.PutUint16(buf[l.offset:l.offset+2], uint16(p.GetUint(dimension.Infrared)))
}
