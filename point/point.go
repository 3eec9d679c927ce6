// Package point provides the structured, dimension-addressable in-memory
// representation of one point, independent of any binary record layout.
//
// Codec units read and write points exclusively through the typed get/set
// methods; they never see a raw memory layout. Numeric values are held as
// float64, matching the precision of every fixed-format LAS field. Opaque
// extra-bytes runs are held as raw byte slices.
package point

import "github.com/arloliu/lasrec/dimension"

// Point is one point record's field values, addressed by dimension id.
//
// A Point is value-like: it never retains references into the record
// buffers it was decoded from. The zero value is not usable; create points
// with New.
type Point struct {
	nums map[dimension.ID]float64
	raws map[dimension.ID][]byte
}

// New creates an empty point.
func New() *Point {
	return &Point{
		nums: make(map[dimension.ID]float64, 24),
	}
}

// SetFloat sets a numeric dimension value.
func (p *Point) SetFloat(id dimension.ID, val float64) {
	p.nums[id] = val
}

// GetFloat returns a numeric dimension value, or 0 when unset.
func (p *Point) GetFloat(id dimension.ID) float64 {
	return p.nums[id]
}

// SetInt sets a numeric dimension from a signed integer.
func (p *Point) SetInt(id dimension.ID, val int64) {
	p.nums[id] = float64(val)
}

// GetInt returns a numeric dimension truncated to a signed integer.
func (p *Point) GetInt(id dimension.ID) int64 {
	return int64(p.nums[id])
}

// SetUint sets a numeric dimension from an unsigned integer.
func (p *Point) SetUint(id dimension.ID, val uint64) {
	p.nums[id] = float64(val)
}

// GetUint returns a numeric dimension truncated to an unsigned integer.
func (p *Point) GetUint(id dimension.ID) uint64 {
	return uint64(p.nums[id])
}

// SetBool sets a flag dimension.
func (p *Point) SetBool(id dimension.ID, val bool) {
	if val {
		p.nums[id] = 1
	} else {
		p.nums[id] = 0
	}
}

// GetBool returns a flag dimension.
func (p *Point) GetBool(id dimension.ID) bool {
	return p.nums[id] != 0
}

// SetRaw stores an opaque byte run for an untyped extra dimension. The
// bytes are copied.
func (p *Point) SetRaw(id dimension.ID, val []byte) {
	if p.raws == nil {
		p.raws = make(map[dimension.ID][]byte, 4)
	}
	p.raws[id] = append([]byte(nil), val...)
}

// GetRaw returns the opaque byte run for an untyped extra dimension, or nil
// when unset. The returned slice is owned by the point.
func (p *Point) GetRaw(id dimension.ID) []byte {
	return p.raws[id]
}

// Has reports whether a dimension has been set on the point.
func (p *Point) Has(id dimension.ID) bool {
	if _, ok := p.nums[id]; ok {
		return true
	}
	_, ok := p.raws[id]

	return ok
}

// Clone returns a deep copy of the point.
func (p *Point) Clone() *Point {
	c := New()
	for id, v := range p.nums {
		c.nums[id] = v
	}
	for id, v := range p.raws {
		c.SetRaw(id, v)
	}

	return c
}

// Equal reports whether two points hold identical values for identical
// dimension sets.
func (p *Point) Equal(o *Point) bool {
	if len(p.nums) != len(o.nums) || len(p.raws) != len(o.raws) {
		return false
	}
	for id, v := range p.nums {
		ov, ok := o.nums[id]
		if !ok || ov != v {
			return false
		}
	}
	for id, v := range p.raws {
		ov, ok := o.raws[id]
		if !ok || string(ov) != string(v) {
			return false
		}
	}

	return true
}
