package format

import "math"

// XForm is a per-axis scale and offset pair converting a stored integer
// coordinate to a real value via real = raw*scale + offset.
type XForm struct {
	Scale  float64
	Offset float64
}

// DefaultXForm is the identity transform.
var DefaultXForm = XForm{Scale: 1.0}

// FromRaw converts a stored integer value to its real-world value.
func (x XForm) FromRaw(raw int64) float64 {
	return float64(raw)*x.Scale + x.Offset
}

// ToRaw converts a real-world value back to its stored integer form,
// rounding half away from zero. A zero scale degrades to a direct cast so
// that unscaled dimensions round-trip without division by zero.
func (x XForm) ToRaw(val float64) int64 {
	if x.Scale == 0 {
		return int64(val - x.Offset)
	}

	return int64(math.Round((val - x.Offset) / x.Scale))
}

// Scaling holds the per-axis transforms applied to the X, Y and Z fields of
// a point record.
type Scaling struct {
	X XForm
	Y XForm
	Z XForm
}

// DefaultScaling returns identity transforms on all three axes.
func DefaultScaling() Scaling {
	return Scaling{X: DefaultXForm, Y: DefaultXForm, Z: DefaultXForm}
}
