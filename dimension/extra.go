package dimension

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/lasrec/errs"
)

// ExtraDim describes one optional field appended after the fixed portion of
// a point record. A dim with Type None holds Size opaque bytes; any other
// type stores its canonical size and may carry a scale/offset transform.
type ExtraDim struct {
	Name       string
	Type       Type
	Scale      float64
	Offset     float64
	Size       int
	ByteOffset int
}

// NewExtraDim creates a typed extra dimension. The size is the canonical
// size of the type.
func NewExtraDim(name string, typ Type, byteOffset int, scale, offset float64) ExtraDim {
	return ExtraDim{
		Name:       name,
		Type:       typ,
		Scale:      scale,
		Offset:     offset,
		Size:       Size(typ),
		ByteOffset: byteOffset,
	}
}

// NewRawExtraDim creates an untyped extra dimension holding size opaque
// bytes.
func NewRawExtraDim(name string, size, byteOffset int) ExtraDim {
	return ExtraDim{Name: name, Type: None, Size: size, ByteOffset: byteOffset}
}

// ID returns the dimension id addressing this dim's values on a point.
func (d ExtraDim) ID() ID {
	return ForName(d.Name)
}

// Matches reports whether two dims describe the same field. The comparison
// is deliberately partial (name, type, size): it is used to match a dim
// specified in configuration against one built from an extra-bytes record,
// and those never agree on byte offsets or transforms.
func (d ExtraDim) Matches(o ExtraDim) bool {
	return d.Name == o.Name && d.Type == o.Type && d.Size == o.Size
}

// ExtraDims is an ordered list of extra dimensions forming a contiguous
// partition of the extra-bytes region.
type ExtraDims []ExtraDim

// Size returns the total on-disk size of the region in bytes.
func (ds ExtraDims) Size() int {
	var n int
	for _, d := range ds {
		n += d.Size
	}

	return n
}

// Parse parses extra-dimension spec tokens of the form
// "name=type[:scale[:offset]]" or "name=size" into an ordered list with
// cumulative byte offsets starting at 0.
//
// When strict is true an unparsable token fails the whole operation with
// an error wrapping errs.ErrInvalidDimSpec; when false such tokens are
// skipped.
func Parse(specs []string, strict bool) (ExtraDims, error) {
	var dims ExtraDims

	byteOffset := 0
	for _, spec := range specs {
		dim, err := parseOne(spec, byteOffset)
		if err != nil {
			if strict {
				return nil, err
			}

			continue
		}
		dims = append(dims, dim)
		byteOffset += dim.Size
	}

	return dims, nil
}

func parseOne(spec string, byteOffset int) (ExtraDim, error) {
	name, desc, ok := strings.Cut(spec, "=")
	name = strings.TrimSpace(name)
	desc = strings.TrimSpace(desc)
	if !ok || name == "" || desc == "" {
		return ExtraDim{}, fmt.Errorf("%w: %q", errs.ErrInvalidDimSpec, spec)
	}

	// A bare integer declares an opaque run of raw bytes.
	if size, err := strconv.Atoi(desc); err == nil {
		if size <= 0 || size > 255 {
			return ExtraDim{}, fmt.Errorf("%w: %q: size must be 1-255", errs.ErrInvalidDimSpec, spec)
		}

		return NewRawExtraDim(name, size, byteOffset), nil
	}

	parts := strings.Split(desc, ":")
	if len(parts) > 3 {
		return ExtraDim{}, fmt.Errorf("%w: %q", errs.ErrInvalidDimSpec, spec)
	}

	typ, ok := ParseType(parts[0])
	if !ok || typ == None {
		return ExtraDim{}, fmt.Errorf("%w: %q: unknown type %q", errs.ErrInvalidDimSpec, spec, parts[0])
	}

	scale, offset := 1.0, 0.0
	var err error
	if len(parts) > 1 {
		if scale, err = strconv.ParseFloat(parts[1], 64); err != nil {
			return ExtraDim{}, fmt.Errorf("%w: %q: bad scale %q", errs.ErrInvalidDimSpec, spec, parts[1])
		}
	}
	if len(parts) > 2 {
		if offset, err = strconv.ParseFloat(parts[2], 64); err != nil {
			return ExtraDim{}, fmt.Errorf("%w: %q: bad offset %q", errs.ErrInvalidDimSpec, spec, parts[2])
		}
	}

	return NewExtraDim(name, typ, byteOffset, scale, offset), nil
}
