package loader

import (
	"fmt"

	"github.com/arloliu/lasrec/dimension"
	"github.com/arloliu/lasrec/errs"
	"github.com/arloliu/lasrec/format"
	"github.com/arloliu/lasrec/point"
)

// Driver assembles and drives the codec chain for one point record layout.
//
// The chain is fully determined by (format id, scaling, extra dims) and is
// immutable between Init calls; re-initializing discards the prior chain.
type Driver struct {
	loaders    []pointLoader
	recordSize int
}

// NewDriver creates a driver for the given point record format.
//
// Extra dims may carry byte offsets relative either to the start of the
// extra-bytes region (as produced by dimension.Parse) or to the start of
// the whole record (as produced by section.ToExtraDims with the base size
// as its base offset); the driver normalizes them so the region always
// follows the fixed portion.
func NewDriver(formatID int, scaling format.Scaling, dims dimension.ExtraDims) (*Driver, error) {
	d := &Driver{}
	if err := d.Init(formatID, scaling, dims); err != nil {
		return nil, err
	}

	return d, nil
}

// Init rebuilds the codec chain. It requires exclusive access: no Load or
// Pack call may run concurrently with Init on the same driver.
func (d *Driver) Init(formatID int, scaling format.Scaling, dims dimension.ExtraDims) error {
	baseSize, err := format.BaseSize(formatID)
	if err != nil {
		return fmt.Errorf("%w: format id %d", errs.ErrUnsupportedFormat, formatID)
	}

	loaders := make([]pointLoader, 0, 4)
	if format.Extended(formatID) {
		loaders = append(loaders, newV14BaseLoader(scaling))
	} else {
		loaders = append(loaders, newV10BaseLoader(scaling))
	}
	if off := format.GpstimeOffset(formatID); off >= 0 {
		loaders = append(loaders, newGpstimeLoader(off))
	}
	if off := format.ColorOffset(formatID); off >= 0 {
		loaders = append(loaders, newColorLoader(off))
	}
	if off := format.NirOffset(formatID); off >= 0 {
		loaders = append(loaders, newNirLoader(off))
	}
	if len(dims) > 0 {
		loaders = append(loaders, newExtraDimLoader(rebase(dims, baseSize)))
	}

	d.loaders = loaders
	d.recordSize = baseSize + dims.Size()

	return nil
}

// rebase shifts extra-dim byte offsets so the first dim lands directly
// after the fixed portion of the record, preserving the region's internal
// layout. Dims already carrying absolute offsets pass through unchanged.
func rebase(dims dimension.ExtraDims, baseSize int) dimension.ExtraDims {
	shift := baseSize - dims[0].ByteOffset
	if shift == 0 {
		return dims
	}

	out := make(dimension.ExtraDims, len(dims))
	copy(out, dims)
	for i := range out {
		out[i].ByteOffset += shift
	}

	return out
}

// RecordSize returns the total on-disk size of one point record for the
// configured layout.
func (d *Driver) RecordSize() int {
	return d.recordSize
}

// Load decodes one record from buf into p. When buf is shorter than the
// record size it fails without invoking any unit and without mutating p.
func (d *Driver) Load(p *point.Point, buf []byte) error {
	if len(buf) < d.recordSize {
		return fmt.Errorf("%w: got %d bytes, need %d", errs.ErrBufferTooSmall, len(buf), d.recordSize)
	}
	for _, l := range d.loaders {
		l.load(p, buf)
	}

	return nil
}

// Pack encodes p into buf, the exact inverse of Load. When buf is shorter
// than the record size it fails without mutating buf.
func (d *Driver) Pack(p *point.Point, buf []byte) error {
	if len(buf) < d.recordSize {
		return fmt.Errorf("%w: got %d bytes, need %d", errs.ErrBufferTooSmall, len(buf), d.recordSize)
	}
	for _, l := range d.loaders {
		l.pack(p, buf)
	}

	return nil
}
