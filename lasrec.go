// Package lasrec implements a binary point-record codec for the LAS family
// of point cloud formats, plus a lazy, thread-safe index over the
// variable-length metadata records (VLRs) embedded in the same file.
//
// # Core Features
//
//   - Decode/encode of point record formats 0-3 and 6-8, including
//     per-axis scale/offset coordinate transforms and bit-packed flags
//   - Extensible extra-bytes dimensions with their own 192-byte wire
//     format, typed transforms and opaque raw fields
//   - Random access to VLR/EVLR payloads through an injected byte-range
//     reader, independent of local or remote storage
//   - Pluggable chunk codecs (none, zstd, lz4, s2) for sources that
//     deliver compressed point chunks
//
// # Basic Usage
//
// Decoding points:
//
//	import "github.com/arloliu/lasrec"
//
//	driver, _ := lasrec.NewLoaderDriver(3, scaling, nil)
//	p := point.New()
//	for _, record := range records {
//	    if err := driver.Load(p, record); err != nil {
//	        return err
//	    }
//	    fmt.Println(p.GetFloat(dimension.X), p.GetFloat(dimension.Y))
//	}
//
// Fetching metadata through any byte source:
//
//	catalog := lasrec.NewVlrCatalog(vlr.ReaderAt(file))
//	_ = catalog.Load(vlrOffset, vlrCount, evlrOffset, evlrCount)
//	wkt, _ := catalog.Fetch("LASF_Projection", 2112)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the loader,
// dimension and vlr packages, simplifying the most common use cases. For
// fine-grained control, use those packages directly.
package lasrec

import (
	"github.com/arloliu/lasrec/dimension"
	"github.com/arloliu/lasrec/format"
	"github.com/arloliu/lasrec/loader"
	"github.com/arloliu/lasrec/vlr"
)

// DimID resolves a dimension name (well-known or custom) to its id.
func DimID(name string) dimension.ID {
	return dimension.ForName(name)
}

// ParseExtraDims parses extra-dimension spec tokens such as
// "Reflectance=Unsigned16:0.01:10" or "Opaque=7". When strict is true an
// unparsable token fails the whole operation; otherwise it is skipped.
func ParseExtraDims(specs []string, strict bool) (dimension.ExtraDims, error) {
	return dimension.Parse(specs, strict)
}

// NewLoaderDriver assembles the codec chain for one point record layout.
func NewLoaderDriver(formatID int, scaling format.Scaling, dims dimension.ExtraDims) (*loader.Driver, error) {
	return loader.NewDriver(formatID, scaling, dims)
}

// NewVlrCatalog creates a VLR catalog whose directory is built later via
// its Load method.
func NewVlrCatalog(read vlr.ReadFunc) *vlr.Catalog {
	return vlr.NewCatalog(read)
}
