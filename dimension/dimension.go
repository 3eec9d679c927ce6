// Package dimension defines dimension identity for point records: the ids
// addressing fields of a point, the numeric type tags used by extra-bytes
// dimensions, and the ExtraDim descriptors parsed from configuration or
// from extra-bytes metadata records.
package dimension

import (
	"strings"

	"github.com/arloliu/lasrec/internal/hash"
)

// ID addresses one dimension of a point. Well-known dimensions use the
// small constants below; custom dimensions (declared through extra bytes)
// are identified by an xxHash64 of their name with the high bit forced so
// the two ranges cannot collide.
type ID uint64

const (
	Unknown ID = iota
	X
	Y
	Z
	Intensity
	ReturnNumber
	NumberOfReturns
	ScanDirectionFlag
	EdgeOfFlightLine
	Classification
	Synthetic
	KeyPoint
	Withheld
	Overlap
	ScanAngleRank
	UserData
	PointSourceID
	GpsTime
	Red
	Green
	Blue
	Infrared
	ScannerChannel
)

// customBit marks ids derived from name hashes.
const customBit ID = 1 << 63

var wellKnown = map[string]ID{
	"x":                 X,
	"y":                 Y,
	"z":                 Z,
	"intensity":         Intensity,
	"returnnumber":      ReturnNumber,
	"numberofreturns":   NumberOfReturns,
	"scandirectionflag": ScanDirectionFlag,
	"edgeofflightline":  EdgeOfFlightLine,
	"classification":    Classification,
	"synthetic":         Synthetic,
	"keypoint":          KeyPoint,
	"withheld":          Withheld,
	"overlap":           Overlap,
	"scananglerank":     ScanAngleRank,
	"scanangle":         ScanAngleRank,
	"userdata":          UserData,
	"pointsourceid":     PointSourceID,
	"gpstime":           GpsTime,
	"red":               Red,
	"green":             Green,
	"blue":              Blue,
	"infrared":          Infrared,
	"nir":               Infrared,
	"scannerchannel":    ScannerChannel,
}

// ForName resolves a dimension name to its id. Well-known names (matched
// case-insensitively) map to their fixed constants; any other name hashes
// to a stable custom id.
func ForName(name string) ID {
	if id, ok := wellKnown[strings.ToLower(name)]; ok {
		return id
	}

	return ID(hash.ID(name)) | customBit
}

// IsCustom reports whether the id was derived from a custom dimension name.
func (id ID) IsCustom() bool {
	return id&customBit != 0
}
