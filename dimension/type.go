package dimension

import "strings"

// Type tags the numeric interpretation of a stored field. None means the
// field is an opaque run of bytes with an explicit size.
type Type uint8

const (
	None Type = iota
	Unsigned8
	Signed8
	Unsigned16
	Signed16
	Unsigned32
	Signed32
	Unsigned64
	Signed64
	Float
	Double
)

func (t Type) String() string {
	switch t {
	case Unsigned8:
		return "Unsigned8"
	case Signed8:
		return "Signed8"
	case Unsigned16:
		return "Unsigned16"
	case Signed16:
		return "Signed16"
	case Unsigned32:
		return "Unsigned32"
	case Signed32:
		return "Signed32"
	case Unsigned64:
		return "Unsigned64"
	case Signed64:
		return "Signed64"
	case Float:
		return "Float"
	case Double:
		return "Double"
	default:
		return "None"
	}
}

// Size returns the canonical storage size of a type in bytes. None has no
// canonical size and returns 0.
func Size(t Type) int {
	switch t {
	case Unsigned8, Signed8:
		return 1
	case Unsigned16, Signed16:
		return 2
	case Unsigned32, Signed32, Float:
		return 4
	case Unsigned64, Signed64, Double:
		return 8
	default:
		return 0
	}
}

var typeNames = map[string]Type{
	"unsigned8":  Unsigned8,
	"uint8":      Unsigned8,
	"uchar":      Unsigned8,
	"signed8":    Signed8,
	"int8":       Signed8,
	"char":       Signed8,
	"unsigned16": Unsigned16,
	"uint16":     Unsigned16,
	"ushort":     Unsigned16,
	"signed16":   Signed16,
	"int16":      Signed16,
	"short":      Signed16,
	"unsigned32": Unsigned32,
	"uint32":     Unsigned32,
	"ulong":      Unsigned32,
	"signed32":   Signed32,
	"int32":      Signed32,
	"long":       Signed32,
	"unsigned64": Unsigned64,
	"uint64":     Unsigned64,
	"signed64":   Signed64,
	"int64":      Signed64,
	"float":      Float,
	"float32":    Float,
	"double":     Double,
	"float64":    Double,
}

// ParseType resolves a type name (case-insensitive, with the common integer
// and float aliases) to its tag. The boolean result is false for unknown
// names.
func ParseType(s string) (Type, bool) {
	t, ok := typeNames[strings.ToLower(strings.TrimSpace(s))]

	return t, ok
}
