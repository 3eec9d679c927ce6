package loader

import "github.com/arloliu/lasrec/point"

// Filter is a post-decode predicate used by streamed consumers to reject
// points. Filters are independent of driver assembly: a consumer decodes a
// record through a Driver and then offers the point to its filters.
type Filter interface {
	// Passes reports whether the point should be kept.
	Passes(p *point.Point) bool
}

// FilterFunc adapts a plain function to the Filter interface.
type FilterFunc func(p *point.Point) bool

func (f FilterFunc) Passes(p *point.Point) bool {
	return f(p)
}
