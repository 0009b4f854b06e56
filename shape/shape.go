package shape

import "strconv"

// describePrefix is shared by both dispatch paths so their output cannot drift.
const describePrefix = "This shape has an area of "

// Shape is the capability every concrete shape provides.
//
// Area must be non-negative and finite for valid geometric parameters.
type Shape interface {
	Area() float64
}

// Describe reports the area of s using static dispatch.
//
// T is fixed per call site, so the call to Area is resolved at compile time.
func Describe[T Shape](s T) string {
	return describePrefix + FormatArea(s.Area())
}

// DescribeDyn reports the area of s using dynamic dispatch.
//
// s is an interface value; Area is looked up through its method table at run
// time. For the same logical shape it returns exactly what Describe returns.
func DescribeDyn(s Shape) string {
	return describePrefix + FormatArea(s.Area())
}

// DescribeAll describes a heterogeneous list of shapes through the dynamic
// path, preserving order.
func DescribeAll(shapes ...Shape) []string {
	out := make([]string, 0, len(shapes))
	for _, s := range shapes {
		out = append(out, DescribeDyn(s))
	}
	return out
}

// FormatArea renders v as the shortest decimal that round-trips, without
// exponent notation. Whole numbers have no fractional part (4, not 4.0).
func FormatArea(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
