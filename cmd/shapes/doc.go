// Command shapes prints the shapes demonstration trace.
//
// Usage
//
//	shapes
//
// The command has no flags beyond --help; arguments and unknown flags are
// ignored. It writes one line per example to stdout and always exits 0
// unless stdout cannot be written:
//
//	area is 12.566370614359172
//	c2's area is 50.26548245743669
//	area is 314.1592653589793
//	This shape has an area of 12.566370614359172
//	...
//
// Sections
//
//   - method syntax: NewCircle, Grow chaining, CircleBuilder
//   - traits: static Describe over Circle and Square, Rectangle.IsSquare,
//     Scalar as a Shape
//   - trait objects: the same circle through Describe and DescribeDyn
//   - catalog: DescribeDyn over a MapRegistry of mixed shapes
//
// Diagnostics are JSON lines on stderr (zap, info level): one summary line
// per run, or an error line when the trace cannot be written.
package main
