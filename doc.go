// Package shapes is a small open polymorphism library for geometric shapes.
//
// The repository is organized as:
//
//   - shape: the Shape capability, Circle, Square, Scalar, Rectangle,
//     CircleBuilder, static/dynamic dispatch, validation and a named catalog
//   - internal/demo: the demonstration trace, section by section
//   - cmd/shapes: the command that prints the trace
//
// Shapes are immutable values. Anything that changes a shape (Grow,
// CircleBuilder.Finalize) returns a new value instead of mutating in place.
package shapes
