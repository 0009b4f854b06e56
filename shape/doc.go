// Package shape provides a small, open set of geometric shapes with area
// computation.
//
// The package is built around one capability, Shape, which any type can
// satisfy by providing Area. Concrete shapes are immutable value types:
//
//   - Circle: center and radius. Grow returns a new Circle.
//   - Square: side length.
//   - Scalar: a plain integer treated as an area.
//
// Circles can also be assembled incrementally with CircleBuilder, whose
// setters return the builder for chaining:
//
//	c := shape.NewCircleBuilder().
//		SetX(3).
//		SetRadius(10).
//		Finalize()
//
// Two dispatch paths produce the same description for a shape:
//
//   - Describe[T Shape]: the concrete type is fixed at the call site.
//   - DescribeDyn(Shape): resolved at run time through the interface value,
//     which lets heterogeneous shapes share one code path (see DescribeAll
//     and MapRegistry).
//
// Constructors never validate their inputs. Negative or non-finite
// dimensions produce a nonsensical area, not an error. Callers that need a
// check use Validate, which returns typed errors (InvalidDimensionError,
// ErrNilShape).
//
// Import
//
//	"github.com/sghaida/shapes/shape"
package shape
