package shape

import (
	"errors"
	"math"
	"reflect"
	"strconv"
)

var (
	// ErrNilShape is returned by Validate for a nil Shape.
	ErrNilShape = errors.New("shape: nil shape")

	// ErrShapePanic is wrapped by MapRegistry.Describe when a Shape
	// implementation panics inside Area.
	ErrShapePanic = errors.New("shape: panic during Area")
)

// InvalidDimensionError reports a geometric parameter outside its domain
// (negative, NaN or infinite).
type InvalidDimensionError struct {
	// Shape is the kind of shape, e.g. "circle".
	Shape string

	// Field is the offending parameter, e.g. "radius".
	Field string

	Value float64
}

// Error implements the error interface.
func (e InvalidDimensionError) Error() string {
	// Example: shape: circle radius is invalid (-1)
	return "shape: " + e.Shape + " " + e.Field + " is invalid (" +
		strconv.FormatFloat(e.Value, 'g', -1, 64) + ")"
}

// UnknownShapeError is returned when a registry has no entry for Name.
type UnknownShapeError struct{ Name string }

// Error implements the error interface.
func (e UnknownShapeError) Error() string {
	// Example: shape: unknown shape "hexagon"
	return "shape: unknown shape " + strconv.Quote(e.Name)
}

// Validate checks that s has geometrically meaningful parameters.
//
// Constructors and the builder accept anything; Validate is the opt-in
// check for callers that want one. A nil interface or a nil pointer of any
// Shape type is ErrNilShape. Circles and Squares are checked field by
// field. Any other Shape is checked through its area.
func Validate(s Shape) error {
	if isNilShape(s) {
		return ErrNilShape
	}

	switch v := s.(type) {
	case Circle:
		return validateCircle(v)
	case *Circle:
		return validateCircle(*v)
	case Square:
		return validateLength("square", "side", v.side)
	case *Square:
		return validateLength("square", "side", v.side)
	default:
		return validateLength("shape", "area", s.Area())
	}
}

// isNilShape reports whether s is nil or holds a nil pointer.
func isNilShape(s Shape) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func validateCircle(c Circle) error {
	if !isFinite(c.centerX) {
		return InvalidDimensionError{Shape: "circle", Field: "center x", Value: c.centerX}
	}
	if !isFinite(c.centerY) {
		return InvalidDimensionError{Shape: "circle", Field: "center y", Value: c.centerY}
	}
	return validateLength("circle", "radius", c.radius)
}

func validateLength(kind, field string, v float64) error {
	if !isFinite(v) || v < 0 {
		return InvalidDimensionError{Shape: kind, Field: field, Value: v}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
