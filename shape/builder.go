package shape

// CircleBuilder stages the parameters of a Circle.
//
// Setters overwrite one field and return the same builder so calls can be
// chained in any order. Fields that are never set keep their defaults
// (center at the origin, radius 1).
//
// Finalize does not consume the builder: it may be called repeatedly, and
// each call returns an independent snapshot of the current fields.
type CircleBuilder struct {
	x      float64
	y      float64
	radius float64
}

// NewCircleBuilder returns a builder preset to (0, 0, 1).
func NewCircleBuilder() *CircleBuilder {
	return &CircleBuilder{x: 0, y: 0, radius: 1}
}

// SetX sets the center's x coordinate.
func (b *CircleBuilder) SetX(v float64) *CircleBuilder {
	b.x = v
	return b
}

// SetY sets the center's y coordinate.
func (b *CircleBuilder) SetY(v float64) *CircleBuilder {
	b.y = v
	return b
}

// SetRadius sets the radius. Negative values are accepted as-is.
func (b *CircleBuilder) SetRadius(v float64) *CircleBuilder {
	b.radius = v
	return b
}

// Finalize returns a Circle built from the current fields.
func (b *CircleBuilder) Finalize() Circle {
	return NewCircle(b.x, b.y, b.radius)
}
