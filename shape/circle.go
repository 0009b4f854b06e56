package shape

import "math"

// Circle is an immutable circle. The zero value is a point at the origin.
type Circle struct {
	centerX float64
	centerY float64
	radius  float64
}

// NewCircle returns a circle centered at (centerX, centerY).
//
// radius is expected to be >= 0 but is not checked; see Validate.
func NewCircle(centerX, centerY, radius float64) Circle {
	return Circle{centerX: centerX, centerY: centerY, radius: radius}
}

func (c Circle) CenterX() float64 { return c.centerX }
func (c Circle) CenterY() float64 { return c.centerY }
func (c Circle) Radius() float64 { return c.radius }

// Area returns π·r².
func (c Circle) Area() float64 {
	return math.Pi * (c.radius * c.radius)
}

// Grow returns a new circle with the same center and radius+increment.
// c itself is left unchanged.
func (c Circle) Grow(increment float64) Circle {
	return Circle{centerX: c.centerX, centerY: c.centerY, radius: c.radius + increment}
}

// String implements fmt.Stringer.
func (c Circle) String() string {
	// Example: circle(x=3, y=0, r=10)
	return "circle(x=" + FormatArea(c.centerX) +
		", y=" + FormatArea(c.centerY) +
		", r=" + FormatArea(c.radius) + ")"
}
