package shape

// Rectangle is a width/height pair over any comparable element type.
//
// It has no area (T need not be numeric) and therefore does not satisfy
// Shape; it only answers whether its sides are equal.
type Rectangle[T comparable] struct {
	Width  T
	Height T
}

func NewRectangle[T comparable](width, height T) Rectangle[T] {
	return Rectangle[T]{Width: width, Height: height}
}

// IsSquare reports whether Width == Height.
func (r Rectangle[T]) IsSquare() bool {
	return r.Width == r.Height
}
