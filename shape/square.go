package shape

// Square is an immutable square.
type Square struct {
	side float64
}

// NewSquare returns a square with the given side. side is not checked.
func NewSquare(side float64) Square { return Square{side: side} }

func (s Square) Side() float64 { return s.side }

// Area returns side².
func (s Square) Area() float64 { return s.side * s.side }

// String implements fmt.Stringer.
func (s Square) String() string {
	// Example: square(side=2)
	return "square(side=" + FormatArea(s.side) + ")"
}
