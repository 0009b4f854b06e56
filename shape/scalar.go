package shape

import "strconv"

// Scalar is a bare integer that satisfies Shape; its area is its value.
type Scalar int

// Area returns the scalar as a float64.
func (s Scalar) Area() float64 { return float64(s) }

func (s Scalar) String() string { return "scalar(" + strconv.Itoa(int(s)) + ")" }
