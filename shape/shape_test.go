package shape_test

import (
	"math"
	"testing"

	"github.com/sghaida/shapes/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// Circle
func TestCircle_Area(t *testing.T) {
	t.Parallel()

	for _, r := range []float64{0, 0.5, 1, 2, 10, 1234.5678} {
		c := shape.NewCircle(0, 0, r)
		want := math.Pi * r * r
		assert.InDelta(t, want, c.Area(), tol*math.Max(1, want), "radius %v", r)
	}
}

func TestCircle_AreaRadiusTwo(t *testing.T) {
	t.Parallel()

	c := shape.NewCircle(0, 0, 2)
	assert.Equal(t, "12.566370614359172", shape.FormatArea(c.Area()))
}

func TestCircle_ConstructionIsIdempotent(t *testing.T) {
	t.Parallel()

	a := shape.NewCircle(1.5, -2, 3)
	b := shape.NewCircle(1.5, -2, 3)
	assert.Equal(t, a, b)
	assert.Equal(t, a.Area(), b.Area())
}

func TestCircle_Accessors(t *testing.T) {
	t.Parallel()

	c := shape.NewCircle(1, 2, 3)
	assert.Equal(t, 1.0, c.CenterX())
	assert.Equal(t, 2.0, c.CenterY())
	assert.Equal(t, 3.0, c.Radius())
}

func TestCircle_GrowDoesNotMutate(t *testing.T) {
	t.Parallel()

	c := shape.NewCircle(0, 0, 2)
	before := c.Area()

	grown := c.Grow(3)
	assert.NotEqual(t, before, grown.Area())
	assert.InDelta(t, math.Pi*25, grown.Area(), tol)
	assert.Equal(t, 5.0, grown.Radius())
	assert.Equal(t, c.CenterX(), grown.CenterX())
	assert.Equal(t, c.CenterY(), grown.CenterY())

	assert.Equal(t, before, c.Area())
	assert.Equal(t, 2.0, c.Radius())
}

func TestCircle_GrowChain(t *testing.T) {
	t.Parallel()

	c := shape.NewCircle(0, 0, 2)
	assert.Equal(t, "50.26548245743669", shape.FormatArea(c.Grow(2).Area()))
}

func TestCircle_NegativeRadiusIsAccepted(t *testing.T) {
	t.Parallel()

	// Area squares the radius, so a negative radius still yields π·r².
	c := shape.NewCircle(0, 0, -2)
	assert.Equal(t, -2.0, c.Radius())
	assert.InDelta(t, math.Pi*4, c.Area(), tol)
}

func TestCircle_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "circle(x=3, y=0, r=10)", shape.NewCircle(3, 0, 10).String())
	assert.Equal(t, "circle(x=-1.5, y=0.25, r=2)", shape.NewCircle(-1.5, 0.25, 2).String())
}

// Square
func TestSquare_Area(t *testing.T) {
	t.Parallel()

	for _, side := range []float64{0, 1, 2, 2.5, 100} {
		assert.Equal(t, side*side, shape.NewSquare(side).Area(), "side %v", side)
	}
}

func TestSquare_NegativeSideIsAccepted(t *testing.T) {
	t.Parallel()

	s := shape.NewSquare(-3)
	assert.Equal(t, -3.0, s.Side())
	assert.Equal(t, 9.0, s.Area())
}

func TestSquare_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "square(side=2)", shape.NewSquare(2).String())
}

// Scalar
func TestScalar(t *testing.T) {
	t.Parallel()

	var s shape.Shape = shape.Scalar(5)
	assert.Equal(t, 5.0, s.Area())
	assert.Equal(t, "This shape has an area of 5", shape.DescribeDyn(s))
	assert.Equal(t, "scalar(5)", shape.Scalar(5).String())
}

// Rectangle
func TestRectangle_IsSquare(t *testing.T) {
	t.Parallel()

	assert.True(t, shape.NewRectangle(47, 47).IsSquare())
	assert.False(t, shape.NewRectangle(47, 48).IsSquare())
	assert.True(t, shape.NewRectangle("a", "a").IsSquare())
	assert.False(t, shape.NewRectangle(1.5, 2.5).IsSquare())

	r := shape.NewRectangle(3, 4)
	assert.Equal(t, 3, r.Width)
	assert.Equal(t, 4, r.Height)
}

// FormatArea
func TestFormatArea(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want string
	}{
		{4, "4"},
		{0, "0"},
		{5, "5"},
		{0.5, "0.5"},
		{-9, "-9"},
		{math.Pi * 100, "314.1592653589793"},
		{1e21, "1000000000000000000000"},
		{1e-7, "0.0000001"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, shape.FormatArea(tc.in), "in=%v", tc.in)
	}
}

// Dispatch
func TestDescribe_StaticAndDynamicAgree(t *testing.T) {
	t.Parallel()

	circle := shape.NewCircle(0, 0, 2)
	square := shape.NewSquare(2)
	scalar := shape.Scalar(7)

	assert.Equal(t, "This shape has an area of 12.566370614359172", shape.Describe(circle))
	assert.Equal(t, shape.Describe(circle), shape.DescribeDyn(circle))
	assert.Equal(t, shape.Describe(&circle), shape.DescribeDyn(&circle))

	assert.Equal(t, "This shape has an area of 4", shape.Describe(square))
	assert.Equal(t, shape.Describe(square), shape.DescribeDyn(square))

	assert.Equal(t, shape.Describe(scalar), shape.DescribeDyn(scalar))
}

// customShape is a Shape defined outside the package.
type customShape struct{ area float64 }

func (c customShape) Area() float64 { return c.area }

func TestDescribe_ForeignShape(t *testing.T) {
	t.Parallel()

	c := customShape{area: 1.25}
	assert.Equal(t, "This shape has an area of 1.25", shape.Describe(c))
	assert.Equal(t, shape.Describe(c), shape.DescribeDyn(c))
}

func TestDescribeAll_PreservesOrder(t *testing.T) {
	t.Parallel()

	got := shape.DescribeAll(
		shape.NewSquare(2),
		shape.NewCircle(0, 0, 1),
		shape.Scalar(3),
	)
	require.Len(t, got, 3)
	assert.Equal(t, []string{
		"This shape has an area of 4",
		"This shape has an area of 3.141592653589793",
		"This shape has an area of 3",
	}, got)
}

func TestDescribeAll_Empty(t *testing.T) {
	t.Parallel()

	got := shape.DescribeAll()
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
