package sealed

import (
	"math"

	"github.com/bjaus/inspect"
)

type Shape interface{ isShape() }

type (
	Circle   struct{ R float64 }
	Square   struct{ Side float64 }
	Triangle struct{ Base, Height float64 }
)

func (Circle) isShape()    {}
func (Square) isShape()    {}
func (*Triangle) isShape() {}

var Shapes = inspect.Sealed(
	inspect.Alt[Circle, Shape](),
	inspect.Alt[Square, Shape](),
	inspect.Alt[*Triangle, Shape](),
)

func area(s Shape) float64 {
	return inspect.Inspect(Shapes.Of(s),
		inspect.Case(func(c Circle) float64 { return math.Pi * c.R * c.R }),
		inspect.Case(func(q Square) float64 { return q.Side * q.Side }),
		inspect.Case(func(t *Triangle) float64 { return t.Base * t.Height / 2 }),
	)
}

func missing(s Shape) float64 {
	return inspect.Inspect(Shapes.Of(s), // want `no handler for union case "sealed.Square" \(sealed.Square\)`
		inspect.Case(func(c Circle) float64 { return math.Pi * c.R * c.R }),
		inspect.Case(func(t *Triangle) float64 { return t.Base * t.Height / 2 }),
	)
}

// the sealed interface itself covers every variant
func family(s Shape) string {
	return inspect.Inspect(Shapes.Of(s), inspect.Case(func(Shape) string { return "shape" }))
}

func check() error {
	return inspect.Check(Shapes, // want `no handler for union case "\*sealed.Triangle" \(\*sealed.Triangle\)`
		inspect.Case(func(Circle) bool { return true }),
		inspect.Case(func(Square) bool { return true }),
	)
}
