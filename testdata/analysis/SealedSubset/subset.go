package subset

import "github.com/bjaus/inspect"

type Shape interface{ isShape() }

type (
	Circle   struct{ R float64 }
	Square   struct{ Side float64 }
	Triangle struct{ Base, Height float64 }
)

func (Circle) isShape()   {}
func (Square) isShape()   {}
func (Triangle) isShape() {}

// Triangle implements Shape but is not part of the family.
var Quads = inspect.Sealed(
	inspect.Alt[Circle, Shape](),
	inspect.Alt[Square, Shape](),
)

func name(s Shape) string {
	return inspect.Inspect(Quads.Of(s),
		inspect.Case(func(Circle) string { return "circle" }),
		inspect.Case(func(Square) string { return "square" }),
	)
}

func check() error {
	return inspect.Check(Quads,
		inspect.Case(func(Circle) bool { return true }),
		inspect.Case(func(Square) bool { return true }),
	)
}

func local(s Shape) string {
	round := inspect.Sealed(inspect.Alt[Circle, Shape]())
	return inspect.Inspect(round.Of(s), // want `no handler for union case "subset.Circle" \(subset.Circle\)`
		inspect.Case(func(Square) string { return "square" }),
	)
}
