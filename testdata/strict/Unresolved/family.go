package unresolved

import "github.com/bjaus/inspect"

type Shape interface{ isShape() }

type Circle struct{}

func (Circle) isShape() {}

var Shapes = inspect.Sealed(inspect.Alt[Circle, Shape]())

func member(m inspect.Member[Shape]) string {
	return inspect.Inspect(m, inspect.Case(func(Circle) string { return "circle" })) // want `cannot check coverage of inspect.Inspect: the family is not a variable declared with inspect.Sealed`
}

func declared(s Shape) string {
	return inspect.Inspect(Shapes.Of(s), inspect.Case(func(Circle) string { return "circle" }))
}
