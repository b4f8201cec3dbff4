package inspect

import (
	"fmt"
	"slices"
)

// Variant is one declared alternative of a sealed family.
type Variant[S any] struct {
	name string
	form Form
	is   func(S) bool
}

// Alt declares the concrete type V as a variant of the sealed interface S.
// It panics when V is an interface type or does not implement S.
func Alt[V, S any]() Variant[S] {
	var zero V
	if _, ok := any(zero).(S); !ok {
		panic(fmt.Sprintf("inspect: %s is not a concrete type implementing %s", typeName[V](), typeName[S]()))
	}
	return Variant[S]{
		name: typeName[V](),
		form: FormOf[V](),
		is: func(s S) bool {
			_, ok := any(s).(V)
			return ok
		},
	}
}

// Family is the closed set of variants of a sealed interface S, the Go
// idiom for sum types:
//
//	type Shape interface{ isShape() }
//
//	type Circle struct{ R float64 }
//	type Square struct{ Side float64 }
//
//	func (Circle) isShape() {}
//	func (Square) isShape() {}
//
//	var Shapes = inspect.Sealed(
//	    inspect.Alt[Circle, Shape](),
//	    inspect.Alt[Square, Shape](),
//	)
//
//	area := inspect.Inspect(Shapes.Of(s),
//	    inspect.Case(func(c Circle) float64 { return math.Pi * c.R * c.R }),
//	    inspect.Case(func(q Square) float64 { return q.Side * q.Side }),
//	)
//
// A Family is immutable and safe for concurrent use.
type Family[S any] struct {
	variants []Variant[S]
	cases    []CaseInfo
}

// Sealed declares a family from its variants. The order of variants is the
// case order. It panics on an empty or duplicated variant list.
func Sealed[S any](variants ...Variant[S]) *Family[S] {
	if len(variants) == 0 {
		panic(fmt.Sprintf("inspect: sealed family of %s has no variants", typeName[S]()))
	}
	f := &Family[S]{variants: variants}
	for i, v := range variants {
		for _, prev := range variants[:i] {
			if prev.name == v.name {
				panic(fmt.Sprintf("inspect: variant %s declared twice in family of %s", v.name, typeName[S]()))
			}
		}
		f.cases = append(f.cases, CaseInfo{
			Index: i,
			Name:  v.name,
			Type:  v.name,
			Forms: []Form{v.form},
		})
	}
	return f
}

// Shape implements the CaseSet interface.
func (f *Family[S]) Shape() Shape { return ShapeUnion }

// Cases returns one case per variant, named after the variant type.
func (f *Family[S]) Cases() []CaseInfo { return slices.Clone(f.cases) }

// Of wraps s for inspection. It panics with [ErrNotMember] when the dynamic
// type of s is not a declared variant; use TryOf to get the error instead.
func (f *Family[S]) Of(s S) Member[S] {
	m, err := f.TryOf(s)
	if err != nil {
		panic(err)
	}
	return m
}

// TryOf wraps s for inspection, reporting an error when the dynamic type of
// s is not a declared variant.
func (f *Family[S]) TryOf(s S) (Member[S], error) {
	for i, v := range f.variants {
		if v.is(s) {
			return Member[S]{fam: f, idx: i, value: s}, nil
		}
	}
	return Member[S]{}, fmt.Errorf("inspect: %T in family of %s: %w", s, typeName[S](), ErrNotMember)
}

// Member is a value of a sealed family, tagged with its variant.
type Member[S any] struct {
	fam   *Family[S]
	idx   int
	value S
}

// Unwrap returns the underlying interface value.
func (m Member[S]) Unwrap() S { return m.value }

// Index returns the position of the held variant.
func (m Member[S]) Index() int { return m.idx }

// Shape implements the Value interface.
func (m Member[S]) Shape() Shape { return ShapeUnion }

// Cases implements the Value interface. It returns the cases of the family.
func (m Member[S]) Cases() []CaseInfo {
	if m.fam == nil {
		return nil
	}
	return slices.Clone(m.fam.cases)
}

// Active implements the Value interface.
func (m Member[S]) Active() (int, any) { return m.idx, any(m.value) }

// caseSetID identifies the family a member belongs to, so a Matcher compiled
// for one family rejects members of another with the same interface.
func (m Member[S]) caseSetID() any { return m.fam }
