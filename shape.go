package inspect

import "fmt"

// Shape classifies a value by its algebraic structure.
type Shape int

const (
	// ShapeUnrecognized is any value that does not implement [Value].
	ShapeUnrecognized Shape = iota
	// ShapeUnion is a closed set of N alternatives.
	ShapeUnion
	// ShapeOptional is a present/absent value.
	ShapeOptional
	// ShapeResult is a success/failure value.
	ShapeResult
)

func (s Shape) String() string {
	switch s {
	case ShapeUnion:
		return "union"
	case ShapeOptional:
		return "optional"
	case ShapeResult:
		return "result"
	default:
		return "unrecognized"
	}
}

// CaseSet describes a closed set of cases. The set must not depend on the
// value currently held: every value of a type reports the same cases.
type CaseSet interface {
	// Shape returns the algebraic shape of the set.
	Shape() Shape

	// Cases returns the cases in declaration order. CaseInfo.Index equals the
	// position in the returned slice.
	Cases() []CaseInfo
}

// Value is a tagged-union-like value that can be inspected.
//
// Union, Option, Result and Member implement Value. Implement it on your own
// types to make them inspectable; build the cases with [PayloadCase] and
// [EmptyCase].
type Value interface {
	CaseSet

	// Active returns the index of the case currently held and its payload.
	// The payload of an empty case is nil.
	Active() (index int, payload any)
}

// Classify reports the shape of x without inspecting its contents.
func Classify(x any) Shape {
	if v, ok := x.(CaseSet); ok {
		return v.Shape()
	}
	return ShapeUnrecognized
}

// CasesOf returns the case set of v.
func CasesOf(v CaseSet) []CaseInfo {
	return v.Cases()
}

// CaseInfo describes one alternative of a case set.
type CaseInfo struct {
	// Index is the position of the case in its set.
	Index int

	// Name identifies the case for diagnostics ("present", "failure", "A").
	Name string

	// Type is the printable payload type. Empty for a case without payload.
	Type string

	// Forms lists the ways the payload may be delivered to a handler, in
	// preference order. A case without forms carries no payload and is only
	// accepted by handlers built with Empty.
	Forms []Form

	// shadowed holds forms withheld because they would not identify the
	// case. Handlers accepting them are diagnosed as ambiguous.
	shadowed []Form
}

// IsEmpty reports whether the case carries no payload.
func (c CaseInfo) IsEmpty() bool { return len(c.Forms) == 0 }

func (c CaseInfo) String() string {
	if c.IsEmpty() {
		return fmt.Sprintf("%q (no payload)", c.Name)
	}
	return fmt.Sprintf("%q (%s)", c.Name, c.Type)
}

// Form is one way of delivering a case payload to a handler.
type Form struct {
	// Type is the printable type the handler receives.
	Type string

	probe probe
	wrap  func(payload any) any
}

// probe carries enough about a payload type P to decide handler acceptance
// without reflection.
type probe struct {
	ident any // (*P)(nil)
	zero  any // a zero P; nil when P is an interface type
}

// FormOf describes delivering a payload of type P unchanged.
func FormOf[P any]() Form {
	return wrappedForm[P](nil)
}

func wrappedForm[P any](wrap func(any) any) Form {
	var zero P
	return Form{
		Type:  typeName[P](),
		probe: probe{ident: (*P)(nil), zero: any(zero)},
		wrap:  wrap,
	}
}

// PayloadCase builds a case delivering a payload of type P.
func PayloadCase[P any](index int, name string) CaseInfo {
	return CaseInfo{Index: index, Name: name, Type: typeName[P](), Forms: []Form{FormOf[P]()}}
}

// EmptyCase builds a case that carries no payload.
func EmptyCase(index int, name string) CaseInfo {
	return CaseInfo{Index: index, Name: name}
}

// deliver converts a raw payload into the value the form hands to a handler.
func (f Form) deliver(payload any) any {
	if f.wrap == nil {
		return payload
	}
	return f.wrap(payload)
}

func typeName[T any]() string {
	// %T of a typed nil pointer names T even when T is an interface type.
	return fmt.Sprintf("%T", (*T)(nil))[1:]
}

func identical[A, B any]() bool {
	_, ok := any((*A)(nil)).(*B)
	return ok
}
