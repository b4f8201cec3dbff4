package inspect

import "fmt"

// Success tags a payload as the success case of a Result.
type Success[T any] struct{ Value T }

// Failure tags a payload as the failure case of a Result.
type Failure[E any] struct{ Value E }

// Result is either a success carrying a T or a failure carrying an E.
//
// Handlers may take the bare payload types or the case-tagged wrappers
// [Success] and [Failure]. When T and E are the same type only the wrappers
// identify the case, so handlers must be written against them:
//
//	r := inspect.Ok[int, int](55)
//	inspect.Inspect(r,
//	    inspect.Case(func(s inspect.Success[int]) string { return "ok" }),
//	    inspect.Case(func(f inspect.Failure[int]) string { return "failed" }),
//	)
//
// A bare func(int) handler is reported as an [AmbiguousPayloadError].
//
// The zero Result is a success holding the zero T.
type Result[T, E any] struct {
	failed bool
	v      T
	e      E
}

// Ok returns a successful Result.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{v: v}
}

// Fail returns a failed Result.
func Fail[T, E any](e E) Result[T, E] {
	return Result[T, E]{failed: true, e: e}
}

// FromError adapts Go's (value, error) convention. A non-nil err yields a
// failure; otherwise v is the success payload.
//
//	inspect.FromError(strconv.Atoi(s))
func FromError[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok[T, error](v)
}

// Outcome is any result-like type reporting success and exposing both
// payloads.
type Outcome[T, E any] interface {
	IsOk() bool
	Ok() T
	Err() E
}

// FromOutcome converts a result-like value into a Result. Only the payload
// of the active case is read.
func FromOutcome[T, E any](o Outcome[T, E]) Result[T, E] {
	if o.IsOk() {
		return Ok[T, E](o.Ok())
	}
	return Fail[T](o.Err())
}

// IsOk reports whether r is a success.
func (r Result[T, E]) IsOk() bool { return !r.failed }

// IsErr reports whether r is a failure.
func (r Result[T, E]) IsErr() bool { return r.failed }

// Value returns the success payload and true, or the zero T and false.
func (r Result[T, E]) Value() (T, bool) {
	if r.failed {
		var zero T
		return zero, false
	}
	return r.v, true
}

// Err returns the failure payload and true, or the zero E and false.
func (r Result[T, E]) Err() (E, bool) {
	if !r.failed {
		var zero E
		return zero, false
	}
	return r.e, true
}

// Shape implements the Value interface.
func (Result[T, E]) Shape() Shape { return ShapeResult }

// Cases returns "success" (index 0) and "failure" (index 1). Each offers its
// wrapper form first and, unless T and E are identical, the bare form.
func (Result[T, E]) Cases() []CaseInfo {
	success := CaseInfo{
		Index: 0,
		Name:  "success",
		Type:  typeName[T](),
		Forms: []Form{wrappedForm[Success[T]](func(p any) any {
			v, _ := p.(T)
			return Success[T]{Value: v}
		})},
	}
	failure := CaseInfo{
		Index: 1,
		Name:  "failure",
		Type:  typeName[E](),
		Forms: []Form{wrappedForm[Failure[E]](func(p any) any {
			e, _ := p.(E)
			return Failure[E]{Value: e}
		})},
	}

	if identical[T, E]() {
		success.shadowed = []Form{FormOf[T]()}
		failure.shadowed = []Form{FormOf[E]()}
	} else {
		success.Forms = append(success.Forms, FormOf[T]())
		failure.Forms = append(failure.Forms, FormOf[E]())
	}
	return []CaseInfo{success, failure}
}

// Active implements the Value interface.
func (r Result[T, E]) Active() (int, any) {
	if r.failed {
		return 1, r.e
	}
	return 0, r.v
}

func (r Result[T, E]) String() string {
	if r.failed {
		return fmt.Sprintf("Fail(%v)", r.e)
	}
	return fmt.Sprintf("Ok(%v)", r.v)
}

// MatchResult calls ok with the success payload or fail with the failure
// payload. Both handlers are required by the signature, and their positions
// identify the cases even when T and E are the same type.
func MatchResult[T, E, R any](r Result[T, E], ok func(T) R, fail func(E) R) R {
	if r.failed {
		return fail(r.e)
	}
	return ok(r.v)
}
